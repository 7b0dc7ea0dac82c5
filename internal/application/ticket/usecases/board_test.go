package usecases

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onlyfix/admin/internal/application/common/listing"
	"github.com/onlyfix/admin/internal/domain/ticket"
	vo "github.com/onlyfix/admin/internal/domain/ticket/valueobjects"
	"github.com/onlyfix/admin/internal/shared/errors"
	"github.com/onlyfix/admin/internal/shared/pagination"
)

func boardTickets() []ticket.Ticket {
	return []ticket.Ticket{
		{ID: 1, Status: vo.StatusOpen, Priority: vo.PriorityHigh},
		{ID: 2, Status: vo.StatusAssigned, Priority: vo.PriorityMedium},
		{ID: 3, Status: vo.StatusInProgress, Priority: vo.PriorityLow},
	}
}

func newLoadedBoard(t *testing.T, gateway *mockTicketGateway, host *mockHost, session *mockSession) *TicketsBoard {
	t.Helper()
	if gateway.ListTicketsFunc == nil {
		gateway.ListTicketsFunc = func(ctx context.Context, page int, filter ticket.Filter) (*pagination.Response[ticket.Ticket], error) {
			resp := pagination.Slice(boardTickets(), page, pagination.DefaultPerPage)
			return &resp, nil
		}
	}
	log := &mockLogger{}
	board := NewTicketsBoard(gateway, NewTransitionTicketUseCase(gateway, log), session, host, log)
	require.NoError(t, board.Load(t.Context()))
	return board
}

func TestTicketsBoard_AcceptReplacesRow(t *testing.T) {
	gateway := &mockTicketGateway{
		TransitionTicketFunc: func(ctx context.Context, id int, action vo.Action) (*ticket.Ticket, error) {
			mechanicID := 9
			return &ticket.Ticket{ID: id, Status: action.ResultStatus(), MechanicID: &mechanicID}, nil
		},
	}
	board := newLoadedBoard(t, gateway, &mockHost{}, &mockSession{})

	ok, err := board.Accept(t.Context(), 0)

	require.NoError(t, err)
	assert.True(t, ok)
	st := board.State()
	assert.Equal(t, vo.StatusAssigned, st.Items[0].Status)
	assert.Equal(t, "Mechanic #9", st.Items[0].MechanicDisplay())
	assert.False(t, st.Busy)
}

func TestTicketsBoard_RejectedTransitionLeavesRow(t *testing.T) {
	gateway := &mockTicketGateway{
		TransitionTicketFunc: func(ctx context.Context, id int, action vo.Action) (*ticket.Ticket, error) {
			return nil, errors.NewValidationError("The given data was invalid.", map[string][]string{
				"status": {"Ticket cannot be accepted while assigned."},
			})
		},
	}
	host := &mockHost{}
	board := newLoadedBoard(t, gateway, host, &mockSession{})

	ok, err := board.Accept(t.Context(), 1)

	assert.False(t, ok)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, vo.StatusAssigned, board.State().Items[1].Status)
	assert.Equal(t, []string{"Ticket cannot be accepted while assigned."}, host.alerts)
	assert.False(t, board.State().Busy)
}

func TestTicketsBoard_Close(t *testing.T) {
	tests := []struct {
		name       string
		confirm    bool
		wantCalls  int
		wantStatus vo.TicketStatus
	}{
		{name: "confirmed", confirm: true, wantCalls: 1, wantStatus: vo.StatusClosed},
		{name: "declined", confirm: false, wantCalls: 0, wantStatus: vo.StatusInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &mockTicketGateway{
				TransitionTicketFunc: func(ctx context.Context, id int, action vo.Action) (*ticket.Ticket, error) {
					return &ticket.Ticket{ID: id, Status: action.ResultStatus()}, nil
				},
			}
			host := &mockHost{ConfirmResult: tt.confirm}
			board := newLoadedBoard(t, gateway, host, &mockSession{})

			ok, err := board.Close(t.Context(), 2)

			require.NoError(t, err)
			assert.Equal(t, tt.confirm, ok)
			assert.Equal(t, tt.wantCalls, gateway.transitionCalls)
			assert.Equal(t, tt.wantStatus, board.State().Items[2].Status)
			assert.Equal(t, []string{"Are you sure you want to close ticket #3?"}, host.confirms)
		})
	}
}

func TestTicketsBoard_UnauthorizedGoesToLogin(t *testing.T) {
	gateway := &mockTicketGateway{
		TransitionTicketFunc: func(ctx context.Context, id int, action vo.Action) (*ticket.Ticket, error) {
			return nil, errors.NewAPIError(http.StatusUnauthorized, "Unauthenticated.", nil)
		},
	}
	host := &mockHost{}
	session := &mockSession{}
	board := newLoadedBoard(t, gateway, host, session)

	_, err := board.Start(t.Context(), 1)

	require.Error(t, err)
	assert.Equal(t, 1, session.cleared)
	assert.Equal(t, []listing.Route{listing.RouteLogin}, host.routes)
	assert.Empty(t, host.alerts)
}

func TestTicketsBoard_CompleteAndDelete(t *testing.T) {
	var deletedID int
	gateway := &mockTicketGateway{
		TransitionTicketFunc: func(ctx context.Context, id int, action vo.Action) (*ticket.Ticket, error) {
			return &ticket.Ticket{ID: id, Status: action.ResultStatus()}, nil
		},
		DeleteTicketFunc: func(ctx context.Context, id int) error {
			deletedID = id
			return nil
		},
	}
	host := &mockHost{ConfirmResult: true}
	board := newLoadedBoard(t, gateway, host, &mockSession{})

	ok, err := board.Complete(t.Context(), 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, vo.StatusCompleted, board.State().Items[2].Status)

	ok, err = board.Delete(t.Context(), 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, deletedID)
	assert.Len(t, board.State().Items, 2)
	assert.Equal(t, 2, board.State().Total)
	assert.Equal(t, []string{"Are you sure you want to delete ticket #1?"}, host.confirms)
}

func TestTicketsBoard_IndexOutOfRange(t *testing.T) {
	gateway := &mockTicketGateway{}
	board := newLoadedBoard(t, gateway, &mockHost{}, &mockSession{})

	_, err := board.Start(t.Context(), 10)

	require.Error(t, err)
	assert.Zero(t, gateway.transitionCalls)
}

func TestTicketsBoard_FocusSingleTicket(t *testing.T) {
	gateway := &mockTicketGateway{
		TransitionTicketFunc: func(ctx context.Context, id int, action vo.Action) (*ticket.Ticket, error) {
			return &ticket.Ticket{ID: id, Status: action.ResultStatus()}, nil
		},
	}
	host := &mockHost{ConfirmResult: true}
	board := NewTicketsBoard(gateway, NewTransitionTicketUseCase(gateway, &mockLogger{}), &mockSession{}, host, &mockLogger{})

	board.Focus(ticket.Ticket{ID: 12, Status: vo.StatusInProgress})

	st := board.State()
	require.Len(t, st.Items, 1)
	assert.Equal(t, 1, st.Total)
	assert.Equal(t, 1, st.LastPage)

	ok, err := board.Close(t.Context(), 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"Are you sure you want to close ticket #12?"}, host.confirms)
	assert.Equal(t, vo.StatusClosed, board.State().Items[0].Status)
}

func TestTicketsBoard_TransitionAfterPageChangeLeavesNewPage(t *testing.T) {
	var all []ticket.Ticket
	for id := 1; id <= 20; id++ {
		all = append(all, ticket.Ticket{ID: id, Status: vo.StatusOpen, Priority: vo.PriorityMedium})
	}
	started := make(chan struct{})
	release := make(chan struct{})
	gateway := &mockTicketGateway{
		ListTicketsFunc: func(ctx context.Context, page int, filter ticket.Filter) (*pagination.Response[ticket.Ticket], error) {
			resp := pagination.Slice(all, page, pagination.DefaultPerPage)
			return &resp, nil
		},
		TransitionTicketFunc: func(ctx context.Context, id int, action vo.Action) (*ticket.Ticket, error) {
			close(started)
			<-release
			return &ticket.Ticket{ID: id, Status: action.ResultStatus()}, nil
		},
	}
	board := newLoadedBoard(t, gateway, &mockHost{}, &mockSession{})

	done := make(chan bool)
	go func() {
		ok, err := board.Accept(t.Context(), 0)
		assert.NoError(t, err)
		done <- ok
	}()

	<-started
	require.NoError(t, board.NextPage(t.Context()))
	close(release)
	assert.True(t, <-done)

	st := board.State()
	assert.Equal(t, 2, st.CurrentPage)
	require.Len(t, st.Items, 5)
	assert.Equal(t, 16, st.Items[0].ID)
	for _, tk := range st.Items {
		assert.Equal(t, vo.StatusOpen, tk.Status, "ticket #%d", tk.ID)
	}
}

func TestTicketsBoard_TransitionFollowsTicketWithinPage(t *testing.T) {
	gateway := &mockTicketGateway{
		TransitionTicketFunc: func(ctx context.Context, id int, action vo.Action) (*ticket.Ticket, error) {
			return &ticket.Ticket{ID: id, Status: action.ResultStatus()}, nil
		},
	}
	board := newLoadedBoard(t, gateway, &mockHost{}, &mockSession{})
	// the page reloads with ticket #2 moved to the front
	board.Store().Dispatch(listing.PageLoaded[ticket.Ticket]{Page: pagination.Slice([]ticket.Ticket{
		{ID: 2, Status: vo.StatusAssigned},
		{ID: 1, Status: vo.StatusOpen},
	}, 1, pagination.DefaultPerPage)})

	board.Replace(1, ticket.Ticket{ID: 2, Status: vo.StatusInProgress})

	st := board.State()
	assert.Equal(t, vo.StatusInProgress, st.Items[0].Status)
	assert.Equal(t, 1, st.Items[1].ID)
	assert.Equal(t, vo.StatusOpen, st.Items[1].Status)
}
