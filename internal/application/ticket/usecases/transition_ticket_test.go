package usecases

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onlyfix/admin/internal/domain/ticket"
	vo "github.com/onlyfix/admin/internal/domain/ticket/valueobjects"
	"github.com/onlyfix/admin/internal/shared/errors"
)

func TestTransitionTicketUseCase_Execute_Success(t *testing.T) {
	gateway := &mockTicketGateway{
		TransitionTicketFunc: func(ctx context.Context, id int, action vo.Action) (*ticket.Ticket, error) {
			assert.Equal(t, 7, id)
			assert.Equal(t, vo.ActionAccept, action)
			return &ticket.Ticket{ID: id, Status: vo.StatusAssigned}, nil
		},
	}
	log := &mockLogger{}

	useCase := NewTransitionTicketUseCase(gateway, log)
	result, err := useCase.Execute(t.Context(), TransitionTicketCommand{
		TicketID:      7,
		Action:        vo.ActionAccept,
		CurrentStatus: vo.StatusOpen,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, vo.StatusAssigned, result.Ticket.Status)
	assert.Equal(t, vo.StatusOpen, result.PreviousStatus)
	assert.Empty(t, log.warnings)
}

func TestTransitionTicketUseCase_Execute_DisallowedStillAsksServer(t *testing.T) {
	gateway := &mockTicketGateway{
		TransitionTicketFunc: func(ctx context.Context, id int, action vo.Action) (*ticket.Ticket, error) {
			return nil, errors.NewValidationError("Ticket cannot be accepted while assigned.", map[string][]string{
				"status": {"Ticket cannot be accepted while assigned."},
			})
		},
	}
	log := &mockLogger{}

	useCase := NewTransitionTicketUseCase(gateway, log)
	result, err := useCase.Execute(t.Context(), TransitionTicketCommand{
		TicketID:      3,
		Action:        vo.ActionAccept,
		CurrentStatus: vo.StatusAssigned,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, 1, gateway.transitionCalls)
	assert.Contains(t, log.warnings, "action not permitted for current status, sending anyway")
}

func TestTransitionTicketUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		command TransitionTicketCommand
	}{
		{name: "missing ticket ID", command: TransitionTicketCommand{Action: vo.ActionStart}},
		{name: "negative ticket ID", command: TransitionTicketCommand{TicketID: -1, Action: vo.ActionStart}},
		{name: "unknown action", command: TransitionTicketCommand{TicketID: 1, Action: "reopen"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &mockTicketGateway{}
			useCase := NewTransitionTicketUseCase(gateway, &mockLogger{})

			_, err := useCase.Execute(t.Context(), tt.command)

			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Zero(t, gateway.transitionCalls)
		})
	}
}

func TestTransitionTicketUseCase_Execute_ServerErrorPassesThrough(t *testing.T) {
	gateway := &mockTicketGateway{
		TransitionTicketFunc: func(ctx context.Context, id int, action vo.Action) (*ticket.Ticket, error) {
			return nil, errors.NewAPIError(http.StatusUnauthorized, "Unauthenticated.", nil)
		},
	}

	useCase := NewTransitionTicketUseCase(gateway, &mockLogger{})
	_, err := useCase.Execute(t.Context(), TransitionTicketCommand{TicketID: 1, Action: vo.ActionStart})

	assert.True(t, errors.IsUnauthorized(err))
	assert.Equal(t, 1, gateway.transitionCalls)
}
