package usecases

import (
	"context"
	"fmt"

	"github.com/onlyfix/admin/internal/application/common/listing"
	"github.com/onlyfix/admin/internal/domain/ticket"
	vo "github.com/onlyfix/admin/internal/domain/ticket/valueobjects"
	"github.com/onlyfix/admin/internal/shared/logger"
	"github.com/onlyfix/admin/internal/shared/pagination"
)

// TicketsBoard is the tickets screen: the paginated list plus the workflow
// buttons of each row.
type TicketsBoard struct {
	*listing.Controller[ticket.Ticket, ticket.Filter]
	transition TransitionTicketExecutor
	host       listing.Host
}

func NewTicketsBoard(
	gateway TicketGateway,
	transition TransitionTicketExecutor,
	session listing.SessionClearer,
	host listing.Host,
	log logger.Interface,
) *TicketsBoard {
	controller := listing.NewController(listing.ControllerConfig[ticket.Ticket, ticket.Filter]{
		Entity: "ticket",
		Fetch:  gateway.ListTickets,
		Delete: func(ctx context.Context, t ticket.Ticket) error {
			return gateway.DeleteTicket(ctx, t.ID)
		},
		Describe: func(t ticket.Ticket) string {
			return fmt.Sprintf("ticket #%d", t.ID)
		},
		Key: func(t ticket.Ticket) int { return t.ID },
	}, session, host, log)

	return &TicketsBoard{
		Controller: controller,
		transition: transition,
		host:       host,
	}
}

// Focus narrows the board to a single ticket, as the detail screen does, so
// the workflow actions can run on index 0.
func (b *TicketsBoard) Focus(t ticket.Ticket) {
	b.Store().Dispatch(listing.PageLoaded[ticket.Ticket]{Page: pagination.Slice([]ticket.Ticket{t}, 1, 1)})
}

func (b *TicketsBoard) Accept(ctx context.Context, index int) (bool, error) {
	return b.apply(ctx, index, vo.ActionAccept)
}

func (b *TicketsBoard) Start(ctx context.Context, index int) (bool, error) {
	return b.apply(ctx, index, vo.ActionStart)
}

func (b *TicketsBoard) Complete(ctx context.Context, index int) (bool, error) {
	return b.apply(ctx, index, vo.ActionComplete)
}

// Close asks for confirmation before closing.
func (b *TicketsBoard) Close(ctx context.Context, index int) (bool, error) {
	t, err := b.ItemAt(index)
	if err != nil {
		return false, err
	}
	if !b.host.Confirm("Close Ticket", fmt.Sprintf("Are you sure you want to close ticket #%d?", t.ID)) {
		return false, nil
	}
	return b.apply(ctx, index, vo.ActionClose)
}

// apply runs one workflow action on the row at index. On success the row
// holding that ticket is replaced by the server's copy, if it is still on the
// page; on failure it is left untouched.
func (b *TicketsBoard) apply(ctx context.Context, index int, action vo.Action) (bool, error) {
	t, err := b.ItemAt(index)
	if err != nil {
		return false, err
	}

	b.Busy()
	result, err := b.transition.Execute(ctx, TransitionTicketCommand{
		TicketID:      t.ID,
		Action:        action,
		CurrentStatus: t.Status,
	})
	if err != nil {
		b.Fail(err)
		return false, err
	}

	b.Replace(index, *result.Ticket)
	return true, nil
}
