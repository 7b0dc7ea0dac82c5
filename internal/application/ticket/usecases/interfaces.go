package usecases

import (
	"context"

	"github.com/onlyfix/admin/internal/domain/ticket"
	vo "github.com/onlyfix/admin/internal/domain/ticket/valueobjects"
	"github.com/onlyfix/admin/internal/shared/pagination"
)

// TicketGateway is the slice of the API client the ticket screens use.
type TicketGateway interface {
	ListTickets(ctx context.Context, page int, filter ticket.Filter) (*pagination.Response[ticket.Ticket], error)
	DeleteTicket(ctx context.Context, id int) error
	TransitionTicket(ctx context.Context, id int, action vo.Action) (*ticket.Ticket, error)
}

type TransitionTicketExecutor interface {
	Execute(ctx context.Context, cmd TransitionTicketCommand) (*TransitionTicketResult, error)
}
