package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/onlyfix/admin/internal/domain/ticket"
	vo "github.com/onlyfix/admin/internal/domain/ticket/valueobjects"
	"github.com/onlyfix/admin/internal/shared/pagination"
	"github.com/onlyfix/admin/internal/shared/validation"
)

func (c *Client) ListTickets(ctx context.Context, page int, filter ticket.Filter) (*pagination.Response[ticket.Ticket], error) {
	result, err := listResource[ticket.Ticket](ctx, c, "/tickets", filter.Values(page))
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return result, nil
}

func (c *Client) GetTicket(ctx context.Context, id int) (*ticket.Ticket, error) {
	var t ticket.Ticket
	if err := c.getResource(ctx, resourcePath("tickets", id), &t); err != nil {
		return nil, fmt.Errorf("get ticket %d: %w", id, err)
	}
	return &t, nil
}

func (c *Client) CreateTicket(ctx context.Context, req ticket.CreateRequest) (*ticket.Ticket, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}
	req.ProblemNotes = ticket.PadNotes(req.ProblemNotes, len(req.ProblemIDs))

	var t ticket.Ticket
	if err := c.sendResource(ctx, http.MethodPost, "/tickets", req, &t); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	return &t, nil
}

func (c *Client) UpdateTicket(ctx context.Context, id int, req ticket.UpdateRequest) error {
	if err := c.sendResource(ctx, http.MethodPut, resourcePath("tickets", id), req, nil); err != nil {
		return fmt.Errorf("update ticket %d: %w", id, err)
	}
	return nil
}

func (c *Client) DeleteTicket(ctx context.Context, id int) error {
	if err := c.sendResource(ctx, http.MethodDelete, resourcePath("tickets", id), nil, nil); err != nil {
		return fmt.Errorf("delete ticket %d: %w", id, err)
	}
	return nil
}

func (c *Client) TicketStatistics(ctx context.Context) (*ticket.Statistics, error) {
	var stats ticket.Statistics
	if err := c.getResource(ctx, "/tickets/statistics", &stats); err != nil {
		return nil, fmt.Errorf("ticket statistics: %w", err)
	}
	return &stats, nil
}

// TransitionTicket posts a workflow action and returns the ticket as the server
// left it. Whether the action is allowed is decided server-side.
func (c *Client) TransitionTicket(ctx context.Context, id int, action vo.Action) (*ticket.Ticket, error) {
	if !action.IsValid() {
		return nil, fmt.Errorf("unknown ticket action %q", action)
	}
	var t ticket.Ticket
	if err := c.sendResource(ctx, http.MethodPost, resourcePath("tickets", id, string(action)), nil, &t); err != nil {
		return nil, fmt.Errorf("%s ticket %d: %w", action, id, err)
	}
	return &t, nil
}

func (c *Client) AcceptTicket(ctx context.Context, id int) (*ticket.Ticket, error) {
	return c.TransitionTicket(ctx, id, vo.ActionAccept)
}

func (c *Client) StartTicket(ctx context.Context, id int) (*ticket.Ticket, error) {
	return c.TransitionTicket(ctx, id, vo.ActionStart)
}

func (c *Client) CompleteTicket(ctx context.Context, id int) (*ticket.Ticket, error) {
	return c.TransitionTicket(ctx, id, vo.ActionComplete)
}

func (c *Client) CloseTicket(ctx context.Context, id int) (*ticket.Ticket, error) {
	return c.TransitionTicket(ctx, id, vo.ActionClose)
}
