package usecases

import (
	"context"

	"github.com/onlyfix/admin/internal/application/common/listing"
	"github.com/onlyfix/admin/internal/domain/ticket"
	vo "github.com/onlyfix/admin/internal/domain/ticket/valueobjects"
	"github.com/onlyfix/admin/internal/shared/logger"
	"github.com/onlyfix/admin/internal/shared/pagination"
)

type mockTicketGateway struct {
	ListTicketsFunc      func(ctx context.Context, page int, filter ticket.Filter) (*pagination.Response[ticket.Ticket], error)
	DeleteTicketFunc     func(ctx context.Context, id int) error
	TransitionTicketFunc func(ctx context.Context, id int, action vo.Action) (*ticket.Ticket, error)

	transitionCalls int
}

func (m *mockTicketGateway) ListTickets(ctx context.Context, page int, filter ticket.Filter) (*pagination.Response[ticket.Ticket], error) {
	if m.ListTicketsFunc != nil {
		return m.ListTicketsFunc(ctx, page, filter)
	}
	return &pagination.Response[ticket.Ticket]{Data: []ticket.Ticket{}, CurrentPage: 1, LastPage: 1}, nil
}

func (m *mockTicketGateway) DeleteTicket(ctx context.Context, id int) error {
	if m.DeleteTicketFunc != nil {
		return m.DeleteTicketFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketGateway) TransitionTicket(ctx context.Context, id int, action vo.Action) (*ticket.Ticket, error) {
	m.transitionCalls++
	if m.TransitionTicketFunc != nil {
		return m.TransitionTicketFunc(ctx, id, action)
	}
	return nil, nil
}

type mockLogger struct {
	InfowFunc  func(msg string, keysAndValues ...any)
	ErrorwFunc func(msg string, keysAndValues ...any)
	WarnwFunc  func(msg string, keysAndValues ...any)
	DebugwFunc func(msg string, keysAndValues ...any)

	warnings []string
}

func (m *mockLogger) Infow(msg string, keysAndValues ...any) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...any) {
	m.warnings = append(m.warnings, msg)
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

type mockHost struct {
	ConfirmResult bool

	routes   []listing.Route
	alerts   []string
	confirms []string
}

func (m *mockHost) GoTo(route listing.Route) {
	m.routes = append(m.routes, route)
}

func (m *mockHost) Confirm(title, message string) bool {
	m.confirms = append(m.confirms, message)
	return m.ConfirmResult
}

func (m *mockHost) Alert(title, message string) {
	m.alerts = append(m.alerts, message)
}

type mockSession struct {
	cleared int
}

func (m *mockSession) Clear() error {
	m.cleared++
	return nil
}
