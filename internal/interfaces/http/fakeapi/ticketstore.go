package fakeapi

import (
	"fmt"
	"slices"
	"strings"

	"github.com/onlyfix/admin/internal/domain/problem"
	"github.com/onlyfix/admin/internal/domain/ticket"
	vo "github.com/onlyfix/admin/internal/domain/ticket/valueobjects"
	"github.com/onlyfix/admin/internal/shared/pagination"
)

var actionVerbs = map[vo.Action]string{
	vo.ActionAccept:   "accepted",
	vo.ActionStart:    "started",
	vo.ActionComplete: "completed",
	vo.ActionClose:    "closed",
}

func (s *Store) ticketIndex(id int) int {
	return slices.IndexFunc(s.tickets, func(t ticketRecord) bool { return t.ID == id })
}

// hydrate loads the relations the API embeds in ticket payloads.
func (s *Store) hydrate(rec ticketRecord) ticket.Ticket {
	t := rec.Ticket
	if i := s.userIndex(t.UserID); i >= 0 {
		u := s.users[i]
		t.User = &u
	}
	if t.MechanicID != nil {
		if i := s.userIndex(*t.MechanicID); i >= 0 {
			m := s.users[i]
			t.Mechanic = &m
		}
	}
	if i := s.carIndex(t.CarID); i >= 0 {
		c := s.cars[i]
		t.Car = &c
	}
	t.Problems = make([]problem.Problem, 0, len(rec.problemIDs))
	for n, pid := range rec.problemIDs {
		i := s.problemIndex(pid)
		if i < 0 {
			continue
		}
		p := s.problems[i]
		p.Pivot = &problem.Pivot{TicketID: t.ID, ProblemID: pid, Notes: rec.notes[n]}
		t.Problems = append(t.Problems, p)
	}
	return t
}

func (s *Store) ListTickets(pageNum int, f ticket.Filter) pagination.Response[ticket.Ticket] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []ticket.Ticket
	for _, rec := range s.tickets {
		t := rec.Ticket
		switch {
		case f.Status != "" && t.Status != f.Status:
			continue
		case f.Priority != "" && t.Priority != f.Priority:
			continue
		case f.UserID != nil && t.UserID != *f.UserID:
			continue
		case f.CarID != nil && t.CarID != *f.CarID:
			continue
		case f.MechanicID != nil && (t.MechanicID == nil || *t.MechanicID != *f.MechanicID):
			continue
		}
		out = append(out, s.hydrate(rec))
	}
	return pagination.Slice(out, pageNum, s.perPage)
}

func (s *Store) GetTicket(id int) (*ticket.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.ticketIndex(id)
	if i < 0 {
		return nil, notFound("Ticket")
	}
	t := s.hydrate(s.tickets[i])
	return &t, nil
}

func (s *Store) checkProblems(ids []int) error {
	for n, pid := range ids {
		if s.problemIndex(pid) < 0 {
			msg := "The selected problem is invalid."
			return fieldError(fmt.Sprintf("problem_ids.%d", n), msg)
		}
	}
	return nil
}

// CreateTicket opens a ticket for the car's owner.
func (s *Store) CreateTicket(req ticket.CreateRequest) (*ticket.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci := s.carIndex(req.CarID)
	if ci < 0 {
		return nil, fieldError("car_id", "The selected car id is invalid.")
	}
	if err := s.checkProblems(req.ProblemIDs); err != nil {
		return nil, err
	}

	rec := ticketRecord{
		Ticket: ticket.Ticket{
			ID:          s.id("tickets"),
			UserID:      s.cars[ci].UserID,
			CarID:       req.CarID,
			Status:      vo.StatusOpen,
			Priority:    req.Priority,
			Description: req.Description,
			CreatedAt:   s.timestamp(),
			UpdatedAt:   s.timestamp(),
		},
		problemIDs: slices.Clone(req.ProblemIDs),
		notes:      ticket.PadNotes(req.ProblemNotes, len(req.ProblemIDs)),
	}
	if rec.Priority == "" {
		rec.Priority = vo.PriorityMedium
	}
	s.tickets = append(s.tickets, rec)
	t := s.hydrate(rec)
	return &t, nil
}

func (s *Store) UpdateTicket(id int, req ticket.UpdateRequest) (*ticket.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.ticketIndex(id)
	if i < 0 {
		return nil, notFound("Ticket")
	}
	rec := s.tickets[i]
	if req.Priority != nil {
		if !req.Priority.IsValid() {
			return nil, fieldError("priority", "The selected priority is invalid.")
		}
		rec.Priority = *req.Priority
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fieldError("status", "The selected status is invalid.")
		}
		rec.Status = *req.Status
	}
	if req.MechanicID != nil {
		if s.userIndex(*req.MechanicID) < 0 {
			return nil, fieldError("mechanic_id", "The selected mechanic id is invalid.")
		}
		mid := *req.MechanicID
		rec.MechanicID = &mid
	}
	if req.Description != nil {
		rec.Description = *req.Description
	}
	if req.ProblemIDs != nil {
		if err := s.checkProblems(req.ProblemIDs); err != nil {
			return nil, err
		}
		rec.problemIDs = slices.Clone(req.ProblemIDs)
		rec.notes = ticket.PadNotes(req.ProblemNotes, len(req.ProblemIDs))
	}
	rec.UpdatedAt = s.timestamp()
	s.tickets[i] = rec
	t := s.hydrate(rec)
	return &t, nil
}

func (s *Store) DeleteTicket(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.ticketIndex(id)
	if i < 0 {
		return notFound("Ticket")
	}
	s.tickets = slices.Delete(s.tickets, i, i+1)
	return nil
}

// Transition applies a workflow action on behalf of actorID. Actions the
// current status does not permit fail with 422 and leave the ticket as is.
// Accept assigns the ticket to the actor.
func (s *Store) Transition(id int, action vo.Action, actorID int) (*ticket.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.ticketIndex(id)
	if i < 0 {
		return nil, notFound("Ticket")
	}
	rec := s.tickets[i]
	if !rec.Status.Allows(action) {
		msg := fmt.Sprintf("Ticket cannot be %s while %s.", actionVerbs[action], strings.ToLower(rec.Status.Label()))
		return nil, fieldError("status", msg)
	}

	rec.Status = action.ResultStatus()
	switch action {
	case vo.ActionAccept:
		mid := actorID
		rec.MechanicID = &mid
		rec.AcceptedAt = s.timestamp()
	case vo.ActionComplete:
		rec.CompletedAt = s.timestamp()
	}
	rec.UpdatedAt = s.timestamp()
	s.tickets[i] = rec
	t := s.hydrate(rec)
	return &t, nil
}

func (s *Store) TicketStatistics() ticket.Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := ticket.Statistics{TotalTickets: len(s.tickets)}
	today := s.now().UTC().Format("2006-01-02")
	for _, rec := range s.tickets {
		switch rec.Status {
		case vo.StatusOpen:
			stats.ByStatus.Open++
		case vo.StatusAssigned:
			stats.ByStatus.Assigned++
		case vo.StatusInProgress:
			stats.ByStatus.InProgress++
		case vo.StatusCompleted:
			stats.ByStatus.Completed++
		case vo.StatusClosed:
			stats.ByStatus.Closed++
		}
		switch rec.Priority {
		case vo.PriorityLow:
			stats.ByPriority.Low++
		case vo.PriorityMedium:
			stats.ByPriority.Medium++
		case vo.PriorityHigh:
			stats.ByPriority.High++
		case vo.PriorityUrgent:
			stats.ByPriority.Urgent++
		}
		if rec.CompletedAt != nil && rec.CompletedAt.UTC().Format("2006-01-02") == today {
			stats.CompletedToday++
		}
	}
	stats.OpenTickets = stats.ByStatus.Open
	stats.AssignedTickets = stats.ByStatus.Assigned
	stats.InProgressTickets = stats.ByStatus.InProgress
	return stats
}
