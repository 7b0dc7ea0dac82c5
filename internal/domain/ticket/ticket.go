package ticket

import (
	"fmt"
	"net/url"
	"time"

	"github.com/onlyfix/admin/internal/domain/car"
	"github.com/onlyfix/admin/internal/domain/problem"
	vo "github.com/onlyfix/admin/internal/domain/ticket/valueobjects"
	"github.com/onlyfix/admin/internal/domain/user"
	"github.com/onlyfix/admin/internal/shared/query"
)

// Ticket is a repair request as returned by the API. Status and priority are
// kept as received; unknown codes survive decoding and display verbatim.
type Ticket struct {
	ID          int               `json:"id"`
	UserID      int               `json:"user_id"`
	MechanicID  *int              `json:"mechanic_id"`
	CarID       int               `json:"car_id"`
	Status      vo.TicketStatus   `json:"status"`
	Priority    vo.Priority       `json:"priority"`
	Description string            `json:"description"`
	AcceptedAt  *time.Time        `json:"accepted_at"`
	CompletedAt *time.Time        `json:"completed_at"`
	CreatedAt   *time.Time        `json:"created_at,omitempty"`
	UpdatedAt   *time.Time        `json:"updated_at,omitempty"`
	User        *user.User        `json:"user,omitempty"`
	Mechanic    *user.User        `json:"mechanic,omitempty"`
	Car         *car.Car          `json:"car,omitempty"`
	Problems    []problem.Problem `json:"problems,omitempty"`
}

func (t *Ticket) StatusDisplay() string {
	return t.Status.Label()
}

func (t *Ticket) PriorityDisplay() string {
	return t.Priority.Label()
}

func (t *Ticket) Permissions() vo.Permissions {
	return t.Status.Permissions()
}

func (t *Ticket) OwnerDisplay() string {
	if t.User != nil {
		return t.User.Name
	}
	return fmt.Sprintf("User #%d", t.UserID)
}

func (t *Ticket) MechanicDisplay() string {
	if t.Mechanic != nil {
		return t.Mechanic.Name
	}
	if t.MechanicID != nil {
		return fmt.Sprintf("Mechanic #%d", *t.MechanicID)
	}
	return "Unassigned"
}

func (t *Ticket) CarDisplay() string {
	if t.Car != nil {
		return t.Car.DisplayName()
	}
	return fmt.Sprintf("Car #%d", t.CarID)
}

// ProblemIDs lists the attached problem ids in order.
func (t *Ticket) ProblemIDs() []int {
	ids := make([]int, 0, len(t.Problems))
	for _, p := range t.Problems {
		ids = append(ids, p.ID)
	}
	return ids
}

// Filter narrows the ticket list.
type Filter struct {
	Status     vo.TicketStatus
	Priority   vo.Priority
	MechanicID *int
	UserID     *int
	CarID      *int
}

func (f Filter) Values(page int) url.Values {
	return query.NewBuilder(page).
		String("status", string(f.Status)).
		String("priority", string(f.Priority)).
		IntPtr("mechanic_id", f.MechanicID).
		IntPtr("user_id", f.UserID).
		IntPtr("car_id", f.CarID).
		Values()
}

type StatusCounts struct {
	Open       int `json:"open"`
	Assigned   int `json:"assigned"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Closed     int `json:"closed"`
}

type PriorityCounts struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
	Urgent int `json:"urgent"`
}

type Statistics struct {
	TotalTickets      int            `json:"total_tickets"`
	ByStatus          StatusCounts   `json:"by_status"`
	ByPriority        PriorityCounts `json:"by_priority"`
	OpenTickets       int            `json:"open_tickets"`
	AssignedTickets   int            `json:"assigned_tickets"`
	InProgressTickets int            `json:"in_progress_tickets"`
	CompletedToday    int            `json:"completed_today"`
}

// ActiveTickets counts tickets that still need work.
func (s *Statistics) ActiveTickets() int {
	return s.OpenTickets + s.AssignedTickets + s.InProgressTickets
}
