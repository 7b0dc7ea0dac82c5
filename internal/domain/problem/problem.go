package problem

import (
	"net/url"
	"time"

	"github.com/onlyfix/admin/internal/shared/query"
)

// SuggestedCategories are offered by the UI. The backend accepts any category.
var SuggestedCategories = []string{
	"engine", "transmission", "electrical", "brakes",
	"suspension", "steering", "body", "other",
}

type Problem struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Description *string    `json:"description"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	Pivot       *Pivot     `json:"pivot,omitempty"`
}

// Pivot is the per-ticket attachment record, present when a problem is
// embedded in a ticket.
type Pivot struct {
	TicketID  int     `json:"ticket_id"`
	ProblemID int     `json:"problem_id"`
	Notes     *string `json:"notes"`
}

func (p *Problem) ActiveDisplay() string {
	if p.IsActive {
		return "Active"
	}
	return "Inactive"
}

// Notes returns the pivot note or "".
func (p *Problem) Notes() string {
	if p.Pivot == nil || p.Pivot.Notes == nil {
		return ""
	}
	return *p.Pivot.Notes
}

type Filter struct {
	Category string
	IsActive *bool
	Search   string
}

func (f Filter) Values(page int) url.Values {
	return query.NewBuilder(page).
		String("category", f.Category).
		BoolPtr("is_active", f.IsActive).
		String("search", f.Search).
		Values()
}

type Frequency struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	TicketsCount int    `json:"tickets_count"`
}

type Statistics struct {
	TotalProblems       int         `json:"total_problems"`
	ActiveProblems      int         `json:"active_problems"`
	ProblemsByFrequency []Frequency `json:"problems_by_frequency"`
}

func (s *Statistics) InactiveProblems() int {
	return s.TotalProblems - s.ActiveProblems
}
