package ticket

import (
	"strconv"
	"strings"

	vo "github.com/onlyfix/admin/internal/domain/ticket/valueobjects"
)

type CreateRequest struct {
	CarID        int         `json:"car_id" validate:"gt=0"`
	Description  string      `json:"description" validate:"notblank"`
	Priority     vo.Priority `json:"priority" validate:"oneof=low medium high urgent"`
	ProblemIDs   []int       `json:"problem_ids" validate:"min=1,dive,gt=0"`
	ProblemNotes []*string   `json:"problem_notes"`
}

// NewCreateRequest builds a medium-priority ticket with notes padded to the
// number of problems.
func NewCreateRequest(carID int, description string, problemIDs []int, notes []*string) CreateRequest {
	return CreateRequest{
		CarID:        carID,
		Description:  strings.TrimSpace(description),
		Priority:     vo.PriorityMedium,
		ProblemIDs:   problemIDs,
		ProblemNotes: PadNotes(notes, len(problemIDs)),
	}
}

// UpdateRequest sends only the fields that are set. A ticket always keeps at
// least one problem, so an empty ProblemIDs is never sent: nil and empty both
// leave the attached problems unchanged.
type UpdateRequest struct {
	Description  *string          `json:"description,omitempty"`
	Priority     *vo.Priority     `json:"priority,omitempty"`
	Status       *vo.TicketStatus `json:"status,omitempty"`
	MechanicID   *int             `json:"mechanic_id,omitempty"`
	ProblemIDs   []int            `json:"problem_ids,omitempty"`
	ProblemNotes []*string        `json:"problem_notes,omitempty"`
}

// ParseProblemIDs reads a comma separated id list, skipping blanks, junk and
// non-positive values.
func ParseProblemIDs(s string) []int {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// ParseProblemNotes splits a comma separated note list; blank entries become nil.
func ParseProblemNotes(s string, expected int) []*string {
	if strings.TrimSpace(s) == "" {
		return PadNotes(nil, expected)
	}
	var notes []*string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			notes = append(notes, nil)
			continue
		}
		note := part
		notes = append(notes, &note)
	}
	return PadNotes(notes, expected)
}

// PadNotes extends notes with nils up to n entries.
func PadNotes(notes []*string, n int) []*string {
	out := append([]*string(nil), notes...)
	for len(out) < n {
		out = append(out, nil)
	}
	return out
}
