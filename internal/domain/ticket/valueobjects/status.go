package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusAssigned   TicketStatus = "assigned"
	StatusInProgress TicketStatus = "in_progress"
	StatusCompleted  TicketStatus = "completed"
	StatusClosed     TicketStatus = "closed"
)

// Permissions lists which workflow actions the UI should offer for a ticket.
// The backend enforces its own rules and may still reject an allowed action.
type Permissions struct {
	CanAccept   bool
	CanStart    bool
	CanComplete bool
	CanClose    bool
}

var orderedStatuses = []TicketStatus{
	StatusOpen,
	StatusAssigned,
	StatusInProgress,
	StatusCompleted,
	StatusClosed,
}

var statusLabels = map[TicketStatus]string{
	StatusOpen:       "Open",
	StatusAssigned:   "Assigned",
	StatusInProgress: "In Progress",
	StatusCompleted:  "Completed",
	StatusClosed:     "Closed",
}

var statusPermissions = map[TicketStatus]Permissions{
	StatusOpen:       {CanAccept: true, CanClose: true},
	StatusAssigned:   {CanStart: true, CanClose: true},
	StatusInProgress: {CanComplete: true, CanClose: true},
	StatusCompleted:  {},
	StatusClosed:     {},
}

// Statuses returns the known statuses in lifecycle order.
func Statuses() []TicketStatus {
	out := make([]TicketStatus, len(orderedStatuses))
	copy(out, orderedStatuses)
	return out
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	_, ok := statusLabels[ts]
	return ok
}

// Label returns the display label. Unknown codes are echoed verbatim.
func (ts TicketStatus) Label() string {
	if label, ok := statusLabels[ts]; ok {
		return label
	}
	return string(ts)
}

// Permissions returns the advisory action flags. Unknown statuses allow nothing.
func (ts TicketStatus) Permissions() Permissions {
	return statusPermissions[ts]
}

func (ts TicketStatus) Allows(action Action) bool {
	p := ts.Permissions()
	switch action {
	case ActionAccept:
		return p.CanAccept
	case ActionStart:
		return p.CanStart
	case ActionComplete:
		return p.CanComplete
	case ActionClose:
		return p.CanClose
	}
	return false
}

func (ts TicketStatus) IsTerminal() bool {
	return ts == StatusCompleted || ts == StatusClosed
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
