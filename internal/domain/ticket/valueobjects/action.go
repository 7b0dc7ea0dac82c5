package valueobjects

import "fmt"

// Action is a ticket workflow step. Its value doubles as the endpoint sub-path.
type Action string

const (
	ActionAccept   Action = "accept"
	ActionStart    Action = "start"
	ActionComplete Action = "complete"
	ActionClose    Action = "close"
)

var actionResults = map[Action]TicketStatus{
	ActionAccept:   StatusAssigned,
	ActionStart:    StatusInProgress,
	ActionComplete: StatusCompleted,
	ActionClose:    StatusClosed,
}

var actionLabels = map[Action]string{
	ActionAccept:   "Accept",
	ActionStart:    "Start",
	ActionComplete: "Complete",
	ActionClose:    "Close",
}

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	_, ok := actionResults[a]
	return ok
}

func (a Action) Label() string {
	if label, ok := actionLabels[a]; ok {
		return label
	}
	return string(a)
}

// ResultStatus is the status the backend reports after a successful action.
func (a Action) ResultStatus() TicketStatus {
	return actionResults[a]
}

func NewAction(s string) (Action, error) {
	a := Action(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid ticket action: %s", s)
	}
	return a, nil
}
