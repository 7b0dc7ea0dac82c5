package usecases

import (
	"context"

	"github.com/onlyfix/admin/internal/domain/ticket"
	vo "github.com/onlyfix/admin/internal/domain/ticket/valueobjects"
	"github.com/onlyfix/admin/internal/shared/errors"
	"github.com/onlyfix/admin/internal/shared/logger"
)

type TransitionTicketCommand struct {
	TicketID int
	Action   vo.Action
	// CurrentStatus is the status the caller last saw; used only for the
	// advisory permission check.
	CurrentStatus vo.TicketStatus
}

type TransitionTicketResult struct {
	Ticket         *ticket.Ticket
	PreviousStatus vo.TicketStatus
}

type TransitionTicketUseCase struct {
	gateway TicketGateway
	logger  logger.Interface
}

func NewTransitionTicketUseCase(gateway TicketGateway, logger logger.Interface) *TransitionTicketUseCase {
	return &TransitionTicketUseCase{
		gateway: gateway,
		logger:  logger,
	}
}

// Execute asks the server to apply the action. The server decides whether the
// transition is allowed; a locally disallowed action is only logged.
func (uc *TransitionTicketUseCase) Execute(ctx context.Context, cmd TransitionTicketCommand) (*TransitionTicketResult, error) {
	uc.logger.Infow("executing transition ticket use case", "ticket_id", cmd.TicketID, "action", cmd.Action)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid transition ticket command", "error", err)
		return nil, err
	}

	if cmd.CurrentStatus != "" && !cmd.CurrentStatus.Allows(cmd.Action) {
		uc.logger.Warnw("action not permitted for current status, sending anyway",
			"ticket_id", cmd.TicketID,
			"action", cmd.Action,
			"status", cmd.CurrentStatus,
		)
	}

	updated, err := uc.gateway.TransitionTicket(ctx, cmd.TicketID, cmd.Action)
	if err != nil {
		uc.logger.Warnw("ticket transition failed", "ticket_id", cmd.TicketID, "action", cmd.Action, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket transitioned successfully",
		"ticket_id", cmd.TicketID,
		"action", cmd.Action,
		"status", updated.Status,
	)

	return &TransitionTicketResult{
		Ticket:         updated,
		PreviousStatus: cmd.CurrentStatus,
	}, nil
}

func (uc *TransitionTicketUseCase) validateCommand(cmd TransitionTicketCommand) error {
	if cmd.TicketID <= 0 {
		return errors.NewValidationError("ticket ID is required", map[string][]string{
			"ticket_id": {"The ticket id field is required."},
		})
	}

	if !cmd.Action.IsValid() {
		return errors.NewValidationError("unknown ticket action", map[string][]string{
			"action": {"The selected action is invalid."},
		})
	}

	return nil
}
