package admin

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/onlyfix/admin/internal/application/ticket/usecases"
	"github.com/onlyfix/admin/internal/domain/ticket"
	vo "github.com/onlyfix/admin/internal/domain/ticket/valueobjects"
)

var ticketListView = listView[ticket.Ticket]{
	entity:  "tickets",
	headers: []string{"ID", "Status", "Priority", "Car", "Owner", "Mechanic", "Created", "Actions"},
	row: func(t ticket.Ticket) []string {
		return []string{
			fmt.Sprint(t.ID),
			theme.status(t.Status),
			theme.priority(t.Priority),
			t.CarDisplay(),
			t.OwnerDisplay(),
			t.MechanicDisplay(),
			formatTime(t.CreatedAt),
			actionsLabel(t.Permissions()),
		}
	},
}

// actionsLabel lists the workflow subcommands offered for a status.
func actionsLabel(p vo.Permissions) string {
	var actions []string
	if p.CanAccept {
		actions = append(actions, string(vo.ActionAccept))
	}
	if p.CanStart {
		actions = append(actions, string(vo.ActionStart))
	}
	if p.CanComplete {
		actions = append(actions, string(vo.ActionComplete))
	}
	if p.CanClose {
		actions = append(actions, string(vo.ActionClose))
	}
	if len(actions) == 0 {
		return "-"
	}
	return strings.Join(actions, " ")
}

func (a *App) newTicketsBoard() *usecases.TicketsBoard {
	log := a.log.Named("tickets")
	return usecases.NewTicketsBoard(a.client, usecases.NewTransitionTicketUseCase(a.client, log), a.session, a.host, log)
}

func (a *App) newTicketsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tickets",
		Aliases: []string{"ticket"},
		Short:   "Manage repair tickets and their workflow",
	}
	cmd.AddCommand(
		a.newTicketsListCommand(),
		a.newTicketsGetCommand(),
		a.newTicketsCreateCommand(),
		a.newTicketsUpdateCommand(),
		a.newTicketsDeleteCommand(),
		a.newTicketsStatsCommand(),
		a.newTicketTransitionCommand(vo.ActionAccept, "Assign an open ticket to yourself"),
		a.newTicketTransitionCommand(vo.ActionStart, "Start work on an assigned ticket"),
		a.newTicketTransitionCommand(vo.ActionComplete, "Mark a ticket in progress as completed"),
		a.newTicketTransitionCommand(vo.ActionClose, "Close a ticket without completing it"),
	)
	return cmd
}

func (a *App) newTicketsListCommand() *cobra.Command {
	var (
		page             int
		status, priority string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tickets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ticket.Filter{
				MechanicID: intFlag(cmd, "mechanic-id"),
				UserID:     intFlag(cmd, "user-id"),
				CarID:      intFlag(cmd, "car-id"),
			}
			if status != "" {
				s, err := vo.NewTicketStatus(status)
				if err != nil {
					return err
				}
				filter.Status = s
			}
			if priority != "" {
				p, err := vo.NewPriority(priority)
				if err != nil {
					return err
				}
				filter.Priority = p
			}

			board := a.newTicketsBoard()
			return runList(a, cmd, board.Controller, filter, page, ticketListView)
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status ("+joinStatuses()+")")
	cmd.Flags().StringVar(&priority, "priority", "", "Filter by priority ("+joinPriorities()+")")
	cmd.Flags().Int("mechanic-id", 0, "Only tickets assigned to this mechanic")
	cmd.Flags().Int("user-id", 0, "Only tickets of this customer")
	cmd.Flags().Int("car-id", 0, "Only tickets for this car")

	return cmd
}

func joinStatuses() string {
	var names []string
	for _, s := range vo.Statuses() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}

func joinPriorities() string {
	var names []string
	for _, p := range vo.Priorities() {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}

func (a *App) newTicketsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one ticket with its problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			t, err := a.client.GetTicket(cmd.Context(), id)
			if err != nil {
				return a.fail(err)
			}
			renderTicket(cmd, t)
			return nil
		},
	}
}

func renderTicket(cmd *cobra.Command, t *ticket.Ticket) {
	out := cmd.OutOrStdout()
	renderDetail(out, fmt.Sprintf("Ticket #%d", t.ID), [][2]string{
		{"Status", theme.status(t.Status)},
		{"Priority", theme.priority(t.Priority)},
		{"Car", t.CarDisplay()},
		{"Owner", t.OwnerDisplay()},
		{"Mechanic", t.MechanicDisplay()},
		{"Description", t.Description},
		{"Accepted", formatTime(t.AcceptedAt)},
		{"Completed", formatTime(t.CompletedAt)},
		{"Created", formatTime(t.CreatedAt)},
		{"Actions", actionsLabel(t.Permissions())},
	})
	if len(t.Problems) == 0 {
		return
	}
	rows := make([][]string, 0, len(t.Problems))
	for _, p := range t.Problems {
		note := p.Notes()
		if note == "" {
			note = "-"
		}
		rows = append(rows, []string{fmt.Sprint(p.ID), p.Name, p.Category, note})
	}
	renderTable(out, []string{"ID", "Problem", "Category", "Notes"}, rows)
}

func (a *App) newTicketsCreateCommand() *cobra.Command {
	var (
		carID                           int
		description, priority, problems string
		notes                           string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a repair ticket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := ticket.ParseProblemIDs(problems)
			req := ticket.NewCreateRequest(carID, description, ids, ticket.ParseProblemNotes(notes, len(ids)))
			if priority != "" {
				req.Priority = vo.Priority(priority)
			}
			t, err := a.client.CreateTicket(cmd.Context(), req)
			if err != nil {
				return a.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme.success.Render(fmt.Sprintf("Created ticket #%d.", t.ID)))
			renderTicket(cmd, t)
			return nil
		},
	}

	cmd.Flags().IntVar(&carID, "car-id", 0, "Car to repair")
	cmd.Flags().StringVar(&description, "description", "", "What the customer reported")
	cmd.Flags().StringVar(&priority, "priority", string(vo.PriorityMedium), "Priority ("+joinPriorities()+")")
	cmd.Flags().StringVar(&problems, "problems", "", "Comma separated problem ids, e.g. 1,4")
	cmd.Flags().StringVar(&notes, "notes", "", "Comma separated notes, one per problem")

	return cmd
}

func (a *App) newTicketsUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			req := ticket.UpdateRequest{
				Description: stringFlag(cmd, "description"),
				MechanicID:  intFlag(cmd, "mechanic-id"),
			}
			if p := stringFlag(cmd, "priority"); p != nil {
				pr, err := vo.NewPriority(*p)
				if err != nil {
					return err
				}
				req.Priority = &pr
			}
			if s := stringFlag(cmd, "status"); s != nil {
				st, err := vo.NewTicketStatus(*s)
				if err != nil {
					return err
				}
				req.Status = &st
			}
			if p := stringFlag(cmd, "problems"); p != nil {
				req.ProblemIDs = ticket.ParseProblemIDs(*p)
				notes, _ := cmd.Flags().GetString("notes")
				req.ProblemNotes = ticket.ParseProblemNotes(notes, len(req.ProblemIDs))
			}

			if req.Description == nil && req.MechanicID == nil && req.Priority == nil &&
				req.Status == nil && req.ProblemIDs == nil {
				return fmt.Errorf("nothing to update")
			}
			if err := a.client.UpdateTicket(cmd.Context(), id, req); err != nil {
				return a.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme.success.Render(fmt.Sprintf("Updated ticket #%d.", id)))
			return nil
		},
	}

	cmd.Flags().String("description", "", "Description")
	cmd.Flags().String("priority", "", "Priority ("+joinPriorities()+")")
	cmd.Flags().String("status", "", "Status ("+joinStatuses()+"); prefer the workflow subcommands")
	cmd.Flags().Int("mechanic-id", 0, "Assigned mechanic")
	cmd.Flags().String("problems", "", "Replace the attached problems, e.g. 1,4")
	cmd.Flags().String("notes", "", "Notes for --problems, one per problem")

	return cmd
}

func (a *App) newTicketsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.confirmAndDelete(cmd, "ticket", id, a.client.DeleteTicket)
		},
	}
}

// newTicketTransitionCommand builds one workflow subcommand. The ticket is
// fetched first so the board knows the status it is moving from.
func (a *App) newTicketTransitionCommand(action vo.Action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(action) + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			current, err := a.client.GetTicket(cmd.Context(), id)
			if err != nil {
				return a.fail(err)
			}

			board := a.newTicketsBoard()
			board.Focus(*current)

			var ok bool
			switch action {
			case vo.ActionAccept:
				ok, err = board.Accept(cmd.Context(), 0)
			case vo.ActionStart:
				ok, err = board.Start(cmd.Context(), 0)
			case vo.ActionComplete:
				ok, err = board.Complete(cmd.Context(), 0)
			case vo.ActionClose:
				ok, err = board.Close(cmd.Context(), 0)
			}
			if err != nil {
				// the board has already alerted or sent the user to login
				return &reportedError{err: err}
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}

			updated := board.State().Items[0]
			fmt.Fprintf(cmd.OutOrStdout(), "Ticket #%d: %s -> %s\n",
				updated.ID, theme.status(current.Status), theme.status(updated.Status))
			return nil
		},
	}
}

func (a *App) newTicketsStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show ticket counts by status and priority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.client.TicketStatistics(cmd.Context())
			if err != nil {
				return a.fail(err)
			}

			out := cmd.OutOrStdout()
			renderDetail(out, "Tickets", [][2]string{
				{"Total", fmt.Sprint(stats.TotalTickets)},
				{"Active", fmt.Sprint(stats.ActiveTickets())},
				{"Completed today", fmt.Sprint(stats.CompletedToday)},
			})
			renderTable(out, []string{"Status", "Count"}, [][]string{
				{theme.status(vo.StatusOpen), fmt.Sprint(stats.ByStatus.Open)},
				{theme.status(vo.StatusAssigned), fmt.Sprint(stats.ByStatus.Assigned)},
				{theme.status(vo.StatusInProgress), fmt.Sprint(stats.ByStatus.InProgress)},
				{theme.status(vo.StatusCompleted), fmt.Sprint(stats.ByStatus.Completed)},
				{theme.status(vo.StatusClosed), fmt.Sprint(stats.ByStatus.Closed)},
			})
			renderTable(out, []string{"Priority", "Count"}, [][]string{
				{theme.priority(vo.PriorityUrgent), fmt.Sprint(stats.ByPriority.Urgent)},
				{theme.priority(vo.PriorityHigh), fmt.Sprint(stats.ByPriority.High)},
				{theme.priority(vo.PriorityMedium), fmt.Sprint(stats.ByPriority.Medium)},
				{theme.priority(vo.PriorityLow), fmt.Sprint(stats.ByPriority.Low)},
			})
			return nil
		},
	}
}
