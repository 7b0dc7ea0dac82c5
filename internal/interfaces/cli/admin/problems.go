package admin

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/onlyfix/admin/internal/domain/problem"
)

var problemListView = listView[problem.Problem]{
	entity:  "problems",
	headers: []string{"ID", "Name", "Category", "Status", "Description"},
	row: func(p problem.Problem) []string {
		return []string{fmt.Sprint(p.ID), p.Name, p.Category, activeLabel(p), orDash(p.Description)}
	},
}

func activeLabel(p problem.Problem) string {
	if p.IsActive {
		return theme.success.Render(p.ActiveDisplay())
	}
	return theme.faint.Render(p.ActiveDisplay())
}

func (a *App) newProblemsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "problems",
		Aliases: []string{"problem"},
		Short:   "Manage the problem catalogue",
	}
	cmd.AddCommand(
		a.newProblemsListCommand(),
		a.newProblemsGetCommand(),
		a.newProblemsCreateCommand(),
		a.newProblemsUpdateCommand(),
		a.newProblemsDeleteCommand(),
		a.newProblemsStatsCommand(),
	)
	return cmd
}

func (a *App) newProblemsListCommand() *cobra.Command {
	var (
		page             int
		category, search string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := problem.Filter{Category: category, IsActive: boolFlag(cmd, "active"), Search: search}
			ctrl := newController[problem.Problem, problem.Filter](a, "problems", a.client.ListProblems)
			return runList(a, cmd, ctrl, filter, page, problemListView)
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number")
	cmd.Flags().StringVar(&category, "category", "", "Filter by category, e.g. "+strings.Join(problem.SuggestedCategories, ", "))
	cmd.Flags().Bool("active", false, "Only active (--active) or inactive (--active=false) problems")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Search name or description")

	return cmd
}

func (a *App) newProblemsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := a.client.GetProblem(cmd.Context(), id)
			if err != nil {
				return a.fail(err)
			}
			renderProblem(cmd, p)
			return nil
		},
	}
}

func renderProblem(cmd *cobra.Command, p *problem.Problem) {
	renderDetail(cmd.OutOrStdout(), fmt.Sprintf("Problem #%d", p.ID), [][2]string{
		{"Name", p.Name},
		{"Category", p.Category},
		{"Status", activeLabel(*p)},
		{"Description", orDash(p.Description)},
		{"Created", formatTime(p.CreatedAt)},
	})
}

func (a *App) newProblemsCreateCommand() *cobra.Command {
	var (
		name, category string
		inactive       bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a problem to the catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := problem.NewCreateRequest(name, category)
			req.Description = stringFlag(cmd, "description")
			req.IsActive = !inactive
			p, err := a.client.CreateProblem(cmd.Context(), req)
			if err != nil {
				return a.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme.success.Render(fmt.Sprintf("Created problem #%d.", p.ID)))
			renderProblem(cmd, p)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Problem name")
	cmd.Flags().StringVar(&category, "category", "", "Category, e.g. "+strings.Join(problem.SuggestedCategories, ", "))
	cmd.Flags().String("description", "", "Longer description")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "Create the problem as inactive")

	return cmd
}

func (a *App) newProblemsUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			req := problem.UpdateRequest{
				Name:        stringFlag(cmd, "name"),
				Category:    stringFlag(cmd, "category"),
				Description: stringFlag(cmd, "description"),
				IsActive:    boolFlag(cmd, "active"),
			}
			if req == (problem.UpdateRequest{}) {
				return fmt.Errorf("nothing to update")
			}
			if err := a.client.UpdateProblem(cmd.Context(), id, req); err != nil {
				return a.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme.success.Render(fmt.Sprintf("Updated problem #%d.", id)))
			return nil
		},
	}

	cmd.Flags().String("name", "", "Problem name")
	cmd.Flags().String("category", "", "Category")
	cmd.Flags().String("description", "", "Longer description")
	cmd.Flags().Bool("active", true, "Activate (--active) or deactivate (--active=false)")

	return cmd
}

func (a *App) newProblemsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.confirmAndDelete(cmd, "problem", id, a.client.DeleteProblem)
		},
	}
}

func (a *App) newProblemsStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalogue totals and the most reported problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.client.ProblemStatistics(cmd.Context())
			if err != nil {
				return a.fail(err)
			}

			out := cmd.OutOrStdout()
			renderDetail(out, "Problems", [][2]string{
				{"Total", fmt.Sprint(stats.TotalProblems)},
				{"Active", fmt.Sprint(stats.ActiveProblems)},
				{"Inactive", fmt.Sprint(stats.InactiveProblems())},
			})
			if len(stats.ProblemsByFrequency) == 0 {
				return nil
			}
			rows := make([][]string, 0, len(stats.ProblemsByFrequency))
			for _, f := range stats.ProblemsByFrequency {
				rows = append(rows, []string{fmt.Sprint(f.ID), f.Name, f.Category, fmt.Sprint(f.TicketsCount)})
			}
			renderTable(out, []string{"ID", "Name", "Category", "Tickets"}, rows)
			return nil
		},
	}
}
