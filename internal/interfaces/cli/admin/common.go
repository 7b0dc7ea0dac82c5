package admin

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/onlyfix/admin/internal/application/common/listing"
	"github.com/onlyfix/admin/internal/shared/errors"
)

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", arg)
	}
	return id, nil
}

// Optional flags: nil unless the user set them.

func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func boolFlag(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

func newController[T, F any](a *App, entity string, fetch listing.Fetcher[T, F]) *listing.Controller[T, F] {
	return listing.NewController(listing.ControllerConfig[T, F]{Entity: entity, Fetch: fetch}, a.session, a.host, a.log)
}

// listView describes how one resource renders as a table.
type listView[T any] struct {
	entity  string
	headers []string
	row     func(T) []string
}

// runList loads one page through ctrl and prints it.
func runList[T, F any](a *App, cmd *cobra.Command, ctrl *listing.Controller[T, F], filter F, page int, view listView[T]) error {
	ctrl.SetFilter(filter)
	if err := ctrl.LoadPage(cmd.Context(), page); err != nil {
		// the controller already sent a 401 to the login screen
		if st := ctrl.State(); st.Error != "" && !errors.IsUnauthorized(err) {
			a.host.Alert("Error", st.Error)
		}
		return &reportedError{err: err}
	}

	st := ctrl.State()
	out := cmd.OutOrStdout()
	if st.IsEmpty() {
		renderEmpty(out, view.entity)
		return nil
	}
	rows := make([][]string, 0, len(st.Items))
	for _, item := range st.Items {
		rows = append(rows, view.row(item))
	}
	renderTable(out, view.headers, rows)
	renderPageFooter(out, st.CurrentPage, st.LastPage, st.Total)
	return nil
}

// confirmAndDelete asks before deleting entity #id.
func (a *App) confirmAndDelete(cmd *cobra.Command, entity string, id int, del func(ctx context.Context, id int) error) error {
	if !a.host.Confirm("Confirm Delete", fmt.Sprintf("Are you sure you want to delete %s #%d?", entity, id)) {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return nil
	}
	if err := del(cmd.Context(), id); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), theme.success.Render(fmt.Sprintf("Deleted %s #%d.", entity, id)))
	return nil
}
