package admin

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/onlyfix/admin/internal/domain/user"
)

var userListView = listView[user.User]{
	entity:  "users",
	headers: []string{"ID", "Name", "Email", "Roles", "Created"},
	row: func(u user.User) []string {
		return []string{fmt.Sprint(u.ID), u.Name, u.Email, u.RoleDisplay(), formatTime(u.CreatedAt)}
	},
}

func (a *App) newUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage user accounts",
	}
	cmd.AddCommand(
		a.newUsersListCommand(),
		a.newUsersGetCommand(),
		a.newUsersCreateCommand(),
		a.newUsersUpdateCommand(),
		a.newUsersDeleteCommand(),
	)
	return cmd
}

func (a *App) newUsersListCommand() *cobra.Command {
	var (
		page   int
		filter user.Filter
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if filter.Role != "" && !slices.Contains(user.Roles, filter.Role) {
				return fmt.Errorf("invalid role %q (valid: %s)", filter.Role, strings.Join(user.Roles, ", "))
			}
			ctrl := newController[user.User, user.Filter](a, "users", a.client.ListUsers)
			return runList(a, cmd, ctrl, filter, page, userListView)
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number")
	cmd.Flags().StringVar(&filter.Role, "role", "", "Filter by role ("+strings.Join(user.Roles, ", ")+")")
	cmd.Flags().StringVarP(&filter.Search, "search", "s", "", "Search name or email")

	return cmd
}

func (a *App) newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			u, err := a.client.GetUser(cmd.Context(), id)
			if err != nil {
				return a.fail(err)
			}
			renderUser(cmd, u)
			return nil
		},
	}
}

func renderUser(cmd *cobra.Command, u *user.User) {
	renderDetail(cmd.OutOrStdout(), fmt.Sprintf("User #%d", u.ID), [][2]string{
		{"Name", u.Name},
		{"Email", u.Email},
		{"Roles", u.RoleDisplay()},
		{"Created", formatTime(u.CreatedAt)},
		{"Updated", formatTime(u.UpdatedAt)},
	})
}

func (a *App) newUsersCreateCommand() *cobra.Command {
	var name, email, password, role string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := user.NewCreateRequest(name, email, password)
			if role != "" {
				req.Role = role
			}
			u, err := a.client.CreateUser(cmd.Context(), req)
			if err != nil {
				return a.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme.success.Render(fmt.Sprintf("Created user #%d.", u.ID)))
			renderUser(cmd, u)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&role, "role", user.DefaultRole, "Role ("+strings.Join(user.Roles, ", ")+")")

	return cmd
}

func (a *App) newUsersUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			req := user.UpdateRequest{
				Name:     stringFlag(cmd, "name"),
				Email:    stringFlag(cmd, "email"),
				Password: stringFlag(cmd, "password"),
				Role:     stringFlag(cmd, "role"),
			}
			if req == (user.UpdateRequest{}) {
				return fmt.Errorf("nothing to update: pass at least one of --name, --email, --password, --role")
			}
			if err := a.client.UpdateUser(cmd.Context(), id, req); err != nil {
				return a.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme.success.Render(fmt.Sprintf("Updated user #%d.", id)))
			return nil
		},
	}

	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("password", "", "New password")
	cmd.Flags().String("role", "", "Role ("+strings.Join(user.Roles, ", ")+")")

	return cmd
}

func (a *App) newUsersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.confirmAndDelete(cmd, "user", id, a.client.DeleteUser)
		},
	}
}
