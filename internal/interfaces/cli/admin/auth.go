package admin

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/onlyfix/admin/internal/domain/user"
	"github.com/onlyfix/admin/internal/shared/errors"
)

func (a *App) newLoginCommand() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				if email, err = a.host.readLine("Email: "); err != nil {
					return fmt.Errorf("read email: %w", err)
				}
			}
			if password == "" {
				if password, err = a.readPassword(); err != nil {
					return fmt.Errorf("read password: %w", err)
				}
			}

			resp, err := a.client.Login(cmd.Context(), user.LoginRequest{Email: email, Password: password})
			if err != nil {
				// a 401 here means bad credentials, not an expired session
				a.host.Alert("Login Failed", errors.Message(err))
				return &reportedError{err: err}
			}

			name := email
			if resp.User != nil {
				name = resp.User.Name
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme.success.Render("Logged in as "+name))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")

	return cmd
}

// readPassword reads without echo on a terminal and as a plain line otherwise.
func (a *App) readPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return a.host.readLine("Password: ")
	}
	fmt.Fprint(a.host.out, "Password: ")
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(a.host.out)
	if err != nil {
		return "", err
	}
	return string(secret), nil
}

func (a *App) newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the token and forget it locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func (a *App) newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.session.HasToken() {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
				return nil
			}
			me, err := a.client.CurrentUser(cmd.Context())
			if err != nil {
				return a.fail(err)
			}
			renderDetail(cmd.OutOrStdout(), me.Name, [][2]string{
				{"ID", fmt.Sprint(me.ID)},
				{"Email", me.Email},
				{"Roles", me.RoleDisplay()},
			})
			return nil
		},
	}
}

func (a *App) newHealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.client.HealthCheck(cmd.Context()) {
				a.host.Alert("Unhealthy", a.cfg.API.BaseURL+" did not answer /api/health")
				return &reportedError{err: fmt.Errorf("health check failed")}
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme.success.Render("OK ")+a.cfg.API.BaseURL)
			return nil
		},
	}
}
