package admin

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onlyfix/admin/internal/shared/version"
)

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client and API versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "onlyfix-admin %s\n", version.Normalize(version.Version))

			server, err := a.client.ServerVersion(cmd.Context())
			switch {
			case err != nil:
				fmt.Fprintln(out, theme.faint.Render("API unreachable at "+a.cfg.API.BaseURL))
			case server == "":
				fmt.Fprintln(out, "API version unknown")
			default:
				fmt.Fprintf(out, "API %s\n", version.Normalize(server))
				if version.IsRelease() && version.HasNewerVersion(version.Version, server) {
					fmt.Fprintln(out, theme.warning.Render("The API is newer than this client; consider upgrading."))
				}
			}
			return nil
		},
	}
}
