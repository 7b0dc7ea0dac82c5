// Package admin holds the onlyfix-admin commands that talk to the repair-shop API.
package admin

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/onlyfix/admin/internal/application/common/listing"
	"github.com/onlyfix/admin/internal/infrastructure/apiclient"
	"github.com/onlyfix/admin/internal/infrastructure/config"
	"github.com/onlyfix/admin/internal/infrastructure/credentials"
	"github.com/onlyfix/admin/internal/shared/errors"
	"github.com/onlyfix/admin/internal/shared/logger"
	"github.com/onlyfix/admin/internal/shared/version"
)

// App is the state shared by every command of one invocation.
type App struct {
	configPath string
	assumeYes  bool
	verbose    bool

	cfg     *config.Config
	session credentials.Store
	client  *apiclient.Client
	host    *TerminalHost
	log     logger.Interface
}

// NewRootCommand builds the onlyfix-admin command tree.
func NewRootCommand() *cobra.Command {
	a := &App{}

	root := &cobra.Command{
		Use:           "onlyfix-admin",
		Short:         "OnlyFix - repair shop administration",
		Long:          `onlyfix-admin manages users, cars, problems and repair tickets of an OnlyFix workshop from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.bootstrap(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.assumeYes, "yes", "y", false, "Answer yes to every confirmation")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log API requests")

	root.AddCommand(
		a.newLoginCommand(),
		a.newLogoutCommand(),
		a.newWhoamiCommand(),
		a.newHealthCommand(),
		a.newVersionCommand(),
		a.newUsersCommand(),
		a.newCarsCommand(),
		a.newProblemsCommand(),
		a.newTicketsCommand(),
	)

	return root
}

func (a *App) bootstrap(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.verbose {
		cfg.Logger.Level = "debug"
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.log = logger.NewLogger().Named("cli")
	a.host = NewTerminalHost(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), a.assumeYes)

	if cfg.Credentials.Path == memorySession {
		a.session = credentials.NewMemoryStore()
	} else {
		sessionPath, err := resolveSessionPath(cfg.Credentials.Path)
		if err != nil {
			return err
		}
		a.session = credentials.NewFileStore(sessionPath)
	}
	a.client = apiclient.NewClient(cfg.API.BaseURL, a.session,
		apiclient.WithTimeout(cfg.API.Timeout()),
		apiclient.WithUserAgent(cfg.API.UserAgent+"/"+version.Version),
		apiclient.WithLogger(logger.NewLogger().Named("apiclient")),
	)
	return nil
}

const memorySession = "memory"

func resolveSessionPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "onlyfix-admin", "session.yaml"), nil
}

// reportedError marks an error the host has already shown.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already shown to the user.
func IsReported(err error) bool {
	var r *reportedError
	return stderrors.As(err, &r)
}

// fail shows err through the host: a 401 ends the session, anything else is
// an alert.
func (a *App) fail(err error) error {
	if !a.handleUnauthorized(err) {
		a.host.Alert("Error", errors.Message(err))
	}
	return &reportedError{err: err}
}

func (a *App) handleUnauthorized(err error) bool {
	return listing.HandleUnauthorized(err, a.session, a.host, a.log)
}
