// Package devserver runs the in-memory OnlyFix API for local use and demos.
package devserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/onlyfix/admin/internal/infrastructure/config"
	"github.com/onlyfix/admin/internal/interfaces/http/fakeapi"
	"github.com/onlyfix/admin/internal/shared/logger"
)

func NewCommand() *cobra.Command {
	var (
		host  string
		port  int
		empty bool
	)

	cmd := &cobra.Command{
		Use:   "dev-server",
		Short: "Start an in-memory OnlyFix API",
		Long: `Start an in-memory OnlyFix API seeded with demo data.
Sign in with ` + fakeapi.DemoAdminEmail + ` / ` + fakeapi.DemoAdminPassword + `. Everything is lost on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			if cfg == nil {
				loaded, err := config.Load("")
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				cfg = loaded
			}
			if !cmd.Flags().Changed("host") {
				host = cfg.DevServer.Host
			}
			if !cmd.Flags().Changed("port") {
				port = cfg.DevServer.Port
			}
			return run(net.JoinHostPort(host, strconv.Itoa(port)), !empty)
		},
	}

	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "Listen host (default from dev_server.host)")
	cmd.Flags().IntVar(&port, "port", 8089, "Listen port (default from dev_server.port)")
	cmd.Flags().BoolVar(&empty, "empty", false, "Start with only the admin account")

	return cmd
}

func run(addr string, seed bool) error {
	log := logger.NewLogger().Named("devserver")

	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	store := fakeapi.NewStore()
	if seed {
		if err := store.Seed(); err != nil {
			return fmt.Errorf("failed to seed store: %w", err)
		}
	} else if err := store.SeedAdmin(); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      fakeapi.NewRouter(store, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("dev server starting", "address", addr, "seeded", seed)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	fmt.Fprintf(os.Stderr, "OnlyFix dev API listening on http://%s/api (Ctrl+C to stop)\n", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start dev server: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Infow("shutting down dev server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("dev server forced to shutdown", "error", err)
		return err
	}

	log.Infow("dev server exited gracefully")
	return nil
}
