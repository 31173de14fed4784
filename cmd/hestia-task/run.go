package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fhirfactory/hestia-task/internal/handlers"
	"github.com/fhirfactory/hestia-task/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Serve the /Task HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// fail fast when the backing store is unreachable
			if err := a.store.Tasks().CreateTableIfAbsent(ctx); err != nil {
				return err
			}

			h := handlers.New(a.tasks)
			srv, err := server.NewServer(a.cfg, func(router *gin.RouterGroup) {
				handlers.RegisterHandlers(router, h)
			})
			if err != nil {
				return err
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start(ctx)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			zap.S().Infow("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Stop(shutdownCtx); err != nil {
				return err
			}
			return <-errCh
		},
	}
}
