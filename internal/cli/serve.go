package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func NewServeCmd(deps *Dependencies) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the upload API",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := deps.build()
			if err != nil {
				return err
			}
			cfg := application.Config
			log := application.Logger
			if addr == "" {
				addr = cfg.Server.Addr
			}

			server := &http.Server{
				Addr:         addr,
				Handler:      application.Handler.Routes(),
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
			}

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			errChan := make(chan error, 1)
			go func() {
				log.Info(ctx, "Minutes API listening on %s", addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errChan <- err
				}
				close(errChan)
			}()

			select {
			case <-ctx.Done():
				log.Info(context.Background(), "Shutdown signal received")
			case err := <-errChan:
				if err != nil {
					return err
				}
			}

			shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancelShutdown()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}
			log.Info(shutdownCtx, "Minutes API stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")
	return cmd
}
