package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/controller/server"
	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

type serveConfig struct {
	addr              string
	maxExportSize     int64
	assessmentTimeout time.Duration
	shutdownTimeout   time.Duration
}

func (x *serveConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("EGIS_ADDR"),
			Destination: &x.addr,
		},
		&cli.Int64Flag{
			Name:        "max-export-size",
			Usage:       "Maximum size in bytes of an uploaded export",
			Value:       256 << 20,
			Sources:     cli.EnvVars("EGIS_MAX_EXPORT_SIZE"),
			Destination: &x.maxExportSize,
		},
		&cli.DurationFlag{
			Name:        "assessment-timeout",
			Usage:       "Upper bound of an assessment batch started through the API, 0 for no limit",
			Value:       48 * time.Hour,
			Sources:     cli.EnvVars("EGIS_ASSESSMENT_TIMEOUT"),
			Destination: &x.assessmentTimeout,
		},
		&cli.DurationFlag{
			Name:        "shutdown-timeout",
			Usage:       "Time given to in-flight requests on SIGINT or SIGTERM",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("EGIS_SHUTDOWN_TIMEOUT"),
			Destination: &x.shutdownTimeout,
		},
	}
}

func serveCommand() *cli.Command {
	var (
		cfg serveConfig
		st  stack
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve the assessment and export API over HTTP",
		Flags:   slice.Flatten(cfg.Flags(), st.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.String("addr", cfg.addr),
				slog.Any("config", &st),
			)

			uc, cleanup, err := st.build(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s := server.New(uc,
				server.WithMaxExportSize(cfg.maxExportSize),
				server.WithAssessmentTimeout(cfg.assessmentTimeout),
			)

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return listenAndServe(ctx, &http.Server{
				Addr:    cfg.addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       5 * time.Minute,
				WriteTimeout:      10 * time.Minute,
			}, cfg.shutdownTimeout)
		},
	}
}

// listenAndServe runs srv until ctx is done and then shuts it down gracefully.
func listenAndServe(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	serverErr := make(chan error, 1)
	go func() {
		logging.From(ctx).Info("starting http server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serverErr <- goerr.Wrap(err, "failed to listen and serve", goerr.V("addr", srv.Addr))
		}
	}()

	select {
	case err := <-serverErr:
		return err

	case <-ctx.Done():
		logging.From(ctx).Info("shutting down server", "cause", context.Cause(ctx))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return goerr.Wrap(err, "failed to shutdown server")
		}
	}

	return nil
}
