package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	apihttp "mealflow/internal/adapters/in/http"
	"mealflow/internal/adapters/out/postgres"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the scheduled jobs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := LoadConfig(configFile)
		if err != nil {
			return err
		}
		logger := NewLogger(cfg.Log)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return serve(ctx, cfg, logger)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "run database migrations before serving")
}

func serve(ctx context.Context, cfg Config, logger zerolog.Logger) error {
	db, err := postgres.Open(cfg.DB.Connection(), logger)
	if err != nil {
		return err
	}
	defer closeDB(db, logger)

	if migrateOnStart {
		if err = postgres.Migrate(db.WithContext(ctx)); err != nil {
			return err
		}
	}

	root, err := NewCompositionRoot(cfg, db, logger)
	if err != nil {
		return err
	}
	defer root.Close()

	e := apihttp.NewEcho(root.CreateHTTPServer(), logger)

	var jobManager interface{ StopAll() }
	if cfg.Jobs.Enabled {
		jm := root.CreateJobManager()
		if err = jm.StartAll(); err != nil {
			return err
		}
		jobManager = jm
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%d", cfg.HTTP.Port)
		logger.Info().Str("addr", addr).Msg("http server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down")

		if jobManager != nil {
			jobManager.StopAll()
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func closeDB(db *gorm.DB, logger zerolog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err = sqlDB.Close(); err != nil {
		logger.Warn().Err(err).Msg("close database")
	}
}
