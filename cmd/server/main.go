package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/diewo77/gestioneau/internal/config"
	"github.com/diewo77/gestioneau/internal/db"
	"github.com/diewo77/gestioneau/internal/logging"
	"github.com/diewo77/gestioneau/internal/metrics"
	"github.com/diewo77/gestioneau/internal/search"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// env is what every subcommand starts from.
type env struct {
	cfg *config.Config
	log *zap.Logger
}

func newRootCommand() *cobra.Command {
	e := &env{}
	rootCmd := &cobra.Command{
		Use:          "gestioneau",
		Short:        "Water and sanitation follow-up service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			e.cfg = config.Load()
			log, err := logging.New(e.cfg.Log.Level, e.cfg.Log.Format, e.cfg.App.Name)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			e.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.log != nil {
				_ = e.log.Sync()
			}
		},
	}

	rootCmd.AddCommand(
		setupServeCommand(e),
		setupMigrateCommand(e),
		setupSeedCommand(e),
		setupReindexCommand(e),
	)
	return rootCmd
}

func (e *env) connect() (*gorm.DB, error) {
	return db.Connect(e.cfg.Database, e.log)
}

func setupServeCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(e)
		},
	}
}

func setupMigrateCommand(e *env) *cobra.Command {
	var useSQL bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := e.connect()
			if err != nil {
				return err
			}
			if err := db.Migrate(conn, useSQL || e.cfg.App.Migrations, e.cfg.Database.URL(), e.log); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			e.log.Info("migrations completed")
			return nil
		},
	}
	cmd.Flags().BoolVar(&useSQL, "sql", false, "Apply the SQL files in ./migrations instead of AutoMigrate")
	return cmd
}

func setupSeedCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the baseline reference rows and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := e.connect()
			if err != nil {
				return err
			}
			n, err := db.Seed(conn)
			if err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}
			e.log.Info("seeding completed", zap.Int("inserted", n))
			return nil
		},
	}
}

func setupReindexCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild every search index from the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := e.connect()
			if err != nil {
				return err
			}
			app := NewApp(conn, search.NewClient(e.cfg.Search, e.log), nil, e.log)
			return reindexAll(cmd.Context(), app, reindexLimiter(e.cfg.Search.ReindexRate), e.log)
		},
	}
}

// reindexLimiter paces background reindexing so the cluster keeps serving
// user searches. A non-positive rate disables pacing.
func reindexLimiter(perSecond int) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(perSecond), perSecond)
}

func reindexAll(ctx context.Context, app *App, limiter *rate.Limiter, log *zap.Logger) error {
	total := 0
	for _, r := range app.Reindexers() {
		n, err := r.Reindex(ctx, limiter)
		if err != nil {
			return fmt.Errorf("reindex %s: %w", r.Name(), err)
		}
		total += n
	}
	log.Info("reindex completed", zap.Int("documents", total))
	return nil
}

func serve(e *env) error {
	conn, err := e.connect()
	if err != nil {
		return err
	}
	if err := db.Migrate(conn, e.cfg.App.Migrations, e.cfg.Database.URL(), e.log); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if e.cfg.App.Seed {
		if _, err := db.Seed(conn); err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
	}

	app := NewApp(conn, search.NewClient(e.cfg.Search, e.log), metrics.New(), e.log)

	// Create server with config timeouts
	srv := &http.Server{
		Addr:         ":" + e.cfg.Server.Port,
		Handler:      app,
		ReadTimeout:  time.Duration(e.cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(e.cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(e.cfg.Server.IdleTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		e.log.Info("server starting", zap.String("port", e.cfg.Server.Port), zap.Bool("dev", e.cfg.App.Dev))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
		e.log.Info("shutdown signal received")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		e.log.Error("error during shutdown", zap.Error(err))
	}
	e.log.Info("server stopped gracefully")
	return nil
}
