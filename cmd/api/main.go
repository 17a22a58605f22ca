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

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/Ealanisln/vetify-api/internal/audit"
	"github.com/Ealanisln/vetify-api/internal/config"
	dbpkg "github.com/Ealanisln/vetify-api/internal/db"
	infraRepo "github.com/Ealanisln/vetify-api/internal/infra/repository"
	"github.com/Ealanisln/vetify-api/internal/metrics"
	"github.com/Ealanisln/vetify-api/internal/ratelimit"
	"github.com/Ealanisln/vetify-api/internal/routes"
	"github.com/Ealanisln/vetify-api/internal/scheduler"
	ucAppointment "github.com/Ealanisln/vetify-api/internal/usecase/appointment"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "vetify-api",
		Short:         "Vetify clinic scheduling and cash ledger API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(expireRequestsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.IsDev() {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		return zerolog.New(output).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

// ======================================================
// COMMANDS
// ======================================================

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the background scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := newLogger(cfg)

			db, err := dbpkg.NewDB(cfg)
			if err != nil {
				return err
			}
			if err := dbpkg.Migrate(db); err != nil {
				return err
			}

			logger.Info().Msg("migrations applied")
			return nil
		},
	}
}

// expireRequestsCmd runs one expiry pass, for hosts that schedule it
// externally instead of through serve.
func expireRequestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expire-requests",
		Short: "Expire pending appointment requests whose date has passed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := newLogger(cfg)

			db, err := dbpkg.NewDB(cfg)
			if err != nil {
				return err
			}

			ctx := logger.WithContext(cmd.Context())
			n, err := newExpirer(db).Execute(ctx)
			if err != nil {
				return err
			}

			logger.Info().Int64("expired", n).Msg("request expiry finished")
			return nil
		},
	}
}

func newExpirer(db *gorm.DB) *ucAppointment.ExpireRequests {
	metrics.Register()
	return ucAppointment.NewExpireRequests(infraRepo.NewAppointmentGormRepository(db), time.Now)
}

// ======================================================
// SERVER
// ======================================================

func runServer() error {
	cfg := config.Load()
	logger := newLogger(cfg)

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}

	limiter, closeLimiter, err := newLimiter(cfg, logger)
	if err != nil {
		return err
	}
	defer closeLimiter()

	dispatcher := audit.NewDispatcher(audit.New(db), logger)

	jobs := scheduler.NewScheduler(cfg.ExpireRequestsCron, newExpirer(db), logger)
	if err := jobs.Start(); err != nil {
		return err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Config:  cfg,
		Logger:  logger,
		Audit:   dispatcher,
		Limiter: limiter,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown")
	}
	jobs.Stop(shutdownCtx)
	if err := dispatcher.Close(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("audit queue not drained")
	}

	return nil
}

// newLimiter shares the public rate limit through Redis when REDIS_URL is
// set and keeps it in process otherwise.
func newLimiter(cfg *config.Config, logger zerolog.Logger) (ratelimit.Limiter, func(), error) {
	if cfg.RedisURL == "" {
		logger.Info().Msg("rate limiting in process")
		return ratelimit.NewLocalLimiter(cfg.PublicRateLimit, time.Minute), func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Msg("redis unreachable at startup; the limiter fails open until it recovers")
	}

	limiter := ratelimit.NewRedisLimiter(client, "vetify:ratelimit:public", cfg.PublicRateLimit, time.Minute)
	return limiter, func() { _ = client.Close() }, nil
}
