package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// RequestExpirer is the request expiry use case.
type RequestExpirer interface {
	Execute(ctx context.Context) (int64, error)
}

// Scheduler runs the background jobs of the API process.
type Scheduler struct {
	cron    *cron.Cron
	expirer RequestExpirer
	spec    string
	timeout time.Duration
	logger  zerolog.Logger
}

func NewScheduler(spec string, expirer RequestExpirer, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		// an expiry pass still running when the next one is due is skipped
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		expirer: expirer,
		spec:    spec,
		timeout: 2 * time.Minute,
		logger:  logger.With().Str("component", "scheduler").Logger(),
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.expireRequests); err != nil {
		return fmt.Errorf("schedule request expiry %q: %w", s.spec, err)
	}
	s.logger.Info().Str("spec", s.spec).Msg("starting scheduler")
	s.cron.Start()
	return nil
}

// Stop waits for a running job to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	s.logger.Info().Msg("stopping scheduler")
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (s *Scheduler) expireRequests() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	ctx = s.logger.WithContext(ctx)

	n, err := s.expirer.Execute(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("request expiry failed")
		return
	}
	s.logger.Info().Int64("expired", n).Msg("request expiry finished")
}
