// Package scheduler runs the periodic background jobs of the API process.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"estatedesk/internal/logger"
	"estatedesk/internal/metrics"
	"estatedesk/internal/services"
)

// LimiterCleanupSchedule is how often idle rate limiters are dropped.
const LimiterCleanupSchedule = "@every 10m"

// Sweeper flips matured investments to redeemed.
type Sweeper interface {
	SweepMaturedInvestments() (int64, error)
}

var _ Sweeper = (services.InvestmentServicer)(nil)

// Cleaner drops state that is no longer needed.
type Cleaner interface {
	Cleanup()
}

// Scheduler wraps a cron runner with the application jobs.
type Scheduler struct {
	cron *cron.Cron
}

// New creates a scheduler. An empty sweepSchedule disables the redemption
// sweep; a nil cleaner disables the limiter cleanup.
func New(sweepSchedule string, sweeper Sweeper, cleaner Cleaner) (*Scheduler, error) {
	c := cron.New(cron.WithChain(cron.Recover(cronLogger{})))

	if sweepSchedule != "" {
		if _, err := c.AddFunc(sweepSchedule, func() { RunSweep(sweeper) }); err != nil {
			return nil, fmt.Errorf("invalid redemption sweep schedule %q: %w", sweepSchedule, err)
		}
	}
	if cleaner != nil {
		if _, err := c.AddFunc(LimiterCleanupSchedule, cleaner.Cleanup); err != nil {
			return nil, fmt.Errorf("add limiter cleanup: %w", err)
		}
	}
	return &Scheduler{cron: c}, nil
}

// Start runs the jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and returns a context that is done once running
// jobs have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// Jobs returns the number of registered jobs.
func (s *Scheduler) Jobs() int {
	return len(s.cron.Entries())
}

// RunSweep runs one redemption sweep and records its outcome.
func RunSweep(sweeper Sweeper) {
	redeemed, err := sweeper.SweepMaturedInvestments()
	metrics.RecordSweep(redeemed, err)
	if err != nil {
		logger.Get().Errorw("redemption sweep failed", "error", err)
		return
	}
	logger.Get().Infow("redemption sweep finished", "redeemed", redeemed)
}

// cronLogger adapts the zap logger to cron.Logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Get().Debugw(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Get().Errorw(msg, append(keysAndValues, "error", err)...)
}
