// Package scheduler runs the daily in-process recurrence check, the
// counterpart of the external cron trigger endpoint.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/reugn/go-quartz/job"
	"github.com/reugn/go-quartz/quartz"

	"github.com/fiscaldesk/portal/cache"
	"github.com/fiscaldesk/portal/recurrence"
)

// lastCheckKey holds the day marker of the last completed check. Advisory
// only: the engine's period guard is the authoritative idempotency layer.
const lastCheckKey = "recurrence:last_check"

// Checks run shortly after the UTC midnight the gate keys on.
const dailyCheckCron = "0 10 0 * * *"

// Scheduler fires a daily recurrence check and keeps the day-guard marker.
type Scheduler struct {
	engine *recurrence.Engine
	cache  cache.Cache
	sched  quartz.Scheduler
	log    *slog.Logger
}

func New(engine *recurrence.Engine, c cache.Cache) *Scheduler {
	return &Scheduler{
		engine: engine,
		cache:  c,
		log:    slog.Default().With("component", "scheduler"),
	}
}

// Start schedules the daily check and runs one immediately, covering
// processes that start after the day's cron slot has passed.
func (s *Scheduler) Start(ctx context.Context) error {
	trigger, err := quartz.NewCronTrigger(dailyCheckCron)
	if err != nil {
		return fmt.Errorf("parsing cron expression: %w", err)
	}

	sched, err := quartz.NewStdScheduler()
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	s.sched = sched
	s.sched.Start(ctx)

	checkJob := job.NewFunctionJob(func(ctx context.Context) (int, error) {
		return 0, s.runOnce(ctx, time.Now())
	})
	if err := s.sched.ScheduleJob(quartz.NewJobDetail(checkJob, quartz.NewJobKey("recurrence-check")), trigger); err != nil {
		return fmt.Errorf("scheduling recurrence check: %w", err)
	}

	go func() {
		if err := s.runOnce(ctx, time.Now()); err != nil {
			s.log.Error("startup recurrence check failed", "error", err)
		}
	}()

	s.log.Info("recurrence scheduler started", "cron", dailyCheckCron)
	return nil
}

// Stop halts the underlying scheduler.
func (s *Scheduler) Stop() {
	if s.sched != nil {
		s.sched.Stop()
	}
}

func (s *Scheduler) runOnce(ctx context.Context, now time.Time) error {
	if last, ok := s.cache.Get(ctx, lastCheckKey); ok && recurrence.CheckedToday(last, now) {
		s.log.Debug("recurrence already checked today", "marker", last)
		return nil
	}

	result, err := s.engine.Run(ctx, now)
	if err != nil {
		return err
	}

	if err := s.cache.Set(ctx, lastCheckKey, recurrence.DayMarker(now)); err != nil {
		s.log.Warn("failed to store day-guard marker", "error", err)
	}
	s.log.Info(result.Message, "generated", result.Generated)
	return nil
}
