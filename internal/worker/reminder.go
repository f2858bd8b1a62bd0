// Package worker runs the in-process daily trigger for the reminder engine.
package worker

import (
	"context"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/hospitek/medequip-backend/internal/model"
)

//go:generate mockgen -source=reminder.go -destination=../mocks/worker/mock.go -package=mocks

type reminderEngine interface {
	Run(ctx context.Context) (model.RunReport, error)
}

// Worker triggers one reconciliation run per day at a fixed hour. Deployments
// using an external cron run cmd/reminder instead and leave this disabled.
type Worker struct {
	engine  reminderEngine
	runHour int
}

func NewWorker(engine reminderEngine, runHour int) *Worker {
	return &Worker{engine: engine, runHour: runHour}
}

// Run blocks until the context is cancelled, firing the engine once per day.
func (w *Worker) Run(ctx context.Context) {
	for {
		next := w.nextRun(time.Now().UTC())
		zlog.Logger.Info().Time("next_run", next).Msg("reminder worker waiting")

		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			zlog.Logger.Info().Msg("reminder worker shutting down")
			return
		case <-timer.C:
		}

		report, err := w.engine.Run(ctx)
		if err != nil {
			// The next scheduled run retries everything.
			zlog.Logger.Error().Err(err).Msg("scheduled reconciliation run failed")
			continue
		}

		zlog.Logger.Info().
			Int("sent", report.Sent).
			Int("failed", report.Failed).
			Int("skipped", report.Skipped).
			Msg("scheduled reconciliation run finished")
	}
}

// nextRun computes the next occurrence of runHour, tomorrow when today's has
// already passed.
func (w *Worker) nextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), w.runHour, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next
}
