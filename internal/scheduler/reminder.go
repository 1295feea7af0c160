package scheduler

import (
	"context"
	"log/slog"
	"time"

	"slotify/internal/domain/machine"
	"slotify/internal/pkg/clock"
	"slotify/internal/pkg/config"

	"github.com/google/uuid"
)

// Candidate is one upcoming booking whose owner opted into reminders.
type Candidate struct {
	BookingID     uuid.UUID
	UserID        uuid.UUID
	Username      string
	Address       string
	ReminderHours int
	Date          time.Time
	TimeRange     string
	MachineName   string
}

// CandidateStore lists upcoming bookings for users with reminders on.
type CandidateStore interface {
	UpcomingCandidates(ctx context.Context, onOrAfter time.Time) ([]Candidate, error)
}

// Dispatcher sends one reminder, deduplicating against concurrent
// scheduler instances. Implementations must be idempotent per
// (user, booking).
type Dispatcher interface {
	Dispatch(ctx context.Context, c Candidate, now time.Time) error
}

// Reminder periodically scans the ledger and enqueues reminder
// notifications. It is an injected component owned by the process entry
// point, not a process-wide singleton; the fx lifecycle calls Start and
// Stop.
type Reminder struct {
	candidates CandidateStore
	dispatcher Dispatcher
	clock      clock.Clock
	cfg        config.ReminderConfig
	loc        *time.Location

	stop chan struct{}
	done chan struct{}
}

func NewReminder(
	candidates CandidateStore,
	dispatcher Dispatcher,
	clk clock.Clock,
	cfg config.ReminderConfig,
	loc *time.Location,
) *Reminder {
	return &Reminder{
		candidates: candidates,
		dispatcher: dispatcher,
		clock:      clk,
		cfg:        cfg,
		loc:        loc,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (r *Reminder) Start() {
	go r.loop()
	slog.Info("reminder scheduler started", "interval", r.cfg.Interval)
}

func (r *Reminder) Stop() {
	close(r.stop)
	<-r.done
	slog.Info("reminder scheduler stopped")
}

func (r *Reminder) loop() {
	defer close(r.done)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), r.cfg.Interval)
			if err := r.RunOnce(ctx); err != nil {
				slog.Error("reminder scan failed", "error", err)
			}
			cancel()
		}
	}
}

// RunOnce performs a single scan. Failures on one candidate never block
// the rest, and never touch any booking.
func (r *Reminder) RunOnce(ctx context.Context) error {
	now := r.clock.Now().In(r.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, r.loc)

	candidates, err := r.candidates.UpcomingCandidates(ctx, today)
	if err != nil {
		return err
	}

	sent := 0
	for _, c := range candidates {
		due, err := r.isDue(c, now)
		if err != nil {
			slog.Warn("skipping reminder with malformed time window",
				"booking_id", c.BookingID, "time_range", c.TimeRange, "error", err)
			continue
		}
		if !due {
			continue
		}

		if err := r.dispatcher.Dispatch(ctx, c, now); err != nil {
			slog.Warn("failed to dispatch reminder",
				"booking_id", c.BookingID, "user_id", c.UserID, "error", err)
			continue
		}
		sent++
	}

	if sent > 0 {
		slog.Info("reminder scan complete", "sent", sent, "candidates", len(candidates))
	}
	return nil
}

// isDue checks whether now falls inside [start-hours, start-hours+window).
func (r *Reminder) isDue(c Candidate, now time.Time) (bool, error) {
	window, err := machine.ParseTimeWindow(c.TimeRange)
	if err != nil {
		return false, err
	}

	date := c.Date.In(r.loc)
	startAt := window.StartAt(time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, r.loc))
	remindAt := startAt.Add(-time.Duration(c.ReminderHours) * time.Hour)

	return !now.Before(remindAt) && now.Before(remindAt.Add(r.cfg.Window)), nil
}
