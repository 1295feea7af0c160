package scheduler

import (
	"context"
	"encoding/json"
	"time"

	"slotify/internal/infra/db"
	"slotify/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReminderLog claims a (user, booking) reminder exactly once.
type ReminderLog interface {
	TryMarkSent(ctx context.Context, tx db.DBTX, userID, bookingID uuid.UUID) (bool, error)
}

// NotificationJobs enqueues the actual reminder delivery.
type NotificationJobs interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

// TxDispatcher claims the reminder and enqueues the notification job in
// one transaction, so a crash between the two cannot lose or duplicate
// a reminder.
type TxDispatcher struct {
	pool *pgxpool.Pool
	log  ReminderLog
	jobs NotificationJobs
}

func NewTxDispatcher(pool *pgxpool.Pool, log ReminderLog, jobs NotificationJobs) *TxDispatcher {
	return &TxDispatcher{pool: pool, log: log, jobs: jobs}
}

func (d *TxDispatcher) Dispatch(ctx context.Context, c Candidate, now time.Time) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id": c.BookingID,
		"user_id":    c.UserID,
		"username":   c.Username,
		"address":    c.Address,
		"machine":    c.MachineName,
		"time_range": c.TimeRange,
		"date":       c.Date.Format(time.DateOnly),
	})
	if err != nil {
		return err
	}

	_, err = shared.RunInTxWithRetry(ctx, d.pool, 3, func(tx db.DBTX) (struct{}, error) {
		claimed, err := d.log.TryMarkSent(ctx, tx, c.UserID, c.BookingID)
		if err != nil {
			return struct{}{}, err
		}
		if !claimed {
			// Another instance got there first.
			return struct{}{}, nil
		}
		return struct{}{}, d.jobs.CreateJob(ctx, tx, "email", "booking_reminder", payload, now)
	})
	return err
}
