package repository

import (
	"context"
	"time"

	"slotify/internal/infra"
	"slotify/internal/infra/db"
)

// NotificationRepository enqueues jobs for the external notification
// sink. The dispatcher that drains the table is a separate process.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

func (r *NotificationRepository) Enqueue(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	return r.CreateJob(ctx, r.db, kind, topic, payload, runAt)
}

// CreateJob inserts on the given handle so the reminder scheduler can
// enqueue atomically with its dedup log.
func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO notification_jobs (kind, topic, payload, run_at)
		 VALUES ($1, $2, $3, $4)`,
		kind, topic, payload, runAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
