package repository

import (
	"context"

	"slotify/internal/infra"
	"slotify/internal/infra/db"

	"github.com/google/uuid"
)

// ReminderLogRepository records which (user, booking) pairs have been
// reminded. The primary key uq_reminder_once makes TryMarkSent the
// dedup point when multiple scheduler instances run.
type ReminderLogRepository struct {
	db db.DBTX
}

func NewReminderLogRepository(dbtx db.DBTX) *ReminderLogRepository {
	return &ReminderLogRepository{db: dbtx}
}

// TryMarkSent claims the reminder. Returns false when another instance
// already sent it.
func (r *ReminderLogRepository) TryMarkSent(ctx context.Context, tx db.DBTX, userID, bookingID uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx,
		`INSERT INTO reminder_log (user_id, booking_id)
		 VALUES ($1, $2)
		 ON CONFLICT ON CONSTRAINT uq_reminder_once DO NOTHING`,
		userID, bookingID,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to record reminder", err)
	}
	return tag.RowsAffected() > 0, nil
}
