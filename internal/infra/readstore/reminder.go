package readstore

import (
	"context"
	"time"

	"slotify/internal/infra"
	"slotify/internal/infra/db"
	"slotify/internal/pkg/pgconv"
	"slotify/internal/scheduler"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReminderReadStore struct {
	db db.DBTX
}

func NewReminderReadStore(dbtx db.DBTX) *ReminderReadStore {
	return &ReminderReadStore{db: dbtx}
}

// UpcomingCandidates returns bookings on or after the given date whose
// owners opted into reminders and have not been reminded yet.
func (r *ReminderReadStore) UpcomingCandidates(ctx context.Context, onOrAfter time.Time) ([]scheduler.Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT b.id, u.id, u.username, u.email, u.reminder_email, u.reminder_hours,
		        b.date, ts.time_range, m.name
		 FROM bookings b
		 JOIN users u ON u.id = b.user_id
		 JOIN time_slots ts ON ts.id = b.time_slot_id
		 JOIN machines m ON m.id = ts.machine_id
		 LEFT JOIN reminder_log rl ON rl.user_id = b.user_id AND rl.booking_id = b.id
		 WHERE u.reminder_hours > 0
		   AND b.date >= $1
		   AND rl.booking_id IS NULL
		 ORDER BY b.date, ts.slot_number`,
		pgconv.DateToPgtype(onOrAfter))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reminder candidates", err)
	}
	defer rows.Close()

	var result []scheduler.Candidate
	for rows.Next() {
		var (
			c             scheduler.Candidate
			email         string
			reminderEmail pgtype.Text
		)
		if err := rows.Scan(
			&c.BookingID, &c.UserID, &c.Username, &email, &reminderEmail,
			&c.ReminderHours, &c.Date, &c.TimeRange, &c.MachineName,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reminder candidate", err)
		}
		if addr := pgconv.StringPtrFromPgtype(reminderEmail); addr != nil && *addr != "" {
			c.Address = *addr
		} else {
			c.Address = email
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reminder candidates", err)
	}
	return result, nil
}
