package readstore

import (
	"context"
	"time"

	"slotify/internal/infra"
	"slotify/internal/infra/db"
	"slotify/internal/pkg/pgconv"
	"slotify/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewSelect = `
	SELECT b.id, ts.machine_id, m.name, ts.id, ts.slot_number, ts.time_range,
	       b.user_id, u.username, u.role, b.date, b.created_at
	FROM bookings b
	JOIN time_slots ts ON ts.id = b.time_slot_id
	JOIN machines m ON m.id = ts.machine_id
	JOIN users u ON u.id = b.user_id`

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		bookingViewSelect+`
		WHERE b.user_id = $1
		ORDER BY b.date, ts.slot_number`,
		userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for user", err)
	}
	return collectBookingViews(rows)
}

func (r *BookingReadStore) FindForMachineRange(ctx context.Context, machineID uuid.UUID, from, to time.Time) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		bookingViewSelect+`
		WHERE ts.machine_id = $1 AND b.date BETWEEN $2 AND $3
		ORDER BY b.date, ts.slot_number`,
		machineID, pgconv.DateToPgtype(from), pgconv.DateToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for machine range", err)
	}
	return collectBookingViews(rows)
}

func collectBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	defer rows.Close()

	var result []*queries.BookingView
	for rows.Next() {
		var v queries.BookingView
		if err := rows.Scan(
			&v.ID, &v.MachineID, &v.MachineName, &v.SlotID, &v.SlotNumber, &v.TimeRange,
			&v.UserID, &v.Username, &v.UserRole, &v.Date, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking views", err)
	}
	return result, nil
}
