package repository

import (
	"context"
	"time"

	"slotify/internal/domain/booking"
	"slotify/internal/infra"
	"slotify/internal/infra/db"
	"slotify/internal/pkg/pgconv"
	"slotify/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookingRepository is the reservation ledger. The unique index
// unique_slot_per_day (time_slot_id, date) makes Insert the linearizable
// enforcement point for the core invariant; no check-then-insert
// sequence exists here.
type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`INSERT INTO bookings (id, time_slot_id, user_id, date)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		b.ID(), b.TimeSlotID(), b.UserID(), pgconv.DateToPgtype(b.Date()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert booking", err)
	}
	return id, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	return r.findOne(ctx,
		`SELECT id, time_slot_id, user_id, date, created_at
		 FROM bookings WHERE id = $1`, id)
}

func (r *BookingRepository) FindBySlotAndDate(ctx context.Context, slotID uuid.UUID, date time.Time) (*shared.BookingSnapshot, error) {
	return r.findOne(ctx,
		`SELECT id, time_slot_id, user_id, date, created_at
		 FROM bookings WHERE time_slot_id = $1 AND date = $2`,
		slotID, pgconv.DateToPgtype(date))
}

func (r *BookingRepository) findOne(ctx context.Context, sql string, args ...any) (*shared.BookingSnapshot, error) {
	var snap shared.BookingSnapshot
	err := r.db.QueryRow(ctx, sql, args...).Scan(
		&snap.ID, &snap.TimeSlotID, &snap.UserID, &snap.Date, &snap.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return &snap, nil
}

// CountForUserInWeek counts the user's committed bookings on one
// machine within [monday, sunday]. Read committed is enough here: the
// weekly quota is advisory (see Book).
func (r *BookingRepository) CountForUserInWeek(ctx context.Context, userID, machineID uuid.UUID, monday, sunday time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT count(*)
		 FROM bookings b
		 JOIN time_slots ts ON ts.id = b.time_slot_id
		 WHERE b.user_id = $1
		   AND ts.machine_id = $2
		   AND b.date BETWEEN $3 AND $4`,
		userID, machineID, pgconv.DateToPgtype(monday), pgconv.DateToPgtype(sunday),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count weekly bookings", err)
	}
	return count, nil
}

func (r *BookingRepository) CountForUserOnDate(ctx context.Context, userID uuid.UUID, date time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM bookings WHERE user_id = $1 AND date = $2`,
		userID, pgconv.DateToPgtype(date),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count daily bookings", err)
	}
	return count, nil
}
