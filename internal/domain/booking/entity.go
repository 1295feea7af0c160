package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrZeroDate = errors.New("booking date is required")
)

// Booking is a committed grant of one time slot on one calendar date to
// one user. Bookings are immutable; the only way to move one is to
// cancel it and book again.
type Booking struct {
	id         uuid.UUID
	timeSlotID uuid.UUID
	userID     uuid.UUID
	date       time.Time
	createdAt  time.Time
}

func NewBooking(timeSlotID, userID uuid.UUID, date time.Time) (*Booking, error) {
	if date.IsZero() {
		return nil, ErrZeroDate
	}
	return &Booking{
		id:         uuid.New(),
		timeSlotID: timeSlotID,
		userID:     userID,
		date:       Midnight(date),
	}, nil
}

func ReconstructBooking(id, timeSlotID, userID uuid.UUID, date, createdAt time.Time) *Booking {
	return &Booking{
		id:         id,
		timeSlotID: timeSlotID,
		userID:     userID,
		date:       date,
		createdAt:  createdAt,
	}
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) TimeSlotID() uuid.UUID { return b.timeSlotID }
func (b *Booking) UserID() uuid.UUID     { return b.userID }
func (b *Booking) Date() time.Time       { return b.date }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}
