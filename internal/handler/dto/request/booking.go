package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	SlotID uuid.UUID `json:"slot_id" binding:"required"`
	Date   string    `json:"date" binding:"required"`
}

func (r CreateBookingRequest) ParseDate() (time.Time, error) {
	return time.Parse(time.DateOnly, r.Date)
}

// CancelBookingRequest targets a booking by its slot and date, matching
// how the calendar surface addresses cells.
type CancelBookingRequest struct {
	SlotID uuid.UUID `json:"slot_id" binding:"required"`
	Date   string    `json:"date" binding:"required"`
}

func (r CancelBookingRequest) ParseDate() (time.Time, error) {
	return time.Parse(time.DateOnly, r.Date)
}
