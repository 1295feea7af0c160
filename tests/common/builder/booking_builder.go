//go:build unit || e2e

package builder

import (
	"time"

	reqdto "slotify/internal/handler/dto/request"
	"slotify/internal/usecase/queries"
	"slotify/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	id        uuid.UUID
	slotID    uuid.UUID
	userID    uuid.UUID
	date      time.Time
	createdAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		id:        uuid.New(),
		slotID:    uuid.New(),
		userID:    uuid.New(),
		date:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		createdAt: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) WithSlotID(id uuid.UUID) *BookingBuilder {
	b.slotID = id
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.userID = id
	return b
}

func (b *BookingBuilder) WithDate(date time.Time) *BookingBuilder {
	b.date = date
	return b
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:         b.id,
		TimeSlotID: b.slotID,
		UserID:     b.userID,
		Date:       b.date,
		CreatedAt:  b.createdAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		SlotID: b.slotID,
		Date:   b.date.Format(time.DateOnly),
	}
}

func (b *BookingBuilder) BuildCancelRequestDTO() reqdto.CancelBookingRequest {
	return reqdto.CancelBookingRequest{
		SlotID: b.slotID,
		Date:   b.date.Format(time.DateOnly),
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:          b.id,
		MachineID:   uuid.New(),
		MachineName: "Washer A",
		SlotID:      b.slotID,
		SlotNumber:  1,
		TimeRange:   "06:00-10:00",
		UserID:      b.userID,
		Username:    "alice",
		UserRole:    "resident",
		Date:        b.date,
		CreatedAt:   b.createdAt,
	}
}
