package commands

import (
	"context"
	"time"

	"slotify/internal/domain/booking"
	"slotify/internal/usecase/shared"

	"github.com/google/uuid"
)

// UserRepository is the identity directory read interface.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error)
}

// MachineRepository is the resource catalog read interface. The engine
// never mutates catalog data.
type MachineRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.MachineSnapshot, error)
	FindSlot(ctx context.Context, slotID uuid.UUID) (*shared.SlotSnapshot, error)
}

// BookingRepository is the reservation ledger. Insert must be the
// linearizable enforcement point for the (slot, date) uniqueness
// invariant; every other method is a plain committed read.
type BookingRepository interface {
	Insert(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error)
	FindBySlotAndDate(ctx context.Context, slotID uuid.UUID, date time.Time) (*shared.BookingSnapshot, error)
	CountForUserInWeek(ctx context.Context, userID, machineID uuid.UUID, monday, sunday time.Time) (int, error)
	CountForUserOnDate(ctx context.Context, userID uuid.UUID, date time.Time) (int, error)
}

// NotificationRepository enqueues jobs for the notification sink.
// Failures are logged and swallowed by callers; they never affect a
// booking outcome.
type NotificationRepository interface {
	Enqueue(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
