package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads. The write path never walks
// ORM-style relations; whatever a rule needs is fetched explicitly.

type UserSnapshot struct {
	ID            uuid.UUID
	Username      string
	Email         string
	Role          string
	ReminderHours int
	ReminderEmail *string
}

type MachineSnapshot struct {
	ID     uuid.UUID
	Name   string
	Code   string
	Status string
}

type SlotSnapshot struct {
	ID         uuid.UUID
	MachineID  uuid.UUID
	SlotNumber int
	TimeRange  string
}

type BookingSnapshot struct {
	ID         uuid.UUID
	TimeSlotID uuid.UUID
	UserID     uuid.UUID
	Date       time.Time
	CreatedAt  time.Time
}
