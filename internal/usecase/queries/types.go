package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID          uuid.UUID `json:"id"`
	MachineID   uuid.UUID `json:"machine_id"`
	MachineName string    `json:"machine_name"`
	SlotID      uuid.UUID `json:"slot_id"`
	SlotNumber  int       `json:"slot_number"`
	TimeRange   string    `json:"time_range"`
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	UserRole    string    `json:"user_role"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

type MachineView struct {
	ID     uuid.UUID  `json:"id"`
	Name   string     `json:"name"`
	Code   string     `json:"code"`
	Status string     `json:"status"`
	Slots  []SlotView `json:"slots"`
}

type SlotView struct {
	ID         uuid.UUID `json:"id"`
	SlotNumber int       `json:"slot_number"`
	TimeRange  string    `json:"time_range"`
}

// SlotOccupancy is one cell of the monthly occupancy chart.
type SlotOccupancy struct {
	SlotID     uuid.UUID `json:"slot_id"`
	SlotNumber int       `json:"slot_number"`
	TimeRange  string    `json:"time_range"`
	IsBooked   bool      `json:"is_booked"`
	BookedBy   *Occupant `json:"booked_by,omitempty"`
}

type Occupant struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

// MonthlyOccupancy maps ISO date strings to the day's slot occupancy,
// ordered by slot number.
type MonthlyOccupancy map[string][]SlotOccupancy
