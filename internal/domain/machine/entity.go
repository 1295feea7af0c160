package machine

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyMachineName   = errors.New("machine name cannot be empty")
	ErrMachineNameTooLong = errors.New("machine name is too long (max 100 characters)")
	ErrInvalidStatus      = errors.New("invalid machine status")
	ErrInvalidSlotNumber  = errors.New("slot number must be positive")
)

const (
	MaxMachineNameLength = 100
)

// Machine is the shared resource being scheduled. The catalog owns this
// data; the allocation engine only ever reads it.
type Machine struct {
	id     uuid.UUID
	name   string
	code   string
	status Status
}

func NewMachine(id uuid.UUID, name, code string, status Status) (*Machine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyMachineName
	}
	if len(name) > MaxMachineNameLength {
		return nil, ErrMachineNameTooLong
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Machine{
		id:     id,
		name:   name,
		code:   code,
		status: status,
	}, nil
}

func (m *Machine) ID() uuid.UUID  { return m.id }
func (m *Machine) Name() string   { return m.name }
func (m *Machine) Code() string   { return m.code }
func (m *Machine) Status() Status { return m.status }

func (m *Machine) IsUsable() bool {
	return m.status == StatusUsable
}

// TimeSlot is one numbered, recurring time-of-day window on a machine,
// instantiated per calendar date by the bookings placed on it.
type TimeSlot struct {
	id         uuid.UUID
	machineID  uuid.UUID
	slotNumber int
	window     TimeWindow
}

func NewTimeSlot(id, machineID uuid.UUID, slotNumber int, window TimeWindow) (*TimeSlot, error) {
	if slotNumber <= 0 {
		return nil, ErrInvalidSlotNumber
	}
	return &TimeSlot{
		id:         id,
		machineID:  machineID,
		slotNumber: slotNumber,
		window:     window,
	}, nil
}

func (s *TimeSlot) ID() uuid.UUID      { return s.id }
func (s *TimeSlot) MachineID() uuid.UUID { return s.machineID }
func (s *TimeSlot) SlotNumber() int    { return s.slotNumber }
func (s *TimeSlot) Window() TimeWindow { return s.window }
