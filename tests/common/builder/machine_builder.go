//go:build unit || e2e

package builder

import (
	"slotify/internal/usecase/queries"
	"slotify/internal/usecase/shared"

	"github.com/google/uuid"
)

type MachineBuilder struct {
	id     uuid.UUID
	name   string
	code   string
	status string
	slots  []queries.SlotView
}

func NewMachineBuilder() *MachineBuilder {
	id := uuid.New()
	return &MachineBuilder{
		id:     id,
		name:   "Washer A",
		code:   "washer-a",
		status: "usable",
		slots: []queries.SlotView{
			{ID: uuid.New(), SlotNumber: 1, TimeRange: "06:00-10:00"},
			{ID: uuid.New(), SlotNumber: 2, TimeRange: "10:00-14:00"},
			{ID: uuid.New(), SlotNumber: 3, TimeRange: "18:00-00:00"},
		},
	}
}

func (b *MachineBuilder) WithID(id uuid.UUID) *MachineBuilder {
	b.id = id
	return b
}

func (b *MachineBuilder) WithStatus(status string) *MachineBuilder {
	b.status = status
	return b
}

func (b *MachineBuilder) BuildSnapshot() *shared.MachineSnapshot {
	return &shared.MachineSnapshot{
		ID:     b.id,
		Name:   b.name,
		Code:   b.code,
		Status: b.status,
	}
}

func (b *MachineBuilder) BuildView() *queries.MachineView {
	return &queries.MachineView{
		ID:     b.id,
		Name:   b.name,
		Code:   b.code,
		Status: b.status,
		Slots:  b.slots,
	}
}

// BuildSlotSnapshot returns the machine's first slot as the command-side
// snapshot type.
func (b *MachineBuilder) BuildSlotSnapshot() *shared.SlotSnapshot {
	s := b.slots[0]
	return &shared.SlotSnapshot{
		ID:         s.ID,
		MachineID:  b.id,
		SlotNumber: s.SlotNumber,
		TimeRange:  s.TimeRange,
	}
}
