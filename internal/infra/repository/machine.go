package repository

import (
	"context"

	"slotify/internal/domain/machine"
	"slotify/internal/infra"
	"slotify/internal/infra/db"
	"slotify/internal/pkg/pgconv"
	"slotify/internal/usecase/shared"

	"github.com/google/uuid"
)

// MachineRepository is the catalog read interface on the command side.
// The allocation engine never writes through it.
type MachineRepository struct {
	db db.DBTX
}

func NewMachineRepository(dbtx db.DBTX) *MachineRepository {
	return &MachineRepository{db: dbtx}
}

func (r *MachineRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.MachineSnapshot, error) {
	var (
		machineID          uuid.UUID
		name, code, status string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, name, code, status FROM machines WHERE id = $1`, id,
	).Scan(&machineID, &name, &code, &status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("machine not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find machine", err)
	}
	return machineToSnapshot(machineID, name, code, status)
}

func (r *MachineRepository) FindSlot(ctx context.Context, slotID uuid.UUID) (*shared.SlotSnapshot, error) {
	var (
		id, machineID uuid.UUID
		slotNumber    int
		timeRange     string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, machine_id, slot_number, time_range FROM time_slots WHERE id = $1`, slotID,
	).Scan(&id, &machineID, &slotNumber, &timeRange)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("time slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find time slot", err)
	}
	return slotToSnapshot(id, machineID, slotNumber, timeRange)
}

// machineToSnapshot rebuilds the domain entity from the row so catalog
// invariants are re-checked on every read, then flattens it for the
// use case layer.
func machineToSnapshot(id uuid.UUID, name, code, status string) (*shared.MachineSnapshot, error) {
	m, err := machine.NewMachine(id, name, code, machine.Status(status))
	if err != nil {
		return nil, infra.WrapRepoErr("invalid machine row", err)
	}
	return &shared.MachineSnapshot{
		ID:     m.ID(),
		Name:   m.Name(),
		Code:   m.Code(),
		Status: m.Status().String(),
	}, nil
}

func slotToSnapshot(id, machineID uuid.UUID, slotNumber int, timeRange string) (*shared.SlotSnapshot, error) {
	window, err := machine.ParseTimeWindow(timeRange)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid time slot row", err)
	}
	slot, err := machine.NewTimeSlot(id, machineID, slotNumber, window)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid time slot row", err)
	}
	return &shared.SlotSnapshot{
		ID:         slot.ID(),
		MachineID:  slot.MachineID(),
		SlotNumber: slot.SlotNumber(),
		TimeRange:  slot.Window().String(),
	}, nil
}
