package readstore

import (
	"context"

	"slotify/internal/infra"
	"slotify/internal/infra/db"
	"slotify/internal/pkg/pgconv"
	"slotify/internal/usecase/queries"

	"github.com/google/uuid"
)

type MachineReadStore struct {
	db db.DBTX
}

func NewMachineReadStore(dbtx db.DBTX) *MachineReadStore {
	return &MachineReadStore{db: dbtx}
}

func (r *MachineReadStore) List(ctx context.Context) ([]*queries.MachineView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, code, status FROM machines ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list machines", err)
	}
	defer rows.Close()

	var result []*queries.MachineView
	byID := make(map[uuid.UUID]*queries.MachineView)
	for rows.Next() {
		var v queries.MachineView
		if err := rows.Scan(&v.ID, &v.Name, &v.Code, &v.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan machine", err)
		}
		result = append(result, &v)
		byID[v.ID] = &v
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read machines", err)
	}

	slotRows, err := r.db.Query(ctx,
		`SELECT id, machine_id, slot_number, time_range
		 FROM time_slots ORDER BY machine_id, slot_number`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time slots", err)
	}
	defer slotRows.Close()

	for slotRows.Next() {
		var (
			slot      queries.SlotView
			machineID uuid.UUID
		)
		if err := slotRows.Scan(&slot.ID, &machineID, &slot.SlotNumber, &slot.TimeRange); err != nil {
			return nil, infra.WrapRepoErr("failed to scan time slot", err)
		}
		if m, ok := byID[machineID]; ok {
			m.Slots = append(m.Slots, slot)
		}
	}
	if err := slotRows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read time slots", err)
	}

	return result, nil
}

func (r *MachineReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MachineView, error) {
	var v queries.MachineView
	err := r.db.QueryRow(ctx,
		`SELECT id, name, code, status FROM machines WHERE id = $1`, id,
	).Scan(&v.ID, &v.Name, &v.Code, &v.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("machine not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find machine", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, slot_number, time_range
		 FROM time_slots WHERE machine_id = $1 ORDER BY slot_number`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time slots", err)
	}
	defer rows.Close()

	for rows.Next() {
		var slot queries.SlotView
		if err := rows.Scan(&slot.ID, &slot.SlotNumber, &slot.TimeRange); err != nil {
			return nil, infra.WrapRepoErr("failed to scan time slot", err)
		}
		v.Slots = append(v.Slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read time slots", err)
	}

	return &v, nil
}
