package queries

import (
	"context"

	"slotify/internal/infra"

	"github.com/google/uuid"
)

type MachineQueries interface {
	List(ctx context.Context) ([]*MachineView, error)
	Get(ctx context.Context, id uuid.UUID) (*MachineView, error)
}

type machineQueriesImpl struct {
	machines MachineReadStore
}

func NewMachineQueries(machines MachineReadStore) MachineQueries {
	return &machineQueriesImpl{machines: machines}
}

func (q *machineQueriesImpl) List(ctx context.Context) ([]*MachineView, error) {
	return q.machines.List(ctx)
}

func (q *machineQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*MachineView, error) {
	view, err := q.machines.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMachineNotFound
		}
		return nil, err
	}
	return view, nil
}
