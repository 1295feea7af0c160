package response

import (
	"slotify/internal/usecase/queries"

	"github.com/google/uuid"
)

type MachineResponse struct {
	ID     uuid.UUID      `json:"id"`
	Name   string         `json:"name"`
	Code   string         `json:"code"`
	Status string         `json:"status"`
	Slots  []SlotResponse `json:"slots"`
}

type SlotResponse struct {
	ID         uuid.UUID `json:"id"`
	SlotNumber int       `json:"slotNumber"`
	TimeRange  string    `json:"timeRange"`
}

func FromMachineView(v *queries.MachineView) *MachineResponse {
	slots := make([]SlotResponse, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = SlotResponse{
			ID:         s.ID,
			SlotNumber: s.SlotNumber,
			TimeRange:  s.TimeRange,
		}
	}
	return &MachineResponse{
		ID:     v.ID,
		Name:   v.Name,
		Code:   v.Code,
		Status: v.Status,
		Slots:  slots,
	}
}
