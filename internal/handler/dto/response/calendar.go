package response

import (
	"slotify/internal/usecase/queries"
)

// CalendarResponse is the month's occupancy keyed by ISO date.
type CalendarResponse struct {
	MachineID string                             `json:"machineId"`
	Year      int                                `json:"year"`
	Month     int                                `json:"month"`
	Days      map[string][]queries.SlotOccupancy `json:"days"`
}
