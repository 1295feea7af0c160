package response

import (
	"time"

	"slotify/internal/usecase/queries"
	"slotify/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	SlotID    uuid.UUID `json:"slotId"`
	UserID    uuid.UUID `json:"userId"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	ID          uuid.UUID `json:"id"`
	MachineID   uuid.UUID `json:"machineId"`
	MachineName string    `json:"machineName"`
	SlotID      uuid.UUID `json:"slotId"`
	SlotNumber  int       `json:"slotNumber"`
	TimeRange   string    `json:"timeRange"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromBookingSnapshot(b *shared.BookingSnapshot) *BookingResponse {
	return &BookingResponse{
		ID:        b.ID,
		SlotID:    b.TimeSlotID,
		UserID:    b.UserID,
		Date:      b.Date.Format(time.DateOnly),
		CreatedAt: b.CreatedAt,
	}
}

func FromBookingView(v *queries.BookingView) *BookingListResponse {
	return &BookingListResponse{
		ID:          v.ID,
		MachineID:   v.MachineID,
		MachineName: v.MachineName,
		SlotID:      v.SlotID,
		SlotNumber:  v.SlotNumber,
		TimeRange:   v.TimeRange,
		Date:        v.Date.Format(time.DateOnly),
		CreatedAt:   v.CreatedAt,
	}
}
