package queries

import (
	"context"
	"time"

	"slotify/internal/domain/booking"
	"slotify/internal/infra"
	"slotify/internal/pkg/clock"
	"slotify/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMachineNotFound = errs.New("machine not found")
)

type BookingReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	FindForMachineRange(ctx context.Context, machineID uuid.UUID, from, to time.Time) ([]*BookingView, error)
}

type MachineReadStore interface {
	List(ctx context.Context) ([]*MachineView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*MachineView, error)
}

type BookingQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	MonthlyOccupancy(ctx context.Context, machineID uuid.UUID, year int, month time.Month, excludePast bool) (MonthlyOccupancy, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	machines MachineReadStore
	clock    clock.Clock
	loc      *time.Location
}

func NewBookingQueries(bookings BookingReadStore, machines MachineReadStore, clk clock.Clock, loc *time.Location) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		machines: machines,
		clock:    clk,
		loc:      loc,
	}
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return q.bookings.FindByUserID(ctx, userID)
}

// MonthlyOccupancy renders every slot of the machine for every day of
// the month, marking which are taken and by whom. Feeds the calendar
// surface; the rendering itself lives outside this service.
func (q *bookingQueriesImpl) MonthlyOccupancy(
	ctx context.Context,
	machineID uuid.UUID,
	year int,
	month time.Month,
	excludePast bool,
) (MonthlyOccupancy, error) {
	mach, err := q.machines.FindByID(ctx, machineID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMachineNotFound
		}
		return nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, q.loc)
	last := first.AddDate(0, 1, -1)

	booked, err := q.bookings.FindForMachineRange(ctx, machineID, first, last)
	if err != nil {
		return nil, err
	}

	type slotDate struct {
		slotID uuid.UUID
		date   string
	}
	bookedBy := make(map[slotDate]*BookingView, len(booked))
	for _, b := range booked {
		bookedBy[slotDate{b.SlotID, b.Date.Format(time.DateOnly)}] = b
	}

	today := booking.Midnight(q.clock.Now().In(q.loc))
	result := make(MonthlyOccupancy)

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if excludePast && day.Before(today) {
			continue
		}

		dateKey := day.Format(time.DateOnly)
		daySlots := make([]SlotOccupancy, 0, len(mach.Slots))

		for _, slot := range mach.Slots {
			cell := SlotOccupancy{
				SlotID:     slot.ID,
				SlotNumber: slot.SlotNumber,
				TimeRange:  slot.TimeRange,
			}
			if b, ok := bookedBy[slotDate{slot.ID, dateKey}]; ok {
				cell.IsBooked = true
				cell.BookedBy = &Occupant{
					UserID:   b.UserID,
					Username: b.Username,
					Role:     b.UserRole,
				}
			}
			daySlots = append(daySlots, cell)
		}

		result[dateKey] = daySlots
	}

	return result, nil
}
