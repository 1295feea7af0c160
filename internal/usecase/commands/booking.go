package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"slotify/internal/domain/booking"
	"slotify/internal/domain/machine"
	"slotify/internal/infra"
	"slotify/internal/pkg/clock"
	"slotify/internal/pkg/config"
	"slotify/internal/pkg/errs"
	"slotify/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPastDate           = errs.New("cannot book a slot on a past date")
	ErrTooFarAhead        = errs.New("cannot book beyond the allowed horizon")
	ErrUserNotFound       = errs.New("user not found")
	ErrSlotNotFound       = errs.New("time slot not found")
	ErrMachineNotFound    = errs.New("machine not found")
	ErrMachineUnavailable = errs.New("machine is not usable")
	ErrQuotaExceeded      = errs.New("weekly booking quota for this machine reached")
	ErrDailyLimitExceeded = errs.New("daily booking limit reached")
	ErrSlotAlreadyBooked  = errs.New("slot already booked")
	ErrBookingNotFound    = errs.New("booking not found")
	ErrUnauthorized       = errs.New("booking belongs to another user")
	ErrTooLateToCancel    = errs.New("cannot cancel after the slot has started")
	ErrTimeout            = errs.New("booking outcome unknown: storage timed out")
	ErrStorageUnavailable = errs.New("storage unavailable")
)

type BookingCommands interface {
	Book(ctx context.Context, userID, slotID uuid.UUID, date time.Time) (*shared.BookingSnapshot, error)
	Cancel(ctx context.Context, userID, slotID uuid.UUID, date time.Time, adminOverride bool) error
	CancelByID(ctx context.Context, userID, bookingID uuid.UUID, adminOverride bool) error
}

type bookingCommandsImpl struct {
	bookings      BookingRepository
	machines      MachineRepository
	users         UserRepository
	notifications NotificationRepository
	clock         clock.Clock
	policy        config.BookingConfig
	loc           *time.Location
}

func NewBookingCommands(
	bookings BookingRepository,
	machines MachineRepository,
	users UserRepository,
	notifications NotificationRepository,
	clk clock.Clock,
	policy config.BookingConfig,
	loc *time.Location,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:      bookings,
		machines:      machines,
		users:         users,
		notifications: notifications,
		clock:         clk,
		policy:        policy,
		loc:           loc,
	}
}

// Book grants one slot on one date to one user. Steps 1-6 are advisory
// pre-checks; the Insert in step 7 is the only linearizable commit
// point, backed by the ledger's unique (slot, date) index. Two callers
// racing for the same slot both reach Insert and exactly one wins.
func (u *bookingCommandsImpl) Book(ctx context.Context, userID, slotID uuid.UUID, date time.Time) (*shared.BookingSnapshot, error) {
	today := u.clock.Now().In(u.loc)
	date = booking.MidnightIn(date, u.loc)

	if booking.IsPastDate(date, today) {
		return nil, ErrPastDate
	}
	if booking.ExceedsHorizon(date, today, u.policy.HorizonDays) {
		return nil, ErrTooFarAhead
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, classifyStorageErr(err)
	}

	slot, err := u.machines.FindSlot(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, classifyStorageErr(err)
	}

	mach, err := u.machines.FindByID(ctx, slot.MachineID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMachineNotFound
		}
		return nil, classifyStorageErr(err)
	}
	if mach.Status != machine.StatusUsable.String() {
		return nil, ErrMachineUnavailable
	}

	monday, sunday := booking.WeekWindow(date)
	weeklyCount, err := u.bookings.CountForUserInWeek(ctx, userID, slot.MachineID, monday, sunday)
	if err != nil {
		return nil, classifyStorageErr(err)
	}
	if weeklyCount >= u.policy.WeeklyCapPerMachine {
		return nil, ErrQuotaExceeded
	}

	dailyCount, err := u.bookings.CountForUserOnDate(ctx, userID, date)
	if err != nil {
		return nil, classifyStorageErr(err)
	}
	if dailyCount >= u.policy.DailyCap {
		return nil, ErrDailyLimitExceeded
	}

	entity, err := booking.NewBooking(slotID, userID, date)
	if err != nil {
		return nil, err
	}

	bookingID, err := u.bookings.Insert(ctx, entity)
	if err != nil {
		// The pre-checks above may have gone stale by now; the unique
		// index is the authority.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrSlotAlreadyBooked
		}
		return nil, classifyStorageErr(err)
	}

	u.notify(ctx, "booking_booked", bookingID, user, mach, slot, date)

	return &shared.BookingSnapshot{
		ID:         bookingID,
		TimeSlotID: slotID,
		UserID:     userID,
		Date:       date,
	}, nil
}

// Cancel removes a booking identified by (slot, date). A cancel that
// loses a race to a concurrent cancel succeeds silently: the booking is
// gone either way.
func (u *bookingCommandsImpl) Cancel(ctx context.Context, userID, slotID uuid.UUID, date time.Time, adminOverride bool) error {
	date = booking.MidnightIn(date, u.loc)

	slot, err := u.machines.FindSlot(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSlotNotFound
		}
		return classifyStorageErr(err)
	}

	existing, err := u.bookings.FindBySlotAndDate(ctx, slotID, date)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return classifyStorageErr(err)
	}

	return u.cancelResolved(ctx, userID, existing, slot, adminOverride)
}

// CancelByID is the administrative cancel path.
func (u *bookingCommandsImpl) CancelByID(ctx context.Context, userID, bookingID uuid.UUID, adminOverride bool) error {
	existing, err := u.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return classifyStorageErr(err)
	}

	slot, err := u.machines.FindSlot(ctx, existing.TimeSlotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSlotNotFound
		}
		return classifyStorageErr(err)
	}

	return u.cancelResolved(ctx, userID, existing, slot, adminOverride)
}

func (u *bookingCommandsImpl) cancelResolved(
	ctx context.Context,
	userID uuid.UUID,
	existing *shared.BookingSnapshot,
	slot *shared.SlotSnapshot,
	adminOverride bool,
) error {
	if !adminOverride && existing.UserID != userID {
		return ErrUnauthorized
	}

	now := u.clock.Now().In(u.loc)
	date := booking.MidnightIn(existing.Date, u.loc)

	if booking.IsPastDate(date, now) {
		return ErrPastDate
	}
	if booking.SameDate(date, now) {
		window, werr := machine.ParseTimeWindow(slot.TimeRange)
		if werr != nil {
			return errs.Mark(werr, ErrStorageUnavailable)
		}
		if window.HasStarted(date, now) {
			return ErrTooLateToCancel
		}
	}

	if err := u.bookings.Delete(ctx, existing.ID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Concurrently cancelled; treat as success.
			slog.Info("booking already cancelled", "booking_id", existing.ID)
			return nil
		}
		return classifyStorageErr(err)
	}

	u.notifyCancel(ctx, existing, slot)
	return nil
}

func (u *bookingCommandsImpl) notify(
	ctx context.Context,
	topic string,
	bookingID uuid.UUID,
	user *shared.UserSnapshot,
	mach *shared.MachineSnapshot,
	slot *shared.SlotSnapshot,
	date time.Time,
) {
	payload, err := json.Marshal(map[string]any{
		"booking_id":  bookingID,
		"user_id":     user.ID,
		"username":    user.Username,
		"role":        user.Role,
		"machine":     mach.Name,
		"slot_number": slot.SlotNumber,
		"time_range":  slot.TimeRange,
		"date":        date.Format(time.DateOnly),
	})
	if err != nil {
		slog.Warn("failed to marshal notification payload", "topic", topic, "error", err)
		return
	}

	if err := u.notifications.Enqueue(ctx, "email", topic, payload, u.clock.Now()); err != nil {
		// Best effort: the grant stands regardless.
		slog.Warn("failed to enqueue notification", "topic", topic, "booking_id", bookingID, "error", err)
	}
}

func (u *bookingCommandsImpl) notifyCancel(ctx context.Context, existing *shared.BookingSnapshot, slot *shared.SlotSnapshot) {
	payload, err := json.Marshal(map[string]any{
		"booking_id":  existing.ID,
		"user_id":     existing.UserID,
		"slot_number": slot.SlotNumber,
		"date":        existing.Date.Format(time.DateOnly),
	})
	if err != nil {
		slog.Warn("failed to marshal notification payload", "topic", "booking_cancelled", "error", err)
		return
	}

	if err := u.notifications.Enqueue(ctx, "email", "booking_cancelled", payload, u.clock.Now()); err != nil {
		slog.Warn("failed to enqueue notification", "topic", "booking_cancelled", "booking_id", existing.ID, "error", err)
	}
}

// classifyStorageErr separates "outcome unknown" timeouts from plain
// storage failures. Timeouts must not be retried blindly by callers:
// the insert may have committed server-side.
func classifyStorageErr(err error) error {
	if errs.IsTimeout(err) {
		return errs.Mark(err, ErrTimeout)
	}
	return errs.Mark(err, ErrStorageUnavailable)
}
