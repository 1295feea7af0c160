//go:build e2e

package booking_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"slotify/internal/domain/user"
	"slotify/internal/handler/dto/request"
	"slotify/internal/handler/dto/response"
	"slotify/tests/common/dbtest"
	"slotify/tests/common/httptest"
	"slotify/tests/e2e"
	"slotify/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	machinesURL = "/api/machines"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) jwtHelper() *helper.JWTTestHelper {
	return helper.NewJWTTestHelper(s.DB, s.Config.JWT)
}

// nextMonday returns the first Monday on or after the given day, at
// midnight UTC. Booking a full ISO week needs a known weekday anchor.
func nextMonday(from time.Time) time.Time {
	d := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// A week fully in the future but well inside the booking horizon.
func testWeek() time.Time {
	return nextMonday(time.Now().UTC().AddDate(0, 0, 7))
}

// =============================================================================
// TestCreateBooking - Booking creation API tests
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: resident books a free slot", func() {
		t := s.T()

		_, slots := dbtest.SeedMachinePark(t, s.DB)
		userID, token := s.jwtHelper().CreateAndAuthenticate(t, "alice", user.RoleResident)
		date := testWeek()

		reqBody := request.CreateBookingRequest{SlotID: slots[0], Date: date.Format(time.DateOnly)}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.Equal(t, slots[0], created.SlotID)
		require.Equal(t, userID, created.UserID)
		require.Equal(t, date.Format(time.DateOnly), created.Date)

		// The booking shows up in the owner's list
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token)
		var list []response.BookingListResponse
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &list)
		require.Len(t, list, 1)
		require.Equal(t, created.ID, list[0].ID)
		require.Equal(t, "Washer A", list[0].MachineName)
	})

	s.Run("Error case: the same slot and date cannot be booked twice", func() {
		t := s.T()

		_, slots := dbtest.SeedMachinePark(t, s.DB)
		_, aliceToken := s.jwtHelper().CreateAndAuthenticate(t, "alice", user.RoleResident)
		_, bobToken := s.jwtHelper().CreateAndAuthenticate(t, "bob", user.RoleResident)
		date := testWeek()

		reqBody := request.CreateBookingRequest{SlotID: slots[0], Date: date.Format(time.DateOnly)}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, aliceToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, bobToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already booked")
	})

	s.Run("Race case: concurrent requests for one slot produce exactly one booking", func() {
		t := s.T()

		_, slots := dbtest.SeedMachinePark(t, s.DB)
		date := testWeek().Format(time.DateOnly)

		const contenders = 8
		tokens := make([]string, contenders)
		for i := range contenders {
			_, tokens[i] = s.jwtHelper().CreateAndAuthenticate(t, "racer"+string(rune('a'+i)), user.RoleResident)
		}

		codes := make([]int, contenders)
		var wg sync.WaitGroup
		for i := range contenders {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				reqBody := request.CreateBookingRequest{SlotID: slots[1], Date: date}
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, tokens[i])
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		winners, losers := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				winners++
			case http.StatusConflict:
				losers++
			default:
				t.Fatalf("unexpected status %d in booking race", code)
			}
		}
		require.Equal(t, 1, winners, "exactly one request must win the slot")
		require.Equal(t, contenders-1, losers)
	})

	s.Run("Error case: weekly quota per machine is enforced", func() {
		t := s.T()

		_, slots := dbtest.SeedMachinePark(t, s.DB)
		_, token := s.jwtHelper().CreateAndAuthenticate(t, "alice", user.RoleResident)
		monday := testWeek()

		// One booking per day keeps the daily cap out of the picture
		for day := range 3 {
			reqBody := request.CreateBookingRequest{
				SlotID: slots[day],
				Date:   monday.AddDate(0, 0, day).Format(time.DateOnly),
			}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		reqBody := request.CreateBookingRequest{
			SlotID: slots[0],
			Date:   monday.AddDate(0, 0, 3).Format(time.DateOnly),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Weekly booking quota")
	})

	s.Run("Error case: one booking per user per day", func() {
		t := s.T()

		_, slots := dbtest.SeedMachinePark(t, s.DB)
		_, token := s.jwtHelper().CreateAndAuthenticate(t, "alice", user.RoleResident)
		date := testWeek().Format(time.DateOnly)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{SlotID: slots[0], Date: date}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{SlotID: slots[1], Date: date}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Daily booking limit")
	})

	s.Run("Error case: date window is validated", func() {
		t := s.T()

		_, slots := dbtest.SeedMachinePark(t, s.DB)
		_, token := s.jwtHelper().CreateAndAuthenticate(t, "alice", user.RoleResident)

		past := time.Now().UTC().AddDate(0, 0, -1)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{SlotID: slots[0], Date: past.Format(time.DateOnly)}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "past")

		farAhead := time.Now().UTC().AddDate(0, 0, 91)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{SlotID: slots[0], Date: farAhead.Format(time.DateOnly)}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "horizon")
	})

	s.Run("Error case: booking an unusable machine fails", func() {
		t := s.T()

		machineID := dbtest.CreateTestMachine(t, s.DB, "Broken Dryer", "dryer-x", "unusable")
		slotID := dbtest.CreateTestSlot(t, s.DB, machineID, 1, "06:00-10:00")
		_, token := s.jwtHelper().CreateAndAuthenticate(t, "alice", user.RoleResident)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{SlotID: slotID, Date: testWeek().Format(time.DateOnly)}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "not usable")
	})

	s.Run("Error case: unknown slot returns 404", func() {
		t := s.T()

		_, token := s.jwtHelper().CreateAndAuthenticate(t, "alice", user.RoleResident)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{SlotID: uuid.New(), Date: testWeek().Format(time.DateOnly)}, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "slot not found")
	})

	s.Run("Error case: requests without a valid token are rejected", func() {
		t := s.T()

		_, slots := dbtest.SeedMachinePark(t, s.DB)
		reqBody := request.CreateBookingRequest{SlotID: slots[0], Date: testWeek().Format(time.DateOnly)}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		userID := s.jwtHelper().CreateTestUser(t, "alice", "resident", 0)
		expired := s.jwtHelper().CreateExpiredToken(t, userID, user.RoleResident)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestCancelBooking - Cancellation API tests
// =============================================================================

func (s *BookingSuite) TestCancelBooking() {
	s.Run("Normal case: cancel frees the slot for rebooking", func() {
		t := s.T()

		_, slots := dbtest.SeedMachinePark(t, s.DB)
		_, aliceToken := s.jwtHelper().CreateAndAuthenticate(t, "alice", user.RoleResident)
		_, bobToken := s.jwtHelper().CreateAndAuthenticate(t, "bob", user.RoleResident)
		date := testWeek().Format(time.DateOnly)

		reqBody := request.CreateBookingRequest{SlotID: slots[0], Date: date}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, aliceToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		cancelBody := request.CancelBookingRequest{SlotID: slots[0], Date: date}
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL, cancelBody, aliceToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// Slot is free again; another user can take it
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, bobToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Error case: only the owner may cancel", func() {
		t := s.T()

		_, slots := dbtest.SeedMachinePark(t, s.DB)
		_, aliceToken := s.jwtHelper().CreateAndAuthenticate(t, "alice", user.RoleResident)
		_, bobToken := s.jwtHelper().CreateAndAuthenticate(t, "bob", user.RoleResident)
		date := testWeek().Format(time.DateOnly)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{SlotID: slots[0], Date: date}, aliceToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		cancelBody := request.CancelBookingRequest{SlotID: slots[0], Date: date}
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL, cancelBody, bobToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "another user")
	})

	s.Run("Normal case: an admin may cancel anyone's booking", func() {
		t := s.T()

		_, slots := dbtest.SeedMachinePark(t, s.DB)
		_, aliceToken := s.jwtHelper().CreateAndAuthenticate(t, "alice", user.RoleResident)
		_, adminToken := s.jwtHelper().CreateAndAuthenticate(t, "warden", user.RoleAdmin)
		date := testWeek().Format(time.DateOnly)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{SlotID: slots[0], Date: date}, aliceToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			bookingsURL+"/"+created.ID.String(), nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	})

	s.Run("Error case: a same-day booking cannot be cancelled once its slot started", func() {
		t := s.T()

		// A full-day window has always started, whatever the wall clock
		// says during the test run.
		machineID := dbtest.CreateTestMachine(t, s.DB, "Day Washer", "washer-day", "usable")
		slotID := dbtest.CreateTestSlot(t, s.DB, machineID, 1, "00:00-00:00")
		_, token := s.jwtHelper().CreateAndAuthenticate(t, "alice", user.RoleResident)
		today := time.Now().UTC().Format(time.DateOnly)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{SlotID: slotID, Date: today}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		cancelBody := request.CancelBookingRequest{SlotID: slotID, Date: today}
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL, cancelBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already started")
	})

	s.Run("Error case: cancelling a free slot returns 404", func() {
		t := s.T()

		_, slots := dbtest.SeedMachinePark(t, s.DB)
		_, token := s.jwtHelper().CreateAndAuthenticate(t, "alice", user.RoleResident)

		cancelBody := request.CancelBookingRequest{SlotID: slots[0], Date: testWeek().Format(time.DateOnly)}
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL, cancelBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})
}

// =============================================================================
// TestMachineCalendar - Machine listing and occupancy API tests
// =============================================================================

func (s *BookingSuite) TestMachineCalendar() {
	s.Run("Normal case: calendar reflects a booking", func() {
		t := s.T()

		machineID, slots := dbtest.SeedMachinePark(t, s.DB)
		_, token := s.jwtHelper().CreateAndAuthenticate(t, "alice", user.RoleResident)
		date := testWeek()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{SlotID: slots[0], Date: date.Format(time.DateOnly)}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		calendarURL := machinesURL + "/" + machineID.String() +
			"/calendar/" + date.Format("2006") + "/" + date.Format("1")
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, calendarURL, nil, token)

		var calendar response.CalendarResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &calendar)
		require.Equal(t, machineID.String(), calendar.MachineID)

		day, ok := calendar.Days[date.Format(time.DateOnly)]
		require.True(t, ok, "booked day missing from calendar")
		require.Len(t, day, 3)
		require.True(t, day[0].IsBooked)
		require.NotNil(t, day[0].BookedBy)
		require.Equal(t, "alice", day[0].BookedBy.Username)
		require.False(t, day[1].IsBooked)
	})

	s.Run("Normal case: machines are listed with their slots", func() {
		t := s.T()

		machineID, _ := dbtest.SeedMachinePark(t, s.DB)
		_, token := s.jwtHelper().CreateAndAuthenticate(t, "alice", user.RoleResident)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, machinesURL, nil, token)

		var machines []response.MachineResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &machines)
		require.Len(t, machines, 1)
		require.Equal(t, machineID, machines[0].ID)
		require.Len(t, machines[0].Slots, 3)
	})
}
