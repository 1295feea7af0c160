//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"slotify/internal/domain/user"
	"slotify/internal/handler/api"
	resdto "slotify/internal/handler/dto/response"
	"slotify/internal/pkg/errs"
	"slotify/internal/usecase/commands"
	"slotify/internal/usecase/queries"
	"slotify/tests/common/builder"
	"slotify/tests/common/httptest"
	"slotify/tests/common/testutil"
	commandsmock "slotify/tests/mock/commands"
	queriesmock "slotify/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleResident)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.GetUserBookings)
	s.router.DELETE("/bookings", authMiddleware, s.handler.CancelBooking)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.CancelBookingByID)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// adminRouter registers the same routes behind a middleware that grants
// the admin role.
func (s *BookingHandlerTestSuite) adminRouter() *gin.Engine {
	router := gin.New()
	adminAuthMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
			c.Set("user_role", user.RoleAdmin)
		}
		c.Next()
	}
	router.DELETE("/bookings", adminAuthMiddleware, s.handler.CancelBooking)
	router.DELETE("/bookings/:id", adminAuthMiddleware, s.handler.CancelBookingByID)
	return router
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	snapshot := b.BuildSnapshot()
	wantDate := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	s.Run("success: returns 201 Created with BookingResponse", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), s.userID, snapshot.TimeSlotID, wantDate).
			Return(snapshot, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(snapshot.ID, response.ID)
		s.Equal(snapshot.TimeSlotID, response.SlotID)
		s.Equal(snapshot.UserID, response.UserID)
		s.Equal("2026-09-10", response.Date)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: slot_id (required)", mutate: testutil.Field("slot_id", nil)},
			{name: "missing field: date (required)", mutate: testutil.Field("date", nil)},
			{name: "slot_id is not a UUID", mutate: testutil.Field("slot_id", "not-a-uuid")},
			{name: "date is not ISO formatted", mutate: testutil.Field("date", "10/09/2026")},
			{name: "date has a time component", mutate: testutil.Field("date", "2026-09-10T06:00:00Z")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "past date",
				commandsError:  commands.ErrPastDate,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Date is in the past",
			},
			{
				name:           "beyond horizon",
				commandsError:  commands.ErrTooFarAhead,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "beyond the booking horizon",
			},
			{
				name:           "user not found",
				commandsError:  commands.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
			},
			{
				name:           "slot not found",
				commandsError:  commands.ErrSlotNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Time slot not found",
			},
			{
				name:           "machine not found",
				commandsError:  commands.ErrMachineNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Machine not found",
			},
			{
				name:           "machine unusable",
				commandsError:  commands.ErrMachineUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Machine is not usable",
			},
			{
				name:           "weekly quota reached",
				commandsError:  commands.ErrQuotaExceeded,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Weekly booking quota",
			},
			{
				name:           "daily limit reached",
				commandsError:  commands.ErrDailyLimitExceeded,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Daily booking limit",
			},
			{
				name:           "slot already booked",
				commandsError:  commands.ErrSlotAlreadyBooked,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				// Storage errors reach the handler with the cause
				// preserved and the sentinel attached as a mark.
				name:           "storage timeout",
				commandsError:  errs.Mark(errors.New("query timed out"), commands.ErrTimeout),
				expectedStatus: http.StatusGatewayTimeout,
				expectedMsg:    "outcome unknown",
			},
			{
				name:           "storage unavailable",
				commandsError:  errs.Mark(errors.New("connection refused"), commands.ErrStorageUnavailable),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Storage unavailable",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), s.userID, snapshot.TimeSlotID, wantDate).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCancelRequestDTO()
	snapshot := b.BuildSnapshot()
	wantDate := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.userID, snapshot.TimeSlotID, wantDate, false).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: admin cancel passes the override", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.userID, snapshot.TimeSlotID, wantDate, true).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.adminRouter(), http.MethodDelete, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on malformed date", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("date", "next tuesday"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "not the owner",
				commandsError:  commands.ErrUnauthorized,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "another user",
			},
			{
				name:           "slot already started",
				commandsError:  commands.ErrTooLateToCancel,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already started",
			},
			{
				name:           "past date",
				commandsError:  commands.ErrPastDate,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Date is in the past",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), s.userID, snapshot.TimeSlotID, wantDate, false).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCancelBookingByID
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBookingByID() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().CancelByID(gomock.Any(), s.userID, bookingID, false).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: admin cancel by id passes the override", func() {
		s.mockCommands.EXPECT().CancelByID(gomock.Any(), s.userID, bookingID, true).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.adminRouter(), http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockCommands.EXPECT().CancelByID(gomock.Any(), s.userID, bookingID, false).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestGetUserBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetUserBookings() {
	url := "/bookings"

	s.Run("success: returns the user's bookings", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().WithUserID(s.userID).BuildView(),
			builder.NewBookingBuilder().WithUserID(s.userID).BuildView(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(views[0].ID, response[0].ID)
		s.Equal("Washer A", response[0].MachineName)
		s.Equal("2026-09-10", response[0].Date)
	})

	s.Run("success: no bookings yields an empty list", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
