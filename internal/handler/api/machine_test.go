//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"slotify/internal/handler/api"
	resdto "slotify/internal/handler/dto/response"
	"slotify/internal/usecase/queries"
	"slotify/tests/common/builder"
	"slotify/tests/common/httptest"
	queriesmock "slotify/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MachineHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockCtrl           *gomock.Controller
	mockMachineQueries *queriesmock.MockMachineQueries
	mockBookingQueries *queriesmock.MockBookingQueries
	handler            *api.MachineHandler
}

func (s *MachineHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockMachineQueries = queriesmock.NewMockMachineQueries(s.mockCtrl)
	s.mockBookingQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewMachineHandler(s.mockMachineQueries, s.mockBookingQueries)

	s.router.GET("/machines", s.handler.ListMachines)
	s.router.GET("/machines/:id", s.handler.GetMachine)
	s.router.GET("/machines/:id/calendar/:year/:month", s.handler.GetCalendar)
}

func (s *MachineHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMachineHandlerSuite(t *testing.T) {
	suite.Run(t, new(MachineHandlerTestSuite))
}

// ================================================================================
// TestListMachines
// ================================================================================

func (s *MachineHandlerTestSuite) TestListMachines() {
	s.Run("success: returns machines with their slots", func() {
		views := []*queries.MachineView{
			builder.NewMachineBuilder().BuildView(),
			builder.NewMachineBuilder().BuildView(),
		}
		s.mockMachineQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/machines", nil, "")

		var response []resdto.MachineResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(views[0].ID, response[0].ID)
		s.Len(response[0].Slots, 3)
		s.Equal("06:00-10:00", response[0].Slots[0].TimeRange)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockMachineQueries.EXPECT().List(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/machines", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGetMachine
// ================================================================================

func (s *MachineHandlerTestSuite) TestGetMachine() {
	view := builder.NewMachineBuilder().BuildView()
	url := "/machines/" + view.ID.String()

	s.Run("success: returns 200 OK with MachineResponse", func() {
		s.mockMachineQueries.EXPECT().Get(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.MachineResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("Washer A", response.Name)
		s.Equal("usable", response.Status)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/machines/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid machine ID")
	})

	s.Run("error: 404 Not Found for missing machine", func() {
		s.mockMachineQueries.EXPECT().Get(gomock.Any(), view.ID).
			Return(nil, queries.ErrMachineNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Machine not found")
	})
}

// ================================================================================
// TestGetCalendar
// ================================================================================

func (s *MachineHandlerTestSuite) TestGetCalendar() {
	machineID := uuid.New()
	baseURL := "/machines/" + machineID.String() + "/calendar/2026/9"

	occupancy := queries.MonthlyOccupancy{
		"2026-09-10": {
			{SlotID: uuid.New(), SlotNumber: 1, TimeRange: "06:00-10:00", IsBooked: false},
			{SlotID: uuid.New(), SlotNumber: 2, TimeRange: "10:00-14:00", IsBooked: true,
				BookedBy: &queries.Occupant{UserID: uuid.New(), Username: "alice", Role: "resident"}},
		},
	}

	s.Run("success: returns the month's occupancy", func() {
		s.mockBookingQueries.EXPECT().MonthlyOccupancy(gomock.Any(), machineID, 2026, time.September, false).
			Return(occupancy, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "")

		var response resdto.CalendarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(machineID.String(), response.MachineID)
		s.Equal(2026, response.Year)
		s.Equal(9, response.Month)
		s.Len(response.Days["2026-09-10"], 2)
		s.True(response.Days["2026-09-10"][1].IsBooked)
	})

	s.Run("success: exclude_past is forwarded", func() {
		s.mockBookingQueries.EXPECT().MonthlyOccupancy(gomock.Any(), machineID, 2026, time.September, true).
			Return(queries.MonthlyOccupancy{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?exclude_past=true", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on path validation", func() {
		testCases := []struct {
			name string
			url  string
			msg  string
		}{
			{name: "invalid machine UUID", url: "/machines/invalid-uuid/calendar/2026/9", msg: "Invalid machine ID"},
			{name: "year not a number", url: "/machines/" + machineID.String() + "/calendar/abcd/9", msg: "Invalid year"},
			{name: "year out of range", url: "/machines/" + machineID.String() + "/calendar/1999/9", msg: "Invalid year"},
			{name: "month out of range", url: "/machines/" + machineID.String() + "/calendar/2026/13", msg: "Invalid month"},
			{name: "month zero", url: "/machines/" + machineID.String() + "/calendar/2026/0", msg: "Invalid month"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})

	s.Run("error: 404 Not Found for missing machine", func() {
		s.mockBookingQueries.EXPECT().MonthlyOccupancy(gomock.Any(), machineID, 2026, time.September, false).
			Return(nil, queries.ErrMachineNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Machine not found")
	})
}
