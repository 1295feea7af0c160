package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	resdto "slotify/internal/handler/dto/response"
	"slotify/internal/handler/httperr"
	"slotify/internal/pkg/errs"
	"slotify/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MachineHandler struct {
	machineQueries queries.MachineQueries
	bookingQueries queries.BookingQueries
}

func NewMachineHandler(machineQueries queries.MachineQueries, bookingQueries queries.BookingQueries) *MachineHandler {
	return &MachineHandler{
		machineQueries: machineQueries,
		bookingQueries: bookingQueries,
	}
}

// @Summary List machines
// @Description List all machines with their time slots
// @Tags machines
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MachineResponse
// @Failure 401 {object} httperr.Response
// @Router /machines [get]
func (h *MachineHandler) ListMachines(c *gin.Context) {
	views, err := h.machineQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.MachineResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromMachineView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get machine
// @Description Get a machine and its time slots by ID
// @Tags machines
// @Produce json
// @Security BearerAuth
// @Param id path string true "Machine ID"
// @Success 200 {object} resdto.MachineResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /machines/{id} [get]
func (h *MachineHandler) GetMachine(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid machine ID format", nil)
		return
	}

	view, err := h.machineQueries.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrMachineNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Machine not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMachineView(view))
}

// @Summary Monthly occupancy calendar
// @Description Per-day, per-slot occupancy for one machine and month
// @Tags machines
// @Produce json
// @Security BearerAuth
// @Param id path string true "Machine ID"
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param exclude_past query bool false "Omit days before today"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /machines/{id}/calendar/{year}/{month} [get]
func (h *MachineHandler) GetCalendar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid machine ID format", nil)
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2200 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("year out of range"), "Invalid year", nil)
		return
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("month out of range"), "Invalid month", nil)
		return
	}

	excludePast := c.DefaultQuery("exclude_past", "false") == "true"

	days, err := h.bookingQueries.MonthlyOccupancy(c.Request.Context(), id, year, time.Month(month), excludePast)
	if err != nil {
		if errors.Is(err, queries.ErrMachineNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Machine not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.CalendarResponse{
		MachineID: id.String(),
		Year:      year,
		Month:     month,
		Days:      days,
	})
}
