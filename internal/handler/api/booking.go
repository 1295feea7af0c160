package api

import (
	"net/http"

	reqdto "slotify/internal/handler/dto/request"
	resdto "slotify/internal/handler/dto/response"
	"slotify/internal/handler/httperr"
	"slotify/internal/handler/middleware"
	"slotify/internal/pkg/errs"
	"slotify/internal/usecase/commands"
	"slotify/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Book a slot
// @Description Book a machine time slot for a given date
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	snapshot, err := h.bookingCommands.Book(c.Request.Context(), userID, req.SlotID, date)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingSnapshot(snapshot))
}

// @Summary Cancel a booking by slot and date
// @Description Cancel the booking occupying the given slot on the given date
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CancelBookingRequest true "Cancel request"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.CancelBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	if err := h.bookingCommands.Cancel(c.Request.Context(), userID, req.SlotID, date, middleware.IsAdmin(c)); err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Cancel a booking by ID
// @Description Cancel a booking by its identifier
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBookingByID(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	if err := h.bookingCommands.CancelByID(c.Request.Context(), userID, bookingID, middleware.IsAdmin(c)); err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List my bookings
// @Description List all bookings for the current user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	views, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.BookingListResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromBookingView(v)
	}

	c.JSON(http.StatusOK, response)
}

func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrPastDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Date is in the past", nil)
	case errs.Is(err, commands.ErrTooFarAhead):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Date is beyond the booking horizon", nil)
	case errs.Is(err, commands.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errs.Is(err, commands.ErrSlotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Time slot not found", nil)
	case errs.Is(err, commands.ErrMachineNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Machine not found", nil)
	case errs.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errs.Is(err, commands.ErrMachineUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Machine is not usable", nil)
	case errs.Is(err, commands.ErrQuotaExceeded):
		httperr.AbortWithError(c, http.StatusConflict, err, "Weekly booking quota for this machine reached", nil)
	case errs.Is(err, commands.ErrDailyLimitExceeded):
		httperr.AbortWithError(c, http.StatusConflict, err, "Daily booking limit reached", nil)
	case errs.Is(err, commands.ErrSlotAlreadyBooked):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot is already booked for this date", nil)
	case errs.Is(err, commands.ErrTooLateToCancel):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot has already started", nil)
	case errs.Is(err, commands.ErrUnauthorized):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Booking belongs to another user", nil)
	case errs.Is(err, commands.ErrTimeout):
		// Outcome unknown: the client must re-check, not retry blindly.
		httperr.AbortWithError(c, http.StatusGatewayTimeout, err, "Storage timed out, booking outcome unknown", nil)
	case errs.Is(err, commands.ErrStorageUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Storage unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
