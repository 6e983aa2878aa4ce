package api

import (
	"errors"
	"net/http"
	"strings"

	"zen-booking/internal/domain/booking"
	reqdto "zen-booking/internal/handler/dto/request"
	resdto "zen-booking/internal/handler/dto/response"
	"zen-booking/internal/handler/httperr"
	"zen-booking/internal/usecase/commands"
	"zen-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a slot directly, without payment
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", "Invalid request format")
		return
	}

	b, err := h.cmds.CreateBooking(c.Request.Context(), req.ToDraft())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "SLOT_CONFLICT", "Slot already booked")
		case errors.Is(err, commands.ErrMissingFields), errors.Is(err, booking.ErrInvalidDate),
			errors.Is(err, booking.ErrInvalidTime):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", err.Error())
		case errors.Is(err, commands.ErrInvalidSession):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_SESSION", "Unknown session type")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "INTERNAL", "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(b))
}

// @Summary List bookings
// @Description List all bookings, optionally filtered by date
// @Tags bookings
// @Produce json
// @Param date query string false "Date filter (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var date *string
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		date = &raw
	}

	views, err := h.q.List(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidDate) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_DATE", "Date must be YYYY-MM-DD")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "INTERNAL", "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Look up booking
// @Description Find the booking a cancellation for this email would remove
// @Tags bookings
// @Produce json
// @Param email query string true "Customer email"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/lookup [get]
func (h *BookingHandler) Lookup(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		httperr.AbortWithError(c, http.StatusBadRequest,
			commands.ErrMissingFields, "INVALID_REQUEST", "Email is required")
		return
	}

	view, err := h.q.FindByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "NOT_FOUND", "No booking found for this email")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "INTERNAL", "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel the oldest booking held by the given email
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CancelBookingRequest true "Cancellation request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	var req reqdto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", "Invalid request format")
		return
	}

	b, err := h.cmds.CancelBooking(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "NOT_FOUND", "No booking found for this email")
		case errors.Is(err, commands.ErrMissingFields):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", "Email is required")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "INTERNAL", "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(b))
}
