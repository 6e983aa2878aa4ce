package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"zen-booking/internal/domain/booking"
	reqdto "zen-booking/internal/handler/dto/request"
	resdto "zen-booking/internal/handler/dto/response"
	"zen-booking/internal/handler/httperr"
	"zen-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.BookingCommands
}

func NewPaymentHandler(cmds commands.BookingCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Create checkout
// @Description Start a hosted payment flow for a paid booking
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/checkout [post]
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	var req reqdto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", "Invalid request format")
		return
	}

	intent, err := h.cmds.CreateCheckout(c.Request.Context(), req.ToDraft())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMissingFields), errors.Is(err, booking.ErrInvalidDate),
			errors.Is(err, booking.ErrInvalidTime):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", err.Error())
		case errors.Is(err, commands.ErrInvalidSession):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_SESSION", "Unknown session type")
		case errors.Is(err, commands.ErrGatewayUnavailable):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "GATEWAY_UNAVAILABLE", "Payment provider unavailable")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "INTERNAL", "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutIntent(intent))
}

// @Summary Payment webhook
// @Description Receive asynchronous payment completion events
// @Tags payments
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Event signature"
// @Success 200 {object} resdto.WebhookAckResponse
// @Failure 400 {object} httperr.Response
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", "Unreadable payload")
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	_, err = h.cmds.HandleCompletionEvent(c.Request.Context(), payload, signature)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidSignature):
			slog.Warn("rejected webhook with invalid signature", "client_ip", c.ClientIP())
			httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_SIGNATURE", "Webhook signature verification failed")
		case errors.Is(err, commands.ErrIncompleteMetadata):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "INCOMPLETE_METADATA", "Event metadata is incomplete")
		default:
			// Returning 5xx makes the provider redeliver; insert dedup makes
			// that safe.
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "INTERNAL", "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.WebhookAckResponse{Received: true})
}

// @Summary Confirm checkout
// @Description Synchronously confirm a paid checkout by its ID
// @Tags payments
// @Produce json
// @Param id path string true "Checkout session ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /payments/checkout/{id}/confirm [post]
func (h *PaymentHandler) ConfirmCheckout(c *gin.Context) {
	checkoutID := strings.TrimSpace(c.Param("id"))
	if checkoutID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest,
			commands.ErrInvalidSession, "INVALID_REQUEST", "Checkout ID is required")
		return
	}

	result, err := h.cmds.ConfirmCheckout(c.Request.Context(), checkoutID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCheckoutNotPaid):
			httperr.AbortWithError(c, http.StatusConflict, err, "NOT_PAID", "Checkout has not been paid")
		case errors.Is(err, commands.ErrInvalidSession):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_SESSION", "Unknown checkout session")
		case errors.Is(err, commands.ErrIncompleteMetadata):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "INCOMPLETE_METADATA", "Checkout metadata is incomplete")
		case errors.Is(err, commands.ErrGatewayUnavailable):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "GATEWAY_UNAVAILABLE", "Payment provider unavailable")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "INTERNAL", "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(result.Booking))
}
