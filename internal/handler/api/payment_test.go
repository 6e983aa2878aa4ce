//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"zen-booking/internal/domain/booking"
	"zen-booking/internal/handler/api"
	resdto "zen-booking/internal/handler/dto/response"
	"zen-booking/internal/usecase/commands"
	"zen-booking/tests/common/builder"
	"zen-booking/tests/common/httptest"
	commandsmock "zen-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands)

	s.router.POST("/payments/checkout", s.handler.CreateCheckout)
	s.router.POST("/payments/checkout/:id/confirm", s.handler.ConfirmCheckout)
	s.router.POST("/payments/webhook", s.handler.Webhook)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestCreateCheckout() {
	s.Run("returns hosted checkout url", func() {
		bb := builder.NewBookingBuilder()
		intent := &booking.CheckoutIntent{
			CheckoutID:  "cs_test_123",
			RedirectURL: "https://checkout.stripe.com/pay/cs_test_123",
		}
		s.mockCommands.EXPECT().CreateCheckout(gomock.Any(), bb.Draft()).Return(intent, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/checkout", bb.CheckoutRequest())

		var resp resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal("cs_test_123", resp.CheckoutID)
		s.Equal(intent.RedirectURL, resp.URL)
	})

	s.Run("gateway unavailable", func() {
		bb := builder.NewBookingBuilder()
		s.mockCommands.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrGatewayUnavailable)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/checkout", bb.CheckoutRequest())
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadGateway, "GATEWAY_UNAVAILABLE")
	})

	s.Run("validation failure", func() {
		bb := builder.NewBookingBuilder()
		s.mockCommands.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidSession)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/checkout", bb.CheckoutRequest())
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "INVALID_SESSION")
	})
}

func (s *PaymentHandlerTestSuite) TestWebhook() {
	payload := []byte(`{"type":"checkout.session.completed"}`)

	s.Run("acknowledges applied event", func() {
		s.mockCommands.EXPECT().
			HandleCompletionEvent(gomock.Any(), payload, "t=1,v1=abc").
			Return(&commands.CompletionResult{Booking: builder.NewBookingBuilder().Entity()}, nil)

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/payments/webhook",
			payload, map[string]string{"Stripe-Signature": "t=1,v1=abc"})

		var resp resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.True(resp.Received)
	})

	s.Run("rejects bad signature", func() {
		s.mockCommands.EXPECT().
			HandleCompletionEvent(gomock.Any(), payload, "t=1,v1=forged").
			Return(nil, commands.ErrInvalidSignature)

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/payments/webhook",
			payload, map[string]string{"Stripe-Signature": "t=1,v1=forged"})
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "INVALID_SIGNATURE")
	})

	s.Run("rejects incomplete metadata", func() {
		s.mockCommands.EXPECT().
			HandleCompletionEvent(gomock.Any(), payload, gomock.Any()).
			Return(nil, commands.ErrIncompleteMetadata)

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/payments/webhook",
			payload, map[string]string{"Stripe-Signature": "t=1,v1=abc"})
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "INCOMPLETE_METADATA")
	})

	s.Run("storage failure surfaces as 500 so the provider redelivers", func() {
		s.mockCommands.EXPECT().
			HandleCompletionEvent(gomock.Any(), payload, gomock.Any()).
			Return(nil, commands.ErrStorageFailure)

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/payments/webhook",
			payload, map[string]string{"Stripe-Signature": "t=1,v1=abc"})
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "INTERNAL")
	})
}

func (s *PaymentHandlerTestSuite) TestConfirmCheckout() {
	s.Run("paid checkout returns the booking", func() {
		bb := builder.NewBookingBuilder()
		s.mockCommands.EXPECT().ConfirmCheckout(gomock.Any(), "cs_test_123").
			Return(&commands.CompletionResult{Booking: bb.Entity()}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/checkout/cs_test_123/confirm", nil)

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(bb.Email, resp.Email)
	})

	s.Run("unpaid checkout", func() {
		s.mockCommands.EXPECT().ConfirmCheckout(gomock.Any(), "cs_test_unpaid").
			Return(nil, commands.ErrCheckoutNotPaid)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/checkout/cs_test_unpaid/confirm", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "NOT_PAID")
	})

	s.Run("unknown checkout session", func() {
		s.mockCommands.EXPECT().ConfirmCheckout(gomock.Any(), "cs_test_ghost").
			Return(nil, commands.ErrInvalidSession)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/checkout/cs_test_ghost/confirm", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "INVALID_SESSION")
	})
}
