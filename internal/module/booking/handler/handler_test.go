package handler_test

import (
	"context"
	"testing"

	"travel-booking-service/internal/module/booking/handler"
	"travel-booking-service/internal/module/booking/mocks"
	"travel-booking-service/internal/module/booking/models/request"
	"travel-booking-service/internal/module/booking/models/response"
	"travel-booking-service/internal/pkg/errors"
	logInternal "travel-booking-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/valyala/fasthttp"
)

var (
	h             *handler.BookingHandler
	ucm           *mocks.Usecase
	app           *fiber.App
	validatorTest *validator.Validate
	p             message.Publisher
)

type mockPublisher struct{}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	return nil
}

func setup() {
	ucm = &mocks.Usecase{}
	logMock := logInternal.Setup()
	validatorTest = validator.New()
	p = &mockPublisher{}
	h = &handler.BookingHandler{
		Log:       logMock,
		Validator: validatorTest,
		Usecase:   ucm,
		Publish:   p,
	}
	app = fiber.New()
}

func teardown() {
	ucm = nil
	validatorTest = nil
	p = nil
	h = nil
	app = nil
}

func TestCreateBooking(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		payload := request.CreateBooking{
			UserID:      "user_1",
			ServiceType: "hotel",
			ServiceID:   "42",
			TotalPrice:  2500,
		}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/bookings")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		ucm.On("CreateBooking", ctx.UserContext(), &payload).
			Return(response.CreatedBooking{
				BookingID:        "00000000-0000-0000-0000-000000000000",
				ConfirmationCode: "HOT-ABC123-XY9Z",
				Status:           "pending",
				ServiceName:      "Grand Palace",
				TotalPrice:       2500,
			}, nil)

		err := h.CreateBooking(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, ctx.Response().StatusCode())
	})

	t.Run("missing required fields", func(t *testing.T) {
		payload := request.CreateBooking{
			ServiceType: "hotel",
		}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		err := h.CreateBooking(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
		ucm.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})
}

func TestGetBookingByID(t *testing.T) {
	setup()
	defer teardown()

	t.Run("not found bubbles up", func(t *testing.T) {
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().Header.SetMethod("GET")

		ucm.On("GetBookingByID", ctx.UserContext(), "").
			Return(response.Booking{}, errors.NotFound("booking not found"))

		err := h.GetBookingByID(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, ctx.Response().StatusCode())
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	setup()
	defer teardown()

	t.Run("invalid status rejected by validation", func(t *testing.T) {
		payload := request.UpdateBookingStatus{Status: "teleported"}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("PATCH")
		ctx.Request().SetBody(jsonData)

		err := h.UpdateBookingStatus(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
		ucm.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("success", func(t *testing.T) {
		payload := request.UpdateBookingStatus{Status: "confirmed"}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("PATCH")
		ctx.Request().SetBody(jsonData)

		ucm.On("UpdateBookingStatus", ctx.UserContext(), "", &payload).
			Return(response.Booking{Status: "confirmed"}, nil)

		err := h.UpdateBookingStatus(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})
}

func TestCancelBooking(t *testing.T) {
	setup()
	defer teardown()

	t.Run("empty body is allowed", func(t *testing.T) {
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().Header.SetMethod("POST")

		ucm.On("CancelBooking", ctx.UserContext(), "", &request.CancelBooking{}).
			Return(response.Booking{Status: "cancelled"}, nil)

		err := h.CancelBooking(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})
}

func TestGetVoucher(t *testing.T) {
	setup()
	defer teardown()

	t.Run("responds with a pdf attachment", func(t *testing.T) {
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().Header.SetMethod("GET")

		ucm.On("RenderVoucher", ctx.UserContext(), "").
			Return([]byte("%PDF-1.4 fake"), nil)

		err := h.GetVoucher(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "application/pdf", string(ctx.Response().Header.ContentType()))
	})
}

func TestConsumeBookingEvents(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		payload := request.BookingEvent{
			BookingID: "00000000-0000-0000-0000-000000000000",
			EventType: "booking_confirmed",
		}

		jsonData, _ := json.Marshal(payload)
		msg := message.NewMessage("123", jsonData)

		ucm.On("ConsumeBookingEvent", ctx, &payload).Return(nil)

		err := h.ConsumeBookingEvents(msg)

		assert.NoError(t, err)
	})

	t.Run("bad payload goes to the poison queue", func(t *testing.T) {
		msg := message.NewMessage("124", []byte("not json"))

		err := h.ConsumeBookingEvents(msg)

		assert.Error(t, err)
		ucm.AssertNotCalled(t, "ConsumeBookingEvent", mock.Anything, mock.Anything)
	})
}

func TestSetBookingExpired(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		payload := request.BookingExpiration{BookingID: "00000000-0000-0000-0000-000000000000"}
		jsonData, _ := json.Marshal(payload)

		task := asynq.NewTask("booking_payment_expired", jsonData)

		ucm.On("SetBookingExpired", ctx, &payload).Return(nil)

		err := h.SetBookingExpired(ctx, task)

		assert.NoError(t, err)
	})

	t.Run("payload without booking id fails validation", func(t *testing.T) {
		task := asynq.NewTask("booking_payment_expired", []byte(`{}`))

		err := h.SetBookingExpired(ctx, task)

		assert.Error(t, err)
		ucm.AssertNotCalled(t, "SetBookingExpired", mock.Anything, mock.Anything)
	})
}
