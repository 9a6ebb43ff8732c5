package handler

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"travel-booking-service/internal/module/booking/models/request"
	"travel-booking-service/internal/module/booking/usecases"
	"travel-booking-service/internal/pkg/errors"
	"travel-booking-service/internal/pkg/helpers"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("missing required fields"))
	}

	resp, err := h.Usecase.CreateBooking(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "Booking created successfully")
}

func (h *BookingHandler) GetUserBookings(ctx *fiber.Ctx) error {
	userID := ctx.Params("userId")
	status := ctx.Query("status")
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	resp, err := h.Usecase.GetUserBookings(ctx.UserContext(), userID, status, limit)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get user bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get user bookings")
}

func (h *BookingHandler) GetBookingByID(ctx *fiber.Ctx) error {
	bookingID := ctx.Params("bookingId")

	resp, err := h.Usecase.GetBookingByID(ctx.UserContext(), bookingID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get booking")
}

func (h *BookingHandler) GetBookingByCode(ctx *fiber.Ctx) error {
	code := ctx.Params("code")

	resp, err := h.Usecase.GetBookingByCode(ctx.UserContext(), code)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get booking by code: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get booking by code")
}

func (h *BookingHandler) UpdateBookingStatus(ctx *fiber.Ctx) error {
	bookingID := ctx.Params("bookingId")

	var req request.UpdateBookingStatus
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.UpdateBookingStatus(ctx.UserContext(), bookingID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update booking status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "Booking status updated")
}

func (h *BookingHandler) UpdatePaymentStatus(ctx *fiber.Ctx) error {
	bookingID := ctx.Params("bookingId")

	var req request.UpdatePaymentStatus
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.UpdatePaymentStatus(ctx.UserContext(), bookingID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update payment status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "Payment status updated")
}

func (h *BookingHandler) CancelBooking(ctx *fiber.Ctx) error {
	bookingID := ctx.Params("bookingId")

	var req request.CancelBooking
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
			return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
		}
	}

	resp, err := h.Usecase.CancelBooking(ctx.UserContext(), bookingID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error cancel booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "Booking cancelled successfully")
}

func (h *BookingHandler) GetAllBookings(ctx *fiber.Ctx) error {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("limit"))

	resp, err := h.Usecase.ListBookings(ctx.UserContext(),
		ctx.Query("status"), ctx.Query("service_type"), ctx.Query("search"), page, pageSize)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list bookings")
}

func (h *BookingHandler) DeleteBooking(ctx *fiber.Ctx) error {
	bookingID := ctx.Params("bookingId")

	if err := h.Usecase.DeleteBooking(ctx.UserContext(), bookingID); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success delete booking")
}

func (h *BookingHandler) GetBookingStats(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetBookingStats(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get booking stats: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get booking stats")
}

func (h *BookingHandler) GetVoucher(ctx *fiber.Ctx) error {
	bookingID := ctx.Params("bookingId")

	pdf, err := h.Usecase.RenderVoucher(ctx.UserContext(), bookingID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error render voucher: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="voucher-%s.pdf"`, bookingID))
	return ctx.Status(fiber.StatusOK).Send(pdf)
}

// ConsumeBookingEvents is the watermill handler for the booking event topic.
// Payloads that cannot be processed are forwarded to the poison queue.
func (h *BookingHandler) ConsumeBookingEvents(msg *message.Message) error {
	msg.Ack()

	var req request.BookingEvent
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	ctx := context.Background()

	if err := h.Usecase.ConsumeBookingEvent(ctx, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error consume booking event: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	return nil
}

func (h *BookingHandler) publishPoisoned(msg *message.Message, cause error) {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: usecases.TopicBookingEvents,
		ErrorMsg:    cause.Error(),
		Payload:     msg.Payload,
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)

	if err := h.Publish.Publish("poisoned_queue", message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
	}
}

// SetBookingExpired is the asynq task handler for lapsed payment windows.
func (h *BookingHandler) SetBookingExpired(ctx context.Context, t *asynq.Task) error {
	var req request.BookingExpiration
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	if err := h.Usecase.SetBookingExpired(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error set booking expired: %v", err))
		return err
	}

	return nil
}
