package handler

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"travel-booking-service/internal/module/payment/models/request"
	"travel-booking-service/internal/module/payment/usecases"
	"travel-booking-service/internal/pkg/errors"
	"travel-booking-service/internal/pkg/helpers"
)

type PaymentHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *PaymentHandler) CreateOrder(ctx *fiber.Ctx) error {
	var req request.CreateOrder
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	order, err := h.Usecase.CreateOrder(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create order: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, order, "Order created")
}

func (h *PaymentHandler) VerifyPayment(ctx *fiber.Ctx) error {
	var req request.VerifyPayment
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	verified, err := h.Usecase.VerifyPayment(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error verify payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	if !verified {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("Payment verification failed"))
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "Payment verified successfully")
}
