package handler

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"travel-booking-service/internal/module/user/models/request"
	"travel-booking-service/internal/module/user/usecases"
	"travel-booking-service/internal/pkg/errors"
	"travel-booking-service/internal/pkg/helpers"
)

type UserHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

// IdentityWebhook consumes user lifecycle events. Signature verification
// already happened in middleware.
func (h *UserHandler) IdentityWebhook(ctx *fiber.Ctx) error {
	var req request.IdentityEvent
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error validate request"))
	}

	if err := h.Usecase.HandleIdentityEvent(ctx.UserContext(), &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error handle identity event: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "webhook received")
}

func (h *UserHandler) GetMe(ctx *fiber.Ctx) error {
	identityID := ctx.Locals("identity_id").(string)

	resp, err := h.Usecase.GetUser(ctx.UserContext(), identityID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get user: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get user")
}

func (h *UserHandler) UpdateUser(ctx *fiber.Ctx) error {
	identityID := ctx.Params("userId")

	var req request.UpdateUser
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.UpdateUser(ctx.UserContext(), identityID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update user: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update user")
}

func (h *UserHandler) ListUsers(ctx *fiber.Ctx) error {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("limit"))

	users, total, err := h.Usecase.ListUsers(ctx.UserContext(), ctx.Query("role"), ctx.Query("search"), page, pageSize)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list users: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	resp := map[string]interface{}{
		"items": users,
		"total": total,
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list users")
}

func (h *UserHandler) DeleteUser(ctx *fiber.Ctx) error {
	identityID := ctx.Params("userId")

	if err := h.Usecase.DeleteUser(ctx.UserContext(), identityID); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete user: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success delete user")
}

func (h *UserHandler) ConsumeCredit(ctx *fiber.Ctx) error {
	identityID := ctx.Locals("identity_id").(string)

	remaining, err := h.Usecase.ConsumeCredit(ctx.UserContext(), identityID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error consume credit: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	resp := map[string]interface{}{
		"remaining_credits": remaining,
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success consume credit")
}
