package handler

import (
	"fmt"
	"strconv"

	"travel-booking-service/internal/module/feedback/models/request"
	"travel-booking-service/internal/module/feedback/usecases"
	"travel-booking-service/internal/pkg/errors"
	"travel-booking-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type FeedbackHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *FeedbackHandler) SubmitFeedback(ctx *fiber.Ctx) error {
	var req request.CreateFeedback
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("bad request"))
	}
	if identityID, ok := ctx.Locals("identity_id").(string); ok && identityID != "" {
		req.UserID = identityID
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("missing required fields"))
	}

	resp, err := h.Usecase.SubmitFeedback(ctx.UserContext(), req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespCreated(ctx, h.Log, resp, "Feedback submitted successfully")
}

func (h *FeedbackHandler) GetFeedback(ctx *fiber.Ctx) error {
	status := ctx.Query("status")
	page := ctx.QueryInt("page", 1)
	pageSize := ctx.QueryInt("page_size")

	resp, err := h.Usecase.ListFeedback(ctx.UserContext(), status, page, pageSize)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "Feedback retrieved")
}

func (h *FeedbackHandler) UpdateFeedbackStatus(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("feedbackId"), 10, 64)
	if err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid feedback id"))
	}

	var req request.UpdateFeedbackStatus
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("bad request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("missing required fields"))
	}

	if err := h.Usecase.UpdateFeedbackStatus(ctx.UserContext(), id, req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, nil, "Feedback status updated")
}
