package handler

import (
	"fmt"
	"strconv"

	"travel-booking-service/internal/module/idea/models/request"
	"travel-booking-service/internal/module/idea/usecases"
	"travel-booking-service/internal/pkg/errors"
	"travel-booking-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type IdeaHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *IdeaHandler) SubmitIdea(ctx *fiber.Ctx) error {
	var req request.CreateIdea
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

	resp, err := h.Usecase.SubmitIdea(ctx.UserContext(), req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespCreated(ctx, h.Log, resp, "Idea submitted successfully")
}

func (h *IdeaHandler) GetIdeas(ctx *fiber.Ctx) error {
	category := ctx.Query("category")
	status := ctx.Query("status")
	limit := ctx.QueryInt("limit")

	resp, err := h.Usecase.ListIdeas(ctx.UserContext(), category, status, limit)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "Ideas retrieved")
}

func (h *IdeaHandler) GetIdea(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("ideaId"), 10, 64)
	if err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid idea id"))
	}

	resp, err := h.Usecase.GetIdea(ctx.UserContext(), id)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "Idea retrieved")
}

func (h *IdeaHandler) VoteIdea(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("ideaId"), 10, 64)
	if err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid idea id"))
	}

	votes, err := h.Usecase.VoteIdea(ctx.UserContext(), id)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, fiber.Map{"votes": votes}, "Vote recorded")
}

func (h *IdeaHandler) UpdateIdeaStatus(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("ideaId"), 10, 64)
	if err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid idea id"))
	}

	var req request.UpdateIdeaStatus
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("bad request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("missing required fields"))
	}

	if err := h.Usecase.UpdateIdeaStatus(ctx.UserContext(), id, req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, nil, "Idea status updated")
}
