package handler

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"travel-booking-service/internal/module/catalog/models/entity"
	"travel-booking-service/internal/module/catalog/usecases"
	"travel-booking-service/internal/pkg/errors"
	"travel-booking-service/internal/pkg/helpers"
)

type CatalogHandler struct {
	Log     *otelzap.Logger
	Usecase usecases.Usecase
}

func (h *CatalogHandler) ListServices(ctx *fiber.Ctx) error {
	serviceType := ctx.Params("type")
	featuredOnly := ctx.Query("featured") == "true"
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	resp, err := h.Usecase.ListServices(ctx.UserContext(), serviceType, featuredOnly, limit)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list services: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list services")
}

func (h *CatalogHandler) GetService(ctx *fiber.Ctx) error {
	serviceType := ctx.Params("type")
	id := ctx.Params("id")

	resp, err := h.Usecase.GetService(ctx.UserContext(), serviceType, id)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get service: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get service")
}

func (h *CatalogHandler) SearchServices(ctx *fiber.Ctx) error {
	serviceType := ctx.Params("type")
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	filter := entity.SearchFilter{
		Query:    ctx.Query("query"),
		Location: ctx.Query("location"),
		From:     ctx.Query("from"),
		To:       ctx.Query("to"),
	}

	resp, err := h.Usecase.SearchServices(ctx.UserContext(), serviceType, filter, limit)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error search services: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success search services")
}

func (h *CatalogHandler) ListServicesAdmin(ctx *fiber.Ctx) error {
	serviceType := ctx.Params("type")
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("limit"))

	resp, err := h.Usecase.ListServicesAdmin(ctx.UserContext(), serviceType, ctx.Query("search"), page, pageSize)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list services: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list services")
}

func (h *CatalogHandler) CreateService(ctx *fiber.Ctx) error {
	serviceType := ctx.Params("type")

	var fields map[string]interface{}
	if err := json.Unmarshal(ctx.Body(), &fields); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	resp, err := h.Usecase.CreateService(ctx.UserContext(), serviceType, fields)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create service: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create service")
}

func (h *CatalogHandler) UpdateService(ctx *fiber.Ctx) error {
	serviceType := ctx.Params("type")
	id := ctx.Params("id")

	var fields map[string]interface{}
	if err := json.Unmarshal(ctx.Body(), &fields); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	resp, err := h.Usecase.UpdateService(ctx.UserContext(), serviceType, id, fields)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update service: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update service")
}

func (h *CatalogHandler) DeleteService(ctx *fiber.Ctx) error {
	serviceType := ctx.Params("type")
	id := ctx.Params("id")

	if err := h.Usecase.DeleteService(ctx.UserContext(), serviceType, id); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete service: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success delete service")
}
