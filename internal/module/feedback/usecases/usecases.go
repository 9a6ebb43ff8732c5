package usecases

import (
	"context"
	"database/sql"

	"travel-booking-service/internal/module/feedback/models/entity"
	"travel-booking-service/internal/module/feedback/models/request"
	"travel-booking-service/internal/module/feedback/models/response"
	"travel-booking-service/internal/module/feedback/repositories"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const defaultPageSize = 20

type usecases struct {
	repo repositories.Repositories
	log  *otelzap.Logger
}

type Usecase interface {
	SubmitFeedback(ctx context.Context, payload request.CreateFeedback) (response.Feedback, error)
	ListFeedback(ctx context.Context, status string, page, pageSize int) (response.FeedbackPage, error)
	UpdateFeedbackStatus(ctx context.Context, id int64, payload request.UpdateFeedbackStatus) error
}

func New(repo repositories.Repositories, log *otelzap.Logger) Usecase {
	return &usecases{
		repo: repo,
		log:  log,
	}
}

// SubmitFeedback implements Usecase.
func (u *usecases) SubmitFeedback(ctx context.Context, payload request.CreateFeedback) (response.Feedback, error) {
	feedback := entity.Feedback{
		Name:    payload.Name,
		Email:   payload.Email,
		Subject: payload.Subject,
		Message: payload.Message,
		Status:  entity.StatusNew,
	}
	if payload.UserID != "" {
		feedback.UserID = sql.NullString{String: payload.UserID, Valid: true}
	}

	id, err := u.repo.InsertFeedback(ctx, feedback)
	if err != nil {
		return response.Feedback{}, err
	}

	stored, err := u.repo.FindFeedbackByID(ctx, id)
	if err != nil {
		return response.Feedback{}, err
	}
	return response.FromEntity(stored), nil
}

// ListFeedback implements Usecase.
func (u *usecases) ListFeedback(ctx context.Context, status string, page, pageSize int) (response.FeedbackPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	items, total, err := u.repo.FindFeedback(ctx, status, pageSize, (page-1)*pageSize)
	if err != nil {
		return response.FeedbackPage{}, err
	}

	totalPages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPages++
	}

	return response.FeedbackPage{
		Items:      response.FromEntities(items),
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// UpdateFeedbackStatus implements Usecase.
func (u *usecases) UpdateFeedbackStatus(ctx context.Context, id int64, payload request.UpdateFeedbackStatus) error {
	return u.repo.UpdateFeedbackStatus(ctx, id, payload.Status)
}
