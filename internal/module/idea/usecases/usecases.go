package usecases

import (
	"context"
	"database/sql"
	"fmt"

	"travel-booking-service/internal/module/idea/models/entity"
	"travel-booking-service/internal/module/idea/models/request"
	"travel-booking-service/internal/module/idea/models/response"
	"travel-booking-service/internal/module/idea/repositories"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const defaultListLimit = 50

type usecases struct {
	repo repositories.Repositories
	log  *otelzap.Logger
}

type Usecase interface {
	SubmitIdea(ctx context.Context, payload request.CreateIdea) (response.Idea, error)
	GetIdea(ctx context.Context, id int64) (response.Idea, error)
	ListIdeas(ctx context.Context, category, status string, limit int) ([]response.Idea, error)
	VoteIdea(ctx context.Context, id int64) (int64, error)
	UpdateIdeaStatus(ctx context.Context, id int64, payload request.UpdateIdeaStatus) error
}

func New(repo repositories.Repositories, log *otelzap.Logger) Usecase {
	return &usecases{
		repo: repo,
		log:  log,
	}
}

// SubmitIdea implements Usecase.
func (u *usecases) SubmitIdea(ctx context.Context, payload request.CreateIdea) (response.Idea, error) {
	idea := entity.Idea{
		UserID:             payload.UserID,
		Title:              payload.Title,
		Category:           payload.Category,
		ProblemDescription: payload.ProblemDescription,
		SolutionProposal:   payload.SolutionProposal,
		Impact:             payload.Impact,
		Status:             entity.StatusSubmitted,
	}
	if payload.Location != "" {
		idea.Location = sql.NullString{String: payload.Location, Valid: true}
	}
	if payload.Lat != nil {
		idea.Lat = sql.NullFloat64{Float64: *payload.Lat, Valid: true}
	}
	if payload.Lng != nil {
		idea.Lng = sql.NullFloat64{Float64: *payload.Lng, Valid: true}
	}

	id, err := u.repo.InsertIdea(ctx, idea)
	if err != nil {
		return response.Idea{}, err
	}

	// scoring is best effort, the idea is stored either way
	if analysis, err := u.repo.ScoreIdea(ctx, idea); err != nil {
		u.log.Ctx(ctx).Warn(fmt.Sprintf("score idea %d failed: %v", id, err))
	} else if err := u.repo.UpdateIdeaAnalysis(ctx, id, analysis); err != nil {
		u.log.Ctx(ctx).Warn(fmt.Sprintf("store idea %d analysis failed: %v", id, err))
	}

	stored, err := u.repo.FindIdeaByID(ctx, id)
	if err != nil {
		return response.Idea{}, err
	}
	return response.FromEntity(stored), nil
}

// GetIdea implements Usecase.
func (u *usecases) GetIdea(ctx context.Context, id int64) (response.Idea, error) {
	idea, err := u.repo.FindIdeaByID(ctx, id)
	if err != nil {
		return response.Idea{}, err
	}
	return response.FromEntity(idea), nil
}

// ListIdeas implements Usecase.
func (u *usecases) ListIdeas(ctx context.Context, category, status string, limit int) ([]response.Idea, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	ideas, err := u.repo.FindIdeas(ctx, category, status, limit)
	if err != nil {
		return nil, err
	}
	return response.FromEntities(ideas), nil
}

// VoteIdea implements Usecase.
func (u *usecases) VoteIdea(ctx context.Context, id int64) (int64, error) {
	return u.repo.IncrementVotes(ctx, id)
}

// UpdateIdeaStatus implements Usecase.
func (u *usecases) UpdateIdeaStatus(ctx context.Context, id int64, payload request.UpdateIdeaStatus) error {
	return u.repo.UpdateIdeaStatus(ctx, id, payload.Status)
}
