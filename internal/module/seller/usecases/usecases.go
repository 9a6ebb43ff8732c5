package usecases

import (
	"context"
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"travel-booking-service/internal/module/seller/models/entity"
	"travel-booking-service/internal/module/seller/models/request"
	"travel-booking-service/internal/module/seller/repositories"
	"travel-booking-service/internal/pkg/errors"
)

const defaultListLimit = 50

type usecase struct {
	repo repositories.Repositories
	log  *otelzap.Logger
}

type Usecase interface {
	SubmitRequest(ctx context.Context, userID string, payload *request.CreateSellerRequest) (entity.SellerRequest, error)
	GetMyRequests(ctx context.Context, userID string) ([]entity.SellerRequest, error)
	ListRequests(ctx context.Context, status string, limit int) ([]entity.SellerRequest, error)
	ReviewRequest(ctx context.Context, id int64, payload *request.ReviewSellerRequest) (entity.SellerRequest, error)
}

func New(repo repositories.Repositories, log *otelzap.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

// SubmitRequest implements Usecase. One pending application per user.
func (u *usecase) SubmitRequest(ctx context.Context, userID string, payload *request.CreateSellerRequest) (entity.SellerRequest, error) {
	existing, err := u.repo.FindRequestsByUser(ctx, userID)
	if err != nil {
		return entity.SellerRequest{}, err
	}
	for _, req := range existing {
		if req.Status == entity.StatusPending {
			return entity.SellerRequest{}, errors.Conflict("seller request already pending")
		}
	}

	req := entity.SellerRequest{
		UserID:          userID,
		BusinessName:    payload.BusinessName,
		BusinessType:    payload.BusinessType,
		Description:     payload.Description,
		ServiceLocation: payload.ServiceLocation,
		Status:          entity.StatusPending,
	}

	if err := u.repo.InsertRequest(ctx, &req); err != nil {
		return entity.SellerRequest{}, err
	}

	return req, nil
}

// GetMyRequests implements Usecase.
func (u *usecase) GetMyRequests(ctx context.Context, userID string) ([]entity.SellerRequest, error) {
	return u.repo.FindRequestsByUser(ctx, userID)
}

// ListRequests implements Usecase.
func (u *usecase) ListRequests(ctx context.Context, status string, limit int) ([]entity.SellerRequest, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return u.repo.ListRequests(ctx, status, limit)
}

// ReviewRequest implements Usecase. Approval also promotes the applicant.
func (u *usecase) ReviewRequest(ctx context.Context, id int64, payload *request.ReviewSellerRequest) (entity.SellerRequest, error) {
	req, err := u.repo.FindRequestByID(ctx, id)
	if err != nil {
		return entity.SellerRequest{}, err
	}

	if req.Status != entity.StatusPending {
		return entity.SellerRequest{}, errors.BadRequest("seller request already reviewed")
	}

	req.Status = payload.Status
	if payload.AdminComments != "" {
		req.AdminComments.String = payload.AdminComments
		req.AdminComments.Valid = true
	}

	if err := u.repo.UpdateRequest(ctx, req); err != nil {
		return entity.SellerRequest{}, err
	}

	if payload.Status == entity.StatusApproved {
		if err := u.repo.PromoteUserToSeller(ctx, req.UserID); err != nil {
			// request stays approved either way, the role flip is retried by
			// a later admin edit
			u.log.Ctx(ctx).Error(fmt.Sprintf("error promote user %s to seller: %v", req.UserID, err))
		}
	}

	return req, nil
}
