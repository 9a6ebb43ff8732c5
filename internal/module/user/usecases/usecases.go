package usecases

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"travel-booking-service/internal/module/user/models/entity"
	"travel-booking-service/internal/module/user/models/request"
	"travel-booking-service/internal/module/user/repositories"
	"travel-booking-service/internal/pkg/errors"
)

type usecase struct {
	repo repositories.Repositories
	log  *otelzap.Logger
}

type Usecase interface {
	HandleIdentityEvent(ctx context.Context, payload *request.IdentityEvent) error
	GetUser(ctx context.Context, identityID string) (entity.User, error)
	ListUsers(ctx context.Context, role string, search string, page int, pageSize int) ([]entity.User, int64, error)
	UpdateUser(ctx context.Context, identityID string, payload *request.UpdateUser) (entity.User, error)
	DeleteUser(ctx context.Context, identityID string) error
	ConsumeCredit(ctx context.Context, identityID string) (int64, error)
}

const defaultPageSize = 20

func New(repo repositories.Repositories, log *otelzap.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

// HandleIdentityEvent implements Usecase. created and updated both land on
// the same upsert, the provider replays deliveries and ordering is not
// guaranteed.
func (u *usecase) HandleIdentityEvent(ctx context.Context, payload *request.IdentityEvent) error {
	switch payload.Type {
	case "user.created", "user.updated":
		if len(payload.Data.EmailAddresses) == 0 {
			return errors.BadRequest("identity event missing email address")
		}

		username := payload.Data.Username
		if username == "" && len(payload.Data.ID) >= 5 {
			username = fmt.Sprintf("user_%s", payload.Data.ID[:5])
		}

		user := entity.User{
			IdentityID: payload.Data.ID,
			Email:      payload.Data.EmailAddresses[0].EmailAddress,
			Username:   username,
			FirstName:  sql.NullString{String: payload.Data.FirstName, Valid: payload.Data.FirstName != ""},
			LastName:   sql.NullString{String: payload.Data.LastName, Valid: payload.Data.LastName != ""},
			Avatar:     sql.NullString{String: payload.Data.ImageUrl, Valid: payload.Data.ImageUrl != ""},
		}

		return u.repo.UpsertFromIdentity(ctx, user)
	case "user.deleted":
		return u.repo.DeleteByIdentity(ctx, payload.Data.ID)
	default:
		// unhandled event types are acknowledged so the provider stops retrying
		return nil
	}
}

// GetUser implements Usecase.
func (u *usecase) GetUser(ctx context.Context, identityID string) (entity.User, error) {
	return u.repo.FindByIdentity(ctx, identityID)
}

// ListUsers implements Usecase. Admin listing, returns the page total so the
// handler can report pagination.
func (u *usecase) ListUsers(ctx context.Context, role string, search string, page int, pageSize int) ([]entity.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = defaultPageSize
	}

	return u.repo.FindUsers(ctx, role, search, pageSize, (page-1)*pageSize)
}

// UpdateUser implements Usecase. Admin edits to role, tier, and balance.
func (u *usecase) UpdateUser(ctx context.Context, identityID string, payload *request.UpdateUser) (entity.User, error) {
	user, err := u.repo.FindByIdentity(ctx, identityID)
	if err != nil {
		return entity.User{}, err
	}

	if payload.Role != "" {
		user.Role = payload.Role
	}
	if payload.SubscriptionTier != "" {
		user.SubscriptionTier = payload.SubscriptionTier
	}
	if payload.StandardCredits != nil {
		user.StandardCredits = *payload.StandardCredits
	}

	if err := u.repo.UpdateUser(ctx, user); err != nil {
		return entity.User{}, err
	}

	return user, nil
}

// DeleteUser implements Usecase. Admin removal of a local account, the
// identity provider record is untouched.
func (u *usecase) DeleteUser(ctx context.Context, identityID string) error {
	return u.repo.DeleteByIdentity(ctx, identityID)
}

// ConsumeCredit implements Usecase.
func (u *usecase) ConsumeCredit(ctx context.Context, identityID string) (int64, error) {
	return u.repo.ConsumeCredit(ctx, identityID)
}
