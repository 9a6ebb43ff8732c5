package repositories

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"travel-booking-service/internal/module/seller/models/entity"
	"travel-booking-service/internal/pkg/errors"
)

type repositories struct {
	db  *sqlx.DB
	log *otelzap.Logger
}

type Repositories interface {
	InsertRequest(ctx context.Context, req *entity.SellerRequest) error
	FindRequestByID(ctx context.Context, id int64) (entity.SellerRequest, error)
	FindRequestsByUser(ctx context.Context, userID string) ([]entity.SellerRequest, error)
	ListRequests(ctx context.Context, status string, limit int) ([]entity.SellerRequest, error)
	UpdateRequest(ctx context.Context, req entity.SellerRequest) error
	PromoteUserToSeller(ctx context.Context, userID string) error
}

func New(db *sqlx.DB, log *otelzap.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// InsertRequest implements Repositories.
func (r *repositories) InsertRequest(ctx context.Context, req *entity.SellerRequest) error {
	query := `
		INSERT INTO seller_requests (user_id, business_name, business_type, description, service_location, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.GetContext(ctx, &req.ID, query,
		req.UserID, req.BusinessName, req.BusinessType, req.Description, req.ServiceLocation, req.Status)
	if err != nil {
		return errors.InternalServerError("error insert seller request")
	}
	return nil
}

// FindRequestByID implements Repositories.
func (r *repositories) FindRequestByID(ctx context.Context, id int64) (entity.SellerRequest, error) {
	var req entity.SellerRequest
	err := r.db.GetContext(ctx, &req, `SELECT * FROM seller_requests WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return entity.SellerRequest{}, errors.NotFound("seller request not found")
	}
	if err != nil {
		return entity.SellerRequest{}, errors.InternalServerError("error find seller request")
	}
	return req, nil
}

// FindRequestsByUser implements Repositories.
func (r *repositories) FindRequestsByUser(ctx context.Context, userID string) ([]entity.SellerRequest, error) {
	var reqs []entity.SellerRequest
	err := r.db.SelectContext(ctx, &reqs, `SELECT * FROM seller_requests WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, errors.InternalServerError("error find seller requests by user")
	}
	return reqs, nil
}

// ListRequests implements Repositories.
func (r *repositories) ListRequests(ctx context.Context, status string, limit int) ([]entity.SellerRequest, error) {
	var reqs []entity.SellerRequest
	var err error
	if status != "" {
		err = r.db.SelectContext(ctx, &reqs, `SELECT * FROM seller_requests WHERE status = $1 ORDER BY created_at DESC LIMIT $2`, status, limit)
	} else {
		err = r.db.SelectContext(ctx, &reqs, `SELECT * FROM seller_requests ORDER BY created_at DESC LIMIT $1`, limit)
	}
	if err != nil {
		return nil, errors.InternalServerError("error list seller requests")
	}
	return reqs, nil
}

// UpdateRequest implements Repositories.
func (r *repositories) UpdateRequest(ctx context.Context, req entity.SellerRequest) error {
	query := `
		UPDATE seller_requests
		SET status = :status, admin_comments = :admin_comments, updated_at = NOW()
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, req)
	if err != nil {
		return errors.InternalServerError("error update seller request")
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return errors.NotFound("seller request not found")
	}
	return nil
}

// PromoteUserToSeller implements Repositories.
func (r *repositories) PromoteUserToSeller(ctx context.Context, userID string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE users SET role = 'seller', updated_at = NOW() WHERE identity_id = $1`, userID)
	if err != nil {
		return errors.InternalServerError("error promote user to seller")
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return errors.NotFound("user not found")
	}
	return nil
}
