package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"travel-booking-service/internal/module/user/models/entity"
	"travel-booking-service/internal/pkg/errors"
)

const pgUniqueViolation = "23505"

type repositories struct {
	db  *sqlx.DB
	log *otelzap.Logger
}

type Repositories interface {
	FindByIdentity(ctx context.Context, identityID string) (entity.User, error)
	FindUsers(ctx context.Context, role string, search string, limit int, offset int) ([]entity.User, int64, error)
	UpsertFromIdentity(ctx context.Context, user entity.User) error
	DeleteByIdentity(ctx context.Context, identityID string) error
	UpdateUser(ctx context.Context, user entity.User) error
	ConsumeCredit(ctx context.Context, identityID string) (int64, error)
}

func New(db *sqlx.DB, log *otelzap.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// FindByIdentity implements Repositories.
func (r *repositories) FindByIdentity(ctx context.Context, identityID string) (entity.User, error) {
	query := `SELECT * FROM users WHERE identity_id = $1`
	var user entity.User
	err := r.db.GetContext(ctx, &user, query, identityID)
	if err == sql.ErrNoRows {
		return entity.User{}, errors.NotFound("user not found")
	}
	if err != nil {
		return entity.User{}, errors.InternalServerError("error find user by identity")
	}
	return user, nil
}

// FindUsers implements Repositories. Admin listing with an optional role
// filter and a free text search over email, username and real name.
func (r *repositories) FindUsers(ctx context.Context, role string, search string, limit int, offset int) ([]entity.User, int64, error) {
	var conds []string
	var args []interface{}

	if role != "" {
		args = append(args, role)
		conds = append(conds, fmt.Sprintf("role = $%d", len(args)))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(email ILIKE $%d OR username ILIKE $%d OR first_name ILIKE $%d OR last_name ILIKE $%d)",
			n, n, n, n))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM users`+where, args...); err != nil {
		return nil, 0, errors.InternalServerError("error count users")
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT * FROM users%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	var users []entity.User
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, 0, errors.InternalServerError("error find users")
	}

	return users, total, nil
}

// UpsertFromIdentity implements Repositories. Profile fields follow the
// identity provider, local role/tier/credit state is never touched here.
func (r *repositories) UpsertFromIdentity(ctx context.Context, user entity.User) error {
	query := `
		INSERT INTO users (identity_id, email, username, first_name, last_name, avatar)
		VALUES (:identity_id, :email, :username, :first_name, :last_name, :avatar)
		ON CONFLICT (identity_id) DO UPDATE
		SET email = EXCLUDED.email,
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			avatar = EXCLUDED.avatar,
			updated_at = NOW()
	`
	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pgUniqueViolation {
			return errors.Conflict("email or username already taken")
		}
		return errors.InternalServerError("error upsert user")
	}
	return nil
}

// DeleteByIdentity implements Repositories.
func (r *repositories) DeleteByIdentity(ctx context.Context, identityID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE identity_id = $1`, identityID)
	if err != nil {
		return errors.InternalServerError("error delete user")
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return errors.NotFound("user not found")
	}
	return nil
}

// UpdateUser implements Repositories. Admin path, writes role and
// subscription state.
func (r *repositories) UpdateUser(ctx context.Context, user entity.User) error {
	query := `
		UPDATE users
		SET role = :role,
			subscription_tier = :subscription_tier,
			standard_credits = :standard_credits,
			subscription_status = :subscription_status,
			updated_at = NOW()
		WHERE identity_id = :identity_id
	`
	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return errors.InternalServerError("error update user")
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return errors.NotFound("user not found")
	}
	return nil
}

// ConsumeCredit implements Repositories. One premium session costs one
// credit; the row lock keeps concurrent sessions from spending the same one.
func (r *repositories) ConsumeCredit(ctx context.Context, identityID string) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, errors.InternalServerError("error starting transaction")
	}

	var credits int64
	err = tx.GetContext(ctx, &credits, `SELECT standard_credits FROM users WHERE identity_id = $1 FOR UPDATE`, identityID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return 0, errors.NotFound("user not found")
	}
	if err != nil {
		tx.Rollback()
		return 0, errors.InternalServerError("error locking user row")
	}

	if credits < 1 {
		tx.Rollback()
		return 0, errors.BadRequest("no credits remaining")
	}

	_, err = tx.ExecContext(ctx, `UPDATE users SET standard_credits = standard_credits - 1, updated_at = NOW() WHERE identity_id = $1`, identityID)
	if err != nil {
		tx.Rollback()
		return 0, errors.InternalServerError("error consume credit")
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.InternalServerError("error committing transaction")
	}

	return credits - 1, nil
}
