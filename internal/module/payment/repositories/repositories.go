package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-redsync/redsync/v4"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	userEntity "travel-booking-service/internal/module/user/models/entity"
	"travel-booking-service/internal/pkg/errors"
)

type repositories struct {
	db          *sqlx.DB
	log         *otelzap.Logger
	redisClient *redis.Client
	rs          *redsync.Redsync
}

type Repositories interface {
	// db
	FindUserByIdentity(ctx context.Context, identityID string) (userEntity.User, error)
	GrantSubscription(ctx context.Context, identityID string, tier string, credits int64) error
	// redis
	AcquireCreditGrant(ctx context.Context, paymentID string) (bool, error)
	ReleaseCreditGrant(ctx context.Context, paymentID string) error
}

func New(db *sqlx.DB, log *otelzap.Logger, redisClient *redis.Client, rs *redsync.Redsync) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		redisClient: redisClient,
		rs:          rs,
	}
}

// FindUserByIdentity implements Repositories.
func (r *repositories) FindUserByIdentity(ctx context.Context, identityID string) (userEntity.User, error) {
	query := `SELECT * FROM users WHERE identity_id = $1`
	var user userEntity.User
	err := r.db.GetContext(ctx, &user, query, identityID)
	if err == sql.ErrNoRows {
		return userEntity.User{}, errors.NotFound("user not found")
	}
	if err != nil {
		return userEntity.User{}, errors.InternalServerError("error find user by identity")
	}
	return user, nil
}

// GrantSubscription implements Repositories. Credits are cumulative, the
// grant increments and never resets. The distributed mutex keeps two
// concurrent verifications from interleaving the read-modify-write.
func (r *repositories) GrantSubscription(ctx context.Context, identityID string, tier string, credits int64) error {
	mutex := r.rs.NewMutex(fmt.Sprintf("lock:user_credit:%s", identityID))
	if err := mutex.LockContext(ctx); err != nil {
		return errors.InternalServerError("error acquire credit lock")
	}
	defer mutex.UnlockContext(ctx)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	var current int64
	err = tx.GetContext(ctx, &current, `SELECT standard_credits FROM users WHERE identity_id = $1 FOR UPDATE`, identityID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return errors.NotFound("user not found")
	}
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error locking user row")
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE users
		SET subscription_tier = $1,
			standard_credits = standard_credits + $2,
			subscription_status = 'active',
			updated_at = NOW()
		WHERE identity_id = $3
	`, tier, credits, identityID)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error grant subscription")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

// AcquireCreditGrant implements Repositories. The key is the idempotency
// guard per payment id; a second verification of the same payment finds the
// key and skips the grant.
func (r *repositories) AcquireCreditGrant(ctx context.Context, paymentID string) (bool, error) {
	acquired, err := r.redisClient.SetNX(ctx, fmt.Sprintf("payment:credited:%s", paymentID), "1", 0).Result()
	if err != nil {
		return false, errors.InternalServerError("error acquire credit grant key")
	}
	return acquired, nil
}

// ReleaseCreditGrant implements Repositories. Undo the guard when the grant
// itself failed so a retried verification can credit the user.
func (r *repositories) ReleaseCreditGrant(ctx context.Context, paymentID string) error {
	if err := r.redisClient.Del(ctx, fmt.Sprintf("payment:credited:%s", paymentID)).Err(); err != nil {
		return errors.InternalServerError("error release credit grant key")
	}
	return nil
}
