package entity

import (
	"database/sql"
	"time"
)

const (
	RoleTraveller = "traveller"
	RoleSeller    = "seller"
	RoleAdmin     = "admin"

	TierBronze = "bronze"
	TierSilver = "silver"
	TierGold   = "gold"

	SubscriptionActive   = "active"
	SubscriptionInactive = "inactive"
)

// User is keyed by the identity provider's subject string; id is internal.
type User struct {
	ID                 int64          `db:"id"`
	IdentityID         string         `db:"identity_id"`
	Email              string         `db:"email"`
	Username           string         `db:"username"`
	FirstName          sql.NullString `db:"first_name"`
	LastName           sql.NullString `db:"last_name"`
	Avatar             sql.NullString `db:"avatar"`
	Role               string         `db:"role"`
	SubscriptionTier   string         `db:"subscription_tier"`
	StandardCredits    int64          `db:"standard_credits"`
	SubscriptionStatus string         `db:"subscription_status"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          sql.NullTime   `db:"updated_at"`
}
