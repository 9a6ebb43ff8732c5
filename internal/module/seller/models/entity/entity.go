package entity

import (
	"database/sql"
	"time"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type SellerRequest struct {
	ID              int64          `db:"id"`
	UserID          string         `db:"user_id"`
	BusinessName    string         `db:"business_name"`
	BusinessType    string         `db:"business_type"`
	Description     string         `db:"description"`
	ServiceLocation string         `db:"service_location"`
	Status          string         `db:"status"`
	AdminComments   sql.NullString `db:"admin_comments"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       sql.NullTime   `db:"updated_at"`
}
