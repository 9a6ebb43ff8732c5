package entity

import (
	"database/sql"
	"time"
)

const (
	StatusNew      = "new"
	StatusRead     = "read"
	StatusReplied  = "replied"
	StatusArchived = "archived"
)

type Feedback struct {
	ID        int64          `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Name      string         `db:"name"`
	Email     string         `db:"email"`
	Subject   string         `db:"subject"`
	Message   string         `db:"message"`
	Status    string         `db:"status"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt sql.NullTime   `db:"updated_at"`
}
