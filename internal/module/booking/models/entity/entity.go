package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"

	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// IsTerminal reports whether a booking status admits no further transition.
func IsTerminal(status string) bool {
	return status == StatusCancelled || status == StatusCompleted
}

// Booking is one reservation attempt. The catalog snapshot (service name and
// image) is captured at creation time and never refreshed.
type Booking struct {
	ID                 uuid.UUID      `db:"id"`
	UserID             string         `db:"user_id"`
	UserEmail          sql.NullString `db:"user_email"`
	UserName           sql.NullString `db:"user_name"`
	ServiceType        string         `db:"service_type"`
	ServiceID          string         `db:"service_id"`
	ServiceName        string         `db:"service_name"`
	ServiceImage       sql.NullString `db:"service_image"`
	BookingDetails     types.JSONText `db:"booking_details"`
	BasePrice          float64        `db:"base_price"`
	TotalPrice         float64        `db:"total_price"`
	Currency           string         `db:"currency"`
	PaymentStatus      string         `db:"payment_status"`
	PaymentID          sql.NullString `db:"payment_id"`
	OrderID            sql.NullString `db:"order_id"`
	PaymentMethod      sql.NullString `db:"payment_method"`
	Status             string         `db:"status"`
	BookingDate        time.Time      `db:"booking_date"`
	ConfirmationDate   sql.NullTime   `db:"confirmation_date"`
	CancellationDate   sql.NullTime   `db:"cancellation_date"`
	CancellationReason sql.NullString `db:"cancellation_reason"`
	Notes              sql.NullString `db:"notes"`
	ConfirmationCode   string         `db:"confirmation_code"`
	ExpireTaskID       sql.NullString `db:"expire_task_id"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          sql.NullTime   `db:"updated_at"`
}

// BookingEvent is the audit row written by the event stream consumer.
type BookingEvent struct {
	ID        int64     `db:"id"`
	BookingID uuid.UUID `db:"booking_id"`
	EventType string    `db:"event_type"`
	Payload   string    `db:"payload"`
	CreatedAt time.Time `db:"created_at"`
}

// StatsByService is one row of the admin aggregate.
type StatsByService struct {
	ServiceType       string  `db:"service_type" json:"service_type"`
	TotalBookings     int64   `db:"total_bookings" json:"total_bookings"`
	TotalRevenue      float64 `db:"total_revenue" json:"total_revenue"`
	ConfirmedBookings int64   `db:"confirmed_bookings" json:"confirmed_bookings"`
	CancelledBookings int64   `db:"cancelled_bookings" json:"cancelled_bookings"`
}

type StatsOverall struct {
	TotalBookings     int64   `db:"total_bookings" json:"total_bookings"`
	TotalRevenue      float64 `db:"total_revenue" json:"total_revenue"`
	ConfirmedBookings int64   `db:"confirmed_bookings" json:"confirmed_bookings"`
}
