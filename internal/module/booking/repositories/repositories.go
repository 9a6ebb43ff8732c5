package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"travel-booking-service/internal/module/booking/models/entity"
	"travel-booking-service/internal/module/booking/models/request"
	catalog "travel-booking-service/internal/module/catalog/models/entity"
	"travel-booking-service/internal/pkg/errors"
	"travel-booking-service/internal/pkg/scheduler"
)

const pgUniqueViolation = "23505"

type repositories struct {
	db          *sqlx.DB
	log         *otelzap.Logger
	asynqClient *asynq.Client
	inspector   *asynq.Inspector
}

type Repositories interface {
	// catalog
	FindServiceSummary(ctx context.Context, serviceType string, serviceID string) (catalog.ServiceSummary, error)
	// db
	InsertBooking(ctx context.Context, booking *entity.Booking) error
	FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error)
	FindBookingsByUser(ctx context.Context, userID string, status string, limit int) ([]entity.Booking, error)
	FindBookingByCode(ctx context.Context, code string) (entity.Booking, error)
	FindBookings(ctx context.Context, status string, serviceType string, search string, limit int, offset int) ([]entity.Booking, int64, error)
	UpdateBooking(ctx context.Context, booking entity.Booking) error
	DeleteBooking(ctx context.Context, bookingID string) error
	AggregateStats(ctx context.Context) ([]entity.StatsByService, entity.StatsOverall, error)
	InsertBookingEvent(ctx context.Context, event entity.BookingEvent) error
	// scheduler
	EnqueueBookingExpiration(ctx context.Context, payload request.BookingExpiration, delay time.Duration) (string, error)
	DeleteTaskScheduler(ctx context.Context, taskID string) error
}

func New(db *sqlx.DB, log *otelzap.Logger, asynqClient *asynq.Client, inspector *asynq.Inspector) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		asynqClient: asynqClient,
		inspector:   inspector,
	}
}

// FindServiceSummary implements Repositories. The service type was resolved
// against the closed catalog table before this is called, but the guard stays
// so the repository never interpolates an unchecked table name.
func (r *repositories) FindServiceSummary(ctx context.Context, serviceType string, serviceID string) (catalog.ServiceSummary, error) {
	src, ok := catalog.ResolveSource(serviceType)
	if !ok || !src.Bookable {
		return catalog.ServiceSummary{}, errors.BadRequest("invalid service type")
	}

	query := fmt.Sprintf(
		`SELECT id, COALESCE(NULLIF(%s, ''), 'Service') AS display_name, COALESCE(%s, '') AS image FROM %s WHERE id = $1`,
		src.NameCol, src.ImageCol, src.Table,
	)

	var summary catalog.ServiceSummary
	err := r.db.GetContext(ctx, &summary, query, serviceID)
	if err == sql.ErrNoRows {
		return catalog.ServiceSummary{}, errors.NotFound("service not found")
	}
	if err != nil {
		return catalog.ServiceSummary{}, errors.InternalServerError("error find service")
	}

	return summary, nil
}

// InsertBooking implements Repositories. A unique violation on the
// confirmation code surfaces as Conflict so the usecase can re-roll the code.
func (r *repositories) InsertBooking(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (
			id, user_id, user_email, user_name, service_type, service_id,
			service_name, service_image, booking_details, base_price, total_price,
			currency, payment_status, payment_id, order_id, payment_method,
			status, booking_date, confirmation_date, notes, confirmation_code, expire_task_id
		) VALUES (
			:id, :user_id, :user_email, :user_name, :service_type, :service_id,
			:service_name, :service_image, :booking_details, :base_price, :total_price,
			:currency, :payment_status, :payment_id, :order_id, :payment_method,
			:status, :booking_date, :confirmation_date, :notes, :confirmation_code, :expire_task_id
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, booking)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pgUniqueViolation {
			return errors.Conflict("confirmation code already exists")
		}
		return errors.InternalServerError("error insert booking")
	}

	return nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE id = $1`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// FindBookingsByUser implements Repositories.
func (r *repositories) FindBookingsByUser(ctx context.Context, userID string, status string, limit int) ([]entity.Booking, error) {
	var bookings []entity.Booking
	var err error

	if status != "" {
		query := `SELECT * FROM bookings WHERE user_id = $1 AND status = $2 ORDER BY booking_date DESC LIMIT $3`
		err = r.db.SelectContext(ctx, &bookings, query, userID, status, limit)
	} else {
		query := `SELECT * FROM bookings WHERE user_id = $1 ORDER BY booking_date DESC LIMIT $2`
		err = r.db.SelectContext(ctx, &bookings, query, userID, limit)
	}

	if err != nil {
		return nil, errors.InternalServerError("error find bookings by user")
	}
	return bookings, nil
}

// FindBookingByCode implements Repositories.
func (r *repositories) FindBookingByCode(ctx context.Context, code string) (entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE confirmation_code = $1`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, code)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error find booking by code")
	}
	return booking, nil
}

// FindBookings implements Repositories. Admin listing over all users, the
// free text search covers code, traveller and service name.
func (r *repositories) FindBookings(ctx context.Context, status string, serviceType string, search string, limit int, offset int) ([]entity.Booking, int64, error) {
	var conds []string
	var args []interface{}

	if status != "" {
		args = append(args, status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if serviceType != "" {
		args = append(args, serviceType)
		conds = append(conds, fmt.Sprintf("service_type = $%d", len(args)))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(confirmation_code ILIKE $%d OR user_name ILIKE $%d OR user_email ILIKE $%d OR service_name ILIKE $%d)",
			n, n, n, n))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM bookings`+where, args...); err != nil {
		return nil, 0, errors.InternalServerError("error count bookings")
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT * FROM bookings%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	var bookings []entity.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, 0, errors.InternalServerError("error find bookings")
	}

	return bookings, total, nil
}

// UpdateBooking implements Repositories. The confirmation code column is
// deliberately absent, it is written once at insert and never again.
func (r *repositories) UpdateBooking(ctx context.Context, booking entity.Booking) error {
	query := `
		UPDATE bookings
		SET payment_status = :payment_status,
			payment_id = :payment_id,
			order_id = :order_id,
			payment_method = :payment_method,
			status = :status,
			confirmation_date = :confirmation_date,
			cancellation_date = :cancellation_date,
			cancellation_reason = :cancellation_reason,
			expire_task_id = :expire_task_id,
			updated_at = NOW()
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, booking)
	if err != nil {
		return errors.InternalServerError("error update booking")
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return errors.NotFound("booking not found")
	}
	return nil
}

// DeleteBooking implements Repositories. Hard delete, admin only; events keep
// their own copy of the history.
func (r *repositories) DeleteBooking(ctx context.Context, bookingID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, bookingID)
	if err != nil {
		return errors.InternalServerError("error delete booking")
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return errors.NotFound("booking not found")
	}
	return nil
}

// AggregateStats implements Repositories.
func (r *repositories) AggregateStats(ctx context.Context) ([]entity.StatsByService, entity.StatsOverall, error) {
	byServiceQuery := `
		SELECT service_type,
			COUNT(*) AS total_bookings,
			COALESCE(SUM(total_price), 0) AS total_revenue,
			COUNT(*) FILTER (WHERE status = 'confirmed') AS confirmed_bookings,
			COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled_bookings
		FROM bookings
		GROUP BY service_type
		ORDER BY total_bookings DESC
	`
	var byService []entity.StatsByService
	if err := r.db.SelectContext(ctx, &byService, byServiceQuery); err != nil {
		return nil, entity.StatsOverall{}, errors.InternalServerError("error aggregate booking stats")
	}

	overallQuery := `
		SELECT COUNT(*) AS total_bookings,
			COALESCE(SUM(total_price), 0) AS total_revenue,
			COUNT(*) FILTER (WHERE status = 'confirmed') AS confirmed_bookings
		FROM bookings
	`
	var overall entity.StatsOverall
	if err := r.db.GetContext(ctx, &overall, overallQuery); err != nil {
		return nil, entity.StatsOverall{}, errors.InternalServerError("error aggregate booking stats")
	}

	return byService, overall, nil
}

// InsertBookingEvent implements Repositories.
func (r *repositories) InsertBookingEvent(ctx context.Context, event entity.BookingEvent) error {
	query := `INSERT INTO booking_events (booking_id, event_type, payload) VALUES (:booking_id, :event_type, :payload)`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return errors.InternalServerError("error insert booking event")
	}
	return nil
}

// EnqueueBookingExpiration implements Repositories.
func (r *repositories) EnqueueBookingExpiration(ctx context.Context, payload request.BookingExpiration, delay time.Duration) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.InternalServerError("error marshal expiration task")
	}

	task := asynq.NewTask(scheduler.TypeBookingPaymentExpired, body)
	info, err := r.asynqClient.EnqueueContext(ctx, task, asynq.ProcessIn(delay), asynq.Queue("default"), asynq.MaxRetry(3))
	if err != nil {
		return "", errors.InternalServerError("error enqueue expiration task")
	}

	return info.ID, nil
}

// DeleteTaskScheduler implements Repositories. Missing tasks are fine, the
// expiry may already have run or been removed.
func (r *repositories) DeleteTaskScheduler(ctx context.Context, taskID string) error {
	if taskID == "" {
		return nil
	}
	if err := r.inspector.DeleteTask("default", taskID); err != nil {
		r.log.Ctx(ctx).Warn(fmt.Sprintf("error delete scheduler task %s: %v", taskID, err))
	}
	return nil
}
