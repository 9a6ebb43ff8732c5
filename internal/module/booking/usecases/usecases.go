package usecases

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"travel-booking-service/config"
	"travel-booking-service/internal/module/booking/models/entity"
	"travel-booking-service/internal/module/booking/models/request"
	"travel-booking-service/internal/module/booking/models/response"
	"travel-booking-service/internal/module/booking/repositories"
	catalog "travel-booking-service/internal/module/catalog/models/entity"
	"travel-booking-service/internal/pkg/errors"
)

const (
	TopicBookingEvents = "booking_events"

	EventBookingConfirmed = "booking_confirmed"
	EventBookingCancelled = "booking_cancelled"

	// attempts at generating a unique confirmation code before giving up
	maxCodeRetries = 5

	defaultListLimit = 20
)

// pending bookings may move to confirmed or cancelled, confirmed ones to
// cancelled or completed; completed and cancelled are terminal
var allowedTransitions = map[string]map[string]bool{
	entity.StatusPending:   {entity.StatusConfirmed: true, entity.StatusCancelled: true},
	entity.StatusConfirmed: {entity.StatusCancelled: true, entity.StatusCompleted: true},
}

func canTransition(from string, to string) bool {
	if from == to {
		return true
	}
	return allowedTransitions[from][to]
}

type usecase struct {
	repo    repositories.Repositories
	log     *otelzap.Logger
	publish message.Publisher
	cfg     *config.BookingConfig
}

type Usecase interface {
	CreateBooking(ctx context.Context, payload *request.CreateBooking) (response.CreatedBooking, error)
	GetUserBookings(ctx context.Context, userID string, status string, limit int) ([]response.Booking, error)
	GetBookingByID(ctx context.Context, bookingID string) (response.Booking, error)
	GetBookingByCode(ctx context.Context, code string) (response.Booking, error)
	ListBookings(ctx context.Context, status string, serviceType string, search string, page int, pageSize int) (response.BookingPage, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, payload *request.UpdateBookingStatus) (response.Booking, error)
	UpdatePaymentStatus(ctx context.Context, bookingID string, payload *request.UpdatePaymentStatus) (response.Booking, error)
	CancelBooking(ctx context.Context, bookingID string, payload *request.CancelBooking) (response.Booking, error)
	DeleteBooking(ctx context.Context, bookingID string) error
	GetBookingStats(ctx context.Context) (response.BookingStats, error)
	RenderVoucher(ctx context.Context, bookingID string) ([]byte, error)
	ConsumeBookingEvent(ctx context.Context, payload *request.BookingEvent) error
	SetBookingExpired(ctx context.Context, payload *request.BookingExpiration) error
}

func New(repo repositories.Repositories, log *otelzap.Logger, publish message.Publisher, cfg *config.BookingConfig) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
		cfg:     cfg,
	}
}

// CreateBooking implements Usecase. A booking created with a payment
// reference is treated as pre-paid and starts out confirmed; everything else
// starts pending with a payment-window expiry scheduled.
func (u *usecase) CreateBooking(ctx context.Context, payload *request.CreateBooking) (response.CreatedBooking, error) {
	src, ok := catalog.ResolveSource(payload.ServiceType)
	if !ok || !src.Bookable {
		return response.CreatedBooking{}, errors.BadRequest("invalid service type")
	}

	serviceName := payload.ServiceName
	serviceImage := payload.ServiceImage

	summary, err := u.repo.FindServiceSummary(ctx, payload.ServiceType, payload.ServiceID)
	switch {
	case err == nil:
		// catalog wins over whatever the caller sent
		serviceName = summary.Name
		serviceImage = summary.Image
	case errors.HttpCode(err) == http.StatusNotFound:
		// caller-supplied details only cover a missing catalog row, a
		// failing catalog lookup is not a missing service
		if serviceName == "" {
			return response.CreatedBooking{}, errors.NotFound("service not found and no service details provided")
		}
	default:
		return response.CreatedBooking{}, err
	}

	if serviceName == "" {
		serviceName = "Unknown Service"
	}

	basePrice := payload.BasePrice
	if basePrice == 0 {
		basePrice = payload.TotalPrice
	}

	currency := payload.Currency
	if currency == "" {
		currency = "INR"
	}

	details := []byte("{}")
	if payload.BookingDetails != nil {
		details, err = json.Marshal(payload.BookingDetails)
		if err != nil {
			return response.CreatedBooking{}, errors.BadRequest("error marshal booking details")
		}
	}

	now := time.Now()
	prePaid := payload.PaymentID != ""

	booking := entity.Booking{
		ID:             uuid.New(),
		UserID:         payload.UserID,
		UserEmail:      sql.NullString{String: payload.UserEmail, Valid: payload.UserEmail != ""},
		UserName:       sql.NullString{String: payload.UserName, Valid: payload.UserName != ""},
		ServiceType:    payload.ServiceType,
		ServiceID:      payload.ServiceID,
		ServiceName:    serviceName,
		ServiceImage:   sql.NullString{String: serviceImage, Valid: serviceImage != ""},
		BookingDetails: details,
		BasePrice:      basePrice,
		TotalPrice:     payload.TotalPrice,
		Currency:       currency,
		PaymentStatus:  entity.PaymentPending,
		PaymentID:      sql.NullString{String: payload.PaymentID, Valid: payload.PaymentID != ""},
		OrderID:        sql.NullString{String: payload.OrderID, Valid: payload.OrderID != ""},
		PaymentMethod:  sql.NullString{String: payload.PaymentMethod, Valid: payload.PaymentMethod != ""},
		Status:         entity.StatusPending,
		BookingDate:    now,
		Notes:          sql.NullString{String: payload.Notes, Valid: payload.Notes != ""},
	}

	if prePaid {
		booking.Status = entity.StatusConfirmed
		booking.PaymentStatus = entity.PaymentCompleted
		booking.ConfirmationDate = sql.NullTime{Time: now, Valid: true}
	} else {
		taskID, err := u.repo.EnqueueBookingExpiration(ctx, request.BookingExpiration{BookingID: booking.ID.String()}, u.cfg.PaymentWindow)
		if err != nil {
			u.log.Ctx(ctx).Warn(fmt.Sprintf("error schedule booking expiration: %v", err))
		} else {
			booking.ExpireTaskID = sql.NullString{String: taskID, Valid: true}
		}
	}

	// the storage layer enforces code uniqueness; a collision just means we
	// roll a new code and try again
	var insertErr error
	for attempt := 0; attempt < maxCodeRetries; attempt++ {
		booking.ConfirmationCode = entity.GenerateConfirmationCode(booking.ServiceType, time.Now())
		insertErr = u.repo.InsertBooking(ctx, &booking)
		if insertErr == nil {
			break
		}
		if errors.HttpCode(insertErr) != 409 {
			break
		}
	}
	if insertErr != nil {
		if booking.ExpireTaskID.Valid {
			u.repo.DeleteTaskScheduler(ctx, booking.ExpireTaskID.String)
		}
		return response.CreatedBooking{}, insertErr
	}

	if prePaid {
		u.publishEvent(ctx, booking, EventBookingConfirmed)
	}

	return response.CreatedBooking{
		BookingID:        booking.ID.String(),
		ConfirmationCode: booking.ConfirmationCode,
		Status:           booking.Status,
		ServiceName:      booking.ServiceName,
		TotalPrice:       booking.TotalPrice,
	}, nil
}

// GetUserBookings implements Usecase.
func (u *usecase) GetUserBookings(ctx context.Context, userID string, status string, limit int) ([]response.Booking, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	bookings, err := u.repo.FindBookingsByUser(ctx, userID, status, limit)
	if err != nil {
		return nil, err
	}

	return response.FromEntities(bookings), nil
}

// GetBookingByID implements Usecase.
func (u *usecase) GetBookingByID(ctx context.Context, bookingID string) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}
	return response.FromEntity(booking), nil
}

// GetBookingByCode implements Usecase.
func (u *usecase) GetBookingByCode(ctx context.Context, code string) (response.Booking, error) {
	booking, err := u.repo.FindBookingByCode(ctx, code)
	if err != nil {
		return response.Booking{}, err
	}
	return response.FromEntity(booking), nil
}

// ListBookings implements Usecase. Admin listing across all users.
func (u *usecase) ListBookings(ctx context.Context, status string, serviceType string, search string, page int, pageSize int) (response.BookingPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = defaultListLimit
	}

	bookings, total, err := u.repo.FindBookings(ctx, status, serviceType, search, pageSize, (page-1)*pageSize)
	if err != nil {
		return response.BookingPage{}, err
	}

	return response.BookingPage{
		Items:      response.FromEntities(bookings),
		Total:      total,
		Page:       page,
		TotalPages: (total + int64(pageSize) - 1) / int64(pageSize),
	}, nil
}

// UpdateBookingStatus implements Usecase. All status mutation passes the
// transition table, so completed and cancelled stay terminal here too.
func (u *usecase) UpdateBookingStatus(ctx context.Context, bookingID string, payload *request.UpdateBookingStatus) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	if !canTransition(booking.Status, payload.Status) {
		return response.Booking{}, errors.BadRequest(fmt.Sprintf("invalid status transition %s -> %s", booking.Status, payload.Status))
	}

	previous := booking.Status
	booking.Status = payload.Status

	now := time.Now()
	if payload.Status == entity.StatusCancelled {
		booking.CancellationDate = sql.NullTime{Time: now, Valid: true}
		booking.CancellationReason = sql.NullString{String: payload.CancellationReason, Valid: payload.CancellationReason != ""}
	}
	if payload.Status == entity.StatusConfirmed {
		booking.ConfirmationDate = sql.NullTime{Time: now, Valid: true}
	}

	if err := u.repo.UpdateBooking(ctx, booking); err != nil {
		return response.Booking{}, err
	}

	if previous != payload.Status {
		switch payload.Status {
		case entity.StatusConfirmed:
			u.repo.DeleteTaskScheduler(ctx, booking.ExpireTaskID.String)
			u.publishEvent(ctx, booking, EventBookingConfirmed)
		case entity.StatusCancelled:
			u.repo.DeleteTaskScheduler(ctx, booking.ExpireTaskID.String)
			u.publishEvent(ctx, booking, EventBookingCancelled)
		}
	}

	return response.FromEntity(booking), nil
}

// UpdatePaymentStatus implements Usecase. A completed payment is gateway
// truth and force-confirms the booking regardless of its prior status.
func (u *usecase) UpdatePaymentStatus(ctx context.Context, bookingID string, payload *request.UpdatePaymentStatus) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	booking.PaymentStatus = payload.PaymentStatus
	if payload.PaymentID != "" {
		booking.PaymentID = sql.NullString{String: payload.PaymentID, Valid: true}
	}
	if payload.OrderID != "" {
		booking.OrderID = sql.NullString{String: payload.OrderID, Valid: true}
	}

	confirmed := false
	if payload.PaymentStatus == entity.PaymentCompleted {
		confirmed = booking.Status != entity.StatusConfirmed
		booking.Status = entity.StatusConfirmed
		booking.ConfirmationDate = sql.NullTime{Time: time.Now(), Valid: true}
	}

	if err := u.repo.UpdateBooking(ctx, booking); err != nil {
		return response.Booking{}, err
	}

	if confirmed {
		u.repo.DeleteTaskScheduler(ctx, booking.ExpireTaskID.String)
		u.publishEvent(ctx, booking, EventBookingConfirmed)
	}

	return response.FromEntity(booking), nil
}

// CancelBooking implements Usecase.
func (u *usecase) CancelBooking(ctx context.Context, bookingID string, payload *request.CancelBooking) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	if entity.IsTerminal(booking.Status) {
		return response.Booking{}, errors.BadRequest("booking cannot be cancelled")
	}

	reason := payload.Reason
	if reason == "" {
		reason = "Cancelled by user"
	}

	booking.Status = entity.StatusCancelled
	booking.CancellationDate = sql.NullTime{Time: time.Now(), Valid: true}
	booking.CancellationReason = sql.NullString{String: reason, Valid: true}

	if err := u.repo.UpdateBooking(ctx, booking); err != nil {
		return response.Booking{}, err
	}

	u.repo.DeleteTaskScheduler(ctx, booking.ExpireTaskID.String)
	u.publishEvent(ctx, booking, EventBookingCancelled)

	return response.FromEntity(booking), nil
}

// DeleteBooking implements Usecase. Admin hard delete; any outstanding expiry
// task goes with it.
func (u *usecase) DeleteBooking(ctx context.Context, bookingID string) error {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := u.repo.DeleteBooking(ctx, bookingID); err != nil {
		return err
	}

	u.repo.DeleteTaskScheduler(ctx, booking.ExpireTaskID.String)

	return nil
}

// GetBookingStats implements Usecase.
func (u *usecase) GetBookingStats(ctx context.Context) (response.BookingStats, error) {
	byService, overall, err := u.repo.AggregateStats(ctx)
	if err != nil {
		return response.BookingStats{}, err
	}

	return response.BookingStats{
		ByService: byService,
		Overall:   overall,
	}, nil
}

// RenderVoucher implements Usecase. The voucher is regenerated on request,
// nothing is stored.
func (u *usecase) RenderVoucher(ctx context.Context, bookingID string) ([]byte, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Booking Voucher")
	pdf.Ln(16)

	pdf.SetFont("Arial", "", 12)
	rows := [][2]string{
		{"Confirmation Code", booking.ConfirmationCode},
		{"Service", booking.ServiceName},
		{"Service Type", booking.ServiceType},
		{"Status", booking.Status},
		{"Total Price", fmt.Sprintf("%.2f %s", booking.TotalPrice, booking.Currency)},
		{"Booking Date", booking.BookingDate.Format("2006-01-02 15:04")},
	}
	if booking.UserName.Valid {
		rows = append(rows, [2]string{"Guest", booking.UserName.String})
	}

	for _, row := range rows {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(60, 9, row[0])
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 9, row[1])
		pdf.Ln(9)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.InternalServerError("error render voucher")
	}

	return buf.Bytes(), nil
}

// ConsumeBookingEvent implements Usecase. The consumer side of the event
// stream writes the audit row.
func (u *usecase) ConsumeBookingEvent(ctx context.Context, payload *request.BookingEvent) error {
	bookingID, err := uuid.Parse(payload.BookingID)
	if err != nil {
		return errors.BadRequest("error parse booking id")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.InternalServerError("error marshal booking event")
	}

	return u.repo.InsertBookingEvent(ctx, entity.BookingEvent{
		BookingID: bookingID,
		EventType: payload.EventType,
		Payload:   string(body),
	})
}

// SetBookingExpired implements Usecase. Fired by the scheduler after the
// payment window; a booking that got paid or cancelled meanwhile is left
// alone.
func (u *usecase) SetBookingExpired(ctx context.Context, payload *request.BookingExpiration) error {
	booking, err := u.repo.FindBookingByID(ctx, payload.BookingID)
	if err != nil {
		// nothing to expire
		if errors.HttpCode(err) == 404 {
			return nil
		}
		return err
	}

	if booking.Status != entity.StatusPending || booking.PaymentStatus != entity.PaymentPending {
		return nil
	}

	booking.Status = entity.StatusCancelled
	booking.CancellationDate = sql.NullTime{Time: time.Now(), Valid: true}
	booking.CancellationReason = sql.NullString{String: "Payment window expired", Valid: true}
	booking.ExpireTaskID = sql.NullString{}

	if err := u.repo.UpdateBooking(ctx, booking); err != nil {
		return err
	}

	u.publishEvent(ctx, booking, EventBookingCancelled)

	return nil
}

// event publishing is best effort, a stream outage must not fail the request
func (u *usecase) publishEvent(ctx context.Context, booking entity.Booking, eventType string) {
	event := request.BookingEvent{
		BookingID:        booking.ID.String(),
		EventType:        eventType,
		UserID:           booking.UserID,
		UserEmail:        booking.UserEmail.String,
		ServiceName:      booking.ServiceName,
		ConfirmationCode: booking.ConfirmationCode,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error marshal booking event: %v", err))
		return
	}

	if err := u.publish.Publish(TopicBookingEvents, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error publish booking event: %v", err))
	}
}
