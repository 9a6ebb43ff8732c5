package usecases_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"travel-booking-service/config"
	"travel-booking-service/internal/module/booking/mocks"
	"travel-booking-service/internal/module/booking/models/entity"
	"travel-booking-service/internal/module/booking/models/request"
	"travel-booking-service/internal/module/booking/usecases"
	catalog "travel-booking-service/internal/module/catalog/models/entity"
	"travel-booking-service/internal/pkg/errors"
	logInternal "travel-booking-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	p        message.Publisher
)

var codePattern = regexp.MustCompile(`^[A-Z]{3}-[0-9A-Z]+-[0-9A-Z]{4}$`)

type mockPublisher struct{}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	return nil
}

func setup() {
	repoMock = new(mocks.Repositories)
	p = &mockPublisher{}
	logger := logInternal.Setup()
	cfg := &config.BookingConfig{PaymentWindow: 30 * time.Minute}
	uc = usecases.New(repoMock, logger, p, cfg)
}

func teardown() {
	repoMock = nil
	uc = nil
}

func TestCreateBooking(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("success pending booking", func(t *testing.T) {
		payloadMock := request.CreateBooking{
			UserID:      "user_1",
			ServiceType: "hotel",
			ServiceID:   "42",
			TotalPrice:  2500,
		}

		repoMock.On("FindServiceSummary", ctx, "hotel", "42").
			Return(catalog.ServiceSummary{ID: "42", Name: "Grand Palace", Image: "palace.jpg"}, nil).Once()
		repoMock.On("EnqueueBookingExpiration", ctx, mock.AnythingOfType("request.BookingExpiration"), 30*time.Minute).
			Return("task-1", nil).Once()

		var inserted entity.Booking
		repoMock.On("InsertBooking", ctx, mock.AnythingOfType("*entity.Booking")).
			Run(func(args mock.Arguments) {
				inserted = *args.Get(1).(*entity.Booking)
			}).
			Return(nil).Once()

		resp, err := uc.CreateBooking(ctx, &payloadMock)
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusPending, resp.Status)
		// catalog name wins over whatever the caller sent
		assert.Equal(t, "Grand Palace", resp.ServiceName)
		assert.Regexp(t, codePattern, resp.ConfirmationCode)
		assert.Equal(t, "HOT", resp.ConfirmationCode[:3])
		assert.Equal(t, entity.PaymentPending, inserted.PaymentStatus)
		assert.Equal(t, "task-1", inserted.ExpireTaskID.String)
		repoMock.AssertExpectations(t)
	})

	t.Run("pre-paid booking starts confirmed", func(t *testing.T) {
		payloadMock := request.CreateBooking{
			UserID:      "user_1",
			ServiceType: "flight",
			ServiceID:   "7",
			TotalPrice:  5400,
			PaymentID:   "pay_123",
			OrderID:     "order_123",
		}

		repoMock.On("FindServiceSummary", ctx, "flight", "7").
			Return(catalog.ServiceSummary{ID: "7", Name: "IndiGo 6E-202"}, nil).Once()

		var inserted entity.Booking
		repoMock.On("InsertBooking", ctx, mock.AnythingOfType("*entity.Booking")).
			Run(func(args mock.Arguments) {
				inserted = *args.Get(1).(*entity.Booking)
			}).
			Return(nil).Once()

		resp, err := uc.CreateBooking(ctx, &payloadMock)
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusConfirmed, resp.Status)
		assert.Equal(t, entity.PaymentCompleted, inserted.PaymentStatus)
		assert.True(t, inserted.ConfirmationDate.Valid)
		// no expiry task for a booking that is already paid
		repoMock.AssertNotCalled(t, "EnqueueBookingExpiration", ctx, mock.Anything, mock.Anything)
		repoMock.AssertExpectations(t)
	})

	t.Run("caller details used when service missing from catalog", func(t *testing.T) {
		payloadMock := request.CreateBooking{
			UserID:      "user_1",
			ServiceType: "taxi",
			ServiceID:   "99",
			ServiceName: "Airport Cab",
			TotalPrice:  450,
			PaymentID:   "pay_456",
		}

		repoMock.On("FindServiceSummary", ctx, "taxi", "99").
			Return(catalog.ServiceSummary{}, errors.NotFound("service not found")).Once()
		repoMock.On("InsertBooking", ctx, mock.AnythingOfType("*entity.Booking")).
			Return(nil).Once()

		resp, err := uc.CreateBooking(ctx, &payloadMock)
		assert.NoError(t, err)
		assert.Equal(t, "Airport Cab", resp.ServiceName)
		repoMock.AssertExpectations(t)
	})

	t.Run("service missing and no details provided", func(t *testing.T) {
		payloadMock := request.CreateBooking{
			UserID:      "user_1",
			ServiceType: "train",
			ServiceID:   "404",
			TotalPrice:  800,
		}

		repoMock.On("FindServiceSummary", ctx, "train", "404").
			Return(catalog.ServiceSummary{}, errors.NotFound("service not found")).Once()

		_, err := uc.CreateBooking(ctx, &payloadMock)
		assert.Error(t, err)
		assert.Equal(t, 404, errors.HttpCode(err))
	})

	t.Run("catalog lookup failure is not a missing service", func(t *testing.T) {
		payloadMock := request.CreateBooking{
			UserID:      "user_1",
			ServiceType: "taxi",
			ServiceID:   "99",
			ServiceName: "Airport Cab",
			TotalPrice:  450,
		}

		repoMock.On("FindServiceSummary", ctx, "taxi", "99").
			Return(catalog.ServiceSummary{}, errors.InternalServerError("error find service")).Once()

		_, err := uc.CreateBooking(ctx, &payloadMock)
		assert.Error(t, err)
		assert.Equal(t, 500, errors.HttpCode(err))
		repoMock.AssertExpectations(t)
	})

	t.Run("invalid service type", func(t *testing.T) {
		payloadMock := request.CreateBooking{
			UserID:      "user_1",
			ServiceType: "spaceship",
			ServiceID:   "1",
			TotalPrice:  100,
		}

		_, err := uc.CreateBooking(ctx, &payloadMock)
		assert.Error(t, err)
		assert.Equal(t, 400, errors.HttpCode(err))
	})

	t.Run("destination is not bookable", func(t *testing.T) {
		payloadMock := request.CreateBooking{
			UserID:      "user_1",
			ServiceType: "destination",
			ServiceID:   "1",
			TotalPrice:  100,
		}

		_, err := uc.CreateBooking(ctx, &payloadMock)
		assert.Error(t, err)
		assert.Equal(t, 400, errors.HttpCode(err))
	})

	t.Run("retries with a fresh code on conflict", func(t *testing.T) {
		payloadMock := request.CreateBooking{
			UserID:      "user_1",
			ServiceType: "bus",
			ServiceID:   "3",
			TotalPrice:  300,
			PaymentID:   "pay_789",
		}

		repoMock.On("FindServiceSummary", ctx, "bus", "3").
			Return(catalog.ServiceSummary{ID: "3", Name: "Volvo Express"}, nil).Once()

		codes := make([]string, 0, 2)
		repoMock.On("InsertBooking", ctx, mock.AnythingOfType("*entity.Booking")).
			Run(func(args mock.Arguments) {
				codes = append(codes, args.Get(1).(*entity.Booking).ConfirmationCode)
			}).
			Return(errors.Conflict("error insert booking")).Once()
		repoMock.On("InsertBooking", ctx, mock.AnythingOfType("*entity.Booking")).
			Run(func(args mock.Arguments) {
				codes = append(codes, args.Get(1).(*entity.Booking).ConfirmationCode)
			}).
			Return(nil).Once()

		resp, err := uc.CreateBooking(ctx, &payloadMock)
		assert.NoError(t, err)
		assert.Len(t, codes, 2)
		assert.NotEqual(t, codes[0], codes[1])
		assert.Equal(t, codes[1], resp.ConfirmationCode)
		repoMock.AssertExpectations(t)
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("pending to confirmed", func(t *testing.T) {
		bookingMock := entity.Booking{
			ID:           bookingID,
			UserID:       "user_1",
			ServiceType:  "hotel",
			ServiceName:  "Grand Palace",
			Status:       entity.StatusPending,
			BookingDate:  time.Now(),
			ExpireTaskID: sql.NullString{String: "task-1", Valid: true},
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil).Once()
		repoMock.On("UpdateBooking", ctx, mock.AnythingOfType("entity.Booking")).Return(nil).Once()
		repoMock.On("DeleteTaskScheduler", ctx, "task-1").Return(nil).Once()

		resp, err := uc.UpdateBookingStatus(ctx, bookingID.String(), &request.UpdateBookingStatus{Status: entity.StatusConfirmed})
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusConfirmed, resp.Status)
		repoMock.AssertExpectations(t)
	})

	t.Run("same status is a no-op transition", func(t *testing.T) {
		bookingMock := entity.Booking{
			ID:          bookingID,
			Status:      entity.StatusConfirmed,
			BookingDate: time.Now(),
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil).Once()
		repoMock.On("UpdateBooking", ctx, mock.AnythingOfType("entity.Booking")).Return(nil).Once()

		_, err := uc.UpdateBookingStatus(ctx, bookingID.String(), &request.UpdateBookingStatus{Status: entity.StatusConfirmed})
		assert.NoError(t, err)
		// no event is published and no task deleted when nothing changed
		repoMock.AssertNotCalled(t, "DeleteTaskScheduler", ctx, mock.Anything)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		bookingMock := entity.Booking{
			ID:          bookingID,
			Status:      entity.StatusCompleted,
			BookingDate: time.Now(),
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil).Once()

		_, err := uc.UpdateBookingStatus(ctx, bookingID.String(), &request.UpdateBookingStatus{Status: entity.StatusConfirmed})
		assert.Error(t, err)
		assert.Equal(t, 400, errors.HttpCode(err))
	})

	t.Run("pending cannot jump to completed", func(t *testing.T) {
		bookingMock := entity.Booking{
			ID:          bookingID,
			Status:      entity.StatusPending,
			BookingDate: time.Now(),
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil).Once()

		_, err := uc.UpdateBookingStatus(ctx, bookingID.String(), &request.UpdateBookingStatus{Status: entity.StatusCompleted})
		assert.Error(t, err)
		assert.Equal(t, 400, errors.HttpCode(err))
	})
}

func TestUpdatePaymentStatus(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("completed payment confirms the booking", func(t *testing.T) {
		bookingMock := entity.Booking{
			ID:            bookingID,
			Status:        entity.StatusPending,
			PaymentStatus: entity.PaymentPending,
			BookingDate:   time.Now(),
			ExpireTaskID:  sql.NullString{String: "task-9", Valid: true},
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil).Once()

		var updated entity.Booking
		repoMock.On("UpdateBooking", ctx, mock.AnythingOfType("entity.Booking")).
			Run(func(args mock.Arguments) {
				updated = args.Get(1).(entity.Booking)
			}).
			Return(nil).Once()
		repoMock.On("DeleteTaskScheduler", ctx, "task-9").Return(nil).Once()

		resp, err := uc.UpdatePaymentStatus(ctx, bookingID.String(), &request.UpdatePaymentStatus{
			PaymentStatus: entity.PaymentCompleted,
			PaymentID:     "pay_1",
			OrderID:       "order_1",
		})
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusConfirmed, resp.Status)
		assert.Equal(t, "pay_1", updated.PaymentID.String)
		assert.True(t, updated.ConfirmationDate.Valid)
		repoMock.AssertExpectations(t)
	})

	t.Run("failed payment leaves the booking status alone", func(t *testing.T) {
		bookingMock := entity.Booking{
			ID:            bookingID,
			Status:        entity.StatusPending,
			PaymentStatus: entity.PaymentPending,
			BookingDate:   time.Now(),
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil).Once()
		repoMock.On("UpdateBooking", ctx, mock.AnythingOfType("entity.Booking")).Return(nil).Once()

		resp, err := uc.UpdatePaymentStatus(ctx, bookingID.String(), &request.UpdatePaymentStatus{
			PaymentStatus: entity.PaymentFailed,
		})
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusPending, resp.Status)
		assert.Equal(t, entity.PaymentFailed, resp.PaymentStatus)
	})
}

func TestCancelBooking(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("success with default reason", func(t *testing.T) {
		bookingMock := entity.Booking{
			ID:          bookingID,
			Status:      entity.StatusConfirmed,
			BookingDate: time.Now(),
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil).Once()

		var updated entity.Booking
		repoMock.On("UpdateBooking", ctx, mock.AnythingOfType("entity.Booking")).
			Run(func(args mock.Arguments) {
				updated = args.Get(1).(entity.Booking)
			}).
			Return(nil).Once()
		repoMock.On("DeleteTaskScheduler", ctx, "").Return(nil).Once()

		resp, err := uc.CancelBooking(ctx, bookingID.String(), &request.CancelBooking{})
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled, resp.Status)
		assert.Equal(t, "Cancelled by user", updated.CancellationReason.String)
		repoMock.AssertExpectations(t)
	})

	t.Run("cancelled booking cannot be cancelled again", func(t *testing.T) {
		bookingMock := entity.Booking{
			ID:          bookingID,
			Status:      entity.StatusCancelled,
			BookingDate: time.Now(),
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil).Once()

		_, err := uc.CancelBooking(ctx, bookingID.String(), &request.CancelBooking{Reason: "changed plans"})
		assert.Error(t, err)
		assert.Equal(t, 400, errors.HttpCode(err))
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		bookingMock := entity.Booking{
			ID:          bookingID,
			Status:      entity.StatusCompleted,
			BookingDate: time.Now(),
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil).Once()

		_, err := uc.CancelBooking(ctx, bookingID.String(), &request.CancelBooking{})
		assert.Error(t, err)
		assert.Equal(t, 400, errors.HttpCode(err))
	})
}

func TestListBookings(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("pages with defaults", func(t *testing.T) {
		items := []entity.Booking{
			{ID: uuid.New(), UserID: "user_1", ServiceType: "hotel", Status: entity.StatusConfirmed},
		}

		repoMock.On("FindBookings", ctx, "confirmed", "", "", 20, 0).
			Return(items, int64(41), nil).Once()

		resp, err := uc.ListBookings(ctx, "confirmed", "", "", 0, 0)
		assert.NoError(t, err)
		assert.Len(t, resp.Items, 1)
		assert.Equal(t, int64(41), resp.Total)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, int64(3), resp.TotalPages)
		repoMock.AssertExpectations(t)
	})

	t.Run("offset follows the page", func(t *testing.T) {
		repoMock.On("FindBookings", ctx, "", "flight", "6E", 10, 20).
			Return([]entity.Booking{}, int64(0), nil).Once()

		resp, err := uc.ListBookings(ctx, "", "flight", "6E", 3, 10)
		assert.NoError(t, err)
		assert.Equal(t, 3, resp.Page)
		assert.Equal(t, int64(0), resp.TotalPages)
		repoMock.AssertExpectations(t)
	})
}

func TestDeleteBooking(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("deletes booking and its expiry task", func(t *testing.T) {
		id := uuid.New()
		booking := entity.Booking{
			ID:           id,
			Status:       entity.StatusPending,
			ExpireTaskID: sql.NullString{String: "task-9", Valid: true},
		}

		repoMock.On("FindBookingByID", ctx, id.String()).Return(booking, nil).Once()
		repoMock.On("DeleteBooking", ctx, id.String()).Return(nil).Once()
		repoMock.On("DeleteTaskScheduler", ctx, "task-9").Return(nil).Once()

		err := uc.DeleteBooking(ctx, id.String())
		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
	})

	t.Run("missing booking", func(t *testing.T) {
		repoMock.On("FindBookingByID", ctx, "nope").
			Return(entity.Booking{}, errors.NotFound("booking not found")).Once()

		err := uc.DeleteBooking(ctx, "nope")
		assert.Error(t, err)
		assert.Equal(t, 404, errors.HttpCode(err))
		repoMock.AssertNotCalled(t, "DeleteBooking", ctx, "nope")
	})
}

func TestSetBookingExpired(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("pending unpaid booking is cancelled", func(t *testing.T) {
		bookingMock := entity.Booking{
			ID:            bookingID,
			Status:        entity.StatusPending,
			PaymentStatus: entity.PaymentPending,
			BookingDate:   time.Now(),
			ExpireTaskID:  sql.NullString{String: "task-1", Valid: true},
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil).Once()

		var updated entity.Booking
		repoMock.On("UpdateBooking", ctx, mock.AnythingOfType("entity.Booking")).
			Run(func(args mock.Arguments) {
				updated = args.Get(1).(entity.Booking)
			}).
			Return(nil).Once()

		err := uc.SetBookingExpired(ctx, &request.BookingExpiration{BookingID: bookingID.String()})
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled, updated.Status)
		assert.Equal(t, "Payment window expired", updated.CancellationReason.String)
		assert.False(t, updated.ExpireTaskID.Valid)
		repoMock.AssertExpectations(t)
	})

	t.Run("paid booking is left alone", func(t *testing.T) {
		bookingMock := entity.Booking{
			ID:            bookingID,
			Status:        entity.StatusConfirmed,
			PaymentStatus: entity.PaymentCompleted,
			BookingDate:   time.Now(),
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil).Once()

		err := uc.SetBookingExpired(ctx, &request.BookingExpiration{BookingID: bookingID.String()})
		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "UpdateBooking", ctx, mock.Anything)
	})

	t.Run("missing booking is a no-op", func(t *testing.T) {
		repoMock.On("FindBookingByID", ctx, bookingID.String()).
			Return(entity.Booking{}, errors.NotFound("booking not found")).Once()

		err := uc.SetBookingExpired(ctx, &request.BookingExpiration{BookingID: bookingID.String()})
		assert.NoError(t, err)
	})
}

func TestConsumeBookingEvent(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("success", func(t *testing.T) {
		payloadMock := request.BookingEvent{
			BookingID: bookingID.String(),
			EventType: "booking_confirmed",
			UserID:    "user_1",
		}

		repoMock.On("InsertBookingEvent", ctx, mock.AnythingOfType("entity.BookingEvent")).Return(nil).Once()

		err := uc.ConsumeBookingEvent(ctx, &payloadMock)
		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
	})

	t.Run("bad booking id", func(t *testing.T) {
		payloadMock := request.BookingEvent{
			BookingID: "not-a-uuid",
			EventType: "booking_confirmed",
		}

		err := uc.ConsumeBookingEvent(ctx, &payloadMock)
		assert.Error(t, err)
		assert.Equal(t, 400, errors.HttpCode(err))
	})
}

func TestRenderVoucher(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("success", func(t *testing.T) {
		bookingMock := entity.Booking{
			ID:               bookingID,
			ServiceType:      "hotel",
			ServiceName:      "Grand Palace",
			Status:           entity.StatusConfirmed,
			TotalPrice:       2500,
			Currency:         "INR",
			BookingDate:      time.Now(),
			ConfirmationCode: "HOT-ABC123-XY9Z",
			UserName:         sql.NullString{String: "A Traveler", Valid: true},
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil).Once()

		pdfBytes, err := uc.RenderVoucher(ctx, bookingID.String())
		assert.NoError(t, err)
		assert.True(t, len(pdfBytes) > 0)
		assert.Equal(t, "%PDF", string(pdfBytes[:4]))
	})

	t.Run("booking not found", func(t *testing.T) {
		repoMock.On("FindBookingByID", ctx, bookingID.String()).
			Return(entity.Booking{}, errors.NotFound("booking not found")).Once()

		_, err := uc.RenderVoucher(ctx, bookingID.String())
		assert.Error(t, err)
	})
}
