package usecases_test

import (
	"context"
	"testing"

	"travel-booking-service/internal/module/payment/mocks"
	"travel-booking-service/internal/module/payment/models/request"
	"travel-booking-service/internal/module/payment/usecases"
	userEntity "travel-booking-service/internal/module/user/models/entity"
	"travel-booking-service/internal/pkg/errors"
	"travel-booking-service/internal/pkg/gateway"
	logInternal "travel-booking-service/internal/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	gwMock   *mocks.Gateway
	repoMock *mocks.Repositories
)

func setup() {
	gwMock = new(mocks.Gateway)
	repoMock = new(mocks.Repositories)
	logger := logInternal.Setup()
	uc = usecases.New(gwMock, repoMock, logger)
}

func teardown() {
	gwMock = nil
	repoMock = nil
	uc = nil
}

func TestCreateOrder(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("success converts to minor units", func(t *testing.T) {
		gwMock.On("Configured").Return(true).Once()
		gwMock.On("CreateOrder", ctx, int64(49900), "INR", mock.AnythingOfType("string")).
			Return(gateway.Order{ID: "order_1", Amount: 49900, Currency: "INR", Status: "created"}, nil).Once()

		order, err := uc.CreateOrder(ctx, &request.CreateOrder{Amount: 499})
		assert.NoError(t, err)
		assert.Equal(t, "order_1", order.ID)
		gwMock.AssertExpectations(t)
	})

	t.Run("gateway not configured", func(t *testing.T) {
		gwMock.On("Configured").Return(false).Once()

		_, err := uc.CreateOrder(ctx, &request.CreateOrder{Amount: 499})
		assert.Error(t, err)
		assert.Equal(t, 500, errors.HttpCode(err))
	})
}

func TestVerifyPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("captured payment verifies", func(t *testing.T) {
		setup()
		defer teardown()

		gwMock.On("FetchPayment", ctx, "pay_1").
			Return(gateway.Payment{ID: "pay_1", OrderID: "order_1", Status: gateway.PaymentStatusCaptured}, nil).Once()

		verified, err := uc.VerifyPayment(ctx, &request.VerifyPayment{OrderID: "order_1", PaymentID: "pay_1"})
		assert.NoError(t, err)
		assert.True(t, verified)
		gwMock.AssertExpectations(t)
	})

	t.Run("authorized payment is captured then verifies", func(t *testing.T) {
		setup()
		defer teardown()

		gwMock.On("FetchPayment", ctx, "pay_2").
			Return(gateway.Payment{ID: "pay_2", OrderID: "order_2", Status: gateway.PaymentStatusAuthorized, Amount: 99900, Currency: "INR"}, nil).Once()
		gwMock.On("CapturePayment", ctx, "pay_2", int64(99900), "INR").
			Return(gateway.Payment{ID: "pay_2", Status: gateway.PaymentStatusCaptured}, nil).Once()

		verified, err := uc.VerifyPayment(ctx, &request.VerifyPayment{OrderID: "order_2", PaymentID: "pay_2"})
		assert.NoError(t, err)
		assert.True(t, verified)
		gwMock.AssertExpectations(t)
	})

	t.Run("capture race still verifies", func(t *testing.T) {
		setup()
		defer teardown()

		gwMock.On("FetchPayment", ctx, "pay_11").
			Return(gateway.Payment{ID: "pay_11", OrderID: "order_11", Status: gateway.PaymentStatusAuthorized, Amount: 49900, Currency: "INR"}, nil).Once()
		gwMock.On("CapturePayment", ctx, "pay_11", int64(49900), "INR").
			Return(gateway.Payment{}, errors.BadRequest("This payment has already been captured")).Once()

		verified, err := uc.VerifyPayment(ctx, &request.VerifyPayment{OrderID: "order_11", PaymentID: "pay_11"})
		assert.NoError(t, err)
		assert.True(t, verified)
	})

	t.Run("order id mismatch fails verification", func(t *testing.T) {
		setup()
		defer teardown()

		gwMock.On("FetchPayment", ctx, "pay_3").
			Return(gateway.Payment{ID: "pay_3", OrderID: "order_other", Status: gateway.PaymentStatusCaptured}, nil).Once()

		verified, err := uc.VerifyPayment(ctx, &request.VerifyPayment{OrderID: "order_3", PaymentID: "pay_3"})
		assert.NoError(t, err)
		assert.False(t, verified)
	})

	t.Run("signature fallback when gateway unreachable", func(t *testing.T) {
		setup()
		defer teardown()

		gwMock.On("FetchPayment", ctx, "pay_4").
			Return(gateway.Payment{}, assert.AnError).Once()
		gwMock.On("VerifySignature", "order_4", "pay_4", "sig_ok").Return(true).Once()

		verified, err := uc.VerifyPayment(ctx, &request.VerifyPayment{OrderID: "order_4", PaymentID: "pay_4", Signature: "sig_ok"})
		assert.NoError(t, err)
		assert.True(t, verified)
		gwMock.AssertExpectations(t)
	})

	t.Run("signature fallback rejects bad signature", func(t *testing.T) {
		setup()
		defer teardown()

		gwMock.On("FetchPayment", ctx, "pay_5").
			Return(gateway.Payment{}, assert.AnError).Once()
		gwMock.On("VerifySignature", "order_5", "pay_5", "sig_bad").Return(false).Once()

		verified, err := uc.VerifyPayment(ctx, &request.VerifyPayment{OrderID: "order_5", PaymentID: "pay_5", Signature: "sig_bad"})
		assert.NoError(t, err)
		assert.False(t, verified)
	})

	t.Run("plan amount grants subscription", func(t *testing.T) {
		setup()
		defer teardown()

		gwMock.On("FetchPayment", ctx, "pay_6").
			Return(gateway.Payment{ID: "pay_6", OrderID: "order_6", Status: gateway.PaymentStatusCaptured}, nil).Once()
		repoMock.On("AcquireCreditGrant", ctx, "pay_6").Return(true, nil).Once()
		repoMock.On("FindUserByIdentity", ctx, "user_1").Return(userEntity.User{IdentityID: "user_1"}, nil).Once()
		repoMock.On("GrantSubscription", ctx, "user_1", "silver", int64(10)).Return(nil).Once()

		verified, err := uc.VerifyPayment(ctx, &request.VerifyPayment{
			OrderID:     "order_6",
			PaymentID:   "pay_6",
			UserID:      "user_1",
			Amount:      499,
			PaymentType: "subscription",
		})
		assert.NoError(t, err)
		assert.True(t, verified)
		repoMock.AssertExpectations(t)
	})

	t.Run("gold plan grants twenty credits", func(t *testing.T) {
		setup()
		defer teardown()

		gwMock.On("FetchPayment", ctx, "pay_7").
			Return(gateway.Payment{ID: "pay_7", OrderID: "order_7", Status: gateway.PaymentStatusCaptured}, nil).Once()
		repoMock.On("AcquireCreditGrant", ctx, "pay_7").Return(true, nil).Once()
		repoMock.On("FindUserByIdentity", ctx, "user_1").Return(userEntity.User{IdentityID: "user_1"}, nil).Once()
		repoMock.On("GrantSubscription", ctx, "user_1", "gold", int64(20)).Return(nil).Once()

		verified, err := uc.VerifyPayment(ctx, &request.VerifyPayment{
			OrderID:   "order_7",
			PaymentID: "pay_7",
			UserID:    "user_1",
			Amount:    999,
		})
		assert.NoError(t, err)
		assert.True(t, verified)
		repoMock.AssertExpectations(t)
	})

	t.Run("repeat verification does not grant twice", func(t *testing.T) {
		setup()
		defer teardown()

		gwMock.On("FetchPayment", ctx, "pay_8").
			Return(gateway.Payment{ID: "pay_8", OrderID: "order_8", Status: gateway.PaymentStatusCaptured}, nil).Twice()
		repoMock.On("AcquireCreditGrant", ctx, "pay_8").Return(true, nil).Once()
		repoMock.On("AcquireCreditGrant", ctx, "pay_8").Return(false, nil).Once()
		repoMock.On("FindUserByIdentity", ctx, "user_1").Return(userEntity.User{IdentityID: "user_1"}, nil).Once()
		repoMock.On("GrantSubscription", ctx, "user_1", "silver", int64(10)).Return(nil).Once()

		payload := request.VerifyPayment{OrderID: "order_8", PaymentID: "pay_8", UserID: "user_1", Amount: 499}

		verified, err := uc.VerifyPayment(ctx, &payload)
		assert.NoError(t, err)
		assert.True(t, verified)

		verified, err = uc.VerifyPayment(ctx, &payload)
		assert.NoError(t, err)
		assert.True(t, verified)

		repoMock.AssertNumberOfCalls(t, "GrantSubscription", 1)
	})

	t.Run("unknown amount is verified without a grant", func(t *testing.T) {
		setup()
		defer teardown()

		gwMock.On("FetchPayment", ctx, "pay_9").
			Return(gateway.Payment{ID: "pay_9", OrderID: "order_9", Status: gateway.PaymentStatusCaptured}, nil).Once()

		verified, err := uc.VerifyPayment(ctx, &request.VerifyPayment{
			OrderID:   "order_9",
			PaymentID: "pay_9",
			UserID:    "user_1",
			Amount:    2500,
		})
		assert.NoError(t, err)
		assert.True(t, verified)
		repoMock.AssertNotCalled(t, "AcquireCreditGrant", ctx, mock.Anything)
	})

	t.Run("grant key released when user lookup fails", func(t *testing.T) {
		setup()
		defer teardown()

		gwMock.On("FetchPayment", ctx, "pay_10").
			Return(gateway.Payment{ID: "pay_10", OrderID: "order_10", Status: gateway.PaymentStatusCaptured}, nil).Once()
		repoMock.On("AcquireCreditGrant", ctx, "pay_10").Return(true, nil).Once()
		repoMock.On("FindUserByIdentity", ctx, "user_unknown").
			Return(userEntity.User{}, errors.NotFound("user not found")).Once()
		repoMock.On("ReleaseCreditGrant", ctx, "pay_10").Return(nil).Once()

		verified, err := uc.VerifyPayment(ctx, &request.VerifyPayment{
			OrderID:   "order_10",
			PaymentID: "pay_10",
			UserID:    "user_unknown",
			Amount:    499,
		})
		assert.NoError(t, err)
		assert.True(t, verified)
		repoMock.AssertExpectations(t)
		repoMock.AssertNotCalled(t, "GrantSubscription", ctx, mock.Anything, mock.Anything, mock.Anything)
	})
}
