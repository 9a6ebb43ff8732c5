package usecases

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"travel-booking-service/internal/module/payment/models/request"
	"travel-booking-service/internal/module/payment/repositories"
	userEntity "travel-booking-service/internal/module/user/models/entity"
	"travel-booking-service/internal/pkg/errors"
	"travel-booking-service/internal/pkg/gateway"
)

type plan struct {
	tier    string
	credits int64
}

// subscription price points in major units; anything else is a plain booking
// payment and grants nothing
var subscriptionPlans = map[int64]plan{
	499: {tier: userEntity.TierSilver, credits: 10},
	999: {tier: userEntity.TierGold, credits: 20},
}

type usecase struct {
	gw   gateway.Gateway
	repo repositories.Repositories
	log  *otelzap.Logger
}

type Usecase interface {
	CreateOrder(ctx context.Context, payload *request.CreateOrder) (gateway.Order, error)
	VerifyPayment(ctx context.Context, payload *request.VerifyPayment) (bool, error)
}

func New(gw gateway.Gateway, repo repositories.Repositories, log *otelzap.Logger) Usecase {
	return &usecase{
		gw:   gw,
		repo: repo,
		log:  log,
	}
}

// CreateOrder implements Usecase. Amount arrives in major units and the
// gateway wants minor units. No booking or user state is touched here.
func (u *usecase) CreateOrder(ctx context.Context, payload *request.CreateOrder) (gateway.Order, error) {
	if !u.gw.Configured() {
		return gateway.Order{}, errors.InternalServerError("payment gateway credentials missing")
	}

	currency := payload.Currency
	if currency == "" {
		currency = "INR"
	}

	amountMinor := int64(math.Round(payload.Amount * 100))
	receipt := fmt.Sprintf("receipt_%d", time.Now().UnixMilli())

	order, err := u.gw.CreateOrder(ctx, amountMinor, currency, receipt)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error create gateway order: %v", err))
		return gateway.Order{}, errors.InternalServerError("error create gateway order")
	}

	return order, nil
}

// VerifyPayment implements Usecase. The gateway is the source of truth;
// the signature check is only a fallback when the gateway cannot be reached.
// Crediting the user is a separate outcome and never fails the verification.
func (u *usecase) VerifyPayment(ctx context.Context, payload *request.VerifyPayment) (bool, error) {
	verified := false

	payment, err := u.gw.FetchPayment(ctx, payload.PaymentID)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error fetch payment from gateway: %v", err))

		if u.gw.VerifySignature(payload.OrderID, payload.PaymentID, payload.Signature) {
			verified = true
		}
	} else {
		switch {
		case payment.Status == gateway.PaymentStatusCaptured && payment.OrderID == payload.OrderID:
			verified = true
		case payment.Status == gateway.PaymentStatusAuthorized && payment.OrderID == payload.OrderID:
			// funds are held, settle them now
			_, captureErr := u.gw.CapturePayment(ctx, payload.PaymentID, payment.Amount, payment.Currency)
			if captureErr == nil || gateway.IsAlreadyCaptured(captureErr) {
				verified = true
			} else {
				u.log.Ctx(ctx).Error(fmt.Sprintf("error capture payment: %v", captureErr))
			}
		default:
			u.log.Ctx(ctx).Warn(fmt.Sprintf("payment %s not verifiable, status %s", payload.PaymentID, payment.Status))
		}
	}

	if verified {
		u.grantSubscription(ctx, payload)
	}

	return verified, nil
}

// grantSubscription maps the paid amount to a plan tier and credit grant.
// The redis key per payment id makes the grant idempotent under client
// retries of the verify call.
func (u *usecase) grantSubscription(ctx context.Context, payload *request.VerifyPayment) {
	if payload.UserID == "" {
		return
	}

	p, ok := subscriptionPlans[int64(payload.Amount)]
	if !ok {
		if payload.PaymentType == "subscription" {
			u.log.Ctx(ctx).Warn(fmt.Sprintf("subscription payment with unknown amount %.2f, no grant", payload.Amount))
		}
		return
	}

	acquired, err := u.repo.AcquireCreditGrant(ctx, payload.PaymentID)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error acquire credit grant: %v", err))
		return
	}
	if !acquired {
		u.log.Ctx(ctx).Info(fmt.Sprintf("payment %s already credited, skipping grant", payload.PaymentID))
		return
	}

	if _, err := u.repo.FindUserByIdentity(ctx, payload.UserID); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error find user for credit grant: %v", err))
		u.releaseGrant(ctx, payload.PaymentID)
		return
	}

	if err := u.repo.GrantSubscription(ctx, payload.UserID, p.tier, p.credits); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error grant subscription: %v", err))
		u.releaseGrant(ctx, payload.PaymentID)
		return
	}

	u.log.Ctx(ctx).Info(fmt.Sprintf("user %s upgraded to %s", payload.UserID, p.tier))
}

func (u *usecase) releaseGrant(ctx context.Context, paymentID string) {
	if err := u.repo.ReleaseCreditGrant(ctx, paymentID); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error release credit grant: %v", err))
	}
}
