package gateway_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"travel-booking-service/config"
	"travel-booking-service/internal/pkg/gateway"

	"github.com/stretchr/testify/assert"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	gw := gateway.New(&config.GatewayConfig{KeyID: "key", KeySecret: "secret"}, nil)

	t.Run("valid signature", func(t *testing.T) {
		sig := sign("secret", "order_1", "pay_1")
		assert.True(t, gw.VerifySignature("order_1", "pay_1", sig))
	})

	t.Run("tampered order id", func(t *testing.T) {
		sig := sign("secret", "order_1", "pay_1")
		assert.False(t, gw.VerifySignature("order_2", "pay_1", sig))
	})

	t.Run("wrong secret", func(t *testing.T) {
		sig := sign("other", "order_1", "pay_1")
		assert.False(t, gw.VerifySignature("order_1", "pay_1", sig))
	})

	t.Run("empty signature", func(t *testing.T) {
		assert.False(t, gw.VerifySignature("order_1", "pay_1", ""))
	})
}

func TestConfigured(t *testing.T) {
	assert.True(t, gateway.New(&config.GatewayConfig{KeyID: "key", KeySecret: "secret"}, nil).Configured())
	assert.False(t, gateway.New(&config.GatewayConfig{}, nil).Configured())
	assert.False(t, gateway.New(&config.GatewayConfig{KeyID: "key"}, nil).Configured())
}

func TestIsAlreadyCaptured(t *testing.T) {
	assert.False(t, gateway.IsAlreadyCaptured(nil))
	assert.False(t, gateway.IsAlreadyCaptured(assert.AnError))
	assert.True(t, gateway.IsAlreadyCaptured(errors.New("This payment has already been captured")))
}
