package http_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.elastic.co/apm"

	httpInternal "travel-booking-service/internal/pkg/http"
)

func TestSetupHttpEngine(t *testing.T) {
	app := httpInternal.SetupHttpEngine()

	var sawTransaction bool
	app.Get("/ping", func(ctx *fiber.Ctx) error {
		sawTransaction = apm.TransactionFromContext(ctx.UserContext()) != nil
		return ctx.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, sawTransaction)
}
