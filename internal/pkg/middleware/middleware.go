package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"travel-booking-service/config"
	"travel-booking-service/internal/pkg/errors"
	"travel-booking-service/internal/pkg/helpers"
)

type Middleware struct {
	Log *otelzap.Logger
	Cfg *config.Config
}

// ValidateToken parses the Bearer token issued by the identity provider and
// stores the subject claims in request locals.
func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	auth := ctx.Get("Authorization")
	if len(auth) < 8 || auth[:7] != "Bearer " {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	tokenString := auth[7:]

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(m.Cfg.Jwt.Secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		m.Log.Ctx(ctx.UserContext()).Error("error read token claims")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error read token claims"))
	}

	identityID, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	if identityID == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error token missing subject")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error token missing subject"))
	}

	ctx.Locals("identity_id", identityID)
	ctx.Locals("email_user", email)
	ctx.Locals("role", role)

	return ctx.Next()
}

// RequireAdmin runs after ValidateToken and gates admin-only routes.
func (m *Middleware) RequireAdmin(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)
	if role != "admin" {
		m.Log.Ctx(ctx.UserContext()).Error("error validate role, admin only")
		return helpers.RespError(ctx, m.Log, errors.ForbiddenError("error validate role, admin only"))
	}

	return ctx.Next()
}

// VerifyWebhookSignature checks the identity provider's delivery signature:
// HMAC-SHA256 over "<id>.<timestamp>.<body>" with the shared webhook secret.
// The header carries space-separated "v1,<base64>" entries, one per signing
// key during rotation, and any matching v1 entry accepts the delivery.
func (m *Middleware) VerifyWebhookSignature(ctx *fiber.Ctx) error {
	id := ctx.Get("webhook-id")
	timestamp := ctx.Get("webhook-timestamp")
	signature := ctx.Get("webhook-signature")

	if id == "" || timestamp == "" || signature == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error missing webhook signature headers")
		return helpers.RespError(ctx, m.Log, errors.BadRequest("error missing webhook signature headers"))
	}

	mac := hmac.New(sha256.New, []byte(m.Cfg.Webhook.Secret))
	mac.Write([]byte(id + "." + timestamp + "."))
	mac.Write(ctx.Body())
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if !matchSignature(expected, signature) {
		m.Log.Ctx(ctx.UserContext()).Error("error verify webhook signature")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error verify webhook signature"))
	}

	return ctx.Next()
}

func matchSignature(expected string, header string) bool {
	for _, entry := range strings.Fields(header) {
		version, sig, found := strings.Cut(entry, ",")
		if !found {
			// bare signature without a version tag
			sig = entry
		} else if version != "v1" {
			continue
		}
		if hmac.Equal([]byte(expected), []byte(sig)) {
			return true
		}
	}
	return false
}
