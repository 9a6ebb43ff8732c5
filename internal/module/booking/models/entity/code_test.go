package entity_test

import (
	"regexp"
	"testing"
	"time"

	"travel-booking-service/internal/module/booking/models/entity"

	"github.com/stretchr/testify/assert"
)

func TestGenerateConfirmationCode(t *testing.T) {
	now := time.Now()
	pattern := regexp.MustCompile(`^[A-Z]{3}-[0-9A-Z]+-[0-9A-Z]{4}$`)

	t.Run("matches the documented shape", func(t *testing.T) {
		code := entity.GenerateConfirmationCode("hotel", now)
		assert.Regexp(t, pattern, code)
		assert.Equal(t, "HOT", code[:3])
	})

	t.Run("short service type keeps its full prefix", func(t *testing.T) {
		code := entity.GenerateConfirmationCode("bus", now)
		assert.Equal(t, "BUS", code[:3])
	})

	t.Run("codes at the same instant still differ", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 50; i++ {
			seen[entity.GenerateConfirmationCode("flight", now)] = true
		}
		// 4 random base36 chars; 50 draws colliding would mean a broken rng
		assert.Greater(t, len(seen), 1)
	})
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, entity.IsTerminal(entity.StatusCancelled))
	assert.True(t, entity.IsTerminal(entity.StatusCompleted))
	assert.False(t, entity.IsTerminal(entity.StatusPending))
	assert.False(t, entity.IsTerminal(entity.StatusConfirmed))
}
