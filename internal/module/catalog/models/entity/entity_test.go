package entity_test

import (
	"testing"

	"travel-booking-service/internal/module/catalog/models/entity"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeColumn(t *testing.T) {
	flight, _ := entity.ResolveSource("flight")
	hotel, _ := entity.ResolveSource("hotel")

	t.Run("camel case maps to snake case", func(t *testing.T) {
		col, ok := hotel.NormalizeColumn("priceValue")
		assert.True(t, ok)
		assert.Equal(t, "price_value", col)
	})

	t.Run("from and to alias onto the city columns", func(t *testing.T) {
		col, ok := flight.NormalizeColumn("from")
		assert.True(t, ok)
		assert.Equal(t, "from_city", col)

		col, ok = flight.NormalizeColumn("to")
		assert.True(t, ok)
		assert.Equal(t, "to_city", col)
	})

	t.Run("columns outside the whitelist are rejected", func(t *testing.T) {
		_, ok := hotel.NormalizeColumn("airline")
		assert.False(t, ok)

		_, ok = hotel.NormalizeColumn("id; DROP TABLE hotels")
		assert.False(t, ok)
	})
}
