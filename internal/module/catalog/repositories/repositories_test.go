package repositories_test

import (
	"context"
	"testing"
	"time"

	"travel-booking-service/internal/module/catalog/models/entity"
	"travel-booking-service/internal/module/catalog/repositories"
	"travel-booking-service/internal/pkg/errors"
	logInternal "travel-booking-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var (
	mock    sqlxmock.Sqlmock
	dbx     *sqlx.DB
	logMock *otelzap.Logger
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	logMock = logInternal.Setup()
}

func TestSearchByType(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil)

	t.Run("routed search on flights", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"id", "airline", "from_city", "to_city", "price_value", "created_at"}).
			AddRow("7", "IndiGo", "Delhi", "Mumbai", 5400.0, time.Now())

		mock.ExpectQuery(`SELECT \* FROM flights WHERE from_city ILIKE \$1 AND to_city ILIKE \$2 ORDER BY created_at DESC LIMIT \$3`).
			WithArgs("%Delhi%", "%Mumbai%", 50).
			WillReturnRows(rows)

		out, err := repo.SearchByType(context.Background(), "flight", entity.SearchFilter{From: "Delhi", To: "Mumbai"}, 50)
		assert.NoError(t, err)
		flights := out.(*[]entity.Flight)
		assert.Len(t, *flights, 1)
		assert.Equal(t, "IndiGo", (*flights)[0].Airline)
	})

	t.Run("free text query ors over search columns", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM hotels WHERE \(name ILIKE \$1 OR location ILIKE \$1\) ORDER BY created_at DESC LIMIT \$2`).
			WithArgs("%palace%", 10).
			WillReturnRows(sqlxmock.NewRows([]string{"id"}))

		_, err := repo.SearchByType(context.Background(), "hotel", entity.SearchFilter{Query: "palace"}, 10)
		assert.NoError(t, err)
	})

	t.Run("from and to ignored on unrouted sources", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM hotels ORDER BY created_at DESC LIMIT \$1`).
			WithArgs(10).
			WillReturnRows(sqlxmock.NewRows([]string{"id"}))

		_, err := repo.SearchByType(context.Background(), "hotel", entity.SearchFilter{From: "Delhi", To: "Goa"}, 10)
		assert.NoError(t, err)
	})

	t.Run("invalid service type", func(t *testing.T) {
		_, err := repo.SearchByType(context.Background(), "spaceship", entity.SearchFilter{}, 10)
		assert.Error(t, err)
		assert.Equal(t, 400, errors.HttpCode(err))
	})
}

func TestListAdmin(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil)

	t.Run("counts and pages", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM hotels WHERE name ILIKE \$1 OR location ILIKE \$1`).
			WithArgs("%goa%").
			WillReturnRows(sqlxmock.NewRows([]string{"count"}).AddRow(int64(3)))

		rows := sqlxmock.NewRows([]string{"id", "name", "image", "location", "created_at"}).
			AddRow("1", "Beach Stay", "beach.jpg", "Goa", time.Now())
		mock.ExpectQuery(`SELECT \* FROM hotels WHERE name ILIKE \$1 OR location ILIKE \$1 ORDER BY created_at DESC LIMIT \$2 OFFSET \$3`).
			WithArgs("%goa%", 20, 0).
			WillReturnRows(rows)

		out, total, err := repo.ListAdmin(context.Background(), "hotel", "goa", 20, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		hotels := out.(*[]entity.Hotel)
		assert.Len(t, *hotels, 1)
	})
}

func TestInsertService(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil)

	t.Run("whitelisted field inserted and record returned", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO destinations \(id, name\) VALUES \(\$1, \$2\)`).
			WithArgs(sqlxmock.AnyArg(), "Jaipur").
			WillReturnResult(sqlxmock.NewResult(0, 1))

		rows := sqlxmock.NewRows([]string{"id", "name", "image", "location", "created_at"}).
			AddRow("abc", "Jaipur", "", "", time.Now())
		mock.ExpectQuery(`SELECT \* FROM destinations WHERE id = \$1`).
			WillReturnRows(rows)

		out, err := repo.InsertService(context.Background(), "destination", map[string]interface{}{
			"name": "Jaipur",
			// not a destination column, dropped by the whitelist
			"airline": "IndiGo",
		})
		assert.NoError(t, err)
		dest := out.(*entity.Destination)
		assert.Equal(t, "Jaipur", dest.Name)
	})

	t.Run("no whitelisted fields", func(t *testing.T) {
		_, err := repo.InsertService(context.Background(), "destination", map[string]interface{}{
			"airline": "IndiGo",
		})
		assert.Error(t, err)
		assert.Equal(t, 400, errors.HttpCode(err))
	})
}

func TestUpdateService(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil)

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec(`UPDATE hotels SET name = \$1, updated_at = NOW\(\) WHERE id = \$2`).
			WithArgs("Renamed", "404").
			WillReturnResult(sqlxmock.NewResult(0, 0))

		_, err := repo.UpdateService(context.Background(), "hotel", "404", map[string]interface{}{"name": "Renamed"})
		assert.Error(t, err)
		assert.Equal(t, 404, errors.HttpCode(err))
	})

	t.Run("camel case keys land on their column", func(t *testing.T) {
		mock.ExpectExec(`UPDATE hotels SET price_value = \$1, updated_at = NOW\(\) WHERE id = \$2`).
			WithArgs(3200.0, "1").
			WillReturnResult(sqlxmock.NewResult(0, 1))

		rows := sqlxmock.NewRows([]string{"id", "name", "image", "location", "price_value", "created_at"}).
			AddRow("1", "Beach Stay", "beach.jpg", "Goa", 3200.0, time.Now())
		mock.ExpectQuery(`SELECT \* FROM hotels WHERE id = \$1`).
			WillReturnRows(rows)

		out, err := repo.UpdateService(context.Background(), "hotel", "1", map[string]interface{}{"priceValue": 3200.0})
		assert.NoError(t, err)
		hotel := out.(*entity.Hotel)
		assert.Equal(t, 3200.0, hotel.PriceValue)
	})
}

func TestDeleteService(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM guides WHERE id = \$1`).
			WithArgs("9").
			WillReturnResult(sqlxmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteService(context.Background(), "guide", "9"))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM guides WHERE id = \$1`).
			WithArgs("9").
			WillReturnResult(sqlxmock.NewResult(0, 0))

		err := repo.DeleteService(context.Background(), "guide", "9")
		assert.Error(t, err)
		assert.Equal(t, 404, errors.HttpCode(err))
	})
}
