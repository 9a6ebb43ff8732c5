package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"travel-booking-service/internal/module/catalog/models/entity"
	"travel-booking-service/internal/pkg/errors"
)

const featuredCacheTTL = 5 * time.Minute

type repositories struct {
	db          *sqlx.DB
	log         *otelzap.Logger
	redisClient *redis.Client
}

type Repositories interface {
	ListByType(ctx context.Context, serviceType string, featuredOnly bool, limit int) (interface{}, error)
	GetByType(ctx context.Context, serviceType string, id string) (interface{}, error)
	SearchByType(ctx context.Context, serviceType string, filter entity.SearchFilter, limit int) (interface{}, error)
	// admin
	ListAdmin(ctx context.Context, serviceType string, search string, limit int, offset int) (interface{}, int64, error)
	InsertService(ctx context.Context, serviceType string, fields map[string]interface{}) (interface{}, error)
	UpdateService(ctx context.Context, serviceType string, id string, fields map[string]interface{}) (interface{}, error)
	DeleteService(ctx context.Context, serviceType string, id string) error
}

func New(db *sqlx.DB, log *otelzap.Logger, redisClient *redis.Client) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		redisClient: redisClient,
	}
}

// ListByType implements Repositories. Featured lists are hot on the landing
// pages and are served from redis when possible.
func (r *repositories) ListByType(ctx context.Context, serviceType string, featuredOnly bool, limit int) (interface{}, error) {
	src, ok := entity.ResolveSource(serviceType)
	if !ok {
		return nil, errors.BadRequest("invalid service type")
	}

	featuredOnly = featuredOnly && src.HasFeatured

	cacheKey := ""
	if featuredOnly && r.redisClient != nil {
		cacheKey = fmt.Sprintf("catalog:featured:%s:%d", serviceType, limit)
		if cached, err := r.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			out := newSlice(serviceType)
			if err := json.Unmarshal([]byte(cached), out); err == nil {
				return out, nil
			}
		}
	}

	query := fmt.Sprintf(`SELECT * FROM %s`, src.Table)
	if featuredOnly {
		query += ` WHERE featured = true`
	}
	query += ` ORDER BY created_at DESC LIMIT $1`

	out := newSlice(serviceType)
	if err := r.db.SelectContext(ctx, out, query, limit); err != nil {
		return nil, errors.InternalServerError("error list services")
	}

	if cacheKey != "" {
		if payload, err := json.Marshal(out); err == nil {
			r.redisClient.Set(ctx, cacheKey, payload, featuredCacheTTL)
		}
	}

	return out, nil
}

// GetByType implements Repositories.
func (r *repositories) GetByType(ctx context.Context, serviceType string, id string) (interface{}, error) {
	src, ok := entity.ResolveSource(serviceType)
	if !ok {
		return nil, errors.BadRequest("invalid service type")
	}

	query := fmt.Sprintf(`SELECT * FROM %s WHERE id = $1`, src.Table)

	out := newRecord(serviceType)
	err := r.db.GetContext(ctx, out, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("service not found")
	}
	if err != nil {
		return nil, errors.InternalServerError("error get service")
	}

	return out, nil
}

// SearchByType implements Repositories. Filters compose with AND, the free
// text query ORs across the source's search columns.
func (r *repositories) SearchByType(ctx context.Context, serviceType string, filter entity.SearchFilter, limit int) (interface{}, error) {
	src, ok := entity.ResolveSource(serviceType)
	if !ok {
		return nil, errors.BadRequest("invalid service type")
	}

	var conds []string
	var args []interface{}

	if filter.Location != "" && src.HasColumn("location") {
		args = append(args, "%"+filter.Location+"%")
		conds = append(conds, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if filter.From != "" && src.Routed {
		args = append(args, "%"+filter.From+"%")
		conds = append(conds, fmt.Sprintf("from_city ILIKE $%d", len(args)))
	}
	if filter.To != "" && src.Routed {
		args = append(args, "%"+filter.To+"%")
		conds = append(conds, fmt.Sprintf("to_city ILIKE $%d", len(args)))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		var ors []string
		for _, col := range src.SearchCols {
			ors = append(ors, fmt.Sprintf("%s ILIKE $%d", col, len(args)))
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}

	query := fmt.Sprintf(`SELECT * FROM %s`, src.Table)
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	out := newSlice(serviceType)
	if err := r.db.SelectContext(ctx, out, query, args...); err != nil {
		return nil, errors.InternalServerError("error search services")
	}

	return out, nil
}

// ListAdmin implements Repositories. Unlike the public list this pages over
// everything, featured or not, and reports the total for the dashboard.
func (r *repositories) ListAdmin(ctx context.Context, serviceType string, search string, limit int, offset int) (interface{}, int64, error) {
	src, ok := entity.ResolveSource(serviceType)
	if !ok {
		return nil, 0, errors.BadRequest("invalid service type")
	}

	where := ""
	var args []interface{}
	if search != "" {
		args = append(args, "%"+search+"%")
		var ors []string
		for _, col := range src.SearchCols {
			ors = append(ors, fmt.Sprintf("%s ILIKE $%d", col, len(args)))
		}
		where = " WHERE " + strings.Join(ors, " OR ")
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, src.Table) + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, errors.InternalServerError("error count services")
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT * FROM %s%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		src.Table, where, len(args)-1, len(args))

	out := newSlice(serviceType)
	if err := r.db.SelectContext(ctx, out, query, args...); err != nil {
		return nil, 0, errors.InternalServerError("error list services")
	}

	return out, total, nil
}

// InsertService implements Repositories. Body keys run through the source's
// column whitelist, anything unknown is dropped.
func (r *repositories) InsertService(ctx context.Context, serviceType string, fields map[string]interface{}) (interface{}, error) {
	src, ok := entity.ResolveSource(serviceType)
	if !ok {
		return nil, errors.BadRequest("invalid service type")
	}

	cols := []string{"id"}
	placeholders := []string{"$1"}
	id := uuid.New().String()
	args := []interface{}{id}

	for key, value := range fields {
		col, ok := src.NormalizeColumn(key)
		if !ok {
			continue
		}
		args = append(args, bindValue(value))
		cols = append(cols, col)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}

	if len(cols) == 1 {
		return nil, errors.BadRequest("no valid service fields")
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		src.Table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, errors.InternalServerError("error insert service")
	}

	return r.GetByType(ctx, serviceType, id)
}

// UpdateService implements Repositories.
func (r *repositories) UpdateService(ctx context.Context, serviceType string, id string, fields map[string]interface{}) (interface{}, error) {
	src, ok := entity.ResolveSource(serviceType)
	if !ok {
		return nil, errors.BadRequest("invalid service type")
	}

	var sets []string
	var args []interface{}
	for key, value := range fields {
		col, ok := src.NormalizeColumn(key)
		if !ok {
			continue
		}
		args = append(args, bindValue(value))
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if len(sets) == 0 {
		return nil, errors.BadRequest("no valid service fields")
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE %s SET %s, updated_at = NOW() WHERE id = $%d`,
		src.Table, strings.Join(sets, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, errors.InternalServerError("error update service")
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return nil, errors.NotFound("service not found")
	}

	return r.GetByType(ctx, serviceType, id)
}

// DeleteService implements Repositories.
func (r *repositories) DeleteService(ctx context.Context, serviceType string, id string) error {
	src, ok := entity.ResolveSource(serviceType)
	if !ok {
		return errors.BadRequest("invalid service type")
	}

	result, err := r.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, src.Table), id)
	if err != nil {
		return errors.InternalServerError("error delete service")
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return errors.NotFound("service not found")
	}
	return nil
}

// JSON arrays need the pq array adapter before they hit the driver.
func bindValue(value interface{}) interface{} {
	if _, ok := value.([]interface{}); ok {
		return pq.Array(value)
	}
	return value
}

func newSlice(serviceType string) interface{} {
	switch serviceType {
	case "hotel":
		return &[]entity.Hotel{}
	case "flight":
		return &[]entity.Flight{}
	case "train":
		return &[]entity.Train{}
	case "bus":
		return &[]entity.Bus{}
	case "taxi":
		return &[]entity.Taxi{}
	case "restaurant":
		return &[]entity.Restaurant{}
	case "guide":
		return &[]entity.Guide{}
	default:
		return &[]entity.Destination{}
	}
}

func newRecord(serviceType string) interface{} {
	switch serviceType {
	case "hotel":
		return &entity.Hotel{}
	case "flight":
		return &entity.Flight{}
	case "train":
		return &entity.Train{}
	case "bus":
		return &entity.Bus{}
	case "taxi":
		return &entity.Taxi{}
	case "restaurant":
		return &entity.Restaurant{}
	case "guide":
		return &entity.Guide{}
	default:
		return &entity.Destination{}
	}
}
