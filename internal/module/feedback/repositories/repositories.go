package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"travel-booking-service/internal/module/feedback/models/entity"
	"travel-booking-service/internal/pkg/errors"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type repositories struct {
	db  *sqlx.DB
	log *otelzap.Logger
}

type Repositories interface {
	InsertFeedback(ctx context.Context, feedback entity.Feedback) (int64, error)
	FindFeedbackByID(ctx context.Context, id int64) (entity.Feedback, error)
	FindFeedback(ctx context.Context, status string, limit, offset int) ([]entity.Feedback, int64, error)
	UpdateFeedbackStatus(ctx context.Context, id int64, status string) error
}

func New(db *sqlx.DB, log *otelzap.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// InsertFeedback implements Repositories.
func (r *repositories) InsertFeedback(ctx context.Context, feedback entity.Feedback) (int64, error) {
	query := `INSERT INTO feedback (user_id, name, email, subject, message, status)
		VALUES (:user_id, :name, :email, :subject, :message, :status)
		RETURNING id`

	rows, err := r.db.NamedQueryContext(ctx, query, feedback)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error insert feedback: %v", err))
		return 0, errors.InternalServerError("error insert feedback")
	}
	defer rows.Close()

	var id int64
	if rows.Next() {
		if err := rows.Scan(&id); err != nil {
			r.log.Ctx(ctx).Error(fmt.Sprintf("error scan feedback id: %v", err))
			return 0, errors.InternalServerError("error insert feedback")
		}
	}
	return id, nil
}

// FindFeedbackByID implements Repositories.
func (r *repositories) FindFeedbackByID(ctx context.Context, id int64) (entity.Feedback, error) {
	var feedback entity.Feedback
	query := `SELECT * FROM feedback WHERE id = $1`

	if err := r.db.GetContext(ctx, &feedback, query, id); err != nil {
		if err == sql.ErrNoRows {
			return feedback, errors.NotFound("feedback not found")
		}
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find feedback by id: %v", err))
		return feedback, errors.InternalServerError("error find feedback by id")
	}
	return feedback, nil
}

// FindFeedback implements Repositories.
func (r *repositories) FindFeedback(ctx context.Context, status string, limit, offset int) ([]entity.Feedback, int64, error) {
	items := make([]entity.Feedback, 0)
	where := ""
	args := []interface{}{}

	if status != "" {
		args = append(args, status)
		where = fmt.Sprintf(" WHERE status = $%d", len(args))
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM feedback`+where, args...); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error count feedback: %v", err))
		return nil, 0, errors.InternalServerError("error find feedback")
	}

	args = append(args, limit)
	query := fmt.Sprintf(`SELECT * FROM feedback%s ORDER BY created_at DESC LIMIT $%d`, where, len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find feedback: %v", err))
		return nil, 0, errors.InternalServerError("error find feedback")
	}
	return items, total, nil
}

// UpdateFeedbackStatus implements Repositories.
func (r *repositories) UpdateFeedbackStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE feedback SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error update feedback status: %v", err))
		return errors.InternalServerError("error update feedback status")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error update feedback status: %v", err))
		return errors.InternalServerError("error update feedback status")
	}
	if affected == 0 {
		return errors.NotFound("feedback not found")
	}
	return nil
}
