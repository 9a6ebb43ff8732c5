package repositories

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"travel-booking-service/config"
	"travel-booking-service/internal/module/idea/models/entity"
	"travel-booking-service/internal/pkg/errors"

	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type repositories struct {
	db         *sqlx.DB
	log        *otelzap.Logger
	httpClient *circuit.HTTPClient
	cfgAi      *config.AiScorerConfig
}

type Repositories interface {
	InsertIdea(ctx context.Context, idea entity.Idea) (int64, error)
	FindIdeaByID(ctx context.Context, id int64) (entity.Idea, error)
	FindIdeas(ctx context.Context, category, status string, limit int) ([]entity.Idea, error)
	IncrementVotes(ctx context.Context, id int64) (int64, error)
	UpdateIdeaStatus(ctx context.Context, id int64, status string) error
	UpdateIdeaAnalysis(ctx context.Context, id int64, analysis entity.Analysis) error
	ScoreIdea(ctx context.Context, idea entity.Idea) (entity.Analysis, error)
}

func New(db *sqlx.DB, log *otelzap.Logger, httpClient *circuit.HTTPClient, cfgAi *config.AiScorerConfig) Repositories {
	return &repositories{
		db:         db,
		log:        log,
		httpClient: httpClient,
		cfgAi:      cfgAi,
	}
}

// InsertIdea implements Repositories.
func (r *repositories) InsertIdea(ctx context.Context, idea entity.Idea) (int64, error) {
	query := `INSERT INTO ideas (user_id, title, category, location, lat, lng, problem_description, solution_proposal, impact, status, votes)
		VALUES (:user_id, :title, :category, :location, :lat, :lng, :problem_description, :solution_proposal, :impact, :status, :votes)
		RETURNING id`

	rows, err := r.db.NamedQueryContext(ctx, query, idea)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error insert idea: %v", err))
		return 0, errors.InternalServerError("error insert idea")
	}
	defer rows.Close()

	var id int64
	if rows.Next() {
		if err := rows.Scan(&id); err != nil {
			r.log.Ctx(ctx).Error(fmt.Sprintf("error scan idea id: %v", err))
			return 0, errors.InternalServerError("error insert idea")
		}
	}
	return id, nil
}

// FindIdeaByID implements Repositories.
func (r *repositories) FindIdeaByID(ctx context.Context, id int64) (entity.Idea, error) {
	var idea entity.Idea
	query := `SELECT * FROM ideas WHERE id = $1`

	if err := r.db.GetContext(ctx, &idea, query, id); err != nil {
		if err == sql.ErrNoRows {
			return idea, errors.NotFound("idea not found")
		}
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find idea by id: %v", err))
		return idea, errors.InternalServerError("error find idea by id")
	}
	return idea, nil
}

// FindIdeas implements Repositories.
func (r *repositories) FindIdeas(ctx context.Context, category, status string, limit int) ([]entity.Idea, error) {
	ideas := make([]entity.Idea, 0)
	query := `SELECT * FROM ideas WHERE 1=1`
	args := []interface{}{}

	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY votes DESC, created_at DESC LIMIT $%d", len(args))

	if err := r.db.SelectContext(ctx, &ideas, query, args...); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find ideas: %v", err))
		return nil, errors.InternalServerError("error find ideas")
	}
	return ideas, nil
}

// IncrementVotes implements Repositories.
func (r *repositories) IncrementVotes(ctx context.Context, id int64) (int64, error) {
	var votes int64
	query := `UPDATE ideas SET votes = votes + 1, updated_at = NOW() WHERE id = $1 RETURNING votes`

	if err := r.db.GetContext(ctx, &votes, query, id); err != nil {
		if err == sql.ErrNoRows {
			return 0, errors.NotFound("idea not found")
		}
		r.log.Ctx(ctx).Error(fmt.Sprintf("error increment idea votes: %v", err))
		return 0, errors.InternalServerError("error increment idea votes")
	}
	return votes, nil
}

// UpdateIdeaStatus implements Repositories.
func (r *repositories) UpdateIdeaStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE ideas SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error update idea status: %v", err))
		return errors.InternalServerError("error update idea status")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error update idea status: %v", err))
		return errors.InternalServerError("error update idea status")
	}
	if affected == 0 {
		return errors.NotFound("idea not found")
	}
	return nil
}

// UpdateIdeaAnalysis implements Repositories.
func (r *repositories) UpdateIdeaAnalysis(ctx context.Context, id int64, analysis entity.Analysis) error {
	query := `UPDATE ideas SET feasibility_score = $1, impact_score = $2, ai_feedback = $3, analyzed = true, updated_at = NOW() WHERE id = $4`

	if _, err := r.db.ExecContext(ctx, query, analysis.FeasibilityScore, analysis.ImpactScore, analysis.Feedback, id); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error update idea analysis: %v", err))
		return errors.InternalServerError("error update idea analysis")
	}
	return nil
}

type scorerRequest struct {
	Model    string `json:"model"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Problem  string `json:"problem"`
	Solution string `json:"solution"`
	Impact   string `json:"impact"`
}

// ScoreIdea implements Repositories.
func (r *repositories) ScoreIdea(ctx context.Context, idea entity.Idea) (entity.Analysis, error) {
	var analysis entity.Analysis
	if r.cfgAi.BaseUrl == "" || r.cfgAi.ApiKey == "" {
		return analysis, errors.InternalServerError("ai scorer credentials missing")
	}

	payload := scorerRequest{
		Model:    r.cfgAi.Model,
		Title:    idea.Title,
		Category: idea.Category,
		Problem:  idea.ProblemDescription,
		Solution: idea.SolutionProposal,
		Impact:   idea.Impact,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error marshal scorer request: %v", err))
		return analysis, errors.InternalServerError("error score idea")
	}

	url := fmt.Sprintf("%s/v1/score", r.cfgAi.BaseUrl)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error create scorer request: %v", err))
		return analysis, errors.InternalServerError("error score idea")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.cfgAi.ApiKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error call ai scorer: %v", err))
		return analysis, errors.InternalServerError("error score idea")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Ctx(ctx).Error(fmt.Sprintf("ai scorer returned status %d", resp.StatusCode))
		return analysis, errors.InternalServerError("error score idea")
	}

	if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error decode scorer response: %v", err))
		return analysis, errors.InternalServerError("error score idea")
	}
	return analysis, nil
}
