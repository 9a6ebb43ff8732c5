package entity

import (
	"database/sql"
	"time"
)

const (
	StatusSubmitted   = "Submitted"
	StatusUnderReview = "Under Review"
	StatusAccepted    = "Accepted"
	StatusImplemented = "Implemented"
)

type Idea struct {
	ID                 int64           `db:"id"`
	UserID             string          `db:"user_id"`
	Title              string          `db:"title"`
	Category           string          `db:"category"`
	Location           sql.NullString  `db:"location"`
	Lat                sql.NullFloat64 `db:"lat"`
	Lng                sql.NullFloat64 `db:"lng"`
	ProblemDescription string          `db:"problem_description"`
	SolutionProposal   string          `db:"solution_proposal"`
	Impact             string          `db:"impact"`
	Status             string          `db:"status"`
	Votes              int64           `db:"votes"`
	FeasibilityScore   int             `db:"feasibility_score"`
	ImpactScore        int             `db:"impact_score"`
	AiFeedback         sql.NullString  `db:"ai_feedback"`
	Analyzed           bool            `db:"analyzed"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          sql.NullTime    `db:"updated_at"`
}

// Analysis is the scorer's verdict on one idea, both scores on a 1-10 scale.
type Analysis struct {
	FeasibilityScore int    `json:"feasibility_score"`
	ImpactScore      int    `json:"impact_score"`
	Feedback         string `json:"feedback"`
}
