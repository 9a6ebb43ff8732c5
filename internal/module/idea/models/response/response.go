package response

import (
	"travel-booking-service/internal/module/idea/models/entity"
)

type AiAnalysis struct {
	FeasibilityScore int    `json:"feasibility_score"`
	ImpactScore      int    `json:"impact_score"`
	Feedback         string `json:"feedback,omitempty"`
	Analyzed         bool   `json:"analyzed"`
}

type Idea struct {
	ID                 int64      `json:"id"`
	UserID             string     `json:"user_id"`
	Title              string     `json:"title"`
	Category           string     `json:"category"`
	Location           string     `json:"location,omitempty"`
	Lat                *float64   `json:"lat,omitempty"`
	Lng                *float64   `json:"lng,omitempty"`
	ProblemDescription string     `json:"problem_description"`
	SolutionProposal   string     `json:"solution_proposal"`
	Impact             string     `json:"impact"`
	Status             string     `json:"status"`
	Votes              int64      `json:"votes"`
	AiAnalysis         AiAnalysis `json:"ai_analysis"`
	CreatedAt          string     `json:"created_at"`
}

const timeLayout = "2006-01-02 15:04:05"

func FromEntity(e entity.Idea) Idea {
	resp := Idea{
		ID:                 e.ID,
		UserID:             e.UserID,
		Title:              e.Title,
		Category:           e.Category,
		ProblemDescription: e.ProblemDescription,
		SolutionProposal:   e.SolutionProposal,
		Impact:             e.Impact,
		Status:             e.Status,
		Votes:              e.Votes,
		AiAnalysis: AiAnalysis{
			FeasibilityScore: e.FeasibilityScore,
			ImpactScore:      e.ImpactScore,
			Analyzed:         e.Analyzed,
		},
		CreatedAt: e.CreatedAt.Format(timeLayout),
	}
	if e.Location.Valid {
		resp.Location = e.Location.String
	}
	if e.Lat.Valid {
		lat := e.Lat.Float64
		resp.Lat = &lat
	}
	if e.Lng.Valid {
		lng := e.Lng.Float64
		resp.Lng = &lng
	}
	if e.AiFeedback.Valid {
		resp.AiAnalysis.Feedback = e.AiFeedback.String
	}
	return resp
}

func FromEntities(ideas []entity.Idea) []Idea {
	resp := make([]Idea, 0, len(ideas))
	for _, e := range ideas {
		resp = append(resp, FromEntity(e))
	}
	return resp
}
