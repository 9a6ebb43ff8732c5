package response

import (
	"travel-booking-service/internal/module/feedback/models/entity"
)

type Feedback struct {
	ID        int64  `json:"id"`
	UserID    string `json:"user_id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type FeedbackPage struct {
	Items      []Feedback `json:"items"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	TotalPages int64      `json:"total_pages"`
}

const timeLayout = "2006-01-02 15:04:05"

func FromEntity(e entity.Feedback) Feedback {
	resp := Feedback{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Subject:   e.Subject,
		Message:   e.Message,
		Status:    e.Status,
		CreatedAt: e.CreatedAt.Format(timeLayout),
	}
	if e.UserID.Valid {
		resp.UserID = e.UserID.String
	}
	return resp
}

func FromEntities(items []entity.Feedback) []Feedback {
	resp := make([]Feedback, 0, len(items))
	for _, e := range items {
		resp = append(resp, FromEntity(e))
	}
	return resp
}
