package request

type CreateIdea struct {
	UserID             string   `json:"user_id" validate:"required"`
	Title              string   `json:"title" validate:"required"`
	Category           string   `json:"category" validate:"required,oneof='Transport Networks' 'City Resources' 'Logistic Infrastructure' 'Other'"`
	Location           string   `json:"location" validate:"omitempty"`
	Lat                *float64 `json:"lat" validate:"omitempty"`
	Lng                *float64 `json:"lng" validate:"omitempty"`
	ProblemDescription string   `json:"problem_description" validate:"required"`
	SolutionProposal   string   `json:"solution_proposal" validate:"required"`
	Impact             string   `json:"impact" validate:"required"`
}

type UpdateIdeaStatus struct {
	Status string `json:"status" validate:"required,oneof=Submitted 'Under Review' Accepted Implemented"`
}
