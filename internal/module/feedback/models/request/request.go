package request

type CreateFeedback struct {
	UserID  string `json:"user_id" validate:"omitempty"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type UpdateFeedbackStatus struct {
	Status string `json:"status" validate:"required,oneof=new read replied archived"`
}
