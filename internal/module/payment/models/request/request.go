package request

type CreateOrder struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency"`
}

type VerifyPayment struct {
	OrderID     string  `json:"order_id" validate:"required"`
	PaymentID   string  `json:"payment_id" validate:"required"`
	Signature   string  `json:"signature"`
	UserID      string  `json:"user_id"`
	Amount      float64 `json:"amount"`
	PaymentType string  `json:"payment_type"`
}
