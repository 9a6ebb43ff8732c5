package request

// BookingDetails is the serviceType-keyed variant record. Shapes overlap, so
// one struct with optional fields carries every variant; the relevant subset
// depends on the booking's service type.
type BookingDetails struct {
	Travelers int `json:"travelers,omitempty"`

	// hotel
	CheckInDate  string `json:"check_in_date,omitempty"`
	CheckOutDate string `json:"check_out_date,omitempty"`
	Rooms        int    `json:"rooms,omitempty"`
	Guests       int    `json:"guests,omitempty"`

	// flight / train / bus
	TravelDate string `json:"travel_date,omitempty"`
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	Class      string `json:"class,omitempty"`

	// taxi
	PickupLocation string `json:"pickup_location,omitempty"`
	DropLocation   string `json:"drop_location,omitempty"`
	PickupDateTime string `json:"pickup_date_time,omitempty"`

	// restaurant
	ReservationDate string `json:"reservation_date,omitempty"`
	ReservationTime string `json:"reservation_time,omitempty"`
	PartySize       int    `json:"party_size,omitempty"`

	// guide
	StartDate       string `json:"start_date,omitempty"`
	EndDate         string `json:"end_date,omitempty"`
	GroupSize       int    `json:"group_size,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

type CreateBooking struct {
	UserID         string          `json:"user_id" validate:"required"`
	UserEmail      string          `json:"user_email" validate:"omitempty,email"`
	UserName       string          `json:"user_name"`
	ServiceType    string          `json:"service_type" validate:"required"`
	ServiceID      string          `json:"service_id" validate:"required"`
	ServiceName    string          `json:"service_name"`
	ServiceImage   string          `json:"service_image"`
	BookingDetails *BookingDetails `json:"booking_details"`
	BasePrice      float64         `json:"base_price"`
	TotalPrice     float64         `json:"total_price" validate:"required,gt=0"`
	Currency       string          `json:"currency"`
	PaymentID      string          `json:"payment_id"`
	OrderID        string          `json:"order_id"`
	PaymentMethod  string          `json:"payment_method"`
	Notes          string          `json:"notes"`
}

type UpdateBookingStatus struct {
	Status             string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
	CancellationReason string `json:"cancellation_reason"`
}

type UpdatePaymentStatus struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending completed failed refunded"`
	PaymentID     string `json:"payment_id"`
	OrderID       string `json:"order_id"`
}

type CancelBooking struct {
	Reason string `json:"reason"`
}

// BookingExpiration is the asynq task payload that auto-cancels a booking
// whose payment window lapsed.
type BookingExpiration struct {
	BookingID string `json:"booking_id" validate:"required"`
}

// BookingEvent is the watermill payload for confirmed/cancelled transitions.
type BookingEvent struct {
	BookingID        string `json:"booking_id" validate:"required"`
	EventType        string `json:"event_type" validate:"required"`
	UserID           string `json:"user_id"`
	UserEmail        string `json:"user_email"`
	ServiceName      string `json:"service_name"`
	ConfirmationCode string `json:"confirmation_code"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}
