package response

import "travel-booking-service/internal/module/booking/models/entity"

// CreatedBooking is the summary the create endpoint answers with.
type CreatedBooking struct {
	BookingID        string  `json:"booking_id"`
	ConfirmationCode string  `json:"confirmation_code"`
	Status           string  `json:"status"`
	ServiceName      string  `json:"service_name"`
	TotalPrice       float64 `json:"total_price"`
}

type Booking struct {
	ID                 string                  `json:"id"`
	UserID             string                  `json:"user_id"`
	UserEmail          string                  `json:"user_email,omitempty"`
	UserName           string                  `json:"user_name,omitempty"`
	ServiceType        string                  `json:"service_type"`
	ServiceID          string                  `json:"service_id"`
	ServiceName        string                  `json:"service_name"`
	ServiceImage       string                  `json:"service_image,omitempty"`
	BookingDetails     interface{}             `json:"booking_details,omitempty"`
	BasePrice          float64                 `json:"base_price"`
	TotalPrice         float64                 `json:"total_price"`
	Currency           string                  `json:"currency"`
	PaymentStatus      string                  `json:"payment_status"`
	PaymentID          string                  `json:"payment_id,omitempty"`
	OrderID            string                  `json:"order_id,omitempty"`
	PaymentMethod      string                  `json:"payment_method,omitempty"`
	Status             string                  `json:"status"`
	BookingDate        string                  `json:"booking_date"`
	ConfirmationDate   string                  `json:"confirmation_date,omitempty"`
	CancellationDate   string                  `json:"cancellation_date,omitempty"`
	CancellationReason string                  `json:"cancellation_reason,omitempty"`
	ConfirmationCode   string                  `json:"confirmation_code"`
}

// BookingPage wraps the admin listing.
type BookingPage struct {
	Items      []Booking `json:"items"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	TotalPages int64     `json:"total_pages"`
}

type BookingStats struct {
	ByService []entity.StatsByService `json:"by_service"`
	Overall   entity.StatsOverall     `json:"overall"`
}

const timeLayout = "2006-01-02 15:04:05"

// FromEntity flattens the storage record into the wire shape.
func FromEntity(b entity.Booking) Booking {
	resp := Booking{
		ID:               b.ID.String(),
		UserID:           b.UserID,
		UserEmail:        b.UserEmail.String,
		UserName:         b.UserName.String,
		ServiceType:      b.ServiceType,
		ServiceID:        b.ServiceID,
		ServiceName:      b.ServiceName,
		ServiceImage:     b.ServiceImage.String,
		BasePrice:        b.BasePrice,
		TotalPrice:       b.TotalPrice,
		Currency:         b.Currency,
		PaymentStatus:    b.PaymentStatus,
		PaymentID:        b.PaymentID.String,
		OrderID:          b.OrderID.String,
		PaymentMethod:    b.PaymentMethod.String,
		Status:           b.Status,
		BookingDate:      b.BookingDate.Format(timeLayout),
		ConfirmationCode: b.ConfirmationCode,
	}

	if len(b.BookingDetails) > 0 {
		resp.BookingDetails = b.BookingDetails
	}
	if b.ConfirmationDate.Valid {
		resp.ConfirmationDate = b.ConfirmationDate.Time.Format(timeLayout)
	}
	if b.CancellationDate.Valid {
		resp.CancellationDate = b.CancellationDate.Time.Format(timeLayout)
	}
	if b.CancellationReason.Valid {
		resp.CancellationReason = b.CancellationReason.String
	}

	return resp
}

// FromEntities maps a user's booking list.
func FromEntities(bookings []entity.Booking) []Booking {
	out := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromEntity(b))
	}
	return out
}
