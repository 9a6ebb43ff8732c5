package request

// IdentityEvent is the identity provider's webhook delivery. Only the three
// user lifecycle event types are consumed, the rest are acknowledged and
// dropped.
type IdentityEvent struct {
	Type string            `json:"type" validate:"required"`
	Data IdentityEventData `json:"data" validate:"required"`
}

type IdentityEventData struct {
	ID             string                 `json:"id" validate:"required"`
	Username       string                 `json:"username"`
	FirstName      string                 `json:"first_name"`
	LastName       string                 `json:"last_name"`
	ImageUrl       string                 `json:"image_url"`
	EmailAddresses []IdentityEmailAddress `json:"email_addresses"`
}

type IdentityEmailAddress struct {
	EmailAddress string `json:"email_address"`
}

type UpdateUser struct {
	Role             string `json:"role" validate:"omitempty,oneof=traveller seller admin"`
	SubscriptionTier string `json:"subscription_tier" validate:"omitempty,oneof=bronze silver gold"`
	StandardCredits  *int64 `json:"standard_credits" validate:"omitempty,gte=0"`
}
