package request

type CreateSellerRequest struct {
	BusinessName    string `json:"business_name" validate:"required"`
	BusinessType    string `json:"business_type" validate:"required,oneof=hotel transport guide restaurant"`
	Description     string `json:"description" validate:"required"`
	ServiceLocation string `json:"service_location" validate:"required"`
}

type ReviewSellerRequest struct {
	Status        string `json:"status" validate:"required,oneof=approved rejected"`
	AdminComments string `json:"admin_comments"`
}
