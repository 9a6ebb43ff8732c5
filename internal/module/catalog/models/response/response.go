package response

// ServicePage wraps an admin catalog listing. Items is the typed slice for
// the requested collection.
type ServicePage struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	TotalPages int64       `json:"total_pages"`
}
