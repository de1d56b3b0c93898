package dto

// Page size bounds for the user listing.
const (
	DefaultUserLimit = 20
	MaxUserLimit     = 100
)

// UserUpdateRequest represents a partial user update (admin only)
type UserUpdateRequest struct {
	Phone      *string `json:"phone,omitempty"`
	IsVerified *bool   `json:"isVerified,omitempty"`
}

// HasUpdates reports whether any field was provided
func (r *UserUpdateRequest) HasUpdates() bool {
	return r.Phone != nil || r.IsVerified != nil
}
