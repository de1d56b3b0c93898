package dto

// CreateCollegeRequest represents a single college in the batch create payload
type CreateCollegeRequest struct {
	Name         string `json:"name" binding:"required" example:"National Institute of Technology"`
	IsGovernment bool   `json:"isGovernment"`
	State        string `json:"state" binding:"required" example:"Maharashtra"`
	City         string `json:"city" binding:"required" example:"Nagpur"`
}

// CollegeUpdateRequest represents a partial college update
type CollegeUpdateRequest struct {
	Name         *string `json:"name,omitempty"`
	IsGovernment *bool   `json:"isGovernment,omitempty"`
	State        *string `json:"state,omitempty"`
	City         *string `json:"city,omitempty"`
}

// HasUpdates reports whether any field was provided
func (r *CollegeUpdateRequest) HasUpdates() bool {
	return r.Name != nil || r.IsGovernment != nil || r.State != nil || r.City != nil
}
