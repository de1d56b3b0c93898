package dto

import (
	"github.com/google/uuid"

	"github.com/campusbridge/campusbridge/internal/app/models"
)

// Cursor pagination query bounds for the feed listings
const (
	DefaultFeedLimit = 10
	MinFeedLimit     = 1
	MaxFeedLimit     = 50
)

// CreatePostRequest represents the feed post creation payload
type CreatePostRequest struct {
	Content    string                 `json:"content" binding:"required,min=1,max=5000"`
	PostType   models.PostType        `json:"postType" binding:"required" example:"TEXT"`
	Visibility models.PostVisibility  `json:"visibility" binding:"required" example:"PUBLIC"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// PostUpdateRequest represents a partial post update
type PostUpdateRequest struct {
	Content    *string                `json:"content,omitempty" binding:"omitempty,min=1,max=5000"`
	PostType   *models.PostType       `json:"postType,omitempty"`
	Visibility *models.PostVisibility `json:"visibility,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// HasUpdates reports whether any field was provided
func (r *PostUpdateRequest) HasUpdates() bool {
	return r.Content != nil || r.PostType != nil || r.Visibility != nil || r.Metadata != nil
}

// CreateCommentRequest represents the comment creation payload
type CreateCommentRequest struct {
	Content  string     `json:"content" binding:"required,min=1,max=2000"`
	ParentID *uuid.UUID `json:"parentId,omitempty"`
}

// ReactionRequest represents the reaction upsert payload
type ReactionRequest struct {
	Reaction models.ReactionType `json:"reaction" binding:"required" example:"LOVE_IT"`
}
