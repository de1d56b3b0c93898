package models

import (
	"time"

	"github.com/google/uuid"
)

// Post defines the feed post model based on the 'posts' table.
// (CreatedAt, ID) is the canonical feed ordering key: newest first,
// identifier as the tie-break. Both columns are immutable once written.
type Post struct {
	ID         uuid.UUID              `json:"id" db:"id"`
	UserID     uuid.UUID              `json:"userId" db:"user_id"`       // Author of the post
	CollegeID  uuid.UUID              `json:"collegeId" db:"college_id"` // Author's college at creation time
	Content    string                 `json:"content" db:"content"`
	PostType   PostType               `json:"postType" db:"post_type" example:"TEXT"`
	Visibility PostVisibility         `json:"visibility" db:"visibility" example:"PUBLIC"`
	IsHidden   bool                   `json:"-" db:"is_hidden"`  // Moderation flag, hidden posts never leave the repository
	IsDeleted  bool                   `json:"-" db:"is_deleted"` // Soft-delete flag
	Metadata   map[string]interface{} `json:"metadata,omitempty" db:"metadata"`
	CreatedAt  time.Time              `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time              `json:"updatedAt" db:"updated_at"`
}

// Comment defines a comment on a feed post based on the 'comments' table
type Comment struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	PostID    uuid.UUID  `json:"postId" db:"post_id"`
	UserID    uuid.UUID  `json:"userId" db:"user_id"`
	ParentID  *uuid.UUID `json:"parentId,omitempty" db:"parent_id"` // Parent comment for nested replies (nullable)
	Content   string     `json:"content" db:"content"`
	IsHidden  bool       `json:"-" db:"is_hidden"`
	IsDeleted bool       `json:"-" db:"is_deleted"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// PostReaction defines a user's reaction to a post based on the
// 'post_reactions' table. One reaction per (post, user).
type PostReaction struct {
	ID        uuid.UUID    `json:"id" db:"id"`
	PostID    uuid.UUID    `json:"postId" db:"post_id"`
	UserID    uuid.UUID    `json:"userId" db:"user_id"`
	Reaction  ReactionType `json:"reaction" db:"reaction" example:"LOVE_IT"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time    `json:"updatedAt" db:"updated_at"`
}
