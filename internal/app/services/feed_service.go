package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campusbridge/campusbridge/internal/app/authz"
	"github.com/campusbridge/campusbridge/internal/app/models"
	"github.com/campusbridge/campusbridge/internal/app/models/dto"
	"github.com/campusbridge/campusbridge/internal/app/repositories"
	"github.com/campusbridge/campusbridge/internal/pkg/apperrors"
	"github.com/campusbridge/campusbridge/internal/pkg/cursor"
	"github.com/campusbridge/campusbridge/internal/pkg/logger"
)

// FeedService handles posts, comments and reactions.
//
// All feed listings page by opaque cursor over (created_at DESC, id DESC).
// Pages are stable under concurrent inserts: a post written after a cursor
// was handed out can never push an older post into a later page.
type FeedService struct {
	postRepo     *repositories.PostRepository
	commentRepo  *repositories.CommentRepository
	reactionRepo *repositories.ReactionRepository
}

func NewFeedService(postRepo *repositories.PostRepository, commentRepo *repositories.CommentRepository, reactionRepo *repositories.ReactionRepository) *FeedService {
	return &FeedService{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		reactionRepo: reactionRepo,
	}
}

// CreatePost publishes a new post authored by the actor into their college.
func (s *FeedService) CreatePost(ctx context.Context, actor authz.Actor, req *dto.CreatePostRequest) (*models.Post, error) {
	if err := authz.Authorize(actor, authz.ResourcePost, authz.ActionCreate, authz.Target{}); err != nil {
		return nil, err
	}
	if !req.PostType.IsValid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown post type: %s", req.PostType))
	}
	if !req.Visibility.IsValid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown visibility: %s", req.Visibility))
	}

	post := &models.Post{
		UserID:     actor.ID,
		CollegeID:  actor.CollegeID,
		Content:    req.Content,
		PostType:   req.PostType,
		Visibility: req.Visibility,
		Metadata:   req.Metadata,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	logger.Info().Str("postId", post.ID.String()).Str("userId", actor.ID.String()).Msg("Post created")
	return post, nil
}

// GetCollegeFeed returns one page of a college's feed. Non-admin actors may
// only read their own college's feed.
func (s *FeedService) GetCollegeFeed(ctx context.Context, actor authz.Actor, collegeID uuid.UUID, rawCursor string, limit int) ([]*models.Post, string, error) {
	if err := authz.Authorize(actor, authz.ResourcePost, authz.ActionReadCollege, authz.CollegeOf(collegeID)); err != nil {
		return nil, "", err
	}

	cur, err := cursor.DecodeOptional(rawCursor)
	if err != nil {
		return nil, "", err
	}

	posts, err := s.postRepo.ListCollegeFeed(ctx, collegeID, cur, limit)
	if err != nil {
		return nil, "", err
	}
	return posts, nextPostCursor(posts, limit), nil
}

// GetPublicFeed returns one page of the cross-college public feed.
func (s *FeedService) GetPublicFeed(ctx context.Context, actor authz.Actor, rawCursor string, limit int) ([]*models.Post, string, error) {
	if err := authz.Authorize(actor, authz.ResourcePost, authz.ActionReadPublic, authz.Target{}); err != nil {
		return nil, "", err
	}

	cur, err := cursor.DecodeOptional(rawCursor)
	if err != nil {
		return nil, "", err
	}

	posts, err := s.postRepo.ListPublicFeed(ctx, cur, limit)
	if err != nil {
		return nil, "", err
	}
	return posts, nextPostCursor(posts, limit), nil
}

// GetMyPosts returns one page of the actor's own posts.
func (s *FeedService) GetMyPosts(ctx context.Context, actor authz.Actor, rawCursor string, limit int) ([]*models.Post, string, error) {
	if err := authz.Authorize(actor, authz.ResourcePost, authz.ActionRead, authz.Owner(actor.ID)); err != nil {
		return nil, "", err
	}

	cur, err := cursor.DecodeOptional(rawCursor)
	if err != nil {
		return nil, "", err
	}

	posts, err := s.postRepo.ListByUser(ctx, actor.ID, cur, limit)
	if err != nil {
		return nil, "", err
	}
	return posts, nextPostCursor(posts, limit), nil
}

// UpdatePost applies a partial update to a post the actor owns. The lookup is
// scoped to the actor, so a post owned by someone else reads as not found.
func (s *FeedService) UpdatePost(ctx context.Context, actor authz.Actor, postID uuid.UUID, req *dto.PostUpdateRequest) (*models.Post, error) {
	if err := authz.Authorize(actor, authz.ResourcePost, authz.ActionUpdate, authz.Target{}); err != nil {
		return nil, err
	}
	if !req.HasUpdates() {
		return nil, apperrors.NewBadRequestError("no fields to update")
	}
	if req.PostType != nil && !req.PostType.IsValid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown post type: %s", *req.PostType))
	}
	if req.Visibility != nil && !req.Visibility.IsValid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown visibility: %s", *req.Visibility))
	}

	post, err := s.postRepo.GetByIDForUser(ctx, postID, actor.ID)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.PostType != nil {
		post.PostType = *req.PostType
	}
	if req.Visibility != nil {
		post.Visibility = *req.Visibility
	}
	if req.Metadata != nil {
		post.Metadata = req.Metadata
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost soft-deletes a post the actor owns.
func (s *FeedService) DeletePost(ctx context.Context, actor authz.Actor, postID uuid.UUID) error {
	if err := authz.Authorize(actor, authz.ResourcePost, authz.ActionDelete, authz.Target{}); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, postID, actor.ID)
}

// CreateComment adds a comment to a visible post. A reply must name a parent
// comment that belongs to the same post.
func (s *FeedService) CreateComment(ctx context.Context, actor authz.Actor, postID uuid.UUID, req *dto.CreateCommentRequest) (*models.Comment, error) {
	if err := authz.Authorize(actor, authz.ResourceComment, authz.ActionCreate, authz.Target{}); err != nil {
		return nil, err
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != postID {
			return nil, apperrors.NewBadRequestError("parent comment belongs to a different post")
		}
	}

	comment := &models.Comment{
		PostID:   postID,
		UserID:   actor.ID,
		ParentID: req.ParentID,
		Content:  req.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns one page of a post's comments, newest first.
func (s *FeedService) ListComments(ctx context.Context, actor authz.Actor, postID uuid.UUID, rawCursor string, limit int) ([]*models.Comment, string, error) {
	if err := authz.Authorize(actor, authz.ResourceComment, authz.ActionList, authz.Target{}); err != nil {
		return nil, "", err
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, "", err
	}

	cur, err := cursor.DecodeOptional(rawCursor)
	if err != nil {
		return nil, "", err
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID, cur, limit)
	if err != nil {
		return nil, "", err
	}

	next := ""
	if len(comments) > 0 {
		last := comments[len(comments)-1]
		next = cursor.Next(last.CreatedAt, last.ID, len(comments), limit)
	}
	return comments, next, nil
}

// DeleteComment soft-deletes a comment the actor owns.
func (s *FeedService) DeleteComment(ctx context.Context, actor authz.Actor, commentID uuid.UUID) error {
	if err := authz.Authorize(actor, authz.ResourceComment, authz.ActionDelete, authz.Target{}); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, commentID, actor.ID)
}

// React records or replaces the actor's reaction to a post.
func (s *FeedService) React(ctx context.Context, actor authz.Actor, postID uuid.UUID, req *dto.ReactionRequest) (*models.PostReaction, error) {
	if err := authz.Authorize(actor, authz.ResourceReaction, authz.ActionCreate, authz.Target{}); err != nil {
		return nil, err
	}
	if !req.Reaction.IsValid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown reaction: %s", req.Reaction))
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	reaction := &models.PostReaction{
		PostID:   postID,
		UserID:   actor.ID,
		Reaction: req.Reaction,
	}
	if err := s.reactionRepo.Upsert(ctx, reaction); err != nil {
		return nil, err
	}
	return reaction, nil
}

// RemoveReaction deletes the actor's reaction from a post.
func (s *FeedService) RemoveReaction(ctx context.Context, actor authz.Actor, postID uuid.UUID) error {
	if err := authz.Authorize(actor, authz.ResourceReaction, authz.ActionDelete, authz.Target{}); err != nil {
		return err
	}
	return s.reactionRepo.Delete(ctx, postID, actor.ID)
}

// GetReactionSummary returns per-reaction totals for a visible post.
func (s *FeedService) GetReactionSummary(ctx context.Context, actor authz.Actor, postID uuid.UUID) (map[models.ReactionType]int, error) {
	if err := authz.Authorize(actor, authz.ResourceReaction, authz.ActionList, authz.Target{}); err != nil {
		return nil, err
	}
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.reactionRepo.CountByPost(ctx, postID)
}

// nextPostCursor derives the next page's cursor from the final row of a full
// page. A short page means the listing is exhausted.
func nextPostCursor(posts []*models.Post, limit int) string {
	if len(posts) == 0 {
		return ""
	}
	last := posts[len(posts)-1]
	return cursor.Next(last.CreatedAt, last.ID, len(posts), limit)
}
