package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusbridge/campusbridge/internal/app/models/dto"
	"github.com/campusbridge/campusbridge/internal/app/services"
	"github.com/campusbridge/campusbridge/internal/middleware"
)

// FeedController handles posts, comments and reactions.
//
// Every listing takes an optional opaque cursor query parameter and a limit;
// the response carries the cursor of the next page when one may exist.
type FeedController struct {
	feedService *services.FeedService
}

func NewFeedController(feedService *services.FeedService) *FeedController {
	return &FeedController{feedService: feedService}
}

// CreatePost publishes a new post
// @Summary Create post
// @Description Publishes a post into the author's college feed
// @Tags feed
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePostRequest true "Post content"
// @Success 201 {object} dto.APIResponse{data=models.Post}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Role may not publish posts"
// @Router /feed/posts [post]
func (c *FeedController) CreatePost(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestBody(ctx, err)
		return
	}

	post, err := c.feedService.CreatePost(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      post,
		Timestamp: time.Now(),
	})
}

// GetCollegeFeed returns one page of a college's feed
// @Summary College feed
// @Description Returns a college's feed page, newest first. Defaults to the caller's college; naming a foreign college is admin only.
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Param collegeId query string false "College ID (defaults to own college)"
// @Param cursor query string false "Opaque page cursor"
// @Param limit query int false "Page size (1-50, default 10)"
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse}
// @Failure 400 {object} dto.ErrorResponse "Malformed cursor or limit"
// @Failure 403 {object} dto.ErrorResponse "Foreign college feed"
// @Router /feed/college [get]
func (c *FeedController) GetCollegeFeed(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	collegeID, ok := parseCollegeIDQuery(ctx, actor.CollegeID)
	if !ok {
		return
	}
	limit, ok := parseLimit(ctx, dto.DefaultFeedLimit, dto.MinFeedLimit, dto.MaxFeedLimit)
	if !ok {
		return
	}

	posts, next, err := c.feedService.GetCollegeFeed(ctx, actor, collegeID, ctx.Query("cursor"), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.PagedResponse{Items: posts, NextCursor: next},
		Timestamp: time.Now(),
	})
}

// GetPublicFeed returns one page of the cross-college public feed
// @Summary Public feed
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Opaque page cursor"
// @Param limit query int false "Page size (1-50, default 10)"
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse}
// @Failure 400 {object} dto.ErrorResponse "Malformed cursor or limit"
// @Router /feed/public [get]
func (c *FeedController) GetPublicFeed(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	limit, ok := parseLimit(ctx, dto.DefaultFeedLimit, dto.MinFeedLimit, dto.MaxFeedLimit)
	if !ok {
		return
	}

	posts, next, err := c.feedService.GetPublicFeed(ctx, actor, ctx.Query("cursor"), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.PagedResponse{Items: posts, NextCursor: next},
		Timestamp: time.Now(),
	})
}

// GetMyPosts returns one page of the actor's own posts
// @Summary My posts
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Opaque page cursor"
// @Param limit query int false "Page size (1-50, default 10)"
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse}
// @Failure 400 {object} dto.ErrorResponse "Malformed cursor or limit"
// @Router /feed/me [get]
func (c *FeedController) GetMyPosts(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	limit, ok := parseLimit(ctx, dto.DefaultFeedLimit, dto.MinFeedLimit, dto.MaxFeedLimit)
	if !ok {
		return
	}

	posts, next, err := c.feedService.GetMyPosts(ctx, actor, ctx.Query("cursor"), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.PagedResponse{Items: posts, NextCursor: next},
		Timestamp: time.Now(),
	})
}

// UpdatePost applies a partial update to an owned post
// @Summary Update post
// @Description Updates a post the caller owns. A post owned by someone else reads as not found.
// @Tags feed
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postId path string true "Post ID"
// @Param request body dto.PostUpdateRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Post}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /feed/posts/{postId} [patch]
func (c *FeedController) UpdatePost(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	postID, ok := parseUUIDParam(ctx, "postId")
	if !ok {
		return
	}

	var req dto.PostUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestBody(ctx, err)
		return
	}

	post, err := c.feedService.UpdatePost(ctx, actor, postID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      post,
		Timestamp: time.Now(),
	})
}

// DeletePost soft-deletes an owned post
// @Summary Delete post
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Param postId path string true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /feed/posts/{postId} [delete]
func (c *FeedController) DeletePost(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	postID, ok := parseUUIDParam(ctx, "postId")
	if !ok {
		return
	}

	if err := c.feedService.DeletePost(ctx, actor, postID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Post deleted"},
		Timestamp: time.Now(),
	})
}

// CreateComment adds a comment to a post
// @Summary Comment on post
// @Tags feed
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postId path string true "Post ID"
// @Param request body dto.CreateCommentRequest true "Comment content"
// @Success 201 {object} dto.APIResponse{data=models.Comment}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Post or parent comment not found"
// @Router /feed/posts/{postId}/comments [post]
func (c *FeedController) CreateComment(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	postID, ok := parseUUIDParam(ctx, "postId")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestBody(ctx, err)
		return
	}

	comment, err := c.feedService.CreateComment(ctx, actor, postID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      comment,
		Timestamp: time.Now(),
	})
}

// ListComments returns one page of a post's comments
// @Summary List comments
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Param postId path string true "Post ID"
// @Param cursor query string false "Opaque page cursor"
// @Param limit query int false "Page size (1-50, default 10)"
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse}
// @Failure 400 {object} dto.ErrorResponse "Malformed cursor or limit"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /feed/posts/{postId}/comments [get]
func (c *FeedController) ListComments(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	postID, ok := parseUUIDParam(ctx, "postId")
	if !ok {
		return
	}
	limit, ok := parseLimit(ctx, dto.DefaultFeedLimit, dto.MinFeedLimit, dto.MaxFeedLimit)
	if !ok {
		return
	}

	comments, next, err := c.feedService.ListComments(ctx, actor, postID, ctx.Query("cursor"), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.PagedResponse{Items: comments, NextCursor: next},
		Timestamp: time.Now(),
	})
}

// DeleteComment soft-deletes an owned comment
// @Summary Delete comment
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Param commentId path string true "Comment ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Comment not found"
// @Router /feed/comments/{commentId} [delete]
func (c *FeedController) DeleteComment(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	commentID, ok := parseUUIDParam(ctx, "commentId")
	if !ok {
		return
	}

	if err := c.feedService.DeleteComment(ctx, actor, commentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Comment deleted"},
		Timestamp: time.Now(),
	})
}

// React records or replaces the caller's reaction to a post
// @Summary React to post
// @Tags feed
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postId path string true "Post ID"
// @Param request body dto.ReactionRequest true "Reaction"
// @Success 200 {object} dto.APIResponse{data=models.PostReaction}
// @Failure 400 {object} dto.ErrorResponse "Unknown reaction"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /feed/posts/{postId}/reactions [put]
func (c *FeedController) React(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	postID, ok := parseUUIDParam(ctx, "postId")
	if !ok {
		return
	}

	var req dto.ReactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestBody(ctx, err)
		return
	}

	reaction, err := c.feedService.React(ctx, actor, postID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      reaction,
		Timestamp: time.Now(),
	})
}

// RemoveReaction deletes the caller's reaction from a post
// @Summary Remove reaction
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Param postId path string true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "No reaction to remove"
// @Router /feed/posts/{postId}/reactions [delete]
func (c *FeedController) RemoveReaction(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	postID, ok := parseUUIDParam(ctx, "postId")
	if !ok {
		return
	}

	if err := c.feedService.RemoveReaction(ctx, actor, postID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Reaction removed"},
		Timestamp: time.Now(),
	})
}

// GetReactionSummary returns per-reaction totals for a post
// @Summary Reaction summary
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Param postId path string true "Post ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /feed/posts/{postId}/reactions [get]
func (c *FeedController) GetReactionSummary(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	postID, ok := parseUUIDParam(ctx, "postId")
	if !ok {
		return
	}

	counts, err := c.feedService.GetReactionSummary(ctx, actor, postID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      counts,
		Timestamp: time.Now(),
	})
}
