package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusbridge/campusbridge/internal/app/models"
	"github.com/campusbridge/campusbridge/internal/app/models/dto"
	"github.com/campusbridge/campusbridge/internal/app/services"
	"github.com/campusbridge/campusbridge/internal/middleware"
)

// UserController handles user account endpoints
type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetMe returns the authenticated user's own account
// @Summary Get own account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /users/me [get]
func (c *UserController) GetMe(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}

	user, err := c.userService.GetByID(ctx, actor, actor.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      user,
		Timestamp: time.Now(),
	})
}

// GetUser returns a user account by id. Non-admins may only fetch their own.
// @Summary Get user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{userId} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(ctx, "userId")
	if !ok {
		return
	}

	user, err := c.userService.GetByID(ctx, actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      user,
		Timestamp: time.Now(),
	})
}

// ListUsers returns an offset-paginated page of a college's user accounts
// @Summary List users
// @Description Offset-paginated accounts of a college, optionally filtered by role. Admin only.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param collegeId query string false "College ID (defaults to own college)"
// @Param role query string false "Role filter (ADMIN, OFFICIALS, ALUMNI, STUDENT)"
// @Param skip query int false "Rows to skip (default 0)"
// @Param limit query int false "Page size (max 100, default 20)"
// @Success 200 {object} dto.APIResponse{data=[]models.User}
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	collegeID, ok := parseCollegeIDQuery(ctx, actor.CollegeID)
	if !ok {
		return
	}
	skip, ok := parseSkip(ctx)
	if !ok {
		return
	}
	limit, ok := parseLimit(ctx, dto.DefaultUserLimit, 1, dto.MaxUserLimit)
	if !ok {
		return
	}

	var role *models.Role
	if raw := ctx.Query("role"); raw != "" {
		r := models.Role(raw)
		if !r.IsValid() {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unknown role: "+raw).WithField("role")))
			return
		}
		role = &r
	}

	users, err := c.userService.List(ctx, actor, collegeID, role, skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      users,
		Timestamp: time.Now(),
	})
}

// UpdateUser applies an administrative update to a user account
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param request body dto.UserUpdateRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{userId} [patch]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(ctx, "userId")
	if !ok {
		return
	}

	var req dto.UserUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestBody(ctx, err)
		return
	}

	user, err := c.userService.Update(ctx, actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      user,
		Timestamp: time.Now(),
	})
}

// DeleteUser soft-deletes a user account
// @Summary Delete user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{userId} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(ctx, "userId")
	if !ok {
		return
	}

	if err := c.userService.Delete(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "User deleted"},
		Timestamp: time.Now(),
	})
}
