package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campusbridge/campusbridge/internal/app/models/dto"
	"github.com/campusbridge/campusbridge/internal/app/services"
	"github.com/campusbridge/campusbridge/internal/middleware"
)

// AlumniController handles alumni profile endpoints
type AlumniController struct {
	alumniService *services.AlumniService
}

func NewAlumniController(alumniService *services.AlumniService) *AlumniController {
	return &AlumniController{alumniService: alumniService}
}

// CreateAlumni creates an alumni profile
// @Summary Create alumni profile
// @Description Creates an alumni profile. Admins may target any user, officials users of their college, alumni only themselves.
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAlumniRequest true "Profile information"
// @Success 201 {object} dto.APIResponse{data=models.Alumni}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Profile already exists"
// @Router /alumni [post]
func (c *AlumniController) CreateAlumni(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}

	var req dto.CreateAlumniRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestBody(ctx, err)
		return
	}

	alumni, err := c.alumniService.Create(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      alumni,
		Timestamp: time.Now(),
	})
}

// GetMyAlumniProfile returns the caller's own alumni profile
// @Summary Get own alumni profile
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Alumni}
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /alumni/me [get]
func (c *AlumniController) GetMyAlumniProfile(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}

	alumni, err := c.alumniService.GetMine(ctx, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      alumni,
		Timestamp: time.Now(),
	})
}

// ListAlumni returns an offset-paginated page of all alumni profiles
// @Summary List all alumni
// @Description Offset-paginated directory of alumni across every college. Admin only.
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip (default 0)"
// @Param limit query int false "Page size (max 100, default 20)"
// @Success 200 {object} dto.APIResponse{data=[]models.Alumni}
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /alumni [get]
func (c *AlumniController) ListAlumni(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	skip, ok := parseSkip(ctx)
	if !ok {
		return
	}
	limit, ok := parseLimit(ctx, dto.DefaultAlumniLimit, 1, dto.MaxAlumniLimit)
	if !ok {
		return
	}

	alumni, err := c.alumniService.List(ctx, actor, skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      alumni,
		Timestamp: time.Now(),
	})
}

// ListCollegeAlumni returns an offset-paginated alumni directory page
// @Summary List college alumni
// @Description Offset-paginated directory of a college's alumni. Defaults to the caller's college; naming a foreign college is admin only.
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Param collegeId query string false "College ID (defaults to own college)"
// @Param skip query int false "Rows to skip (default 0)"
// @Param limit query int false "Page size (max 100, default 20)"
// @Success 200 {object} dto.APIResponse{data=[]models.Alumni}
// @Failure 403 {object} dto.ErrorResponse "Foreign college"
// @Router /alumni/college [get]
func (c *AlumniController) ListCollegeAlumni(ctx *gin.Context) {
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
	limit, ok := parseLimit(ctx, dto.DefaultAlumniLimit, 1, dto.MaxAlumniLimit)
	if !ok {
		return
	}

	alumni, err := c.alumniService.ListByCollege(ctx, actor, collegeID, skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      alumni,
		Timestamp: time.Now(),
	})
}

// UpdateAlumni applies a partial update to an alumni profile
// @Summary Update alumni profile
// @Description Updates an alumni profile. The userId query targets another user, admins and officials only.
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId query string false "Target user ID"
// @Param request body dto.UpdateAlumniRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Alumni}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /alumni [patch]
func (c *AlumniController) UpdateAlumni(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	targetUserID, ok := parseOptionalUserIDQuery(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAlumniRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestBody(ctx, err)
		return
	}

	alumni, err := c.alumniService.Update(ctx, actor, targetUserID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      alumni,
		Timestamp: time.Now(),
	})
}

// DeleteAlumni removes an alumni profile
// @Summary Delete alumni profile
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Param userId query string false "Target user ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /alumni [delete]
func (c *AlumniController) DeleteAlumni(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	targetUserID, ok := parseOptionalUserIDQuery(ctx)
	if !ok {
		return
	}

	if err := c.alumniService.Delete(ctx, actor, targetUserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Alumni profile deleted"},
		Timestamp: time.Now(),
	})
}

func parseOptionalUserIDQuery(ctx *gin.Context) (*uuid.UUID, bool) {
	raw := ctx.Query("userId")
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid userId").WithField("userId")))
		return nil, false
	}
	return &id, true
}
