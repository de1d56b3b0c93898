package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusbridge/campusbridge/internal/app/models/dto"
	"github.com/campusbridge/campusbridge/internal/app/services"
	"github.com/campusbridge/campusbridge/internal/middleware"
)

// CollegeController handles the administrative college surface
type CollegeController struct {
	collegeService *services.CollegeService
}

func NewCollegeController(collegeService *services.CollegeService) *CollegeController {
	return &CollegeController{collegeService: collegeService}
}

// CreateColleges handles batch college creation
// @Summary Create colleges
// @Description Creates one or more colleges atomically. Admin only.
// @Tags colleges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body []dto.CreateCollegeRequest true "Colleges to create"
// @Success 201 {object} dto.APIResponse{data=[]models.College} "Colleges created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges [post]
func (c *CollegeController) CreateColleges(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}

	var req []dto.CreateCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestBody(ctx, err)
		return
	}

	colleges, err := c.collegeService.CreateBatch(ctx, actor, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      colleges,
		Timestamp: time.Now(),
	})
}

// GetCollege retrieves a college by id
// @Summary Get college
// @Tags colleges
// @Produce json
// @Security BearerAuth
// @Param collegeId path string true "College ID"
// @Success 200 {object} dto.APIResponse{data=models.College}
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /colleges/{collegeId} [get]
func (c *CollegeController) GetCollege(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(ctx, "collegeId")
	if !ok {
		return
	}

	college, err := c.collegeService.GetByID(ctx, actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      college,
		Timestamp: time.Now(),
	})
}

// ListColleges retrieves all colleges
// @Summary List colleges
// @Tags colleges
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.College}
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /colleges [get]
func (c *CollegeController) ListColleges(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}

	colleges, err := c.collegeService.List(ctx, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      colleges,
		Timestamp: time.Now(),
	})
}

// UpdateCollege applies a partial update to a college
// @Summary Update college
// @Tags colleges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param collegeId path string true "College ID"
// @Param request body dto.CollegeUpdateRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.College}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /colleges/{collegeId} [patch]
func (c *CollegeController) UpdateCollege(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(ctx, "collegeId")
	if !ok {
		return
	}

	var req dto.CollegeUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestBody(ctx, err)
		return
	}

	college, err := c.collegeService.Update(ctx, actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      college,
		Timestamp: time.Now(),
	})
}

// DeleteCollege soft-deletes a college
// @Summary Delete college
// @Tags colleges
// @Produce json
// @Security BearerAuth
// @Param collegeId path string true "College ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /colleges/{collegeId} [delete]
func (c *CollegeController) DeleteCollege(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(ctx, "collegeId")
	if !ok {
		return
	}

	if err := c.collegeService.Delete(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "College deleted"},
		Timestamp: time.Now(),
	})
}
