package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusbridge/campusbridge/internal/app/models/dto"
	"github.com/campusbridge/campusbridge/internal/app/services"
	"github.com/campusbridge/campusbridge/internal/middleware"
)

// StudentController handles student profile endpoints
type StudentController struct {
	studentService *services.StudentService
}

func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// CreateStudent creates the caller's student profile
// @Summary Create student profile
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Profile information"
// @Success 201 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Profile or roll number already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}

	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestBody(ctx, err)
		return
	}

	student, err := c.studentService.Create(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// GetMyStudentProfile returns the caller's own student profile
// @Summary Get own student profile
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /students/me [get]
func (c *StudentController) GetMyStudentProfile(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetMine(ctx, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// ListStudents returns an offset-paginated page of all student profiles
// @Summary List all students
// @Description Offset-paginated student profiles across every college. Admin only.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip (default 0)"
// @Param limit query int false "Page size (max 100, default 20)"
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}
	skip, ok := parseSkip(ctx)
	if !ok {
		return
	}
	limit, ok := parseLimit(ctx, dto.DefaultStudentLimit, 1, dto.MaxStudentLimit)
	if !ok {
		return
	}

	students, err := c.studentService.List(ctx, actor, skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// ListCollegeStudents returns an offset-paginated page of a college's students
// @Summary List college students
// @Description Offset-paginated student profiles of a college. Defaults to the caller's college; naming a foreign college is admin only.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param collegeId query string false "College ID (defaults to own college)"
// @Param skip query int false "Rows to skip (default 0)"
// @Param limit query int false "Page size (max 100, default 20)"
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Failure 403 {object} dto.ErrorResponse "Foreign college"
// @Router /students/college [get]
func (c *StudentController) ListCollegeStudents(ctx *gin.Context) {
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
	limit, ok := parseLimit(ctx, dto.DefaultStudentLimit, 1, dto.MaxStudentLimit)
	if !ok {
		return
	}

	students, err := c.studentService.ListByCollege(ctx, actor, collegeID, skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// UpdateStudent applies a partial update to the caller's student profile
// @Summary Update student profile
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 409 {object} dto.ErrorResponse "Roll number already exists"
// @Router /students [patch]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestBody(ctx, err)
		return
	}

	student, err := c.studentService.Update(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// DeleteStudent removes the caller's student profile
// @Summary Delete student profile
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /students [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	actor, ok := mustActor(ctx)
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx, actor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Student profile deleted"},
		Timestamp: time.Now(),
	})
}
