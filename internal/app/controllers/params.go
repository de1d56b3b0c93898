package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campusbridge/campusbridge/internal/app/authz"
	"github.com/campusbridge/campusbridge/internal/app/models/dto"
	"github.com/campusbridge/campusbridge/internal/middleware"
)

// mustActor returns the authenticated actor. Routes behind JWTAuth always
// have one; a miss means a route was wired without the middleware.
func mustActor(ctx *gin.Context) (authz.Actor, bool) {
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
	}
	return actor, ok
}

// parseUUIDParam parses a path parameter as a UUID.
func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name).WithField(name)))
		return uuid.Nil, false
	}
	return id, true
}

// parseCollegeIDQuery parses the optional collegeId query parameter, falling
// back to the given default when absent.
func parseCollegeIDQuery(ctx *gin.Context, fallback uuid.UUID) (uuid.UUID, bool) {
	raw := ctx.Query("collegeId")
	if raw == "" {
		return fallback, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid collegeId").WithField("collegeId")))
		return uuid.Nil, false
	}
	return id, true
}

// parseLimit parses the limit query parameter, clamping nothing: an out of
// range value is a client error, not something to silently correct.
func parseLimit(ctx *gin.Context, def, min, max int) (int, bool) {
	raw := ctx.DefaultQuery("limit", strconv.Itoa(def))
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < min || limit > max {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed,
				"limit must be between "+strconv.Itoa(min)+" and "+strconv.Itoa(max)).WithField("limit")))
		return 0, false
	}
	return limit, true
}

// parseSkip parses the skip query parameter for offset-paginated listings.
func parseSkip(ctx *gin.Context) (int, bool) {
	raw := ctx.DefaultQuery("skip", "0")
	skip, err := strconv.Atoi(raw)
	if err != nil || skip < 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "skip must be a non-negative integer").WithField("skip")))
		return 0, false
	}
	return skip, true
}

func badRequestBody(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body").WithDetails(err.Error())))
}
