package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campusbridge/campusbridge/internal/app/authz"
	"github.com/campusbridge/campusbridge/internal/app/models"
	"github.com/campusbridge/campusbridge/internal/app/models/dto"
	"github.com/campusbridge/campusbridge/internal/pkg/auth"
)

const actorContextKey = "actor"

// AuthMiddleware validates access tokens and reconstructs the acting user
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth requires a valid bearer token and stores the resulting actor in the
// request context for handlers downstream.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Token expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}

		// ValidateToken guarantees these parse.
		userID, _ := uuid.Parse(claims.Subject)
		collegeID, _ := uuid.Parse(claims.CollegeID)

		c.Set(actorContextKey, authz.Actor{
			ID:        userID,
			Role:      models.Role(claims.Role),
			CollegeID: collegeID,
		})
		c.Next()
	}
}

// GetActor returns the authenticated actor stored by JWTAuth. The boolean is
// false on routes that skipped authentication.
func GetActor(c *gin.Context) (authz.Actor, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return authz.Actor{}, false
	}
	actor, ok := v.(authz.Actor)
	return actor, ok
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
