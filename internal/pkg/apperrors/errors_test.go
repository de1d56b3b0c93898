package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCustomErrorUnwrapsToSentinel(t *testing.T) {
	err := NewForbiddenError("not authorized to perform delete on college resource")

	require.ErrorIs(t, err, ErrPermissionDenied)
	require.Equal(t, "not authorized to perform delete on college resource", err.Error())
}

func TestCustomErrorFallsBackToSentinelMessage(t *testing.T) {
	err := NewCustomError(ErrPostNotFound, "")
	require.Equal(t, "post not found", err.Error())
}

func TestWrappedSentinelSurvivesFmtErrorf(t *testing.T) {
	err := fmt.Errorf("failed to get post: %w", ErrPostNotFound)
	require.ErrorIs(t, err, ErrPostNotFound)
	require.NotErrorIs(t, err, ErrCommentNotFound)
}

func TestIsMatchesAnyOfList(t *testing.T) {
	err := NewBadRequestError("invalid payload")

	require.True(t, Is(err, ErrBadRequest))
	require.True(t, Is(err, ErrValidationFailed, ErrBadRequest))
	require.False(t, Is(err, ErrValidationFailed, ErrConflict))
}

func TestWithDetails(t *testing.T) {
	err := NewCustomError(ErrBadRequest, "limit out of range").
		WithDetails(map[string]interface{}{"limit": 500})

	require.ErrorIs(t, err, ErrBadRequest)
	require.Equal(t, 500, err.Details["limit"])

	var custom *CustomError
	require.True(t, errors.As(error(err), &custom))
}
