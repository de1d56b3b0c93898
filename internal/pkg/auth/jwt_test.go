package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/campusbridge/campusbridge/internal/app/models"
)

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: exp,
		TokenIssuer:    "campusbridge.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{
		ID:        uuid.New(),
		CollegeID: uuid.New(),
		Email:     "alumni@college.edu",
		Role:      models.RoleAlumni,
	}

	token, expiresIn, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, user.ID.String(), claims.Subject)
	require.Equal(t, string(models.RoleAlumni), claims.Role)
	require.Equal(t, user.CollegeID.String(), claims.CollegeID)
	require.Equal(t, "campusbridge.test", claims.Issuer)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := testService(-time.Minute)
	user := &models.User{ID: uuid.New(), CollegeID: uuid.New(), Role: models.RoleStudent}

	token, _, err := svc.GenerateToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	user := &models.User{ID: uuid.New(), CollegeID: uuid.New(), Role: models.RoleStudent}

	token, _, err := testService(time.Hour).GenerateToken(user)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:      "a-different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campusbridge.test",
	})
	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := testService(time.Hour).ValidateToken("not.a.token")
	require.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("abc.def.ghi")
	require.ErrorIs(t, err, ErrInvalidFormat)
}
