package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	employeeModel "hrms_backend/internals/features/users/employees/model"
)

func TestIssueAccessTokenClaims(t *testing.T) {
	emp := employeeModel.EmployeeModel{ID: uuid.New(), Role: "hr", FullName: "Sita"}
	now := time.Now()

	tok, exp, err := IssueAccessToken("s3cret", emp, 30*time.Minute, now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(30*time.Minute), exp, time.Second)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return []byte("s3cret"), nil })
	require.NoError(t, err)
	assert.Equal(t, emp.ID.String(), claims["id"])
	assert.Equal(t, "hr", claims["role"])
	assert.Equal(t, exp.Unix(), TokenExpiry(claims, time.Time{}).Unix())
}

func TestIssueAccessTokenNeedsSecret(t *testing.T) {
	_, _, err := IssueAccessToken("", employeeModel.EmployeeModel{}, time.Hour, time.Now())
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestTokenExpiryFallback(t *testing.T) {
	fb := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, fb, TokenExpiry(jwt.MapClaims{}, fb))
	assert.Equal(t, fb, TokenExpiry(nil, fb))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)

	assert.NoError(t, CheckPasswordHash(hash, "rahasia123"))
	assert.ErrorIs(t, CheckPasswordHash(hash, "salah"), ErrInvalidCredentials)
}
