package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "hrms_backend/internals/helpers"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func jwtApp(opts AuthJWTOpts) *fiber.App {
	app := fiber.New()
	app.Use(AuthJWT(opts))
	app.Get("/me", func(c *fiber.Ctx) error {
		id, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		return c.SendString(id.String() + "|" + helper.GetRoleFromToken(c))
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthJWTAcceptsValidToken(t *testing.T) {
	id := uuid.New()
	tok := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"id": id.String(), "role": "HR", "exp": time.Now().Add(time.Hour).Unix(),
	})

	resp := doGet(t, jwtApp(AuthJWTOpts{Secret: testSecret}), tok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	buf := make([]byte, 128)
	n, _ := resp.Body.Read(buf)
	assert.Equal(t, id.String()+"|hr", string(buf[:n]))
}

func TestAuthJWTRejects(t *testing.T) {
	id := uuid.New().String()
	expired := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"id": id, "exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := signToken(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{
		"id": id, "exp": time.Now().Add(time.Hour).Unix(),
	})
	noID := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	app := jwtApp(AuthJWTOpts{Secret: testSecret})
	for name, tok := range map[string]string{"missing": "", "expired": expired, "wrong key": wrongKey, "no id": noID} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, doGet(t, app, tok).StatusCode)
		})
	}
}

func TestAuthJWTBlacklistAndInactive(t *testing.T) {
	id := uuid.New()
	tok := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"id": id.String(), "exp": time.Now().Add(time.Hour).Unix(),
	})

	revoked := jwtApp(AuthJWTOpts{
		Secret:           testSecret,
		BlacklistChecker: func(context.Context, string) (bool, error) { return true, nil },
	})
	assert.Equal(t, http.StatusUnauthorized, doGet(t, revoked, tok).StatusCode)

	inactive := jwtApp(AuthJWTOpts{
		Secret: testSecret,
		AccountChecker: func(_ context.Context, got uuid.UUID) (AccountState, error) {
			return AccountState{Active: got != id, Role: "employee"}, nil
		},
	})
	assert.Equal(t, http.StatusForbidden, doGet(t, inactive, tok).StatusCode)
}

func TestAuthJWTRoleComesFromAccountNotClaim(t *testing.T) {
	id := uuid.New()
	tok := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"id": id.String(), "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	})

	demoted := jwtApp(AuthJWTOpts{
		Secret: testSecret,
		AccountChecker: func(context.Context, uuid.UUID) (AccountState, error) {
			return AccountState{Active: true, Role: "HR"}, nil
		},
	})
	resp := doGet(t, demoted, tok)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	buf := make([]byte, 128)
	n, _ := resp.Body.Read(buf)
	assert.Equal(t, id.String()+"|hr", string(buf[:n]))

	failing := jwtApp(AuthJWTOpts{
		Secret: testSecret,
		AccountChecker: func(context.Context, uuid.UUID) (AccountState, error) {
			return AccountState{}, errors.New("db down")
		},
	})
	assert.Equal(t, http.StatusServiceUnavailable, doGet(t, failing, tok).StatusCode)
}
