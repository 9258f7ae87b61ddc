package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "hrms_backend/internals/helpers"
)

// Tanpa DB: semua kasus di sini harus ditolak sebelum query.
func employeeApp(callerID uuid.UUID, callerRole string) *fiber.App {
	ec := NewEmployeeController(nil)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocUserID, callerID.String())
		c.Locals(helper.LocUserRole, callerRole)
		return c.Next()
	})
	app.Post("/employees", ec.Create)
	app.Patch("/employees/:id", ec.Update)
	return app
}

func send(t *testing.T, app *fiber.App, method, path, body string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestHRCannotCreateAdmin(t *testing.T) {
	app := employeeApp(uuid.New(), "hr")
	body := `{"employee_code":"EMP-9","full_name":"Eve","email":"eve@example.com","password":"supersecret","role":"admin"}`

	assert.Equal(t, http.StatusForbidden, send(t, app, http.MethodPost, "/employees", body))
}

func TestHRCannotPromoteToAdmin(t *testing.T) {
	hr := uuid.New()
	app := employeeApp(hr, "hr")

	assert.Equal(t, http.StatusForbidden,
		send(t, app, http.MethodPatch, "/employees/"+hr.String(), `{"role":"admin"}`))
	assert.Equal(t, http.StatusForbidden,
		send(t, app, http.MethodPatch, "/employees/"+uuid.NewString(), `{"role":"ADMIN"}`))
}

func TestNonAdminCannotChangeOwnRole(t *testing.T) {
	hr := uuid.New()
	app := employeeApp(hr, "hr")

	assert.Equal(t, http.StatusForbidden,
		send(t, app, http.MethodPatch, "/employees/"+hr.String(), `{"role":"manager"}`))
}

func TestEmployeeValidationRunsBeforeRoleCheck(t *testing.T) {
	app := employeeApp(uuid.New(), "hr")

	assert.Equal(t, http.StatusUnprocessableEntity,
		send(t, app, http.MethodPatch, "/employees/"+uuid.NewString(), `{"role":"owner"}`))
	assert.Equal(t, http.StatusBadRequest,
		send(t, app, http.MethodPatch, "/employees/not-a-uuid", `{"role":"manager"}`))
}
