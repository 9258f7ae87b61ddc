package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ValidationError: error validator.v10 → 422 per-field, selain itu 400.
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		name := fieldName(fe)
		fields[name] = append(fields[name], fe.Tag())
	}
	return JsonValidationError(c, fields)
}

// pakai nama json/query kalau validator sudah di-register RegisterTagNameFunc
func fieldName(fe validator.FieldError) string {
	if n := strings.TrimSpace(fe.Field()); n != "" {
		return n
	}
	return fe.StructField()
}
