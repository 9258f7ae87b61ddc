package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"hrms_backend/internals/helpers/apperr"
)

// FromAppError mengubah error service/transaction menjadi response JSON konsisten.
//   - *apperr.Error  → 409 / 404 / 422 / 503 sesuai Kind
//   - *fiber.Error   → kode & pesan fiber
//   - lainnya        → 500 tanpa bocorin detail internal
func FromAppError(c *fiber.Ctx, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperr.KindConflict:
			return JsonError(c, fiber.StatusConflict, ae.Message)
		case apperr.KindNotFound:
			return JsonError(c, fiber.StatusNotFound, ae.Message)
		case apperr.KindValidation:
			return JsonError(c, fiber.StatusUnprocessableEntity, ae.Message)
		case apperr.KindPersistence:
			log.Printf("[ERROR] persistence: %v", ae)
			return JsonRetryableError(c, "Storage sedang tidak tersedia, silakan coba lagi")
		}
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}

	log.Printf("[ERROR] unhandled: %v", err)
	return JsonError(c, fiber.StatusInternalServerError, "")
}
