package auth

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authRepo "hrms_backend/internals/features/users/auth/repository"
	helper "hrms_backend/internals/helpers"
)

type AuthJWTOpts struct {
	Secret              string
	BlacklistChecker    func(ctx context.Context, rawToken string) (bool, error) // true = token sudah di-revoke
	AccountChecker      func(ctx context.Context, employeeID uuid.UUID) (AccountState, error)
	AllowCookieFallback bool // pakai cookie access_token jika tidak ada Bearer
}

// AccountState: kondisi employee saat ini di DB. Role di sini menang atas claim token,
// jadi perubahan role/nonaktif langsung berlaku tanpa menunggu token expired.
type AccountState struct {
	Active bool
	Role   string
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Token: Authorization: Bearer xxx (atau cookie)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Blacklist
		if o.BlacklistChecker != nil {
			black, err := o.BlacklistChecker(c.UserContext(), raw)
			if err != nil {
				log.Printf("[ERROR] cek blacklist: %v", err)
				return fiber.NewError(fiber.StatusServiceUnavailable, "Gagal memverifikasi token")
			}
			if black {
				return fiber.NewError(fiber.StatusUnauthorized, "Token revoked")
			}
		}

		// 3) Parse + verifikasi algoritma (exp ikut divalidasi oleh MapClaims)
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}
		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		// 4) user_id: id / sub / user_id
		idStr := firstNonEmpty(strClaim(claims, "id"), strClaim(claims, "sub"), strClaim(claims, "user_id"))
		userID, err := uuid.Parse(idStr)
		if err != nil || userID == uuid.Nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		// 5) Akun masih aktif? role diambil dari baris employee
		role := strClaim(claims, "role")
		if o.AccountChecker != nil {
			acc, err := o.AccountChecker(c.UserContext(), userID)
			if err != nil {
				log.Printf("[ERROR] cek employee aktif: %v", err)
				return fiber.NewError(fiber.StatusServiceUnavailable, "Gagal memverifikasi akun")
			}
			if !acc.Active {
				return fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
			}
			role = acc.Role
		}

		c.Locals("jwt_claims", claims)
		c.Locals(helper.LocRawToken, raw)
		c.Locals(helper.LocUserID, userID.String())
		c.Locals(helper.LocUserRole, strings.ToLower(strings.TrimSpace(role)))
		if name := strClaim(claims, "user_name"); name != "" {
			c.Locals(helper.LocUserName, name)
		}

		return c.Next()
	}
}

// DefaultAuthJWT: AuthJWT yang dicek ke tabel token_blacklist & employees.
func DefaultAuthJWT(db *gorm.DB, secret string) fiber.Handler {
	return AuthJWT(AuthJWTOpts{
		Secret: secret,
		BlacklistChecker: func(ctx context.Context, raw string) (bool, error) {
			return authRepo.IsTokenBlacklisted(ctx, db, raw, secret)
		},
		AccountChecker: func(ctx context.Context, id uuid.UUID) (AccountState, error) {
			role, active, err := authRepo.FindEmployeeAccess(ctx, db, id)
			return AccountState{Active: active, Role: role}, err
		},
		AllowCookieFallback: true,
	})
}

func strClaim(claims jwt.MapClaims, key string) string {
	if s, ok := claims[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
