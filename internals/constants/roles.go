package constants

import "fmt"

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleHR       = "hr"
	RoleAdmin    = "admin"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyHRCanAccess     = "Hanya HR atau admin yang boleh mengakses fitur %s."
	ErrMissingCapability   = "Akses ditolak: butuh izin %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorHR(feature string) string {
	return fmt.Sprintf(ErrOnlyHRCanAccess, feature)
}

func CapabilityError(c Capability) string {
	return fmt.Sprintf(ErrMissingCapability, c.String())
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleEmployee,
		RoleManager,
		RoleHR,
		RoleAdmin,
	}

	HRAndAbove = []string{
		RoleHR,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsKnownRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
