package dto

import (
	"sort"
	"strings"

	"hrms_backend/internals/constants"
	"hrms_backend/internals/features/users/permissions/model"
)

type UpdateRolePermissionsRequest struct {
	Permissions []string `json:"permissions" validate:"required,dive,required,max=64"`
}

// Normalize: lowercase, buang duplikat, urutkan. Entri tidak dikenal dikembalikan terpisah.
func (r *UpdateRolePermissionsRequest) Normalize() (unknown []string) {
	seen := make(map[string]struct{}, len(r.Permissions))
	clean := make([]string, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		p = strings.ToLower(strings.TrimSpace(p))
		c, ok := constants.ParseCapability(p)
		if !ok {
			unknown = append(unknown, p)
			continue
		}
		if _, dup := seen[c.String()]; dup {
			continue
		}
		seen[c.String()] = struct{}{}
		clean = append(clean, c.String())
	}
	sort.Strings(clean)
	r.Permissions = clean
	return unknown
}

type RolePermissionResponse struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

func FromModel(m model.RolePermissionModel) RolePermissionResponse {
	perms := []string(m.Permissions)
	if perms == nil {
		perms = []string{}
	}
	return RolePermissionResponse{Role: m.Role, Permissions: perms}
}
