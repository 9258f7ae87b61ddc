package constants

import "strings"

// Module & Action membentuk relasi izin yang terbatas (bukan objek dinamis).
type Module string

const (
	ModuleEmployee     Module = "employee"
	ModuleAttendance   Module = "attendance"
	ModuleLeave        Module = "leave"
	ModulePayroll      Module = "payroll"
	ModuleRole         Module = "role"
	ModuleOrganization Module = "organization"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	// ActionManage mencakup semua action lain pada modul yang sama.
	ActionManage Action = "manage"
)

var (
	Modules = []Module{ModuleEmployee, ModuleAttendance, ModuleLeave, ModulePayroll, ModuleRole, ModuleOrganization}
	Actions = []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete, ActionManage}
)

type Capability struct {
	Module Module
	Action Action
}

func Cap(m Module, a Action) Capability { return Capability{Module: m, Action: a} }

// String: "module:action", format yang disimpan di role_permissions.
func (c Capability) String() string { return string(c.Module) + ":" + string(c.Action) }

// ParseCapability menolak modul/action di luar daftar.
func ParseCapability(s string) (Capability, bool) {
	mod, act, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")
	if !ok {
		return Capability{}, false
	}
	m, a := Module(strings.TrimSpace(mod)), Action(strings.TrimSpace(act))
	if !knownModule(m) || !knownAction(a) {
		return Capability{}, false
	}
	return Capability{Module: m, Action: a}, true
}

func knownModule(m Module) bool {
	for _, x := range Modules {
		if x == m {
			return true
		}
	}
	return false
}

func knownAction(a Action) bool {
	for _, x := range Actions {
		if x == a {
			return true
		}
	}
	return false
}

// DefaultRolePermissions dipakai seeder; sumber otoritatif tetap tabel role_permissions.
var DefaultRolePermissions = map[string][]Capability{
	RoleEmployee: {
		Cap(ModuleAttendance, ActionRead),
		Cap(ModuleAttendance, ActionCreate),
		Cap(ModuleLeave, ActionRead),
		Cap(ModuleLeave, ActionCreate),
		Cap(ModulePayroll, ActionRead),
		Cap(ModuleOrganization, ActionRead),
	},
	RoleManager: {
		Cap(ModuleAttendance, ActionRead),
		Cap(ModuleAttendance, ActionCreate),
		Cap(ModuleEmployee, ActionRead),
		Cap(ModuleLeave, ActionManage),
		Cap(ModulePayroll, ActionRead),
		Cap(ModuleOrganization, ActionRead),
	},
	RoleHR: {
		Cap(ModuleAttendance, ActionManage),
		Cap(ModuleEmployee, ActionManage),
		Cap(ModuleLeave, ActionManage),
		Cap(ModulePayroll, ActionManage),
		Cap(ModuleOrganization, ActionRead),
	},
	RoleAdmin: {
		Cap(ModuleAttendance, ActionManage),
		Cap(ModuleEmployee, ActionManage),
		Cap(ModuleLeave, ActionManage),
		Cap(ModulePayroll, ActionManage),
		Cap(ModuleRole, ActionManage),
		Cap(ModuleOrganization, ActionManage),
	},
}
