package service

import (
	"sort"

	"hrms_backend/internals/constants"
)

// CapabilitySet dibangun per request dari mapping role → izin; jangan di-cache global.
type CapabilitySet map[constants.Capability]struct{}

// NewCapabilitySet mem-parse entri "module:action"; entri tak dikenal dibuang.
func NewCapabilitySet(entries []string) CapabilitySet {
	set := make(CapabilitySet, len(entries))
	for _, e := range entries {
		if c, ok := constants.ParseCapability(e); ok {
			set[c] = struct{}{}
		}
	}
	return set
}

// Can: true kalau (module, action) ada, atau (module, manage) ada.
func (s CapabilitySet) Can(m constants.Module, a constants.Action) bool {
	if s == nil {
		return false
	}
	if _, ok := s[constants.Cap(m, a)]; ok {
		return true
	}
	_, ok := s[constants.Cap(m, constants.ActionManage)]
	return ok
}

func (s CapabilitySet) List() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, c.String())
	}
	sort.Strings(out)
	return out
}

// DefaultEntries: constants.DefaultRolePermissions dalam bentuk string untuk seeder.
func DefaultEntries() map[string][]string {
	out := make(map[string][]string, len(constants.DefaultRolePermissions))
	for role, caps := range constants.DefaultRolePermissions {
		list := make([]string, 0, len(caps))
		for _, c := range caps {
			list = append(list, c.String())
		}
		out[role] = list
	}
	return out
}
