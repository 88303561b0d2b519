package service

import (
	"strings"

	"voltmarket/internal/domain/entity"
)

// RoleSet is the canonical authorization view derived from verified token
// claims and the profile document. It is recomputed from its inputs on every
// request and holds no authoritative state of its own.
type RoleSet struct {
	Roles   []string
	IsAdmin bool
}

// ResolveRoles merges claim roles and profile roles into one set.
//
// Admin status comes exclusively from the provider-signed `admin` claim and
// must be exactly boolean true; a string "true", a number, or a missing claim
// all resolve to false. Any literal "admin" role string is stripped from the
// merged list so a writable profile field can never grant elevation.
func ResolveRoles(claims map[string]interface{}, account *entity.Account) RoleSet {
	rs := RoleSet{}

	if claims != nil {
		if admin, ok := claims["admin"].(bool); ok && admin {
			rs.IsAdmin = true
		}
	}

	seen := make(map[string]bool)
	add := func(role string) {
		lower := strings.ToLower(role)
		if role == "" || lower == "admin" || seen[lower] {
			return
		}
		seen[lower] = true
		rs.Roles = append(rs.Roles, role)
	}

	for _, role := range claimRoles(claims) {
		add(role)
	}
	if account != nil {
		for _, role := range account.RolesList {
			add(role)
		}
	}

	return rs
}

// claimRoles normalizes the `roles` claim, which providers deliver either as
// a single string or as a list.
func claimRoles(claims map[string]interface{}) []string {
	if claims == nil {
		return nil
	}
	switch v := claims["roles"].(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []interface{}:
		roles := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				roles = append(roles, s)
			}
		}
		return roles
	default:
		return nil
	}
}

// HasRole reports role membership, case-insensitively. Admin satisfies every
// role check without consulting the list.
func (rs RoleSet) HasRole(name string) bool {
	if rs.IsAdmin {
		return true
	}
	for _, role := range rs.Roles {
		if strings.EqualFold(role, name) {
			return true
		}
	}
	return false
}

func (rs RoleSet) HasAnyRole(names ...string) bool {
	if rs.IsAdmin {
		return true
	}
	for _, name := range names {
		if rs.HasRole(name) {
			return true
		}
	}
	return false
}
