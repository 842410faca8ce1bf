package model

import "strings"

// Role is the dashboard audience.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCompany Role = "company"
	RoleUser    Role = "user"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCompany, RoleUser:
		return true
	}
	return false
}

// RoleInput is what the login flow knows about the caller.
type RoleInput struct {
	Username     string // Login name
	IsAdmin      bool
	CompanyName  string
	UserUsername string
	UserName     string
	MemberName   string
	SessionRole  string // Role remembered by the client session
	HasUserData  bool
}

// DetermineRole resolves the caller role. Earlier rules take precedence.
func DetermineRole(in RoleInput) Role {
	if in.Username == "admin" {
		return RoleAdmin
	}
	if in.IsAdmin {
		return RoleAdmin
	}
	if in.CompanyName != "" && in.UserUsername == "" {
		return RoleCompany
	}
	if in.UserUsername != "" || in.UserName != "" || in.MemberName != "" {
		return RoleUser
	}
	if r := Role(in.SessionRole); r.IsValid() {
		return r
	}
	if in.HasUserData {
		return RoleUser
	}
	return RoleAdmin
}

// Scope restricts what a caller sees.
type Scope struct {
	Role        Role
	Username    string
	Name        string
	Member      string
	CompanyName string
}

// IsAdmin reports whether the scope sees everything.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// MemberName returns the name a user scope filters on: the first non-empty
// of Username, Name, Member. ok is false when that name is unusable.
func (s Scope) MemberName() (name string, ok bool) {
	for _, n := range []string{s.Username, s.Name, s.Member} {
		if n != "" {
			name = n
			break
		}
	}
	switch name {
	case "", "undefined", "Unknown User":
		return "", false
	}
	return name, true
}

// MatchesCompany reports whether company equals the scope company, ignoring case.
func (s Scope) MatchesCompany(company Value) bool {
	return company.Present() && s.CompanyName != "" && strings.EqualFold(company.String(), s.CompanyName)
}
