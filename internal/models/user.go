package models

import (
	"log"
	"strings"
)

// Role is the tagged user role. It is resolved once, when a session is
// established, and never re-derived afterwards.
type Role string

const (
	RoleResident Role = "resident"
	RoleDriver   Role = "driver"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleResident, RoleDriver, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  Role   `json:"role,omitempty"` // "resident", "driver" or "admin"
}

// DisplayName returns the user's name, or "My" when the account has none.
// Resident example rows are prefixed with it ("My Home - Westlands").
func (u *User) DisplayName() string {
	if u == nil || strings.TrimSpace(u.Name) == "" {
		return "My"
	}
	return u.Name
}

// ResolveRole picks the role from the server-issued field. When the server
// sent nothing usable it falls back to looking for "driver" or "admin" inside
// the email address.
//
// The email fallback only ever drives cosmetic UI branching. It is not an
// authorization decision and nothing may be gated on it.
func ResolveRole(role, email string) Role {
	r := Role(strings.ToLower(strings.TrimSpace(role)))
	if r.Valid() {
		return r
	}

	lowered := strings.ToLower(email)
	switch {
	case strings.Contains(lowered, "driver"):
		log.Printf("⚠️  No server role for %s, using email heuristic: driver", email)
		return RoleDriver
	case strings.Contains(lowered, "admin"):
		log.Printf("⚠️  No server role for %s, using email heuristic: admin", email)
		return RoleAdmin
	}
	return RoleResident
}

// RegisterRequest is the body of POST /api/auth/register
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is what the upstream answers on a successful login.
// User is a pointer so a response without a user object can be told apart.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Session is the authenticated identity held by the session store.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
