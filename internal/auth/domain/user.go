package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool { return r == RoleAdmin || r == RoleUser }

// Status governs login eligibility. Only StatusApproved may log in.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

type User struct {
	ID           string
	Name         string
	Email        string // lower-case, trimmed, unique
	PasswordHash string // bcrypt
	Role         Role
	Status       Status

	// TOTPSecret is the sealed seed (nonce:ciphertext:tag); nil when 2FA
	// has never been configured or was disabled.
	TOTPSecret       *string
	TwoFactorEnabled bool
	TOTPConfirmedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeEmail is applied before every insert and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SanitizedUser is the only user shape handed out of the service layer.
type SanitizedUser struct {
	ID               string
	Name             string
	Email            string
	Role             Role
	Status           Status
	TwoFactorEnabled bool
	TOTPConfirmedAt  *time.Time
	CreatedAt        time.Time
}

// Sanitize drops the password hash and sealed secret.
func (u User) Sanitize() SanitizedUser {
	return SanitizedUser{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Role:             u.Role,
		Status:           u.Status,
		TwoFactorEnabled: u.TwoFactorEnabled,
		TOTPConfirmedAt:  u.TOTPConfirmedAt,
		CreatedAt:        u.CreatedAt,
	}
}

// Opt marks a field of a partial update as present.
type Opt[T any] struct {
	Value T
	Set   bool
}

func Some[T any](v T) Opt[T] { return Opt[T]{Value: v, Set: true} }

// UserPatch is a partial update: only fields with Set=true change.
type UserPatch struct {
	Status           Opt[Status]
	TOTPSecret       Opt[*string]
	TwoFactorEnabled Opt[bool]
	TOTPConfirmedAt  Opt[*time.Time]
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return !p.Status.Set && !p.TOTPSecret.Set && !p.TwoFactorEnabled.Set && !p.TOTPConfirmedAt.Set
}

// Apply returns u with the patch applied.
func (p UserPatch) Apply(u User) User {
	if p.Status.Set {
		u.Status = p.Status.Value
	}
	if p.TOTPSecret.Set {
		u.TOTPSecret = p.TOTPSecret.Value
	}
	if p.TwoFactorEnabled.Set {
		u.TwoFactorEnabled = p.TwoFactorEnabled.Value
	}
	if p.TOTPConfirmedAt.Set {
		u.TOTPConfirmedAt = p.TOTPConfirmedAt.Value
	}
	return u
}
