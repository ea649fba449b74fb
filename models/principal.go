// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PrincipalKind classifies the caller of a request.
type PrincipalKind int

const (
	// GuestPrincipal is an unauthenticated caller. It is only produced
	// under the [UserOrGuest] policy.
	GuestPrincipal PrincipalKind = iota
	// UserPrincipal is an authenticated regular user.
	UserPrincipal
	// AdminPrincipal is an authenticated administrator.
	AdminPrincipal
)

func (k PrincipalKind) String() string {
	switch k {
	case UserPrincipal:
		return "user"
	case AdminPrincipal:
		return "admin"
	default:
		return "guest"
	}
}

// Principal is the resolved identity of the caller. It lives for a single
// request and is never persisted.
type Principal struct {
	Kind PrincipalKind
	// ID is empty for guests.
	ID string
}

// Guest returns the guest principal.
func Guest() Principal {
	return Principal{Kind: GuestPrincipal}
}

// NewUserPrincipal returns a principal for the regular user with id.
func NewUserPrincipal(id string) Principal {
	return Principal{Kind: UserPrincipal, ID: id}
}

// NewAdminPrincipal returns a principal for the administrator with id.
func NewAdminPrincipal(id string) Principal {
	return Principal{Kind: AdminPrincipal, ID: id}
}

func (p Principal) IsGuest() bool { return p.Kind == GuestPrincipal }
func (p Principal) IsUser() bool  { return p.Kind == UserPrincipal }
func (p Principal) IsAdmin() bool { return p.Kind == AdminPrincipal }

// Policy is the set of principal kinds an endpoint accepts.
type Policy int

const (
	AdminOnly Policy = iota
	UserOnly
	AdminOrUser
	UserOrGuest
)

// Accepts reports whether a credential of kind k is admissible under p.
// Guests are handled separately because they carry no credential.
func (p Policy) Accepts(k PrincipalKind) bool {
	switch p {
	case AdminOnly:
		return k == AdminPrincipal
	case UserOnly, UserOrGuest:
		return k == UserPrincipal
	case AdminOrUser:
		return k == AdminPrincipal || k == UserPrincipal
	default:
		return false
	}
}

// AllowsGuest reports whether a request without a credential is admitted.
func (p Policy) AllowsGuest() bool {
	return p == UserOrGuest
}

func (p Policy) String() string {
	switch p {
	case AdminOnly:
		return "admin_only"
	case UserOnly:
		return "user_only"
	case AdminOrUser:
		return "admin_or_user"
	case UserOrGuest:
		return "user_or_guest"
	default:
		return "unknown"
	}
}
