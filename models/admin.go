package models

import "time"

// Capability is a single administrative permission bit.
type Capability int

const (
	// CapabilitySuperAdmin grants every capability and the management of
	// other administrators.
	CapabilitySuperAdmin Capability = iota
	CapabilityManageUsers
	CapabilityManagePosts
)

func (c Capability) String() string {
	switch c {
	case CapabilitySuperAdmin:
		return "super_admin"
	case CapabilityManageUsers:
		return "manage_users"
	case CapabilityManagePosts:
		return "manage_posts"
	default:
		return "unknown"
	}
}

// AdminPermissions is the permission set of an administrator.
type AdminPermissions struct {
	SuperAdmin  bool `json:"super_admin" bson:"super_admin"`
	ManageUsers bool `json:"manage_users" bson:"manage_users"`
	ManagePosts bool `json:"manage_posts" bson:"manage_posts"`
}

// Has reports whether the permission set grants c. A super admin holds
// every capability.
func (p AdminPermissions) Has(c Capability) bool {
	if p.SuperAdmin {
		return true
	}

	switch c {
	case CapabilityManageUsers:
		return p.ManageUsers
	case CapabilityManagePosts:
		return p.ManagePosts
	default:
		return false
	}
}

// Admin is an administrator account.
type Admin struct {
	ID           string           `json:"id" bson:"_id"`
	Username     string           `json:"username" bson:"username"`
	PasswordHash string           `json:"-" bson:"password"`
	Email        string           `json:"email,omitempty" bson:"email,omitempty"`
	Permissions  AdminPermissions `json:"permissions" bson:"permissions"`
	CreateDate   time.Time        `json:"create_date" bson:"create_date"`
	UpdateDate   time.Time        `json:"update_date" bson:"update_date"`
}

// AdminCreateRequest is the body of the create-admin operation.
type AdminCreateRequest struct {
	Username    string           `json:"username"`
	Password    string           `json:"password"`
	Email       string           `json:"email,omitempty"`
	Permissions AdminPermissions `json:"permissions"`
}

// AdminUpdate is a partial update of an administrator. Nil fields are left
// untouched.
type AdminUpdate struct {
	Username    *string           `json:"username,omitempty"`
	Password    *string           `json:"password,omitempty"`
	Email       *string           `json:"email,omitempty"`
	Permissions *AdminPermissions `json:"permissions,omitempty"`
}

// IsEmpty reports whether the update carries no field.
func (u AdminUpdate) IsEmpty() bool {
	return u.Username == nil && u.Password == nil && u.Email == nil && u.Permissions == nil
}

// AdminPatch is the store-level partial update of an administrator with the
// password already hashed.
type AdminPatch struct {
	Username     *string
	PasswordHash *string
	Email        *string
	Permissions  *AdminPermissions
	UpdateDate   time.Time
}
