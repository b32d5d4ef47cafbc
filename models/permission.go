package models

import "errors"

type Permission string

const (
	PermissionAdmin            Permission = "ADMIN"
	PermissionUser             Permission = "USER"
	PermissionItemCreate       Permission = "ITEMCREATE"
	PermissionItemUpdate       Permission = "ITEMUPDATE"
	PermissionItemDelete       Permission = "ITEMDELETE"
	PermissionPermissionUpdate Permission = "PERMISSIONUPDATE"
)

var allPermissions = []Permission{
	PermissionAdmin,
	PermissionUser,
	PermissionItemCreate,
	PermissionItemUpdate,
	PermissionItemDelete,
	PermissionPermissionUpdate,
}

// ParsePermission maps a wire string to a known Permission.
func ParsePermission(s string) (Permission, error) {
	for _, p := range allPermissions {
		if string(p) == s {
			return p, nil
		}
	}
	return "", errors.New("invalid permission: " + s)
}

// HasAnyPermission reports whether the user holds at least one of the
// required permissions. Holding any one is sufficient.
func (u User) HasAnyPermission(required ...Permission) bool {
	for _, need := range required {
		for _, have := range u.Permissions {
			if have == need {
				return true
			}
		}
	}
	return false
}

// CanModify is the combined rule for acting on an owned resource: the owner
// may always act, anyone else needs one of the listed permissions.
func (u User) CanModify(ownerID string, required ...Permission) bool {
	if ownerID == u.ID {
		return true
	}
	return u.HasAnyPermission(required...)
}
