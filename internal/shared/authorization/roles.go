package authorization

import "fmt"

// UserRole is carried in the user record and the token "role" claim.
type UserRole string

const (
	// RoleAdmin may list accounts in addition to everything RoleUser can do.
	RoleAdmin UserRole = "admin"
	// RoleUser is assigned at registration.
	RoleUser UserRole = "user"
)

var knownRoles = []UserRole{RoleAdmin, RoleUser}

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsAdmin() bool { return r == RoleAdmin }

func (r UserRole) IsValid() bool {
	for _, k := range knownRoles {
		if r == k {
			return true
		}
	}
	return false
}

// ParseRole is the strict form used for operator input such as seed files.
// An empty string means RoleUser.
func ParseRole(s string) (UserRole, error) {
	if s == "" {
		return RoleUser, nil
	}
	if role := UserRole(s); role.IsValid() {
		return role, nil
	}
	return "", fmt.Errorf("unknown role %q, expected one of %v", s, knownRoles)
}

// ParseUserRole reads a role from storage or a token claim. Anything it does
// not recognise is downgraded to RoleUser so a bad value never grants admin.
func ParseUserRole(s string) UserRole {
	role, err := ParseRole(s)
	if err != nil {
		return RoleUser
	}
	return role
}
