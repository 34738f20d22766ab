// Package accesscontrol provides the caller identity model and the access
// policy used by the article endpoints. Decisions are yes/no answers with an
// optional human-readable reason that can be surfaced to the caller.
package accesscontrol

// Role constants define the available user roles in the system.
// These roles are used in JWT claims and permission checks.
const (
	// RoleAdmin has full access to every operation and field
	RoleAdmin = "admin"
	// RoleEditor can create and edit articles but not administer protected fields
	RoleEditor = "editor"
	// RoleViewer has read-only access
	RoleViewer = "viewer"
)

// Permission strings grantable to accounts.
const (
	PermAccessContent = "access content"
	PermCreateArticle = "create article content"
	PermEditArticle   = "edit any article content"
	PermDeleteArticle = "delete any article content"
)

// RolePermissions maps each role to the permissions it grants.
var RolePermissions = map[string][]string{
	RoleAdmin: {
		PermAccessContent,
		PermCreateArticle,
		PermEditArticle,
		PermDeleteArticle,
	},
	RoleEditor: {
		PermAccessContent,
		PermCreateArticle,
		PermEditArticle,
	},
	RoleViewer: {
		PermAccessContent,
	},
}

// Account is the acting caller identity for one request.
// It is built by the auth middleware from validated JWT claims and carries
// the permission set derived from the account's role.
type Account struct {
	Username    string
	Role        string
	permissions map[string]struct{}
}

// NewAccount builds an account with an explicit permission list.
// Used by tests and by policies that grant permissions outside the role map.
func NewAccount(username, role string, permissions []string) Account {
	set := make(map[string]struct{}, len(permissions))
	for _, p := range permissions {
		set[p] = struct{}{}
	}
	return Account{Username: username, Role: role, permissions: set}
}

// AccountForRole builds an account carrying the permissions of the given
// role. Unknown roles yield an account with no permissions.
func AccountForRole(username, role string) Account {
	return NewAccount(username, role, RolePermissions[role])
}

// HasPermission reports whether the account holds the named permission.
func (a Account) HasPermission(perm string) bool {
	_, ok := a.permissions[perm]
	return ok
}
