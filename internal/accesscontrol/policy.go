package accesscontrol

import "fmt"

// Operations an account can perform on an entity or field.
const (
	OpView   = "view"
	OpCreate = "create"
	OpEdit   = "edit"
	OpDelete = "delete"
)

// Decision is the result of an access check. Reason is optional and, when
// present on a denial, is safe to surface to the caller.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allowed returns a positive decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a negative decision carrying the given reason.
func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Policy answers entity-level and field-level access questions for an
// account. Implementations must be safe for concurrent use.
type Policy interface {
	// EntityAccess decides whether the account may perform op on entities
	// of the given content type.
	EntityAccess(acct Account, op, entityType string) Decision

	// FieldAccess decides whether the account may perform op (view or edit)
	// on the named field of the given content type.
	FieldAccess(acct Account, op, entityType, field string) Decision
}

// permissionForOp maps an entity operation to the permission that grants it.
var permissionForOp = map[string]string{
	OpView:   PermAccessContent,
	OpCreate: PermCreateArticle,
	OpEdit:   PermEditArticle,
	OpDelete: PermDeleteArticle,
}

// RolePolicy is the default Policy. Entity access follows the permission
// set on the account; field access additionally protects system fields
// (the created timestamp is editable by administrators only).
type RolePolicy struct {
	// AdminOnlyFields are fields only the admin role may edit.
	AdminOnlyFields []string
}

// NewRolePolicy returns the default policy with the created field protected.
func NewRolePolicy() *RolePolicy {
	return &RolePolicy{AdminOnlyFields: []string{"created"}}
}

// EntityAccess implements Policy.
func (p *RolePolicy) EntityAccess(acct Account, op, entityType string) Decision {
	perm, ok := permissionForOp[op]
	if !ok {
		return Deny(fmt.Sprintf("unknown operation %q", op))
	}
	if !acct.HasPermission(perm) {
		return Deny(fmt.Sprintf("the %q permission is required", perm))
	}
	return Allow()
}

// FieldAccess implements Policy. Viewing a field requires the content view
// permission. Editing a field requires the entity edit permission (create
// permission also suffices, so that authors can populate new entities),
// and admin-only fields are restricted to the admin role.
func (p *RolePolicy) FieldAccess(acct Account, op, entityType, field string) Decision {
	switch op {
	case OpView:
		if !acct.HasPermission(PermAccessContent) {
			return Deny(fmt.Sprintf("the %q permission is required", PermAccessContent))
		}
		return Allow()
	case OpEdit:
		if !acct.HasPermission(PermEditArticle) && !acct.HasPermission(PermCreateArticle) {
			return Deny(fmt.Sprintf("the %q permission is required", PermEditArticle))
		}
		for _, protected := range p.AdminOnlyFields {
			if field == protected && acct.Role != RoleAdmin {
				return Deny(fmt.Sprintf("the %s field can only be changed by administrators", field))
			}
		}
		return Allow()
	}
	return Deny(fmt.Sprintf("unknown field operation %q", op))
}
