package article

import (
	"fmt"

	"article-cms/internal/accesscontrol"
)

// FieldCapabilities answers view and edit questions about single fields for
// one caller. It is the only access-control surface the field decision needs,
// which keeps the decision testable without a full policy.
type FieldCapabilities interface {
	CanViewField(name string) accesscontrol.Decision
	CanEditField(name string) accesscontrol.Decision
}

// FieldAction is the outcome of a field change decision.
type FieldAction int

const (
	// FieldSkip means the received value must not be applied. It is not an
	// error: clients may round-trip read-only fields they are allowed to see.
	FieldSkip FieldAction = iota
	// FieldApply means the received value should be copied onto the entity.
	FieldApply
)

// DecideFieldChange is the pure decision function over one field of a patch
// or create payload.
//
// If the caller may view the stored field and the received value equals the
// stored one, the change is skipped without error: resubmitting a value the
// caller can already see is harmless. The equality shortcut is never taken
// for a field the caller cannot view, because a 403-vs-200 difference would
// confirm the field's current value to a caller who must not see it. In
// every other case the edit decision rules: apply when allowed, otherwise
// an AccessDeniedError naming the field, with the policy reason appended
// when one was given.
func DecideFieldChange(caps FieldCapabilities, name, stored, received string) (FieldAction, error) {
	if view := caps.CanViewField(name); view.Allowed && received == stored {
		return FieldSkip, nil
	}

	edit := caps.CanEditField(name)
	if edit.Allowed {
		return FieldApply, nil
	}

	msg := fmt.Sprintf("access denied on field %s", name)
	if edit.Reason != "" {
		msg = fmt.Sprintf("%s: %s", msg, edit.Reason)
	}
	return FieldSkip, &AccessDeniedError{Message: msg}
}

// accountCapabilities adapts an account plus a policy to FieldCapabilities
// for one entity type.
type accountCapabilities struct {
	acct       accesscontrol.Account
	policy     accesscontrol.Policy
	entityType string
}

func (c accountCapabilities) CanViewField(name string) accesscontrol.Decision {
	return c.policy.FieldAccess(c.acct, accesscontrol.OpView, c.entityType, name)
}

func (c accountCapabilities) CanEditField(name string) accesscontrol.Decision {
	return c.policy.FieldAccess(c.acct, accesscontrol.OpEdit, c.entityType, name)
}
