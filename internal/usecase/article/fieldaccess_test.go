package article_test

import (
	"errors"
	"strings"
	"testing"

	"article-cms/internal/accesscontrol"
	"article-cms/internal/usecase/article"
)

type stubCaps struct {
	view accesscontrol.Decision
	edit accesscontrol.Decision

	editCalls int
}

func (s *stubCaps) CanViewField(string) accesscontrol.Decision { return s.view }

func (s *stubCaps) CanEditField(string) accesscontrol.Decision {
	s.editCalls++
	return s.edit
}

func TestDecideFieldChange(t *testing.T) {
	tests := []struct {
		name       string
		view       accesscontrol.Decision
		edit       accesscontrol.Decision
		stored     string
		received   string
		wantAction article.FieldAction
		wantDenied bool
	}{
		{
			name:       "viewable and unchanged is skipped without edit access",
			view:       accesscontrol.Allow(),
			edit:       accesscontrol.Deny("read only"),
			stored:     "same",
			received:   "same",
			wantAction: article.FieldSkip,
		},
		{
			name:       "viewable and changed applies when editable",
			view:       accesscontrol.Allow(),
			edit:       accesscontrol.Allow(),
			stored:     "old",
			received:   "new",
			wantAction: article.FieldApply,
		},
		{
			name:       "viewable and changed is denied without edit access",
			view:       accesscontrol.Allow(),
			edit:       accesscontrol.Deny("read only"),
			stored:     "old",
			received:   "new",
			wantDenied: true,
		},
		{
			name:       "hidden field is denied even when the value matches",
			view:       accesscontrol.Deny("hidden"),
			edit:       accesscontrol.Deny("hidden"),
			stored:     "secret",
			received:   "secret",
			wantDenied: true,
		},
		{
			name:       "hidden but editable field applies even when unchanged",
			view:       accesscontrol.Deny("hidden"),
			edit:       accesscontrol.Allow(),
			stored:     "same",
			received:   "same",
			wantAction: article.FieldApply,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := &stubCaps{view: tt.view, edit: tt.edit}
			action, err := article.DecideFieldChange(caps, "title", tt.stored, tt.received)

			if tt.wantDenied {
				var denied *article.AccessDeniedError
				if !errors.As(err, &denied) {
					t.Fatalf("expected AccessDeniedError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if action != tt.wantAction {
				t.Errorf("action = %v, want %v", action, tt.wantAction)
			}
		})
	}
}

// A viewable field resubmitted with its current value must short-circuit
// before the edit check runs: the skip must not depend on edit access.
func TestDecideFieldChangeUnchangedSkipsEditCheck(t *testing.T) {
	caps := &stubCaps{view: accesscontrol.Allow(), edit: accesscontrol.Deny("read only")}

	action, err := article.DecideFieldChange(caps, "created", "2024-01-01T00:00:00Z", "2024-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if action != article.FieldSkip {
		t.Errorf("action = %v, want FieldSkip", action)
	}
	if caps.editCalls != 0 {
		t.Errorf("edit check ran %d times, want 0", caps.editCalls)
	}
}

func TestDecideFieldChangeDenialNamesFieldAndReason(t *testing.T) {
	caps := &stubCaps{
		view: accesscontrol.Allow(),
		edit: accesscontrol.Deny("the created field can only be changed by administrators"),
	}

	_, err := article.DecideFieldChange(caps, "created", "old", "new")
	var denied *article.AccessDeniedError
	if !errors.As(err, &denied) {
		t.Fatalf("expected AccessDeniedError, got %v", err)
	}
	if !strings.Contains(denied.Message, "created") {
		t.Errorf("message %q does not name the field", denied.Message)
	}
	if !strings.Contains(denied.Message, "administrators") {
		t.Errorf("message %q does not carry the policy reason", denied.Message)
	}
}
