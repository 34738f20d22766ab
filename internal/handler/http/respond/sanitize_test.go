package respond_test

import (
	"errors"
	"strings"
	"testing"

	"article-cms/internal/handler/http/respond"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantHide string
		wantKeep string
	}{
		{
			name:     "dsn password is masked",
			err:      errors.New(`connect "postgres://app:s3cret@db:5432/cms": refused`),
			wantHide: "s3cret",
			wantKeep: "app",
		},
		{
			name:     "bearer token is masked",
			err:      errors.New("unexpected 401 for Bearer eyJhbGciOiJIUzI1NiJ9.payload.sig"),
			wantHide: "eyJhbGciOiJIUzI1NiJ9",
			wantKeep: "unexpected 401",
		},
		{
			name:     "plain message is untouched",
			err:      errors.New("no rows in result set"),
			wantKeep: "no rows in result set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := respond.SanitizeError(tt.err)
			if tt.wantHide != "" && strings.Contains(got, tt.wantHide) {
				t.Errorf("sanitized message still contains %q: %s", tt.wantHide, got)
			}
			if !strings.Contains(got, tt.wantKeep) {
				t.Errorf("sanitized message lost %q: %s", tt.wantKeep, got)
			}
		})
	}
}

func TestSanitizeErrorNil(t *testing.T) {
	if got := respond.SanitizeError(nil); got != "" {
		t.Errorf("SanitizeError(nil) = %q, want empty", got)
	}
}
