package pathutil_test

import (
	"errors"
	"testing"

	"article-cms/internal/handler/http/pathutil"
)

const sampleUUID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

func TestExtractUUID(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		prefix  string
		want    string
		wantErr bool
	}{
		{"valid uuid", "/articles/" + sampleUUID, "/articles/", sampleUUID, false},
		{"uppercase uuid is canonicalized", "/articles/6BA7B810-9DAD-11D1-80B4-00C04FD430C8", "/articles/", sampleUUID, false},
		{"missing segment", "/articles/", "/articles/", "", true},
		{"not a uuid", "/articles/123", "/articles/", "", true},
		{"extra segments", "/articles/" + sampleUUID + "/extra", "/articles/", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pathutil.ExtractUUID(tt.path, tt.prefix)
			if tt.wantErr {
				if !errors.Is(err, pathutil.ErrInvalidUUID) {
					t.Fatalf("expected ErrInvalidUUID, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractUUID = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/articles/" + sampleUUID, "/articles/:uuid"},
		{"/articles/" + sampleUUID + "/", "/articles/:uuid"},
		{"/articles?page=2&limit=10", "/articles"},
		{"/articles/add", "/articles/add"},
		{"/healthz", "/healthz"},
		{"/", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := pathutil.NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
