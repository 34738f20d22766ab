package article_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"article-cms/internal/accesscontrol"
	"article-cms/internal/domain/entity"
	articlehandler "article-cms/internal/handler/http/article"
	"article-cms/internal/infra/adapter/persistence/memory"
)

func seedOne(t *testing.T, repo *memory.ArticleRepo) *entity.Article {
	t.Helper()
	a := &entity.Article{
		Title:    "Original title",
		Body:     "Original body",
		Langcode: "en",
		Created:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return a
}

func doPatch(t *testing.T, h articlehandler.PatchHandler, acct accesscontrol.Account, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := asAccount(httptest.NewRequest(http.MethodPatch, "/articles/"+id, strings.NewReader(body)), acct)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPatchHandler(t *testing.T) {
	repo := memory.NewArticleRepo()
	stored := seedOne(t, repo)
	h := articlehandler.PatchHandler{Svc: newService(repo)}
	editor := accesscontrol.AccountForRole("editor", accesscontrol.RoleEditor)

	rec := doPatch(t, h, editor, stored.UUID, `{"type":"article","title":"Patched title"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}

	var dto struct {
		Title    string `json:"title"`
		Body     string `json:"body"`
		Langcode string `json:"langcode"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&dto); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if dto.Title != "Patched title" {
		t.Errorf("title = %q", dto.Title)
	}
	if dto.Body != "Original body" || dto.Langcode != "en" {
		t.Errorf("untouched fields changed: %+v", dto)
	}

	persisted, _ := repo.Get(context.Background(), stored.UUID)
	if persisted.Title != "Patched title" {
		t.Errorf("persisted title = %q", persisted.Title)
	}
}

func TestPatchHandlerNoopResubmission(t *testing.T) {
	repo := memory.NewArticleRepo()
	stored := seedOne(t, repo)
	h := articlehandler.PatchHandler{Svc: newService(repo)}
	editor := accesscontrol.AccountForRole("editor", accesscontrol.RoleEditor)

	rec := doPatch(t, h, editor, stored.UUID,
		`{"type":"article","title":"Original title","langcode":""}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}

	var dto struct {
		Title    string `json:"title"`
		Langcode string `json:"langcode"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&dto); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if dto.Title != "Original title" {
		t.Errorf("title = %q", dto.Title)
	}
	// An empty langcode must never clear the stored language.
	if dto.Langcode != "en" {
		t.Errorf("langcode = %q, want en", dto.Langcode)
	}
}

func TestPatchHandlerRejections(t *testing.T) {
	editor := accesscontrol.AccountForRole("editor", accesscontrol.RoleEditor)
	const absentUUID = "11111111-2222-3333-4444-555555555555"

	tests := []struct {
		name     string
		id       string
		body     string
		wantCode int
	}{
		{"invalid identifier", "123", `{"type":"article","title":"T"}`, http.StatusBadRequest},
		{"unknown article", absentUUID, `{"type":"article","title":"T"}`, http.StatusBadRequest},
		{"malformed json", "", `{"title":`, http.StatusBadRequest},
		{"wrong type", "", `{"type":"page","title":"T"}`, http.StatusBadRequest},
		{"admin-only created field", "", `{"type":"article","created":"2030-01-01T00:00:00Z"}`, http.StatusForbidden},
		{"empty title fails validation", "", `{"type":"article","title":""}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := memory.NewArticleRepo()
			stored := seedOne(t, repo)
			h := articlehandler.PatchHandler{Svc: newService(repo)}

			id := tt.id
			if id == "" {
				id = stored.UUID
			}
			rec := doPatch(t, h, editor, id, tt.body)
			if rec.Code != tt.wantCode {
				t.Errorf("code = %d, want %d, body = %s", rec.Code, tt.wantCode, rec.Body.String())
			}

			persisted, _ := repo.Get(context.Background(), stored.UUID)
			if persisted.Title != "Original title" {
				t.Errorf("stored article changed despite rejection: %q", persisted.Title)
			}
		})
	}
}

func TestPatchHandlerAdminMayChangeCreated(t *testing.T) {
	repo := memory.NewArticleRepo()
	stored := seedOne(t, repo)
	h := articlehandler.PatchHandler{Svc: newService(repo)}
	admin := accesscontrol.AccountForRole("admin", accesscontrol.RoleAdmin)

	rec := doPatch(t, h, admin, stored.UUID, `{"type":"article","created":"2020-06-15T08:30:00Z"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}

	persisted, _ := repo.Get(context.Background(), stored.UUID)
	want := time.Date(2020, 6, 15, 8, 30, 0, 0, time.UTC)
	if !persisted.Created.Equal(want) {
		t.Errorf("created = %v, want %v", persisted.Created, want)
	}
}
