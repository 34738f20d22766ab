package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"article-cms/internal/domain/entity"
)

func TestArticleRepoCreateAssignsUUID(t *testing.T) {
	repo := NewArticleRepo()
	art := &entity.Article{Title: "Hello", Created: time.Now().UTC()}

	if err := repo.Create(context.Background(), art); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if art.UUID == "" {
		t.Fatal("Create() did not assign a UUID")
	}

	got, err := repo.Get(context.Background(), art.UUID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil || got.Title != "Hello" {
		t.Errorf("Get() = %+v, want stored article", got)
	}
}

func TestArticleRepoGetMissing(t *testing.T) {
	repo := NewArticleRepo()
	got, err := repo.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Errorf("Get() = %+v, want nil", got)
	}
}

func TestArticleRepoListOrderAndPaging(t *testing.T) {
	repo := NewArticleRepo()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		art := &entity.Article{
			Title:   fmt.Sprintf("a%d", i),
			Created: base.Add(time.Duration(i) * time.Hour),
		}
		if err := repo.Create(context.Background(), art); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	got, err := repo.List(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List() returned %d, want 2", len(got))
	}
	// Newest first: full order is a4 a3 a2 a1 a0, offset 1 gives a3 a2.
	if got[0].Title != "a3" || got[1].Title != "a2" {
		t.Errorf("List() = [%s %s], want [a3 a2]", got[0].Title, got[1].Title)
	}

	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 5 {
		t.Errorf("Count() = %d, want 5", count)
	}

	empty, err := repo.List(context.Background(), 10, 2)
	if err != nil {
		t.Fatalf("List() beyond end error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("List() beyond end returned %d items, want 0", len(empty))
	}
}

func TestArticleRepoUpdateAndDelete(t *testing.T) {
	repo := NewArticleRepo()
	art := &entity.Article{Title: "v1", Created: time.Now().UTC()}
	if err := repo.Create(context.Background(), art); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	art.Title = "v2"
	if err := repo.Update(context.Background(), art); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	got, _ := repo.Get(context.Background(), art.UUID)
	if got.Title != "v2" {
		t.Errorf("after Update, Title = %q, want v2", got.Title)
	}

	if err := repo.Update(context.Background(), &entity.Article{UUID: "missing"}); err == nil {
		t.Error("Update(missing) error = nil, want error")
	}

	if err := repo.Delete(context.Background(), art.UUID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got, _ := repo.Get(context.Background(), art.UUID); got != nil {
		t.Errorf("Get() after delete = %+v, want nil", got)
	}
}

func TestArticleRepoGetReturnsCopy(t *testing.T) {
	repo := NewArticleRepo()
	art := &entity.Article{Title: "orig", Created: time.Now().UTC()}
	_ = repo.Create(context.Background(), art)

	got, _ := repo.Get(context.Background(), art.UUID)
	got.Title = "mutated"

	again, _ := repo.Get(context.Background(), art.UUID)
	if again.Title != "orig" {
		t.Errorf("repository state mutated through returned copy: Title = %q", again.Title)
	}
}
