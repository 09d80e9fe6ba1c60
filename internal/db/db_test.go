package db

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"novelhub/internal/models"
)

func TestInitSeedsAllCollections(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir, Options{})

	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	for _, name := range []string{NovelsFile, CommentsFile, UsersFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected %s to exist: %v", name, err)
		}
	}

	novels, comments, err := s.LoadNovelsAndComments()
	if err != nil {
		t.Fatalf("LoadNovelsAndComments failed: %v", err)
	}
	if len(novels) != 1 || novels[0].Title != "The Midnight Garden" {
		t.Errorf("Unexpected novel seed: %+v", novels)
	}
	if len(comments) != 1 || comments[0].NovelID != 1 {
		t.Errorf("Unexpected comment seed: %+v", comments)
	}
	users, _ := s.Users.Load()
	if len(users) != 0 {
		t.Errorf("Expected no users, got %+v", users)
	}
}

func TestInitFailsOnCorruptCollection(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, CommentsFile), []byte("[{"), 0o600); err != nil {
		t.Fatal(err)
	}
	s := Open(dir, Options{})
	if err := s.Init(); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("Expected ErrCorrupt, got %v", err)
	}
}

func TestUpdateNovelsAndCommentsWritesBoth(t *testing.T) {
	s := Open(t.TempDir(), Options{})

	err := s.UpdateNovelsAndComments(func(novels []models.Novel, comments []models.Comment) ([]models.Novel, []models.Comment, error) {
		novels[0].Comments++
		return novels, append(comments, models.Comment{ID: 2, NovelID: 1}), nil
	})
	if err != nil {
		t.Fatalf("UpdateNovelsAndComments failed: %v", err)
	}

	novels, comments, err := s.LoadNovelsAndComments()
	if err != nil {
		t.Fatal(err)
	}
	if novels[0].Comments != 16 {
		t.Errorf("Expected counter 16, got %d", novels[0].Comments)
	}
	if len(comments) != 2 {
		t.Errorf("Expected 2 comments, got %d", len(comments))
	}
}

func TestUpdateNovelsAndCommentsReportsPartialWrite(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir, Options{})
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	// A directory squatting on the novels path makes only that rename fail.
	novelsPath := filepath.Join(dir, NovelsFile)
	err := s.UpdateNovelsAndComments(func(novels []models.Novel, comments []models.Comment) ([]models.Novel, []models.Comment, error) {
		if err := os.Remove(novelsPath); err != nil {
			t.Fatal(err)
		}
		if err := os.Mkdir(novelsPath, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(novelsPath, "keep"), nil, 0o600); err != nil {
			t.Fatal(err)
		}
		return novels, append(comments, models.Comment{ID: 2, NovelID: 1}), nil
	})
	if !errors.Is(err, ErrPartialWrite) {
		t.Fatalf("Expected ErrPartialWrite, got %v", err)
	}
	comments, err := s.Comments.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(comments) != 2 {
		t.Errorf("Expected the comments write to have landed, got %d comments", len(comments))
	}
}

func TestCorruptUsersNeverReseeded(t *testing.T) {
	dir := t.TempDir()
	usersPath := filepath.Join(dir, UsersFile)
	truncated := []byte(`[{"id":"user1","username":"a","email":"a@example.com","pass`)
	if err := os.WriteFile(usersPath, truncated, 0o600); err != nil {
		t.Fatal(err)
	}

	s := Open(dir, Options{ReseedOnCorrupt: true})
	err := s.Users.Update(func(users []models.User) ([]models.User, error) {
		return append(users, models.User{ID: "user1", Username: "b"}), nil
	})
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("Expected ErrCorrupt, got %v", err)
	}

	data, err := os.ReadFile(usersPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(truncated) {
		t.Errorf("Expected users document untouched, got %s", data)
	}
}

func TestReseedOnCorruptStillCoversNovels(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, NovelsFile), []byte("[{"), 0o600); err != nil {
		t.Fatal(err)
	}
	s := Open(dir, Options{ReseedOnCorrupt: true})
	novels, err := s.Novels.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(novels) != 1 || novels[0].Title != "The Midnight Garden" {
		t.Errorf("Expected the seed novel, got %+v", novels)
	}
}

func TestSavedDocumentFormat(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir, Options{})
	created := models.NewTimestamp(time.Date(2024, 3, 9, 10, 30, 0, 0, time.UTC))
	if err := s.Comments.Save([]models.Comment{{ID: 1, NovelID: 1, Author: "Ann", AuthorID: "anonymous", Content: "hi", CreatedAt: created}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, CommentsFile))
	if err != nil {
		t.Fatal(err)
	}
	want := `[
  {
    "id": 1,
    "novelId": 1,
    "author": "Ann",
    "authorId": "anonymous",
    "content": "hi",
    "likes": 0,
    "createdAt": "2024-03-09T10:30:00.000Z"
  }
]`
	if string(data) != want {
		t.Errorf("Unexpected document:\n%s\nwant:\n%s", data, want)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("Expected no temp files left behind, got %d entries", len(entries))
	}
}
