package usecase_test

import (
	"context"
	"errors"
	"testing"

	"readshelf-share/internal/model"
	"readshelf-share/internal/note"
	"readshelf-share/internal/note/usecase"
)

const bookID = "60f7a1b2c3d4e5f6a7b8c9d0"

func publicBook() model.Note {
	return model.Note{
		ID:       bookID,
		Category: model.CategoryBook,
		Title:    "Atomic Habits (Revised)",
		IsPublic: true,
	}
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Resolves despite changed title", func(t *testing.T) {
		repo := &mockRepo{notes: []model.Note{
			{ID: "aaaaaaaaaaaaaaaaaa111111", Category: model.CategoryBook, Title: "Other", IsPublic: true},
			publicBook(),
		}}
		uc := usecase.New(&mockLogger{}, repo, usecase.Config{})

		path, err := uc.SharePath(note.SharePathInput{Category: "book", Title: "Atomic Habits: An Easy Way", ID: bookID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path.Path != "/book/atomic-habits-an-easy-way-b8c9d0" {
			t.Fatalf("unexpected path %q", path.Path)
		}

		out, err := uc.Resolve(ctx, note.ResolveInput{Category: "book", Slug: "atomic-habits-an-easy-way-b8c9d0"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Note.ID != bookID {
			t.Errorf("resolved wrong note %q", out.Note.ID)
		}
		if out.SharePath != "/book/atomic-habits-revised-b8c9d0" {
			t.Errorf("unexpected canonical path %q", out.SharePath)
		}
		if repo.calls != 1 {
			t.Errorf("expected exactly 1 listing call, got %d", repo.calls)
		}
		if repo.lastOpt.Category != model.CategoryBook || repo.lastOpt.Limit != 200 {
			t.Errorf("unexpected listing options %+v", repo.lastOpt)
		}
	})

	t.Run("Private note is not found", func(t *testing.T) {
		n := publicBook()
		n.IsPublic = false
		uc := usecase.New(&mockLogger{}, &mockRepo{notes: []model.Note{n}}, usecase.Config{})

		_, err := uc.Resolve(ctx, note.ResolveInput{Category: "book", Slug: "atomic-habits-b8c9d0"})
		if !errors.Is(err, note.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Category mismatch is not found", func(t *testing.T) {
		n := publicBook()
		n.Category = model.CategoryVideo
		uc := usecase.New(&mockLogger{}, &mockRepo{notes: []model.Note{n}}, usecase.Config{})

		_, err := uc.Resolve(ctx, note.ResolveInput{Category: "book", Slug: "atomic-habits-b8c9d0"})
		if !errors.Is(err, note.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Malformed suffix makes no call", func(t *testing.T) {
		for _, s := range []string{"atomic-habits-b8c9d", "atomic-habits-b8c9d0e", "atomic-habits-", ""} {
			repo := &mockRepo{notes: []model.Note{publicBook()}}
			uc := usecase.New(&mockLogger{}, repo, usecase.Config{})

			_, err := uc.Resolve(ctx, note.ResolveInput{Category: "book", Slug: s})
			if !errors.Is(err, note.ErrNotFound) {
				t.Errorf("slug %q: expected ErrNotFound, got %v", s, err)
			}
			if repo.calls != 0 {
				t.Errorf("slug %q: expected no listing call, got %d", s, repo.calls)
			}
		}
	})

	t.Run("Unknown category makes no call", func(t *testing.T) {
		repo := &mockRepo{notes: []model.Note{publicBook()}}
		uc := usecase.New(&mockLogger{}, repo, usecase.Config{})

		_, err := uc.Resolve(ctx, note.ResolveInput{Category: "podcast", Slug: "x-b8c9d0"})
		if !errors.Is(err, note.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if repo.calls != 0 {
			t.Errorf("expected no listing call, got %d", repo.calls)
		}
	})

	t.Run("Listing failure is not found", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{listErr: errors.New("connection refused")}, usecase.Config{})

		_, err := uc.Resolve(ctx, note.ResolveInput{Category: "book", Slug: "x-b8c9d0"})
		if !errors.Is(err, note.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("No match", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{notes: []model.Note{publicBook()}}, usecase.Config{})

		_, err := uc.Resolve(ctx, note.ResolveInput{Category: "book", Slug: "x-ffffff"})
		if !errors.Is(err, note.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Suffix collision is ambiguous", func(t *testing.T) {
		other := publicBook()
		other.ID = "11111111111111111fb8c9d0"
		l := &mockLogger{}
		uc := usecase.New(l, &mockRepo{notes: []model.Note{publicBook(), other}}, usecase.Config{})

		_, err := uc.Resolve(ctx, note.ResolveInput{Category: "book", Slug: "x-b8c9d0"})
		if !errors.Is(err, note.ErrAmbiguous) {
			t.Errorf("expected ErrAmbiguous, got %v", err)
		}
		if len(l.warns) != 1 {
			t.Errorf("expected one warning, got %d", len(l.warns))
		}
	})

	t.Run("Collision with a private note still resolves", func(t *testing.T) {
		private := publicBook()
		private.ID = "11111111111111111fb8c9d0"
		private.IsPublic = false
		uc := usecase.New(&mockLogger{}, &mockRepo{notes: []model.Note{private, publicBook()}}, usecase.Config{})

		out, err := uc.Resolve(ctx, note.ResolveInput{Category: "book", Slug: "x-b8c9d0"})
		if err != nil || out.Note.ID != bookID {
			t.Errorf("expected public note, got %+v, %v", out.Note, err)
		}
	})

	t.Run("Custom listing limit", func(t *testing.T) {
		repo := &mockRepo{notes: []model.Note{publicBook()}}
		uc := usecase.New(&mockLogger{}, repo, usecase.Config{ListingLimit: 50})

		uc.Resolve(ctx, note.ResolveInput{Category: "book", Slug: "x-b8c9d0"})
		if repo.lastOpt.Limit != 50 {
			t.Errorf("expected limit 50, got %d", repo.lastOpt.Limit)
		}
	})
}

func TestSharePath(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &mockRepo{}, usecase.Config{})

	if _, err := uc.SharePath(note.SharePathInput{Category: "podcast", Title: "x", ID: bookID}); !errors.Is(err, note.ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}
	if _, err := uc.SharePath(note.SharePathInput{Category: "book", Title: "x"}); !errors.Is(err, note.ErrNotFound) {
		t.Errorf("expected ErrNotFound for empty id, got %v", err)
	}
}
