package export_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"readshelf-share/internal/export"
	"readshelf-share/internal/model"
)

var fixedNow = func() time.Time { return time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC) }

func testOptions() export.Options {
	return export.Options{
		ImageURL: func(file string) string { return "http://assets.local/uploads/" + file },
		Now:      fixedNow,
	}
}

func fullNote() *model.Note {
	return &model.Note{
		ID:          "60f7a1b2c3d4e5f6a7b8c9d0",
		Category:    model.CategoryBook,
		Title:       "Atomic Habits",
		Author:      "James Clear",
		Description: "Small changes, remarkable results.",
		Content:     `<p>Habits compound <strong>over time</strong>.</p><ul><li>Cue</li></ul>`,
		Cover:       "cover-123.jpg",
		Status:      model.StatusFinished,
		IsPublic:    true,
		CreatedAt:   "2024-01-15T14:30:00Z",
		User: model.NewOwner(model.User{
			ID: "u1", Name: "Jane", Surname: "Doe", Username: "janedoe",
		}),
	}
}

func TestRenderComplete(t *testing.T) {
	doc, err := export.Render(fullNote(), testOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	once := []string{
		"<h1>Atomic Habits</h1>",
		"by James Clear",
		"Note by: Jane Doe (@janedoe)",
		"Added on January 15, 2024 at 2:30 PM",
		"Small changes, remarkable results.",
	}
	for _, s := range once {
		if got := strings.Count(doc.HTML, s); got != 1 {
			t.Errorf("expected %q exactly once, found %d times", s, got)
		}
	}

	want := `<div class="content-box"><p>Habits compound <strong>over time</strong>.</p><ul><li>Cue</li></ul></div>`
	if !strings.Contains(doc.HTML, want) {
		t.Errorf("content fragment not embedded verbatim in content box")
	}

	checks := []string{
		"<!DOCTYPE html>",
		"<title>Atomic Habits · ReadShelf</title>",
		"Exported on March 5, 2024",
		"ReadShelf",
		`<img src="http://assets.local/uploads/cover-123.jpg"`,
		"@page { size: A4; margin: 0; }",
		"page-break-inside: avoid",
		"window.print()",
		"window.close()",
	}
	for _, s := range checks {
		if !strings.Contains(doc.HTML, s) {
			t.Errorf("document missing %q", s)
		}
	}

	if doc.FileName != "atomic-habits.html" {
		t.Errorf("unexpected file name %q", doc.FileName)
	}
	if doc.Title != "Atomic Habits" {
		t.Errorf("unexpected title %q", doc.Title)
	}
}

func TestRenderOmitsAbsentBlocks(t *testing.T) {
	n := fullNote()
	n.User = model.OwnerRef("u1")
	n.CreatedAt = ""

	doc, err := export.Render(n, testOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range []string{"Note by:", `class="meta owner"`, "Added on", "undefined"} {
		if strings.Contains(doc.HTML, s) {
			t.Errorf("document should not contain %q", s)
		}
	}
	if !strings.Contains(doc.HTML, "by James Clear") || !strings.Contains(doc.HTML, "Small changes") {
		t.Errorf("present blocks should still render")
	}

	bare := &model.Note{ID: "abcdef", Category: model.CategoryArticle, Title: "Bare"}
	doc, err = export.Render(bare, testOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []string{`class="meta author"`, `class="description"`, `class="cover"`, "<img"} {
		if strings.Contains(doc.HTML, s) {
			t.Errorf("bare document should not contain %q", s)
		}
	}
}

func TestRenderEmptyContent(t *testing.T) {
	n := fullNote()
	n.Content = ""

	doc, err := export.Render(n, testOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(doc.HTML, "No notes written yet.") {
		t.Error("expected placeholder text")
	}
	if strings.Contains(doc.HTML, `class="content-box"`) {
		t.Error("expected no content container")
	}
}

func TestRenderCover(t *testing.T) {
	t.Run("general colour wins over image", func(t *testing.T) {
		n := fullNote()
		n.Category = model.CategoryGeneral
		n.CoverColor = "#1e293b"

		doc, _ := export.Render(n, testOptions())
		if !strings.Contains(doc.HTML, `style="background-color: #1e293b"`) {
			t.Error("expected solid colour block")
		}
		if strings.Contains(doc.HTML, "<img") {
			t.Error("colour cover should not emit an image")
		}
	})

	t.Run("colour ignored outside general", func(t *testing.T) {
		n := fullNote()
		n.CoverColor = "#1e293b"

		doc, _ := export.Render(n, testOptions())
		if strings.Contains(doc.HTML, "#1e293b") {
			t.Error("colour should only apply to general notes")
		}
		if !strings.Contains(doc.HTML, "<img") {
			t.Error("expected image cover")
		}
	})

	t.Run("invalid colour falls back", func(t *testing.T) {
		n := fullNote()
		n.Category = model.CategoryGeneral
		n.CoverColor = "red; background: url(x)"
		n.Cover = ""

		doc, _ := export.Render(n, testOptions())
		if strings.Contains(doc.HTML, `class="cover"`) {
			t.Error("expected no cover section")
		}
	})

	t.Run("rgb colour", func(t *testing.T) {
		n := fullNote()
		n.Category = model.CategoryGeneral
		n.CoverColor = "rgb(30, 41, 59)"

		doc, _ := export.Render(n, testOptions())
		if !strings.Contains(doc.HTML, "rgb(30, 41, 59)") {
			t.Error("expected rgb colour to pass through")
		}
	})
}

func TestRenderEscapesMetadata(t *testing.T) {
	n := fullNote()
	n.Title = `<script>alert(1)</script>`

	doc, _ := export.Render(n, testOptions())
	if strings.Contains(doc.HTML, "<script>alert(1)</script>") {
		t.Error("title must be escaped")
	}
}

func TestRenderNilNote(t *testing.T) {
	if _, err := export.Render(nil, export.Options{}); !errors.Is(err, export.ErrNilNote) {
		t.Errorf("expected ErrNilNote, got %v", err)
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	n := fullNote()
	before := *n
	export.Render(n, testOptions())
	if n.Title != before.Title || n.Content != before.Content || n.Cover != before.Cover {
		t.Error("render mutated the note")
	}
}

func TestOwnerLine(t *testing.T) {
	tests := []struct {
		name string
		in   model.Owner
		want string
	}{
		{"full", model.NewOwner(model.User{Name: "Jane", Surname: "Doe", Username: "jd"}), "Jane Doe (@jd)"},
		{"no username", model.NewOwner(model.User{Name: "Jane"}), "Jane"},
		{"username only", model.NewOwner(model.User{Username: "jd"}), "@jd"},
		{"empty profile", model.NewOwner(model.User{}), ""},
		{"id only", model.OwnerRef("u1"), ""},
		{"zero", model.Owner{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := export.OwnerLine(tt.in); got != tt.want {
				t.Errorf("OwnerLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddedOn(t *testing.T) {
	if got := export.AddedOn("2024-01-15T14:30:00.000Z", nil); got != "January 15, 2024 at 2:30 PM" {
		t.Errorf("unexpected added-on %q", got)
	}
	if got := export.AddedOn("yesterday", nil); got != "" {
		t.Errorf("unparsable timestamp should be omitted, got %q", got)
	}
}

func TestFileName(t *testing.T) {
	if got := export.FileName("???"); got != "note.html" {
		t.Errorf("unexpected fallback %q", got)
	}
}
