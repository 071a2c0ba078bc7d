package note

import (
	"readshelf-share/internal/export"
	"readshelf-share/internal/model"
)

// --- UseCase Inputs ---

type SharePathInput struct {
	Category string
	Title    string
	ID       string
}

type ResolveInput struct {
	Category string // Raw route segment, validated by Resolve
	Slug     string
}

type ExportInput struct {
	Category  string
	Slug      string
	Presenter export.Presenter
}

type AddCommentInput struct {
	NoteID string
	Text   string
}

type DeleteCommentInput struct {
	CommentID string
}

// --- UseCase Outputs ---

type SharePathOutput struct {
	Path string
}

type ResolveOutput struct {
	Note      model.Note
	SharePath string // Canonical path for the note's current title
}

type ExportOutput struct {
	Note     model.Note
	Document export.Document
	Outcome  export.Outcome
}
