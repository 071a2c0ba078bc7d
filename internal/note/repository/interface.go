package repository

import (
	"context"

	"readshelf-share/internal/model"
)

// Repository is the composed read access to the notes backend.
type Repository interface {
	NoteRepository
	CommentRepository
}

// NoteRepository reads the public discovery surface.
type NoteRepository interface {
	ListPublicNotes(ctx context.Context, opt ListPublicNotesOptions) ([]model.Note, error)
	ImageURL(file string) string
}

// CommentRepository reads and forwards comment writes on behalf of a signed-in user.
type CommentRepository interface {
	ListComments(ctx context.Context, noteID string) ([]model.Comment, error)
	CreateComment(ctx context.Context, opt CreateCommentOptions) (model.Comment, error)
	DeleteComment(ctx context.Context, opt DeleteCommentOptions) error
}
