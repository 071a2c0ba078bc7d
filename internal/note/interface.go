package note

import (
	"context"

	"readshelf-share/internal/model"
)

// UseCase is the share and export logic for public notes.
type UseCase interface {
	// SharePath builds the public share path for a note.
	SharePath(input SharePathInput) (SharePathOutput, error)

	// Resolve recovers a public note from a share path. Every miss is ErrNotFound or ErrAmbiguous.
	Resolve(ctx context.Context, input ResolveInput) (ResolveOutput, error)

	// Export resolves a share path, renders the printable document and hands it to the presenter.
	Export(ctx context.Context, input ExportInput) (ExportOutput, error)

	// Comments on shared notes.
	ListComments(ctx context.Context, noteID string) ([]model.Comment, error)
	AddComment(ctx context.Context, sc model.Scope, input AddCommentInput) (model.Comment, error)
	DeleteComment(ctx context.Context, sc model.Scope, input DeleteCommentInput) error
}
