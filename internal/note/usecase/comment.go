package usecase

import (
	"context"
	"fmt"
	"strings"

	"readshelf-share/internal/model"
	"readshelf-share/internal/note"
	"readshelf-share/internal/note/repository"
)

// ListComments returns the comments of a note. A backend failure yields an empty list.
func (uc *implUseCase) ListComments(ctx context.Context, noteID string) ([]model.Comment, error) {
	comments, err := uc.repo.ListComments(ctx, noteID)
	if err != nil {
		uc.l.Warnf(ctx, "ListComments: failed to list comments of %s: %v", noteID, err)
		return []model.Comment{}, nil
	}
	return comments, nil
}

// AddComment posts a comment on behalf of the signed-in user.
func (uc *implUseCase) AddComment(ctx context.Context, sc model.Scope, input note.AddCommentInput) (model.Comment, error) {
	if sc.Token == "" {
		return model.Comment{}, note.ErrUnauthenticated
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return model.Comment{}, note.ErrEmptyComment
	}

	c, err := uc.repo.CreateComment(ctx, repository.CreateCommentOptions{
		Token:  sc.Token,
		NoteID: input.NoteID,
		Text:   text,
	})
	if err != nil {
		return model.Comment{}, fmt.Errorf("failed to add comment: %w", err)
	}

	uc.l.Infof(ctx, "AddComment: user=%s note=%s comment=%s", sc.UserID, input.NoteID, c.ID)
	return c, nil
}

// DeleteComment deletes one of the signed-in user's comments.
func (uc *implUseCase) DeleteComment(ctx context.Context, sc model.Scope, input note.DeleteCommentInput) error {
	if sc.Token == "" {
		return note.ErrUnauthenticated
	}
	if err := uc.repo.DeleteComment(ctx, repository.DeleteCommentOptions{
		Token:     sc.Token,
		CommentID: input.CommentID,
	}); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	uc.l.Infof(ctx, "DeleteComment: user=%s comment=%s", sc.UserID, input.CommentID)
	return nil
}
