package repository

import "readshelf-share/internal/model"

// ListPublicNotesOptions holds the parameters for the public listing fetch.
type ListPublicNotesOptions struct {
	Category model.Category
	Limit    int // Max number of notes (default 200)
}

// CreateCommentOptions holds the parameters for posting a comment.
type CreateCommentOptions struct {
	Token  string
	NoteID string
	Text   string
}

// DeleteCommentOptions holds the parameters for deleting a comment.
type DeleteCommentOptions struct {
	Token     string
	CommentID string
}
