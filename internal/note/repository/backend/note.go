package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"readshelf-share/internal/model"
	"readshelf-share/internal/note/repository"
	"readshelf-share/pkg/cache"
	pkgLog "readshelf-share/pkg/log"
)

// DefaultListingLimit bounds the public listing scanned by the resolver.
const DefaultListingLimit = 200

type implRepository struct {
	client *Client
	cache  cache.Cache
	l      pkgLog.Logger
}

// New creates a repository over the notes backend. A nil cache disables listing caching.
func New(client *Client, c cache.Cache, l pkgLog.Logger) repository.Repository {
	if c == nil {
		c = cache.Nop{}
	}
	return &implRepository{
		client: client,
		cache:  c,
		l:      l,
	}
}

func (r *implRepository) ListPublicNotes(ctx context.Context, opt repository.ListPublicNotesOptions) ([]model.Note, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = DefaultListingLimit
	}

	key := fmt.Sprintf("public-notes:%s:%d", opt.Category, limit)
	if raw, ok, err := r.cache.Get(ctx, key); err != nil {
		r.l.Warnf(ctx, "backend repository: listing cache get %s: %v", key, err)
	} else if ok {
		var notes []model.Note
		if err := json.Unmarshal(raw, &notes); err == nil {
			return notes, nil
		}
		r.l.Warnf(ctx, "backend repository: dropping undecodable cache entry %s", key)
	}

	notes, err := r.client.ListPublicNotes(ctx, string(opt.Category), limit)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(notes); err == nil {
		if err := r.cache.Set(ctx, key, raw); err != nil {
			r.l.Warnf(ctx, "backend repository: listing cache set %s: %v", key, err)
		}
	}
	return notes, nil
}

func (r *implRepository) ImageURL(file string) string {
	return r.client.ImageURL(file)
}

func (r *implRepository) ListComments(ctx context.Context, noteID string) ([]model.Comment, error) {
	return r.client.ListComments(ctx, noteID)
}

func (r *implRepository) CreateComment(ctx context.Context, opt repository.CreateCommentOptions) (model.Comment, error) {
	c, err := r.client.CreateComment(ctx, opt.Token, opt.NoteID, opt.Text)
	if err != nil {
		r.l.Errorf(ctx, "backend repository: failed to create comment on %s: %v", opt.NoteID, err)
		return model.Comment{}, err
	}
	return c, nil
}

func (r *implRepository) DeleteComment(ctx context.Context, opt repository.DeleteCommentOptions) error {
	if err := r.client.DeleteComment(ctx, opt.Token, opt.CommentID); err != nil {
		r.l.Errorf(ctx, "backend repository: failed to delete comment %s: %v", opt.CommentID, err)
		return err
	}
	return nil
}
