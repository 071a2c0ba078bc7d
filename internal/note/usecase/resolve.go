package usecase

import (
	"context"
	"strings"

	"readshelf-share/internal/model"
	"readshelf-share/internal/note"
	"readshelf-share/internal/note/repository"
	"readshelf-share/internal/slug"
)

// Resolve recovers a public note from a share path.
// Malformed paths fail before any backend call. Private notes, category mismatches
// and listing failures are all reported as note.ErrNotFound.
func (uc *implUseCase) Resolve(ctx context.Context, input note.ResolveInput) (note.ResolveOutput, error) {
	category, ok := model.ParseCategory(input.Category)
	if !ok {
		uc.l.Debugf(ctx, "Resolve: unknown category %q", input.Category)
		return note.ResolveOutput{}, note.ErrNotFound
	}

	suffix, ok := slug.ParseSuffix(input.Slug)
	if !ok {
		uc.l.Debugf(ctx, "Resolve: malformed slug %q", input.Slug)
		return note.ResolveOutput{}, note.ErrNotFound
	}

	notes, err := uc.repo.ListPublicNotes(ctx, repository.ListPublicNotesOptions{
		Category: category,
		Limit:    uc.listingLimit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Resolve: failed to list public %s notes: %v", category, err)
		return note.ResolveOutput{}, note.ErrNotFound
	}

	var matches []model.Note
	for _, n := range notes {
		if n.IsPublic && n.Category == category && strings.HasSuffix(n.ID, suffix) {
			matches = append(matches, n)
		}
	}

	switch len(matches) {
	case 0:
		return note.ResolveOutput{}, note.ErrNotFound
	case 1:
		n := matches[0]
		return note.ResolveOutput{
			Note:      n,
			SharePath: slug.SharePath(string(n.Category), n.Title, n.ID),
		}, nil
	default:
		ids := make([]string, 0, len(matches))
		for _, m := range matches {
			ids = append(ids, m.ID)
		}
		uc.l.Warnf(ctx, "Resolve: suffix %q in %s matches %d notes: %s", suffix, category, len(matches), strings.Join(ids, ","))
		return note.ResolveOutput{}, note.ErrAmbiguous
	}
}
