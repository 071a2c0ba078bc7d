package usecase

import (
	"time"

	"readshelf-share/internal/export"
	"readshelf-share/internal/note"
	"readshelf-share/internal/note/repository"
	pkgLog "readshelf-share/pkg/log"
)

var _ note.UseCase = (*implUseCase)(nil)

type implUseCase struct {
	l            pkgLog.Logger
	repo         repository.Repository
	listingLimit int
	productLabel string
	location     *time.Location
	now          func() time.Time
}

// Config holds the tunables of the note UseCase.
type Config struct {
	ListingLimit int            // Public listing size scanned per resolution (default 200)
	ProductLabel string         // Footer label of exported documents
	Location     *time.Location // Time zone for displayed dates
	Now          func() time.Time
}

// New creates a new note UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, cfg Config) *implUseCase {
	limit := cfg.ListingLimit
	if limit <= 0 {
		limit = 200
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:            l,
		repo:         repo,
		listingLimit: limit,
		productLabel: cfg.ProductLabel,
		location:     cfg.Location,
		now:          now,
	}
}

func (uc *implUseCase) exportOptions() export.Options {
	return export.Options{
		ImageURL:     uc.repo.ImageURL,
		Now:          uc.now,
		Location:     uc.location,
		ProductLabel: uc.productLabel,
	}
}
