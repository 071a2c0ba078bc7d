package http

import (
	"time"

	"readshelf-share/internal/export"
	"readshelf-share/internal/note"
	"readshelf-share/pkg/log"
)

type handler struct {
	l            log.Logger
	uc           note.UseCase
	imageURL     func(file string) string
	productLabel string
	location     *time.Location
}

// Config holds the presentation settings of the share pages.
type Config struct {
	ImageURL     func(file string) string
	ProductLabel string
	Location     *time.Location // Time zone for displayed dates, UTC when nil
}

// New creates a new HTTP handler for the note share domain.
func New(l log.Logger, uc note.UseCase, cfg Config) *handler {
	imageURL := cfg.ImageURL
	if imageURL == nil {
		imageURL = func(string) string { return "" }
	}
	label := cfg.ProductLabel
	if label == "" {
		label = export.DefaultProductLabel
	}
	return &handler{
		l:            l,
		uc:           uc,
		imageURL:     imageURL,
		productLabel: label,
		location:     cfg.Location,
	}
}
