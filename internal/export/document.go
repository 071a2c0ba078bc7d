// Package export turns a resolved note into a standalone print-ready HTML document
// and hands it to a Presenter.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"regexp"
	"strings"
	"time"

	"readshelf-share/internal/model"
	"readshelf-share/internal/slug"
)

const (
	DefaultProductLabel = "ReadShelf"

	exportDateLayout = "January 2, 2006"
	addedOnLayout    = "January 2, 2006 at 3:04 PM"
)

var ErrNilNote = errors.New("export: nil note")

// coverColorPattern accepts hex, named, rgb(a) and hsl(a) colours.
var coverColorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]{3,20}|rgba?\([0-9.,%\s]+\)|hsla?\([0-9.,%\sdeg]+\))$`)

// Document is a rendered, self-contained HTML document.
type Document struct {
	Title    string
	HTML     string
	FileName string
}

// Options carries the collaborators Render needs. Zero values are usable.
type Options struct {
	ImageURL     func(file string) string // Maps an uploaded cover handle to an absolute URL
	Now          func() time.Time
	Location     *time.Location // Time zone for displayed dates, UTC when nil
	ProductLabel string
}

type documentView struct {
	ProductLabel  string
	Title         string
	CategoryLabel string
	Author        string
	Owner         string
	AddedOn       string
	Description   string
	CoverColor    template.CSS
	CoverURL      string
	Content       template.HTML
	ExportedOn    string
}

// Render builds the printable document for n. It performs no I/O and never mutates n.
func Render(n *model.Note, opts Options) (Document, error) {
	if n == nil {
		return Document{}, ErrNilNote
	}

	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	label := opts.ProductLabel
	if label == "" {
		label = DefaultProductLabel
	}

	view := documentView{
		ProductLabel:  label,
		Title:         n.Title,
		CategoryLabel: n.Category.Label(),
		Author:        strings.TrimSpace(n.Author),
		Owner:         OwnerLine(n.User),
		AddedOn:       AddedOn(n.CreatedAt, loc),
		Description:   strings.TrimSpace(n.Description),
		ExportedOn:    now().In(loc).Format(exportDateLayout),
	}
	if c, ok := CoverColor(n); ok {
		view.CoverColor = c
	} else if n.Cover != "" && opts.ImageURL != nil {
		view.CoverURL = opts.ImageURL(n.Cover)
	}
	if strings.TrimSpace(n.Content) != "" {
		// Rich text from the editor is trusted as sanitized on write.
		view.Content = template.HTML(n.Content)
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, view); err != nil {
		return Document{}, fmt.Errorf("export: render document: %w", err)
	}

	return Document{
		Title:    n.Title,
		HTML:     buf.String(),
		FileName: FileName(n.Title),
	}, nil
}

// OwnerLine formats "Name Surname (@username)", or "" when no profile data exists.
func OwnerLine(o model.Owner) string {
	p, ok := o.Profile()
	if !ok {
		return ""
	}
	name := strings.TrimSpace(p.Name + " " + p.Surname)
	switch {
	case name != "" && p.Username != "":
		return fmt.Sprintf("%s (@%s)", name, p.Username)
	case name != "":
		return name
	case p.Username != "":
		return "@" + p.Username
	}
	return ""
}

// AddedOn formats an RFC 3339 timestamp for display. Unparsable input yields "".
func AddedOn(createdAt string, loc *time.Location) string {
	if createdAt == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(addedOnLayout)
}

// CoverColor returns the solid cover colour of a general note, if it has a valid one.
func CoverColor(n *model.Note) (template.CSS, bool) {
	if n.Category != model.CategoryGeneral {
		return "", false
	}
	c := strings.TrimSpace(n.CoverColor)
	if c == "" || !coverColorPattern.MatchString(c) {
		return "", false
	}
	return template.CSS(c), true
}

// FileName suggests a download name for the exported document.
func FileName(title string) string {
	s := strings.Trim(slug.Slugify(title), "-")
	if s == "" {
		s = "note"
	}
	return s + ".html"
}
