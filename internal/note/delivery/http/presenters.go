package http

import (
	"errors"
	"html/template"
	"strings"
	"unicode/utf8"

	"readshelf-share/internal/export"
	"readshelf-share/internal/model"
	"readshelf-share/internal/note"
)

const maxLinkDisplayLen = 60

// --- Request DTOs ---

type routeReq struct {
	Category string `uri:"category" binding:"required"`
	Slug     string `uri:"slug"     binding:"required"`
}

func (r routeReq) validate() error { return nil }

func (r routeReq) toResolveInput() note.ResolveInput {
	return note.ResolveInput{Category: r.Category, Slug: r.Slug}
}

func (r routeReq) path() string {
	return "/" + r.Category + "/" + r.Slug
}

// ---

type sharePathReq struct {
	Category string `form:"category" binding:"required"`
	Title    string `form:"title"`
	ID       string `form:"id"       binding:"required"`
}

func (r sharePathReq) validate() error { return nil }

func (r sharePathReq) toInput() note.SharePathInput {
	return note.SharePathInput{Category: r.Category, Title: r.Title, ID: r.ID}
}

// ---

type addCommentReq struct {
	routeReq
	Text string
}

// ---

type deleteCommentReq struct {
	routeReq
	CommentID string
}

func (r deleteCommentReq) validate() error {
	if r.CommentID == "" {
		return errors.New("comment id is required")
	}
	return nil
}

// --- JSON Response DTOs ---

type ownerResp struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

type noteResp struct {
	ID          string     `json:"id"`
	Category    string     `json:"category"`
	Title       string     `json:"title"`
	Author      string     `json:"author,omitempty"`
	Description string     `json:"description,omitempty"`
	Link        string     `json:"link,omitempty"`
	Content     string     `json:"content"`
	CoverURL    string     `json:"cover_url,omitempty"`
	CoverColor  string     `json:"cover_color,omitempty"`
	Status      string     `json:"status,omitempty"`
	CreatedAt   string     `json:"created_at,omitempty"`
	Owner       *ownerResp `json:"owner,omitempty"`
	SharePath   string     `json:"share_path"`
}

type resolveResp struct {
	Note noteResp `json:"note"`
}

func (h *handler) newResolveResp(out note.ResolveOutput) resolveResp {
	n := out.Note
	resp := noteResp{
		ID:          n.ID,
		Category:    string(n.Category),
		Title:       n.Title,
		Author:      n.Author,
		Description: n.Description,
		Link:        n.Link,
		Content:     n.Content,
		CoverURL:    h.imageURL(n.Cover),
		Status:      string(n.Status),
		CreatedAt:   n.CreatedAt,
		SharePath:   out.SharePath,
	}
	if c, ok := export.CoverColor(&n); ok {
		resp.CoverColor = string(c)
	}
	if p, ok := n.User.Profile(); ok {
		resp.Owner = &ownerResp{
			ID:       p.ID,
			Name:     p.Name,
			Surname:  p.Surname,
			Username: p.Username,
			Avatar:   h.imageURL(p.Avatar),
		}
	}
	return resolveResp{Note: resp}
}

type sharePathResp struct {
	Path string `json:"path"`
}

func (h *handler) newSharePathResp(out note.SharePathOutput) sharePathResp {
	return sharePathResp{Path: out.Path}
}

// --- HTML view models ---

type personView struct {
	Name      string
	Username  string
	AvatarURL string
	Initial   string
}

func (h *handler) newPersonView(o model.Owner) *personView {
	p, ok := o.Profile()
	if !ok {
		return nil
	}
	name := strings.TrimSpace(p.Name + " " + p.Surname)
	v := &personView{
		Name:      name,
		Username:  p.Username,
		AvatarURL: h.imageURL(p.Avatar),
	}
	if r, _ := utf8.DecodeRuneInString(firstNonEmpty(p.Name, p.Username)); r != utf8.RuneError {
		v.Initial = strings.ToUpper(string(r))
	}
	return v
}

type commentView struct {
	ID      string
	Text    string
	Author  *personView
	AddedOn string
	Mine    bool
}

type sharePageView struct {
	ProductLabel  string
	Title         string
	CategoryLabel string
	StatusLabel   string
	StatusClass   string
	Author        string
	Description   string
	Link          string
	LinkText      string
	CoverColor    template.CSS
	CoverURL      string
	Owner         *personView
	AddedOn       string
	Content       template.HTML
	ExportPath    string
	CommentsPath  string
	Comments      []commentView
	SignedIn      bool
	CommentError  string
}

func (h *handler) newSharePageView(route routeReq, out note.ResolveOutput, comments []model.Comment, viewer *model.User, commentError string) sharePageView {
	n := out.Note
	v := sharePageView{
		ProductLabel:  h.productLabel,
		Title:         n.Title,
		CategoryLabel: n.Category.Label(),
		StatusLabel:   n.Status.Label(),
		StatusClass:   strings.ReplaceAll(string(n.Status), "_", "-"),
		Author:        strings.TrimSpace(n.Author),
		Description:   strings.TrimSpace(n.Description),
		Link:          n.Link,
		LinkText:      truncateLink(n.Link),
		Owner:         h.newPersonView(n.User),
		AddedOn:       export.AddedOn(n.CreatedAt, h.location),
		ExportPath:    route.path() + "/export",
		CommentsPath:  route.path() + "/comments",
		SignedIn:      viewer != nil,
		CommentError:  commentErrorMessage(commentError),
	}
	if c, ok := export.CoverColor(&n); ok {
		v.CoverColor = c
	} else if n.Cover != "" {
		v.CoverURL = h.imageURL(n.Cover)
	}
	if strings.TrimSpace(n.Content) != "" {
		v.Content = template.HTML(n.Content)
	}

	v.Comments = make([]commentView, 0, len(comments))
	for _, c := range comments {
		cv := commentView{
			ID:      c.ID,
			Text:    c.Text,
			Author:  h.newPersonView(c.User),
			AddedOn: export.AddedOn(c.CreatedAt, h.location),
		}
		if viewer != nil && c.User.ID == viewer.ID {
			cv.Mine = true
		}
		v.Comments = append(v.Comments, cv)
	}
	return v
}

type notFoundView struct {
	ProductLabel string
}

// truncateLink shortens long links for display.
func truncateLink(link string) string {
	if utf8.RuneCountInString(link) <= maxLinkDisplayLen {
		return link
	}
	return string([]rune(link)[:maxLinkDisplayLen]) + "..."
}

func commentErrorMessage(code string) string {
	switch code {
	case "signin":
		return "Sign in to leave a comment."
	case "empty":
		return "Comment cannot be empty."
	case "failed":
		return "Could not save your comment. Please try again."
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
