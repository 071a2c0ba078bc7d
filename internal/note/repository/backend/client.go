package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"readshelf-share/internal/model"
)

const (
	DefaultPublicNotesPath = "/public-notes"

	commentsPath = "/api/v1/comments"
	mePath       = "/api/v1/auth/me"
)

// ErrUnauthorized is returned when the backend rejects the bearer token.
var ErrUnauthorized = errors.New("backend rejected credentials")

// ClientConfig configures the notes backend client.
type ClientConfig struct {
	BaseURL         string // e.g. "http://localhost:3000"
	PublicNotesPath string // Listing endpoint, relative to BaseURL
	AssetsURL       string // Static asset base for uploads; defaults to BaseURL
	Timeout         time.Duration
}

// Client is the HTTP wrapper for the ReadShelf notes REST API.
type Client struct {
	baseURL         string
	publicNotesPath string
	assetsURL       string
	httpClient      *http.Client
}

// NewClient creates a new notes backend client.
func NewClient(cfg ClientConfig) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	assets := strings.TrimRight(cfg.AssetsURL, "/")
	if assets == "" {
		assets = base
	}
	path := cfg.PublicNotesPath
	if path == "" {
		path = DefaultPublicNotesPath
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:         base,
		publicNotesPath: "/" + strings.TrimLeft(path, "/"),
		assetsURL:       assets,
		httpClient:      &http.Client{Timeout: timeout},
	}
}

// ImageURL maps an uploaded file handle to its absolute URL. Empty handles map to "".
func (c *Client) ImageURL(file string) string {
	if file == "" {
		return ""
	}
	return fmt.Sprintf("%s/uploads/%s", c.assetsURL, url.PathEscape(file))
}

// ListPublicNotes fetches the public notes of one category via
// GET {publicNotesPath}?category=&limit=. No credentials are attached.
func (c *Client) ListPublicNotes(ctx context.Context, category string, limit int) ([]model.Note, error) {
	q := url.Values{}
	q.Set("category", category)
	q.Set("limit", strconv.Itoa(limit))
	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, c.publicNotesPath, q.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list public notes request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	var listResp struct {
		Notes []model.Note `json:"notes"`
	}
	if err := c.do(httpReq, "list public notes", &listResp); err != nil {
		return nil, err
	}
	return listResp.Notes, nil
}

// Ping checks that the public listing answers. Used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.ListPublicNotes(ctx, string(model.CategoryGeneral), 1)
	return err
}

// ListComments fetches the comments of a note, newest first as the backend returns them.
func (c *Client) ListComments(ctx context.Context, noteID string) ([]model.Comment, error) {
	endpoint := fmt.Sprintf("%s%s/%s", c.baseURL, commentsPath, url.PathEscape(noteID))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list comments request: %w", err)
	}

	var listResp struct {
		Comments []model.Comment `json:"comments"`
	}
	if err := c.do(httpReq, "list comments", &listResp); err != nil {
		return nil, err
	}
	return listResp.Comments, nil
}

// CreateComment posts a comment as the token's owner.
func (c *Client) CreateComment(ctx context.Context, token, noteID, text string) (model.Comment, error) {
	endpoint := fmt.Sprintf("%s%s/%s", c.baseURL, commentsPath, url.PathEscape(noteID))

	body, err := json.Marshal(struct {
		Text string `json:"text"`
	}{Text: text})
	if err != nil {
		return model.Comment{}, fmt.Errorf("failed to marshal create comment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return model.Comment{}, fmt.Errorf("failed to build create comment request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	var createResp struct {
		Comment model.Comment `json:"comment"`
	}
	if err := c.do(httpReq, "create comment", &createResp); err != nil {
		return model.Comment{}, err
	}
	return createResp.Comment, nil
}

// DeleteComment deletes a comment owned by the token's owner.
func (c *Client) DeleteComment(ctx context.Context, token, commentID string) error {
	endpoint := fmt.Sprintf("%s%s/%s", c.baseURL, commentsPath, url.PathEscape(commentID))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete comment request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	return c.do(httpReq, "delete comment", nil)
}

// Me returns the profile of the token's owner.
func (c *Client) Me(ctx context.Context, token string) (model.User, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+mePath, nil)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to build me request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	var meResp struct {
		User model.User `json:"user"`
	}
	if err := c.do(httpReq, "me", &meResp); err != nil {
		return model.User{}, err
	}
	return meResp.User, nil
}

// do executes req and decodes a 2xx JSON body into out (nil skips decoding).
func (c *Client) do(req *http.Request, op string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call backend %s API: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("backend API %s error %d: %w", op, resp.StatusCode, ErrUnauthorized)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("backend API %s error %d: %s", op, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode backend %s response: %w", op, err)
	}
	return nil
}
