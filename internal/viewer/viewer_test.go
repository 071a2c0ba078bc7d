package viewer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"readshelf-share/internal/model"
	"readshelf-share/internal/note"
	"readshelf-share/internal/viewer"
)

type slowResolver struct {
	release   chan struct{}
	cancelled chan struct{}
}

func (r *slowResolver) Resolve(ctx context.Context, input note.ResolveInput) (note.ResolveOutput, error) {
	if input.Slug == "slow-aaaaaa" {
		select {
		case <-ctx.Done():
			close(r.cancelled)
		case <-time.After(time.Second):
		}
		<-r.release
	}
	if input.Slug == "missing-ffffff" {
		return note.ResolveOutput{}, note.ErrNotFound
	}
	return note.ResolveOutput{Note: model.Note{ID: input.Slug, Title: input.Slug}}, nil
}

func TestViewerDiscardsStaleResult(t *testing.T) {
	r := &slowResolver{release: make(chan struct{}), cancelled: make(chan struct{})}
	var applied []viewer.Result
	v := viewer.New(r, func(res viewer.Result) { applied = append(applied, res) })
	ctx := context.Background()

	slow := v.Navigate(ctx, viewer.Route{Category: "book", Slug: "slow-aaaaaa"})
	fast := v.Navigate(ctx, viewer.Route{Category: "book", Slug: "fast-bbbbbb"})

	if ok := <-fast; !ok {
		t.Fatal("latest navigation should be applied")
	}

	select {
	case <-r.cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("superseded resolution should be cancelled")
	}
	close(r.release)

	if ok := <-slow; ok {
		t.Error("stale result should be discarded")
	}

	cur, ok := v.Current()
	if !ok || cur.Route.Slug != "fast-bbbbbb" {
		t.Errorf("unexpected current %+v", cur)
	}
	if len(applied) != 1 {
		t.Errorf("expected 1 applied result, got %d", len(applied))
	}
}

func TestViewerAppliesErrors(t *testing.T) {
	v := viewer.New(&slowResolver{}, nil)

	if ok := <-v.Navigate(context.Background(), viewer.Route{Category: "book", Slug: "missing-ffffff"}); !ok {
		t.Fatal("expected applied")
	}
	cur, _ := v.Current()
	if !errors.Is(cur.Err, note.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", cur.Err)
	}
}

func TestViewerClose(t *testing.T) {
	r := &slowResolver{release: make(chan struct{}), cancelled: make(chan struct{})}
	v := viewer.New(r, nil)

	done := v.Navigate(context.Background(), viewer.Route{Category: "book", Slug: "slow-aaaaaa"})
	v.Close()
	close(r.release)

	if ok := <-done; ok {
		t.Error("result after Close should be discarded")
	}
	if _, ok := v.Current(); ok {
		t.Error("expected no current result")
	}
}

func TestParseRoute(t *testing.T) {
	tests := []struct {
		in     string
		want   viewer.Route
		wantOK bool
	}{
		{"/book/atomic-habits-b8c9d0", viewer.Route{"book", "atomic-habits-b8c9d0"}, true},
		{"book/atomic-habits-b8c9d0/", viewer.Route{"book", "atomic-habits-b8c9d0"}, true},
		{"https://readshelf.app/video/talk-123456", viewer.Route{"video", "talk-123456"}, true},
		{"/book", viewer.Route{}, false},
		{"/book/x/export", viewer.Route{}, false},
		{"", viewer.Route{}, false},
	}
	for _, tt := range tests {
		got, ok := viewer.ParseRoute(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseRoute(%q) = %+v, %v; want %+v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
