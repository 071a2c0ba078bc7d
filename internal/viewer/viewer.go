// Package viewer keeps the display state of a long-lived share page viewer.
// Only the result of the latest navigation is ever applied.
package viewer

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"readshelf-share/internal/note"
)

// Resolver is the subset of note.UseCase the viewer needs.
type Resolver interface {
	Resolve(ctx context.Context, input note.ResolveInput) (note.ResolveOutput, error)
}

// Route is a parsed share path.
type Route struct {
	Category string
	Slug     string
}

func (r Route) String() string {
	return "/" + r.Category + "/" + r.Slug
}

// ParseRoute accepts "/{category}/{slug}" or a full URL ending in it.
func ParseRoute(raw string) (Route, bool) {
	raw = strings.TrimSpace(raw)
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		raw = u.Path
	}
	parts := strings.Split(strings.Trim(raw, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Route{}, false
	}
	return Route{Category: parts[0], Slug: parts[1]}, true
}

// Result is the settled resolution of one navigation.
type Result struct {
	Route      Route
	Generation uint64
	Output     note.ResolveOutput
	Err        error
}

// Viewer applies resolution results guarded by a generation counter.
type Viewer struct {
	resolver Resolver
	onApply  func(Result)

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	current    Result
	hasCurrent bool
}

// New creates a viewer. onApply, if set, is called with every applied result
// while the viewer lock is held and must not call back into the viewer.
func New(r Resolver, onApply func(Result)) *Viewer {
	return &Viewer{resolver: r, onApply: onApply}
}

// Navigate starts resolving route and cancels the previous in-flight resolution.
// The returned channel yields true if the result was applied, false if it was stale.
func (v *Viewer) Navigate(ctx context.Context, route Route) <-chan bool {
	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	v.generation++
	gen := v.generation
	ctx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.mu.Unlock()

	done := make(chan bool, 1)
	go func() {
		defer cancel()
		out, err := v.resolver.Resolve(ctx, note.ResolveInput{Category: route.Category, Slug: route.Slug})
		done <- v.apply(Result{Route: route, Generation: gen, Output: out, Err: err})
		close(done)
	}()
	return done
}

func (v *Viewer) apply(r Result) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if r.Generation != v.generation {
		return false
	}
	v.current = r
	v.hasCurrent = true
	if v.onApply != nil {
		v.onApply(r)
	}
	return true
}

// Current returns the last applied result.
func (v *Viewer) Current() (Result, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current, v.hasCurrent
}

// Close cancels any in-flight resolution and invalidates its result.
func (v *Viewer) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.generation++
}
