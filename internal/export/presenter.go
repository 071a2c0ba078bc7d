package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"readshelf-share/internal/model"
)

// Outcome reports what happened to a presented document.
type Outcome int

const (
	OutcomePresented Outcome = iota
	OutcomeBlocked
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomePresented:
		return "presented"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Presenter delivers a rendered document to its viewer.
type Presenter interface {
	Present(ctx context.Context, doc Document) (Outcome, error)
}

// State is the lifecycle of one Export.
type State int

const (
	StateIdle State = iota
	StateComposing
	StatePresenting
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateComposing:
		return "composing"
	case StatePresenting:
		return "presenting"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

var ErrAlreadyRun = errors.New("export: already run")

// Export drives a single render-then-present pass. It is not reusable.
type Export struct {
	presenter Presenter

	mu    sync.Mutex
	state State
}

func NewExport(p Presenter) *Export {
	return &Export{presenter: p}
}

// State returns the current lifecycle state.
func (e *Export) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Export) transition(from, to State) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != from {
		return false
	}
	e.state = to
	return true
}

// Run renders n and presents it. The Export ends in StateDone on every path.
func (e *Export) Run(ctx context.Context, n *model.Note, opts Options) (Document, Outcome, error) {
	if !e.transition(StateIdle, StateComposing) {
		return Document{}, OutcomeCancelled, ErrAlreadyRun
	}

	doc, err := Render(n, opts)
	if err != nil {
		e.transition(StateComposing, StateDone)
		return Document{}, OutcomeCancelled, err
	}

	e.transition(StateComposing, StatePresenting)
	defer e.transition(StatePresenting, StateDone)

	if err := ctx.Err(); err != nil {
		return doc, OutcomeCancelled, nil
	}
	outcome, err := e.presenter.Present(ctx, doc)
	return doc, outcome, err
}

// ResponsePresenter writes the document as the body of an HTTP response.
type ResponsePresenter struct {
	W http.ResponseWriter
}

func (p ResponsePresenter) Present(ctx context.Context, doc Document) (Outcome, error) {
	if ctx.Err() != nil {
		return OutcomeCancelled, nil
	}

	h := p.W.Header()
	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", doc.FileName))
	h.Set("Cache-Control", "no-store")
	p.W.WriteHeader(http.StatusOK)

	if _, err := io.WriteString(p.W, doc.HTML); err != nil {
		return OutcomeCancelled, fmt.Errorf("export: write response: %w", err)
	}
	return OutcomePresented, nil
}

// WritePresenter writes the document to any writer, such as a file or stdout.
type WritePresenter struct {
	W io.Writer
}

func (p WritePresenter) Present(ctx context.Context, doc Document) (Outcome, error) {
	if ctx.Err() != nil {
		return OutcomeCancelled, nil
	}
	if _, err := io.WriteString(p.W, doc.HTML); err != nil {
		return OutcomeCancelled, fmt.Errorf("export: write document: %w", err)
	}
	return OutcomePresented, nil
}
