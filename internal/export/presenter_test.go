package export_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"readshelf-share/internal/export"
)

type warnLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *warnLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *warnLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *warnLogger) Info(ctx context.Context, args ...any)                   {}
func (m *warnLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *warnLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *warnLogger) Error(ctx context.Context, args ...any)                  {}
func (m *warnLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *warnLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *warnLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *warnLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *warnLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *warnLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *warnLogger) Fatalf(ctx context.Context, format string, args ...any)  {}
func (m *warnLogger) Warnf(ctx context.Context, format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, fmt.Sprintf(format, args...))
}

func (m *warnLogger) contains(sub string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.warns {
		if strings.Contains(w, sub) {
			return true
		}
	}
	return false
}

type recordingPresenter struct {
	e       *export.Export
	seen    export.State
	outcome export.Outcome
	err     error
	calls   int
}

func (p *recordingPresenter) Present(ctx context.Context, doc export.Document) (export.Outcome, error) {
	p.calls++
	p.seen = p.e.State()
	return p.outcome, p.err
}

func TestExportRun(t *testing.T) {
	t.Run("walks the state machine", func(t *testing.T) {
		p := &recordingPresenter{outcome: export.OutcomePresented}
		e := export.NewExport(p)
		p.e = e

		if e.State() != export.StateIdle {
			t.Fatalf("expected idle, got %s", e.State())
		}
		doc, outcome, err := e.Run(context.Background(), fullNote(), testOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome != export.OutcomePresented {
			t.Errorf("expected presented, got %s", outcome)
		}
		if p.seen != export.StatePresenting {
			t.Errorf("presenter should run in presenting state, saw %s", p.seen)
		}
		if e.State() != export.StateDone {
			t.Errorf("expected done, got %s", e.State())
		}
		if doc.HTML == "" {
			t.Error("expected rendered document")
		}
	})

	t.Run("single use", func(t *testing.T) {
		p := &recordingPresenter{outcome: export.OutcomePresented}
		e := export.NewExport(p)
		p.e = e
		if _, _, err := e.Run(context.Background(), fullNote(), testOptions()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, _, err := e.Run(context.Background(), fullNote(), testOptions()); !errors.Is(err, export.ErrAlreadyRun) {
			t.Errorf("expected ErrAlreadyRun, got %v", err)
		}
	})

	t.Run("render failure ends done without presenting", func(t *testing.T) {
		p := &recordingPresenter{}
		e := export.NewExport(p)
		p.e = e
		if _, _, err := e.Run(context.Background(), nil, testOptions()); !errors.Is(err, export.ErrNilNote) {
			t.Errorf("expected ErrNilNote, got %v", err)
		}
		if p.calls != 0 {
			t.Error("presenter should not be called")
		}
		if e.State() != export.StateDone {
			t.Errorf("expected done, got %s", e.State())
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		p := &recordingPresenter{}
		e := export.NewExport(p)
		p.e = e
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, outcome, err := e.Run(ctx, fullNote(), testOptions())
		if err != nil || outcome != export.OutcomeCancelled {
			t.Errorf("expected cancelled, got %s, %v", outcome, err)
		}
		if p.calls != 0 {
			t.Error("presenter should not be called")
		}
	})
}

func TestResponsePresenter(t *testing.T) {
	w := httptest.NewRecorder()
	doc := export.Document{HTML: "<html></html>", FileName: "atomic-habits.html"}

	outcome, err := export.ResponsePresenter{W: w}.Present(context.Background(), doc)
	if err != nil || outcome != export.OutcomePresented {
		t.Fatalf("unexpected result %s, %v", outcome, err)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("unexpected content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "atomic-habits.html") {
		t.Errorf("unexpected content disposition %q", cd)
	}
	if w.Body.String() != doc.HTML {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestWritePresenter(t *testing.T) {
	var buf bytes.Buffer
	outcome, err := export.WritePresenter{W: &buf}.Present(context.Background(), export.Document{HTML: "<p>x</p>"})
	if err != nil || outcome != export.OutcomePresented {
		t.Fatalf("unexpected result %s, %v", outcome, err)
	}
	if buf.String() != "<p>x</p>" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestServeOncePresenter(t *testing.T) {
	doc := export.Document{HTML: "<html><body>printable</body></html>", FileName: "x.html"}

	t.Run("presented after first load then released", func(t *testing.T) {
		var served string
		var docURL string
		done := make(chan struct{})

		p := export.ServeOncePresenter{
			Timeout: 5 * time.Second,
			Launcher: func(ctx context.Context, u string) error {
				docURL = u
				go func() {
					defer close(done)
					resp, err := http.Get(u)
					if err != nil {
						t.Errorf("load failed: %v", err)
						return
					}
					defer resp.Body.Close()
					b, _ := io.ReadAll(resp.Body)
					served = string(b)
				}()
				return nil
			},
		}

		outcome, err := p.Present(context.Background(), doc)
		if err != nil || outcome != export.OutcomePresented {
			t.Fatalf("unexpected result %s, %v", outcome, err)
		}
		<-done
		if served != doc.HTML {
			t.Errorf("unexpected served body %q", served)
		}

		client := &http.Client{Timeout: time.Second}
		if resp, err := client.Get(docURL); err == nil {
			resp.Body.Close()
			t.Error("listener should be released after presentation")
		}
	})

	t.Run("launcher failure is blocked", func(t *testing.T) {
		p := export.ServeOncePresenter{
			Launcher: func(ctx context.Context, u string) error { return errors.New("no display") },
		}
		outcome, err := p.Present(context.Background(), doc)
		if err != nil || outcome != export.OutcomeBlocked {
			t.Errorf("expected blocked, got %s, %v", outcome, err)
		}
	})

	t.Run("never loaded is cancelled", func(t *testing.T) {
		p := export.ServeOncePresenter{
			Timeout:  50 * time.Millisecond,
			Launcher: func(ctx context.Context, u string) error { return nil },
		}
		outcome, err := p.Present(context.Background(), doc)
		if err != nil || outcome != export.OutcomeCancelled {
			t.Errorf("expected cancelled, got %s, %v", outcome, err)
		}
	})

	t.Run("failed write is logged and not a load", func(t *testing.T) {
		logger := &warnLogger{}
		big := export.Document{HTML: strings.Repeat("x", 32<<20), FileName: "big.html"}
		p := export.ServeOncePresenter{
			Timeout: 2 * time.Second,
			Logger:  logger,
			Launcher: func(ctx context.Context, u string) error {
				parsed, err := url.Parse(u)
				if err != nil {
					return err
				}
				conn, err := net.Dial("tcp", parsed.Host)
				if err != nil {
					return err
				}
				fmt.Fprintf(conn, "GET %s HTTP/1.1\r\nHost: %s\r\n\r\n", parsed.Path, parsed.Host)
				// Hang up once the body starts arriving.
				buf := make([]byte, 1)
				_, err = conn.Read(buf)
				conn.Close()
				return err
			},
		}
		outcome, err := p.Present(context.Background(), big)
		if err != nil || outcome != export.OutcomeCancelled {
			t.Errorf("expected cancelled, got %s, %v", outcome, err)
		}
		if !logger.contains("write document big.html") {
			t.Errorf("expected write failure to be logged, got %v", logger.warns)
		}
	})

	t.Run("context cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		p := export.ServeOncePresenter{
			Launcher: func(ctx context.Context, u string) error {
				cancel()
				return nil
			},
		}
		outcome, _ := p.Present(ctx, doc)
		if outcome != export.OutcomeCancelled {
			t.Errorf("expected cancelled, got %s", outcome)
		}
	})
}
