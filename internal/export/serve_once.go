package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	pkgLog "readshelf-share/pkg/log"
)

const (
	defaultServeTimeout = 2 * time.Minute
	shutdownTimeout     = 5 * time.Second
)

// Launcher opens url in a viewer, typically the system browser.
type Launcher func(ctx context.Context, url string) error

// ServeOncePresenter serves the document from an ephemeral loopback address,
// opens it with Launcher and releases the listener after the first load.
type ServeOncePresenter struct {
	Launcher Launcher
	Timeout  time.Duration // Wait for the first load, 2m when zero
	Logger   pkgLog.Logger
}

func (p ServeOncePresenter) Present(ctx context.Context, doc Document) (Outcome, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return OutcomeBlocked, fmt.Errorf("export: listen: %w", err)
	}

	path := "/" + uuid.NewString() + ".html"
	loaded := make(chan struct{})
	var loadOnce sync.Once

	mux := http.NewServeMux()
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if _, err := io.WriteString(w, doc.HTML); err != nil {
			p.warnf(ctx, "export: write document %s: %v", doc.FileName, err)
			return
		}
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		loadOnce.Do(func() { close(loaded) })
	})

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			p.warnf(ctx, "export: serve document: %v", err)
		}
	}()

	var releaseOnce sync.Once
	release := func() {
		releaseOnce.Do(func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				p.warnf(ctx, "export: release document server: %v", err)
			}
		})
	}
	defer release()

	url := "http://" + ln.Addr().String() + path
	launch := p.Launcher
	if launch == nil {
		launch = OpenBrowser
	}
	if err := launch(ctx, url); err != nil {
		p.warnf(ctx, "export: viewer blocked for %s: %v", doc.FileName, err)
		return OutcomeBlocked, nil
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultServeTimeout
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-loaded:
		return OutcomePresented, nil
	case <-ctx.Done():
		return OutcomeCancelled, nil
	case <-timer.C:
		p.warnf(ctx, "export: document %s was not loaded within %s", doc.FileName, timeout)
		return OutcomeCancelled, nil
	}
}

func (p ServeOncePresenter) warnf(ctx context.Context, format string, args ...any) {
	if p.Logger != nil {
		p.Logger.Warnf(ctx, format, args...)
	}
}

// OpenBrowser opens url with the platform's default browser.
func OpenBrowser(_ context.Context, url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("export: launch browser: %w", err)
	}
	go cmd.Wait()
	return nil
}
