package usecase_test

import (
	"context"
	"sync"

	"readshelf-share/internal/model"
	"readshelf-share/internal/note/repository"
)

// Mock logger for testing
type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository for testing
type mockRepo struct {
	notes    []model.Note
	listErr  error
	calls    int
	lastOpt  repository.ListPublicNotesOptions
	comments []model.Comment

	createFunc func(opt repository.CreateCommentOptions) (model.Comment, error)
	deleteFunc func(opt repository.DeleteCommentOptions) error
	listCErr   error
}

func (m *mockRepo) ListPublicNotes(ctx context.Context, opt repository.ListPublicNotesOptions) ([]model.Note, error) {
	m.calls++
	m.lastOpt = opt
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.notes, nil
}

func (m *mockRepo) ImageURL(file string) string {
	if file == "" {
		return ""
	}
	return "http://assets.local/uploads/" + file
}

func (m *mockRepo) ListComments(ctx context.Context, noteID string) ([]model.Comment, error) {
	if m.listCErr != nil {
		return nil, m.listCErr
	}
	return m.comments, nil
}

func (m *mockRepo) CreateComment(ctx context.Context, opt repository.CreateCommentOptions) (model.Comment, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Comment{ID: "c1", Text: opt.Text}, nil
}

func (m *mockRepo) DeleteComment(ctx context.Context, opt repository.DeleteCommentOptions) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(opt)
	}
	return nil
}
