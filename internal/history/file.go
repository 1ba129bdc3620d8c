package history

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/xeipuuv/gojsonschema"

	"pairup/internal/fileutil"
	"pairup/internal/logging"
)

//go:embed schema.json
var documentSchema []byte

// ErrInvalidDocument reports a history file that does not match the schema.
var ErrInvalidDocument = errors.New("invalid history document")

const lockRetryDelay = 50 * time.Millisecond

// FileStore keeps the history in one JSON document. A sibling .lock file
// serializes writers across processes.
type FileStore struct {
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

// NewFileStore returns a store for path. The file is created on first save.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &FileStore{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logger,
	}
}

// Path returns the document location.
func (s *FileStore) Path() string { return s.path }

// Load reads the document. A missing or empty file is an empty Book.
func (s *FileStore) Load(ctx context.Context) (*Book, error) {
	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	defer s.release()
	return s.load()
}

// Save replaces the document with book.
func (s *FileStore) Save(ctx context.Context, book *Book) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()
	return s.save(book)
}

func (s *FileStore) update(ctx context.Context, fn func(*Book) error) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()
	book, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(book); err != nil {
		return err
	}
	return s.save(book)
}

// Close is a no-op; locks are released after every call.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) acquire(ctx context.Context) error {
	if err := fileutil.EnsureParent(s.path); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}
	ok, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("lock history file: %w", err)
	}
	if !ok {
		return fmt.Errorf("lock history file: %s is held by another process", s.lock.Path())
	}
	return nil
}

func (s *FileStore) release() {
	if err := s.lock.Unlock(); err != nil {
		s.logger.Warn("failed to release history lock",
			logging.String(logging.FieldEventType, "history_unlock_failed"),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "remove the stale .lock file if no pairup process is running"),
			logging.String(logging.FieldImpact, "later history writes may block"),
		)
	}
}

func (s *FileStore) load() (*Book, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewBook(), nil
		}
		return nil, fmt.Errorf("read history file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return NewBook(), nil
	}

	if err := validateDocument(data); err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse history file: %w", err)
	}

	book := FromDocument(doc)
	s.logger.Debug("loaded pairing history",
		logging.Int("weeks", len(doc)),
		logging.String("path", s.path),
	)
	return book, nil
}

func (s *FileStore) save(book *Book) error {
	data, err := json.MarshalIndent(book.Document(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	data = append(data, '\n')

	if err := fileutil.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("save history: %w", err)
	}

	s.logger.Debug("saved pairing history", logging.String("path", s.path))
	return nil
}

func validateDocument(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(documentSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if !result.Valid() {
		problems := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			problems[i] = desc.String()
		}
		return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(problems, "; "))
	}
	return nil
}
