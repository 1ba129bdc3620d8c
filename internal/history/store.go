package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pairup/internal/config"
	"pairup/internal/logging"
)

// ErrUnknownBackend is returned by Open for an unsupported history.backend.
var ErrUnknownBackend = errors.New("unknown history backend")

// Store persists a Book.
type Store interface {
	Load(ctx context.Context) (*Book, error)
	Save(ctx context.Context, book *Book) error
	Close() error
}

// Open builds the store selected by cfg.History.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Store, error) {
	logger = logging.NewComponentLogger(logger, "history")
	switch cfg.History.Backend {
	case "json":
		return NewFileStore(cfg.History.Path, logger), nil
	case "sqlite":
		return OpenSQLStore(ctx, cfg.History.Path)
	case "redis":
		return OpenRedisStore(ctx, RedisOptions{
			Addr:     cfg.History.RedisAddr,
			Password: cfg.History.RedisPassword,
			DB:       cfg.History.RedisDB,
			Prefix:   cfg.History.RedisPrefix,
		})
	case "none", "":
		return NopStore{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.History.Backend)
	}
}

// Update loads the book, applies fn and saves the result.
func Update(ctx context.Context, store Store, fn func(*Book) error) error {
	if u, ok := store.(interface {
		update(context.Context, func(*Book) error) error
	}); ok {
		return u.update(ctx, fn)
	}
	book, err := store.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(book); err != nil {
		return err
	}
	return store.Save(ctx, book)
}

// NopStore keeps nothing.
type NopStore struct{}

func (NopStore) Load(context.Context) (*Book, error) { return NewBook(), nil }

func (NopStore) Save(context.Context, *Book) error { return nil }

func (NopStore) Close() error { return nil }
