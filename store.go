package msgsource

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ZaguanLabs/msgsource/cache"
)

// Store reads and writes message catalogs under a root directory.
//
// Catalogs are loaded lazily and kept in memory for the lifetime of the
// store; only a Write to the same (category, locale) replaces a cached
// catalog. Changes made to the files by other processes after a catalog was
// loaded are not picked up.
//
// Cache access is synchronized, but loads and writes of the same catalog from
// different goroutines are not ordered against each other. Callers that share
// a store between goroutines and also write through it must coordinate.
type Store struct {
	root   string
	cache  cache.Cache[*Catalog]
	logger *slog.Logger
}

// Option is a functional option for configuring the Store.
type Option func(*Store)

// WithLogger sets the logger used for debug records about loads and writes.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithCache replaces the default in-memory catalog cache.
func WithCache(c cache.Cache[*Catalog]) Option {
	return func(s *Store) {
		s.cache = c
	}
}

// NewStore creates a store rooted at the given directory. The directory does
// not need to exist until the first write.
func NewStore(root string, opts ...Option) *Store {
	s := &Store{
		root:   root,
		cache:  cache.NewMemory[*Catalog](),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Root returns the base directory of the store.
func (s *Store) Root() string {
	return s.root
}

// Path returns the file that holds (category, locale).
func (s *Store) Path(category, locale string) (string, error) {
	return CatalogPath(s.root, category, locale)
}

// GetMessage returns the translation of id. The boolean is false when the
// message or the whole catalog does not exist; that is not an error.
func (s *Store) GetMessage(id, category, locale string) (string, bool, error) {
	c, err := s.load(category, locale)
	if err != nil {
		return "", false, err
	}
	msg, ok := c.Message(id)
	return msg, ok, nil
}

// GetMessages returns a copy of the catalog for (category, locale). A
// catalog without a file is empty.
func (s *Store) GetMessages(category, locale string) (*Catalog, error) {
	c, err := s.load(category, locale)
	if err != nil {
		return nil, err
	}
	return c.Clone(), nil
}

// Write replaces the catalog for (category, locale) on disk and in the cache.
// A nil catalog is written as an empty one.
func (s *Store) Write(category, locale string, messages *Catalog) error {
	path, err := s.Path(category, locale)
	if err != nil {
		return err
	}

	data := Marshal(messages)
	if err := writeFileAtomic(path, data); err != nil {
		return err
	}

	s.cache.Set(cache.Key{Category: category, Locale: locale}, messages.Clone())
	s.logger.Debug("catalog written",
		"path", path,
		"entries", messages.Len(),
		"bytes", len(data),
	)
	return nil
}

// WriteRaw validates loosely typed entries and writes them as the catalog for
// (category, locale). Nothing is written if any entry is invalid.
func (s *Store) WriteRaw(category, locale string, entries []RawEntry) error {
	c, err := ToCatalog(entries)
	if err != nil {
		return err
	}
	return s.Write(category, locale, c)
}

// Reset drops every cached catalog, so the next lookup of each key reads
// its file again. Use it after the files were changed by another process.
func (s *Store) Reset() {
	s.cache.Clear()
	s.logger.Debug("catalog cache cleared", "root", s.root)
}

// load returns the cached catalog, reading it from disk on a miss.
func (s *Store) load(category, locale string) (*Catalog, error) {
	path, err := s.Path(category, locale)
	if err != nil {
		return nil, err
	}

	key := cache.Key{Category: category, Locale: locale}
	if c, ok := s.cache.Get(key); ok {
		return c, nil
	}

	c, err := s.read(path)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, c)
	return c, nil
}

func (s *Store) read(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("catalog missing", "path", path)
		return NewCatalog(), nil
	}
	if err != nil {
		return nil, &IOError{Op: OpRead, Path: path, Cause: err}
	}

	c, err := Unmarshal(data)
	if err != nil {
		return nil, &CorruptDataError{Path: path, Cause: err}
	}

	s.logger.Debug("catalog loaded", "path", path, "entries", c.Len())
	return c, nil
}
