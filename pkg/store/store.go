// Package store persists a movie catalog as a single JSON document shaped
// {"movies": [...]}. Every call reads or rewrites the whole document; nothing
// is cached between calls.
package store

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/marquee/pkg/constants"
	"github.com/agentstation/marquee/pkg/errors"
	"github.com/agentstation/marquee/pkg/logging"
	"github.com/agentstation/marquee/pkg/movies"
)

// Store reads and writes one catalog document.
type Store struct {
	path   string
	fs     afero.Fs
	logger *zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithFs sets the filesystem the document lives on.
func WithFs(fs afero.Fs) Option {
	return func(s *Store) {
		s.fs = fs
	}
}

// WithLogger sets the logger used for recoverable conditions.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a store for the document at path on the OS filesystem unless
// WithFs says otherwise.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		fs:     afero.NewOsFs(),
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the document path.
func (s *Store) Path() string {
	return s.path
}

// document is the on-disk shape.
type document struct {
	Movies []movies.Movie `json:"movies"`
}

// Load reads the catalog. A missing file or content that is not valid JSON
// yields an empty catalog. Records of the wrong shape fail with
// *errors.MalformedRecordError.
func (s *Store) Load() ([]movies.Movie, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			s.logger.Debug().Str("path", s.path).Msg("Catalog document not found, starting empty")
			return []movies.Movie{}, nil
		}
		return nil, errors.WrapIO("read", s.path, err)
	}

	if !json.Valid(data) {
		s.logger.Debug().Str("path", s.path).Msg("Catalog document is not valid JSON, starting empty")
		return []movies.Movie{}, nil
	}

	return decode(s.path, data)
}

// Save replaces the document with ms. The content is written to a temporary
// file next to the target and renamed over it.
func (s *Store) Save(ms []movies.Movie) error {
	if ms == nil {
		ms = []movies.Movie{}
	}

	data, err := json.MarshalIndent(document{Movies: ms}, "", constants.JSONIndent)
	if err != nil {
		return errors.WrapResource("encode", "catalog", s.path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("mkdir", dir, err)
	}

	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpPath)
		return errors.WrapIO("write", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpPath)
		return errors.WrapIO("close", tmpPath, err)
	}
	if err := s.fs.Chmod(tmpPath, constants.FilePermissions); err != nil {
		_ = s.fs.Remove(tmpPath)
		return errors.WrapIO("chmod", tmpPath, err)
	}
	if err := s.fs.Rename(tmpPath, s.path); err != nil {
		_ = s.fs.Remove(tmpPath)
		return errors.WrapIO("rename", s.path, err)
	}

	s.logger.Debug().Str("path", s.path).Int("movies", len(ms)).Msg("Catalog saved")
	return nil
}

// Add appends a movie and saves. Duplicate titles are not checked.
func (s *Store) Add(title string, rating float64, year int) error {
	ms, err := s.Load()
	if err != nil {
		return err
	}
	ms = append(ms, movies.Movie{Title: title, Rating: rating, Year: year})
	return s.Save(ms)
}

// Delete removes every movie whose title matches title under case folding.
// The document is only rewritten when something was removed.
func (s *Store) Delete(title string) (bool, error) {
	ms, err := s.Load()
	if err != nil {
		return false, err
	}

	folded := movies.FoldTitle(title)
	kept := make([]movies.Movie, 0, len(ms))
	for _, m := range ms {
		if movies.FoldTitle(m.Title) != folded {
			kept = append(kept, m)
		}
	}

	if len(kept) == len(ms) {
		return false, nil
	}
	if err := s.Save(kept); err != nil {
		return false, err
	}
	return true, nil
}

// decode converts a syntactically valid document into typed records.
func decode(path string, data []byte) ([]movies.Movie, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil || top == nil {
		return nil, errors.NewMalformedRecordError(path, -1, "", "document must be an object")
	}

	raw, ok := top["movies"]
	if !ok || isNull(raw) {
		return []movies.Movie{}, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errors.NewMalformedRecordError(path, -1, "movies", "must be an array")
	}

	ms := make([]movies.Movie, 0, len(records))
	for i, rec := range records {
		m, err := decodeRecord(path, i, rec)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, nil
}

func decodeRecord(path string, index int, raw json.RawMessage) (movies.Movie, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return movies.Movie{}, errors.NewMalformedRecordError(path, index, "", "must be an object")
	}

	for _, name := range []string{"title", "rating", "year"} {
		if v, ok := fields[name]; !ok || isNull(v) {
			return movies.Movie{}, errors.NewMalformedRecordError(path, index, name, "is required")
		}
	}

	var m movies.Movie
	if err := json.Unmarshal(fields["title"], &m.Title); err != nil {
		return movies.Movie{}, errors.NewMalformedRecordError(path, index, "title", "must be a string")
	}
	if err := json.Unmarshal(fields["rating"], &m.Rating); err != nil {
		return movies.Movie{}, errors.NewMalformedRecordError(path, index, "rating", "must be a number")
	}
	if err := json.Unmarshal(fields["year"], &m.Year); err != nil {
		return movies.Movie{}, errors.NewMalformedRecordError(path, index, "year", "must be an integer")
	}
	return m, nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
