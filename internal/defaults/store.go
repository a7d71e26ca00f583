package defaults

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the cache file kept in the platform temp directory.
const FileName = ".semcommit-defaults"

// Record holds the values pre-filled into the next session's prompts.
type Record struct {
	CommitType    string `toml:"commit_type"`
	CommitProject string `toml:"commit_project"`
	CommitMessage string `toml:"commit_message"`
}

// Store loads and saves the last-used Record.
type Store interface {
	Load() Record
	Save(Record) error
}

// Fallback is the record used when nothing usable is cached.
func Fallback() Record {
	return Record{
		CommitType:    "feat",
		CommitProject: "none",
		CommitMessage: "something",
	}
}

// DefaultPath returns the shared cache location in os.TempDir.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), FileName)
}

// FileStore keeps the Record as TOML in a single file. Access is unlocked;
// concurrent sessions simply overwrite each other.
type FileStore struct {
	Path   string
	Logger *slog.Logger
}

// NewFileStore returns a FileStore for path, or DefaultPath when path is empty.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath()
	}
	return &FileStore{Path: path}
}

// Load never fails: a missing, unreadable or corrupt file yields Fallback.
// Keys absent from an otherwise valid file keep their fallback values.
func (s *FileStore) Load() Record {
	rec, err := s.read()
	if err != nil {
		if s.Logger != nil {
			s.Logger.Warn("Ignoring cached defaults", "path", s.Path, "error", err)
		}
		return Fallback()
	}
	return rec
}

func (s *FileStore) read() (Record, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Fallback(), nil
		}
		return Fallback(), fmt.Errorf("read defaults: %w", err)
	}

	rec := Fallback()
	if err := toml.Unmarshal(data, &rec); err != nil {
		return Fallback(), fmt.Errorf("parse defaults %s: %w", s.Path, err)
	}
	return rec, nil
}

// Save replaces the file contents with rec.
func (s *FileStore) Save(rec Record) error {
	data, err := toml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode defaults: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("write defaults: %w", err)
	}
	return nil
}
