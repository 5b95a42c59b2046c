// Package properties implements kvstorage.Store for the tool's own
// settings files. Values are stored with backslashes doubled so Windows
// device identifiers and paths survive a round trip.
package properties

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"my-reboot/internal/kvstorage"
	"my-reboot/internal/kvstorage/filesystem"
)

// Store implements kvstorage.Store over a key=value properties file.
type Store struct {
	path    string
	content map[string]string
}

var _ kvstorage.Store = (*Store)(nil)

// Load reads the properties file at path. When the file does not exist
// and mustExist is false, a warning is logged and an empty store is
// returned; the file is created on the first Save.
func Load(path string, mustExist bool, logger *slog.Logger) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !mustExist && errors.Is(err, fs.ErrNotExist) {
			if logger != nil {
				logger.Warn(fmt.Sprintf("Arquivo %q não encontrado. Prosseguindo com conteúdo vazio.", path),
					"path", path)
			}
			return New(path, nil), nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	content, err := decode(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &Store{path: path, content: content}, nil
}

// New returns a store for path holding a copy of content, without
// touching the disk.
func New(path string, content map[string]string) *Store {
	return &Store{path: path, content: kvstorage.Copy(content)}
}

func decode(text string) (map[string]string, error) {
	m, err := kvstorage.Parse(text)
	if err != nil {
		return nil, err
	}
	for k, v := range m {
		m[k] = Unescape(v)
	}
	return m, nil
}

// Encode renders content as file text, escaping every value.
func Encode(content map[string]string) string {
	escaped := make(map[string]string, len(content))
	for k, v := range content {
		escaped[k] = Escape(v)
	}
	return kvstorage.Serialize(escaped)
}

// Escape doubles every backslash in v.
func Escape(v string) string {
	return strings.ReplaceAll(v, `\`, `\\`)
}

// Unescape turns every doubled backslash in v back into a single one.
func Unescape(v string) string {
	return strings.ReplaceAll(v, `\\`, `\`)
}

// Get returns the value for key and whether it was found.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.content[key]
	return v, ok
}

// Set assigns value to key in memory.
func (s *Store) Set(key, value string) {
	s.content[key] = value
}

// Unset removes key in memory.
func (s *Store) Unset(key string) {
	delete(s.content, key)
}

// All returns a copy of all key-value pairs.
func (s *Store) All() map[string]string {
	return kvstorage.Copy(s.content)
}

// Path returns the properties file path.
func (s *Store) Path() string {
	return s.path
}

// Save overwrites the properties file with the current content.
func (s *Store) Save() error {
	if err := filesystem.AtomicWrite(s.path, []byte(Encode(s.content))); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}
