// Package grubenv implements kvstorage.Store for GRUB's environment block:
// a header comment line, key=value entries and '#' padding, exactly
// Size bytes long.
package grubenv

import (
	"fmt"
	"os"
	"strings"

	"my-reboot/internal/kvstorage"
	"my-reboot/internal/kvstorage/filesystem"
)

const (
	// Size is the fixed length of an environment block.
	Size = 1024

	// Header is the first line of every environment block.
	Header = "# GRUB Environment Block\n"
)

// Store implements kvstorage.Store over a grubenv file.
type Store struct {
	path    string
	content map[string]string
}

var _ kvstorage.Store = (*Store)(nil)

// Load reads the environment block at path. The block is created by the
// bootloader's tooling, so a missing file is an error.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading grubenv: %w", err)
	}
	content, err := kvstorage.Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing grubenv %s: %w", path, err)
	}
	return &Store{path: path, content: content}, nil
}

// New returns a store for path holding a copy of content, without
// touching the disk.
func New(path string, content map[string]string) *Store {
	return &Store{path: path, content: kvstorage.Copy(content)}
}

// Encode renders content as a padded block. Content that does not fit is
// an ErrOverflow; it is never truncated.
func Encode(content map[string]string) ([]byte, error) {
	text := Header + kvstorage.Serialize(content)
	if len(text) > Size {
		return nil, fmt.Errorf("%w: %d bytes, limit is %d", kvstorage.ErrOverflow, len(text), Size)
	}
	return []byte(text + strings.Repeat("#", Size-len(text))), nil
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

// Path returns the grubenv file path.
func (s *Store) Path() string {
	return s.path
}

// Save encodes the block and rewrites the file in place.
func (s *Store) Save() error {
	data, err := Encode(s.content)
	if err != nil {
		return fmt.Errorf("saving grubenv %s: %w", s.path, err)
	}
	if err := filesystem.WriteInPlace(s.path, data); err != nil {
		return fmt.Errorf("writing grubenv: %w", err)
	}
	return nil
}
