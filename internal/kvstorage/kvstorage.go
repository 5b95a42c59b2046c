// Package kvstorage defines the line-oriented key=value text format shared
// by the boot block and the properties files, and the Store interface both
// of them implement.
//
// Lines starting with '#' are comments (or padding) and never carry data.
package kvstorage

import (
	"sort"
	"strings"

	"my-reboot/internal/fault"
)

// Store is an in-memory key/value mapping loaded from exactly one file.
// Mutations never touch the disk; every mutation must be followed by an
// explicit Save.
type Store interface {
	// Get returns the value for key and whether it was found.
	Get(key string) (string, bool)

	// Set assigns value to key in memory.
	Set(key, value string)

	// Unset removes key in memory. Removing a missing key is a no-op.
	Unset(key string)

	// All returns a copy of all key-value pairs.
	All() map[string]string

	// Save writes the whole mapping back to Path.
	Save() error

	// Path returns the file backing the store.
	Path() string
}

// Parse decodes key=value text. Comment lines and empty lines are skipped.
// A data line without '=' means the file was not produced by this tool or
// by GRUB, and is reported as an integrity error.
func Parse(text string) (map[string]string, error) {
	out := make(map[string]string)
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fault.Integrityf("line %d has no '=': %q", i+1, line)
		}
		out[key] = value
	}
	return out, nil
}

// Serialize encodes m as key=value lines. Keys are written in sorted
// order; readers must not rely on it.
func Serialize(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(m[k])
		b.WriteByte('\n')
	}
	return b.String()
}

// Copy returns a shallow copy of m.
func Copy(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
