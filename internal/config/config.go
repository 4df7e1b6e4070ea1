package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
)

const (
	// AppName is the namespace of the per-user config directory.
	AppName = "serde"

	// DefaultFileName is looked up inside the per-user config directory.
	DefaultFileName = "config.yaml"
)

// Record is the resolved configuration. Both fields are optional:
// nil means "not set" and is distinct from an empty list or a zero id.
type Record struct {
	Name *[]string `json:"name" yaml:"name" toml:"name"`
	ID   *uint64   `json:"id" yaml:"id" toml:"id"`
}

// NewRecord builds a record with both fields present.
func NewRecord(name []string, id uint64) Record {
	n := slices.Clone(name)
	if n == nil {
		n = []string{}
	}
	return Record{Name: &n, ID: &id}
}

// Equal compares two records by value, presence included.
func (r Record) Equal(o Record) bool {
	if (r.Name == nil) != (o.Name == nil) {
		return false
	}
	if r.Name != nil && !slices.Equal(*r.Name, *o.Name) {
		return false
	}
	if (r.ID == nil) != (o.ID == nil) {
		return false
	}
	return r.ID == nil || *r.ID == *o.ID
}

// String renders the debug form, e.g. Record{name: ["a" "b"], id: 12}.
func (r Record) String() string {
	var b strings.Builder
	b.WriteString("Record{name: ")
	if r.Name == nil {
		b.WriteString("none")
	} else {
		b.WriteString("[")
		for i, n := range *r.Name {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(strconv.Quote(n))
		}
		b.WriteString("]")
	}
	b.WriteString(", id: ")
	if r.ID == nil {
		b.WriteString("none")
	} else {
		b.WriteString(strconv.FormatUint(*r.ID, 10))
	}
	b.WriteString("}")
	return b.String()
}

// LoadFromFile reads path and decodes it with the format picked from its
// extension. Every failure here is a user error: nothing falls back.
func LoadFromFile(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("read config file %q: %w", path, err)
	}

	f, err := FormatFromPath(path)
	if err != nil {
		return Record{}, fmt.Errorf("config file %q: %w", path, err)
	}

	rec, err := Decode(f, data)
	if err != nil {
		return Record{}, fmt.Errorf("invalid %s %q: %w", f, path, err)
	}

	return rec, nil
}
