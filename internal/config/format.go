package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/encoding/unicode"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for file extensions with no decoder.
var ErrUnsupportedFormat = errors.New("unsupported file type")

// Format identifies one of the supported file encodings.
type Format int

const (
	FormatJSON Format = iota + 1
	FormatYAML
	FormatTOML
)

// Formats lists every supported format in dispatch order.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// Ext returns the file extension, dot included.
func (f Format) Ext() string {
	return "." + f.String()
}

// FormatFromPath matches the path suffix exactly (case-sensitive).
func FormatFromPath(path string) (Format, error) {
	for _, f := range Formats {
		if strings.HasSuffix(path, f.Ext()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// ParseFormat maps a name such as "yaml" to its Format.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// Decode interprets data as f. Invalid UTF-8 is replaced with U+FFFD
// before parsing, never rejected. Unknown keys are ignored.
func Decode(f Format, data []byte) (Record, error) {
	text, err := lossyUTF8(data)
	if err != nil {
		return Record{}, err
	}

	var rec Record
	switch f {
	case FormatJSON:
		err = json.Unmarshal(text, &rec)
	case FormatYAML:
		err = yaml.Unmarshal(text, &rec)
	case FormatTOML:
		_, err = toml.Decode(string(text), &rec)
	default:
		return Record{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Encode is the inverse of Decode. Absent fields are written as null in
// JSON and YAML and left out in TOML, which has no null.
func Encode(f Format, r Record) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.Marshal(r)
	case FormatYAML:
		return yaml.Marshal(r)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(r); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

func lossyUTF8(data []byte) ([]byte, error) {
	out, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode utf-8: %w", err)
	}
	return out, nil
}
