package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a mapping without yaml.v3's scalar coercion:
// name items must be strings and id must be an integer, as in JSON and TOML.
func (r *Record) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping, got %s", value.Line, value.ShortTag())
	}

	var out Record
	seen := make(map[string]bool, 2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], deref(value.Content[i+1])
		if key.Kind != yaml.ScalarNode {
			continue
		}

		switch key.Value {
		case "name", "id":
			if seen[key.Value] {
				return fmt.Errorf("line %d: duplicate field %q", key.Line, key.Value)
			}
			seen[key.Value] = true
		}

		var err error
		switch key.Value {
		case "name":
			out.Name, err = yamlStrings(val)
		case "id":
			out.ID, err = yamlUint(val)
		}
		if err != nil {
			return err
		}
	}

	*r = out
	return nil
}

func deref(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func yamlStrings(n *yaml.Node) (*[]string, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: name: expected a sequence, got %s", n.Line, n.ShortTag())
	}

	names := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		item = deref(item)
		if item.Kind != yaml.ScalarNode || item.ShortTag() != "!!str" {
			return nil, fmt.Errorf("line %d: name: expected a string, got %s", item.Line, item.ShortTag())
		}
		names = append(names, item.Value)
	}
	return &names, nil
}

func yamlUint(n *yaml.Node) (*uint64, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!int" {
		return nil, fmt.Errorf("line %d: id: expected an unsigned integer, got %s", n.Line, n.ShortTag())
	}

	var id uint64
	if err := n.Decode(&id); err != nil {
		return nil, fmt.Errorf("line %d: id: %w", n.Line, err)
	}
	return &id, nil
}

// UnmarshalJSON matches keys exactly and rejects a repeated name or id,
// which encoding/json would otherwise let the last one win.
func (r *Record) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected a JSON object, got %v", tok)
	}

	var out Record
	seen := make(map[string]bool, 2)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		switch key {
		case "name", "id":
			if seen[key] {
				return fmt.Errorf("duplicate field %q", key)
			}
			seen[key] = true
		}

		switch key {
		case "name":
			err = json.Unmarshal(raw, &out.Name)
		case "id":
			err = json.Unmarshal(raw, &out.ID)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}

	*r = out
	return nil
}
