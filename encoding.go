package fixedmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUninitialized is returned when decoding into a Map or Set that was
// not constructed first. Decoding needs the storage tree, and the storage
// tree needs the key's shape descriptor, so the zero value cannot be a
// decode target.
var ErrUninitialized = errors.New("fixedmap: container not initialized")

// pair is the wire form of one map entry. Containers serialize as a flat
// sequence of occupied entries in iteration order, which keeps the wire
// form independent of the storage representation.
type pair[K, V any] struct {
	Key   K `json:"key" yaml:"key"`
	Value V `json:"value" yaml:"value"`
}

func (m *Map[K, V]) pairs() []pair[K, V] {
	ps := make([]pair[K, V], 0, m.Len())
	for k, v := range m.All() {
		ps = append(ps, pair[K, V]{Key: k, Value: v})
	}
	return ps
}

// MarshalJSON encodes the map as a JSON array of {key, value} objects in
// iteration order.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.pairs())
}

// UnmarshalJSON replaces the map's contents with the entries of a JSON
// array of {key, value} objects. The map must already be constructed;
// decoding into a zero Map returns [ErrUninitialized]. Round-tripping
// reproduces occupancy and values exactly.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	if m.storage == nil {
		return ErrUninitialized
	}
	var ps []pair[K, V]
	if err := json.Unmarshal(data, &ps); err != nil {
		return fmt.Errorf("fixedmap: decode entries: %w", err)
	}
	m.Clear()
	for _, p := range ps {
		m.Insert(p.Key, p.Value)
	}
	return nil
}

// MarshalYAML encodes the map as a YAML sequence of {key, value} mappings
// in iteration order.
func (m *Map[K, V]) MarshalYAML() (any, error) {
	return m.pairs(), nil
}

// UnmarshalYAML replaces the map's contents with the entries of a YAML
// sequence of {key, value} mappings. The map must already be constructed.
func (m *Map[K, V]) UnmarshalYAML(node *yaml.Node) error {
	if m.storage == nil {
		return ErrUninitialized
	}
	var ps []pair[K, V]
	if err := node.Decode(&ps); err != nil {
		return fmt.Errorf("fixedmap: decode entries: %w", err)
	}
	m.Clear()
	for _, p := range ps {
		m.Insert(p.Key, p.Value)
	}
	return nil
}

func (s *Set[K]) keySlice() []K {
	ks := make([]K, 0, s.Len())
	for k := range s.All() {
		ks = append(ks, k)
	}
	return ks
}

// MarshalJSON encodes the set as a JSON array of keys in iteration order.
func (s *Set[K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.keySlice())
}

// UnmarshalJSON replaces the set's contents with the keys of a JSON array.
// The set must already be constructed.
func (s *Set[K]) UnmarshalJSON(data []byte) error {
	if s.m == nil || s.m.storage == nil {
		return ErrUninitialized
	}
	var ks []K
	if err := json.Unmarshal(data, &ks); err != nil {
		return fmt.Errorf("fixedmap: decode keys: %w", err)
	}
	s.Clear()
	for _, k := range ks {
		s.Insert(k)
	}
	return nil
}

// MarshalYAML encodes the set as a YAML sequence of keys in iteration order.
func (s *Set[K]) MarshalYAML() (any, error) {
	return s.keySlice(), nil
}

// UnmarshalYAML replaces the set's contents with the keys of a YAML
// sequence. The set must already be constructed.
func (s *Set[K]) UnmarshalYAML(node *yaml.Node) error {
	if s.m == nil || s.m.storage == nil {
		return ErrUninitialized
	}
	var ks []K
	if err := node.Decode(&ks); err != nil {
		return fmt.Errorf("fixedmap: decode keys: %w", err)
	}
	s.Clear()
	for _, k := range ks {
		s.Insert(k)
	}
	return nil
}

// SaveFile writes a container (or anything else marshalable) to path,
// encoding as YAML for .yaml/.yml extensions and indented JSON otherwise.
func SaveFile(path string, v any) error {
	var (
		data []byte
		err  error
	)
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(v)
	default:
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// LoadFile reads a container previously written by [SaveFile]. The target
// must be a constructed container (or a pointer to any other decodable
// value); the codec is chosen by extension as in SaveFile.
func LoadFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("yaml unmarshal %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("json unmarshal %s: %w", path, err)
		}
	}
	return nil
}
