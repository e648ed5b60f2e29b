// SPDX-License-Identifier: MIT
// Package dynarray: YAML and JSON encoding.
//
// An Array encodes as a plain sequence of its logical elements; capacity and
// options are not part of the encoding. Decoding replaces the logical content
// of an Array built by a constructor (the comparator and search policy are
// kept, capacity only grows). The zero Array has no comparator and refuses
// to decode.

package dynarray

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Compile-time checks.
var (
	_ yaml.Marshaler   = (*Array[int])(nil)
	_ yaml.Unmarshaler = (*Array[int])(nil)
	_ json.Marshaler   = (*Array[int])(nil)
	_ json.Unmarshaler = (*Array[int])(nil)
)

// MarshalYAML implements yaml.Marshaler.
func (a *Array[T]) MarshalYAML() (interface{}, error) {
	return a.ToArray(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
//
// Errors:
//   - ErrNilComparer if the receiver was not built by a constructor.
//   - ErrDecode if the node is not a sequence or an element fails to decode.
func (a *Array[T]) UnmarshalYAML(value *yaml.Node) error {
	if a.compare == nil {
		return ErrNilComparer
	}
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: expected a YAML sequence at line %d", ErrDecode, value.Line)
	}
	var items []T
	if err := value.Decode(&items); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	a.replace(items)

	return nil
}

// MarshalJSON implements json.Marshaler.
func (a *Array[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ToArray())
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null decodes to an
// empty Array.
func (a *Array[T]) UnmarshalJSON(data []byte) error {
	if a.compare == nil {
		return ErrNilComparer
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	a.replace(items)

	return nil
}

// replace swaps the logical content for items without shrinking capacity.
func (a *Array[T]) replace(items []T) {
	a.clearTail(0, a.size)
	a.size = 0
	a.AddRange(items...)
}
