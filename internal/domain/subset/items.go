// Package subset defines the subset mapping and the statistics computed over it.
package subset

import (
	"errors"
	"slices"
)

// ErrUnknownKey is returned when a key is not present in the mapping.
var ErrUnknownKey = errors.New("unknown subset key")

// Record is one row of a subset, keyed by feature name.
type Record map[string]any

// Records is the value type produced by the source loaders.
type Records []Record

// Items maps subset keys to opaque values and iterates keys in insertion order.
type Items struct {
	keys   []string
	values map[string]any
}

// NewItems creates an empty mapping.
func NewItems() *Items {
	return &Items{values: make(map[string]any)}
}

// Set stores value under key. Re-setting an existing key keeps its position.
func (i *Items) Set(key string, value any) {
	if i.values == nil {
		i.values = make(map[string]any)
	}
	if _, ok := i.values[key]; !ok {
		i.keys = append(i.keys, key)
	}
	i.values[key] = value
}

// Get returns the value stored under key.
func (i *Items) Get(key string) (any, bool) {
	v, ok := i.values[key]
	return v, ok
}

// Has reports whether key is present.
func (i *Items) Has(key string) bool {
	_, ok := i.values[key]
	return ok
}

// Keys returns a copy of the keys in iteration order.
func (i *Items) Keys() []string {
	return slices.Clone(i.keys)
}

// Len returns the number of keys.
func (i *Items) Len() int {
	return len(i.keys)
}

// Records returns the value under key as records.
func (i *Items) Records(key string) (Records, error) {
	v, ok := i.Get(key)
	if !ok {
		return nil, ErrUnknownKey
	}
	return AsRecords(v), nil
}

// AsRecords converts loader output into records. Values of other shapes yield nil.
func AsRecords(v any) Records {
	switch t := v.(type) {
	case Records:
		return t
	case []Record:
		return Records(t)
	case []map[string]any:
		out := make(Records, 0, len(t))
		for _, r := range t {
			out = append(out, Record(r))
		}
		return out
	case []any:
		out := make(Records, 0, len(t))
		for _, r := range t {
			switch row := r.(type) {
			case map[string]any:
				out = append(out, Record(row))
			case Record:
				out = append(out, row)
			}
		}
		return out
	default:
		return nil
	}
}
