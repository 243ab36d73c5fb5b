package kv

import (
	"iter"

	"github.com/indigo-web/bishop/internal/strutil"
)

type Pair struct {
	Key, Value string
}

// Storage is an associative structure for storing (string, string) pairs. It acts as a map but
// uses linear search instead, which proves to be more efficient on relatively low amount of
// entries, which often enough is the case — as it is for HTTP headers.
type Storage struct {
	pairs []Pair
}

func New() *Storage {
	return new(Storage)
}

// NewPrealloc returns an instance of Storage with pre-allocated underlying storage.
func NewPrealloc(n int) *Storage {
	return &Storage{
		pairs: make([]Pair, 0, n),
	}
}

// NewFromMap returns a new instance with already inserted values from given map.
func NewFromMap(m map[string]string) *Storage {
	s := NewPrealloc(len(m))

	for key, value := range m {
		s.Add(key, value)
	}

	return s
}

// Add adds a new pair of key and value, keeping any already-stored pair under the same key.
func (s *Storage) Add(key, value string) *Storage {
	s.pairs = append(s.pairs, Pair{Key: key, Value: value})
	return s
}

// Set replaces every pair stored under key with a single pair holding value, kept at the
// position of the first one, or adds a new pair if none exists yet.
func (s *Storage) Set(key, value string) *Storage {
	found := false
	filtered := s.pairs[:0]

	for _, pair := range s.pairs {
		if strutil.CmpFold(key, pair.Key) {
			if found {
				continue
			}

			found = true
			pair.Value = value
		}

		filtered = append(filtered, pair)
	}

	s.pairs = filtered
	if !found {
		return s.Add(key, value)
	}

	return s
}

// Value returns the first value, corresponding to the key. Otherwise, empty string is returned
func (s *Storage) Value(key string) string {
	return s.ValueOr(key, "")
}

// ValueOr returns either the first value corresponding to the key or custom value, defined
// via the second parameter.
func (s *Storage) ValueOr(key, or string) string {
	value, found := s.Get(key)
	if !found {
		return or
	}

	return value
}

// Get returns a value and a bool, indicating whether the value was found. If it wasn't, it'll
// be an empty string.
func (s *Storage) Get(key string) (value string, found bool) {
	for _, pair := range s.pairs {
		if strutil.CmpFold(key, pair.Key) {
			return pair.Value, true
		}
	}

	return "", false
}

// Values iterates over all values stored under key, in insertion order.
func (s *Storage) Values(key string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, pair := range s.pairs {
			if strutil.CmpFold(pair.Key, key) {
				if !yield(pair.Value) {
					return
				}
			}
		}
	}
}

// Keys iterates over all unique keys, in first-seen order.
func (s *Storage) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		var seen []string

		for _, pair := range s.pairs {
			if contains(seen, pair.Key) {
				continue
			}

			seen = append(seen, pair.Key)
			if !yield(pair.Key) {
				return
			}
		}
	}
}

// Pairs iterates over every stored (key, value) pair, including duplicates under the same key.
func (s *Storage) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, pair := range s.pairs {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Has indicates, whether there's an entry of the key.
func (s *Storage) Has(key string) bool {
	_, found := s.Get(key)
	return found
}

// Delete removes every pair stored under key.
func (s *Storage) Delete(key string) *Storage {
	filtered := s.pairs[:0]

	for _, pair := range s.pairs {
		if !strutil.CmpFold(pair.Key, key) {
			filtered = append(filtered, pair)
		}
	}

	s.pairs = filtered
	return s
}

// Len returns a number of stored pairs.
func (s *Storage) Len() int {
	return len(s.pairs)
}

func (s *Storage) Empty() bool {
	return s.Len() == 0
}

// Clone creates a deep copy, which may be used later or stored somewhere safely. However,
// it comes at cost of an allocation.
func (s *Storage) Clone() *Storage {
	return &Storage{pairs: clone(s.pairs)}
}

// Expose exposes the underlying pairs slice.
func (s *Storage) Expose() []Pair {
	return s.pairs
}

// Clear removes all the entries. The allocated space isn't freed, so the storage may be reused.
func (s *Storage) Clear() *Storage {
	s.pairs = s.pairs[:0]
	return s
}

func contains(collection []string, key string) bool {
	for _, element := range collection {
		if strutil.CmpFold(element, key) {
			return true
		}
	}

	return false
}

func clone[T any](source []T) []T {
	if len(source) == 0 {
		return nil
	}

	newSlice := make([]T, len(source))
	copy(newSlice, source)

	return newSlice
}
