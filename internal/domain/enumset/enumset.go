// Package enumset holds registries for open-ended enumerations such as note
// categories and assignment subjects: values are validated strings against a
// seeded set of known values, and unseen values can be registered without a
// code change.
package enumset

import "strings"

// Set is a registry of known values. Registration order is preserved.
type Set struct {
	values map[string]struct{}
	order  []string
}

// New creates a registry seeded with the given values.
func New(seed ...string) *Set {
	s := &Set{values: make(map[string]struct{}, len(seed))}
	for _, v := range seed {
		s.Register(v)
	}
	return s
}

// Register adds a value to the registry. It reports whether the value was new.
func (s *Set) Register(v string) bool {
	v = Normalize(v)
	if v == "" {
		return false
	}
	if _, ok := s.values[v]; ok {
		return false
	}
	s.values[v] = struct{}{}
	s.order = append(s.order, v)
	return true
}

// Contains reports whether a value is known.
func (s *Set) Contains(v string) bool {
	_, ok := s.values[Normalize(v)]
	return ok
}

// Values returns the known values in registration order.
func (s *Set) Values() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Normalize folds a value to its canonical registry form.
func Normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
