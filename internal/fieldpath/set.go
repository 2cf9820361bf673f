package fieldpath

import "slices"

// Set is an insertion-ordered set of path strings. The zero value is ready
// to use. A Set is not safe for concurrent mutation; a fully built Set may
// be read concurrently.
type Set struct {
	order     []string
	index     map[string]struct{}
	truncated bool
}

// NewSet returns a Set holding the given paths.
func NewSet(paths ...string) *Set {
	s := &Set{}
	for _, p := range paths {
		s.Add(p)
	}

	return s
}

// Add inserts a path, reporting whether it was not present yet.
func (s *Set) Add(path string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}

	if _, ok := s.index[path]; ok {
		return false
	}

	s.index[path] = struct{}{}
	s.order = append(s.order, path)

	return true
}

// Contains reports whether path is in the set.
func (s *Set) Contains(path string) bool {
	if s == nil {
		return false
	}

	_, ok := s.index[path]

	return ok
}

// Len returns the number of paths.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.order)
}

// Paths returns the paths in insertion order. The slice is a copy.
func (s *Set) Paths() []string {
	if s == nil {
		return nil
	}

	return slices.Clone(s.order)
}

// Sorted returns the paths in lexical order.
func (s *Set) Sorted() []string {
	out := s.Paths()
	slices.Sort(out)

	return out
}

// Head returns at most n paths in insertion order.
func (s *Set) Head(n int) []string {
	if s == nil || n <= 0 {
		return []string{}
	}

	return slices.Clone(s.order[:min(n, len(s.order))])
}

// All iterates over the paths in insertion order.
func (s *Set) All(yield func(string) bool) {
	if s == nil {
		return
	}

	for _, p := range s.order {
		if !yield(p) {
			return
		}
	}
}

// MarkTruncated records that enumeration stopped at a configured ceiling.
func (s *Set) MarkTruncated() {
	s.truncated = true
}

// Truncated reports whether the set is incomplete because a depth or size
// ceiling was reached while building it.
func (s *Set) Truncated() bool {
	return s != nil && s.truncated
}
