package registry

import (
	"errors"
	"fmt"
	"sort"
)

// Entry is one topic in the learning sequence.
type Entry struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	DocRef      string   `json:"doc"`
	ExampleRefs []string `json:"examples"`
	Order       int      `json:"order"`
}

// ErrNotFound is matched by every lookup failure.
var ErrNotFound = errors.New("topic not found")

// NotFoundError reports a lookup for an id the registry does not hold.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown topic %q (run 'syllabus list' to see available topics)", e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Registry is an immutable, order-sorted snapshot of topic entries.
// It is safe for concurrent readers.
type Registry struct {
	entries []Entry
	index   map[string]int // id -> position of its first occurrence
}

// New builds a registry from entries. Entries are copied and sorted by
// Order; ties keep their input order. New never fails: broken invariants
// are reported by Validate.
func New(entries []Entry) *Registry {
	sorted := make([]Entry, len(entries))
	for i, e := range entries {
		sorted[i] = cloneEntry(e)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	index := make(map[string]int, len(sorted))
	for i, e := range sorted {
		if _, ok := index[e.ID]; !ok {
			index[e.ID] = i
		}
	}
	return &Registry{entries: sorted, index: index}
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// List returns every entry in ascending Order.
func (r *Registry) List() []Entry {
	out := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		out[i] = cloneEntry(e)
	}
	return out
}

// Get looks up an entry by id.
func (r *Registry) Get(id string) (Entry, error) {
	i, ok := r.index[id]
	if !ok {
		return Entry{}, &NotFoundError{ID: id}
	}
	return cloneEntry(r.entries[i]), nil
}

// Adjacent returns the ids of the entries immediately before and after id
// in the sequence. An empty string means there is no neighbour on that side.
func (r *Registry) Adjacent(id string) (prev, next string, err error) {
	i, ok := r.index[id]
	if !ok {
		return "", "", &NotFoundError{ID: id}
	}
	if i > 0 {
		prev = r.entries[i-1].ID
	}
	if i < len(r.entries)-1 {
		next = r.entries[i+1].ID
	}
	return prev, next, nil
}

func cloneEntry(e Entry) Entry {
	if e.ExampleRefs != nil {
		e.ExampleRefs = append([]string(nil), e.ExampleRefs...)
	}
	return e
}
