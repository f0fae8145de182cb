package registry

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind classifies a Violation.
type Kind string

const (
	KindDuplicateID     Kind = "DuplicateId"
	KindOrderGap        Kind = "OrderGap"
	KindMissingField    Kind = "MissingField"
	KindBrokenReference Kind = "BrokenReference"
	KindBrokenLink      Kind = "BrokenLink"
)

// Resolver reports whether a reference points at an existing resource.
type Resolver interface {
	Resolve(ref string) bool
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ref string) bool

func (f ResolverFunc) Resolve(ref string) bool { return f(ref) }

// Violation is one broken registry invariant.
type Violation struct {
	Kind  Kind   `json:"kind"`
	ID    string `json:"id,omitempty"`    // offending entry; empty for a missing order slot
	Field string `json:"field,omitempty"` // id, title, doc, examples[i], order, link
	Value string `json:"value,omitempty"`
	// Orders lists the ranks of every entry involved when more than one is.
	Orders []int  `json:"orders,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func (v Violation) String() string {
	id := v.ID
	if id == "" {
		id = "-"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", id, v.Kind)
	if v.Field != "" {
		fmt.Fprintf(&b, ": %s", v.Field)
		if v.Value != "" {
			fmt.Fprintf(&b, " %q", v.Value)
		}
	} else if v.Value != "" {
		fmt.Fprintf(&b, ": %q", v.Value)
	}
	if v.Detail != "" {
		fmt.Fprintf(&b, " %s", v.Detail)
	}
	return b.String()
}

// Validate checks every registry invariant in a single pass and returns all
// violations found. An empty result means the registry is valid. Validate
// does not mutate the registry.
func (r *Registry) Validate(res Resolver) []Violation {
	var out []Violation
	out = append(out, r.duplicateIDs()...)
	out = append(out, r.orderGaps()...)
	for _, e := range r.entries {
		out = append(out, entryViolations(e, res)...)
	}
	return out
}

func (r *Registry) duplicateIDs() []Violation {
	orders := make(map[string][]int)
	var seen []string
	for _, e := range r.entries {
		if e.ID == "" {
			continue
		}
		if _, ok := orders[e.ID]; !ok {
			seen = append(seen, e.ID)
		}
		orders[e.ID] = append(orders[e.ID], e.Order)
	}

	var out []Violation
	for _, id := range seen {
		if len(orders[id]) < 2 {
			continue
		}
		out = append(out, Violation{
			Kind:   KindDuplicateID,
			ID:     id,
			Field:  "id",
			Value:  id,
			Orders: orders[id],
			Detail: fmt.Sprintf("shared by entries at order %s", joinInts(orders[id])),
		})
	}
	return out
}

// orderGaps requires the order values to be exactly {1..N}.
func (r *Registry) orderGaps() []Violation {
	n := len(r.entries)
	byOrder := make(map[int][]string)
	for _, e := range r.entries {
		byOrder[e.Order] = append(byOrder[e.Order], e.ID)
	}

	var out []Violation
	for _, e := range r.entries {
		if e.Order < 1 || e.Order > n {
			out = append(out, Violation{
				Kind:   KindOrderGap,
				ID:     e.ID,
				Field:  "order",
				Value:  strconv.Itoa(e.Order),
				Detail: fmt.Sprintf("outside 1..%d", n),
			})
		}
	}

	ranks := make([]int, 0, len(byOrder))
	for o := range byOrder {
		ranks = append(ranks, o)
	}
	sort.Ints(ranks)
	for _, o := range ranks {
		ids := byOrder[o]
		if len(ids) < 2 {
			continue
		}
		out = append(out, Violation{
			Kind:   KindOrderGap,
			ID:     ids[0],
			Field:  "order",
			Value:  strconv.Itoa(o),
			Detail: fmt.Sprintf("used by %s", strings.Join(quoteAll(ids), ", ")),
		})
	}

	for o := 1; o <= n; o++ {
		if _, ok := byOrder[o]; !ok {
			out = append(out, Violation{
				Kind:   KindOrderGap,
				Field:  "order",
				Value:  strconv.Itoa(o),
				Detail: "missing from sequence",
			})
		}
	}
	return out
}

func entryViolations(e Entry, res Resolver) []Violation {
	var out []Violation
	missing := func(field string) {
		out = append(out, Violation{Kind: KindMissingField, ID: e.ID, Field: field, Detail: "is required"})
	}
	if strings.TrimSpace(e.ID) == "" {
		missing("id")
	}
	if strings.TrimSpace(e.Title) == "" {
		missing("title")
	}

	if strings.TrimSpace(e.DocRef) == "" {
		missing("doc")
	} else if res == nil || !res.Resolve(e.DocRef) {
		out = append(out, broken(e.ID, "doc", e.DocRef))
	}
	for i, ref := range e.ExampleRefs {
		if res == nil || !res.Resolve(ref) {
			out = append(out, broken(e.ID, fmt.Sprintf("examples[%d]", i), ref))
		}
	}
	return out
}

func broken(id, field, ref string) Violation {
	return Violation{
		Kind:   KindBrokenReference,
		ID:     id,
		Field:  field,
		Value:  ref,
		Detail: "does not resolve",
	}
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ", ")
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strconv.Quote(s)
	}
	return out
}
