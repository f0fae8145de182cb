package ux

import (
	"fmt"
	"io"
	"strings"

	"github.com/jorge-barreto/syllabus/internal/registry"
	"github.com/jorge-barreto/syllabus/internal/search"
)

// RenderList prints one line per topic: order, id, title.
func RenderList(w io.Writer, entries []registry.Entry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%s%3d%s  %-6s %s\n", Dim, e.Order, Reset, e.ID, e.Title)
	}
}

// RenderTopic prints a single topic with its prev/next navigation.
func RenderTopic(w io.Writer, e registry.Entry, prev, next string) {
	fmt.Fprintf(w, "%s%s%s %s(%s, #%d)%s\n", Bold, e.Title, Reset, Dim, e.ID, e.Order, Reset)
	fmt.Fprintf(w, "  %-9s %s\n", "doc:", e.DocRef)
	if len(e.ExampleRefs) == 0 {
		fmt.Fprintf(w, "  %-9s %s(none)%s\n", "examples:", Dim, Reset)
	} else {
		fmt.Fprintf(w, "  %-9s %s\n", "examples:", strings.Join(e.ExampleRefs, ", "))
	}
	fmt.Fprintf(w, "  %-9s %s\n", "prev:", orNone(prev))
	fmt.Fprintf(w, "  %-9s %s\n", "next:", orNone(next))
}

func orNone(id string) string {
	if id == "" {
		return Dim + "(none)" + Reset
	}
	return id
}

// RenderViolations prints one line per violation.
func RenderViolations(w io.Writer, vs []registry.Violation) {
	for _, v := range vs {
		fmt.Fprintf(w, "%s✗%s %s\n", Red, Reset, v)
	}
}

// CheckSummary prints the closing line of a check run.
func CheckSummary(w io.Writer, topics, violations int) {
	if violations == 0 {
		fmt.Fprintf(w, "%s✓ %d topics, no violations%s\n", Green, topics, Reset)
		return
	}
	noun := "violations"
	if violations == 1 {
		noun = "violation"
	}
	fmt.Fprintf(w, "%s%d %s%s across %d topics\n", Red, violations, noun, Reset, topics)
}

// RenderHits prints search results, best first.
func RenderHits(w io.Writer, hits []search.Hit) {
	if len(hits) == 0 {
		fmt.Fprintf(w, "%sNo matching topics.%s\n", Dim, Reset)
		return
	}
	for _, h := range hits {
		fmt.Fprintf(w, "  %-6s %-30s %s%.3f%s\n", h.ID, h.Title, Dim, h.Score, Reset)
	}
}
