package docs

import (
	"fmt"
	"strings"
)

// Topic is one help article shown by 'syllabus docs'.
type Topic struct {
	Name    string
	Title   string
	Summary string
	Content string // plain text, no ANSI
}

// All returns the help topics in the order 'syllabus docs' lists them.
func All() []Topic {
	return topics
}

// Get finds a help topic by name or title, ignoring case. A unique name
// prefix is accepted too, so "nav" finds "navigation".
func Get(name string) (Topic, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Topic{}, fmt.Errorf("help topic name is required (run 'syllabus docs' to list topics)")
	}
	for _, t := range topics {
		if t.Name == key || strings.ToLower(t.Title) == key {
			return t, nil
		}
	}

	var names []string
	var match Topic
	for _, t := range topics {
		if strings.HasPrefix(t.Name, key) {
			names = append(names, t.Name)
			match = t
		}
	}
	switch len(names) {
	case 1:
		return match, nil
	case 0:
		return Topic{}, fmt.Errorf("unknown help topic %q (run 'syllabus docs' to list topics)", name)
	default:
		return Topic{}, fmt.Errorf("help topic %q is ambiguous: %s", name, strings.Join(names, ", "))
	}
}
