package manifest

import (
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestDiscover_DocsTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "docs", "02-jsx.md"), "Intro text\n\n# Writing JSX\n")
	writeFile(t, filepath.Join(root, "docs", "01-introduction.md"), "```md\n# not a title\n```\n")
	writeFile(t, filepath.Join(root, "docs", "README.md"), "# Index\n")
	writeFile(t, filepath.Join(root, "examples", "02-jsx-basics", "App.jsx"), "")
	writeFile(t, filepath.Join(root, "examples", "02-jsx-advanced.jsx"), "")
	writeFile(t, filepath.Join(root, "examples", "shared", "Button.jsx"), "")

	m, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	want := []Topic{
		{ID: "01", Title: "Introduction", Doc: "docs/01-introduction.md", Order: 1},
		{ID: "02", Title: "Writing JSX", Doc: "docs/02-jsx.md", Order: 2, Examples: []string{
			"examples/02-jsx-advanced.jsx",
			"examples/02-jsx-basics",
		}},
	}
	if diff := cmp.Diff(want, m.Topics); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestDiscover_NoDocsDir(t *testing.T) {
	m, err := Discover(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Topics) != 0 {
		t.Fatalf("expected no topics, got %v", m.Topics)
	}
}

func TestDiscover_KeepsGaps(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "docs", "01-a.md"), "")
	writeFile(t, filepath.Join(root, "docs", "03-c.md"), "")

	m, err := Discover(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Topics) != 2 || m.Topics[1].Order != 3 {
		t.Fatalf("got %+v", m.Topics)
	}
}

func TestDiscover_NonASCIISlug(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "docs", "01-über-uns.md"), "no heading here\n")

	m, err := Discover(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Topics) != 1 || m.Topics[0].Title != "Über Uns" {
		t.Fatalf("got %+v", m.Topics)
	}
}

func TestSlugTitle(t *testing.T) {
	tests := map[string]string{
		"conditional-rendering": "Conditional Rendering",
		"use_state":             "Use State",
		"jsx":                   "Jsx",
		"über-uns":              "Über Uns",
		"état_de_l'art":         "État De L'art",
	}
	for in, want := range tests {
		if got := slugTitle(in); got != want {
			t.Errorf("slugTitle(%q) = %q, want %q", in, got, want)
		}
		if !utf8.ValidString(slugTitle(in)) {
			t.Errorf("slugTitle(%q) is not valid UTF-8", in)
		}
	}
}
