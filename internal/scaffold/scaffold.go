package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/syllabus/internal/manifest"
	"github.com/jorge-barreto/syllabus/internal/ux"
)

var manifestTemplate = `name: my-notes

topics:
  - id: "01"
    title: Introduction
    doc: docs/01-introduction.md

  - id: "02"
    title: JSX
    doc: docs/02-jsx.md
    examples:
      - examples/basics/JSXExample
`

var introTemplate = `# Introduction

What this collection covers and how to run the examples.

Next: [JSX](02-jsx.md)
`

var jsxTemplate = "# JSX\n\n" +
	"JSX lets you write markup inside JavaScript. See the\n" +
	"[example](../examples/basics/JSXExample.jsx).\n\n" +
	"```jsx\n" +
	"const greeting = <h1>Hello, {name}</h1>;\n" +
	"```\n\n" +
	"Previous: [Introduction](01-introduction.md)\n"

var exampleTemplate = `export default function JSXExample() {
  const name = "world";
  return <h1>Hello, {name}</h1>;
}
`

// files maps paths relative to the target directory to their contents.
var files = []struct {
	path    string
	content string
}{
	{"topics.yaml", manifestTemplate},
	{filepath.Join("docs", "01-introduction.md"), introTemplate},
	{filepath.Join("docs", "02-jsx.md"), jsxTemplate},
	{filepath.Join("examples", "basics", "JSXExample.jsx"), exampleTemplate},
}

// Init writes a starter manifest, two doc pages and one example into
// targetDir, creating it if needed. It refuses to touch a directory that
// already has a manifest.
func Init(w io.Writer, targetDir string) error {
	existing, err := manifest.Find(targetDir)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if existing != "" {
		return fmt.Errorf("%s already exists", existing)
	}

	for _, f := range files {
		p := filepath.Join(targetDir, f.path)
		if _, err := os.Stat(p); err == nil {
			return fmt.Errorf("%s already exists", p)
		}
	}

	for _, f := range files {
		p := filepath.Join(targetDir, f.path)
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(p), err)
		}
		if err := os.WriteFile(p, []byte(f.content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", f.path, err)
		}
	}

	fmt.Fprintf(w, "\n%s%s✓ Initialized %s%s\n\n", ux.Bold, ux.Green, targetDir, ux.Reset)
	fmt.Fprintf(w, "  Created:\n")
	for _, f := range files {
		fmt.Fprintf(w, "    %s%s%s\n", ux.Cyan, filepath.ToSlash(f.path), ux.Reset)
	}
	fmt.Fprintf(w, "\n  Next steps:\n")
	fmt.Fprintf(w, "    1. Add doc pages under %sdocs/%s and register them in %stopics.yaml%s\n", ux.Cyan, ux.Reset, ux.Cyan, ux.Reset)
	fmt.Fprintf(w, "    2. Run %ssyllabus check --links%s to verify references\n\n", ux.Cyan, ux.Reset)
	return nil
}
