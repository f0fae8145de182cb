package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jorge-barreto/syllabus/internal/report"
)

func scenarioRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"topics.yaml": `topics:
  - {id: "01", title: Introduction, doc: docs/01-introduction.md}
  - {id: "02", title: JSX, doc: docs/02-jsx.md, examples: [examples/basics/JSXExample]}
`,
		"docs/01-introduction.md":        "# Introduction\n\n[Next](02-jsx.md)\n",
		"docs/02-jsx.md":                 "# JSX\n\nMarkup in JavaScript.\n",
		"examples/basics/JSXExample.jsx": "",
	}
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		os.MkdirAll(filepath.Dir(p), 0755)
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"syllabus", "--no-color"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestList(t *testing.T) {
	root := scenarioRoot(t)
	code, out, errOut := runCLI(t, "list", root)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errOut)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	if f := strings.Fields(lines[0]); f[0] != "1" || f[1] != "01" || f[2] != "Introduction" {
		t.Errorf("line 1 = %q", lines[0])
	}
	if f := strings.Fields(lines[1]); f[0] != "2" || f[1] != "02" || f[2] != "JSX" {
		t.Errorf("line 2 = %q", lines[1])
	}
}

func TestList_EmptyIsNotAnError(t *testing.T) {
	code, out, errOut := runCLI(t, "list", t.TempDir())
	if code != 0 || out != "" {
		t.Fatalf("exit %d, out %q, stderr %q", code, out, errOut)
	}
}

func TestList_MissingRoot(t *testing.T) {
	code, _, errOut := runCLI(t, "list", filepath.Join(t.TempDir(), "missing"))
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if strings.Count(errOut, "error:") != 1 {
		t.Fatalf("expected the error reported once, got %q", errOut)
	}
}

func TestCheck_Valid(t *testing.T) {
	root := scenarioRoot(t)
	code, out, errOut := runCLI(t, "check", "--links", root)
	if code != 0 {
		t.Fatalf("exit %d, stdout %q, stderr %q", code, out, errOut)
	}
	if !strings.Contains(out, "no violations") {
		t.Fatalf("got %q", out)
	}
}

func TestCheck_DeletedDoc(t *testing.T) {
	root := scenarioRoot(t)
	os.Remove(filepath.Join(root, "docs", "02-jsx.md"))

	code, out, _ := runCLI(t, "check", root)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.Contains(out, `02: BrokenReference: doc "docs/02-jsx.md"`) {
		t.Fatalf("got %q", out)
	}
	if strings.Count(out, "BrokenReference") != 1 {
		t.Fatalf("expected exactly one violation line, got %q", out)
	}
}

func TestCheck_JSONAndReport(t *testing.T) {
	root := scenarioRoot(t)
	os.Remove(filepath.Join(root, "docs", "02-jsx.md"))
	reportPath := filepath.Join(t.TempDir(), "report.json")

	code, out, _ := runCLI(t, "check", "--json", "--report", reportPath, root)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}

	var stdoutRep report.Report
	if err := json.Unmarshal([]byte(out), &stdoutRep); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, out)
	}
	if stdoutRep.Status != report.StatusInvalid || stdoutRep.Counts["BrokenReference"] != 1 {
		t.Fatalf("got %+v", stdoutRep)
	}

	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatal(err)
	}
	var fileRep report.Report
	if err := json.Unmarshal(data, &fileRep); err != nil {
		t.Fatal(err)
	}
	if fileRep.RunID != stdoutRep.RunID {
		t.Fatalf("report file run %q differs from stdout run %q", fileRep.RunID, stdoutRep.RunID)
	}
}

func TestShow(t *testing.T) {
	root := scenarioRoot(t)
	code, out, errOut := runCLI(t, "show", "02", root)
	if code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	for _, want := range []string{"JSX", "docs/02-jsx.md", "examples/basics/JSXExample", "prev:", "01"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShow_NotFound(t *testing.T) {
	root := scenarioRoot(t)
	code, _, errOut := runCLI(t, "show", "99", root)
	if code != 1 || !strings.Contains(errOut, `unknown topic "99"`) {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
}

func TestShow_RequiresID(t *testing.T) {
	code, _, errOut := runCLI(t, "show")
	if code != 1 || !strings.Contains(errOut, "required") {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
}

func TestSearch(t *testing.T) {
	root := scenarioRoot(t)
	code, out, errOut := runCLI(t, "search", "javascript", root)
	if code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	if !strings.Contains(out, "02") || !strings.Contains(out, "JSX") {
		t.Fatalf("got %q", out)
	}
}

func TestInitThenCheck(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "notes")
	if code, _, errOut := runCLI(t, "init", dir); code != 0 {
		t.Fatalf("init exit %d, stderr %q", code, errOut)
	}
	if code, out, _ := runCLI(t, "check", "--links", dir); code != 0 {
		t.Fatalf("check exit %d, out %q", code, out)
	}
}

func TestDocs(t *testing.T) {
	code, out, _ := runCLI(t, "docs")
	if code != 0 || !strings.Contains(out, "quickstart") {
		t.Fatalf("exit %d, out %q", code, out)
	}
	code, _, errOut := runCLI(t, "docs", "nope")
	if code != 1 || !strings.Contains(errOut, "unknown help topic") {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
}

func TestExtraArguments(t *testing.T) {
	code, _, errOut := runCLI(t, "list", ".", "extra")
	if code != 1 || !strings.Contains(errOut, "unexpected arguments") {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
}

func TestErrorsAreUncoloredOffTerminal(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"syllabus", "--bogus-flag"}, &stdout, &stderr)
	if code == 0 {
		t.Fatal("expected a non-zero exit for an unknown flag")
	}
	if strings.Contains(stderr.String(), "\033[") {
		t.Fatalf("stderr carries ANSI codes: %q", stderr.String())
	}

	stderr.Reset()
	code = run(context.Background(), []string{"syllabus", "list", filepath.Join(t.TempDir(), "missing")}, &stdout, &stderr)
	if code != 1 || !strings.HasPrefix(stderr.String(), "error: ") {
		t.Fatalf("exit %d, stderr %q", code, stderr.String())
	}
}

func TestErrorLabel_NonFile(t *testing.T) {
	if got := errorLabel(&bytes.Buffer{}); got != "error:" {
		t.Fatalf("errorLabel = %q", got)
	}
}
