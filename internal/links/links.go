package links

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jorge-barreto/syllabus/internal/registry"
	"github.com/jorge-barreto/syllabus/internal/resources"
)

// Link is an inline Markdown link or image found in a page.
type Link struct {
	Text   string
	Target string
	Line   int // 1-based
}

var linkRe = regexp.MustCompile(`!?\[([^\]]*)\]\(\s*<?([^)\s>]+)>?(?:\s+"[^"]*")?\s*\)`)

var inlineCodeRe = regexp.MustCompile("`[^`]*`")

// Extract returns the inline links in a Markdown document, in order of
// appearance. Links inside fenced code blocks and inline code spans are
// ignored.
func Extract(text string) []Link {
	var out []Link
	fence := ""
	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if fence != "" {
			if strings.HasPrefix(trimmed, fence) {
				fence = ""
			}
			continue
		}
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			fence = trimmed[:3]
			continue
		}

		line = inlineCodeRe.ReplaceAllString(line, "")
		for _, m := range linkRe.FindAllStringSubmatch(line, -1) {
			out = append(out, Link{Text: m[1], Target: m[2], Line: i + 1})
		}
	}
	return out
}

// Local reports whether target points inside the repository.
func Local(target string) bool {
	if target == "" || strings.HasPrefix(target, "#") {
		return false
	}
	if resources.IsExternal(target) {
		return false
	}
	if i := strings.Index(target, ":"); i > 0 && !strings.ContainsAny(target[:i], "/.") {
		// mailto:, tel:, data: and other schemes
		return false
	}
	return true
}

// Check reads the doc page of every entry and reports local link targets
// that do not resolve. Targets are relative to the page's directory unless
// they start with "/", in which case they are relative to root. Pages that
// cannot be read are skipped; a missing page is already a broken reference.
func Check(root string, entries []registry.Entry, res registry.Resolver) []registry.Violation {
	var out []registry.Violation
	for _, e := range entries {
		if e.DocRef == "" || resources.IsExternal(e.DocRef) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(e.DocRef)))
		if err != nil {
			continue
		}
		for _, l := range Extract(string(data)) {
			if !Local(l.Target) {
				continue
			}
			if res.Resolve(resolveTarget(e.DocRef, l.Target)) {
				continue
			}
			out = append(out, registry.Violation{
				Kind:   registry.KindBrokenLink,
				ID:     e.ID,
				Field:  "link",
				Value:  l.Target,
				Detail: fmt.Sprintf("in %s:%d", e.DocRef, l.Line),
			})
		}
	}
	return out
}

func resolveTarget(docRef, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(path.Dir(filepath.ToSlash(docRef)), target)
}
