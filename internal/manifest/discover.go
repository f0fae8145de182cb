package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	docsDir     = "docs"
	examplesDir = "examples"
)

var docNameRe = regexp.MustCompile(`^(\d+)[-_](.+)\.(md|mdx|markdown)$`)

// Discover builds a manifest from the docs tree when no manifest file
// exists. Each docs/NN-slug.md page becomes a topic with id NN and order
// int(NN); entries under examples/ sharing the NN- prefix become its
// examples. A missing docs directory yields an empty manifest.
func Discover(root string) (*Manifest, error) {
	m := &Manifest{Source: filepath.Join(root, docsDir)}

	docs, err := os.ReadDir(filepath.Join(root, docsDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m, nil
		}
		return nil, fmt.Errorf("discovering topics: %w", err)
	}
	examples := exampleIndex(filepath.Join(root, examplesDir))

	for _, d := range docs {
		if d.IsDir() {
			continue
		}
		match := docNameRe.FindStringSubmatch(d.Name())
		if match == nil {
			continue
		}
		id, slug := match[1], match[2]
		order, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		ref := path.Join(docsDir, d.Name())
		title := headingTitle(filepath.Join(root, docsDir, d.Name()))
		if title == "" {
			title = slugTitle(slug)
		}
		m.Topics = append(m.Topics, Topic{
			ID:       id,
			Title:    title,
			Doc:      ref,
			Examples: examples[order],
			Order:    order,
		})
	}

	sort.SliceStable(m.Topics, func(i, j int) bool {
		return m.Topics[i].Order < m.Topics[j].Order
	})
	return m, nil
}

var examplePrefixRe = regexp.MustCompile(`^(\d+)[-_]`)

// exampleIndex maps a numeric prefix to the example refs that carry it.
func exampleIndex(dir string) map[int][]string {
	index := make(map[int][]string)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return index
	}
	for _, e := range entries {
		match := examplePrefixRe.FindStringSubmatch(e.Name())
		if match == nil {
			continue
		}
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		index[n] = append(index[n], path.Join(examplesDir, e.Name()))
	}
	return index
}

// headingTitle returns the text of the first level-one heading in a
// Markdown file, or "" if it has none.
func headingTitle(file string) string {
	f, err := os.Open(file)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	inFence := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "```") {
			inFence = !inFence
			continue
		}
		if !inFence && strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return ""
}

func slugTitle(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
