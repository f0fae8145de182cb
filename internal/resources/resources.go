package resources

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// skipDirs are never descended into while scanning.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	".venv":        true,
	"dist":         true,
	"build":        true,
	".next":        true,
	"coverage":     true,
}

// Set is the collection of resource paths known under a root directory.
// Paths are slash-separated and relative to the root.
type Set struct {
	paths map[string]bool
}

// NewSet builds a set from explicit relative paths. Each path is recorded
// as-is and, for paths with an extension, without it.
func NewSet(paths ...string) *Set {
	s := &Set{paths: make(map[string]bool, len(paths))}
	for _, p := range paths {
		s.add(normalize(p), true)
	}
	return s
}

// Scan walks root and records every file and directory beneath it.
// Symbolic links are followed; a directory reached twice through links is
// recorded under each name but walked once. A missing or unreadable root is
// an error.
func Scan(root string) (*Set, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("root directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root directory: %s is not a directory", root)
	}
	real, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("root directory: %w", err)
	}

	s := &Set{paths: make(map[string]bool)}
	visited := map[string]bool{real: true}
	if err := s.walk(real, "", visited); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return s, nil
}

// walk records the tree under dir with every path prefixed by prefix.
func (s *Set) walk(dir, prefix string, visited map[string]bool) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == dir {
			return nil
		}
		if d.IsDir() && skipDirs[d.Name()] {
			return filepath.SkipDir
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = path.Join(prefix, filepath.ToSlash(rel))
		if d.Type()&fs.ModeSymlink != 0 {
			return s.follow(p, rel, visited)
		}
		s.add(rel, !d.IsDir())
		return nil
	})
}

// follow records the symlink at p and descends into it when it points at a
// directory not walked yet. Dangling links are left out.
func (s *Set) follow(p, rel string, visited map[string]bool) error {
	target, err := filepath.EvalSymlinks(p)
	if err != nil {
		return nil
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil
	}
	if !info.IsDir() {
		s.add(rel, true)
		return nil
	}
	if skipDirs[path.Base(rel)] {
		return nil
	}
	s.add(rel, false)
	if visited[target] {
		return nil
	}
	visited[target] = true
	return s.walk(target, rel, visited)
}

func (s *Set) add(p string, file bool) {
	if p == "" || p == "." {
		return
	}
	s.paths[p] = true
	if !file {
		return
	}
	if ext := path.Ext(p); ext != "" && ext != p && !strings.HasSuffix(p, "/"+ext) {
		s.paths[strings.TrimSuffix(p, ext)] = true
	}
}

// Resolve reports whether ref names a known resource. References may carry
// a leading "./", a trailing slash, a "#fragment" or a "?query". http and
// https URIs always resolve; absolute paths and references escaping the
// root never do.
func (s *Set) Resolve(ref string) bool {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return false
	}
	if IsExternal(ref) {
		return true
	}
	if strings.HasPrefix(ref, "/") || filepath.IsAbs(ref) {
		return false
	}
	p := normalize(ref)
	if p == "" || p == "." || p == ".." || strings.HasPrefix(p, "../") {
		return false
	}
	return s.paths[p]
}

// Len returns the number of recorded paths, extension-less aliases included.
func (s *Set) Len() int {
	return len(s.paths)
}

// Paths returns every recorded path in sorted order.
func (s *Set) Paths() []string {
	out := make([]string, 0, len(s.paths))
	for p := range s.paths {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// IsExternal reports whether ref is a web URI rather than a repository path.
func IsExternal(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func normalize(ref string) string {
	if i := strings.IndexAny(ref, "#?"); i >= 0 {
		ref = ref[:i]
	}
	ref = filepath.ToSlash(strings.TrimSpace(ref))
	if ref == "" {
		return ""
	}
	return path.Clean(ref)
}
