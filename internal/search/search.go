package search

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/blevesearch/bleve/v2"

	"github.com/jorge-barreto/syllabus/internal/registry"
	"github.com/jorge-barreto/syllabus/internal/resources"
)

const (
	DefaultMaxResults = 10
	maxResultsLimit   = 50
)

// document is what gets indexed for each topic.
type document struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Doc      string   `json:"doc"`
	Examples []string `json:"examples"`
	Content  string   `json:"content"`
}

// Hit is a single search result.
type Hit struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// Index is an in-memory full-text index over topic titles and doc pages.
type Index struct {
	index  bleve.Index
	titles map[string]string
}

// Build indexes entries, reading each doc page from under root. Pages that
// cannot be read are indexed by title and refs only.
func Build(root string, entries []registry.Entry) (*Index, error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating search index: %w", err)
	}

	titles := make(map[string]string, len(entries))
	batch := index.NewBatch()
	for _, e := range entries {
		if e.ID == "" {
			continue
		}
		titles[e.ID] = e.Title
		doc := document{
			ID:       e.ID,
			Title:    e.Title,
			Doc:      e.DocRef,
			Examples: e.ExampleRefs,
			Content:  readDoc(root, e.DocRef),
		}
		if err := batch.Index(e.ID, doc); err != nil {
			index.Close()
			return nil, fmt.Errorf("indexing topic %q: %w", e.ID, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		index.Close()
		return nil, fmt.Errorf("indexing topics: %w", err)
	}
	slog.Debug("built search index", "topics", len(titles))

	return &Index{index: index, titles: titles}, nil
}

func readDoc(root, ref string) string {
	if ref == "" || resources.IsExternal(ref) {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(ref)))
	if err != nil {
		return ""
	}
	return string(data)
}

// Search runs a match query and returns up to max hits, best first.
// A max of zero or less selects DefaultMaxResults.
func (ix *Index) Search(query string, max int) ([]Hit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}
	if max <= 0 {
		max = DefaultMaxResults
	}
	if max > maxResultsLimit {
		max = maxResultsLimit
	}

	req := bleve.NewSearchRequest(bleve.NewMatchQuery(query))
	req.Size = max
	res, err := ix.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		hits = append(hits, Hit{ID: h.ID, Title: ix.titles[h.ID], Score: h.Score})
	}
	return hits, nil
}

// Close releases the index.
func (ix *Index) Close() error {
	return ix.index.Close()
}
