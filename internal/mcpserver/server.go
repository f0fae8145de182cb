// Package mcpserver exposes a topic catalog as Model Context Protocol tools.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jorge-barreto/syllabus/internal/catalog"
	"github.com/jorge-barreto/syllabus/internal/registry"
	"github.com/jorge-barreto/syllabus/internal/search"
)

const serverName = "syllabus"

// Version is reported to MCP clients.
var Version = "dev"

// Tools holds the read-only state behind every tool handler.
type Tools struct {
	cat   *catalog.Catalog
	index *search.Index
}

// ListTopicsInput defines input for the list_topics tool.
type ListTopicsInput struct{}

// ListTopicsOutput defines output for the list_topics tool.
type ListTopicsOutput struct {
	Topics []registry.Entry `json:"topics"`
}

// GetTopicInput defines input for the get_topic tool.
type GetTopicInput struct {
	ID string `json:"id" jsonschema:"Topic id, for example 02"`
}

// GetTopicOutput defines output for the get_topic tool.
type GetTopicOutput struct {
	Topic registry.Entry `json:"topic"`
	Prev  string         `json:"prev,omitempty"`
	Next  string         `json:"next,omitempty"`
}

// CheckTopicsInput defines input for the check_topics tool.
type CheckTopicsInput struct {
	Links bool `json:"links,omitempty" jsonschema:"Also check relative links inside doc pages (optional, defaults to false)"`
}

// CheckTopicsOutput defines output for the check_topics tool.
type CheckTopicsOutput struct {
	Valid      bool                 `json:"valid"`
	Violations []registry.Violation `json:"violations"`
}

// SearchTopicsInput defines input for the search_topics tool.
type SearchTopicsInput struct {
	Query      string `json:"query" jsonschema:"Full-text query over topic titles and doc pages"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"Maximum number of results (optional, defaults to 10)"`
}

// SearchTopicsOutput defines output for the search_topics tool.
type SearchTopicsOutput struct {
	Query string       `json:"query"`
	Hits  []search.Hit `json:"hits"`
}

// NewTools wires handlers to a catalog and its search index. index may be
// nil, in which case search_topics is not registered.
func NewTools(cat *catalog.Catalog, index *search.Index) *Tools {
	return &Tools{cat: cat, index: index}
}

// New creates an MCP server with every tool registered.
func New(t *Tools) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: Version}, nil)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "list_topics",
			Description: "List every topic in learning order with its id, title, doc page and examples",
		},
		t.ListTopics,
	)
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "get_topic",
			Description: "Get one topic by id, including the ids of the previous and next topics",
		},
		t.GetTopic,
	)
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "check_topics",
			Description: "Validate the topic registry: duplicate ids, order gaps, missing fields and broken references",
		},
		t.CheckTopics,
	)
	if t.index != nil {
		mcp.AddTool(server,
			&mcp.Tool{
				Name:        "search_topics",
				Description: "Search topic titles and doc pages using full-text search",
			},
			t.SearchTopics,
		)
	}
	return server
}

// Serve runs the server over stdio until ctx is done or the client leaves.
func Serve(ctx context.Context, t *Tools) error {
	server := New(t)
	slog.InfoContext(ctx, "serving MCP on stdio", "topics", t.cat.Registry.Len())
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

// ListTopics returns every topic in order.
func (t *Tools) ListTopics(ctx context.Context, req *mcp.CallToolRequest, input ListTopicsInput) (*mcp.CallToolResult, ListTopicsOutput, error) {
	entries := t.cat.Registry.List()
	for i := range entries {
		entries[i] = withExamples(entries[i])
	}
	return nil, ListTopicsOutput{Topics: entries}, nil
}

// GetTopic returns one topic and its neighbours.
func (t *Tools) GetTopic(ctx context.Context, req *mcp.CallToolRequest, input GetTopicInput) (*mcp.CallToolResult, GetTopicOutput, error) {
	e, err := t.cat.Registry.Get(input.ID)
	if err != nil {
		return nil, GetTopicOutput{}, err
	}
	prev, next, err := t.cat.Registry.Adjacent(input.ID)
	if err != nil {
		return nil, GetTopicOutput{}, err
	}
	return nil, GetTopicOutput{Topic: withExamples(e), Prev: prev, Next: next}, nil
}

// CheckTopics validates the registry.
func (t *Tools) CheckTopics(ctx context.Context, req *mcp.CallToolRequest, input CheckTopicsInput) (*mcp.CallToolResult, CheckTopicsOutput, error) {
	vs := t.cat.Check(input.Links)
	if vs == nil {
		vs = []registry.Violation{}
	}
	return nil, CheckTopicsOutput{Valid: len(vs) == 0, Violations: vs}, nil
}

// SearchTopics runs a full-text query.
func (t *Tools) SearchTopics(ctx context.Context, req *mcp.CallToolRequest, input SearchTopicsInput) (*mcp.CallToolResult, SearchTopicsOutput, error) {
	if t.index == nil {
		return nil, SearchTopicsOutput{}, fmt.Errorf("search index is not available")
	}
	hits, err := t.index.Search(input.Query, input.MaxResults)
	if err != nil {
		return nil, SearchTopicsOutput{}, err
	}
	return nil, SearchTopicsOutput{Query: input.Query, Hits: hits}, nil
}

func withExamples(e registry.Entry) registry.Entry {
	if e.ExampleRefs == nil {
		e.ExampleRefs = []string{}
	}
	return e
}
