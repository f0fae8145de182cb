package docs

import (
	"strings"
	"testing"

	"github.com/jorge-barreto/syllabus/internal/registry"
)

func TestAll_NamesAreUniqueSlugs(t *testing.T) {
	seen := make(map[string]bool)
	for _, topic := range All() {
		if topic.Name == "" || topic.Name != strings.ToLower(topic.Name) || strings.ContainsAny(topic.Name, " \t") {
			t.Errorf("topic name %q is not a lowercase slug", topic.Name)
		}
		if seen[topic.Name] {
			t.Errorf("duplicate topic name: %q", topic.Name)
		}
		seen[topic.Name] = true
		if topic.Title == "" || topic.Summary == "" || topic.Content == "" {
			t.Errorf("topic %q has empty fields", topic.Name)
		}
	}
	if !seen["quickstart"] {
		t.Error("quickstart topic missing")
	}
}

func TestCheckTopic_ListsEveryViolationKind(t *testing.T) {
	topic, err := Get("check")
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []registry.Kind{
		registry.KindDuplicateID,
		registry.KindOrderGap,
		registry.KindMissingField,
		registry.KindBrokenReference,
		registry.KindBrokenLink,
	} {
		if !strings.Contains(topic.Content, string(k)) {
			t.Errorf("check topic does not describe %s", k)
		}
	}
}

func TestServeTopic_ListsTools(t *testing.T) {
	topic, err := Get("serve")
	if err != nil {
		t.Fatal(err)
	}
	for _, tool := range []string{"list_topics", "get_topic", "check_topics", "search_topics"} {
		if !strings.Contains(topic.Content, tool) {
			t.Errorf("serve topic does not mention %s", tool)
		}
	}
}

func TestQuickstart_MentionsCommands(t *testing.T) {
	topic, err := Get("quickstart")
	if err != nil {
		t.Fatal(err)
	}
	for _, cmd := range []string{"syllabus init", "syllabus list", "syllabus check"} {
		if !strings.Contains(topic.Content, cmd) {
			t.Errorf("quickstart does not mention %q", cmd)
		}
	}
}

func TestGet_Lookup(t *testing.T) {
	tests := map[string]string{
		"manifest":           "manifest",
		"MANIFEST":           "manifest",
		" check ":            "check",
		"manifest reference": "manifest",
		"MCP Server":         "serve",
		"nav":                "navigation",
		"q":                  "quickstart",
	}
	for in, want := range tests {
		topic, err := Get(in)
		if err != nil {
			t.Errorf("Get(%q) error: %v", in, err)
			continue
		}
		if topic.Name != want {
			t.Errorf("Get(%q) = %q, want %q", in, topic.Name, want)
		}
	}
}

func TestGet_NotFound(t *testing.T) {
	_, err := Get("nonexistent")
	if err == nil || !strings.Contains(err.Error(), "unknown help topic") {
		t.Fatalf("expected unknown topic error, got %v", err)
	}
}

func TestGet_Empty(t *testing.T) {
	if _, err := Get("  "); err == nil {
		t.Fatal("expected error for empty name")
	}
}
