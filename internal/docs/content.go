package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with syllabus",
		Content: topicQuickstart,
	},
	{
		Name:    "manifest",
		Title:   "Manifest Reference",
		Summary: "topics.yaml / topics.hcl schema, ordering, and discovery",
		Content: topicManifest,
	},
	{
		Name:    "check",
		Title:   "Checking a Repository",
		Summary: "Violation kinds, link checking, reports, and exit codes",
		Content: topicCheck,
	},
	{
		Name:    "navigation",
		Title:   "Navigation",
		Summary: "Listing topics, prev/next links, and search",
		Content: topicNavigation,
	},
	{
		Name:    "serve",
		Title:   "MCP Server",
		Summary: "Exposing the registry to MCP clients over stdio",
		Content: topicServe,
	},
}

const topicQuickstart = `Quick Start
===========

1. Scaffold a notes repository (or run inside an existing one):

    syllabus init my-notes
    cd my-notes

   This creates topics.yaml, two doc pages under docs/, and one example
   under examples/.

2. List the learning sequence:

    syllabus list

3. Verify that every topic points at files that exist:

    syllabus check --links

   The command prints one line per problem and exits 1 if there is any.

4. Look at a single topic and its neighbours:

    syllabus show 02

Every command takes an optional root directory argument; it defaults to
the current directory.
`

const topicManifest = `Manifest Reference
==================

syllabus reads the first of these files found in the root directory:

    topics.yaml
    topics.yml
    topics.hcl

Use --manifest PATH to pick another file.

YAML
----

    name: react-notes
    topics:
      - id: "01"
        title: Introduction
        doc: docs/01-introduction.md
      - id: "02"
        title: JSX
        doc: docs/02-jsx.md
        examples:
          - examples/basics/JSXExample

Unknown keys and wrongly typed values are rejected when the manifest is
loaded. Missing titles or doc pages are reported by 'syllabus check'.

HCL
---

    name = "react-notes"

    topic "01" {
      title = "Introduction"
      doc   = "docs/01-introduction.md"
    }

    topic "02" {
      title    = "JSX"
      doc      = "docs/02-jsx.md"
      examples = ["examples/basics/JSXExample"]
    }

Ordering
--------

If no topic sets 'order', topics are numbered 1..N in the order they are
listed. If any topic sets it, every value is taken as written and must
form the sequence 1..N.

References
----------

doc and examples are paths relative to the root. A reference without an
extension also matches a file with one: examples/basics/JSXExample
resolves to examples/basics/JSXExample.jsx. http and https URLs are
accepted without being fetched.

Discovery
---------

Without a manifest, topics are discovered from docs/NN-slug.md pages: the
id is NN, the order is the number NN, and the title is the page's first
'# ' heading. Entries under examples/ starting with the same NN- prefix
become the topic's examples.
`

const topicCheck = `Checking a Repository
=====================

    syllabus check [root] [--links] [--json] [--report FILE]

Violation kinds:

  DuplicateId      two or more topics share an id
  OrderGap         order values are not exactly 1..N
  MissingField     a topic has no id, title, or doc
  BrokenReference  a doc or example path does not exist
  BrokenLink       a relative link inside a doc page does not resolve
                   (only with --links)

Each violation prints as:

    <id>: <kind>: <field> "<value>" <detail>

--json prints a JSON report to stdout instead. --report FILE also writes
the JSON report to FILE. Every report carries a unique run_id.

Exit codes: 0 when there are no violations, 1 otherwise or when the root
directory or manifest cannot be read.
`

const topicNavigation = `Navigation
==========

    syllabus list [root]

prints order, id, and title for every topic in learning order.

    syllabus show <id> [root]

prints one topic with its doc page, examples, and the ids of the previous
and next topics. The first topic has no previous topic and the last has no
next one.

    syllabus search <query> [root] [--max N]

searches topic titles, ids, example paths, and doc page text.
`

const topicServe = `MCP Server
==========

    syllabus serve [root]

serves the registry to Model Context Protocol clients over stdio. Tools:

  list_topics    every topic in order
  get_topic      one topic with prev/next ids
  check_topics   validation result (set "links": true for link checks)
  search_topics  full-text search

The registry is built once at startup; restart the server to pick up
changes. Logs go to stderr.
`
