package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jorge-barreto/syllabus/internal/catalog"
	"github.com/jorge-barreto/syllabus/internal/docs"
	"github.com/jorge-barreto/syllabus/internal/mcpserver"
	"github.com/jorge-barreto/syllabus/internal/report"
	"github.com/jorge-barreto/syllabus/internal/scaffold"
	"github.com/jorge-barreto/syllabus/internal/search"
	"github.com/jorge-barreto/syllabus/internal/ux"
	cli "github.com/urfave/cli/v3"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	if err := app.Run(ctx, args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			if msg := exitErr.Error(); msg != "" {
				fmt.Fprintln(stderr, msg)
			}
			return exitErr.ExitCode()
		}
		fmt.Fprintf(stderr, "%s %v\n", errorLabel(stderr), err)
		return 1
	}
	return 0
}

// errorLabel colors the error prefix only when stderr is a terminal. Flag
// parsing can fail before Before has configured ux, so it checks for itself.
func errorLabel(stderr io.Writer) string {
	f, ok := stderr.(*os.File)
	if !ok || !ux.IsTerminal(f) || ux.Red == "" {
		return "error:"
	}
	return ux.Red + "error:" + ux.Reset
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "syllabus",
		Usage:       "Topic registry for documentation and example repositories",
		Description: "Run 'syllabus docs' for documentation on manifests, checks, and navigation.",
		Writer:      stdout,
		ErrWriter:   stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Usage: "Log debug output to stderr"},
			&cli.BoolFlag{Name: "no-color", Usage: "Disable colored output"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := slog.LevelInfo
			if cmd.Bool("verbose") {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

			if f, ok := stdout.(*os.File); ok {
				ux.ConfigureColor(f, cmd.Bool("no-color"))
			} else {
				ux.DisableColor()
			}
			return ctx, nil
		},
		// Exit codes are handled by run, not by the library.
		ExitErrHandler: func(ctx context.Context, cmd *cli.Command, err error) {},
		Commands: []*cli.Command{
			listCmd(stdout),
			checkCmd(stdout),
			showCmd(stdout),
			searchCmd(stdout),
			serveCmd(),
			initCmd(stdout),
			docsCmd(stdout),
		},
	}
}

func manifestFlag() cli.Flag {
	return &cli.StringFlag{Name: "manifest", Usage: "Manifest file (default: topics.yaml, topics.yml, or topics.hcl in root)"}
}

func listCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List topics in learning order",
		ArgsUsage: "[root]",
		Flags:     []cli.Flag{manifestFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat, err := openCatalog(ctx, cmd, 0)
			if err != nil {
				return err
			}
			ux.RenderList(out, cat.Registry.List())
			return nil
		},
	}
}

func checkCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Validate topic order, ids, and references",
		ArgsUsage: "[root]",
		Flags: []cli.Flag{
			manifestFlag(),
			&cli.BoolFlag{Name: "links", Usage: "Also check relative links inside doc pages"},
			&cli.BoolFlag{Name: "json", Usage: "Print a JSON report instead of text"},
			&cli.StringFlag{Name: "report", Usage: "Write a JSON report to `FILE`"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat, err := openCatalog(ctx, cmd, 0)
			if err != nil {
				return err
			}

			vs := cat.Check(cmd.Bool("links"))
			rep := report.New(cat.Root, cat.Manifest.Source, cat.Registry.Len(), vs)
			slog.DebugContext(ctx, "check finished", "run_id", rep.RunID, "violations", len(vs))

			if path := cmd.String("report"); path != "" {
				if err := rep.Save(path); err != nil {
					return err
				}
			}

			if cmd.Bool("json") {
				data, err := rep.Marshal()
				if err != nil {
					return err
				}
				if _, err := out.Write(data); err != nil {
					return err
				}
			} else {
				ux.RenderViolations(out, vs)
				ux.CheckSummary(out, cat.Registry.Len(), len(vs))
			}

			if !rep.Valid() {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

func showCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a topic with its previous and next topics",
		ArgsUsage: "<id> [root]",
		Flags:     []cli.Flag{manifestFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id := cmd.Args().First()
			if id == "" {
				return fmt.Errorf("topic id argument is required")
			}
			cat, err := openCatalog(ctx, cmd, 1)
			if err != nil {
				return err
			}

			e, err := cat.Registry.Get(id)
			if err != nil {
				return err
			}
			prev, next, err := cat.Registry.Adjacent(id)
			if err != nil {
				return err
			}
			ux.RenderTopic(out, e, prev, next)
			return nil
		},
	}
}

func searchCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Full-text search over topic titles and doc pages",
		ArgsUsage: "<query> [root]",
		Flags: []cli.Flag{
			manifestFlag(),
			&cli.IntFlag{Name: "max", Value: search.DefaultMaxResults, Usage: "Maximum number of results"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			query := cmd.Args().First()
			if query == "" {
				return fmt.Errorf("search query argument is required")
			}
			cat, err := openCatalog(ctx, cmd, 1)
			if err != nil {
				return err
			}

			idx, err := search.Build(cat.Root, cat.Registry.List())
			if err != nil {
				return err
			}
			defer idx.Close()

			hits, err := idx.Search(query, int(cmd.Int("max")))
			if err != nil {
				return err
			}
			ux.RenderHits(out, hits)
			return nil
		},
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:      "serve",
		Usage:     "Serve the registry as MCP tools over stdio",
		ArgsUsage: "[root]",
		Flags:     []cli.Flag{manifestFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat, err := openCatalog(ctx, cmd, 0)
			if err != nil {
				return err
			}

			idx, err := search.Build(cat.Root, cat.Registry.List())
			if err != nil {
				slog.WarnContext(ctx, "search index unavailable", "err", err)
				idx = nil
			}
			if idx != nil {
				defer idx.Close()
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
			defer stop()

			return mcpserver.Serve(ctx, mcpserver.NewTools(cat, idx))
		},
	}
}

func initCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Create a starter manifest, doc pages, and example",
		ArgsUsage: "[dir]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := cmd.Args().First()
			if dir == "" {
				dir = "."
			}
			return scaffold.Init(out, dir)
		},
	}
}

func docsCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Fprint(out, "\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Fprintf(out, "  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Fprintln(out, "\nRun 'syllabus docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Fprint(out, t.Content)
			return nil
		},
	}
}

// openCatalog builds the catalog for the root given as positional argument
// pos, defaulting to the current directory.
func openCatalog(ctx context.Context, cmd *cli.Command, pos int) (*catalog.Catalog, error) {
	if cmd.Args().Len() > pos+1 {
		return nil, fmt.Errorf("unexpected arguments: %v", cmd.Args().Slice()[pos+1:])
	}
	root := cmd.Args().Get(pos)
	if root == "" {
		root = "."
	}
	return catalog.Open(ctx, catalog.Options{
		Root:     root,
		Manifest: cmd.String("manifest"),
	})
}
