// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/protein-info/internal/detail"
	"github.com/pdiddy/protein-info/internal/present"
	"github.com/pdiddy/protein-info/internal/search"
	"github.com/pdiddy/protein-info/internal/view"
	"github.com/pdiddy/protein-info/pkg/types"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Browse search results and proteins interactively",
	Long: `Shell reads commands from stdin. It keeps the last search list and the open
protein, so results can be opened by their list number and interactions paged
without fetching again. Type "help" for the command list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		sh := newShell(client, detail.NewAggregator(client), cfg, cmd.OutOrStdout())
		return sh.run(cmd.Context(), os.Stdin)
	},
}

const shellHelp = `Commands:
  search <query>   search with the current mode
  mode [name]      show the modes, or switch to name
  open <n|id>      open result n of the last search, or a protein id
  next, prev       page through the open protein's interactions
  page <n>         jump to interaction page n
  size <n>         interactions per page: 10, 25, or 50
  back             show the last search list again
  help             show this help
  quit             leave the shell`

// shell holds one interactive session: a search page and a protein page.
type shell struct {
	svc     search.Service
	agg     *detail.Aggregator
	results *view.SearchView
	protein *view.DetailView
	mode    types.SearchMode
	format  types.OutputFormat
	opts    detail.RenderOptions
	out     io.Writer
}

func newShell(svc search.Service, agg *detail.Aggregator, c types.Config, out io.Writer) *shell {
	return &shell{
		svc:     svc,
		agg:     agg,
		results: view.NewSearchView(),
		protein: view.NewDetailView(c.Display.PageSize),
		mode:    types.DefaultSearchMode,
		format:  c.Display.Format,
		opts:    detail.RenderOptions{Color: c.Display.Color},
		out:     out,
	}
}

// run executes commands from in until quit or end of input.
func (s *shell) run(ctx context.Context, in io.Reader) error {
	if ctx == nil {
		ctx = context.Background()
	}
	fmt.Fprintln(s.out, present.MsgPrompt)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		if s.exec(ctx, scanner.Text()) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// exec runs one command line and reports whether the session should end.
func (s *shell) exec(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "":
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprintln(s.out, shellHelp)
	case "search":
		s.search(ctx, arg)
	case "mode":
		s.setMode(arg)
	case "back":
		s.renderResults()
	case "open":
		s.open(ctx, arg)
	case "next", "prev", "page":
		if !s.protein.HasProtein() {
			fmt.Fprintln(s.out, present.MsgOpenFirst)
			return false
		}
		s.turnPage(strings.ToLower(cmd), arg)
	case "size":
		n, err := strconv.Atoi(arg)
		if err == nil {
			err = s.protein.SetPageSize(n)
		}
		if err != nil {
			fmt.Fprintf(s.out, "error: invalid page size %q\n", arg)
			return false
		}
		if !s.protein.HasProtein() {
			fmt.Fprintf(s.out, "interactions per page: %d\n", n)
			return false
		}
		s.renderProtein()
	default:
		fmt.Fprintf(s.out, "unknown command %q, type help for the list\n", cmd)
	}
	return false
}

// turnPage moves the open protein's interaction pager.
func (s *shell) turnPage(cmd, arg string) {
	switch cmd {
	case "next":
		if !s.protein.NextPage() {
			fmt.Fprintln(s.out, "already on the last page")
			return
		}
	case "prev":
		if !s.protein.PrevPage() {
			fmt.Fprintln(s.out, "already on the first page")
			return
		}
	case "page":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			fmt.Fprintf(s.out, "error: invalid page %q\n", arg)
			return
		}
		s.protein.SetPage(n - 1)
	}
	s.renderProtein()
}

func (s *shell) search(ctx context.Context, query string) {
	_, err := s.results.Submit(ctx, s.svc, query, s.mode)
	if errors.Is(err, search.ErrEmptyQuery) {
		fmt.Fprintln(s.out, present.MsgPrompt)
		return
	}
	if err != nil {
		logger.Debug("search failed",
			slog.String("query", query),
			slog.String("mode", string(s.mode)),
			slog.Any("error", err))
	}
	s.renderResults()
}

func (s *shell) setMode(arg string) {
	if arg == "" {
		printModes(s.out, s.mode)
		return
	}
	m, err := types.ParseSearchMode(arg)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	s.mode = m
	fmt.Fprintf(s.out, "search mode: %s\n", m.Label())
}

// open resolves arg as a 1-based position in the last result list, falling
// back to a literal protein id.
func (s *shell) open(ctx context.Context, arg string) {
	id := arg
	if n, err := strconv.Atoi(arg); err == nil {
		results := s.results.Snapshot().Results
		if n >= 1 && n <= len(results) {
			id = results[n-1].Protein.ID
		}
	}

	if _, err := s.protein.Open(ctx, s.agg, id); err != nil {
		logger.Debug("protein load failed",
			slog.String("id", id),
			slog.Any("error", err))
	}
	s.renderProtein()
}

func (s *shell) renderResults() {
	if err := view.RenderSearch(s.out, s.results.Snapshot(), s.format); err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
}

func (s *shell) renderProtein() {
	if err := view.RenderDetail(s.out, s.protein.Snapshot(), s.format, s.opts); err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
