package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"reelfinder/movie"
	"reelfinder/search"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func newSearchCmd() *cobra.Command {
	var (
		kind string
		page int
	)
	cmd := &cobra.Command{
		Use:   "search [title]",
		Short: "Search the catalog and print one page of results",
		Example: `  reelfinder search batman
  reelfinder search "star wars" --type series --page 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			k, err := movie.ParseKind(kind)
			if err != nil {
				return err
			}
			return runSearch(os.Stdout, search.Params{
				Query: strings.Join(args, " "),
				Page:  page,
				Kind:  k,
			})
		},
	}
	cmd.Flags().StringVarP(&kind, "type", "t", string(movie.KindAll), "filter: all, movie, series or episode")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "result page")
	return cmd
}

func runSearch(w io.Writer, p search.Params) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	catalog, logger, err := openCatalog(ctx)
	if err != nil {
		return err
	}
	defer catalog.Close()

	ctrl := search.NewController(catalog, search.WithLogger(logger))
	if err := ctrl.Activate(ctx, p); err != nil {
		return err
	}
	printState(w, ctrl.State())
	return nil
}

func printState(w io.Writer, s search.State) {
	switch s.Status {
	case search.StatusEmpty:
		fmt.Fprintln(w, "No movies found")
		fmt.Fprintln(w, styleDim.Render("Try adjusting your search terms or filters"))
		return
	case search.StatusResults:
	default:
		return
	}

	printer := message.NewPrinter(language.English)
	fmt.Fprintln(w, styleTitle.Render(printer.Sprintf("Search Results (%d found)", s.TotalResults)))
	fmt.Fprintln(w, renderResults(s.Items))

	if pager := s.Pager(); !pager.Hidden() {
		fmt.Fprintln(w, styleDim.Render(pagerLine(pager)))
	}
}

func pagerLine(p search.Pager) string {
	parts := make([]string, 0, 9)
	for _, mk := range p.Visible() {
		switch {
		case mk.Ellipsis:
			parts = append(parts, "…")
		case mk.Page == p.Current:
			parts = append(parts, fmt.Sprintf("[%d]", mk.Page))
		default:
			parts = append(parts, fmt.Sprintf("%d", mk.Page))
		}
	}
	return fmt.Sprintf("page %d of %d: %s", p.Current, p.TotalPages(), strings.Join(parts, " "))
}
