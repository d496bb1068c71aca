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

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show [imdb-id]",
		Short:   "Print the full record of one title",
		Example: `  reelfinder show tt0372784`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			catalog, _, err := openCatalog(ctx)
			if err != nil {
				return err
			}
			defer catalog.Close()

			d, err := catalog.Details(ctx, args[0])
			if err != nil {
				return err
			}
			printDetail(os.Stdout, d)
			return nil
		},
	}
}

func printDetail(w io.Writer, d movie.Detail) {
	fmt.Fprintf(w, "%s %s\n", styleTitle.Render(d.Title), styleDim.Render("("+d.Year+") "+d.Kind.Label()))
	if len(d.Genres) > 0 {
		fmt.Fprintln(w, strings.Join(d.Genres, " · "))
	}
	if d.Plot != "" {
		fmt.Fprintf(w, "\n%s\n", d.Plot)
	}
	if facts := d.Facts(); len(facts) > 0 {
		fmt.Fprintln(w)
		for _, f := range facts {
			fmt.Fprintf(w, "%s%s\n", styleLabel.Render(f.Label), f.Value)
		}
	}
	if d.HasPoster() {
		fmt.Fprintf(w, "\n%s\n", styleDim.Render(d.Poster))
	}
}
