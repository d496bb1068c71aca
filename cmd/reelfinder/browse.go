package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"reelfinder/movie"
	"reelfinder/search"
	"reelfinder/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "browse [title]",
		Short: "Browse the catalog interactively",
		Args:  cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			k, err := movie.ParseKind(kind)
			if err != nil {
				return err
			}
			return runBrowse(search.Params{
				Query: strings.Join(args, " "),
				Page:  1,
				Kind:  k,
			})
		},
	}
	cmd.Flags().StringVarP(&kind, "type", "t", string(movie.KindAll), "filter: all, movie, series or episode")
	return cmd
}

func runBrowse(initial search.Params) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return fmt.Errorf("browse needs a terminal, use search instead")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	catalog, logger, err := openCatalog(ctx)
	if err != nil {
		return err
	}
	defer catalog.Close()

	ctrl := search.NewController(catalog, search.WithLogger(logger))
	p := tea.NewProgram(tui.New(ctx, ctrl, catalog, initial), tea.WithAltScreen(), tea.WithContext(ctx))
	unsubscribe := tui.Subscribe(ctrl, p)
	defer unsubscribe()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
