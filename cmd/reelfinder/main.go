package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"reelfinder/app"
	"reelfinder/pkg/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleLabel = lipgloss.NewStyle().Bold(true).Width(14)
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "reelfinder",
		Short: "Search movies and TV series on OMDb",
		Long: "ReelFinder searches the OMDb catalog for movies, TV series and episodes.\n" +
			"Use browse for the interactive terminal view.",
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(
		newVersionCmd(),
		newSearchCmd(),
		newShowCmd(),
		newBrowseCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("ReelFinder v%s\n", version)
		},
	}
}

// openCatalog loads config and builds the catalog. Logs go to stderr only
// with --verbose so they never mix with command output.
func openCatalog(ctx context.Context) (*app.Catalog, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = io.Discard
	if verbose {
		w = os.Stderr
	}
	logger := config.SetupLogger(cfg.LogLevel, w)

	catalog, err := app.NewCatalog(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return catalog, logger, nil
}
