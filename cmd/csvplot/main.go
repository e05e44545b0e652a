// Package main provides the CLI entry point for csvplot.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/csvplot-go/pkg/csvplot"
	"github.com/ukaji3/csvplot-go/pkg/csvplot/display"
	"github.com/ukaji3/csvplot-go/pkg/csvplot/render"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "csvplot [input.csv]",
		Short: "Plot the series in a CSV file",
		Long: `csvplot reads a two-column CSV file and shows its rows as line plots.
A new series starts whenever a first-column value repeats within the current one.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", csvplot.ErrFileNotFound, inputPath)
	}

	opts := csvplot.DefaultOptions()
	opts.Logger = logger

	ds, err := csvplot.Load(inputPath, opts)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	logger.Info("loaded", "path", inputPath, "rows", len(ds.Rows()), "series", len(ds.Series))

	p, err := render.NewPlot(ds)
	if err != nil {
		return fmt.Errorf("plot failed: %w", err)
	}

	img := render.Rasterize(p, render.DefaultWidth, render.DefaultHeight)
	if err := display.Show(ds.Name, img); err != nil {
		return fmt.Errorf("display failed: %w", err)
	}

	return nil
}
