package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robertoranon/gltf-transform/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple formats)
	formats  []string // output formats: "dot", "svg", "json"
	style    string   // visual style: "color" or "mono"
	detailed bool     // include property UUIDs and extras in labels
	noCache  bool     // disable the artifact cache
	refresh  bool     // re-render even when a cached artifact exists
}

// renderCommand creates the render command for generating diagrams.
// It supports DOT, SVG, and JSON output, with artifact caching keyed by the
// document's content hash.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{style: c.Config.Style}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a document graph to a diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.style); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, json (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", opts.style, "visual style: color (default), mono")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include property ids and extras in labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", input))
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Path:     input,
		Formats:  opts.formats,
		Style:    opts.style,
		Detailed: opts.detailed,
		Refresh:  opts.refresh,
	})
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		data, ok := result.Artifacts[format]
		if !ok {
			continue
		}

		path := opts.output
		if path == "" || len(opts.formats) > 1 {
			path = base + "." + format
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	printStats(result.Stats.PropertyCount, result.Stats.LinkCount, result.CacheInfo.RenderHit)
	prog.done(fmt.Sprintf("Rendered %d format(s)", len(opts.formats)))
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .dot, .json), it strips that extension.
// This is used when generating multiple files (e.g., asset.svg, asset.dot).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
