package cli

import (
	"github.com/spf13/cobra"

	"github.com/robertoranon/gltf-transform/pkg/pipeline"
)

// validateCommand creates the validate command for checking document integrity.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a document file",
		Long: `Validate checks a document file for structural problems: malformed
snapshots, dangling references, broken graph indexes, and extension
identifiers that do not follow the VENDOR_name convention.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			runner := pipeline.NewRunner(nil, nil, logger)
			doc, err := runner.Load(cmd.Context(), pipeline.Options{Path: args[0]})
			if err != nil {
				printError("%s is not loadable: %v", args[0], err)
				return err
			}

			if err := pipeline.ValidateDocument(doc); err != nil {
				printError("%s is invalid: %v", args[0], err)
				return err
			}

			prog.done("Validated " + args[0])
			printSuccess("%s is valid (%s)", args[0], summaryLine(doc))
			return nil
		},
	}
}
