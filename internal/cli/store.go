package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	gio "github.com/robertoranon/gltf-transform/pkg/io"
	"github.com/robertoranon/gltf-transform/pkg/pipeline"
	"github.com/robertoranon/gltf-transform/pkg/store"
)

// storeCommand creates the store command group for managing stored snapshots.
func (c *CLI) storeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage stored document snapshots",
		Long: `Store saves, lists, exports, and deletes named document snapshots.

A MongoDB URI must be configured (mongo_uri in the config file); without
one the store is in-memory and nothing outlives the command.`,
	}

	cmd.AddCommand(c.storeSaveCommand())
	cmd.AddCommand(c.storeListCommand())
	cmd.AddCommand(c.storeExportCommand())
	cmd.AddCommand(c.storeDeleteCommand())

	return cmd
}

// openStore opens the configured store and warns when it is not persistent.
func (c *CLI) openStore(cmd *cobra.Command) (store.Store, error) {
	if c.Config.MongoURI == "" {
		printWarning("No mongo_uri configured; using an in-memory store")
	}
	return c.newStore(cmd.Context())
}

// storeSaveCommand creates the "store save" subcommand.
func (c *CLI) storeSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save <file> <name>",
		Short: "Save a document file as a named snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			runner := pipeline.NewRunner(nil, nil, c.Logger)
			doc, err := runner.Load(cmd.Context(), pipeline.Options{Path: args[0]})
			if err != nil {
				return err
			}

			if err := st.Save(cmd.Context(), args[1], gio.FromDocument(doc)); err != nil {
				return err
			}
			printSuccess("Saved %s as %q (%s)", args[0], args[1], summaryLine(doc))
			return nil
		},
	}
}

// storeListCommand creates the "store list" subcommand.
func (c *CLI) storeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored snapshot names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			names, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(names) == 0 {
				printInfo("No snapshots stored")
				return nil
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}

// storeExportCommand creates the "store export" subcommand.
func (c *CLI) storeExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Export a stored snapshot to a document file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			rec, err := st.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			doc, err := gio.ToDocument(rec.Snapshot)
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = args[0] + ".json"
			}
			if err := gio.ExportJSON(doc, path); err != nil {
				return err
			}
			printFile(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to <name>.json)")
	return cmd
}

// storeDeleteCommand creates the "store delete" subcommand.
func (c *CLI) storeDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted %q", args[0])
			return nil
		},
	}
}
