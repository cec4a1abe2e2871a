package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"takenotes/internal/adapters/sqlite"
	"takenotes/internal/application"
	"takenotes/internal/config"
	"takenotes/internal/domain"
)

// NewRootCmd builds the command tree. Every subcommand shares one label
// service opened from --db before it runs and closed afterwards.
func NewRootCmd() *cobra.Command {
	cfg := config.Load()

	var (
		dbPath    string
		store     *sqlite.Store
		logCloser io.Closer
		labels    *application.Labels
	)

	root := &cobra.Command{
		Use:   "takenotes-cli",
		Short: "CLI for managing TakeNotes tags and folders",
		Long: `takenotes-cli manages the tag and folder trees of a TakeNotes library.

Labels are addressed by id or by path, e.g. "work/design" or "#work/design".
Renames and moves rewrite the paths of everything nested below.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip initialization for help commands
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			logger, closer, err := cfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			logCloser = closer

			store, err = sqlite.Open(dbPath)
			if err != nil {
				return err
			}

			labels = application.NewLabels(store, logger)
			if err := labels.Load(cmd.Context()); err != nil {
				store.Close()
				return fmt.Errorf("failed to load labels: %w", err)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logCloser != nil {
				logCloser.Close()
			}
			if store == nil {
				return nil
			}
			return store.Close()
		},
	}

	root.PersistentFlags().StringVar(&dbPath, "db", cfg.DBPath, "path to the label database")

	get := func() *application.Labels { return labels }
	root.AddCommand(
		newKindCmd(domain.KindTag, get),
		newKindCmd(domain.KindFolder, get),
		newExportCmd(get),
		newSeedCmd(get),
	)
	return root
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
