package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"takenotes/internal/application/commands"
	"takenotes/internal/domain"
)

func newRenameCmd(kind domain.Kind, labels labelsFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <ref> <new-name>",
		Short: fmt.Sprintf("Rename a %s", kind),
		Long: fmt.Sprintf(`Rename a %[1]s. Every nested %[1]s gets its path rewritten.

Example:
  takenotes-cli %[1]s rename work/design visual`, kind),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.NewRenameCommand(labels(), kind, args[0], args[1]).Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}
}
