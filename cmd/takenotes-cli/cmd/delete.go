package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"takenotes/internal/application/commands"
	"takenotes/internal/domain"
)

func newDeleteCmd(kind domain.Kind, labels labelsFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <ref>",
		Short: fmt.Sprintf("Delete a %s and everything nested below it", kind),
		Long: fmt.Sprintf(`Delete a %[1]s.

Warning: This operation cannot be undone. Every nested %[1]s is deleted
as well.

Example:
  takenotes-cli %[1]s delete work/meetings`, kind),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.NewDeleteCommand(labels(), kind, args[0]).Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}
}
