package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"takenotes/internal/application/commands"
	"takenotes/internal/domain"
)

// newPinCmd builds "pin" or "unpin"; only tags can be pinned
func newPinCmd(labels labelsFunc, pinned bool) *cobra.Command {
	use, short := "pin", "Pin a tag to the top of the sidebar"
	if !pinned {
		use, short = "unpin", "Unpin a tag"
	}

	return &cobra.Command{
		Use:   use + " <ref>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.NewPinCommand(labels(), domain.KindTag, args[0], pinned).Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}
}
