package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"takenotes/internal/application/commands"
	"takenotes/internal/domain"
)

func newReorderCmd(kind domain.Kind, labels labelsFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <ref> <sort-order>",
		Short: fmt.Sprintf("Set a %s's position among its siblings", kind),
		Long: `Set the sort order used when listing siblings. Lower values come
first; equal values keep creation order.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid sort order %q: %w", args[1], err)
			}

			result, err := commands.NewReorderCommand(labels(), kind, args[0], order).Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}
}
