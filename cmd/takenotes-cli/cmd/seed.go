package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"takenotes/internal/application/commands"
)

func newSeedCmd(labels labelsFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Fill an empty library with sample tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.NewSeedCommand(labels()).Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}
}
