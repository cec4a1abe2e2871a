package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"takenotes/internal/application/commands"
	"takenotes/internal/domain"
)

func newSearchCmd(kind domain.Kind, labels labelsFunc) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: fmt.Sprintf("Search %s by name or path", kind.Plural()),
		Long: fmt.Sprintf(`Search %[1]s by name or path.

Results are ranked by relevance using fuzzy matching.

Examples:
  takenotes-cli %[2]s search design
  takenotes-cli %[2]s search wrk/dsg`, kind.Plural(), kind),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := commands.NewSearchCommand(labels(), kind, args[0]).Execute(cmd.Context())
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No results found")
				return nil
			}

			if limit > 0 && len(results) > limit {
				results = results[:limit]
			}
			for _, r := range results {
				printLabel(cmd.OutOrStdout(), r.LabelView)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of results (0 for all)")
	return cmd
}
