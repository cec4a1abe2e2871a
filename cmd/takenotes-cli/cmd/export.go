package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"takenotes/internal/application"
	"takenotes/internal/application/commands"
	"takenotes/internal/domain"
)

func newExportCmd(labels labelsFunc) *cobra.Command {
	var (
		format string
		kind   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tag and folder trees as YAML or JSON",
		Long: `Export label trees as a nested YAML or JSON document.

Examples:
  takenotes-cli export
  takenotes-cli export --format json --kind tag -o tags.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var kinds []domain.Kind
			if kind != "" {
				k, err := application.ParseKind(kind)
				if err != nil {
					return err
				}
				kinds = append(kinds, k)
			}

			result, err := commands.NewExportCommand(labels(), format, kinds...).Execute(cmd.Context())
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(result.Data)
				return err
			}
			if err := os.WriteFile(output, result.Data, 0644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d labels to %s\n", result.Count, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", commands.FormatYAML, "output format: yaml or json")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "export only tags or folders")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
