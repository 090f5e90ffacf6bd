package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"semreg.dev/pkg/semreg/internal/domain"
	m "semreg.dev/pkg/semreg/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List regression scenarios",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{
				SpecsDir: m.Path(viper.GetString(specsDirKey)),
				Include:  viper.GetStringSlice(filterConfigKey),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
