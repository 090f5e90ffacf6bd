package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"semreg.dev/pkg/semreg/internal/domain"
	m "semreg.dev/pkg/semreg/internal/model"
)

var runParallelFlag uint
var runTimeoutFlag int64
var fastPathFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run regression scenarios",
		Long:  runLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Run(cmd.Context(), domain.RunArgs{
				SpecsDir: m.Path(viper.GetString(specsDirKey)),
				TasksDir: m.Path(viper.GetString(tasksDirKey)),
				Include:  viper.GetStringSlice(filterConfigKey),
				Threads:  viper.GetUint(runParallelConfigKey),
				Timeout:  runTimeout(),
				FastPath: viper.GetBool(runFastPathKey),
				Reports:  m.Path(viper.GetString(outputFlagName)),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().UintVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetUint(runParallelConfigKey), "number of scenarios run in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().Int64Var(&runTimeoutFlag, runTimeoutFlagName, viper.GetInt64(runTimeoutKey), "timeout of a single comparison in seconds")
	bindFlagToConfig(cmd.Flags().Lookup(runTimeoutFlagName), runTimeoutKey)

	cmd.Flags().StringP(tasksFlagName, "t", viper.GetString(tasksDirKey), "directory caching the built modules")
	bindFlagToConfig(cmd.Flags().Lookup(tasksFlagName), tasksDirKey)

	cmd.Flags().BoolVar(&fastPathFlag, fastPathFlagName, viper.GetBool(runFastPathKey), "classify pairs with identical definitions as equal without running the checker")
	bindFlagToConfig(cmd.Flags().Lookup(fastPathFlagName), runFastPathKey)
}
