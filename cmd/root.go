// Package cmd provides the root command and CLI setup for semreg.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"semreg.dev/pkg/semreg/internal/adapter"
	"semreg.dev/pkg/semreg/internal/controller"
	"semreg.dev/pkg/semreg/internal/domain"
)

var fsAdapter adapter.TaskFSAdapter
var reportStore adapter.ReportStore
var moduleBuilder adapter.ModuleBuilder
var simplifier adapter.Simplifier
var checker adapter.EquivalenceChecker
var benchRunner adapter.BenchRunner
var specLoader domain.SpecLoader
var scenarioRunner domain.ScenarioRunner
var benchmarkReporter domain.BenchmarkReporter
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that write reports.
var reportsOutputDirFlag string

// filterPatterns is a root-level flag that selects scenarios by ID.
var filterPatterns []string

// verboseFlag switches the log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalTaskFSAdapter()
	reportStore = adapter.NewReportStore()
	moduleBuilder = adapter.NewLocalModuleBuilder(viper.GetStringSlice(builderToolKey))
	simplifier = adapter.NewLocalSimplifier(viper.GetStringSlice(simplifierToolKey))
	checker = adapter.NewLocalEquivalenceChecker(viper.GetStringSlice(checkerToolKey))
	benchRunner = adapter.NewLocalBenchRunner(viper.GetStringSlice(benchRunnerKey), viper.GetString(benchWorkDirKey))
	specLoader = domain.NewSpecLoader(fsAdapter)
	scenarioRunner = domain.NewScenarioRunner(
		domain.NewArtifactCache(fsAdapter, moduleBuilder, adapter.NewFileBuildLocker()),
		domain.NewCouplingResolver(),
		domain.NewComparator(fsAdapter, simplifier, checker),
	)
	benchmarkReporter = domain.NewBenchmarkReporter(benchRunner, fsAdapter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		ui,
		specLoader,
		scenarioRunner,
		benchmarkReporter,
	)
}

const filterHelp = `Scenario filters are glob patterns matched against scenario IDs
(<module>-<param>), e.g. --filter 'snd-*' --filter '*-debug'.`

const rootLongDescription = `semreg is a regression harness for a semantic equivalence checker of
kernel modules. It builds two kernel versions of each module described in the
scenario documents, checks the inferred function couplings, simplifies the
modules and compares every declared function pair against its expected result.

` + filterHelp

const runLongDescription = `Run the regression scenarios found in the specs directory.

` + filterHelp

const listLongDescription = `List the regression scenarios and their declared function pairs.

` + filterHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "semreg",
		Short: "Regression harness for semantic equivalence checking",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for scenario reports (empty disables saving)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&filterPatterns, filterFlagName, "f", viper.GetStringSlice(filterConfigKey), "run only scenarios whose ID matches the glob (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(filterFlagName), filterConfigKey)

	cmd.PersistentFlags().StringP(specsFlagName, "s", viper.GetString(specsDirKey), "directory holding the scenario documents")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(specsFlagName), specsDirKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// An interrupt cancels the running scenarios.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
