package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"semreg.dev/pkg/semreg/internal/domain"
	m "semreg.dev/pkg/semreg/internal/model"
)

const benchLongDescription = `Build the baseline and candidate checker variants, run both over the
labeled dataset and report the change of the true/false positive/negative counts
together with the samples whose outcome changed.

Variants are configured under bench.baseline and bench.candidate in semreg.yaml
(name, binary, build, args).`

const benchReportFlagName = "report"

var benchReportFlag string

// benchCmd represents the bench command.
var benchCmd = newBenchCmd()

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare two checker builds on a labeled dataset",
		Long:  benchLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			baseline, err := loadVariant(benchBaselineKey)
			if err != nil {
				return err
			}

			candidate, err := loadVariant(benchCandidateKey)
			if err != nil {
				return err
			}

			return workflow.Bench(cmd.Context(), domain.BenchArgs{
				Experiment: viper.GetString(benchExperimentKey),
				Baseline:   baseline,
				Candidate:  candidate,
				Dataset:    m.Path(viper.GetString(benchDatasetKey)),
				Output:     m.Path(benchReportFlag),
			})
		},
	}

	configureBenchFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(benchCmd)
}

func configureBenchFlags(cmd *cobra.Command) {
	cmd.Flags().String("dataset", viper.GetString(benchDatasetKey), "directory of the labeled dataset")
	bindFlagToConfig(cmd.Flags().Lookup("dataset"), benchDatasetKey)

	cmd.Flags().String("experiment", viper.GetString(benchExperimentKey), "experiment name used in the report")
	bindFlagToConfig(cmd.Flags().Lookup("experiment"), benchExperimentKey)

	cmd.Flags().StringVar(&benchReportFlag, benchReportFlagName, "", "write the markdown report to this file")
}
