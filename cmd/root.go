package cmd

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	input := new(Input)
	rootCmd := createRootCommand(ctx, input, version)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "lvcolor",
		Short:        "Randomized 3-coloring of small graphs with Monte Carlo and Las Vegas samplers.",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&input.configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&input.envFile, "env-file", "", "path to a dotenv file with LVCOLOR_* variables")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Color a graph and report the best coloring found",
		Args:  cobra.NoArgs,
		RunE:  newRunCommand(ctx, input),
	}
	runCmd.Flags().StringVarP(&input.algorithm, "algorithm", "a", "", "montecarlo or lasvegas")
	runCmd.Flags().StringVarP(&input.pace, "pace", "p", "", "tick pace: fast or slow")
	runCmd.Flags().BoolVar(&input.sync, "sync", false, "run to completion without pacing")
	runCmd.Flags().StringVarP(&input.outputPath, "output", "o", "", "write the best coloring to this file")
	input.addGraphFlags(runCmd.Flags())

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the structure of a graph",
		Args:  cobra.NoArgs,
		RunE:  newInspectCommand(input),
	}
	inspectCmd.Flags().StringVar(&input.exportPath, "export", "", "write the graph to this file")
	input.addGraphFlags(inspectCmd.Flags())

	evaluateCmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Count the conflicts of a coloring file against a graph",
		Args:  cobra.NoArgs,
		RunE:  newEvaluateCommand(input),
	}
	evaluateCmd.Flags().StringVar(&input.coloringPath, "coloring", "", "coloring file (YAML or JSON)")
	_ = evaluateCmd.MarkFlagRequired("coloring")
	input.addGraphFlags(evaluateCmd.Flags())

	topologiesCmd := &cobra.Command{
		Use:   "topologies",
		Short: "List the generated topologies",
		Args:  cobra.NoArgs,
		RunE:  listTopologies,
	}

	rootCmd.AddCommand(runCmd, inspectCmd, evaluateCmd, topologiesCmd)
	rootCmd.SetContext(ctx)

	log.SetOutput(os.Stderr)

	return rootCmd
}
