package cmd

import (
	"os"

	"github.com/djcass44/go-utils/logging"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/ubl-sec/container-ids/pkg/registry"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var command = &cobra.Command{
	Use:          "container-ids",
	Short:        "derive stable container identifiers",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel, _ := cmd.Flags().GetInt(flagLogLevel)

		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.Level(logLevel * -1))

		_, ctx := logging.NewZap(cmd.Context(), zc)
		cmd.SetContext(ctx)
	},
	RunE: run,
}

const flagLogLevel = "v"

func init() {
	command.PersistentFlags().Int(flagLogLevel, 0, "log level. Higher is more")
}

func Execute(version string) {
	command.Version = version
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

// run emits the name->identifier mapping for the fixed container
// registry. The output is a pure function of the registry: no flag,
// argument or environment variable changes it.
func run(cmd *cobra.Command, _ []string) error {
	log := logr.FromContextOrDiscard(cmd.Context())

	log.V(1).Info("deriving container identifiers", "count", len(registry.Containers))
	mapping := registry.Build(registry.Containers)

	return mapping.Write(cmd.OutOrStdout())
}
