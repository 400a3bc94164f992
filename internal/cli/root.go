package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tmarsden/rowgrid/internal/config"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the rowgrid CLI.
// It wires up logging and the demo/show subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rowgrid",
		Short:   "Paginated editable grid over a row collection",
		Long:    "rowgrid: browse, select, and batch-edit an ordered row collection in fixed-size pages",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to a rowgrid.yaml config file")
	cmd.PersistentFlags().String("log-file", "", "append logs to this file in addition to stderr")
	cmd.AddCommand(newDemoCmd(), newShowCmd())

	return cmd
}

const rootCmdExample = `  # Browse 1000 generated rows interactively
  rowgrid demo --rows 1000

  # Load rows from a YAML seed file
  rowgrid demo --seed rows.yaml

  # Print the second page of a seeded grid and exit
  rowgrid show --seed rows.yaml --page 2`

// setupLogging configures the global logger from config file, flags,
// and environment.
func setupLogging(cmd *cobra.Command) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = "debug"
	}

	logFile := cfg.Logging.File
	if flagFile, _ := cmd.Flags().GetString("log-file"); flagFile != "" {
		logFile = flagFile
	}

	if err := config.InitLogger(level, logFile); err != nil {
		return err
	}
	logger = config.ComponentLogger("cli")
	return nil
}

// loadGridConfig resolves the effective grid configuration from the
// config file and command flags. Flags win over the file.
func loadGridConfig(cmd *cobra.Command) (config.GridConfig, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return config.GridConfig{}, err
	}

	gridCfg := cfg.Grid
	if cmd.Flags().Changed("page-size") {
		gridCfg.PageSize, _ = cmd.Flags().GetInt("page-size")
	}
	if cmd.Flags().Changed("selection-policy") {
		gridCfg.SelectionPolicy, _ = cmd.Flags().GetString("selection-policy")
	}
	if err := gridCfg.Validate(); err != nil {
		return config.GridConfig{}, err
	}
	return gridCfg, nil
}
