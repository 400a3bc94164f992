package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tmarsden/rowgrid/internal/config"
	"github.com/tmarsden/rowgrid/internal/grid"
	"github.com/tmarsden/rowgrid/internal/tui"
)

// defaultDemoRows is the seed size when neither --rows nor --seed is given.
const defaultDemoRows = 1000

// newDemoCmd creates the interactive grid command.
func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Browse and edit a grid interactively",
		Long: "Load rows from a seed file or generate synthetic ones, then browse them " +
			"in fixed-size pages with selection and batch delete.",
		RunE: runDemo,
	}

	cmd.Flags().Int("rows", defaultDemoRows, "number of synthetic rows to generate")
	cmd.Flags().String("seed", "", "YAML file with row payloads (overrides --rows)")
	cmd.Flags().Int("page-size", config.DefaultPageSize, "rows per page")
	cmd.Flags().String("selection-policy", "", "persist or clear-on-navigate")
	cmd.Flags().Bool("plain", false, "force plain, uncolored output")
	cmd.Flags().Bool("no-interactive", false, "render one snapshot instead of the TUI")

	return cmd
}

// newGridController builds a controller from the resolved configuration
// and bulk-loads the requested rows into it.
func newGridController(cmd *cobra.Command) (*grid.Controller, error) {
	gridCfg, err := loadGridConfig(cmd)
	if err != nil {
		return nil, err
	}

	controller, err := grid.NewControllerWithPolicy(gridCfg.PageSize, gridCfg.Policy())
	if err != nil {
		return nil, err
	}
	controller.SetLogger(config.ComponentLogger("grid"))

	seedPath, _ := cmd.Flags().GetString("seed")
	rows, _ := cmd.Flags().GetInt("rows")
	payloads, err := resolvePayloads(seedPath, rows)
	if err != nil {
		return nil, err
	}
	loaded := controller.LoadRows(payloads)
	logger.Info().Int("rows", loaded).Int("page_size", gridCfg.PageSize).Msg("grid loaded")

	return controller, nil
}

// runDemo loads the grid and routes to the richest output mode the
// environment supports.
func runDemo(cmd *cobra.Command, _ []string) error {
	controller, err := newGridController(cmd)
	if err != nil {
		return err
	}

	plain, _ := cmd.Flags().GetBool("plain")
	noInteractive, _ := cmd.Flags().GetBool("no-interactive")
	mode := tui.DetectOutputMode(plain, noInteractive)
	logger.Debug().Stringer("mode", mode).Msg("output mode detected")

	switch mode {
	case tui.OutputModeInteractive:
		model := tui.NewGridModel(controller)
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("running grid: %w", err)
		}
		return nil

	case tui.OutputModeStyled:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.RenderStyled(controller.RenderState(), outputWidth))
		return err

	case tui.OutputModePlain:
		return tui.RenderPlain(cmd.OutOrStdout(), controller.RenderState())

	default:
		return tui.RenderPlain(cmd.OutOrStdout(), controller.RenderState())
	}
}

// outputWidth is the width used for non-interactive styled output.
const outputWidth = 100
