package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmarsden/rowgrid/internal/config"
	"github.com/tmarsden/rowgrid/internal/tui"
)

// newShowCmd creates the one-shot snapshot command: render a single
// page of the grid and exit.
func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print one page of the grid and exit",
		RunE:  runShow,
	}

	cmd.Flags().Int("rows", defaultDemoRows, "number of synthetic rows to generate")
	cmd.Flags().String("seed", "", "YAML file with row payloads (overrides --rows)")
	cmd.Flags().Int("page-size", config.DefaultPageSize, "rows per page")
	cmd.Flags().String("selection-policy", "", "persist or clear-on-navigate")
	cmd.Flags().Int("page", 1, "page to display (out-of-range values are clamped)")
	cmd.Flags().Bool("plain", false, "force plain, uncolored output")

	return cmd
}

func runShow(cmd *cobra.Command, _ []string) error {
	controller, err := newGridController(cmd)
	if err != nil {
		return err
	}

	page, _ := cmd.Flags().GetInt("page")
	controller.GotoPage(page)

	plain, _ := cmd.Flags().GetBool("plain")
	if tui.DetectOutputMode(plain, true) == tui.OutputModeStyled {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.RenderStyled(controller.RenderState(), outputWidth))
		return err
	}
	return tui.RenderPlain(cmd.OutOrStdout(), controller.RenderState())
}
