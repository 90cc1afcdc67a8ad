package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/marcus/wingsfly/internal/mockdata"
	"github.com/marcus/wingsfly/internal/models"
	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the choices offered by the Create New drawer",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		wide, _ := cmd.Flags().GetBool("wide")
		printOptions(color.Output, mockdata.DrawerOptions(), wide)
	},
}

func init() {
	optionsCmd.Flags().BoolP("wide", "w", false, "show full descriptions")
	rootCmd.AddCommand(optionsCmd)
}

func printOptions(w io.Writer, opts []models.SelectableOption, wide bool) {
	bold := color.New(color.Bold).SprintFunc()
	accent := color.New(color.FgHiBlue).SprintFunc()

	tbl := uitable.New()
	tbl.Separator = "  "
	if !wide {
		tbl.MaxColWidth = 48
	}
	tbl.AddRow(bold("ID"), "", bold("Option"), bold("Description"))
	for _, o := range opts {
		tbl.AddRow(o.ID, models.IconGlyph(o.Icon), accent(o.Title), o.Subtitle)
	}
	_, _ = fmt.Fprintln(w, tbl)
}
