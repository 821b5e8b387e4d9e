package main

import (
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/raykavin/pantalib/pkg/core"
	"github.com/raykavin/pantalib/pkg/indicator"
)

func buildListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the supported indicators",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Name", "Description", "Type", "Inputs", "Options", "Outputs"})
			table.SetAutoWrapText(false)

			for _, desc := range indicator.Default().Descriptors() {
				table.Append([]string{
					desc.Name,
					desc.FullName,
					desc.Type,
					strings.Join(desc.Columns(), " "),
					strings.Join(lo.Map(desc.Options, formatOption), " "),
					strings.Join(desc.Outputs, " "),
				})
			}

			table.Render()
		},
	}
}

func formatOption(option indicator.Option, _ int) string {
	if !option.HasDefault {
		return option.Name
	}
	return option.Name + "=" + core.FormatWithOptimalPrecision(option.Default, 4)
}
