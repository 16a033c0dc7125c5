package main

import (
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SimonDaKappa/go-hatch"
	"github.com/SimonDaKappa/go-hatch/internal/decl"
)

func newRulesCmd(logger *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the grammar rules parse can start from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := decl.NewRegistry(hatch.RegistryOpts{Logger: logger})
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Name", "Description"})
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetAutoWrapText(false)
			table.SetRowLine(false)
			for _, rule := range reg.Rules() {
				name := rule.Name
				if name == decl.DefaultRule {
					name += " (default)"
				}
				table.Append([]string{name, rule.Description})
			}
			table.Render()
			return nil
		},
	}
}
