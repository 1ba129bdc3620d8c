package main

import (
	"github.com/spf13/cobra"

	"pairup/internal/report"
	"pairup/internal/sheet"
)

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "show SOURCE_CSV",
		Short:       "Print the availability table as read",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := sheet.ReadFile(args[0])
			if err != nil {
				return err
			}
			return report.WriteSchedule(cmd.OutOrStdout(), table, table.Path())
		},
	}
}
