package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pairup/internal/pairing"
)

func newAlgorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "algorithms",
		Short:       "List the orderings tried by the portfolio",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogue := pairing.Catalogue()
			rows := make([][]string, 0, len(catalogue)+1)
			for i, ordering := range catalogue {
				rows = append(rows, []string{strconv.Itoa(i + 1), ordering.Name(), "portfolio"})
			}
			rows = append(rows, []string{"-", pairing.EnsureOrderingName, "--ensure"})

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, []string{"#", "Name", "Used by"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft}))
			return nil
		},
	}
}
