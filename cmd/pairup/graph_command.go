package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pairup/internal/logging"
	"pairup/internal/pairing"
	"pairup/internal/report"
	"pairup/internal/sheet"
)

func newGraphCommand(ctx *commandContext) *cobra.Command {
	var output string
	var directed bool

	cmd := &cobra.Command{
		Use:   "graph SOURCE_CSV",
		Short: "Export the compatibility graph in Graphviz format",
		Long: "Export the compatibility graph. Without --output the DOT source is printed. " +
			"Outputs ending in .dot or .gv are written directly; other extensions " +
			"(png, svg, pdf) are rendered with Graphviz `dot`.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runCtx, logger, err := ctx.runLogger(cmd)
			if err != nil {
				return err
			}

			table, err := sheet.ReadFile(args[0])
			if err != nil {
				return err
			}
			roster, err := pairing.ExtractMembers(table, layoutFromConfig(cfg), pairing.ExtractOptions{
				MaxMembers: cfg.Matching.MaxMembers,
				Logger:     logger,
			})
			if err != nil {
				return err
			}
			graph := pairing.BuildGraph(roster, pairing.GraphOptions{
				MaxCandidates: cfg.Matching.MaxCandidates,
				Logger:        logger,
			})

			target := strings.TrimSpace(output)
			if target == "" {
				return report.WriteDOT(cmd.OutOrStdout(), graph, directed)
			}
			if err := report.WriteGraphFile(runCtx, graph, target, directed); err != nil {
				return err
			}
			logger.Info("graph written",
				logging.String("path", target),
				logging.Int("members", len(graph.Relations)),
				logging.Int("edges", graph.Edges()),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote graph to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the graph to FILE (.dot, .gv, .png, .svg, .pdf)")
	cmd.Flags().BoolVar(&directed, "directed", false, "Emit every candidate link as a directed edge")
	return cmd
}
