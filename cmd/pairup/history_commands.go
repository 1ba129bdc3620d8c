package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pairup/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded pairings",
	}

	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	historyCmd.AddCommand(newHistoryCheckCommand(ctx))

	return historyCmd
}

func resolveWeek(value string) string {
	if week := strings.TrimSpace(value); week != "" {
		return week
	}
	return history.CurrentWeek(time.Now())
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var week string
	var all bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List who already paired with whom",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, logger, err := ctx.runLogger(cmd)
			if err != nil {
				return err
			}
			store, err := ctx.openHistory(runCtx, logger)
			if err != nil {
				return err
			}
			defer store.Close()

			book, err := store.Load(runCtx)
			if err != nil {
				return fmt.Errorf("load history: %w", err)
			}

			weeks := []string{resolveWeek(week)}
			if all {
				weeks = book.Weeks()
			}
			if asJSON {
				doc := history.Document{}
				for _, w := range weeks {
					doc[w] = book.Week(w)
				}
				return writeJSON(cmd, doc)
			}

			out := cmd.OutOrStdout()
			if len(weeks) == 0 {
				fmt.Fprintln(out, "No pairings recorded")
				return nil
			}
			for i, w := range weeks {
				if i > 0 {
					fmt.Fprintln(out)
				}
				records := book.Week(w)
				if len(records) == 0 {
					fmt.Fprintf(out, "No pairings recorded for %s\n", w)
					continue
				}
				rows := make([][]string, 0, len(records))
				for _, rec := range records {
					rows = append(rows, []string{rec.Host, strings.Join(rec.AlreadyPaired, ", ")})
				}
				fmt.Fprintf(out, "Week %s\n", w)
				fmt.Fprintln(out, renderTable(out, []string{"Member", "Already paired with"}, rows, nil))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "ISO week to show (default: current week)")
	cmd.Flags().BoolVar(&all, "all", false, "Show every recorded week")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newHistoryCheckCommand(ctx *commandContext) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "check NAME NAME",
		Short: "Report whether two members already paired this week",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, logger, err := ctx.runLogger(cmd)
			if err != nil {
				return err
			}
			store, err := ctx.openHistory(runCtx, logger)
			if err != nil {
				return err
			}
			defer store.Close()

			book, err := store.Load(runCtx)
			if err != nil {
				return fmt.Errorf("load history: %w", err)
			}

			w := resolveWeek(week)
			a, b := strings.TrimSpace(args[0]), strings.TrimSpace(args[1])
			gate := history.Gate{Book: book, Week: w}
			out := cmd.OutOrStdout()
			if gate.AlreadyPaired(a, b) {
				fmt.Fprintf(out, "%s and %s already paired in %s\n", a, b, w)
			} else {
				fmt.Fprintf(out, "%s and %s have not paired in %s\n", a, b, w)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "ISO week to check (default: current week)")
	return cmd
}
