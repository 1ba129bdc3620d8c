package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pairup/internal/config"
	"pairup/internal/history"
	"pairup/internal/logging"
	"pairup/internal/metrics"
	"pairup/internal/pairing"
	"pairup/internal/report"
	"pairup/internal/sheet"
)

type matchFlags struct {
	ensure      []string
	priority    string
	seed        int64
	noShuffle   bool
	json        bool
	summary     bool
	week        string
	record      bool
	repeats     string
	metricsFile string
}

// matchDocument is the --json payload; Stats is set with --summary.
type matchDocument struct {
	report.Document
	Week  string        `json:"week"`
	Stats *report.Stats `json:"stats,omitempty"`
}

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var flags matchFlags

	cmd := &cobra.Command{
		Use:   "match SOURCE_CSV",
		Short: "Pair members from a weekly availability table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				flags.seed = cfg.Matching.Seed
			}
			return runMatch(cmd, ctx, cfg, args[0], flags)
		},
	}

	cmd.Flags().StringArrayVarP(&flags.ensure, "ensure", "e", nil, "Names to pair first, highest priority first (repeatable)")
	cmd.Flags().StringVarP(&flags.priority, "priority", "p", "", "Run a single ordering instead of the whole catalogue")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "Random seed (0 seeds from the clock)")
	cmd.Flags().BoolVar(&flags.noShuffle, "no-shuffle", false, "Keep the table's row order")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Output the result as JSON")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "Print result statistics")
	cmd.Flags().StringVar(&flags.week, "week", "", "ISO week for pairing history (default: current week)")
	cmd.Flags().BoolVar(&flags.record, "record", false, "Add the final pairs to the week's history")
	cmd.Flags().StringVar(&flags.repeats, "repeats", "", "Repeat-partner policy: allow, avoid or exclude (default from config)")
	cmd.Flags().StringVar(&flags.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")
	return cmd
}

func runMatch(cmd *cobra.Command, ctx *commandContext, cfg *config.Config, source string, flags matchFlags) error {
	runCtx, logger, err := ctx.runLogger(cmd)
	if err != nil {
		return err
	}

	policyName := flags.repeats
	if strings.TrimSpace(policyName) == "" {
		policyName = cfg.Matching.RepeatPolicy
	}
	policy, err := pairing.ParseRepeatPolicy(policyName)
	if err != nil {
		return err
	}
	week := strings.TrimSpace(flags.week)
	if week == "" {
		week = history.CurrentWeek(time.Now())
	}

	table, err := sheet.ReadFile(source)
	if err != nil {
		return err
	}

	matchOpts := pairing.MatchOptions{Policy: policy}
	var store history.Store
	if policy != pairing.RepeatAllow || flags.record {
		store, err = ctx.openHistory(runCtx, logger)
		if err != nil {
			return err
		}
		defer store.Close()
	}
	if policy != pairing.RepeatAllow {
		book, err := store.Load(runCtx)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		matchOpts.History = history.Gate{Book: book, Week: week}
	}

	metricsPath := strings.TrimSpace(flags.metricsFile)
	if metricsPath == "" {
		metricsPath = cfg.Paths.MetricsFile
	}
	var recorder *metrics.Recorder
	var observer pairing.Observer
	if metricsPath != "" {
		recorder = metrics.NewRecorder()
		observer = recorder
	}

	logger.Info("pairing run started",
		logging.String("source", source),
		logging.String(logging.FieldWeek, week),
		logging.String("repeat_policy", string(policy)),
		logging.Int64("seed", flags.seed),
	)
	outcome, err := pairing.Run(table, pairing.RunOptions{
		Layout:        layoutFromConfig(cfg),
		Shuffle:       cfg.Matching.Shuffle && !flags.noShuffle,
		Pins:          flags.ensure,
		Priority:      flags.priority,
		MaxMembers:    cfg.Matching.MaxMembers,
		MaxCandidates: cfg.Matching.MaxCandidates,
		Rand:          pairing.NewRandomSource(flags.seed),
		Match:         matchOpts,
		Logger:        logger,
		Observer:      observer,
	})
	if err != nil {
		return err
	}
	result := outcome.Result

	if flags.record {
		if err := recordPairs(runCtx, store, week, result, logger); err != nil {
			return err
		}
	}
	if recorder != nil {
		if err := recorder.WriteTextfile(metricsPath); err != nil {
			return err
		}
		logger.Debug("metrics written", logging.String("path", metricsPath))
	}

	if flags.json {
		doc := matchDocument{Document: report.NewDocument(result), Week: week}
		if flags.summary {
			stats := report.Summarize(result)
			doc.Stats = &stats
		}
		return writeJSON(cmd, doc)
	}

	out := cmd.OutOrStdout()
	if err := report.WriteText(out, result, report.Message{
		Greeting:     cfg.Message.Greeting,
		Alternatives: cfg.Message.Alternatives,
	}); err != nil {
		return err
	}
	if flags.summary {
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderStats(out, report.Summarize(result)))
	}
	return nil
}

func recordPairs(ctx context.Context, store history.Store, week string, result *pairing.Result, logger *slog.Logger) error {
	pairs := make([]history.NamePair, 0, len(result.Pairs))
	for _, p := range result.Pairs {
		a, b := result.PairNames(p)
		pairs = append(pairs, history.NamePair{A: a, B: b})
	}
	var added int
	err := history.Update(ctx, store, func(book *history.Book) error {
		added = book.Record(week, pairs)
		return nil
	})
	if err != nil {
		return fmt.Errorf("record history: %w", err)
	}
	logger.Info("pairs recorded",
		logging.String(logging.FieldWeek, week),
		logging.Int("pairs", len(pairs)),
		logging.Int("new_links", added),
	)
	return nil
}

func renderStats(out io.Writer, s report.Stats) string {
	rows := [][]string{
		{"Algorithm", s.Algorithm},
		{"Members", strconv.Itoa(s.Members)},
		{"Pairs", fmt.Sprintf("%d (%d%%)", s.Pairs, s.PairPercent)},
		{"Singles", fmt.Sprintf("%d (%d%%)", s.Singles, s.SinglePercent)},
		{"Requests", strconv.Itoa(s.Requests)},
		{"Satisfied", fmt.Sprintf("%d (%d%%)", s.SatisfiedRequests, s.SatisfiedPercent)},
		{"Perfect", yesNo(s.Perfect)},
	}
	return renderTable(out, []string{"Statistic", "Value"}, rows, []columnAlignment{alignLeft, alignRight})
}
