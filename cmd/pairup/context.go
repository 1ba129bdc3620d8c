package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"pairup/internal/config"
	"pairup/internal/history"
	"pairup/internal/logging"
	"pairup/internal/sheet"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(c.configFlagValue())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) configFlagValue() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) levelOverride() string {
	if c.logLevelFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.logLevelFlag)
}

// baseLogger builds the process logger once from the loaded config.
func (c *commandContext) baseLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg, c.levelOverride())
	})
	return c.logger, c.loggerErr
}

// runLogger tags the command's context with a fresh run ID and returns a
// logger carrying it.
func (c *commandContext) runLogger(cmd *cobra.Command) (context.Context, *slog.Logger, error) {
	logger, err := c.baseLogger()
	if err != nil {
		return nil, nil, err
	}
	runCtx := logging.WithRunID(commandCtx(cmd), logging.NewRunID())
	return runCtx, logging.WithContext(runCtx, logger), nil
}

// openHistory opens the configured history store. Callers close it.
func (c *commandContext) openHistory(ctx context.Context, logger *slog.Logger) (history.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	store, err := history.Open(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return store, nil
}

func commandCtx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func layoutFromConfig(cfg *config.Config) sheet.Layout {
	return sheet.Layout{
		NameColumn:      cfg.Sheet.NameColumn,
		HeaderRows:      cfg.Sheet.HeaderRows,
		FooterRows:      cfg.Sheet.FooterRows,
		FirstSlotColumn: cfg.Sheet.FirstSlotColumn,
		LastSlotColumn:  cfg.Sheet.LastSlotColumn,
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
