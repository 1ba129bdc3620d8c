package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSheet(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSheet() error {
	s := c.Sheet
	if s.NameColumn < 0 {
		return errors.New("sheet.name_column must be >= 0")
	}
	if s.HeaderRows < 0 {
		return errors.New("sheet.header_rows must be >= 0")
	}
	if s.FooterRows < 0 {
		return errors.New("sheet.footer_rows must be >= 0")
	}
	if s.FirstSlotColumn < 0 {
		return errors.New("sheet.first_slot_column must be >= 0")
	}
	if s.LastSlotColumn < 0 {
		return errors.New("sheet.last_slot_column must be >= 0")
	}
	if s.LastSlotColumn != 0 && s.LastSlotColumn < s.FirstSlotColumn {
		return fmt.Errorf("sheet.last_slot_column (%d) must not precede sheet.first_slot_column (%d)", s.LastSlotColumn, s.FirstSlotColumn)
	}
	if s.NameColumn == s.FirstSlotColumn {
		return errors.New("sheet.name_column must differ from sheet.first_slot_column")
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.MaxMembers <= 0 {
		return errors.New("matching.max_members must be positive")
	}
	if c.Matching.MaxCandidates <= 0 {
		return errors.New("matching.max_candidates must be positive")
	}
	switch c.Matching.RepeatPolicy {
	case "allow", "avoid", "exclude":
	default:
		return fmt.Errorf("matching.repeat_policy must be allow, avoid or exclude (got %q)", c.Matching.RepeatPolicy)
	}
	return nil
}

func (c *Config) validateHistory() error {
	switch c.History.Backend {
	case "none":
		return nil
	case "json", "sqlite":
		if strings.TrimSpace(c.History.Path) == "" {
			return fmt.Errorf("history.path is required for the %s backend", c.History.Backend)
		}
	case "redis":
		if c.History.RedisAddr == "" {
			return errors.New("history.redis_addr is required for the redis backend")
		}
		if c.History.RedisDB < 0 {
			return errors.New("history.redis_db must be >= 0")
		}
	default:
		return fmt.Errorf("history.backend must be json, sqlite, redis or none (got %q)", c.History.Backend)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
}
