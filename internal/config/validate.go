package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRender(); err != nil {
		return err
	}
	if err := c.validateMeasure(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateRender() error {
	r := c.Render
	if r.FontSize != nil && *r.FontSize <= 0 {
		return errors.New("render.font_size must be positive")
	}
	if !isHexColor(r.TextColor) {
		return fmt.Errorf("render.text_color: %q is not an RRGGBB colour", r.TextColor)
	}
	if !isHexColor(r.BackgroundColor) {
		return fmt.Errorf("render.background_color: %q is not an RRGGBB colour", r.BackgroundColor)
	}
	if r.BackgroundAlpha < 0 || r.BackgroundAlpha > 255 {
		return errors.New("render.background_alpha must be between 0 and 255")
	}
	if r.PaddingX < 0 || r.PaddingY < 0 {
		return errors.New("render.padding_x and render.padding_y must be non-negative")
	}
	if r.BorderRadius != nil && *r.BorderRadius < 0 {
		return errors.New("render.border_radius must be non-negative")
	}
	if r.MinWidthRatio < 0 || r.MinWidthRatio > 1 {
		return errors.New("render.min_width_ratio must be between 0 and 1")
	}
	if r.MaxWidthRatio < 0 || r.MaxWidthRatio > 1 {
		return errors.New("render.max_width_ratio must be between 0 and 1")
	}
	if r.MaxWidthRatio > 0 && r.MinWidthRatio > r.MaxWidthRatio {
		return errors.New("render.min_width_ratio must not exceed render.max_width_ratio")
	}
	if r.MarginBottom != nil && *r.MarginBottom < 0 {
		return errors.New("render.margin_bottom must be non-negative")
	}
	if r.GapThreshold < 0 {
		return errors.New("render.gap_threshold must be non-negative")
	}
	switch r.Format {
	case "", "srt", "vtt":
	default:
		return fmt.Errorf("render.format: unsupported value %q (use srt or vtt)", r.Format)
	}
	return nil
}

func (c *Config) validateMeasure() error {
	switch c.Measure.Strategy {
	case "exact", "heuristic":
	default:
		return fmt.Errorf("measure.strategy: unsupported value %q (use exact or heuristic)", c.Measure.Strategy)
	}
	if c.Measure.Command != "" && c.Measure.FontFile != "" {
		return errors.New("measure.command and measure.font_file are mutually exclusive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func isHexColor(value string) bool {
	if len(value) != 6 {
		return false
	}
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9', r >= 'A' && r <= 'F', r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}
