package config

import (
	"fmt"
	"runtime"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeRender()
	if err := c.normalizeMeasure(); err != nil {
		return err
	}
	c.normalizeProbe()
	return c.normalizeLogging()
}

// Normalize applies the same clean-up Load performs. Callers that modify a
// loaded config from flags run it again before Validate.
func (c *Config) Normalize() error {
	return c.normalize()
}

func (c *Config) normalizeRender() {
	c.Render.Font = strings.TrimSpace(c.Render.Font)
	c.Render.TextColor = normalizeHex(c.Render.TextColor, defaultTextColor)
	c.Render.BackgroundColor = normalizeHex(c.Render.BackgroundColor, defaultBackgroundColor)
	c.Render.Format = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(c.Render.Format), "."))
	if c.Render.Workers <= 0 {
		c.Render.Workers = runtime.NumCPU()
	}
}

func (c *Config) normalizeMeasure() error {
	c.Measure.Strategy = strings.ToLower(strings.TrimSpace(c.Measure.Strategy))
	if c.Measure.Strategy == "" {
		c.Measure.Strategy = defaultMeasureStrategy
	}
	c.Measure.Command = strings.TrimSpace(c.Measure.Command)
	if c.Measure.TimeoutSeconds <= 0 {
		c.Measure.TimeoutSeconds = defaultMeasureTimeout
	}
	var err error
	if c.Measure.FontFile, err = expandPath(strings.TrimSpace(c.Measure.FontFile)); err != nil {
		return fmt.Errorf("measure.font_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeProbe() {
	c.Probe.FFprobe = strings.TrimSpace(c.Probe.FFprobe)
	if c.Probe.FFprobe == "" {
		c.Probe.FFprobe = defaultFFprobeBinary
	}
	if c.Probe.TimeoutSeconds <= 0 {
		c.Probe.TimeoutSeconds = defaultProbeTimeout
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}

func normalizeHex(value, fallback string) string {
	value = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(value), "#"))
	if value == "" {
		return fallback
	}
	return value
}
