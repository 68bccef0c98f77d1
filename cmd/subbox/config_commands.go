package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"subbox/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file and show effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			if !ctx.configSeen {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			fmt.Fprintln(out, renderTable(out, []string{"Setting", "Value"}, settingsRows(cfg), nil))
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func settingsRows(cfg *config.Config) [][]string {
	r := cfg.Render
	return [][]string{
		{"render.font", orAuto(r.Font)},
		{"render.font_size", intOrAuto(r.FontSize)},
		{"render.text_color", r.TextColor},
		{"render.background_color", r.BackgroundColor},
		{"render.background_alpha", strconv.Itoa(r.BackgroundAlpha)},
		{"render.padding", fmt.Sprintf("%g x %g", r.PaddingX, r.PaddingY)},
		{"render.border_radius", floatOrAuto(r.BorderRadius)},
		{"render.width_ratio", fmt.Sprintf("%g..%g", r.MinWidthRatio, r.MaxWidthRatio)},
		{"render.margin_bottom", intOrAuto(r.MarginBottom)},
		{"render.gap_threshold", fmt.Sprintf("%gs", r.GapThreshold)},
		{"measure.strategy", cfg.Measure.Strategy},
		{"measure.backend", measureBackend(cfg.Measure)},
		{"probe.ffprobe", cfg.Probe.FFprobe},
		{"logging", cfg.Logging.Format + "/" + cfg.Logging.Level},
	}
}

func measureBackend(m config.Measure) string {
	switch {
	case m.Command != "":
		return "command " + m.Command
	case m.FontFile != "":
		return "font " + m.FontFile
	default:
		return "none (estimates only)"
	}
}

func orAuto(value string) string {
	if value == "" {
		return "auto"
	}
	return value
}

func intOrAuto(value *int) string {
	if value == nil {
		return "auto"
	}
	return strconv.Itoa(*value)
}

func floatOrAuto(value *float64) string {
	if value == nil {
		return "auto"
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}
