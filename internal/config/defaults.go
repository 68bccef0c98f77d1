package config

import "runtime"

const (
	defaultConfigPath = "~/.config/subbox/config.toml"
	projectConfigName = "subbox.toml"

	defaultTextColor       = "FFFFFF"
	defaultBackgroundColor = "000000"
	defaultBackgroundAlpha = 80
	defaultPaddingX        = 20
	defaultPaddingY        = 10
	defaultMaxWidthRatio   = 1.0
	defaultGapThreshold    = 0.1

	defaultMeasureStrategy = "exact"
	defaultMeasureTimeout  = 30
	defaultFFprobeBinary   = "ffprobe"
	defaultProbeTimeout    = 15

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with built-in defaults.
func Default() Config {
	return Config{
		Render: Render{
			TextColor:       defaultTextColor,
			BackgroundColor: defaultBackgroundColor,
			BackgroundAlpha: defaultBackgroundAlpha,
			PaddingX:        defaultPaddingX,
			PaddingY:        defaultPaddingY,
			MaxWidthRatio:   defaultMaxWidthRatio,
			GapThreshold:    defaultGapThreshold,
			Workers:         runtime.NumCPU(),
		},
		Measure: Measure{
			Strategy:       defaultMeasureStrategy,
			TimeoutSeconds: defaultMeasureTimeout,
		},
		Probe: Probe{
			FFprobe:        defaultFFprobeBinary,
			TimeoutSeconds: defaultProbeTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
