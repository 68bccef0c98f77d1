package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"subbox/internal/config"
	"subbox/internal/convert"
	"subbox/internal/fileutil"
	"subbox/internal/geometry"
	"subbox/internal/logging"
	"subbox/internal/measure"
	"subbox/internal/media/ffprobe"
	"subbox/internal/params"
	"subbox/internal/subtitle"
)

type convertFlags struct {
	output         string
	video          string
	format         string
	title          string
	font           string
	fontSize       int
	textColor      string
	bgColor        string
	bgAlpha        int
	paddingX       float64
	paddingY       float64
	radius         float64
	minWidthRatio  float64
	maxWidthRatio  float64
	marginBottom   int
	gapThreshold   float64
	strategy       string
	measureCommand string
	fontFile       string
	workers        int
	quiet          bool
}

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert <input.srt|input.vtt|->",
		Short: "Convert a subtitle file into an ASS document with background boxes",
		Long: `Convert an SRT or WebVTT file into an Advanced SubStation Alpha document.

Each cue is drawn over a background box sized to its text. Pass --video to
lay the document out on the video's own canvas; without it a 1920x1080
canvas is used. Use "-" as input to read from stdin (requires --format) and
"-o -" to write the document to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			effective := *cfg
			if err := applyConvertFlags(cmd, &flags, &effective); err != nil {
				return err
			}
			return runConvert(cmd, logger, &effective, flags, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.output, "output", "o", "", "Output path (default: input with .ass extension, - for stdout)")
	f.StringVar(&flags.video, "video", "", "Video file whose dimensions define the canvas")
	f.StringVar(&flags.format, "format", "", "Input format: srt or vtt (default: from extension)")
	f.StringVar(&flags.title, "title", "", "Document title (default: input file name)")
	f.StringVar(&flags.font, "font", "", "Font family (default: chosen from the subtitle script)")
	f.IntVar(&flags.fontSize, "font-size", 0, "Font size in pixels (default: video height / 20)")
	f.StringVar(&flags.textColor, "text-color", "", "Text colour as RRGGBB")
	f.StringVar(&flags.bgColor, "background-color", "", "Background box colour as RRGGBB")
	f.IntVar(&flags.bgAlpha, "background-alpha", 0, "Background box alpha, 0 opaque to 255 transparent")
	f.Float64Var(&flags.paddingX, "padding-x", 0, "Horizontal box padding in pixels")
	f.Float64Var(&flags.paddingY, "padding-y", 0, "Vertical box padding in pixels")
	f.Float64Var(&flags.radius, "border-radius", 0, "Corner radius in pixels (default: scaled to the video)")
	f.Float64Var(&flags.minWidthRatio, "min-width-ratio", 0, "Minimum box width as a share of the video width")
	f.Float64Var(&flags.maxWidthRatio, "max-width-ratio", 0, "Maximum box width as a share of the video width")
	f.IntVar(&flags.marginBottom, "margin-bottom", 0, "Distance from the bottom edge in pixels")
	f.Float64Var(&flags.gapThreshold, "gap-threshold", 0, "Close gaps between cues shorter than this many seconds")
	f.StringVar(&flags.strategy, "measure", "", "Measurement strategy: exact or heuristic")
	f.StringVar(&flags.measureCommand, "measure-command", "", "External measurer executable")
	f.StringVar(&flags.fontFile, "font-file", "", "TrueType font used for in-process measurement")
	f.IntVar(&flags.workers, "workers", 0, "Layout workers (default: number of CPUs)")
	f.BoolVarP(&flags.quiet, "quiet", "q", false, "Do not print the conversion summary")

	return cmd
}

// applyConvertFlags layers explicitly set flags over the loaded config and
// validates the result.
func applyConvertFlags(cmd *cobra.Command, flags *convertFlags, cfg *config.Config) error {
	changed := cmd.Flags().Changed
	r := &cfg.Render
	if changed("format") {
		r.Format = flags.format
	}
	if changed("font") {
		r.Font = flags.font
	}
	if changed("font-size") {
		r.FontSize = &flags.fontSize
	}
	if changed("text-color") {
		r.TextColor = flags.textColor
	}
	if changed("background-color") {
		r.BackgroundColor = flags.bgColor
	}
	if changed("background-alpha") {
		r.BackgroundAlpha = flags.bgAlpha
	}
	if changed("padding-x") {
		r.PaddingX = flags.paddingX
	}
	if changed("padding-y") {
		r.PaddingY = flags.paddingY
	}
	if changed("border-radius") {
		r.BorderRadius = &flags.radius
	}
	if changed("min-width-ratio") {
		r.MinWidthRatio = flags.minWidthRatio
	}
	if changed("max-width-ratio") {
		r.MaxWidthRatio = flags.maxWidthRatio
	}
	if changed("margin-bottom") {
		r.MarginBottom = &flags.marginBottom
	}
	if changed("gap-threshold") {
		r.GapThreshold = flags.gapThreshold
	}
	if changed("workers") {
		r.Workers = flags.workers
	}
	m := &cfg.Measure
	if changed("measure") {
		m.Strategy = flags.strategy
	}
	if changed("measure-command") {
		m.Command = flags.measureCommand
		m.FontFile = ""
	}
	if changed("font-file") {
		m.FontFile = flags.fontFile
		if !changed("measure-command") {
			m.Command = ""
		}
	}
	if err := cfg.Normalize(); err != nil {
		return err
	}
	return cfg.Validate()
}

func runConvert(cmd *cobra.Command, logger *slog.Logger, cfg *config.Config, flags convertFlags, input string) error {
	format, err := inputFormat(cfg.Render.Format, input)
	if err != nil {
		return err
	}
	data, err := readInput(cmd.InOrStdin(), input)
	if err != nil {
		return err
	}
	strategy, err := measure.ParseStrategy(cfg.Measure.Strategy)
	if err != nil {
		return err
	}

	converter := &convert.Converter{
		Prober: ffprobe.Prober{
			Binary:  cfg.Probe.FFprobe,
			Timeout: time.Duration(cfg.Probe.TimeoutSeconds) * time.Second,
		},
		Provider: measure.Provider{
			Strategy: strategy,
			Measurer: newMeasurer(cfg.Measure),
			Logger:   logging.NewComponentLogger(logger, "measure"),
		},
		Logger:   logger,
		Platform: params.PlatformFor(runtime.GOOS),
		Workers:  cfg.Render.Workers,
	}

	result, err := converter.Convert(cmd.Context(), convert.Request{
		Input:        data,
		Format:       format,
		VideoPath:    flags.video,
		Title:        documentTitle(flags.title, input),
		Options:      renderOptions(cfg.Render),
		GapThreshold: &cfg.Render.GapThreshold,
	})
	if err != nil {
		if errors.Is(err, subtitle.ErrEmptyInput) {
			return fmt.Errorf("%s: %w", input, err)
		}
		return err
	}

	output := outputPath(flags.output, input)
	summaryOut := cmd.OutOrStdout()
	if output == "-" {
		if _, err := io.WriteString(cmd.OutOrStdout(), result.Document); err != nil {
			return fmt.Errorf("write document: %w", err)
		}
		summaryOut = cmd.ErrOrStderr()
	} else {
		if err := fileutil.WriteFileLocked(cmd.Context(), output, []byte(result.Document), 0o644); err != nil {
			return err
		}
	}

	logger.Info("document written",
		logging.String("output", output),
		logging.Int("cues", result.Cues),
	)
	if !flags.quiet {
		fmt.Fprintln(summaryOut, renderSummary(summaryOut, output, result))
	}
	return nil
}

func newMeasurer(cfg config.Measure) measure.Measurer {
	switch {
	case cfg.Command != "":
		return measure.CommandMeasurer{
			Binary:  cfg.Command,
			Args:    cfg.Args,
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		}
	case cfg.FontFile != "":
		return measure.FontMeasurer{FontPath: cfg.FontFile}
	default:
		return measure.Unavailable{}
	}
}

func renderOptions(r config.Render) params.Options {
	return params.Options{
		Font:         r.Font,
		FontSize:     r.FontSize,
		TextColor:    r.TextColor,
		BoxColor:     r.BackgroundColor,
		BoxAlpha:     r.BackgroundAlpha,
		Padding:      geometry.Padding{X: r.PaddingX, Y: r.PaddingY},
		Radius:       r.BorderRadius,
		WidthBounds:  geometry.WidthBounds{Min: r.MinWidthRatio, Max: r.MaxWidthRatio},
		MarginBottom: r.MarginBottom,
	}
}

func inputFormat(declared, input string) (subtitle.Format, error) {
	if declared != "" {
		return subtitle.ParseFormat(declared)
	}
	if input == "-" {
		return "", fmt.Errorf("reading stdin requires --format: %w", subtitle.ErrUnknownFormat)
	}
	return subtitle.FormatFromPath(input)
}

func readInput(stdin io.Reader, input string) ([]byte, error) {
	if input == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func outputPath(output, input string) string {
	output = strings.TrimSpace(output)
	if output != "" {
		return output
	}
	if input == "-" {
		return "-"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".ass"
}

func documentTitle(title, input string) string {
	if title = strings.TrimSpace(title); title != "" {
		return title
	}
	if input == "-" {
		return ""
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func renderSummary(w io.Writer, output string, result convert.Result) string {
	canvas := result.Canvas.String()
	if !result.Probed {
		canvas += " (default)"
	}
	rows := [][]string{
		{"Output", output},
		{"Cues", strconv.Itoa(result.Cues)},
		{"Timing adjusted", strconv.Itoa(result.Adjusted)},
		{"Measured", strconv.Itoa(result.Stats.Measured)},
		{"Estimated", strconv.Itoa(result.Stats.Estimated)},
		{"Canvas", canvas},
		{"Script", string(result.Script)},
		{"Font", fmt.Sprintf("%s %dpx", result.Font, result.FontSize)},
		{"Encoding", string(result.Encoding)},
	}
	return renderTable(w, []string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignLeft})
}
