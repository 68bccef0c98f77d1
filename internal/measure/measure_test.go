package measure

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"subbox/internal/ass"
	"subbox/internal/geometry"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func testConfig() ass.RenderConfig {
	return ass.RenderConfig{FontName: "Go", FontSize: 48, TextColor: "FFFFFF", BoxColor: "000000"}
}

func TestHeuristic(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantWidth  float64
		wantHeight float64
	}{
		{"single line", "Hello", 5 * 48 * 0.6, 48 * 1.2},
		{"forced break counts as space and line", `Hi\NYo`, 5 * 48 * 0.6, 48 * 1.2 * 2},
		{"override tags stripped", `{\i1}Hi{\i0}`, 2 * 48 * 0.6, 48 * 1.2},
		{"escaped braces are visible", `\{aside\}`, 7 * 48 * 0.6, 48 * 1.2},
		{"width capped", string(make([]rune, 200)), 1920 * 0.9, 48 * 1.2},
		{"multibyte runes", "你好", 2 * 48 * 0.6, 48 * 1.2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Heuristic(tc.text, 48, 1920)
			if !approx(got.Width, tc.wantWidth) || !approx(got.Height, tc.wantHeight) {
				t.Fatalf("Heuristic(%q) = %+v, want %v x %v", tc.text, got, tc.wantWidth, tc.wantHeight)
			}
		})
	}
}

type fakeMeasurer struct {
	results []Metrics
	err     error
	calls   int
}

func (f *fakeMeasurer) Measure(context.Context, []byte, geometry.Canvas) ([]Metrics, error) {
	f.calls++
	return f.results, f.err
}

func TestProviderUsesExactWhereAvailable(t *testing.T) {
	fake := &fakeMeasurer{results: []Metrics{{Width: 100, Height: 40}, {}}}
	p := Provider{Strategy: StrategyExact, Measurer: fake}
	metrics, stats := p.Provide(context.Background(), []string{"one", "two"}, testConfig(), geometry.DefaultCanvas)
	if stats.Measured != 1 || stats.Estimated != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if metrics[0] != (Metrics{Width: 100, Height: 40}) {
		t.Fatalf("expected measured metrics, got %+v", metrics[0])
	}
	if metrics[1] != Heuristic("two", 48, 1920) {
		t.Fatalf("expected estimate for cue 1, got %+v", metrics[1])
	}
}

func TestProviderFallsBackOnError(t *testing.T) {
	for _, err := range []error{ErrMeasurementUnavailable, errors.New("boom")} {
		fake := &fakeMeasurer{err: err}
		p := Provider{Measurer: fake}
		_, stats := p.Provide(context.Background(), []string{"a", "b", "c"}, testConfig(), geometry.DefaultCanvas)
		if stats.Measured != 0 || stats.Estimated != 3 {
			t.Fatalf("err %v: unexpected stats %+v", err, stats)
		}
	}
}

func TestProviderShortResult(t *testing.T) {
	fake := &fakeMeasurer{results: []Metrics{{Width: 10, Height: 10}}}
	p := Provider{Measurer: fake}
	_, stats := p.Provide(context.Background(), []string{"a", "b"}, testConfig(), geometry.DefaultCanvas)
	if stats.Measured != 1 || stats.Estimated != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestProviderHeuristicSkipsMeasurer(t *testing.T) {
	fake := &fakeMeasurer{results: []Metrics{{Width: 10, Height: 10}}}
	p := Provider{Strategy: StrategyHeuristic, Measurer: fake}
	_, stats := p.Provide(context.Background(), []string{"a"}, testConfig(), geometry.DefaultCanvas)
	if fake.calls != 0 {
		t.Fatal("heuristic strategy must not call the measurer")
	}
	if stats.Estimated != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestProviderNilMeasurer(t *testing.T) {
	_, stats := Provider{}.Provide(context.Background(), []string{"a"}, testConfig(), geometry.DefaultCanvas)
	if stats.Estimated != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestParseStrategy(t *testing.T) {
	if s, err := ParseStrategy(""); err != nil || s != StrategyExact {
		t.Fatalf("empty: %v %v", s, err)
	}
	if s, err := ParseStrategy("Heuristic"); err != nil || s != StrategyHeuristic {
		t.Fatalf("heuristic: %v %v", s, err)
	}
	if _, err := ParseStrategy("guess"); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestFontMeasurer(t *testing.T) {
	fontPath := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(fontPath, goregular.TTF, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	doc := ass.MeasureDocument(testConfig(), geometry.DefaultCanvas, []string{"Hi", "Hello world", `Hi\NHi`})
	metrics, err := FontMeasurer{FontPath: fontPath}.Measure(context.Background(), []byte(doc), geometry.DefaultCanvas)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if len(metrics) != 3 {
		t.Fatalf("expected 3 metrics, got %d", len(metrics))
	}
	for i, m := range metrics {
		if !m.Valid() {
			t.Fatalf("metrics %d not valid: %+v", i, m)
		}
	}
	if metrics[1].Width <= metrics[0].Width {
		t.Fatalf("longer text must be wider: %+v vs %+v", metrics[1], metrics[0])
	}
	if !approx(metrics[2].Width, metrics[0].Width) {
		t.Fatalf("width of a two-line cue is its widest line: %v vs %v", metrics[2].Width, metrics[0].Width)
	}
	if !approx(metrics[2].Height, 2*metrics[0].Height) {
		t.Fatalf("two lines must be twice as tall: %v vs %v", metrics[2].Height, metrics[0].Height)
	}
}

func TestFontMeasurerUnavailable(t *testing.T) {
	_, err := FontMeasurer{}.Measure(context.Background(), nil, geometry.DefaultCanvas)
	if !errors.Is(err, ErrMeasurementUnavailable) {
		t.Fatalf("expected ErrMeasurementUnavailable, got %v", err)
	}
	_, err = FontMeasurer{FontPath: filepath.Join(t.TempDir(), "missing.ttf")}.Measure(context.Background(), nil, geometry.DefaultCanvas)
	if !errors.Is(err, ErrMeasurementUnavailable) {
		t.Fatalf("expected ErrMeasurementUnavailable for missing font, got %v", err)
	}
}

func TestCommandMeasurer(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stub requires a POSIX shell")
	}
	dir := t.TempDir()
	stub := filepath.Join(dir, "measurer")
	script := "#!/bin/sh\n" +
		"[ \"$1\" = \"--width\" ] && [ \"$2\" = \"1280\" ] || exit 2\n" +
		"[ -f \"$5\" ] || exit 3\n" +
		"echo '[{\"width\":120,\"height\":50},{\"width\":0,\"height\":0}]'\n"
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	m := CommandMeasurer{Binary: stub, TempDir: dir}
	metrics, err := m.Measure(context.Background(), []byte("doc"), geometry.Canvas{Width: 1280, Height: 720})
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if len(metrics) != 2 || metrics[0] != (Metrics{Width: 120, Height: 50}) || metrics[1].Valid() {
		t.Fatalf("unexpected metrics %+v", metrics)
	}
	leftovers, _ := filepath.Glob(filepath.Join(dir, "subbox-measure-*.ass"))
	if len(leftovers) != 0 {
		t.Fatalf("temporary document not removed: %v", leftovers)
	}
}

func TestCommandMeasurerUnavailable(t *testing.T) {
	for _, m := range []CommandMeasurer{{}, {Binary: "clearly-not-present-measurer"}} {
		_, err := m.Measure(context.Background(), nil, geometry.DefaultCanvas)
		if !errors.Is(err, ErrMeasurementUnavailable) {
			t.Fatalf("%q: expected ErrMeasurementUnavailable, got %v", m.Binary, err)
		}
	}
}
