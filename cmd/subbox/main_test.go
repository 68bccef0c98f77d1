package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"subbox/internal/subtitle"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:02,950
Hello there

2
00:00:03,000 --> 00:00:04,500
General Kenobi
`

type cliEnv struct {
	dir string
}

func setupCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	base := t.TempDir()
	home := filepath.Join(base, "home")
	work := filepath.Join(base, "work")
	for _, dir := range []string{home, work} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	t.Setenv("HOME", home)
	t.Chdir(work)
	return &cliEnv{dir: work}
}

func (e *cliEnv) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q in:\n%s", needle, haystack)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestConvertWritesDocumentNextToInput(t *testing.T) {
	env := setupCLIEnv(t)
	input := env.write(t, "episode.srt", sampleSRT)

	out, _, err := runCLI(t, "", "convert", input, "--measure", "heuristic")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	doc := readFile(t, filepath.Join(env.dir, "episode.ass"))
	requireContains(t, doc, "[Script Info]")
	requireContains(t, doc, "Title: episode")
	requireContains(t, doc, "PlayResX: 1920")
	requireContains(t, doc, "Dialogue: 0,0:00:01.00,0:00:03.00,Box-BG,")
	if got := strings.Count(doc, "Dialogue: "); got != 4 {
		t.Fatalf("expected 4 dialogue lines, got %d", got)
	}

	requireContains(t, out, "Timing adjusted")
	requireContains(t, out, "1920x1080 (default)")
	requireContains(t, out, "Estimated")
}

func TestConvertToStdout(t *testing.T) {
	env := setupCLIEnv(t)
	input := env.write(t, "episode.srt", sampleSRT)

	out, errOut, err := runCLI(t, "", "convert", input, "-o", "-")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.HasPrefix(out, "[Script Info]") {
		t.Fatalf("expected document on stdout, got:\n%s", out)
	}
	requireContains(t, errOut, "Cues")
	if _, err := os.Stat(filepath.Join(env.dir, "episode.ass")); !os.IsNotExist(err) {
		t.Fatal("no file should be written when printing to stdout")
	}
}

func TestConvertFlagsOverrideConfig(t *testing.T) {
	env := setupCLIEnv(t)
	input := env.write(t, "episode.srt", sampleSRT)
	cfgPath := env.write(t, "subbox.toml", "[render]\nfont = \"Config Sans\"\nbackground_alpha = 128\n")
	output := filepath.Join(env.dir, "out", "styled.ass")
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		t.Fatal(err)
	}

	_, _, err := runCLI(t, "", "--config", cfgPath, "convert", input,
		"-o", output, "-q",
		"--font-size", "30",
		"--background-alpha", "0",
		"--border-radius", "0",
		"--background-color", "#102030",
	)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	doc := readFile(t, output)
	requireContains(t, doc, "Style: Default,Config Sans,30,")
	requireContains(t, doc, `\1c&H302010&\1a&H00&\p1}m `)
	for _, line := range strings.Split(doc, "\n") {
		if strings.Contains(line, "Box-BG,,") && strings.Contains(line, " b ") {
			t.Fatalf("zero radius must draw square corners: %s", line)
		}
	}
}

func TestConvertStdinRequiresFormat(t *testing.T) {
	setupCLIEnv(t)
	if _, _, err := runCLI(t, sampleSRT, "convert", "-"); !errors.Is(err, subtitle.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}

	out, _, err := runCLI(t, sampleSRT, "convert", "-", "--format", "srt", "-q")
	if err != nil {
		t.Fatalf("convert stdin: %v", err)
	}
	requireContains(t, out, "Title: subbox")
}

func TestConvertEmptyInputFails(t *testing.T) {
	env := setupCLIEnv(t)
	input := env.write(t, "empty.vtt", "WEBVTT\n\n")
	_, _, err := runCLI(t, "", "convert", input)
	if !errors.Is(err, subtitle.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestConvertRejectsInvalidOverrides(t *testing.T) {
	env := setupCLIEnv(t)
	input := env.write(t, "episode.srt", sampleSRT)
	tests := map[string][]string{
		"alpha":    {"--background-alpha", "300"},
		"ratios":   {"--min-width-ratio", "0.9", "--max-width-ratio", "0.5"},
		"colour":   {"--text-color", "white"},
		"strategy": {"--measure", "guess"},
	}
	for name, extra := range tests {
		t.Run(name, func(t *testing.T) {
			args := append([]string{"convert", input}, extra...)
			if _, _, err := runCLI(t, "", args...); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestConvertUsesProbedVideoCanvas(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
	env := setupCLIEnv(t)
	input := env.write(t, "episode.srt", sampleSRT)
	stub := env.write(t, "ffprobe-stub", "#!/bin/sh\necho '{\"streams\":[{\"codec_type\":\"video\",\"width\":1280,\"height\":720}]}'\n")
	if err := os.Chmod(stub, 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := env.write(t, "custom.toml", "[probe]\nffprobe = \""+stub+"\"\n")

	out, _, err := runCLI(t, "", "--config", cfgPath, "convert", input, "--video", "movie.mkv", "-o", "-", "-q")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	requireContains(t, out, "PlayResX: 1280")
	requireContains(t, out, "PlayResY: 720")
	requireContains(t, out, "Style: Default,Arial,36,")
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLIEnv(t)

	out, _, err := runCLI(t, "", "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "defaults were used")
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(env.dir, "conf", "config.toml")
	out, _, err = runCLI(t, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, _, err := runCLI(t, "", "config", "init", "--path", target); err == nil {
		t.Fatal("expected init to refuse overwriting")
	}

	out, _, err = runCLI(t, "", "--config", target, "config", "validate")
	if err != nil {
		t.Fatalf("validate sample: %v", err)
	}
	requireContains(t, out, "render.background_alpha")
	requireContains(t, out, "Configuration valid")
}

func TestConfigInitSkipsBrokenConfig(t *testing.T) {
	env := setupCLIEnv(t)
	broken := env.write(t, "broken.toml", "[render\n")
	target := filepath.Join(env.dir, "fresh.toml")
	if _, _, err := runCLI(t, "", "--config", broken, "config", "init", "--path", target); err != nil {
		t.Fatalf("config init should not load the config: %v", err)
	}
	if _, _, err := runCLI(t, "", "--config", broken, "config", "validate"); err == nil {
		t.Fatal("expected validate to fail on broken config")
	}
}

func TestDoctorReportsTools(t *testing.T) {
	env := setupCLIEnv(t)
	stub := env.write(t, "ffprobe-stub", "#!/bin/sh\nexit 0\n")
	if err := os.Chmod(stub, 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := env.write(t, "custom.toml", "[probe]\nffprobe = \""+stub+"\"\n\n[measure]\ncommand = \"clearly-not-present-measurer\"\n")

	out, _, err := runCLI(t, "", "--config", cfgPath, "doctor")
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	requireContains(t, out, "ffprobe")
	requireContains(t, out, "clearly-not-present-measurer")
	requireContains(t, out, "missing")
	requireContains(t, out, "1 optional tool(s) unavailable")
}
