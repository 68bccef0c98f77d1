package deps

import (
	"os"
	"path/filepath"
	"testing"

	"subbox/internal/config"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Unset", Command: "  "},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available || results[0].Detail != "" {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[1].Available || results[1].Detail == "" {
		t.Fatalf("expected missing binary to be unavailable with detail, got %#v", results[1])
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}
	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("unexpected status for unset command: %#v", results[2])
	}
}

func TestCheckFileRequirement(t *testing.T) {
	dir := t.TempDir()
	font := filepath.Join(dir, "font.ttf")
	if err := os.WriteFile(font, []byte("ttf"), 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	results := CheckBinaries([]Requirement{
		{Name: "Font", Command: font, Kind: "file"},
		{Name: "Dir", Command: dir, Kind: "file"},
		{Name: "Gone", Command: filepath.Join(dir, "gone.ttf"), Kind: "file"},
	})
	if !results[0].Available {
		t.Fatalf("expected font to be available, got %#v", results[0])
	}
	if results[1].Available || results[2].Available {
		t.Fatalf("expected directory and missing file to be unavailable: %#v", results)
	}
}

func TestRequirementsFollowConfig(t *testing.T) {
	reqs := Requirements(nil)
	if len(reqs) != 1 || reqs[0].Command != "ffprobe" {
		t.Fatalf("unexpected default requirements %#v", reqs)
	}

	cfg := config.Default()
	cfg.Measure.Command = "measure-ass"
	reqs = Requirements(&cfg)
	if len(reqs) != 2 || reqs[1].Command != "measure-ass" || reqs[1].Kind != "" {
		t.Fatalf("expected measurer requirement, got %#v", reqs)
	}

	cfg.Measure.Command = ""
	cfg.Measure.FontFile = "/fonts/a.ttf"
	reqs = Requirements(&cfg)
	if len(reqs) != 2 || reqs[1].Kind != "file" {
		t.Fatalf("expected font file requirement, got %#v", reqs)
	}
	for _, req := range reqs {
		if !req.Optional {
			t.Fatalf("requirement %s should be optional", req.Name)
		}
	}
}
