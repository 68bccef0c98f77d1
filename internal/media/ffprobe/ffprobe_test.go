package ffprobe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestVideoDimensions(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "audio"},
			{CodecType: "video", Width: 600, Height: 600, Disposition: map[string]int{"attached_pic": 1}},
			{CodecType: "video", Width: 1280, Height: 720},
		},
	}
	w, h, err := result.VideoDimensions()
	if err != nil {
		t.Fatalf("VideoDimensions returned error: %v", err)
	}
	if w != 1280 || h != 720 {
		t.Fatalf("unexpected dimensions %dx%d", w, h)
	}
}

func TestVideoDimensionsWithoutVideo(t *testing.T) {
	result := Result{Streams: []Stream{{CodecType: "audio"}, {CodecType: "video"}}}
	if _, _, err := result.VideoDimensions(); !errors.Is(err, ErrNoVideoStream) {
		t.Fatalf("expected ErrNoVideoStream, got %v", err)
	}
}

func TestDurationSeconds(t *testing.T) {
	if got := (Result{Format: Format{Duration: "123.45"}}).DurationSeconds(); got != 123.45 {
		t.Fatalf("unexpected duration: %v", got)
	}
	if got := (Result{Format: Format{Duration: "bad"}}).DurationSeconds(); got != 0 {
		t.Fatalf("expected 0 for invalid duration, got %v", got)
	}
}

func writeStub(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "ffprobe")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestProbeCanvas(t *testing.T) {
	stub := writeStub(t, `cat <<'JSON'
{"streams":[{"index":0,"codec_type":"video","width":3840,"height":2160}],"format":{"duration":"10.0"}}
JSON
`)
	canvas, err := Prober{Binary: stub}.ProbeCanvas(context.Background(), "movie.mkv")
	if err != nil {
		t.Fatalf("ProbeCanvas returned error: %v", err)
	}
	if canvas.Width != 3840 || canvas.Height != 2160 {
		t.Fatalf("unexpected canvas %v", canvas)
	}
}

func TestProbeCanvasFailures(t *testing.T) {
	failing := writeStub(t, "echo 'movie.mkv: No such file' >&2\nexit 1\n")
	if _, err := (Prober{Binary: failing}).ProbeCanvas(context.Background(), "movie.mkv"); err == nil {
		t.Fatal("expected error from failing ffprobe")
	}

	audioOnly := writeStub(t, `echo '{"streams":[{"codec_type":"audio"}]}'`+"\n")
	if _, err := (Prober{Binary: audioOnly}).ProbeCanvas(context.Background(), "song.mka"); !errors.Is(err, ErrNoVideoStream) {
		t.Fatalf("expected ErrNoVideoStream, got %v", err)
	}

	if _, err := (Prober{Binary: "clearly-not-present-ffprobe"}).ProbeCanvas(context.Background(), "movie.mkv"); err == nil {
		t.Fatal("expected error for missing binary")
	}
	if _, err := Inspect(context.Background(), "", " "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
