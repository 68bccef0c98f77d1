package ass

import (
	"strings"
	"testing"

	"subbox/internal/geometry"
	"subbox/internal/script"
)

func testConfig() RenderConfig {
	return RenderConfig{
		FontName:     "Arial",
		FontSize:     48,
		TextColor:    "FFFFFF",
		BoxColor:     "102030",
		BoxAlpha:     80,
		Padding:      geometry.Padding{X: 20, Y: 10},
		WidthBounds:  geometry.WidthBounds{Max: 1},
		MarginBottom: 60,
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := map[float64]string{
		0:       "0:00:00.00",
		1.05:    "0:00:01.05",
		0.29:    "0:00:00.29",
		61.999:  "0:01:02.00",
		3600:    "1:00:00.00",
		36000.5: "10:00:00.50",
		-3:      "0:00:00.00",
	}
	for in, want := range tests {
		if got := FormatTimestamp(in); got != want {
			t.Fatalf("FormatTimestamp(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestColors(t *testing.T) {
	if got := StyleColor("102030", 80); got != "&H50302010" {
		t.Fatalf("StyleColor = %q", got)
	}
	if got := StyleColor("#ffffff", 0); got != "&H00FFFFFF" {
		t.Fatalf("StyleColor = %q", got)
	}
	if got := OverrideColor("102030"); got != "&H302010&" {
		t.Fatalf("OverrideColor = %q", got)
	}
	if got := OverrideAlpha(255); got != "&HFF&" {
		t.Fatalf("OverrideAlpha = %q", got)
	}
}

func TestBuildDocumentLayout(t *testing.T) {
	h := Header{Title: "demo", Canvas: geometry.DefaultCanvas, Script: script.Arabic, Config: testConfig()}
	events := []Event{
		{Start: 0, End: 1.05, Text: "Hi", Box: geometry.Box{HalfWidth: 40, HalfHeight: 20}},
		{Start: 1.05, End: 2, Text: "مرحبا", Box: geometry.Box{HalfWidth: 40, HalfHeight: 20, Radius: 5}, RTL: true},
	}
	doc := Build(h, events)

	for _, want := range []string{
		"[Script Info]\nTitle: demo\nScriptType: v4.00+\nPlayResX: 1920\nPlayResY: 1080\n",
		"WrapStyle: 2\n",
		"ScaledBorderAndShadow: yes\n",
		"Language: ar\n",
		"Style: Default,Arial,48,&H00FFFFFF,",
		"Style: Box-BG,Arial,24,&H50302010,",
		eventsFormat,
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document missing %q:\n%s", want, doc)
		}
	}
	if strings.Count(doc, "\nStyle: ") != 2 {
		t.Fatalf("expected exactly two styles:\n%s", doc)
	}

	var dialogues []string
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, "Dialogue:") {
			dialogues = append(dialogues, line)
		}
	}
	if len(dialogues) != 4 {
		t.Fatalf("expected 4 dialogue lines, got %d", len(dialogues))
	}
	wantBox := `Dialogue: 0,0:00:00.00,0:00:01.05,Box-BG,,0,0,0,,{\an7\pos(960,1020)\bord0\shad0\1c&H302010&\1a&H50&\p1}m -40 -20 l 40 -20 l 40 20 l -40 20 l -40 -20{\p0}`
	if dialogues[0] != wantBox {
		t.Fatalf("box line = %q\nwant %q", dialogues[0], wantBox)
	}
	wantText := `Dialogue: 1,0:00:00.00,0:00:01.05,Default,,0,0,0,,{\an5\pos(960,1020)\bord0\shad0}Hi`
	if dialogues[1] != wantText {
		t.Fatalf("text line = %q\nwant %q", dialogues[1], wantText)
	}
	if !strings.Contains(dialogues[2], ",Box-BG,") || !strings.Contains(dialogues[3], ",Default,") {
		t.Fatal("box event must precede its text event")
	}
	if !strings.HasSuffix(dialogues[3], "}"+RTLMark+"مرحبا") {
		t.Fatalf("expected RTL mark on RTL cue: %q", dialogues[3])
	}
	if strings.Contains(dialogues[1], RTLMark) {
		t.Fatal("LTR cue must not carry an RTL mark")
	}
}

func TestMeasureDocumentRoundTrip(t *testing.T) {
	cfg := testConfig()
	texts := []string{"Hello", `Two\Nlines`, "a, b, c"}
	doc := MeasureDocument(cfg, geometry.Canvas{Width: 1280, Height: 720}, texts)
	if strings.Contains(doc, "Box-BG") {
		t.Fatal("measurement document must not contain box styles")
	}
	in, err := DialogueTexts(doc)
	if err != nil {
		t.Fatalf("DialogueTexts: %v", err)
	}
	if in.FontName != "Arial" || in.FontSize != 48 {
		t.Fatalf("unexpected font %q %v", in.FontName, in.FontSize)
	}
	if len(in.Texts) != len(texts) {
		t.Fatalf("expected %d texts, got %d", len(texts), len(in.Texts))
	}
	for i := range texts {
		if in.Texts[i] != texts[i] {
			t.Fatalf("text %d = %q, want %q", i, in.Texts[i], texts[i])
		}
	}
}

func TestDialogueTextsRequiresStyle(t *testing.T) {
	if _, err := DialogueTexts("[Events]\n"); err == nil {
		t.Fatal("expected error for document without style")
	}
}
