package measure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"subbox/internal/geometry"
)

// CommandMeasurer delegates measurement to an external program. The program
// is invoked as `<Binary> [Args...] --width W --height H <document.ass>` and
// must print a JSON array of {"width","height"} objects, one per dialogue
// line, on stdout. A positive Timeout bounds each invocation.
type CommandMeasurer struct {
	Binary  string
	Args    []string
	TempDir string
	Timeout time.Duration
}

// Measure writes doc to a temporary file, runs the measurer and removes the
// file again.
func (m CommandMeasurer) Measure(ctx context.Context, doc []byte, canvas geometry.Canvas) ([]Metrics, error) {
	binary := strings.TrimSpace(m.Binary)
	if binary == "" {
		return nil, ErrMeasurementUnavailable
	}
	if _, err := exec.LookPath(binary); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMeasurementUnavailable, err)
	}
	if m.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.Timeout)
		defer cancel()
	}

	file, err := os.CreateTemp(m.TempDir, "subbox-measure-*.ass")
	if err != nil {
		return nil, fmt.Errorf("create measurement document: %w", err)
	}
	path := file.Name()
	defer os.Remove(path)
	if _, err := file.Write(doc); err != nil {
		file.Close()
		return nil, fmt.Errorf("write measurement document: %w", err)
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("close measurement document: %w", err)
	}

	args := append([]string(nil), m.Args...)
	args = append(args,
		"--width", strconv.Itoa(canvas.Width),
		"--height", strconv.Itoa(canvas.Height),
		path,
	)
	cmd := exec.CommandContext(ctx, binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v: %s", ErrMeasurementUnavailable, binary, err, strings.TrimSpace(stderr.String()))
	}

	var metrics []Metrics
	if err := json.Unmarshal(output, &metrics); err != nil {
		return nil, fmt.Errorf("parse measurer output: %w", err)
	}
	return metrics, nil
}
