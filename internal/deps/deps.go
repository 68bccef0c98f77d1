// Package deps reports the availability of the external tools subbox can use.
package deps

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"subbox/internal/config"
)

// Requirement defines an external dependency subbox relies on. Kind "file"
// checks for a readable regular file instead of an executable.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Kind        string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements lists the tools the configuration refers to. All of them are
// optional: conversion degrades to the default canvas and estimated metrics.
func Requirements(cfg *config.Config) []Requirement {
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	reqs := []Requirement{{
		Name:        "ffprobe",
		Command:     cfg.Probe.FFprobe,
		Description: "Reads the video canvas size",
		Optional:    true,
	}}
	switch {
	case cfg.Measure.Command != "":
		reqs = append(reqs, Requirement{
			Name:        "Measurer",
			Command:     cfg.Measure.Command,
			Description: "Measures rendered text exactly",
			Optional:    true,
		})
	case cfg.Measure.FontFile != "":
		reqs = append(reqs, Requirement{
			Name:        "Font file",
			Command:     cfg.Measure.FontFile,
			Description: "Measures rendered text exactly",
			Optional:    true,
			Kind:        "file",
		})
	}
	return reqs
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		switch {
		case cmd == "":
			status.Detail = "command not configured"
		case req.Kind == "file":
			status.Available, status.Detail = checkFile(cmd)
		default:
			if _, err := exec.LookPath(cmd); err != nil {
				status.Detail = fmt.Sprintf("binary %q not found", cmd)
			} else {
				status.Available = true
			}
		}
		results = append(results, status)
	}
	return results
}

func checkFile(path string) (bool, string) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Sprintf("file %q not readable", path)
	}
	if info.IsDir() {
		return false, fmt.Sprintf("%q is a directory", path)
	}
	return true, ""
}
