// Package logging assembles the structured slog loggers used by subbox.
//
// It owns the console and JSON handlers, level and output plumbing, and the
// run-id handler that tags every record of one invocation with the same
// identifier. Warnings follow one shape: an event type, a hint for the
// operator and the impact on the produced document. A no-op logger is
// provided for tests and for library callers that do not care about output.
package logging
