package logging

const (
	// FieldComponent is the structured logging key for component names.
	FieldComponent = "component"
	// FieldEventType classifies warnings and errors for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint tells the operator what to try next.
	FieldErrorHint = "error_hint"
	// FieldImpact describes the consequence of a warning for the output.
	FieldImpact = "impact"
	// FieldRunID identifies one invocation of the binary.
	FieldRunID = "run_id"
)
