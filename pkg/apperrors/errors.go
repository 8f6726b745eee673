// Package apperrors defines the sentinel errors of the request pipeline.
package apperrors

import "errors"

var (
	// ErrNotConfigured indicates missing credentials or connection string.
	ErrNotConfigured = errors.New("agent is not configured")

	// ErrGeneration indicates the LLM could not produce a usable SQL
	// statement after all retries.
	ErrGeneration = errors.New("sql generation failed")

	// ErrValidationRejected indicates the candidate SQL was refused by the
	// validator. The wrapping error carries the user-facing reason.
	ErrValidationRejected = errors.New("sql rejected by validator")

	// ErrExecution indicates the store rejected a validated statement.
	// A validated-but-failing statement points at a validator or catalog
	// gap, so the underlying error text is surfaced, never swallowed.
	ErrExecution = errors.New("sql execution failed")

	// ErrInterpretation indicates the narration LLM call failed.
	ErrInterpretation = errors.New("result interpretation failed")
)
