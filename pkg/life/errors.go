package life

import "errors"

// Sentinel errors returned by the engine. Construction-time and dispatch
// failures are fatal to the caller; pattern lookups fail without touching
// engine state.
var (
	// ErrConfiguration reports invalid grid dimensions at construction.
	ErrConfiguration = errors.New("life: invalid grid configuration")

	// ErrEvaluatorFailure reports that the parallel kernel pass failed to
	// set up or dispatch. It must propagate; the engine never degrades to
	// an unreported sequential fallback.
	ErrEvaluatorFailure = errors.New("life: parallel evaluator failure")

	// ErrPatternNotFound reports an unknown catalog pattern name.
	ErrPatternNotFound = errors.New("life: pattern not found")
)
