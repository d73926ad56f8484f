package strokemodel

import "errors"

// Sentinel errors returned by StrokeModeler.Update and Predict. None of
// these mutate the modeler's state: every error-returning path leaves
// the modeler exactly as it was before the call.
var (
	// ErrUnexpectedDown is returned when a Down event arrives while a
	// stroke is already in progress.
	ErrUnexpectedDown = errors.New("strokemodel: unexpected Down while a stroke is in progress")
	// ErrUnexpectedMove is returned when a Move event arrives with no
	// stroke in progress.
	ErrUnexpectedMove = errors.New("strokemodel: unexpected Move with no stroke in progress")
	// ErrUnexpectedUp is returned when an Up event arrives with no
	// stroke in progress.
	ErrUnexpectedUp = errors.New("strokemodel: unexpected Up with no stroke in progress")
	// ErrNoStrokeInProgress is returned by Predict when called while
	// Idle.
	ErrNoStrokeInProgress = errors.New("strokemodel: predict called with no stroke in progress")
)
