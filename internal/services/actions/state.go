// Package actions holds the validated mutation actions behind the invoice and
// chart forms. Each action validates a flat form, persists exactly one
// statement, then emits one revalidation and one redirect, or returns an
// ActionState describing why it stopped.
package actions

import (
	"charty-dashboard-backend/internal/validation"
)

// Outcome is the terminal state of one action invocation.
type Outcome string

const (
	OutcomeSucceeded        Outcome = "succeeded"
	OutcomeValidationFailed Outcome = "validation_failed"
	OutcomeStoreFailed      Outcome = "store_failed"
)

// ActionState is returned to the form that submitted the action and passed
// back in on the next submission.
type ActionState struct {
	Outcome  Outcome                `json:"outcome"`
	Errors   validation.FieldErrors `json:"errors,omitempty"`
	Message  string                 `json:"message,omitempty"`
	Redirect string                 `json:"redirect,omitempty"`
}

func (s ActionState) Succeeded() bool {
	return s.Outcome == OutcomeSucceeded
}

func validationFailed(errs validation.FieldErrors, operation, entity string) ActionState {
	return ActionState{
		Outcome: OutcomeValidationFailed,
		Errors:  errs,
		Message: validation.SummaryMessage(operation, entity),
	}
}

func storeFailed(operation, entity string) ActionState {
	return ActionState{
		Outcome: OutcomeStoreFailed,
		Message: "Database Error: Failed to " + operation + " " + entity + ".",
	}
}

func redirected(path string) ActionState {
	return ActionState{Outcome: OutcomeSucceeded, Redirect: path}
}
