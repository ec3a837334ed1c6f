package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"charty-dashboard-backend/internal/services/actions"
)

// errActionFailed makes the process exit non-zero after the state was printed.
var errActionFailed = errors.New("action failed")

// writeState prints an action result in the selected format.
func writeState(w io.Writer, format string, state actions.ActionState) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(state); err != nil {
			return err
		}
	} else {
		writeStateText(w, state)
	}

	if !state.Succeeded() {
		return errActionFailed
	}
	return nil
}

func writeStateText(w io.Writer, state actions.ActionState) {
	fmt.Fprintf(w, "%s", state.Outcome)
	if state.Message != "" {
		fmt.Fprintf(w, ": %s", state.Message)
	}
	fmt.Fprintln(w)
	if state.Redirect != "" {
		fmt.Fprintf(w, "  redirect: %s\n", state.Redirect)
	}
	for _, field := range state.Errors.Fields() {
		fmt.Fprintf(w, "  %s: %s\n", field, strings.Join(state.Errors[field], "; "))
	}
}
