package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess     = 0 // Sweep completed
	ExitSweepFailed = 1 // The backend rejected or failed the sweep
	ExitError       = 2 // Configuration or runtime error
)

// SweepFailureError indicates that submission reached the backend,
// but the sweep itself was rejected or failed.
type SweepFailureError struct {
	Message string
}

func (e *SweepFailureError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var sweepErr *SweepFailureError
		if errors.As(err, &sweepErr) {
			os.Exit(ExitSweepFailed)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
