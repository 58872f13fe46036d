package cli

import "fmt"

// UsageError indicates a user-facing mistake with the arguments (exit code 2).
type UsageError struct {
	Message string
}

func (e UsageError) Error() string { return e.Message }

func usageErrorf(format string, args ...any) UsageError {
	return UsageError{Message: fmt.Sprintf(format, args...)}
}
