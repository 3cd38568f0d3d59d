package cmdutil

import "strconv"

// Error carries the exit code a failed command should produce. A nil Err
// means the command already reported the failure itself.
type Error struct {
	ExitCode int
	Err      error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "exit status " + strconv.Itoa(e.ExitCode)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }
