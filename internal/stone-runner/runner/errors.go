package runner

import "fmt"

// ErrorCode classifies a prover invocation failure
type ErrorCode int

const (
	// ErrUnknown represents an unclassified error
	ErrUnknown ErrorCode = iota

	// ErrIO represents a filesystem error while preparing the working
	// directory or its files
	ErrIO

	// ErrSpawn represents a failure to start the engine binary (not
	// installed, not executable, permission denied)
	ErrSpawn

	// ErrCommand represents an engine run that started but exited with a
	// non-zero status
	ErrCommand

	// ErrDecode represents an engine output file that is missing,
	// unreadable, or not valid proof JSON
	ErrDecode
)

// ProverError represents a classified prover invocation error. For
// ErrCommand failures the exit code and both output streams of the engine
// are captured in full so the failure can be diagnosed without re-running.
type ProverError struct {
	Code     ErrorCode
	Message  string
	Cause    error
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Error returns the error message
func (e *ProverError) Error() string {
	switch {
	case e.Code == ErrCommand:
		return fmt.Sprintf("stone-runner error [%d]: %s (exit code %d, stderr: %s)",
			e.Code, e.Message, e.ExitCode, e.Stderr)
	case e.Cause != nil:
		return fmt.Sprintf("stone-runner error [%d]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("stone-runner error [%d]: %s", e.Code, e.Message)
}

// Unwrap returns the cause of the error
func (e *ProverError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error by code
func (e *ProverError) Is(target error) bool {
	t, ok := target.(*ProverError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func ioError(message string, cause error) *ProverError {
	return &ProverError{Code: ErrIO, Message: message, Cause: cause}
}

func spawnError(message string, cause error) *ProverError {
	return &ProverError{Code: ErrSpawn, Message: message, Cause: cause}
}

func commandError(exitCode int, stdout, stderr []byte, cause error) *ProverError {
	return &ProverError{
		Code:     ErrCommand,
		Message:  "engine rejected the input",
		Cause:    cause,
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
	}
}

func decodeError(message string, cause error) *ProverError {
	return &ProverError{Code: ErrDecode, Message: message, Cause: cause}
}
