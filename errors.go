package msgsource

import "fmt"

// I/O operations reported by IOError.
const (
	OpMkdir  = "create directory"
	OpRead   = "read"
	OpLock   = "lock"
	OpWrite  = "write"
	OpRename = "rename"
)

// ValidationError reports caller-supplied data that cannot be stored.
// It is returned before any file is touched.
type ValidationError struct {
	ID     string // Offending message ID, if the problem is with a message
	Locale string // Offending locale, if the problem is with the locale
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Locale != "" {
		return fmt.Sprintf("validation error: %s: %q", e.Reason, e.Locale)
	}
	return fmt.Sprintf("validation error: message %q: %s", e.ID, e.Reason)
}

// CorruptDataError indicates that an existing catalog file could not be parsed.
type CorruptDataError struct {
	Path  string
	Cause error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt catalog %s: %v", e.Path, e.Cause)
}

func (e *CorruptDataError) Unwrap() error {
	return e.Cause
}

// IOError indicates a filesystem failure. Path is the file or directory the
// operation was attempted on.
type IOError struct {
	Op    string
	Path  string
	Cause error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error: %s %s: %v", e.Op, e.Path, e.Cause)
}

func (e *IOError) Unwrap() error {
	return e.Cause
}
