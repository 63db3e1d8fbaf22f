package error

import (
	"fmt"
	"runtime"
	"strings"
)

// ErrorCategory tells a caller how to react to an error.
type ErrorCategory int

const (
	// ErrCategoryUser covers errors in the text a user submitted, such as an
	// unterminated string literal. Fixing the input fixes the error.
	ErrCategoryUser ErrorCategory = iota

	// ErrCategorySystem covers errors from the environment: unreadable input
	// files, a log file that cannot be opened, a terminal that fails to start.
	ErrCategorySystem
)

func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryUser:
		return "user"
	case ErrCategorySystem:
		return "system"
	default:
		return "unknown"
	}
}

// Error codes raised across ferrodb.
const (
	CodeUnterminatedString = "UNTERMINATED_STRING"
	CodeInvalidNumber      = "INVALID_NUMBER"
	CodeInputUnreadable    = "INPUT_UNREADABLE"
	CodeLoggingSetup       = "LOGGING_SETUP"
	CodeTerminal           = "TERMINAL"
)

// DBError is a structured error with enough context to be shown to a user.
type DBError struct {
	// Code identifies the error type, e.g. "UNTERMINATED_STRING".
	Code string

	Category ErrorCategory

	// Message is the short description; Detail narrows it to this instance.
	Message string
	Detail  string

	// Hint suggests a fix.
	Hint string

	// Operation and Component locate where the error was raised,
	// e.g. "Tokenize" in "Lexer".
	Operation string
	Component string

	Cause error

	// Stack is captured by New and Wrap.
	Stack []uintptr
}

// New creates a DBError with the given category, code and message.
func New(category ErrorCategory, code, message string) *DBError {
	return &DBError{
		Code:     code,
		Category: category,
		Message:  message,
		Stack:    captureStack(),
	}
}

// Wrap attaches ferrodb context to err. A *DBError is enriched in place
// (operation and component are only filled when empty); any other error
// becomes the cause of a new system-category DBError.
func Wrap(err error, code, operation, component string) *DBError {
	if err == nil {
		return nil
	}

	if dbErr, ok := err.(*DBError); ok {
		if dbErr.Operation == "" {
			dbErr.Operation = operation
		}
		if dbErr.Component == "" {
			dbErr.Component = component
		}
		return dbErr
	}

	return &DBError{
		Code:      code,
		Category:  ErrCategorySystem,
		Message:   err.Error(),
		Operation: operation,
		Component: component,
		Cause:     err,
		Stack:     captureStack(),
	}
}

func (e *DBError) WithDetail(detail string) *DBError {
	e.Detail = detail
	return e
}

func (e *DBError) WithHint(hint string) *DBError {
	e.Hint = hint
	return e
}

func (e *DBError) WithContext(operation, component string) *DBError {
	e.Operation = operation
	e.Component = component
	return e
}

func (e *DBError) WithCause(cause error) *DBError {
	e.Cause = cause
	return e
}

// captureStack skips runtime.Callers, captureStack and New/Wrap.
func captureStack() []uintptr {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	return pcs[0:n]
}

// Error renders
// [CODE] Message: Detail (operation: Operation, component: Component)
// The cause is left out when it is the error the message was taken from.
func (e *DBError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)

	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}

	if e.Operation != "" {
		fmt.Fprintf(&b, " (operation: %s", e.Operation)
		if e.Component != "" {
			fmt.Fprintf(&b, ", component: %s", e.Component)
		}
		b.WriteString(")")
	}

	if e.Cause != nil && e.Cause.Error() != e.Message {
		fmt.Fprintf(&b, " caused by: %v", e.Cause)
	}

	return b.String()
}

func (e *DBError) Unwrap() error {
	return e.Cause
}

// FormatStack returns the captured call stack, one frame per entry.
func (e *DBError) FormatStack() string {
	if len(e.Stack) == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(e.Stack)

	b.WriteString("Stack trace:\n")
	for {
		f, more := frames.Next()
		fmt.Fprintf(&b, "  %s\n    %s:%d\n", f.Function, f.File, f.Line)
		if !more {
			break
		}
	}

	return b.String()
}
