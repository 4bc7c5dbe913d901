package errors

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// InjectorError is the interface implemented by all errors reported to the
// user of the injector.
type InjectorError interface {
	error // Embed the standard error interface
	Pos() Position
	Kind() string // e.g., "Selection", "Document", "Configuration", "Code"
	// Message returns the specific error message without position info.
	Message() string
	Unwrap() error // For error wrapping support (errors.Is/As)
}

const (
	msgSelection     = "Please make sure you put your text cursor in a text frame, but don't select any text"
	msgConfiguration = "To configure this script, it needs to be renamed. Please open this script with a text editor and read the instructions inside"
	msgDocument      = "Please open a document before running this script"
)

// --- Concrete Error Types ---

// SelectionError reports a selection that is not a single insertion point.
type SelectionError struct {
	Position
	Msg   string
	Cause error // Underlying cause, if any
}

// NewSelectionError returns the error shown when there is nowhere to insert.
func NewSelectionError() *SelectionError {
	return &SelectionError{Msg: msgSelection}
}

func (e *SelectionError) Error() string   { return "Selection Error: " + e.Msg }
func (e *SelectionError) Pos() Position   { return e.Position }
func (e *SelectionError) Kind() string    { return "Selection" }
func (e *SelectionError) Message() string { return e.Msg }
func (e *SelectionError) Unwrap() error   { return e.Cause }
func (e *SelectionError) CausedBy(cause error) *SelectionError {
	e.Cause = cause
	return e
}

// DocumentError reports that no document is open.
type DocumentError struct {
	Position
	Msg   string
	Cause error // Underlying cause, if any
}

// NewDocumentError returns the error shown when no document is open.
func NewDocumentError() *DocumentError {
	return &DocumentError{Msg: msgDocument}
}

func (e *DocumentError) Error() string   { return "Document Error: " + e.Msg }
func (e *DocumentError) Pos() Position   { return e.Position }
func (e *DocumentError) Kind() string    { return "Document" }
func (e *DocumentError) Message() string { return e.Msg }
func (e *DocumentError) Unwrap() error   { return e.Cause }
func (e *DocumentError) CausedBy(cause error) *DocumentError {
	e.Cause = cause
	return e
}

// ConfigurationError reports a script name that carries no character codes.
type ConfigurationError struct {
	Position
	Msg   string
	Cause error // Underlying cause, if any
}

// NewConfigurationError returns the error shown when the script still needs
// to be renamed.
func NewConfigurationError(pos Position) *ConfigurationError {
	return &ConfigurationError{Position: pos, Msg: msgConfiguration}
}

func (e *ConfigurationError) Error() string {
	if e.Source != nil {
		return fmt.Sprintf("Configuration Error in %q: %s", e.Source.Name, e.Msg)
	}
	return "Configuration Error: " + e.Msg
}
func (e *ConfigurationError) Pos() Position   { return e.Position }
func (e *ConfigurationError) Kind() string    { return "Configuration" }
func (e *ConfigurationError) Message() string { return e.Msg }
func (e *ConfigurationError) Unwrap() error   { return e.Cause }
func (e *ConfigurationError) CausedBy(cause error) *ConfigurationError {
	e.Cause = cause
	return e
}

// CodeError points at a token whose value is not a usable character code.
// Scanning stops at such a token unless told to skip it.
type CodeError struct {
	Position
	Msg   string
	Cause error // Underlying cause, if any
}

// NewCodeError reports the token covering pos.
func NewCodeError(pos Position, literal string) *CodeError {
	return &CodeError{Position: pos, Msg: fmt.Sprintf("%q is not a valid character code", literal)}
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("Code Error at %d: %s", e.StartPos, e.Msg)
}
func (e *CodeError) Pos() Position   { return e.Position }
func (e *CodeError) Kind() string    { return "Code" }
func (e *CodeError) Message() string { return e.Msg }
func (e *CodeError) Unwrap() error   { return e.Cause }
func (e *CodeError) CausedBy(cause error) *CodeError {
	e.Cause = cause
	return e
}

// --- Error Reporting ---

// DisplayErrors writes errs to w in a user-friendly format. When an error
// points at part of a script name, the name is printed with a marker under
// the offending span.
func DisplayErrors(w io.Writer, errs []InjectorError) {
	for _, err := range errs {
		pos := err.Pos()
		fmt.Fprintf(w, "%s Error: %s\n", err.Kind(), err.Message())

		if pos.Source == nil {
			continue
		}
		name := pos.Source.Name
		fmt.Fprintf(w, "  %s\n", name)

		if !pos.HasSpan() || pos.EndPos > len(name) {
			fmt.Fprintln(w)
			continue
		}
		// Columns are counted in characters so the marker lines up under
		// non-ASCII names.
		col := utf8.RuneCountInString(name[:pos.StartPos])
		width := utf8.RuneCountInString(name[pos.StartPos:pos.EndPos])
		marker := strings.Repeat(" ", col) + "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(w, "  %s\n", marker)
		fmt.Fprintln(w) // Add a blank line between errors
	}
}
