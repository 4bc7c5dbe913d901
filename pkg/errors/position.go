package errors

import "codeinject/pkg/source"

// Position locates an error inside a script name.
// Offsets are 0-based byte offsets; a zero-width span means the error is
// about the name as a whole.
type Position struct {
	StartPos int                // 0-based byte offset of the start of the span
	EndPos   int                // 0-based byte offset of the end of the span (exclusive)
	Source   *source.ScriptName // Script name the span refers to, if any
}

// HasSpan reports whether the position points at part of the name.
func (p Position) HasSpan() bool {
	return p.Source != nil && p.EndPos > p.StartPos
}
