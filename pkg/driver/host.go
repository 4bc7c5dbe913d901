package driver

import (
	"fmt"

	"codeinject/pkg/source"
)

// Host is the application the injector runs inside.
type Host interface {
	// HasDocument reports whether a document is open.
	HasDocument() bool
	// Selection returns the currently selected items. Injection needs
	// exactly one item, and it must be an InsertionPoint.
	Selection() []any
	// ActiveScriptName returns the name of the running script file.
	ActiveScriptName() (*source.ScriptName, error)
}

// InsertionPoint is a text cursor that accepts inserted text.
type InsertionPoint interface {
	InsertText(text string) error
}

// Buffer is an in-memory text with a cursor. Inserted text goes in at the
// cursor, which then moves past it.
type Buffer struct {
	text   []rune
	cursor int // rune index
}

// NewBuffer creates a buffer holding text with the cursor at rune index at.
func NewBuffer(text string, at int) (*Buffer, error) {
	runes := []rune(text)
	if at < 0 || at > len(runes) {
		return nil, fmt.Errorf("cursor %d outside text of length %d", at, len(runes))
	}
	return &Buffer{text: runes, cursor: at}, nil
}

func (b *Buffer) InsertText(text string) error {
	ins := []rune(text)
	out := make([]rune, 0, len(b.text)+len(ins))
	out = append(out, b.text[:b.cursor]...)
	out = append(out, ins...)
	out = append(out, b.text[b.cursor:]...)
	b.text = out
	b.cursor += len(ins)
	return nil
}

// Cursor returns the cursor position as a rune index.
func (b *Buffer) Cursor() int {
	return b.cursor
}

func (b *Buffer) String() string {
	return string(b.text)
}

// Range is a non-empty run of selected text. It is not an insertion point.
type Range struct {
	Buffer *Buffer
	Start  int
	End    int
}

// StaticHost is a Host with fixed state, used by the command line tool and
// by tests.
type StaticHost struct {
	Document bool
	Selected []any
	Script   *source.ScriptName
	// ScriptErr is returned by ActiveScriptName when set, as a host does
	// when the script is not running from a file.
	ScriptErr error
}

func (h *StaticHost) HasDocument() bool { return h.Document }
func (h *StaticHost) Selection() []any  { return h.Selected }

func (h *StaticHost) ActiveScriptName() (*source.ScriptName, error) {
	if h.ScriptErr != nil {
		return nil, h.ScriptErr
	}
	return h.Script, nil
}
