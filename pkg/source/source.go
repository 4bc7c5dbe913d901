package source

import (
	"path/filepath"
)

// DebugSampleName is the name scanned when the host cannot report the file
// the script was started from, e.g. when it runs inside a debugger.
const DebugSampleName = "U+0061 U+0062 Insert Unicode chars.jsx"

// ScriptName is the name of a script copy. The name, extension included,
// is the only configuration such a script has.
type ScriptName struct {
	Name string // File name the codes are read from (e.g., "U+200A Insert a hair space.jsx")
	Path string // Full file path (empty when not backed by a file)
}

// NewScriptName creates a script name that is not backed by a file.
func NewScriptName(name string) *ScriptName {
	return &ScriptName{Name: name}
}

// NewDebugSource returns the sample name used when no script file is known.
func NewDebugSource() *ScriptName {
	return &ScriptName{Name: DebugSampleName}
}

// DisplayPath returns the best path for display (prefers Path, falls back to Name)
func (sn *ScriptName) DisplayPath() string {
	if sn.Path != "" {
		return sn.Path
	}
	return sn.Name
}

// IsFile returns true if this represents an actual file (has a path)
func (sn *ScriptName) IsFile() bool {
	return sn.Path != ""
}

// Ext returns the file extension of the name, including the dot.
func (sn *ScriptName) Ext() string {
	return filepath.Ext(sn.Name)
}

// FromFile creates a ScriptName from a file path. Only the base name is
// scanned; directory names never contribute codes.
func FromFile(filePath string) *ScriptName {
	return &ScriptName{Name: filepath.Base(filePath), Path: filePath}
}
