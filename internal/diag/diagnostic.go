package diag

import (
	"fmt"

	"minic/internal/source"
)

// Diagnostic is one reported problem, attached to a source position
// per spec §7.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Pos      source.Position
	File     string
	Message  string
}

func New(sev Severity, code Code, file string, pos source.Position, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Pos:      pos,
		File:     file,
		Message:  fmt.Sprintf(format, args...),
	}
}

func Errorf(code Code, file string, pos source.Position, format string, args ...any) Diagnostic {
	return New(SevError, code, file, pos, format, args...)
}

// String renders "file:line:col: kind: message", the exact form
// mandated by spec §7.
func (d Diagnostic) String() string {
	file := d.File
	if file == "" {
		file = "<input>"
	}
	return fmt.Sprintf("%s:%s: %s: %s", file, d.Pos, d.Code, d.Message)
}
