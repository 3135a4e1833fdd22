package status

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Location records where an error was constructed.
// It is used for diagnostics only and never drives control flow.
type Location struct {
	Function string
	File     string
	Line     int
}

// Caller captures the location of its caller, skipping skip additional frames.
// Caller(0) inside a constructor records the constructor itself; Caller(1)
// records the code that called the constructor.
func Caller(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}

	loc := Location{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Function = fn.Name()
	}
	return loc
}

// IsZero reports whether no location was captured.
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0
}

// String renders the location as "file.go:line" using the base file name.
func (l Location) String() string {
	if l.IsZero() {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(l.File), l.Line)
}
