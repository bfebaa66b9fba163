package chess

import (
	"fmt"
	"runtime"
)

// PosError reports a detected invariant violation: a position that
// pos_ok found corrupt. Strict mode panics with one; lenient mode
// logs and returns false instead (spec.md §7).
type PosError struct {
	File string
	Func string
	Line int
	Msg  string
}

func (e *PosError) Error() string {
	return fmt.Sprintf("chess: invariant violation at %s:%d (%s): %s", e.File, e.Line, e.Func, e.Msg)
}

// StrictMode controls pos_ok's failure behavior: true panics with a
// *PosError (used in development and by tests), false logs via the
// package logger and returns false so the caller can refuse the
// input. Hosts embedding the engine should flip this to false in
// production once they trust their input pipeline.
var StrictMode = true

func invariantFail(fn, msg string) bool {
	_, file, line, _ := runtime.Caller(1)
	err := &PosError{File: file, Func: fn, Line: line, Msg: msg}
	if StrictMode {
		panic(err)
	}
	log.Errorf("%s", err)
	return false
}
