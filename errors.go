package main

import (
	"fmt"

	"github.com/jcorbin/goborth/internal/fileinput"
)

// Errno enumerates every way that a run may fail, both within the language
// and in the surrounding command.
type Errno int

// Language errors, raised while resolving or evaluating source.
const (
	StackUnderflow = Errno(iota + 1)
	StackOverflow
	UnknownWord
	IncompleteStatement
	InvalidWord
	RuntimeError
	DivisionByZero

	// Command errors, raised around the interpreter.
	MissingArguments
	TooManyArguments
	BadArguments
	CanNotReadFile
	CanNotReadCode
	CanNotWriteFile
	CanNotWriteToOutput

	errnoMax
)

var errnoNames = [errnoMax]string{
	"",
	"stack-underflow",
	"stack-overflow",
	"?",
	"incomplete-statement",
	"invalid-word",
	"runtime-error",
	"division-by-zero",
	"missing-arguments",
	"too-many-arguments",
	"bad-arguments",
	"can-not-read-file",
	"can-not-read-code",
	"can-not-write-file",
	"can-not-write-to-output",
}

// Error renders the errno as the user sees it: a bare "?" for an unknown
// word, and the kebab-cased kind name for everything else.
func (e Errno) Error() string {
	if 0 < e && e < errnoMax {
		return errnoNames[e]
	}
	return fmt.Sprintf("errno(%d)", int(e))
}

// Error describes the context of a failed run: the word involved, where it
// was read from, and any underlying I/O error.
type Error struct {
	Errno Errno              // nature of the failure
	Word  string             // offending word, for UnknownWord and InvalidWord
	Loc   fileinput.Location // source location of the failed expression
	Line  string             // source text of that line, as far as it was read
	Err   error              // underlying I/O error, for the command errors
}

func (e *Error) Error() string { return e.Errno.Error() }

// Unwrap returns the Errno, so that errors.Is(err, StackUnderflow) works
// through any wrapping.
func (e *Error) Unwrap() error { return e.Errno }

// Format renders the bare error for %v, while %+v adds the word, location,
// source line and cause.
func (e *Error) Format(f fmt.State, c rune) {
	fmt.Fprint(f, e.Errno.Error())
	if c != 'v' || !f.Flag('+') {
		return
	}
	if e.Word != "" {
		fmt.Fprintf(f, " word:%q", e.Word)
	}
	if loc := e.Loc.String(); loc != "" {
		fmt.Fprintf(f, " at:%v", loc)
	}
	if e.Line != "" {
		fmt.Fprintf(f, " line:%q", e.Line)
	}
	if e.Err != nil {
		fmt.Fprintf(f, " cause:%v", e.Err)
	}
}

func errorAt(err error, loc fileinput.Location) error {
	switch impl := err.(type) {
	case Errno:
		return &Error{Errno: impl, Loc: loc}
	case *Error:
		if impl.Loc.Name == "" {
			impl.Loc = loc
		}
	}
	return err
}

func ioError(errno Errno, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Errno: errno, Err: err}
}
