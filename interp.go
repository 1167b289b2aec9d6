package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jcorbin/goborth/internal/fileinput"
	"github.com/jcorbin/goborth/internal/flushio"
)

// Interpreter runs source text against one dictionary and one machine. It
// halts at the first failing expression, keeping whatever effects came before.
type Interpreter struct {
	logging
	in   fileinput.Input
	out  flushio.WriteFlusher
	dict dictionary
	machine
}

// defaultStackSize is the stack budget in bytes when none is given.
const defaultStackSize = 128000

func (interp *Interpreter) init() {
	if interp.dict.words == nil {
		interp.dict = newDictionary(&interp.logging)
	}
	if interp.out == nil {
		interp.out = flushio.NewWriteFlusher(nil)
	}
}

func (interp *Interpreter) run(ctx context.Context) error {
	interp.init()
	sc := scanner{in: &interp.in}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		e, loc, ok := interp.dict.resolveNext(&sc)
		if !ok {
			break
		}
		if err := e.eval(&interp.machine); err != nil {
			return interp.halt(interp.sourceError(err, loc))
		}
		interp.logf("+", "%v -> %v", e, formatStack(interp.items))
	}
	if sc.err != nil {
		return ioError(CanNotReadCode, sc.err)
	}
	return nil
}

// sourceError locates err at loc, adding the text of that source line while
// the input still holds it.
func (interp *Interpreter) sourceError(err error, loc fileinput.Location) error {
	err = errorAt(err, loc)
	var ierr *Error
	if errors.As(err, &ierr) && ierr.Line == "" {
		ierr.Line, _ = interp.in.LineAt(ierr.Loc)
	}
	return err
}

// halt reports a language error through the output, the way a user would see
// it at the end of a run.
func (interp *Interpreter) halt(err error) error {
	var errno Errno
	if errors.As(err, &errno) {
		interp.print(errno.Error())
	}
	interp.logf("#", "halt %+v", err)
	return err
}

// WriteOutput writes all output produced so far, then flushes.
func (interp *Interpreter) WriteOutput() error {
	interp.init()
	return ioError(CanNotWriteToOutput, flushio.WriteString(interp.out, interp.output.String()))
}

// WriteStack writes the stack, oldest item first, separated by single spaces.
func (interp *Interpreter) WriteStack(w io.Writer) error {
	wf := flushio.NewWriteFlusher(w)
	return ioError(CanNotWriteFile, flushio.WriteString(wf, formatStack(interp.items)))
}

// Output returns all text printed so far.
func (interp *Interpreter) Output() string { return interp.output.String() }

// Stack returns a copy of the stack, oldest item first.
func (interp *Interpreter) Stack() []Item {
	items := make([]Item, len(interp.items))
	copy(items, interp.items)
	return items
}

func formatStack(items []Item) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(item)))
	}
	return sb.String()
}

// parseStack reads back a stack written by formatStack.
func parseStack(s string) ([]Item, error) {
	fields := strings.Fields(s)
	items := make([]Item, 0, len(fields))
	for _, field := range fields {
		item, ok := parseItem(field)
		if !ok {
			return items, fmt.Errorf("invalid stack item %q", field)
		}
		items = append(items, item)
	}
	return items, nil
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log == nil || log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
