package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jcorbin/goborth/internal/logio"
	"github.com/jcorbin/goborth/internal/panicerr"
)

const stackSizeArg = "--stack-size="

// runner runs one source file, persisting the final stack into a file.
type runner struct {
	log *logio.Logger

	path      string
	stackSize int
	stackFile string
	trace     bool
	resume    bool
}

// parseArgs parses any leading flags, and then the positional source path
// and optional stack size from the given command line arguments, excluding
// the program name.
func (r *runner) parseArgs(args []string) error {
	flags := flag.NewFlagSet("goborth", flag.ContinueOnError)
	flags.SetOutput(ioutil.Discard)
	flags.BoolVar(&r.trace, "trace", false, "enable trace logging")
	flags.BoolVar(&r.resume, "resume", false, "start with the stack left in the stack file")
	flags.StringVar(&r.stackFile, "stack-file", "stack.fth", "file to write the final stack into")
	if err := flags.Parse(args); err != nil {
		return &Error{Errno: BadArguments, Err: err}
	}

	args = flags.Args()
	switch {
	case len(args) < 1:
		return MissingArguments
	case len(args) > 2:
		return TooManyArguments
	}

	r.path = args[0]
	r.stackSize = defaultStackSize
	if len(args) > 1 {
		arg := args[1]
		if !strings.HasPrefix(arg, stackSizeArg) {
			return &Error{Errno: BadArguments, Word: arg}
		}
		size, err := strconv.ParseUint(arg[len(stackSizeArg):], 10, 31)
		if err != nil {
			return &Error{Errno: BadArguments, Word: arg, Err: err}
		}
		r.stackSize = int(size)
	}
	return nil
}

// run evaluates the source file, writing its output to stdout and its final
// stack to the stack file even if evaluation failed.
//
// Every failure is logged, but only the most important one is returned:
// a language error first, then a failure to write output, then a failure to
// write the stack.
func (r *runner) run(ctx context.Context, stdout io.Writer) error {
	code, err := r.readCode()
	if err != nil {
		return err
	}

	opts := []Option{
		WithStackSize(r.stackSize),
		WithNamedInput(r.path, bytes.NewReader(code)),
		WithOutput(stdout),
	}
	if r.trace {
		opts = append(opts, WithLogf(r.log.Leveledf("TRACE")))
	}
	if r.resume {
		items, err := r.readStack()
		if err != nil {
			return err
		}
		opts = append(opts, WithStack(items...))
	}
	interp := New(opts...)

	return r.firstError(
		r.fault(interp, interp.Run(ctx)),
		interp.WriteOutput(),
		r.writeStack(interp),
	)
}

func (r *runner) readCode() ([]byte, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, &Error{Errno: CanNotReadFile, Word: r.path, Err: err}
	}
	defer f.Close()

	code, err := ioutil.ReadAll(f)
	if err == nil && !utf8.Valid(code) {
		err = errors.New("invalid UTF-8")
	}
	if err != nil {
		return nil, &Error{Errno: CanNotReadCode, Word: r.path, Err: err}
	}
	return code, nil
}

// readStack reads any stack left by a prior run; a missing file is an empty
// stack.
func (r *runner) readStack() ([]Item, error) {
	b, err := ioutil.ReadFile(r.stackFile)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, &Error{Errno: CanNotReadFile, Word: r.stackFile, Err: err}
	}
	items, err := parseStack(string(b))
	if err != nil {
		return nil, &Error{Errno: CanNotReadCode, Word: r.stackFile, Err: err}
	}
	return items, nil
}

func (r *runner) writeStack(interp *Interpreter) error {
	f, err := os.Create(r.stackFile)
	if err != nil {
		return &Error{Errno: CanNotWriteFile, Word: r.stackFile, Err: err}
	}
	err = interp.WriteStack(f)
	if cerr := f.Close(); err == nil {
		err = ioError(CanNotWriteFile, cerr)
	}
	return err
}

// fault turns a panic or early goroutine exit inside the interpreter into a
// runtime-error halt, logging what is known about it.
func (r *runner) fault(interp *Interpreter, err error) error {
	switch {
	case panicerr.IsPanic(err):
		r.log.Printf("FAULT", "%v\n%s", err, panicerr.PanicStack(err))
	case panicerr.IsExit(err):
		r.log.Printf("FAULT", "%v before finishing its run", err)
	default:
		return err
	}
	return interp.halt(&Error{Errno: RuntimeError, Err: err})
}

func (r *runner) firstError(errs ...error) (first error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		if first == nil {
			first = err
		} else {
			r.log.ErrorIf(err)
		}
	}
	return first
}

// isCommandError returns true if err did not come from within the language,
// and so has not already been shown to the user in the program's output.
func isCommandError(err error) bool {
	var errno Errno
	return !errors.As(err, &errno) || errno >= MissingArguments
}
