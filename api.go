package main

import (
	"context"
	"io"

	"github.com/jcorbin/goborth/internal/panicerr"
)

// New creates an Interpreter with the default stack budget and no input,
// applying any given options over those defaults.
func New(opts ...Option) *Interpreter {
	var interp Interpreter
	interp.apply(opts...)
	interp.init()
	return &interp
}

// Run reads and evaluates all queued input, stopping at the first error.
//
// Any panic, or exit of the running goroutine, is returned as an error.
func (interp *Interpreter) Run(ctx context.Context) error {
	return panicerr.Recover("Interpreter", func() error {
		return interp.run(ctx)
	})
}

func WithStackSize(bytes int) Option                 { return stackSizeOption(bytes) }
func WithInput(r io.Reader) Option                   { return inputOption{r} }
func WithNamedInput(name string, r io.Reader) Option { return namedInput(name, r) }
func WithOutput(w io.Writer) Option                  { return outputOption{w} }
func WithTee(w io.Writer) Option                     { return teeOption{w} }
func WithStack(items ...Item) Option                 { return stackItems(items) }

func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }
