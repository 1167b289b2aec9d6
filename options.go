package main

import (
	"io"

	"github.com/jcorbin/goborth/internal/flushio"
	"github.com/jcorbin/goborth/internal/runeio"
)

// Option configures an Interpreter; see New.
type Option interface{ apply(interp *Interpreter) }

// Options combines any number of options into one, flattening nested
// combinations and dropping nils.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []Option

func (opts options) apply(interp *Interpreter) {
	for _, opt := range opts {
		opt.apply(interp)
	}
}

var defaults = options{
	stackSizeOption(defaultStackSize),
}

func (interp *Interpreter) apply(opts ...Option) {
	defaults.apply(interp)
	Options(opts...).apply(interp)
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(interp *Interpreter) {
	interp.logfn = logfn
}

type stackSizeOption int
type stackItems []Item
type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }

// namedInput names r, so that source locations read from it carry the name.
func namedInput(name string, r io.Reader) inputOption {
	return inputOption{runeio.Named(name, r)}
}

// stack budgets are given in bytes, and rounded down to whole items; any
// items already on the stack are kept, as far as they fit
func (size stackSizeOption) apply(interp *Interpreter) {
	items := interp.items
	interp.stack = newStack(int(size) / itemSize)
	stackItems(items).apply(interp)
}

// items beyond the stack's capacity are dropped
func (items stackItems) apply(interp *Interpreter) {
	for i, item := range items {
		if err := interp.push(item); err != nil {
			interp.logf("#", "dropped %v stack items: %v", len(items)-i, err)
			break
		}
	}
}

func (i inputOption) apply(interp *Interpreter) {
	interp.in.Queue = append(interp.in.Queue, i.Reader)
}

func (o outputOption) apply(interp *Interpreter) {
	if interp.out != nil {
		interp.out.Flush()
	}
	interp.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(interp *Interpreter) {
	interp.out = flushio.WriteFlushers(interp.out, flushio.NewWriteFlusher(o.Writer))
}
