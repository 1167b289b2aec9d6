package main

import (
	"strconv"
	"strings"
)

// expr is any evaluable form produced by resolving source tokens. The set of
// implementations is closed: only this package may add to it.
//
// Expressions are never mutated after construction, which lets dictionary
// entries and compiled word bodies share them freely.
type expr interface {
	eval(m *machine) error
	String() string
}

type (
	// number pushes a literal.
	number Item

	// operation runs a primitive.
	operation opCode

	// stringLiteral prints its text.
	stringLiteral string

	// conditional pops a flag, and runs one of its branches.
	conditional struct {
		ifBranch   []expr
		elseBranch []expr
	}

	// compiledWord runs the body of a user-defined word, frozen at the time
	// of its definition.
	compiledWord struct {
		name string
		body []expr
	}

	// unknownWord fails when evaluated.
	unknownWord string

	// incompleteStatement marks a special form left open at end of input.
	incompleteStatement struct{}

	// invalidWord marks a word definition that failed validation.
	invalidWord struct{ name string }

	// wordCreated marks a successfully registered definition.
	wordCreated struct{ name string }
)

func (n number) eval(m *machine) error { return m.push(Item(n)) }
func (n number) String() string        { return strconv.Itoa(int(n)) }

func (op operation) eval(m *machine) error { return opTable[op](m) }
func (op operation) String() string        { return opCode(op).String() }

func (s stringLiteral) eval(m *machine) error {
	m.print(string(s))
	return nil
}

func (s stringLiteral) String() string { return `." ` + string(s) + `"` }

func (c *conditional) eval(m *machine) error {
	flag, err := m.pop()
	if err != nil {
		return err
	}
	branch := c.elseBranch
	if flag != 0 {
		branch = c.ifBranch
	}
	return evalAll(m, branch)
}

func (c *conditional) String() string {
	var sb strings.Builder
	sb.WriteString("if")
	writeExprs(&sb, c.ifBranch)
	if len(c.elseBranch) > 0 {
		sb.WriteString(" else")
		writeExprs(&sb, c.elseBranch)
	}
	sb.WriteString(" then")
	return sb.String()
}

func (w *compiledWord) eval(m *machine) error { return evalAll(m, w.body) }
func (w *compiledWord) String() string        { return w.name }

// definition renders the word back into source form.
func (w *compiledWord) definition() string {
	var sb strings.Builder
	sb.WriteString(": ")
	sb.WriteString(w.name)
	writeExprs(&sb, w.body)
	sb.WriteString(" ;")
	return sb.String()
}

func (u unknownWord) eval(m *machine) error {
	return &Error{Errno: UnknownWord, Word: string(u)}
}
func (u unknownWord) String() string { return string(u) }

func (incompleteStatement) eval(m *machine) error { return IncompleteStatement }
func (incompleteStatement) String() string        { return "<incomplete>" }

func (iw invalidWord) eval(m *machine) error {
	return &Error{Errno: InvalidWord, Word: iw.name}
}
func (iw invalidWord) String() string { return "<invalid " + iw.name + ">" }

func (wordCreated) eval(m *machine) error { return nil }
func (wc wordCreated) String() string     { return "<created " + wc.name + ">" }

func evalAll(m *machine, exprs []expr) error {
	for _, e := range exprs {
		if err := e.eval(m); err != nil {
			return err
		}
	}
	return nil
}

func writeExprs(sb *strings.Builder, exprs []expr) {
	for _, e := range exprs {
		sb.WriteByte(' ')
		sb.WriteString(e.String())
	}
}
