package main

import (
	"strconv"
	"unicode/utf8"
)

//// Primitive operations

// Every primitive is named by an opCode; the dictionary stores operation
// values rather than functions, so that two lookups of the same primitive
// compare equal, and dispatch happens through the single opTable below.
type opCode uint8

const (
	// Symbol   Name        Stack effect
	opAdd  opCode = iota //    +     add         ( a b -- a+b )
	opSub                //    -     subtract    ( a b -- a-b )
	opMul                //    *     multiply    ( a b -- a*b )
	opDiv                //    /     divide      ( a b -- a/b )
	opDup                //   dup    duplicate   ( a -- a a )
	opDrop               //   drop   discard     ( a -- )
	opSwap               //   swap   exchange    ( a b -- b a )
	opOver               //   over   copy second ( a b -- a b a )
	opRot                //   rot    rotate      ( a b c -- b c a )
	opEq                 //    =     equal       ( a b -- flag )
	opLt                 //    <     less        ( a b -- flag )
	opGt                 //    >     greater     ( a b -- flag )
	opAnd                //   and    bitwise and ( a b -- a&b )
	opOr                 //   or     bitwise or  ( a b -- a|b )
	opNot                //   not    logical not ( a -- flag )
	opDot                //    .     print item  ( a -- )
	opEmit               //   emit   print char  ( a -- )
	opCr                 //   cr     print line  ( -- )

	opCodeMax
)

var opTable [opCodeMax]func(m *machine) error
var opNames [opCodeMax]string

func init() {
	opTable = [...]func(m *machine) error{
		(*machine).add,
		(*machine).sub,
		(*machine).mul,
		(*machine).div,
		(*machine).dup,
		(*machine).drop,
		(*machine).swap,
		(*machine).over,
		(*machine).rot,
		(*machine).eq,
		(*machine).lt,
		(*machine).gt,
		(*machine).and,
		(*machine).or,
		(*machine).not,
		(*machine).dot,
		(*machine).emit,
		(*machine).cr,
	}

	opNames = [...]string{
		"+",
		"-",
		"*",
		"/",
		"dup",
		"drop",
		"swap",
		"over",
		"rot",
		"=",
		"<",
		">",
		"and",
		"or",
		"not",
		".",
		"emit",
		"cr",
	}
}

func (op opCode) String() string {
	if op < opCodeMax {
		return opNames[op]
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// pop2 pops b then a, for an ( a b -- ) stack effect.
func (m *machine) pop2() (a, b Item, err error) {
	if b, err = m.pop(); err == nil {
		a, err = m.pop()
	}
	return a, b, err
}

// binary runs a ( a b -- c ) operation.
func (m *machine) binary(f func(a, b Item) Item) error {
	a, b, err := m.pop2()
	if err != nil {
		return err
	}
	return m.push(f(a, b))
}

//// Arithmetic, wrapping around at 16 bits.

func (m *machine) add() error { return m.binary(func(a, b Item) Item { return a + b }) }
func (m *machine) sub() error { return m.binary(func(a, b Item) Item { return a - b }) }
func (m *machine) mul() error { return m.binary(func(a, b Item) Item { return a * b }) }

func (m *machine) div() error {
	a, b, err := m.pop2()
	if err != nil {
		return err
	}
	if b == 0 {
		return DivisionByZero
	}
	return m.push(a / b)
}

//// Stack manipulation

func (m *machine) dup() error {
	a, err := m.pop()
	if err == nil {
		err = m.pushAll(a, a)
	}
	return err
}

func (m *machine) drop() error {
	_, err := m.pop()
	return err
}

func (m *machine) swap() error {
	a, b, err := m.pop2()
	if err == nil {
		err = m.pushAll(b, a)
	}
	return err
}

func (m *machine) over() error {
	a, b, err := m.pop2()
	if err == nil {
		err = m.pushAll(a, b, a)
	}
	return err
}

func (m *machine) rot() error {
	b, c, err := m.pop2()
	if err != nil {
		return err
	}
	a, err := m.pop()
	if err == nil {
		err = m.pushAll(b, c, a)
	}
	return err
}

func (m *machine) pushAll(vals ...Item) error {
	for _, val := range vals {
		if err := m.push(val); err != nil {
			return err
		}
	}
	return nil
}

//// Comparison and logic; flags are -1 for true, 0 for false.

func (m *machine) eq() error  { return m.binary(func(a, b Item) Item { return boolItem(a == b) }) }
func (m *machine) lt() error  { return m.binary(func(a, b Item) Item { return boolItem(a < b) }) }
func (m *machine) gt() error  { return m.binary(func(a, b Item) Item { return boolItem(a > b) }) }
func (m *machine) and() error { return m.binary(func(a, b Item) Item { return a & b }) }
func (m *machine) or() error  { return m.binary(func(a, b Item) Item { return a | b }) }

func (m *machine) not() error {
	a, err := m.pop()
	if err == nil {
		err = m.push(boolItem(a == 0))
	}
	return err
}

//// Output

func (m *machine) dot() error {
	a, err := m.pop()
	if err == nil {
		m.print(strconv.Itoa(int(a)))
	}
	return err
}

func (m *machine) emit() error {
	a, err := m.pop()
	if err != nil {
		return err
	}
	r := rune(a)
	if !utf8.ValidRune(r) {
		return &Error{Errno: RuntimeError, Word: "emit " + strconv.Itoa(int(a))}
	}
	m.print(string(r))
	return nil
}

func (m *machine) cr() error {
	m.WriteByte('\n')
	return nil
}
