package main

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Item is the sole value type of the language: a signed 16-bit cell, with
// -1 and 0 doubling as true and false.
type Item int16

const (
	itemSize = 2

	itemTrue  = Item(-1)
	itemFalse = Item(0)
)

func boolItem(b bool) Item {
	if b {
		return itemTrue
	}
	return itemFalse
}

func parseItem(token string) (Item, bool) {
	n, err := strconv.ParseInt(token, 10, 16)
	if err != nil {
		return 0, false
	}
	return Item(n), true
}

// stack is a bounded LIFO of items; push and pop are its only mutators.
type stack struct {
	items    []Item
	capacity int
}

func newStack(capacity int) stack {
	if capacity < 0 {
		capacity = 0
	}
	return stack{capacity: capacity}
}

func (s *stack) push(val Item) error {
	if len(s.items) >= s.capacity {
		return StackOverflow
	}
	s.items = append(s.items, val)
	return nil
}

func (s *stack) pop() (val Item, err error) {
	i := len(s.items) - 1
	if i < 0 {
		return 0, StackUnderflow
	}
	val, s.items = s.items[i], s.items[:i]
	return val, nil
}

// output is an append-only text buffer that separates successive prints with
// a single space.
type output struct {
	strings.Builder
}

func (out *output) print(s string) {
	if text := out.String(); text != "" {
		if r, _ := utf8.DecodeLastRuneInString(text); !unicode.IsSpace(r) {
			out.WriteByte(' ')
		}
	}
	out.WriteString(s)
}

// machine is the evaluation context that expressions run against.
type machine struct {
	stack
	output
}
