package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildWord(t *testing.T) {
	for _, tc := range []struct {
		name    string
		src     string
		want    []expr
		defined map[string]string
	}{
		{
			name:    "simple",
			src:     ": foo 1 2 + ;",
			want:    []expr{wordCreated{"foo"}},
			defined: map[string]string{"foo": ": foo 1 2 + ;"},
		},
		{
			name:    "folded name",
			src:     ": FoO dup ;",
			want:    []expr{wordCreated{"foo"}},
			defined: map[string]string{"foo": ": foo dup ;"},
		},
		{
			name:    "spread over lines",
			src:     ":\nfoo\n1\n;",
			want:    []expr{wordCreated{"foo"}},
			defined: map[string]string{"foo": ": foo 1 ;"},
		},
		{
			name: "with conditional and string",
			src:  `: foo if ." yes" else ." no" then ;`,
			want: []expr{wordCreated{"foo"}},
			defined: map[string]string{
				"foo": `: foo if ." yes" else ." no" then ;`,
			},
		},
		{
			name: "unknown words are kept",
			src:  ": foo bar ;",
			want: []expr{wordCreated{"foo"}},
			defined: map[string]string{
				"foo": ": foo bar ;",
			},
		},
		{
			name: "primitive name",
			src:  ": dup 1 ;",
			want: []expr{wordCreated{"dup"}},
			defined: map[string]string{
				"dup": ": dup 1 ;",
			},
		},
		{
			name: "no name",
			src:  ":",
			want: []expr{incompleteStatement{}},
		},
		{
			name: "no terminator",
			src:  ": foo 1",
			want: []expr{incompleteStatement{}},
		},
		{
			name: "numeric name",
			src:  ": 12 1 ;",
			want: []expr{invalidWord{"12"}, number(1), unknownWord(";")},
		},
		{
			name: "negative numeric name",
			src:  ": -3 1 ;",
			want: []expr{invalidWord{"-3"}, number(1), unknownWord(";")},
		},
		{
			name: "empty body",
			src:  ": foo ; 1",
			want: []expr{invalidWord{"foo"}, number(1)},
		},
		{
			name: "terminator inside string",
			src:  `: foo ." ; " ;`,
			want: []expr{wordCreated{"foo"}},
			defined: map[string]string{
				"foo": `: foo ." ; " ;`,
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dict := newDictionary(nil)
			assert.Equal(t, tc.want, resolveAll(&dict, tc.src))
			defined := map[string]string{}
			for _, w := range dict.userWords() {
				defined[w.name] = w.definition()
			}
			if tc.defined == nil {
				tc.defined = map[string]string{}
			}
			assert.Equal(t, tc.defined, defined)
		})
	}
}

func TestBuildWord_earlyBinding(t *testing.T) {
	dict := newDictionary(nil)
	resolveAll(&dict, ": foo 5 ; : bar foo ;")
	bar, _ := dict.lookup("bar")
	before := bar.(*compiledWord).body[0]

	resolveAll(&dict, ": foo 6 ;")
	foo, _ := dict.lookup("foo")
	assert.Equal(t, ": foo 6 ;", foo.(*compiledWord).definition())
	assert.True(t, bar.(*compiledWord).body[0] == before, "bar must keep the old foo")
	assert.Equal(t, ": foo 5 ;", before.(*compiledWord).definition())

	var m machine
	m.stack = newStack(4)
	assert.NoError(t, evalAll(&m, []expr{bar, foo}))
	assert.Equal(t, []Item{5, 6}, m.items)
}
