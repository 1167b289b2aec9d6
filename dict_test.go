package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveAll(dict *dictionary, src string) (exprs []expr) {
	toks := tokenize(src)
	for e, _, ok := dict.resolveNext(&toks); ok; e, _, ok = dict.resolveNext(&toks) {
		exprs = append(exprs, e)
	}
	return exprs
}

func TestDictionary_resolve(t *testing.T) {
	dict := newDictionary(nil)
	for _, tc := range []struct {
		src  string
		want []expr
	}{
		{"", nil},
		{"  \n ", nil},
		{"42 -7", []expr{number(42), number(-7)}},
		{"+ DUP Rot", []expr{operation(opAdd), operation(opDup), operation(opRot)}},
		{"nope", []expr{unknownWord("nope")}},
		{"then else ;", []expr{unknownWord("then"), unknownWord("else"), unknownWord(";")}},
		{"40000", []expr{unknownWord("40000")}},
		{`." hi  there" 1`, []expr{stringLiteral("hi  there"), number(1)}},
		{`."  "`, []expr{stringLiteral(" ")}},
		{`." x`, []expr{incompleteStatement{}}},
		{"if 1 then", []expr{&conditional{ifBranch: []expr{number(1)}}}},
		{"IF 1 ELSE 2 THEN", []expr{&conditional{
			ifBranch:   []expr{number(1)},
			elseBranch: []expr{number(2)},
		}}},
		{"if else then", []expr{&conditional{}}},
		{"if if 1 then else 2 then", []expr{&conditional{
			ifBranch:   []expr{&conditional{ifBranch: []expr{number(1)}}},
			elseBranch: []expr{number(2)},
		}}},
		{`if ." a" then`, []expr{&conditional{ifBranch: []expr{stringLiteral("a")}}}},
		{"if 1", []expr{incompleteStatement{}}},
		{"if if then", []expr{incompleteStatement{}}},
	} {
		assert.Equal(t, tc.want, resolveAll(&dict, tc.src), "resolving %q", tc.src)
	}
}

func TestDictionary_seeded(t *testing.T) {
	dict := newDictionary(nil)
	for _, name := range []string{
		"+", "-", "*", "/",
		"dup", "drop", "swap", "over", "rot",
		"=", "<", ">", "and", "or", "not",
		".", "emit", "cr",
	} {
		e, defined := dict.lookup(name)
		if assert.True(t, defined, "expected %q to be defined", name) {
			assert.IsType(t, operation(0), e)
			assert.Equal(t, name, e.String())
		}
	}
	assert.Empty(t, dict.userWords())

	for _, name := range []string{`."`, "if", "else", "then", ":", ";"} {
		_, defined := dict.lookup(name)
		assert.False(t, defined, "expected %q not to be a dictionary entry", name)
	}
}

func TestDictionary_locations(t *testing.T) {
	dict := newDictionary(nil)
	sc := scanString("x.fth", "1\n: foo\n2 ;\nfoo")
	var locs []string
	for _, loc, ok := dict.resolveNext(sc); ok; _, loc, ok = dict.resolveNext(sc) {
		locs = append(locs, loc.String())
	}
	assert.Equal(t, []string{"x.fth:1", "x.fth:2", "x.fth:4"}, locs)
}

func TestDictionary_sharing(t *testing.T) {
	dict := newDictionary(nil)
	exprs := resolveAll(&dict, ": foo 1 ; : bar foo foo ;")
	require.Equal(t, []expr{wordCreated{"foo"}, wordCreated{"bar"}}, exprs)

	foo, _ := dict.lookup("foo")
	bar, _ := dict.lookup("bar")
	body := bar.(*compiledWord).body
	require.Len(t, body, 2)
	assert.True(t, body[0] == foo, "expected bar to share the foo entry")
	assert.True(t, body[1] == foo, "expected bar to share the foo entry")

	names := []string{}
	for _, w := range dict.userWords() {
		names = append(names, w.name)
	}
	assert.Equal(t, []string{"bar", "foo"}, names)
}
