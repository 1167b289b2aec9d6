package main

import (
	"io"
	"strings"
	"unicode"

	"github.com/jcorbin/goborth/internal/fileinput"
	"github.com/jcorbin/goborth/internal/runeio"
)

// token is a word along with the whitespace rune that ended it; the last
// word of an input has no trailing whitespace.
//
// Runs of whitespace produce empty words; they carry the extra whitespace
// that string literals need to replay.
type token struct {
	word  string
	space string
	loc   fileinput.Location
}

// tokens is a stream of tokens, consumed by resolution.
type tokens interface {
	next() (token, bool)
}

// scanner splits its input into tokens at every whitespace rune.
type scanner struct {
	in  *fileinput.Input
	err error
}

func scanString(name, src string) *scanner {
	return &scanner{in: &fileinput.Input{Queue: []io.Reader{
		runeio.Named(name, strings.NewReader(src)),
	}}}
}

func (sc *scanner) next() (tok token, ok bool) {
	if sc.err != nil {
		return tok, false
	}
	var sb strings.Builder
	for {
		r, _, err := sc.in.ReadRune()
		if err == io.EOF {
			if sb.Len() == 0 {
				return tok, false
			}
			tok.word = sb.String()
			return tok, true
		} else if err != nil {
			sc.err = err
			return tok, false
		}

		if sb.Len() == 0 && tok.loc.Name == "" {
			tok.loc = sc.in.Location()
		}
		if unicode.IsSpace(r) {
			tok.word = sb.String()
			tok.space = string(r)
			return tok, true
		}
		sb.WriteRune(r)
	}
}

// nextWord returns the next non-empty token.
func nextWord(toks tokens) (token, bool) {
	for {
		tok, ok := toks.next()
		if !ok || tok.word != "" {
			return tok, ok
		}
	}
}

// tokenList is a fixed stream of tokens.
type tokenList []token

func (tl *tokenList) next() (tok token, ok bool) {
	if len(*tl) == 0 {
		return tok, false
	}
	tok, *tl = (*tl)[0], (*tl)[1:]
	return tok, true
}

// tokenize scans all of src.
func tokenize(src string) tokenList {
	var tl tokenList
	sc := scanString("", src)
	for tok, ok := sc.next(); ok; tok, ok = sc.next() {
		tl = append(tl, tok)
	}
	return tl
}
