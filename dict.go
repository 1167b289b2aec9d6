package main

import (
	"sort"
	"strings"

	"github.com/jcorbin/goborth/internal/fileinput"
)

// dictionary maps case-folded word names to shared expressions.
//
// Entries are replaced wholesale on redefinition, and never removed; a body
// compiled against an old entry keeps referring to it.
type dictionary struct {
	words map[string]expr
	log   *logging
}

func newDictionary(log *logging) dictionary {
	dict := dictionary{
		words: make(map[string]expr, opCodeMax),
		log:   log,
	}
	for op := opCode(0); op < opCodeMax; op++ {
		dict.words[op.String()] = operation(op)
	}
	return dict
}

func foldWord(word string) string { return strings.ToLower(word) }

func (dict *dictionary) lookup(word string) (expr, bool) {
	e, defined := dict.words[foldWord(word)]
	return e, defined
}

func (dict *dictionary) define(w *compiledWord) {
	dict.words[w.name] = w
	dict.log.logf(":", "define %v", w.definition())
}

// userWords returns all words defined by source, ordered by name.
func (dict *dictionary) userWords() []*compiledWord {
	var ws []*compiledWord
	for _, e := range dict.words {
		if w, ok := e.(*compiledWord); ok {
			ws = append(ws, w)
		}
	}
	sort.Slice(ws, func(i, j int) bool { return ws[i].name < ws[j].name })
	return ws
}

// resolveNext consumes tokens up to the end of the next complete expression,
// returning it along with the location of its first token. Returns false only
// once toks is exhausted.
func (dict *dictionary) resolveNext(toks tokens) (expr, fileinput.Location, bool) {
	tok, ok := nextWord(toks)
	if !ok {
		return nil, tok.loc, false
	}
	return dict.resolve(tok, toks), tok.loc, true
}

// resolve turns a non-empty token into an expression, consuming any further
// tokens that a special form needs.
func (dict *dictionary) resolve(tok token, toks tokens) (e expr) {
	defer func() { dict.log.logf(">", "resolve %q @%v -> %v", tok.word, tok.loc, e) }()

	if val, isItem := parseItem(tok.word); isItem {
		return number(val)
	}

	if e, defined := dict.lookup(tok.word); defined {
		return e
	}

	switch foldWord(tok.word) {
	case `."`:
		return buildString(toks)
	case "if":
		return dict.buildConditional(toks)
	case ":":
		return dict.buildWord(toks)
	default:
		return unknownWord(tok.word)
	}
}

// buildString collects raw tokens, and the whitespace that followed each of
// them, up to one that ends with a closing quote.
func buildString(toks tokens) expr {
	var sb strings.Builder
	for tok, ok := toks.next(); ok; tok, ok = toks.next() {
		if strings.HasSuffix(tok.word, `"`) {
			sb.WriteString(strings.TrimSuffix(tok.word, `"`))
			return stringLiteral(sb.String())
		}
		sb.WriteString(tok.word)
		sb.WriteString(tok.space)
	}
	return incompleteStatement{}
}

// buildConditional resolves expressions into the if branch until "else",
// then into the else branch until "then".
func (dict *dictionary) buildConditional(toks tokens) expr {
	var cond conditional
	branch := &cond.ifBranch
	for tok, ok := nextWord(toks); ok; tok, ok = nextWord(toks) {
		switch foldWord(tok.word) {
		case "then":
			return &cond
		case "else":
			branch = &cond.elseBranch
		default:
			*branch = append(*branch, dict.resolve(tok, toks))
		}
	}
	return incompleteStatement{}
}
