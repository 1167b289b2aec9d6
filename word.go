package main

// wordBuilder is the state of one word definition in progress: the name it
// will be registered under, and the body resolved so far.
type wordBuilder struct {
	name string
	body []expr
}

// buildWord handles a ":" definition, registering the new word once its
// terminating ";" is reached.
//
// The body is resolved against the dictionary as it stands while defining,
// so every word it references is bound early: redefining that word later
// leaves this body unchanged, and a reference to the name being defined
// means whatever that name meant before.
func (dict *dictionary) buildWord(toks tokens) expr {
	tok, ok := nextWord(toks)
	if !ok {
		return incompleteStatement{}
	}
	if _, isItem := parseItem(tok.word); isItem {
		return invalidWord{tok.word}
	}

	wb := wordBuilder{name: foldWord(tok.word)}
	for {
		tok, ok := nextWord(toks)
		if !ok {
			return incompleteStatement{}
		}
		e := dict.resolve(tok, toks)
		if e == unknownWord(";") {
			break
		}
		wb.body = append(wb.body, e)
	}

	if len(wb.body) == 0 {
		return invalidWord{wb.name}
	}
	dict.define(&compiledWord{name: wb.name, body: wb.body})
	return wordCreated{wb.name}
}
