package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/goborth/internal/runeio"
)

type interpDumper struct {
	interp *Interpreter
	out    io.Writer
}

func (dump interpDumper) dump() {
	fmt.Fprintf(dump.out, "# Interpreter Dump\n")
	dump.dumpStack()
	dump.dumpDict()
	dump.dumpOutput()
}

func (dump interpDumper) dumpStack() {
	fmt.Fprintf(dump.out, "  stack: [%v] %v/%v\n",
		formatStack(dump.interp.items),
		len(dump.interp.items), dump.interp.capacity)
}

// dumpDict lists only user-defined words, rendered back into source form;
// primitives are always the same.
func (dump interpDumper) dumpDict() {
	words := dump.interp.dict.userWords()
	if len(words) == 0 {
		return
	}
	fmt.Fprintf(dump.out, "# Dictionary\n")
	for _, w := range words {
		fmt.Fprintf(dump.out, "  %v\n", w.definition())
	}
}

func (dump interpDumper) dumpOutput() {
	text := dump.interp.output.String()
	if text == "" {
		return
	}
	fmt.Fprintf(dump.out, "# Output\n")
	for _, line := range strings.SplitAfter(text, "\n") {
		if line != "" {
			fmt.Fprintf(dump.out, "  %v\n", runeio.Printable(line))
		}
	}
}
