/* Package main: BORTH -- a small FORTH

BORTH programs manipulate a single stack of signed 16-bit items. Every word
either pushes a number, or operates on the top of the stack; true and false
are -1 and 0, so that bitwise and / or double as logical operators. So
"1 2 +" leaves 3 on the stack, while this prints "5 4":

	5 . 4 .

Built-in words, case insensitive:

	+ - * /                 arithmetic, wrapping at 16 bits
	dup drop swap over rot  stack manipulation
	= < > and or not        comparison and logic
	. emit cr               print an item, a character, or a line break
	." text"                print text, keeping its spacing

New words are defined between : and ; and compiled immediately; each word in
the body is bound to its meaning at the time of definition. So later
redefinitions leave earlier words unchanged, and a word that names itself
calls its prior definition rather than recursing. This leaves 5 6:

	: foo 5 ;
	: bar foo ;
	: foo 6 ;
	bar foo

Conditionals pop a flag, and run one of their branches. This leaves 20 2:

	: max over over < if swap then drop ;
	10 20 max
	0 if 1 else 2 then

Evaluation stops at the first error. Everything printed before then is still
written out, followed by the error: "?" for an unknown word, or the name of
the failure (e.g. "stack-underflow"). In either case the final stack is saved
into stack.fth as space separated decimals, oldest first.

Usage:

	goborth [-trace] [-resume] [-stack-file=stack.fth] <file.fth> [--stack-size=<bytes>]

The stack holds as many items as fit in the given byte budget, 128000 bytes by
default.
*/
package main
