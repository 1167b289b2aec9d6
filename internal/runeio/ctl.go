package runeio

import (
	"strings"
	"unicode/utf8"
)

// ControlRune represents a named control unicode codepoint.
type ControlRune struct {
	N string
	R rune
}

// C0Ctls contains the classic ASCII control characters.
var C0Ctls = [32]ControlRune{
	{"<NUL>", 0x00},
	{"<SOH>", 0x01},
	{"<STX>", 0x02},
	{"<ETX>", 0x03},
	{"<EOT>", 0x04},
	{"<ENQ>", 0x05},
	{"<ACK>", 0x06},
	{"<BEL>", 0x07},
	{"<BS>", 0x08},
	{"<HT>", 0x09},
	{"<NL>", 0x0A},
	{"<VT>", 0x0B},
	{"<NP>", 0x0C},
	{"<CR>", 0x0D},
	{"<SO>", 0x0E},
	{"<SI>", 0x0F},
	{"<DLE>", 0x10},
	{"<DC1>", 0x11},
	{"<DC2>", 0x12},
	{"<DC3>", 0x13},
	{"<DC4>", 0x14},
	{"<NAK>", 0x15},
	{"<SYN>", 0x16},
	{"<ETB>", 0x17},
	{"<CAN>", 0x18},
	{"<EM>", 0x19},
	{"<SUB>", 0x1A},
	{"<ESC>", 0x1B},
	{"<FS>", 0x1C},
	{"<GS>", 0x1D},
	{"<RS>", 0x1E},
	{"<US>", 0x1F},
}

// DEL is the one control rune outside of the C0 range that emit can produce
// in practice.
var DEL = ControlRune{"<DEL>", 0x7F}

// Mnemonic returns the <NAME> form of a control rune, or the empty string if
// r is not a control rune.
func Mnemonic(r rune) string {
	if 0 <= r && int(r) < len(C0Ctls) {
		return C0Ctls[r].N
	}
	if r == DEL.R {
		return DEL.N
	}
	return ""
}

// Printable renders s for a single line of diagnostic output: control runes
// are replaced with their mnemonic, invalid encodings with their hex byte,
// and all other runes are kept as is.
func Printable(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for len(s) > 0 {
		r, n := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && n == 1 {
			sb.WriteString("<0x")
			sb.WriteByte("0123456789abcdef"[s[0]>>4])
			sb.WriteByte("0123456789abcdef"[s[0]&0xf])
			sb.WriteByte('>')
		} else if name := Mnemonic(r); name != "" {
			sb.WriteString(name)
		} else {
			sb.WriteRune(r)
		}
		s = s[n:]
	}
	return sb.String()
}
