package runeio_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jcorbin/goborth/internal/runeio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMnemonic(t *testing.T) {
	assert.Equal(t, "<NUL>", runeio.Mnemonic(0))
	assert.Equal(t, "<NL>", runeio.Mnemonic('\n'))
	assert.Equal(t, "<ESC>", runeio.Mnemonic(0x1b))
	assert.Equal(t, "<DEL>", runeio.Mnemonic(0x7f))
	assert.Equal(t, "", runeio.Mnemonic('a'))
	assert.Equal(t, "", runeio.Mnemonic(-1))
}

func TestPrintable(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{"", ""},
		{"hello world", "hello world"},
		{"5 4\n", "5 4<NL>"},
		{"a\tb", "a<HT>b"},
		{"ñ", "ñ"},
		{"\xff", "<0xff>"},
	} {
		assert.Equal(t, tc.out, runeio.Printable(tc.in), "printable form of %q", tc.in)
	}
}

func TestNamed(t *testing.T) {
	r := runeio.Named("main.fth", strings.NewReader("ab"))
	assert.Equal(t, "main.fth", r.(interface{ Name() string }).Name())

	c, _, err := r.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'a', c)
	c, _, err = r.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'b', c)
	_, _, err = r.ReadRune()
	assert.Equal(t, io.EOF, err)
}
