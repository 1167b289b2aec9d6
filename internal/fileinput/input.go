package fileinput

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jcorbin/goborth/internal/runeio"
)

// Location names an a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a bytes.Buffer for handling it.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string {
	if loc.Name == "" {
		return ""
	}
	return fmt.Sprintf("%v:%v", loc.Name, loc.Line)
}

// Input implements sequential rune reading through a Queue of one or more
// input streams. Both the current and last scanned lines are tracked to
// facilitate user feedback.
//
// Consecutive streams are joined by an implicit line feed, so that a word at
// the end of one stream never runs into the first word of the next.
type Input struct {
	rr    io.RuneReader
	Queue []io.Reader
	Last  Line
	Scan  Line
}

// Location returns the location of the most recently read rune.
func (in *Input) Location() Location { return in.Scan.Location }

// LineAt returns the text read so far from the line at loc, which must be
// either the current Scan line or the Last one.
func (in *Input) LineAt(loc Location) (string, bool) {
	switch loc {
	case in.Scan.Location:
		return in.Scan.Buffer.String(), true
	case in.Last.Location:
		return in.Last.Buffer.String(), true
	}
	return "", false
}

// ReadRune reads one rune from the current input stream, appending it into the
// current Scan line, and rolling Scan over to Last after line feed.
func (in *Input) ReadRune() (rune, int, error) {
	if in.rr == nil && !in.nextIn() {
		return 0, 0, io.EOF
	}

	r, n, err := in.rr.ReadRune()
	if err == io.EOF && n == 0 {
		in.closeIn()
		if len(in.Queue) == 0 {
			return 0, 0, io.EOF
		}
		return '\n', 0, nil
	} else if err != nil {
		return r, n, err
	}

	if r == '\n' {
		in.nextLine()
	} else {
		in.Scan.WriteRune(r)
	}
	return r, n, nil
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Name = in.Scan.Name
	in.Last.Line = in.Scan.Line
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

func (in *Input) closeIn() {
	if in.Scan.Len() > 0 {
		in.nextLine()
	}
	if cl, ok := in.rr.(io.Closer); ok {
		cl.Close()
	}
	in.rr = nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.rr = runeio.NewReader(r)
	in.Scan.Reset()
	in.Scan.Name = nameOf(r)
	in.Scan.Line = 1
	return true
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
