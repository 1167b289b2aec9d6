package flushio_test

import (
	"bytes"
	"errors"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/jcorbin/goborth/internal/flushio"
	"github.com/stretchr/testify/assert"
)

type failWriter struct{ err error }

func (fw failWriter) Write(p []byte) (int, error) { return 0, fw.err }

func TestNewWriteFlusher(t *testing.T) {
	var sb strings.Builder
	wf := flushio.NewWriteFlusher(&sb)
	assert.NoError(t, flushio.WriteString(wf, "1 2 3"))
	assert.Equal(t, "1 2 3", sb.String())

	assert.NotNil(t, flushio.NewWriteFlusher(nil))
	assert.NotNil(t, flushio.NewWriteFlusher(ioutil.Discard))
}

func TestNewWriteFlusher_buffered(t *testing.T) {
	bang := errors.New("bang")
	wf := flushio.NewWriteFlusher(failWriter{bang})
	assert.Equal(t, bang, flushio.WriteString(wf, "data"), "expected flush to surface write error")
}

func TestWriteFlushers(t *testing.T) {
	var a, b bytes.Buffer
	assert.Nil(t, flushio.WriteFlushers())
	assert.Nil(t, flushio.WriteFlushers(nil, nil))

	one := flushio.NewWriteFlusher(&a)
	assert.Equal(t, one, flushio.WriteFlushers(nil, one))

	both := flushio.WriteFlushers(
		flushio.WriteFlushers(one),
		flushio.NewWriteFlusher(&b),
	)
	assert.NoError(t, flushio.WriteString(both, "hello"))
	assert.Equal(t, "hello", a.String())
	assert.Equal(t, "hello", b.String())
}
