package suite

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDir(t *testing.T) {
	loaded, err := LoadDir("testdata")
	require.NoError(t, err)
	require.Len(t, loaded, 4)

	push := loaded[0]
	assert.Equal(t, "basic.yaml", push.File)
	assert.Equal(t, "basic", push.Suite.Name)
	assert.Equal(t, "push", push.Case.Name)
	assert.Equal(t, "1 2", push.Case.Code)
	assert.Equal(t, []int16{1, 2}, push.Case.Expect.Stack)
	assert.Nil(t, push.Case.Expect.Output)
	assert.Equal(t, 20, push.StackSize(100))

	empty := loaded[1]
	assert.Equal(t, []int16{}, empty.Case.Expect.Stack)
	if assert.NotNil(t, empty.Case.Expect.Output) {
		assert.Equal(t, "", *empty.Case.Expect.Output)
	}
	assert.Equal(t, 4, empty.StackSize(100))

	flagged := loaded[2]
	assert.Equal(t, filepath.Join("nested", "skip.yaml"), flagged.File)
	assert.Equal(t, "skip.yaml", flagged.Suite.Name)
	assert.Equal(t, "?", flagged.Case.Expect.Error)
	assert.Equal(t, 100, flagged.StackSize(100))
	skip, reason := flagged.Case.IsSkipped()
	assert.True(t, skip)
	assert.Equal(t, "skipped", reason)

	skip, reason = loaded[3].Case.IsSkipped()
	assert.True(t, skip)
	assert.Equal(t, "not yet", reason)

	skip, _ = push.Case.IsSkipped()
	assert.False(t, skip)
}

func TestLoadFile_invalid(t *testing.T) {
	dir, err := ioutil.TempDir("", "suite")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("tests: {name: [}"), 0644))

	_, err = LoadFile(path)
	assert.Error(t, err)

	_, err = LoadDir(dir)
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
