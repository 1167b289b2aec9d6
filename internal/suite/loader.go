package suite

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Loaded is a case along with the suite and file it came from.
type Loaded struct {
	File  string
	Suite *Suite
	Case  Case
}

// StackSize returns the stack budget for the case, falling back to its
// suite's, then to def.
func (l Loaded) StackSize(def int) int {
	if l.Case.StackSize != 0 {
		return l.Case.StackSize
	}
	if l.Suite.StackSize != 0 {
		return l.Suite.StackSize
	}
	return def
}

// LoadDir walks dir loading every .yaml file under it; File fields are
// relative to dir.
func LoadDir(dir string) ([]Loaded, error) {
	var loaded []Loaded
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		suite, err := LoadFile(path)
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			relPath = path
		}
		for _, c := range suite.Cases {
			loaded = append(loaded, Loaded{File: relPath, Suite: suite, Case: c})
		}
		return nil
	})
	return loaded, err
}

// LoadFile parses a single suite file.
func LoadFile(path string) (*Suite, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	if suite.Name == "" {
		suite.Name = filepath.Base(path)
	}
	return &suite, nil
}
