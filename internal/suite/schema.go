// Package suite loads language conformance suites from YAML files.
package suite

// Suite is one YAML file of test cases.
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	StackSize   int    `yaml:"stack_size,omitempty"` // in bytes, 0 for the default
	Cases       []Case `yaml:"tests"`
}

// Case is a single program along with what running it must produce.
type Case struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"` // bool or string
	StackSize   int         `yaml:"stack_size,omitempty"`
	Code        string      `yaml:"code"`
	Expect      Expectation `yaml:"expect"`
}

// Expectation defines the final state of a run; nil fields are unchecked.
type Expectation struct {
	Stack  []int16 `yaml:"stack,omitempty"`
	Output *string `yaml:"output,omitempty"`
	Error  string  `yaml:"error,omitempty"` // kebab-case error name, or "?"
}

// IsSkipped returns true, and a reason, if the case should not run.
func (c *Case) IsSkipped() (bool, string) {
	switch v := c.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
	case string:
		return true, v
	}
	return false, ""
}
