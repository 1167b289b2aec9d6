package main

import "time"

// @generated from interp_test.go

//go:generate go run scripts/gen_expects.go -- interp_test.go expects_test.go

func withInterpOptions(opts ...Option) func(interpTestCase) interpTestCase {
	return func(tc interpTestCase) interpTestCase {
		return tc.withOptions(opts...)
	}
}

func withInterpStackSize(bytes int) func(interpTestCase) interpTestCase {
	return func(tc interpTestCase) interpTestCase {
		return tc.withStackSize(bytes)
	}
}

func withInterpStack(values ...Item) func(interpTestCase) interpTestCase {
	return func(tc interpTestCase) interpTestCase {
		return tc.withStack(values...)
	}
}

func withInterpInput(input string) func(interpTestCase) interpTestCase {
	return func(tc interpTestCase) interpTestCase {
		return tc.withInput(input)
	}
}

func withInterpNamedInput(name string, input string) func(interpTestCase) interpTestCase {
	return func(tc interpTestCase) interpTestCase {
		return tc.withNamedInput(name, input)
	}
}

func withInterpTimeout(timeout time.Duration) func(interpTestCase) interpTestCase {
	return func(tc interpTestCase) interpTestCase {
		return tc.withTimeout(timeout)
	}
}

func expectInterpError(err error) func(interpTestCase) interpTestCase {
	return func(tc interpTestCase) interpTestCase {
		return tc.expectError(err)
	}
}

func expectInterpErrorLocation(loc string) func(interpTestCase) interpTestCase {
	return func(tc interpTestCase) interpTestCase {
		return tc.expectErrorLocation(loc)
	}
}

func expectInterpErrorLine(line string) func(interpTestCase) interpTestCase {
	return func(tc interpTestCase) interpTestCase {
		return tc.expectErrorLine(line)
	}
}

func expectInterpStack(values ...Item) func(interpTestCase) interpTestCase {
	return func(tc interpTestCase) interpTestCase {
		return tc.expectStack(values...)
	}
}

func expectInterpOutput(output string) func(interpTestCase) interpTestCase {
	return func(tc interpTestCase) interpTestCase {
		return tc.expectOutput(output)
	}
}

func expectInterpWritten(output string) func(interpTestCase) interpTestCase {
	return func(tc interpTestCase) interpTestCase {
		return tc.expectWritten(output)
	}
}

func expectInterpWord(name string, definition string) func(interpTestCase) interpTestCase {
	return func(tc interpTestCase) interpTestCase {
		return tc.expectWord(name, definition)
	}
}

func expectInterpNoWord(name string) func(interpTestCase) interpTestCase {
	return func(tc interpTestCase) interpTestCase {
		return tc.expectNoWord(name)
	}
}

func expectInterpDump(dump string) func(interpTestCase) interpTestCase {
	return func(tc interpTestCase) interpTestCase {
		return tc.expectDump(dump)
	}
}
