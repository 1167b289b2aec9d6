// Command gen_expects generates functional wrappers around test case builder
// methods, so that a test table may write expectInterpStack(1, 2) instead of
// tc.expectStack(1, 2).
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout

	caseType = flag.String("type", "interpTestCase", "test case builder type")
	infix    = flag.String("infix", "Interp", "inserted into generated names, after expect or with")
	timeout  = flag.Duration("timeout", 5*time.Second, "time limit for generating and formatting")
)

func parseFlags() {
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 {
		name := args[0]
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("failed to open %v: %v", name, err)
		}
		args = args[1:]
		in = f
	}

	if len(args) > 0 {
		name := args[0]
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("failed to create %v: %v", name, err)
		}
		out = f
	}
}

func main() {
	ctx := context.Background()
	parseFlags()

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	ready := make(chan struct{})

	// generated code is piped through goimports before reaching out
	eg.Go(func() error {
		imports := exec.CommandContext(ctx, "goimports")
		pipe, err := imports.StdinPipe()
		if err != nil {
			return err
		}

		defer out.Close()
		imports.Stdout = out
		imports.Stderr = os.Stderr

		out = pipe

		close(ready)
		if err := imports.Run(); err != nil {
			return fmt.Errorf("goimports run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ready:
		}

		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()

		gen := generator{
			method: regexp.MustCompile(`func \(tc ` + *caseType + `\) (expect|with)(.+?)\((.+?)\) ` + *caseType),
		}
		return gen.run(ctx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

type generator struct {
	method *regexp.Regexp
	buf    bytes.Buffer
}

func (gen *generator) run(ctx context.Context) error {
	gen.buf.Grow(1024)
	gen.buf.WriteString("package main\n\n")

	gen.buf.WriteString("// @generated from ")
	gen.buf.WriteString(in.Name())
	gen.buf.WriteString("\n\n")

	if args := flag.Args(); len(args) >= 2 {
		gen.buf.WriteString("//go:generate go run scripts/gen_expects.go --")
		for _, arg := range args {
			gen.buf.WriteByte(' ')
			gen.buf.WriteString(arg)
		}
		gen.buf.WriteString("\n\n")
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if match := gen.method.FindSubmatch(sc.Bytes()); len(match) > 0 {
			gen.wrapper(match[1], match[2], match[3])
		}
		if gen.buf.Len() > 0 {
			if _, err := gen.buf.WriteTo(out); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return sc.Err()
}

// wrapper writes a function that returns a closure calling the named method
// with the same parameters; every parameter must carry its own type.
func (gen *generator) wrapper(baseName, whatName, params []byte) {
	gen.buf.WriteString("func ")
	gen.buf.Write(baseName)
	gen.buf.WriteString(*infix)
	gen.buf.Write(whatName)
	gen.buf.WriteString("(")
	gen.buf.Write(params)
	fmt.Fprintf(&gen.buf, ") func(%[1]v) %[1]v {\n", *caseType)
	fmt.Fprintf(&gen.buf, "\treturn func(tc %[1]v) %[1]v {\n", *caseType)
	gen.buf.WriteString("\t\treturn tc.")
	gen.buf.Write(baseName)
	gen.buf.Write(whatName)
	gen.buf.WriteString("(")
	for i, param := range bytes.Split(params, []byte(",")) {
		if i > 0 {
			gen.buf.WriteString(", ")
		}
		fields := bytes.Fields(param)
		gen.buf.Write(fields[0])
		if len(fields) > 1 && bytes.HasPrefix(fields[1], []byte("...")) {
			gen.buf.WriteString("...")
		}
	}
	gen.buf.WriteString(")\n")
	gen.buf.WriteString("\t}\n")
	gen.buf.WriteString("}\n\n")
}
