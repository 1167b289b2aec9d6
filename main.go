package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jcorbin/goborth/internal/logio"
)

func main() {
	ctx := context.Background()

	var log logio.Logger
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	r := runner{log: &log}
	err := r.parseArgs(os.Args[1:])
	if err == nil {
		err = r.run(ctx, os.Stdout)
	}
	if err != nil {
		if isCommandError(err) {
			fmt.Fprint(os.Stdout, err)
		}
		log.ErrorIf(err)
	}
}
