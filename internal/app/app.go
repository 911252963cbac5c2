// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"io"

	"phichain/internal/cli"
	"phichain/internal/writers"
)

// RunContext executes the CLI with buffered stdout. Broken pipes on the
// final flush are treated as success so `phichain export | head` exits 0.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	code := cli.Execute(ctx, argv, outw, stderr)

	if err := outw.Flush(); err != nil && !writers.IsBrokenPipe(err) && code == cli.ExitOK {
		code = cli.ExitError
	}
	return code
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
