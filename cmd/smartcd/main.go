package main

import (
	"fmt"
	"os"

	"github.com/hbjs97/smartcd/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		code := cli.MapExitCode(err)
		if !code.Silent() {
			fmt.Fprintf(os.Stderr, "smartcd: %v\n", err)
		}
		os.Exit(int(code))
	}
}
