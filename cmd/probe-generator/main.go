// Package main provides the CLI entrypoint for probe-generator.
//
// probe-generator reads a syscall macro header and writes one eBPF tail-call
// source per declared syscall:
//   - Parses SYSCALL_MACRO / ENTER_PARAM_MACRO / EXIT_PARAM_MACRO lines
//   - Classifies every entry argument by its declared C type
//   - Renders entry and exit probes that push the arguments to the ring buffer
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd, err := newRootCommand()
	if err == nil {
		err = cmd.Execute()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
