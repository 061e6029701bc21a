package main

import (
	"bufio"
	"fmt"
	"io"
)

// runREPL reads one command per line until exit or end of input. The prompt
// and the opening help are only shown to interactive users.
func runREPL(in io.Reader, out io.Writer, cli *CLI, interactive bool) error {
	if interactive {
		cli.printLines(helpLines)
	}
	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			break
		}
		if cli.Execute(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}
