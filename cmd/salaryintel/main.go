// Command salaryintel runs the salary intelligence dashboard and its one-shot
// prediction commands.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(newRootCmd()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
