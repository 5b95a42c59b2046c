// my-reboot chooses the operating system and the display of the next boot
// on a dual-boot machine.
package main

import (
	"fmt"
	"os"

	"my-reboot/internal/cmd"
	"my-reboot/internal/fault"
)

var (
	run    = func() error { return cmd.Execute() }
	osExit = os.Exit
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, cmd.FormatError(err))
		osExit(fault.ExitCode(err))
	}
}
