// Command codible is a minimal terminal text editor.
//
// Usage:
//
//	codible [file]
package main

import (
	"fmt"
	"os"

	"github.com/codible/codible/internal/editor"
)

func main() {
	e := editor.New(os.Stdin, os.Stdout, int(os.Stdin.Fd()))

	if err := e.EnableRawMode(); err != nil {
		die(e, "enabling raw mode: %v", err)
	}
	defer e.RestoreTerminal()

	if err := e.Init(); err != nil {
		die(e, "getting window size: %v", err)
	}

	if len(os.Args) > 1 {
		if err := e.Open(os.Args[1]); err != nil {
			die(e, "opening %q: %v", os.Args[1], err)
		}
	}

	e.SetStatusMessage("HELP: Ctrl-G = help | Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	for {
		e.RefreshScreen()
		if err := e.ProcessKeypress(); err != nil {
			if _, ok := err.(editor.Quit); ok {
				e.RestoreTerminal()
				fmt.Fprintln(os.Stdout, "Exiting codible")
				os.Exit(0)
			}
			die(e, "%v", err)
		}
	}
}

// die restores the terminal, clears the screen, prints a diagnostic to
// stderr and exits with a non-zero status. Called for the fatal
// startup failures and for any error other than Quit returned by
// ProcessKeypress.
func die(e *editor.Editor, format string, args ...any) {
	e.RestoreTerminal()
	fmt.Fprint(os.Stdout, "\x1b[2J\x1b[H")
	fmt.Fprintf(os.Stderr, "codible: "+format+"\n", args...)
	os.Exit(1)
}
