package editor

import (
	"errors"
	"fmt"

	"golang.org/x/term"
)

// EnableRawMode snapshots the current terminal attributes and installs
// raw mode via term.MakeRaw: no line buffering, no echo, no
// signal-generating control characters, 8-bit characters. MakeRaw sets
// VMIN=1/VTIME=0, so a terminal read blocks until at least one byte
// arrives; no read timeout is installed, and a lone ESC is decoded only
// once the next byte arrives. The snapshot is kept on e for
// RestoreTerminal.
func (e *Editor) EnableRawMode() error {
	if !term.IsTerminal(e.rawFd) {
		return &TerminalInitError{Err: errors.New("not running in a terminal")}
	}
	state, err := term.MakeRaw(e.rawFd)
	if err != nil {
		return &TerminalInitError{Err: err}
	}
	e.rawState = state
	return nil
}

// RestoreTerminal restores the terminal attributes captured by
// EnableRawMode. Safe to call more than once or without a prior
// EnableRawMode; only the first call has an effect.
func (e *Editor) RestoreTerminal() {
	if e.rawState == nil {
		return
	}
	term.Restore(e.rawFd, e.rawState)
	e.rawState = nil
}

// WindowSize returns (rows, cols). It prefers the OS ioctl
// (golang.org/x/term); on failure it falls back to the
// cursor-to-bottom-right-then-report-position probe described in
// spec.md §4.1, recovered from original_source/codible.c's
// getWindowSize (the teacher only implements the ioctl path and
// surfaces an error on failure).
func (e *Editor) WindowSize() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(e.rawFd)
	if err == nil && cols > 0 {
		return rows, cols, nil
	}
	return e.windowSizeByCursorProbe()
}

// windowSizeByCursorProbe implements the ESC[999C ESC[999B / ESC[6n
// fallback: push the cursor as far right-and-down as the terminal
// allows, then ask it to report its own position.
func (e *Editor) windowSizeByCursorProbe() (rows, cols int, err error) {
	if _, err := e.out.Write([]byte(cursorToBottomRight)); err != nil {
		return 0, 0, err
	}
	if _, err := e.out.Write([]byte(cursorReportRequest)); err != nil {
		return 0, 0, err
	}

	var buf [32]byte
	n := 0
	for n < len(buf)-1 {
		b, ok := readByteOrTimeout(e.in)
		if !ok {
			break
		}
		if b == 'R' {
			break
		}
		buf[n] = b
		n++
	}

	reply := buf[:n]
	if len(reply) < 2 || reply[0] != 0x1b || reply[1] != '[' {
		return 0, 0, errors.New("malformed cursor position report")
	}
	if _, err := fmt.Sscanf(string(reply[2:]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("parsing cursor position report: %w", err)
	}
	return rows, cols, nil
}
