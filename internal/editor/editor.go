// Package editor implements the codible interactive text-editor
// engine: raw-terminal I/O, the ANSI key decoder, the dual-
// representation row store, the viewport/scroll model, incremental
// bidirectional search, and the single-pass screen compositor.
package editor

import (
	"io"
	"time"

	"golang.org/x/term"
)

// Version is reported in the welcome banner and the help screen.
const Version = "0.0.1"

// QuitTimes is how many consecutive Ctrl-Q presses on a modified
// buffer only show the unsaved-changes warning; the next Ctrl-Q quits,
// so QuitTimes+1 presses discard unsaved changes.
const QuitTimes = 3

// Mode selects which modal screen, if any, owns the display and key
// routing.
type Mode int

const (
	ModeEdit Mode = iota
	ModeExplorer
	ModeHelp
)

// searchState is the incremental-search session state that must
// survive between Prompt callback invocations within one search, and
// is reset when the session ends. Scoped to the Editor (not a package
// global) so multiple Editor values never interfere.
type searchState struct {
	lastMatch  int
	direction  int
	savedRow   int
	savedClass []HighlightClass
}

// Editor is the single owned, process-wide editor state. It is
// threaded explicitly through the dispatcher loop rather than held in
// a package-level global (see SPEC_FULL.md §5).
type Editor struct {
	cx, cy    int
	rx        int
	rowOffset int
	colOffset int

	screenRows int
	screenCols int

	row []Row

	dirty    int
	filename string
	syntax   *Syntax

	statusMessage     string
	statusMessageTime time.Time

	mode      Mode
	quitTimes int

	search searchState

	in  io.Reader
	out io.Writer

	rawState *term.State
	rawFd    int // fd backing in/out, used for term.MakeRaw/GetSize
}

// New creates an Editor reading from in and writing frames to out. fd
// is the file descriptor backing both (typically os.Stdin.Fd()/
// os.Stdout.Fd(), both the controlling tty for an interactive run).
func New(in io.Reader, out io.Writer, fd int) *Editor {
	return &Editor{
		in:        in,
		out:       out,
		rawFd:     fd,
		quitTimes: QuitTimes,
		search:    searchState{lastMatch: -1, direction: 1},
	}
}

// Init queries the window size and resets all editor state to the
// empty-buffer start. It must be called once, after raw mode is
// enabled, before the dispatcher loop starts.
func (e *Editor) Init() error {
	e.cx, e.cy = 0, 0
	e.rx = 0
	e.rowOffset, e.colOffset = 0, 0
	e.row = nil
	e.dirty = 0
	e.filename = ""
	e.syntax = nil
	e.statusMessage = ""
	e.statusMessageTime = time.Time{}
	e.mode = ModeEdit
	e.quitTimes = QuitTimes
	e.search = searchState{lastMatch: -1, direction: 1}

	rows, cols, err := e.WindowSize()
	if err != nil {
		return &WindowSizeError{Err: err}
	}
	e.screenRows = rows - 2 // reserve status bar + message bar
	e.screenCols = cols
	return nil
}

// Dirty reports the current dirty counter (spec.md §3: zero iff the
// buffer matches last-saved disk content).
func (e *Editor) Dirty() int { return e.dirty }

// Filename is the currently open file, or "" if none.
func (e *Editor) Filename() string { return e.filename }

// Cursor returns the current logical cursor position.
func (e *Editor) Cursor() (cx, cy int) { return e.cx, e.cy }
