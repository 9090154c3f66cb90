package editor

// ModalScreen is a self-contained full-screen overlay that borrows the
// editor's row store and compositor to display read-only content and
// handle its own key routing (spec.md §10's supplemented explorer/help
// features, grounded on the teacher's ModalScreen interface).
type ModalScreen interface {
	// Content returns the rows to display.
	Content() []Row
	// StatusMessage is shown in the message bar while the screen is active.
	StatusMessage() string
	// HandleKey processes one key; close reports whether the modal
	// should exit, and restore whether the editor's prior buffer state
	// should be put back (true) or kept as the new state (false, e.g.
	// after opening a file from the explorer).
	HandleKey(e *Editor, key Key) (close bool, restore bool)
	// Initialize positions the cursor and any other per-screen setup.
	Initialize(e *Editor)
}

// savedBuffer is the editor state runModal restores on exit.
type savedBuffer struct {
	row       []Row
	cx, cy    int
	rowOffset int
	colOffset int
	mode      Mode
}

func (e *Editor) snapshotBuffer() savedBuffer {
	return savedBuffer{
		row:       e.row,
		cx:        e.cx,
		cy:        e.cy,
		rowOffset: e.rowOffset,
		colOffset: e.colOffset,
		mode:      e.mode,
	}
}

func (e *Editor) restoreBuffer(s savedBuffer) {
	e.row = s.row
	e.cx, e.cy = s.cx, s.cy
	e.rowOffset, e.colOffset = s.rowOffset, s.colOffset
	e.mode = s.mode
}

// runModal displays screen until it requests closing, driving the
// same refresh/read-key loop the main dispatcher uses.
func (e *Editor) runModal(mode Mode, screen ModalScreen) {
	saved := e.snapshotBuffer()

	e.mode = mode
	e.row = screen.Content()
	e.cx, e.cy = 0, 0
	e.rowOffset, e.colOffset = 0, 0
	e.SetStatusMessage("%s", screen.StatusMessage())
	screen.Initialize(e)

	for {
		e.RefreshScreen()
		key, err := ReadKey(e.in)
		if err != nil {
			e.ShowError("%v", err)
			continue
		}

		close, restore := screen.HandleKey(e, key)
		if close {
			if restore {
				e.restoreBuffer(saved)
				e.SetStatusMessage("Returned to editor")
			}
			return
		}
	}
}
