package editor

// Quit is returned by ProcessKeypress to tell the dispatcher loop to
// exit cleanly (all unsaved-changes guards already satisfied).
type Quit struct{}

func (Quit) Error() string { return "quit" }

// ProcessKeypress reads and routes one key, per spec.md §4.12's
// dispatch table. It returns Quit when the user has confirmed exit
// (via the Ctrl-Q unsaved-changes guard), and any *ReadError from a
// genuine read failure.
func (e *Editor) ProcessKeypress() error {
	key, err := ReadKey(e.in)
	if err != nil {
		return err
	}

	switch key {
	case keyEnter:
		e.InsertNewline()

	case ctrlKey('q'):
		if e.dirty > 0 && e.quitTimes > 0 {
			e.SetStatusMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
			e.quitTimes--
			return nil
		}
		return Quit{}

	case ctrlKey('s'):
		e.Save()

	case KeyHome:
		e.Home()

	case KeyEnd:
		e.End()

	case ctrlKey('f'):
		e.Find()

	case ctrlKey('e'):
		e.Explorer()

	case ctrlKey('g'):
		e.Help()

	case ctrlKey('r'):
		if err := e.Redraw(); err != nil {
			e.ShowError("%v", err)
		}

	case keyBackspace, ctrlKey('h'):
		e.DeleteChar()

	case KeyDelete:
		e.MoveCursor(KeyArrowRight)
		e.DeleteChar()

	case KeyPageUp:
		e.PageUp()

	case KeyPageDown:
		e.PageDown()

	case KeyArrowLeft, KeyArrowRight, KeyArrowUp, KeyArrowDown:
		e.MoveCursor(key)

	case ctrlKey('l'), keyEsc:
		// no-op; the dispatcher loop already refreshes next iteration

	default:
		if key >= 0 && key < 256 {
			e.InsertChar(byte(key))
		}
	}

	e.quitTimes = QuitTimes
	return nil
}

// Redraw re-queries the window size and forces a full repaint — useful
// once the terminal has been resized, which is otherwise only noticed
// on the next keypress (SPEC_FULL.md §10.3).
func (e *Editor) Redraw() error {
	rows, cols, err := e.WindowSize()
	if err != nil {
		return &WindowSizeError{Err: err}
	}
	e.screenRows = rows - 2
	e.screenCols = cols
	e.RefreshScreen()
	return nil
}
