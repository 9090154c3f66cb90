package editor

import "fmt"

// HelpScreen implements ModalScreen, displaying a static reference card
// of key bindings (SPEC_FULL.md §10.4, grounded on the teacher's
// HelpScreen). Bound to Ctrl-G rather than the teacher's Ctrl-H, which
// collides with backspace in codible's key table.
type HelpScreen struct {
	content []Row
}

func newHelpScreen() *HelpScreen {
	lines := []string{
		"=== CODIBLE HELP ===",
		"",
		"NAVIGATION:",
		"  Arrow Keys       - Move cursor",
		"  Page Up/Down     - Scroll by page",
		"  Home/End         - Move to line start/end",
		"",
		"EDITING:",
		"  Ctrl-S           - Save file",
		"  Ctrl-Q           - Quit (press 4 times if unsaved)",
		"  Backspace/Delete - Delete characters",
		"",
		"SEARCH:",
		"  Ctrl-F           - Find text",
		"  Arrow Up/Down    - Cycle search matches",
		"  Escape           - Cancel search",
		"",
		"FILE OPERATIONS:",
		"  Ctrl-E           - Open file explorer",
		"",
		"OTHER:",
		"  Ctrl-G           - Show this help",
		"  Ctrl-R           - Redraw screen",
		"",
		fmt.Sprintf("codible %s", Version),
		"",
		"Press 'q' or Escape to close this help screen.",
	}

	content := make([]Row, len(lines))
	for i, line := range lines {
		content[i] = Row{chars: []byte(line)}
		content[i].refresh(nil, false)
	}
	return &HelpScreen{content: content}
}

func (h *HelpScreen) Content() []Row { return h.content }

func (h *HelpScreen) StatusMessage() string {
	return "Help - Arrow keys to scroll, 'q' or ESC to exit"
}

func (h *HelpScreen) Initialize(e *Editor) {
	e.cy = 0
	e.rowOffset = 0
}

func (h *HelpScreen) HandleKey(e *Editor, key Key) (close bool, restore bool) {
	switch key {
	case Key('q'), Key('Q'), keyEsc:
		return true, true

	case KeyArrowUp:
		if e.cy > 0 {
			e.cy--
		} else if e.rowOffset > 0 {
			e.rowOffset--
		}

	case KeyArrowDown:
		maxCy := len(h.content) - 1
		if e.cy < e.screenRows-1 && e.cy < maxCy {
			e.cy++
		} else if e.rowOffset+e.screenRows < len(h.content) {
			e.rowOffset++
		}

	case KeyPageUp:
		for i := 0; i < e.screenRows && (e.cy > 0 || e.rowOffset > 0); i++ {
			if e.cy > 0 {
				e.cy--
			} else if e.rowOffset > 0 {
				e.rowOffset--
			}
		}

	case KeyPageDown:
		for i := 0; i < e.screenRows && e.rowOffset+e.cy < len(h.content)-1; i++ {
			maxCy := len(h.content) - 1
			if e.cy < e.screenRows-1 && e.cy < maxCy {
				e.cy++
			} else if e.rowOffset+e.screenRows < len(h.content) {
				e.rowOffset++
			}
		}

	case KeyHome:
		e.cy = 0
		e.rowOffset = 0

	case KeyEnd:
		maxRows := len(h.content)
		if maxRows <= e.screenRows {
			e.cy = maxRows - 1
			e.rowOffset = 0
		} else {
			e.cy = e.screenRows - 1
			e.rowOffset = maxRows - e.screenRows
		}
	}

	return false, false
}

// Help opens the key-binding reference overlay.
func (e *Editor) Help() {
	e.runModal(ModeHelp, newHelpScreen())
}
