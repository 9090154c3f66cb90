package editor

import "bytes"

// Find opens an incremental, bidirectional substring search prompt. On
// commit (ENTER) the current match is kept; on cancel (ESC) the saved
// cursor and viewport are restored.
func (e *Editor) Find() {
	savedCx, savedCy := e.cx, e.cy
	savedColOffset, savedRowOffset := e.colOffset, e.rowOffset

	e.search = searchState{lastMatch: -1, direction: 1}

	_, ok := e.Prompt("Search: %s (Use ESC/Arrows/ENTER)", e.findCallback)
	if !ok {
		e.cx, e.cy = savedCx, savedCy
		e.colOffset, e.rowOffset = savedColOffset, savedRowOffset
	}
}

// findCallback is the per-keystroke PromptCallback driving incremental
// search (spec.md §4.10).
func (e *Editor) findCallback(query []byte, key Key) {
	if e.search.savedClass != nil {
		copy(e.row[e.search.savedRow].highlight, e.search.savedClass)
		e.search.savedClass = nil
	}

	switch key {
	case keyEnter, keyEsc:
		e.search.lastMatch = -1
		e.search.direction = 1
		return
	case KeyArrowRight, KeyArrowDown:
		e.search.direction = 1
	case KeyArrowLeft, KeyArrowUp:
		e.search.direction = -1
	default:
		e.search.lastMatch = -1
		e.search.direction = 1
	}

	if e.search.lastMatch == -1 {
		e.search.direction = 1
	}

	if len(query) == 0 || len(e.row) == 0 {
		return
	}

	current := e.search.lastMatch
	for i := 0; i < len(e.row); i++ {
		current += e.search.direction
		if current == -1 {
			current = len(e.row) - 1
		} else if current == len(e.row) {
			current = 0
		}

		row := &e.row[current]
		match := bytes.Index(row.render, query)
		if match == -1 {
			continue
		}

		e.search.lastMatch = current
		e.cy = current
		e.cx = row.RxToCx(match)
		e.rowOffset = len(e.row)

		e.search.savedRow = current
		e.search.savedClass = append([]HighlightClass(nil), row.highlight...)
		for k := match; k < match+len(query) && k < len(row.highlight); k++ {
			row.highlight[k] = HLMatch
		}
		break
	}
}
