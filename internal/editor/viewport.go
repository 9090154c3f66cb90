package editor

// Scroll recomputes rx from the logical cursor and adjusts rowOffset/
// colOffset so the cursor stays within the viewport, per spec.md
// §4.8. Called once per frame, before composition.
func (e *Editor) Scroll() {
	e.rx = 0
	if e.cy < len(e.row) {
		e.rx = e.row[e.cy].CxToRx(e.cx)
	}

	if e.cy < e.rowOffset {
		e.rowOffset = e.cy
	}
	if e.cy >= e.rowOffset+e.screenRows {
		e.rowOffset = e.cy - e.screenRows + 1
	}

	if e.rx < e.colOffset {
		e.colOffset = e.rx
	}
	if e.rx >= e.colOffset+e.screenCols {
		e.colOffset = e.rx - e.screenCols + 1
	}
}

// MoveCursor applies one of the arrow keys to (cx, cy), wrapping at
// line boundaries and clamping cx to the landing row's size.
func (e *Editor) MoveCursor(key Key) {
	switch key {
	case KeyArrowLeft:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = e.row[e.cy].Size()
		}
	case KeyArrowRight:
		if e.cy < len(e.row) {
			if e.cx < e.row[e.cy].Size() {
				e.cx++
			} else {
				e.cy++
				e.cx = 0
			}
		}
	case KeyArrowUp:
		if e.cy != 0 {
			e.cy--
		}
	case KeyArrowDown:
		if e.cy < len(e.row) {
			e.cy++
		}
	}

	rowlen := 0
	if e.cy < len(e.row) {
		rowlen = e.row[e.cy].Size()
	}
	if e.cx > rowlen {
		e.cx = rowlen
	}
}

// PageUp snaps cy to the top of the viewport, then scrolls up by one
// screenful of MoveCursor(UP) calls.
func (e *Editor) PageUp() {
	e.cy = e.rowOffset
	for i := 0; i < e.screenRows; i++ {
		e.MoveCursor(KeyArrowUp)
	}
}

// PageDown snaps cy to the bottom of the viewport, then scrolls down
// by one screenful of MoveCursor(DOWN) calls.
func (e *Editor) PageDown() {
	e.cy = e.rowOffset + e.screenRows - 1
	if e.cy > len(e.row) {
		e.cy = len(e.row)
	}
	for i := 0; i < e.screenRows; i++ {
		e.MoveCursor(KeyArrowDown)
	}
}

// Home moves the cursor to the start of the current line.
func (e *Editor) Home() { e.cx = 0 }

// End moves the cursor to the end of the current line (a no-op on the
// virtual past-the-end line).
func (e *Editor) End() {
	if e.cy < len(e.row) {
		e.cx = e.row[e.cy].Size()
	}
}
