package editor

// InsertChar inserts byte c at the cursor and advances cx. If the
// cursor sits on the virtual past-the-end line, a new empty row is
// created first.
func (e *Editor) InsertChar(c byte) {
	if e.cy == len(e.row) {
		e.InsertRow(len(e.row), nil)
	}
	e.rowInsertChar(e.cy, e.cx, c)
	e.cx++
}

// InsertNewline splits the current row at cx: if cx==0 an empty row is
// inserted before it; otherwise the text from cx onward becomes a new
// row and the current row is truncated. The cursor moves to the start
// of the new line.
func (e *Editor) InsertNewline() {
	if e.cx == 0 {
		e.InsertRow(e.cy, nil)
	} else {
		row := &e.row[e.cy]
		tail := append([]byte(nil), row.chars[e.cx:]...)
		e.InsertRow(e.cy+1, tail)

		row = &e.row[e.cy]
		row.chars = row.chars[:e.cx]
		e.rehighlightFrom(e.cy)
	}
	e.cy++
	e.cx = 0
}

// DeleteChar deletes the byte before the cursor, joining with the
// previous row if the cursor sits at column 0. A no-op on the virtual
// past-the-end line or at the very start of the buffer.
func (e *Editor) DeleteChar() {
	if e.cy == len(e.row) {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	if e.cx > 0 {
		e.rowDeleteChar(e.cy, e.cx-1)
		e.cx--
		return
	}

	row := &e.row[e.cy]
	e.cx = e.row[e.cy-1].Size()
	e.rowAppendString(e.cy-1, row.chars)
	e.DeleteRow(e.cy)
	e.cy--
}
