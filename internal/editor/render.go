package editor

import (
	"fmt"
	"time"
)

// messageTTL is how long a status-bar message stays visible after
// being set (spec.md §3).
const messageTTL = 5 * time.Second

// RefreshScreen produces one frame — rows, status bar, message bar,
// cursor placement — into a single append buffer and writes it to the
// terminal in one call, so no caller ever observes a partial frame.
func (e *Editor) RefreshScreen() {
	e.Scroll()

	var ab appendBuffer
	ab.append(cursorHide)
	ab.append(cursorHome)

	e.drawRows(&ab)
	e.drawStatusBar(&ab)
	e.drawMessageBar(&ab)

	ab.append(fmt.Sprintf(cursorPositionFormat, e.cy-e.rowOffset+1, e.rx-e.colOffset+1))
	ab.append(cursorShow)

	e.out.Write(ab.buf)
}

func (e *Editor) drawRows(ab *appendBuffer) {
	for y := 0; y < e.screenRows; y++ {
		filerow := y + e.rowOffset
		if filerow >= len(e.row) {
			if len(e.row) == 0 && y == e.screenRows/3 {
				e.drawWelcome(ab)
			} else {
				ab.append("~")
			}
		} else {
			e.drawContentLine(ab, &e.row[filerow])
		}
		ab.append(fmt.Sprintf(sgrFormat, sgrResetForeground))
		ab.append(clearLine)
		ab.append("\r\n")
	}
}

func (e *Editor) drawWelcome(ab *appendBuffer) {
	welcome := "Codible -- version " + Version
	if len(welcome) > e.screenCols {
		welcome = welcome[:e.screenCols]
	}
	padding := (e.screenCols - len(welcome)) / 2
	if padding > 0 {
		ab.append("~")
		padding--
	}
	for i := 0; i < padding; i++ {
		ab.append(" ")
	}
	ab.append(welcome)
}

func (e *Editor) drawContentLine(ab *appendBuffer, row *Row) {
	render := row.render
	hl := row.highlight

	start := e.colOffset
	length := len(render) - start
	if length < 0 {
		length = 0
	}
	if length > e.screenCols {
		length = e.screenCols
	}

	currentColor := -1
	for j := 0; j < length; j++ {
		c := render[start+j]
		h := hl[start+j]
		if h == HLNormal {
			if currentColor != colorDefault {
				ab.append(fmt.Sprintf(sgrFormat, colorDefault))
				currentColor = colorDefault
			}
			ab.appendBytes([]byte{c})
			continue
		}
		color := syntaxToColor(h)
		if color != currentColor {
			ab.append(fmt.Sprintf(sgrFormat, color))
			currentColor = color
		}
		ab.appendBytes([]byte{c})
	}
}

func (e *Editor) drawStatusBar(ab *appendBuffer) {
	ab.append(colorsInvert)

	filename := "[No Name]"
	if e.filename != "" {
		filename = e.filename
		if len(filename) > 20 {
			filename = filename[:20]
		}
	}
	dirtyFlag := ""
	if e.dirty > 0 {
		dirtyFlag = "(modified)"
	}

	var status string
	if e.mode == ModeExplorer {
		status = fmt.Sprintf("Explorer - %s %s", filename, dirtyFlag)
	} else {
		status = fmt.Sprintf("%.20s - %d lines %s", filename, len(e.row), dirtyFlag)
	}
	if len(status) > e.screenCols {
		status = status[:e.screenCols]
	}

	filetype := "no filetype"
	if e.syntax != nil {
		filetype = e.syntax.Filetype
	}
	rstatus := fmt.Sprintf("%s | %d/%d", filetype, e.cy+1, len(e.row))

	ab.append(status)
	col := len(status)
	for col < e.screenCols {
		if e.screenCols-col == len(rstatus) {
			ab.append(rstatus)
			break
		}
		ab.append(" ")
		col++
	}

	ab.append(colorsReset)
	ab.append("\r\n")
}

func (e *Editor) drawMessageBar(ab *appendBuffer) {
	ab.append(clearLine)
	if time.Since(e.statusMessageTime) >= messageTTL {
		return
	}
	msg := e.statusMessage
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	ab.append(msg)
}

// SetStatusMessage formats a message into the (bounded) message bar
// and stamps it with the current time for the 5-second TTL.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > 80 {
		msg = msg[:80]
	}
	e.statusMessage = msg
	e.statusMessageTime = time.Now()
}

// ShowError surfaces a non-fatal error in the status bar instead of
// terminating the process.
func (e *Editor) ShowError(format string, args ...any) {
	e.SetStatusMessage("Warn: "+format, args...)
}
