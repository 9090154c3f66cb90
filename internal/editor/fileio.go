package editor

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// RowsToString serializes the row store: each row's chars followed by
// a newline, no trailing-newline special case (file size is
// Σ(row.size+1)).
func (e *Editor) RowsToString() []byte {
	var buf strings.Builder
	total := 0
	for _, row := range e.row {
		total += len(row.chars) + 1
	}
	buf.Grow(total)
	for _, row := range e.row {
		buf.Write(row.chars)
		buf.WriteByte('\n')
	}
	return []byte(buf.String())
}

// Open replaces the current buffer with path's contents, splitting on
// '\n' and stripping a trailing '\r'. Activates any matching syntax
// profile before loading so InsertRow's first highlight pass already
// has the right profile. Resets dirty to 0 on success.
func (e *Editor) Open(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return &FileOpenError{Path: path, Err: err}
	}
	defer file.Close()

	e.filename = path
	e.row = nil
	e.cx, e.cy = 0, 0
	e.rowOffset, e.colOffset = 0, 0
	e.rx = 0
	e.mode = ModeEdit
	e.SelectSyntaxHighlight()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		e.InsertRow(len(e.row), line)
	}
	if err := scanner.Err(); err != nil {
		return &FileOpenError{Path: path, Err: err}
	}

	e.dirty = 0
	return nil
}

// Save writes the row store to e.filename, prompting for a name first
// if none is set. On any failure it sets a status-bar message and
// preserves dirty; on success it resets dirty to 0.
func (e *Editor) Save() {
	if e.filename == "" {
		name, ok := e.Prompt("Save as: %s (ESC to cancel)", nil)
		if !ok || name == "" {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.filename = name
		e.SelectSyntaxHighlight()
	}

	buf := e.RowsToString()

	file, err := os.OpenFile(e.filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		e.SetStatusMessage("%s", (&FileSaveError{Err: err}).Error())
		return
	}
	defer file.Close()

	if err := file.Truncate(int64(len(buf))); err != nil {
		e.SetStatusMessage("%s", (&FileSaveError{Err: err}).Error())
		return
	}

	n, err := file.Write(buf)
	if err != nil {
		e.SetStatusMessage("%s", (&FileSaveError{Err: err}).Error())
		return
	}
	if n != len(buf) {
		e.SetStatusMessage("%s", (&FileSaveError{Err: fmt.Errorf("partial write %d/%d bytes", n, len(buf))}).Error())
		return
	}

	e.SetStatusMessage("%d bytes written to disk", len(buf))
	e.dirty = 0
}
