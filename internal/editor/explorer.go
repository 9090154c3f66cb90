package editor

import (
	"fmt"
	"os"
	"strings"
)

// ExplorerScreen implements ModalScreen, browsing the filesystem and
// opening a selected file into the editor (SPEC_FULL.md §10.5, grounded
// on the teacher's ExplorerScreen). Entries are plain ASCII markers
// rather than the teacher's emoji icons, since codible's row model is
// single-byte-per-cell only (spec.md's Non-goals exclude Unicode).
type ExplorerScreen struct {
	currentDir   string
	files        []os.DirEntry
	hasParentDir bool
	content      []Row
}

func newExplorerScreen(e *Editor, startDir string) *ExplorerScreen {
	ex := &ExplorerScreen{currentDir: startDir}
	if err := ex.refresh(); err != nil {
		e.ShowError("Failed to read directory: %v", err)
		return nil
	}
	return ex
}

func (ex *ExplorerScreen) refresh() error {
	files, err := os.ReadDir(ex.currentDir)
	if err != nil {
		return err
	}
	ex.files = files
	ex.hasParentDir = ex.currentDir != "." && ex.currentDir != "/"
	ex.content = ex.buildRows()
	return nil
}

func (ex *ExplorerScreen) buildRows() []Row {
	rows := make([]Row, 0, len(ex.files)+2)

	header := Row{chars: []byte(fmt.Sprintf("=== File Explorer: %s ===", ex.currentDir))}
	header.refresh(nil, false)
	rows = append(rows, header)

	if ex.hasParentDir {
		parent := Row{chars: []byte("  .. (parent directory)")}
		parent.refresh(nil, false)
		rows = append(rows, parent)
	}

	for _, file := range ex.files {
		row := Row{chars: []byte(describeEntry(file))}
		row.refresh(nil, false)
		rows = append(rows, row)
	}
	return rows
}

func describeEntry(file os.DirEntry) string {
	if file.IsDir() {
		return fmt.Sprintf("  [DIR]  %s/", file.Name())
	}
	size := ""
	if info, err := file.Info(); err == nil {
		size = fmt.Sprintf(" (%d bytes)", info.Size())
	}
	return fmt.Sprintf("  [FILE] %s%s", file.Name(), size)
}

func (ex *ExplorerScreen) Content() []Row { return ex.content }

func (ex *ExplorerScreen) StatusMessage() string {
	return fmt.Sprintf("Explorer: %s - %d items (ENTER=open, 'q'/ESC=quit)", ex.currentDir, len(ex.files))
}

func (ex *ExplorerScreen) firstEntryRow() int {
	if ex.hasParentDir {
		return 1
	}
	return 1
}

func (ex *ExplorerScreen) Initialize(e *Editor) {
	e.cy = ex.firstEntryRow()
	ex.highlightSelection(e)
}

func (ex *ExplorerScreen) HandleKey(e *Editor, key Key) (close bool, restore bool) {
	switch key {
	case Key('q'), Key('Q'), keyEsc:
		return true, true

	case KeyArrowUp, KeyArrowDown:
		ex.move(e, key)
		ex.highlightSelection(e)

	case keyEnter:
		opened, err := ex.openSelection(e)
		if err != nil {
			e.ShowError("%v", err)
			return false, false
		}
		if opened {
			return true, false
		}
		e.cy = ex.firstEntryRow()
		e.rowOffset = 0
		e.row = ex.content
		e.SetStatusMessage("%s", ex.StatusMessage())
	}
	return false, false
}

func (ex *ExplorerScreen) move(e *Editor, key Key) {
	maxItems := len(ex.files)
	if ex.hasParentDir {
		maxItems++
	}
	switch key {
	case KeyArrowUp:
		if e.cy > 1 {
			e.cy--
		}
	case KeyArrowDown:
		if e.cy < maxItems {
			e.cy++
		}
	}
}

func (ex *ExplorerScreen) highlightSelection(e *Editor) {
	if e.cy <= 0 || e.cy >= len(ex.content) {
		return
	}
	for i := 1; i < len(ex.content); i++ {
		for j := range ex.content[i].highlight {
			ex.content[i].highlight[j] = HLNormal
		}
	}
	for j := range ex.content[e.cy].highlight {
		ex.content[e.cy].highlight[j] = HLMatch
	}
	e.row = ex.content
}

// openSelection either opens the highlighted regular file into the
// editor (opened=true), navigates into/out of a directory (opened=false,
// content refreshed in place), or reports an error.
func (ex *ExplorerScreen) openSelection(e *Editor) (opened bool, err error) {
	selected := e.cy - 1

	if ex.hasParentDir && selected == 0 {
		parent := ".."
		if ex.currentDir != "." {
			if i := strings.LastIndex(ex.currentDir, "/"); i != -1 {
				parent = ex.currentDir[:i]
				if parent == "" {
					parent = "."
				}
			} else {
				parent = "."
			}
		}
		ex.currentDir = parent
		return false, ex.refresh()
	}

	if ex.hasParentDir {
		selected--
	}
	if selected < 0 || selected >= len(ex.files) {
		return false, nil
	}

	entry := ex.files[selected]
	if entry.IsDir() {
		newDir := entry.Name()
		if ex.currentDir != "." {
			newDir = ex.currentDir + "/" + newDir
		}
		ex.currentDir = newDir
		return false, ex.refresh()
	}

	if e.dirty > 0 {
		e.SetStatusMessage("File has unsaved changes")
		return false, nil
	}

	path := entry.Name()
	if ex.currentDir != "." {
		path = ex.currentDir + "/" + path
	}
	if err := e.Open(path); err != nil {
		return false, err
	}
	return true, nil
}

// Explorer opens the file-browser overlay rooted at the current
// working directory.
func (e *Editor) Explorer() {
	screen := newExplorerScreen(e, ".")
	if screen == nil {
		return
	}
	e.runModal(ModeExplorer, screen)
}
