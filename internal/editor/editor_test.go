package editor

import "testing"

func TestNewEditorStartsClean(t *testing.T) {
	e := New(nil, nil, 0)

	if e.Dirty() != 0 {
		t.Errorf("Dirty() = %d, want 0", e.Dirty())
	}
	if e.Filename() != "" {
		t.Errorf("Filename() = %q, want empty", e.Filename())
	}
	cx, cy := e.Cursor()
	if cx != 0 || cy != 0 {
		t.Errorf("Cursor() = (%d,%d), want (0,0)", cx, cy)
	}
	if e.quitTimes != QuitTimes {
		t.Errorf("quitTimes = %d, want %d", e.quitTimes, QuitTimes)
	}
	if e.search.lastMatch != -1 || e.search.direction != 1 {
		t.Errorf("search = %+v, want {lastMatch:-1, direction:1}", e.search)
	}
}

func TestCursorStaysWithinRowBounds(t *testing.T) {
	e := New(nil, nil, 0)
	e.InsertRow(0, []byte("abc"))
	e.InsertRow(1, []byte("de"))

	for _, key := range []Key{KeyArrowDown, KeyArrowDown, KeyArrowDown, KeyArrowUp, KeyArrowRight, KeyArrowRight, KeyArrowRight} {
		e.MoveCursor(key)
		if e.cy < 0 || e.cy > e.NumRows() {
			t.Fatalf("cy = %d out of [0,%d]", e.cy, e.NumRows())
		}
		rowlen := 0
		if e.cy < e.NumRows() {
			rowlen = e.Row(e.cy).Size()
		}
		if e.cx < 0 || e.cx > rowlen {
			t.Fatalf("cx = %d out of [0,%d] on row %d", e.cx, rowlen, e.cy)
		}
	}
}

func TestHighlightLengthAlwaysMatchesRenderLength(t *testing.T) {
	e := New(nil, nil, 0)
	e.filename = "x.go"
	e.SelectSyntaxHighlight()
	e.InsertRow(0, []byte("var x = 1 // trailing"))
	e.rowInsertChar(0, 0, '\t')

	row := e.Row(0)
	if len(row.Render()) != len(row.Highlight()) {
		t.Errorf("len(render)=%d, len(highlight)=%d, want equal", len(row.Render()), len(row.Highlight()))
	}
}
