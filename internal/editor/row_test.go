package editor

import "testing"

func TestRowInsertRowTabExpansion(t *testing.T) {
	e := New(nil, nil, 0)
	e.InsertRow(0, []byte("a\tb"))

	row := e.Row(0)
	if got, want := len(row.Render()), 9; got != want {
		t.Fatalf("rsize = %d, want %d", got, want)
	}
	if got, want := len(row.Highlight()), len(row.Render()); got != want {
		t.Fatalf("len(highlight) = %d, want len(render) = %d", got, want)
	}
}

func TestRowCxToRxTabExpansion(t *testing.T) {
	e := New(nil, nil, 0)
	e.InsertRow(0, []byte("a\tb"))
	row := e.Row(0)

	cases := []struct{ cx, rx int }{
		{0, 0},
		{1, 1},
		{2, 8},
	}
	for _, c := range cases {
		if got := row.CxToRx(c.cx); got != c.rx {
			t.Errorf("CxToRx(%d) = %d, want %d", c.cx, got, c.rx)
		}
	}
}

func TestRowCxRxRoundTrip(t *testing.T) {
	e := New(nil, nil, 0)
	e.InsertRow(0, []byte("x\ty\tz"))
	row := e.Row(0)

	for cx := 0; cx <= row.Size(); cx++ {
		rx := row.CxToRx(cx)
		if got := row.RxToCx(rx); got != cx {
			t.Errorf("RxToCx(CxToRx(%d)=%d) = %d, want %d", cx, rx, got, cx)
		}
	}
}

func TestDeleteRowShiftsIndices(t *testing.T) {
	e := New(nil, nil, 0)
	e.InsertRow(0, []byte("one"))
	e.InsertRow(1, []byte("two"))
	e.InsertRow(2, []byte("three"))

	e.DeleteRow(1)

	if got := e.NumRows(); got != 2 {
		t.Fatalf("NumRows() = %d, want 2", got)
	}
	if got := string(e.Row(0).Chars()); got != "one" {
		t.Errorf("row 0 = %q, want %q", got, "one")
	}
	if got := string(e.Row(1).Chars()); got != "three" {
		t.Errorf("row 1 = %q, want %q", got, "three")
	}
}

func TestRowInsertCharClampsAt(t *testing.T) {
	e := New(nil, nil, 0)
	e.InsertRow(0, []byte("ab"))

	e.rowInsertChar(0, 99, 'x')

	if got, want := string(e.Row(0).Chars()), "abx"; got != want {
		t.Errorf("chars = %q, want %q", got, want)
	}
}
