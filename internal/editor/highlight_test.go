package editor

import "testing"

func TestUpdateHighlightNumbers(t *testing.T) {
	e := New(nil, nil, 0)
	e.filename = "main.c"
	e.SelectSyntaxHighlight()
	e.InsertRow(0, []byte("x = 42;"))

	row := e.Row(0)
	hl := row.Highlight()
	if len(hl) != len(row.Render()) {
		t.Fatalf("len(highlight)=%d, want len(render)=%d", len(hl), len(row.Render()))
	}

	for i, c := range row.Render() {
		want := HLNormal
		if c == '4' || c == '2' {
			want = HLNumber
		}
		if hl[i] != want {
			t.Errorf("highlight[%d] (byte %q) = %v, want %v", i, c, hl[i], want)
		}
	}
}

func TestUpdateHighlightDecimalContinuation(t *testing.T) {
	e := New(nil, nil, 0)
	e.filename = "main.c"
	e.SelectSyntaxHighlight()
	e.InsertRow(0, []byte("3.14"))

	row := e.Row(0)
	for i, c := range row.Render() {
		if c == '.' || (c >= '0' && c <= '9') {
			if row.Highlight()[i] != HLNumber {
				t.Errorf("highlight[%d] (byte %q) not HLNumber", i, c)
			}
		}
	}
}

func TestUpdateHighlightKeyword(t *testing.T) {
	e := New(nil, nil, 0)
	e.filename = "main.go"
	e.SelectSyntaxHighlight()
	e.InsertRow(0, []byte("func main"))

	row := e.Row(0)
	for i := 0; i < 4; i++ {
		if row.Highlight()[i] != HLKeyword2 {
			t.Errorf("highlight[%d] = %v, want HLKeyword2 for %q", i, row.Highlight()[i], "func")
		}
	}
}

func TestUpdateHighlightKeywordRequiresWordBoundary(t *testing.T) {
	e := New(nil, nil, 0)
	e.filename = "main.c"
	e.SelectSyntaxHighlight()
	e.InsertRow(0, []byte("intrinsic"))

	row := e.Row(0)
	for i, h := range row.Highlight() {
		if h == HLKeyword1 || h == HLKeyword2 {
			t.Errorf("highlight[%d] = %v, want no keyword match inside %q (not a standalone \"int\")", i, h, "intrinsic")
		}
	}
}

func TestUpdateHighlightStringSuppressesNumberClass(t *testing.T) {
	e := New(nil, nil, 0)
	e.filename = "main.c"
	e.SelectSyntaxHighlight()
	e.InsertRow(0, []byte(`"123"`))

	row := e.Row(0)
	for i, h := range row.Highlight() {
		if h != HLString {
			t.Errorf("highlight[%d] = %v, want HLString throughout the quoted literal", i, h)
		}
	}
}

func TestSelectSyntaxNoMatchLeavesNilProfile(t *testing.T) {
	e := New(nil, nil, 0)
	e.filename = "README"
	e.SelectSyntaxHighlight()

	if e.Syntax() != nil {
		t.Errorf("Syntax() = %v, want nil for an unmatched filename", e.Syntax())
	}
}

func TestBlockCommentCascadesAcrossRows(t *testing.T) {
	e := New(nil, nil, 0)
	e.filename = "main.c"
	e.SelectSyntaxHighlight()
	e.InsertRow(0, []byte("/* comment start"))
	e.InsertRow(1, []byte("still in comment"))
	e.InsertRow(2, []byte("end comment */"))
	e.InsertRow(3, []byte("code after"))

	allClass := func(row *Row, want HighlightClass) bool {
		for _, h := range row.Highlight() {
			if h != want {
				return false
			}
		}
		return true
	}

	if !allClass(e.Row(0), HLMLComment) {
		t.Errorf("row 0 highlight = %v, want every byte HLMLComment", e.Row(0).Highlight())
	}
	if !e.Row(0).openComment {
		t.Error("row 0 openComment = false, want true (comment still open at end of line)")
	}
	if !allClass(e.Row(1), HLMLComment) {
		t.Errorf("row 1 highlight = %v, want every byte HLMLComment", e.Row(1).Highlight())
	}
	if !e.Row(1).openComment {
		t.Error("row 1 openComment = false, want true (still inside the block comment)")
	}
	if !allClass(e.Row(2), HLMLComment) {
		t.Errorf("row 2 highlight = %v, want every byte HLMLComment (the closing */ included)", e.Row(2).Highlight())
	}
	if e.Row(2).openComment {
		t.Error("row 2 openComment = true, want false (comment closed mid-line)")
	}
	if !allClass(e.Row(3), HLNormal) {
		t.Errorf("row 3 highlight = %v, want every byte HLNormal (outside the comment)", e.Row(3).Highlight())
	}
	if e.Row(3).openComment {
		t.Error("row 3 openComment = true, want false")
	}

	// Rewrite row 0 so it opens and closes its own comment on one line.
	// The cascade must re-derive rows 1 and 2 (now plain text) and halt
	// as soon as a row's openComment stops changing, without needing to
	// touch row 3, which was already correct.
	e.DeleteRow(0)
	e.InsertRow(0, []byte("/* comment */"))

	if e.Row(0).openComment {
		t.Error("row 0 openComment = true after self-closing the comment, want false")
	}
	if allClass(e.Row(1), HLMLComment) {
		t.Errorf("row 1 highlight = %v, want plain text now that row 0's comment is closed", e.Row(1).Highlight())
	}
	if e.Row(1).openComment {
		t.Error("row 1 openComment = true, want false after the cascade re-derives it")
	}
	if allClass(e.Row(2), HLMLComment) {
		t.Errorf("row 2 highlight = %v, want plain text (no comment reaches this row anymore)", e.Row(2).Highlight())
	}
	if e.Row(2).openComment {
		t.Error("row 2 openComment = true, want false")
	}
	// row 3 was already correct (HLNormal, openComment false) before the
	// edit, so the early-exit in rehighlightFrom should have left it
	// alone without reprocessing it — verify it's still correct.
	if !allClass(e.Row(3), HLNormal) {
		t.Errorf("row 3 highlight = %v, want HLNormal untouched by the halted cascade", e.Row(3).Highlight())
	}
	if e.Row(3).openComment {
		t.Error("row 3 openComment = true, want false")
	}
}

func TestNoActiveSyntaxYieldsNormalHighlight(t *testing.T) {
	e := New(nil, nil, 0)
	e.InsertRow(0, []byte("42"))

	for _, h := range e.Row(0).Highlight() {
		if h != HLNormal {
			t.Errorf("highlight = %v, want HLNormal with no active syntax profile", h)
		}
	}
}
