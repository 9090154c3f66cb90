package editor

import "slices"

// TabStop is the column width a tab expands to, per spec.md §3.
const TabStop = 8

// Row holds one line of text in its dual representation: chars is the
// logical byte sequence the user edits; render is chars after tab
// expansion (the only rendering transform codible performs — no other
// byte is changed); highlight carries one class per rendered byte and
// is always the same length as render.
type Row struct {
	chars       []byte
	render      []byte
	highlight   []HighlightClass
	openComment bool // true if a block comment is still open at end of row
}

// Size is the logical length of the row.
func (r *Row) Size() int { return len(r.chars) }

// Chars returns the row's logical bytes. The slice is owned by the
// row; callers must not retain it across a mutation.
func (r *Row) Chars() []byte { return r.chars }

// Render returns the row's rendered bytes.
func (r *Row) Render() []byte { return r.render }

// Highlight returns the row's per-byte highlight classes.
func (r *Row) Highlight() []HighlightClass { return r.highlight }

// refresh recomputes render and highlight from chars. Called after
// every mutation so no caller ever observes chars out of sync with its
// derived fields (spec.md §3's core invariant).
func (r *Row) refresh(e *Editor, openComment bool) bool {
	tabs := 0
	for _, c := range r.chars {
		if c == '\t' {
			tabs++
		}
	}

	render := make([]byte, 0, len(r.chars)+tabs*(TabStop-1))
	for _, c := range r.chars {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%TabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	r.render = render

	var syntax *Syntax
	if e != nil {
		syntax = e.syntax
	}
	return r.updateHighlight(syntax, openComment)
}

// CxToRx converts a logical column to its rendered column, expanding
// tabs to the next TabStop boundary.
func (r *Row) CxToRx(cx int) int {
	rx := 0
	for j := 0; j < cx && j < len(r.chars); j++ {
		if r.chars[j] == '\t' {
			rx += TabStop - (rx % TabStop)
		} else {
			rx++
		}
	}
	return rx
}

// RxToCx converts a rendered column back to the smallest logical
// column whose rendered position is >= rx.
func (r *Row) RxToCx(rx int) int {
	curRx := 0
	cx := 0
	for ; cx < len(r.chars); cx++ {
		if r.chars[cx] == '\t' {
			curRx += TabStop - 1 - (curRx % TabStop)
		}
		curRx++
		if curRx > rx {
			return cx
		}
	}
	return cx
}

// rehighlightFrom re-derives highlight continuation (open block
// comments) for every row from idx onward, stopping as soon as a
// row's open-comment state doesn't change — mirrors the teacher's
// cascading re-highlight on a multi-line comment toggling.
func (e *Editor) rehighlightFrom(idx int) {
	open := false
	if idx > 0 {
		open = e.row[idx-1].openComment
	}
	for i := idx; i < len(e.row); i++ {
		newOpen := e.row[i].refresh(e, open)
		changed := e.row[i].openComment != newOpen
		e.row[i].openComment = newOpen
		open = newOpen
		if !changed && i > idx {
			break
		}
	}
}

// InsertRow inserts a new row at index at, which must lie in
// [0, numrows], holding the given logical bytes. An out-of-range at is
// ignored: no row is inserted.
func (e *Editor) InsertRow(at int, text []byte) {
	if at < 0 || at > len(e.row) {
		return
	}
	nr := Row{chars: slices.Clone(text)}
	e.row = slices.Insert(e.row, at, nr)
	e.rehighlightFrom(at)
	e.dirty++
}

// DeleteRow removes the row at at.
func (e *Editor) DeleteRow(at int) {
	if at < 0 || at >= len(e.row) {
		return
	}
	e.row = slices.Delete(e.row, at, at+1)
	if at < len(e.row) {
		e.rehighlightFrom(at)
	}
	e.dirty++
}

// NumRows is the current number of rows in the store.
func (e *Editor) NumRows() int { return len(e.row) }

// Row returns the row at index i. Callers within [0, NumRows) only.
func (e *Editor) Row(i int) *Row { return &e.row[i] }

// rowInsertChar inserts byte c at logical position at in row idx,
// clamped to [0, row.Size()].
func (e *Editor) rowInsertChar(idx, at int, c byte) {
	row := &e.row[idx]
	if at < 0 {
		at = 0
	} else if at > len(row.chars) {
		at = len(row.chars)
	}
	row.chars = slices.Insert(row.chars, at, c)
	e.rehighlightFrom(idx)
	e.dirty++
}

// rowDeleteChar deletes the byte at at in row idx; a no-op if out of
// range.
func (e *Editor) rowDeleteChar(idx, at int) {
	row := &e.row[idx]
	if at < 0 || at >= len(row.chars) {
		return
	}
	row.chars = slices.Delete(row.chars, at, at+1)
	e.rehighlightFrom(idx)
	e.dirty++
}

// rowAppendString appends s to the end of row idx's chars.
func (e *Editor) rowAppendString(idx int, s []byte) {
	row := &e.row[idx]
	row.chars = append(row.chars, s...)
	e.rehighlightFrom(idx)
	e.dirty++
}
