package editor

// SelectSyntaxHighlight picks a builtin profile matching e.filename
// (or clears it to nil if none match / no filename is set) and
// re-highlights every row, per spec.md §3's syntax-profile match rule.
func (e *Editor) SelectSyntaxHighlight() {
	e.syntax = selectSyntax(e.filename)
	if len(e.row) > 0 {
		e.rehighlightFrom(0)
	}
}

// Syntax returns the active syntax profile, or nil.
func (e *Editor) Syntax() *Syntax { return e.syntax }
