package editor

// appendBuffer is the single write target for one frame: every piece
// of a refresh is appended to it, then written to the terminal with
// one write(2) call so the user never sees a partial frame.
//
// Go's append cannot fail silently the way the source's realloc-backed
// abAppend does on allocation failure — a real OOM here panics, same
// as everywhere else in the runtime — so there is no "allocation
// failure is silently ignored" branch to model; append already behaves
// that way for any size this editor will ever hit.
type appendBuffer struct {
	buf []byte
}

func (ab *appendBuffer) append(s string) {
	ab.buf = append(ab.buf, s...)
}

func (ab *appendBuffer) appendBytes(b []byte) {
	ab.buf = append(ab.buf, b...)
}
