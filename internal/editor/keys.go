package editor

import "io"

// Key is a decoded logical key. Values in [0,256) are raw byte values
// (including BACKSPACE==127); named keys start at 1000 and are
// disjoint from every possible byte value.
type Key int

const keyBackspace Key = 127

const (
	KeyArrowLeft Key = iota + 1000
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

const (
	keyEsc   Key = 0x1b
	keyEnter Key = '\r'
)

// ctrlKey maps a lowercase ASCII letter to its control-key equivalent,
// e.g. ctrlKey('q') == Ctrl-Q.
func ctrlKey(c byte) Key {
	return Key(c & 0x1f)
}

// readByte blocks until one byte has arrived, silently retrying on a
// zero-byte read that carries no error. It returns only on a genuine
// byte or a read error.
func readByte(r io.Reader) (byte, error) {
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n == 1 {
			return buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// readByteOrTimeout reads one byte, but treats any error (including a
// timeout with nothing pending) as "nothing arrived in time" rather
// than a hard failure — used inside escape-sequence decoding, where a
// stalled continuation byte degrades to a bare ESC rather than
// aborting the whole read.
func readByteOrTimeout(r io.Reader) (byte, bool) {
	buf := make([]byte, 1)
	n, err := r.Read(buf)
	if n == 1 {
		return buf[0], true
	}
	_ = err
	return 0, false
}

// ReadKey reads one logical key from r. It blocks (re-reading past
// zero-byte reads) until a byte is available, then decodes it:
// a bare byte that isn't ESC is returned as itself (127 as
// keyBackspace); an ESC byte opens the CSI/SS3 sub-decoder. Any byte
// in a sequence that fails to arrive, or a sequence this editor
// doesn't recognize, degrades to a bare ESC rather than propagating an
// error — only a true failure of the first read is a *ReadError.
func ReadKey(r io.Reader) (Key, error) {
	b, err := readByte(r)
	if err != nil {
		return 0, &ReadError{Err: err}
	}
	if b != byte(keyEsc) {
		return Key(b), nil
	}

	b1, ok := readByteOrTimeout(r)
	if !ok {
		return keyEsc, nil
	}

	switch b1 {
	case '[':
		b2, ok := readByteOrTimeout(r)
		if !ok {
			return keyEsc, nil
		}
		if b2 >= '0' && b2 <= '9' {
			b3, ok := readByteOrTimeout(r)
			if !ok || b3 != '~' {
				return keyEsc, nil
			}
			switch b2 {
			case '1', '7':
				return KeyHome, nil
			case '3':
				return KeyDelete, nil
			case '4', '8':
				return KeyEnd, nil
			case '5':
				return KeyPageUp, nil
			case '6':
				return KeyPageDown, nil
			}
			return keyEsc, nil
		}
		switch b2 {
		case 'A':
			return KeyArrowUp, nil
		case 'B':
			return KeyArrowDown, nil
		case 'C':
			return KeyArrowRight, nil
		case 'D':
			return KeyArrowLeft, nil
		case 'H':
			return KeyHome, nil
		case 'F':
			return KeyEnd, nil
		}
		return keyEsc, nil

	case 'O':
		b2, ok := readByteOrTimeout(r)
		if !ok {
			return keyEsc, nil
		}
		switch b2 {
		case 'H':
			return KeyHome, nil
		case 'F':
			return KeyEnd, nil
		}
		return keyEsc, nil
	}

	return keyEsc, nil
}
