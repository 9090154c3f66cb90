package editor

// PromptCallback observes each keystroke typed into a Prompt, along
// with the buffer as it stood after that keystroke was applied. Used
// by Find to drive incremental search (spec.md §9's "observer"
// design note).
type PromptCallback func(buf []byte, key Key)

// Prompt shows format (with a "%s" substituted for the live buffer) in
// the message bar and reads keystrokes until ENTER commits a non-empty
// buffer or ESC cancels. It returns (value, true) on commit or
// ("", false) on cancel. callback, if non-nil, is invoked after every
// keystroke including the final ENTER/ESC.
func (e *Editor) Prompt(format string, callback PromptCallback) (string, bool) {
	buf := make([]byte, 0, 128)

	for {
		e.SetStatusMessage(format, string(buf))
		e.RefreshScreen()

		key, err := ReadKey(e.in)
		if err != nil {
			e.ShowError("%v", err)
			continue
		}

		switch key {
		case KeyDelete, keyBackspace, ctrlKey('h'):
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}

		case keyEsc:
			e.SetStatusMessage("")
			if callback != nil {
				callback(buf, key)
			}
			return "", false

		case keyEnter:
			if len(buf) != 0 {
				e.SetStatusMessage("")
				if callback != nil {
					callback(buf, key)
				}
				return string(buf), true
			}

		default:
			if key < 128 && !isControlKey(key) {
				buf = append(buf, byte(key))
			}
		}

		if callback != nil {
			callback(buf, key)
		}
	}
}

func isControlKey(k Key) bool {
	return k < 32 || k == 127
}
