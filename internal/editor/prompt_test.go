package editor

import (
	"bytes"
	"testing"
)

func newPromptEditor(input string) *Editor {
	var out bytes.Buffer
	e := New(bytes.NewReader([]byte(input)), &out, 0)
	e.screenRows, e.screenCols = 24, 80
	return e
}

func TestPromptCommitsOnEnter(t *testing.T) {
	e := newPromptEditor("hello\r")

	got, ok := e.Prompt("Save as: %s", nil)
	if !ok {
		t.Fatal("Prompt returned ok=false, want true")
	}
	if got != "hello" {
		t.Errorf("Prompt() = %q, want %q", got, "hello")
	}
}

func TestPromptCancelsOnEscape(t *testing.T) {
	e := newPromptEditor("partial\x1b")

	got, ok := e.Prompt("Save as: %s", nil)
	if ok {
		t.Fatal("Prompt returned ok=true, want false on ESC")
	}
	if got != "" {
		t.Errorf("Prompt() = %q, want empty string on cancel", got)
	}
}

func TestPromptBackspaceRemovesLastByte(t *testing.T) {
	e := newPromptEditor("ab\x7f\r")

	got, ok := e.Prompt("Search: %s", nil)
	if !ok {
		t.Fatal("Prompt returned ok=false, want true")
	}
	if got != "a" {
		t.Errorf("Prompt() = %q, want %q", got, "a")
	}
}

func TestPromptEmptyEnterKeepsPrompting(t *testing.T) {
	e := newPromptEditor("\rx\r")

	got, ok := e.Prompt("Search: %s", nil)
	if !ok {
		t.Fatal("Prompt returned ok=false, want true")
	}
	if got != "x" {
		t.Errorf("Prompt() = %q, want %q (empty ENTER should not commit)", got, "x")
	}
}

func TestPromptCallbackInvokedPerKeystroke(t *testing.T) {
	e := newPromptEditor("ab\r")
	var seen []string

	e.Prompt("Search: %s", func(buf []byte, key Key) {
		seen = append(seen, string(buf))
	})

	if len(seen) < 2 {
		t.Fatalf("callback invoked %d times, want at least 2", len(seen))
	}
}
