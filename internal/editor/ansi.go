package editor

// ANSI/VT100 escape sequences for terminal control. Strict subset per
// the terminal-output contract: no sequences beyond these are ever
// written.
const (
	clearScreen = "\x1b[2J" // erase entire screen
	clearLine   = "\x1b[K"  // erase from cursor to end of line
	cursorHome  = "\x1b[H"  // move cursor to (1,1)

	cursorHide = "\x1b[?25l"
	cursorShow = "\x1b[?25h"

	cursorToBottomRight = "\x1b[999C\x1b[999B" // window-size fallback probe
	cursorReportRequest = "\x1b[6n"

	cursorPositionFormat = "\x1b[%d;%dH" // row;col, both 1-based

	colorsReset  = "\x1b[m"
	colorsInvert = "\x1b[7m"

	sgrFormat = "\x1b[%dm"
)

// SGR foreground color codes. NUMBER and MATCH are fixed by spec; the
// rest are this module's own choice for the supplemented multi-class
// highlighter (see SPEC_FULL.md §10).
const (
	sgrResetForeground = 39

	colorDefault = 37
	colorNumber  = 31
	colorMatch   = 34
	colorComment = 36
	colorKeyword = 33
	colorType    = 32
	colorString  = 35
)
