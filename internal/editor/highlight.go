package editor

import "bytes"

// HighlightClass is the per-rendered-byte highlight attribute.
type HighlightClass byte

const (
	HLNormal HighlightClass = iota
	HLComment
	HLMLComment
	HLKeyword1
	HLKeyword2
	HLString
	HLNumber
	HLMatch
)

// Syntax highlighting flags.
const (
	HighlightNumbers = 1 << 0
	HighlightStrings = 1 << 1
)

// Syntax is an immutable highlighter profile. filematch entries with a
// leading dot are matched as an exact filename suffix; entries without
// one are matched as a substring anywhere in the filename.
type Syntax struct {
	Filetype    string
	filematch   []string
	keywords    [][]string // [0]: primary keywords (HLKeyword1), [1]: type keywords (HLKeyword2)
	lineComment string
	blockOpen   string
	blockClose  string
	flags       int
}

// builtinSyntax is the set of syntax profiles codible ships with. The
// C-family profile is the one spec.md names; the Go profile is this
// module's own addition (SPEC_FULL.md §10.2) since codible's own
// sources are Go.
var builtinSyntax = []Syntax{
	{
		Filetype:  "c",
		filematch: []string{".c", ".h", ".cpp"},
		keywords: [][]string{
			{"switch", "if", "while", "for", "break", "continue", "return", "else",
				"struct", "union", "typedef", "static", "enum", "class", "case"},
			{"int", "long", "double", "float", "char", "unsigned", "signed", "void"},
		},
		lineComment: "//",
		blockOpen:   "/*",
		blockClose:  "*/",
		flags:       HighlightNumbers | HighlightStrings,
	},
	{
		Filetype:  "go",
		filematch: []string{".go", ".mod", ".sum"},
		keywords: [][]string{
			{"break", "case", "chan", "const", "continue", "default", "defer", "else",
				"fallthrough", "for", "go", "goto", "if", "import", "map", "package",
				"range", "return", "select", "struct", "switch", "type", "var"},
			{"interface", "func"},
		},
		lineComment: "//",
		blockOpen:   "/*",
		blockClose:  "*/",
		flags:       HighlightNumbers | HighlightStrings,
	},
}

// isSeparator reports whether c delimits a word: whitespace, NUL, or
// one of the punctuation bytes common to C-like syntax.
func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0:
		return true
	}
	return bytes.IndexByte([]byte(",.()+-/*=~%<>[];"), c) != -1
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// selectSyntax picks the first builtin profile whose filematch pattern
// matches filename, or nil if none match.
func selectSyntax(filename string) *Syntax {
	if filename == "" {
		return nil
	}
	for i := range builtinSyntax {
		s := &builtinSyntax[i]
		for _, pattern := range s.filematch {
			isExt := pattern[0] == '.'
			if isExt {
				if len(filename) >= len(pattern) && filename[len(filename)-len(pattern):] == pattern {
					return s
				}
			} else if bytes.Contains([]byte(filename), []byte(pattern)) {
				return s
			}
		}
	}
	return nil
}

// updateHighlight recomputes row.highlight from row.render given the
// active syntax profile (nil means every byte is HLNormal — the
// profile-less baseline spec.md's highlighter Non-goal preserves).
// openComment is whether the previous row ended inside an unterminated
// block comment; it returns the same for this row, so the caller can
// propagate it forward.
func (r *Row) updateHighlight(syntax *Syntax, openComment bool) bool {
	r.highlight = make([]HighlightClass, len(r.render))
	if syntax == nil {
		return false
	}

	lineComment := []byte(syntax.lineComment)
	blockOpen := []byte(syntax.blockOpen)
	blockClose := []byte(syntax.blockClose)

	prevSep := true
	var inString byte
	inComment := openComment

	render := r.render
	for i := 0; i < len(render); {
		c := render[i]
		prevHl := HLNormal
		if i > 0 {
			prevHl = r.highlight[i-1]
		}

		if len(lineComment) > 0 && inString == 0 && !inComment {
			if bytes.HasPrefix(render[i:], lineComment) {
				for j := i; j < len(render); j++ {
					r.highlight[j] = HLComment
				}
				break
			}
		}

		if len(blockOpen) > 0 && len(blockClose) > 0 && inString == 0 {
			if inComment {
				r.highlight[i] = HLMLComment
				if bytes.HasPrefix(render[i:], blockClose) {
					for j := 0; j < len(blockClose) && i+j < len(render); j++ {
						r.highlight[i+j] = HLMLComment
					}
					inComment = false
					i += len(blockClose)
					prevSep = true
					continue
				}
				i++
				continue
			} else if bytes.HasPrefix(render[i:], blockOpen) {
				inComment = true
				for j := 0; j < len(blockOpen) && i+j < len(render); j++ {
					r.highlight[i+j] = HLMLComment
				}
				i += len(blockOpen)
				continue
			}
		}

		if syntax.flags&HighlightStrings != 0 {
			if inString != 0 {
				r.highlight[i] = HLString
				if c == '\\' && i+1 < len(render) {
					r.highlight[i+1] = HLString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			} else if c == '"' || c == '\'' {
				inString = c
				r.highlight[i] = HLString
				i++
				continue
			}
		}

		if syntax.flags&HighlightNumbers != 0 {
			if (isDigit(c) && (prevSep || prevHl == HLNumber)) || (c == '.' && prevHl == HLNumber) {
				r.highlight[i] = HLNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if cls, length := matchKeyword(syntax.keywords, render[i:]); cls != HLNormal {
				for k := 0; k < length; k++ {
					r.highlight[i+k] = cls
				}
				i += length
				prevSep = false
				continue
			}
			prevSep = false
		} else {
			prevSep = isSeparator(c)
		}
		i++
	}

	return inComment
}

// matchKeyword looks for a whole-word keyword match at the start of
// rest, returning its class and length, or (HLNormal, 0) on no match.
func matchKeyword(keywords [][]string, rest []byte) (HighlightClass, int) {
	for set, words := range keywords {
		cls := HLKeyword1
		if set == 1 {
			cls = HLKeyword2
		}
		for _, kw := range words {
			if len(kw) <= len(rest) && bytes.Equal(rest[:len(kw)], []byte(kw)) {
				if len(rest) == len(kw) || isSeparator(rest[len(kw)]) {
					return cls, len(kw)
				}
			}
		}
	}
	return HLNormal, 0
}

// syntaxToColor maps a highlight class to its SGR foreground color
// code. NUMBER and MATCH are fixed by spec.md §4.5; the others are
// this module's own scheme for the supplemented classes.
func syntaxToColor(h HighlightClass) int {
	switch h {
	case HLNumber:
		return colorNumber
	case HLMatch:
		return colorMatch
	case HLComment, HLMLComment:
		return colorComment
	case HLKeyword1:
		return colorKeyword
	case HLKeyword2:
		return colorType
	case HLString:
		return colorString
	default:
		return colorDefault
	}
}
