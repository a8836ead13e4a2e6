// Package scalarindex builds a structural offset index from plain JSON
// text using an ordinary scalar, byte-at-a-time scan. It exists only to
// synthesize (buf, offsets) fixtures for this repository's own tests; it is
// not a stand-in for a real SIMD Stage 1 classifier and carries no
// performance requirement.
//
// The string-escape skipping, number-shape validation, and literal
// recognition below are adapted from a rune-based lexical scanner, reworked
// to record byte offsets of structurals instead of emitting a token stream.
package scalarindex

import (
	"fmt"

	"go4.org/mem"
)

// Build scans buf as JSON text and returns the ordered byte offsets of every
// structural byte within it: the opening quote of each key or string value,
// the first byte of each number, boolean, or null literal, and each of
// "{ } [ ] , :". It returns an error if buf is not well-formed enough to
// locate those offsets (an unterminated string, a malformed number, an
// unrecognized literal, or a stray byte).
//
// Build does not itself enforce JSON grammar above the lexical level — that
// is Walk's job once the index it returns is handed to an Iterator. A
// structurally nonsensical but lexically clean document (e.g. two top-level
// numbers back to back) still yields an index; Walk is what rejects it.
func Build(buf []byte) ([]uint32, error) {
	s := &scanner{buf: buf}
	var offsets []uint32
	for {
		ok, err := s.skipSpace()
		if err != nil {
			return nil, err
		}
		if !ok {
			return offsets, nil
		}
		off := s.pos
		ch := s.buf[s.pos]
		switch {
		case isSelfDelim(ch):
			offsets = append(offsets, uint32(off))
			s.pos++
		case ch == '"':
			offsets = append(offsets, uint32(off))
			if err := s.scanString(); err != nil {
				return nil, err
			}
		case ch == '-' || isDigit(ch):
			offsets = append(offsets, uint32(off))
			if err := s.scanNumber(); err != nil {
				return nil, err
			}
		case ch == 't':
			offsets = append(offsets, uint32(off))
			if err := s.scanLiteral(mem.S("true")); err != nil {
				return nil, err
			}
		case ch == 'f':
			offsets = append(offsets, uint32(off))
			if err := s.scanLiteral(mem.S("false")); err != nil {
				return nil, err
			}
		case ch == 'n':
			offsets = append(offsets, uint32(off))
			if err := s.scanLiteral(mem.S("null")); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("scalarindex: unexpected byte %q at offset %d", ch, off)
		}
	}
}

type scanner struct {
	buf []byte
	pos int
}

func (s *scanner) atEnd() bool { return s.pos >= len(s.buf) }

// skipSpace advances past run of whitespace and reports whether any byte
// remains to be classified.
func (s *scanner) skipSpace() (bool, error) {
	for !s.atEnd() && isSpace(s.buf[s.pos]) {
		s.pos++
	}
	return !s.atEnd(), nil
}

func (s *scanner) scanString() error {
	start := s.pos
	s.pos++ // past opening quote
	for {
		if s.atEnd() {
			return fmt.Errorf("scalarindex: unterminated string starting at offset %d", start)
		}
		ch := s.buf[s.pos]
		switch {
		case ch == '"':
			s.pos++
			return nil
		case ch == '\\':
			if s.pos+1 >= len(s.buf) {
				return fmt.Errorf("scalarindex: dangling escape at offset %d", s.pos)
			}
			esc := s.buf[s.pos+1]
			switch esc {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				s.pos += 2
			case 'u':
				if s.pos+6 > len(s.buf) {
					return fmt.Errorf("scalarindex: truncated \\u escape at offset %d", s.pos)
				}
				for i := 2; i < 6; i++ {
					if !isHexDigit(s.buf[s.pos+i]) {
						return fmt.Errorf("scalarindex: invalid hex digit in \\u escape at offset %d", s.pos+i)
					}
				}
				s.pos += 6
			default:
				return fmt.Errorf("scalarindex: invalid escape %q at offset %d", esc, s.pos)
			}
		case ch < 0x20:
			return fmt.Errorf("scalarindex: unescaped control byte in string at offset %d", s.pos)
		default:
			s.pos++
		}
	}
}

func (s *scanner) scanNumber() error {
	start := s.pos
	if s.buf[s.pos] == '-' {
		s.pos++
		if s.atEnd() || !isDigit(s.buf[s.pos]) {
			return fmt.Errorf("scalarindex: missing digit after sign at offset %d", start)
		}
	}

	digitsStart := s.pos
	for !s.atEnd() && isDigit(s.buf[s.pos]) {
		s.pos++
	}
	if hasExtraLeadingZeroes(s.buf[digitsStart:s.pos]) {
		return fmt.Errorf("scalarindex: extra leading zeroes at offset %d", digitsStart)
	}

	if !s.atEnd() && s.buf[s.pos] == '.' {
		s.pos++
		fracStart := s.pos
		for !s.atEnd() && isDigit(s.buf[s.pos]) {
			s.pos++
		}
		if s.pos == fracStart {
			return fmt.Errorf("scalarindex: no digits after decimal point at offset %d", fracStart)
		}
	}

	if !s.atEnd() && (s.buf[s.pos] == 'e' || s.buf[s.pos] == 'E') {
		s.pos++
		if !s.atEnd() && (s.buf[s.pos] == '+' || s.buf[s.pos] == '-') {
			s.pos++
		}
		expStart := s.pos
		for !s.atEnd() && isDigit(s.buf[s.pos]) {
			s.pos++
		}
		if s.pos == expStart {
			return fmt.Errorf("scalarindex: missing exponent digits at offset %d", expStart)
		}
	}
	return nil
}

func (s *scanner) scanLiteral(want mem.RO) error {
	start := s.pos
	n := want.Len()
	if s.pos+n > len(s.buf) {
		return fmt.Errorf("scalarindex: truncated literal at offset %d", start)
	}
	got := mem.B(s.buf[s.pos : s.pos+n])
	if !got.Equal(want) {
		return fmt.Errorf("scalarindex: unknown literal %q at offset %d", s.buf[s.pos:s.pos+n], start)
	}
	s.pos += n
	if !s.atEnd() && isNameRune(s.buf[s.pos]) {
		return fmt.Errorf("scalarindex: unexpected trailing byte %q after literal at offset %d", s.buf[s.pos], s.pos)
	}
	return nil
}

func isSpace(ch byte) bool     { return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' }
func isDigit(ch byte) bool     { return ch >= '0' && ch <= '9' }
func isNameRune(ch byte) bool  { return ch >= 'a' && ch <= 'z' }
func isSelfDelim(ch byte) bool { return ch == '{' || ch == '}' || ch == '[' || ch == ']' || ch == ',' || ch == ':' }

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// hasExtraLeadingZeroes reports whether the integer part in buf (no sign)
// has a redundant leading zero, disallowed by the JSON grammar: "0" is fine,
// "01" is not.
func hasExtraLeadingZeroes(buf []byte) bool {
	return len(buf) > 1 && buf[0] == '0'
}
