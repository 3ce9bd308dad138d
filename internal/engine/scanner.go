package engine

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf16"
)

// Scanner is a single-pass JSON tokenizer over a complete in-memory buffer.
// It validates the whole grammar as it goes (structural placement of commas
// and colons, string escapes, numeric literals, keyword spelling) and reports
// the byte offset of the first failure. It implements TokenSource.
//
// The scanner never panics on malformed input; every failure surfaces as an
// IssueError. After the top-level value has been emitted, NextToken returns
// io.EOF once only whitespace remains and a trailing_data issue otherwise.
type Scanner struct {
	buf   []byte
	pos   int
	stack []scanFrame
	done  bool
}

type framePhase int

const (
	phaseFirstKey framePhase = iota // object opened: key or '}'
	phaseKey                        // object after ',': key required
	phaseColon                      // object after key: ':' required
	phaseObjValue                   // object after ':': value required
	phaseObjNext                    // object after value: ',' or '}'
	phaseFirstElem                  // array opened: value or ']'
	phaseElem                       // array after ',': value required
	phaseArrNext                    // array after value: ',' or ']'
)

type scanFrame struct {
	kind  containerKind
	phase framePhase
}

var scannerBOM = []byte{0xEF, 0xBB, 0xBF}

// NewScanner returns a Scanner over the complete buffer. A leading UTF-8
// byte-order mark is skipped.
func NewScanner(buf []byte) *Scanner {
	s := &Scanner{buf: buf}
	if bytes.HasPrefix(buf, scannerBOM) {
		s.pos = len(scannerBOM)
	}
	return s
}

// Location reports the current byte offset into the buffer.
func (s *Scanner) Location() int64 { return int64(s.pos) }

// NextToken returns the next token in the stream.
func (s *Scanner) NextToken() (Token, error) {
	for {
		s.skipWS()

		if len(s.stack) == 0 {
			if s.done {
				if s.pos >= len(s.buf) {
					return Token{}, io.EOF
				}
				return Token{}, s.issue("trailing_data", s.pos, "unexpected data after top-level value")
			}
			if s.pos >= len(s.buf) {
				return Token{}, s.issue("unexpected_eof", s.pos, "unexpected end of input, expecting a value")
			}
			return s.scanValue()
		}

		top := &s.stack[len(s.stack)-1]
		if s.pos >= len(s.buf) {
			return Token{}, s.issue("unexpected_eof", s.pos, "unexpected end of input inside "+top.kind.String())
		}
		c := s.buf[s.pos]

		switch top.phase {
		case phaseFirstKey, phaseKey:
			switch c {
			case '"':
				off := s.pos
				key, err := s.scanString()
				if err != nil {
					return Token{}, err
				}
				top.phase = phaseColon
				return Token{Kind: KindKey, String: key, Offset: int64(off)}, nil
			case '}':
				if top.phase == phaseKey {
					return Token{}, s.issue("unexpected_character", s.pos, "trailing comma before '}'")
				}
				s.pos++
				s.popFrame()
				return Token{Kind: KindEndObject, Offset: int64(s.pos - 1)}, nil
			default:
				return Token{}, s.issue("unexpected_character", s.pos, fmt.Sprintf("expecting object key, found %q", c))
			}
		case phaseColon:
			if c != ':' {
				return Token{}, s.issue("unexpected_character", s.pos, fmt.Sprintf("expecting ':' after object key, found %q", c))
			}
			s.pos++
			top.phase = phaseObjValue
		case phaseObjValue, phaseElem:
			if c == ']' && top.phase == phaseElem {
				return Token{}, s.issue("unexpected_character", s.pos, "trailing comma before ']'")
			}
			return s.scanValue()
		case phaseObjNext:
			switch c {
			case ',':
				s.pos++
				top.phase = phaseKey
			case '}':
				s.pos++
				s.popFrame()
				return Token{Kind: KindEndObject, Offset: int64(s.pos - 1)}, nil
			default:
				return Token{}, s.issue("unexpected_character", s.pos, fmt.Sprintf("expecting ',' or '}' in object, found %q", c))
			}
		case phaseFirstElem:
			if c == ']' {
				s.pos++
				s.popFrame()
				return Token{Kind: KindEndArray, Offset: int64(s.pos - 1)}, nil
			}
			return s.scanValue()
		case phaseArrNext:
			switch c {
			case ',':
				s.pos++
				top.phase = phaseElem
			case ']':
				s.pos++
				s.popFrame()
				return Token{Kind: KindEndArray, Offset: int64(s.pos - 1)}, nil
			default:
				return Token{}, s.issue("unexpected_character", s.pos, fmt.Sprintf("expecting ',' or ']' in array, found %q", c))
			}
		}
	}
}

// scanValue dispatches on the first significant character of a value. The
// caller guarantees s.pos is in bounds.
func (s *Scanner) scanValue() (Token, error) {
	off := s.pos
	switch c := s.buf[s.pos]; {
	case c == '{':
		s.pos++
		s.stack = append(s.stack, scanFrame{kind: kindObject, phase: phaseFirstKey})
		return Token{Kind: KindBeginObject, Offset: int64(off)}, nil
	case c == '[':
		s.pos++
		s.stack = append(s.stack, scanFrame{kind: kindArray, phase: phaseFirstElem})
		return Token{Kind: KindBeginArray, Offset: int64(off)}, nil
	case c == '"':
		str, err := s.scanString()
		if err != nil {
			return Token{}, err
		}
		s.valueDone()
		return Token{Kind: KindString, String: str, Offset: int64(off)}, nil
	case c == 't':
		if err := s.scanKeyword("true"); err != nil {
			return Token{}, err
		}
		s.valueDone()
		return Token{Kind: KindBool, Bool: true, Offset: int64(off)}, nil
	case c == 'f':
		if err := s.scanKeyword("false"); err != nil {
			return Token{}, err
		}
		s.valueDone()
		return Token{Kind: KindBool, Bool: false, Offset: int64(off)}, nil
	case c == 'n':
		if err := s.scanKeyword("null"); err != nil {
			return Token{}, err
		}
		s.valueDone()
		return Token{Kind: KindNull, Offset: int64(off)}, nil
	case c == '-' || (c >= '0' && c <= '9'):
		lexeme, err := s.scanNumber()
		if err != nil {
			return Token{}, err
		}
		s.valueDone()
		return Token{Kind: KindNumber, Number: lexeme, Offset: int64(off)}, nil
	default:
		return Token{}, s.issue("unexpected_character", off, fmt.Sprintf("unexpected character %q, expecting a value", c))
	}
}

// valueDone records that a value has been fully consumed: the enclosing
// container advances to its separator phase, or the top level is finished.
func (s *Scanner) valueDone() {
	if len(s.stack) == 0 {
		s.done = true
		return
	}
	top := &s.stack[len(s.stack)-1]
	if top.kind == kindObject {
		top.phase = phaseObjNext
	} else {
		top.phase = phaseArrNext
	}
}

func (s *Scanner) popFrame() {
	s.stack = s.stack[:len(s.stack)-1]
	s.valueDone()
}

func (s *Scanner) skipWS() {
	for s.pos < len(s.buf) {
		switch s.buf[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

// scanString consumes a string literal including both quotes and returns the
// decoded payload with all escapes resolved.
func (s *Scanner) scanString() (string, error) {
	start := s.pos
	s.pos++ // opening quote
	var b strings.Builder
	for {
		if s.pos >= len(s.buf) {
			return "", s.issue("unterminated_string", start, "string not terminated before end of input")
		}
		c := s.buf[s.pos]
		switch {
		case c == '"':
			s.pos++
			return b.String(), nil
		case c == '\\':
			if err := s.scanEscape(&b); err != nil {
				return "", err
			}
		case c < 0x20:
			return "", s.issue("unexpected_character", s.pos, fmt.Sprintf("unescaped control character 0x%02X in string", c))
		default:
			// UTF-8 passes through byte by byte.
			b.WriteByte(c)
			s.pos++
		}
	}
}

// scanEscape consumes one backslash escape. s.pos is at the backslash.
func (s *Scanner) scanEscape(b *strings.Builder) error {
	off := s.pos
	s.pos++
	if s.pos >= len(s.buf) {
		return s.issue("unterminated_string", off, "string not terminated before end of input")
	}
	c := s.buf[s.pos]
	s.pos++
	switch c {
	case '"', '\\', '/':
		b.WriteByte(c)
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'u':
		return s.scanUnicodeEscape(b, off)
	default:
		return s.issue("invalid_escape", off, fmt.Sprintf("invalid escape character %q", c))
	}
	return nil
}

// scanUnicodeEscape decodes \uXXXX, pairing UTF-16 surrogates. s.pos is just
// past the 'u'; off is the offset of the introducing backslash.
func (s *Scanner) scanUnicodeEscape(b *strings.Builder, off int) error {
	r1, err := s.scanHex4(off)
	if err != nil {
		return err
	}
	if !utf16.IsSurrogate(r1) {
		b.WriteRune(r1)
		return nil
	}
	if r1 >= 0xDC00 {
		return s.issue("invalid_escape", off, fmt.Sprintf("unpaired low surrogate \\u%04X", r1))
	}
	// High surrogate: the low half must follow immediately as another escape.
	if s.pos+1 >= len(s.buf) || s.buf[s.pos] != '\\' || s.buf[s.pos+1] != 'u' {
		return s.issue("invalid_escape", off, fmt.Sprintf("high surrogate \\u%04X not followed by a low surrogate escape", r1))
	}
	pairOff := s.pos
	s.pos += 2
	r2, err := s.scanHex4(pairOff)
	if err != nil {
		return err
	}
	r := utf16.DecodeRune(r1, r2)
	if r == unicode.ReplacementChar {
		return s.issue("invalid_escape", pairOff, fmt.Sprintf("invalid surrogate pair \\u%04X\\u%04X", r1, r2))
	}
	b.WriteRune(r)
	return nil
}

// scanHex4 consumes exactly four hexadecimal digits. off is the offset of the
// escape's backslash, used for error reporting.
func (s *Scanner) scanHex4(off int) (rune, error) {
	var r rune
	for i := 0; i < 4; i++ {
		if s.pos >= len(s.buf) {
			return 0, s.issue("unterminated_string", off, "string not terminated before end of input")
		}
		c := s.buf[s.pos]
		switch {
		case c >= '0' && c <= '9':
			r = r<<4 | rune(c-'0')
		case c >= 'a' && c <= 'f':
			r = r<<4 | rune(c-'a'+10)
		case c >= 'A' && c <= 'F':
			r = r<<4 | rune(c-'A'+10)
		default:
			return 0, s.issue("invalid_escape", off, fmt.Sprintf("invalid hexadecimal digit %q in \\u escape", c))
		}
		s.pos++
	}
	return r, nil
}

// scanNumber validates and consumes a numeric literal, returning its lexeme.
// Grammar: -? (0|[1-9][0-9]*) ('.' [0-9]+)? ([eE] [+-]? [0-9]+)?
func (s *Scanner) scanNumber() (string, error) {
	start := s.pos
	if s.buf[s.pos] == '-' {
		s.pos++
	}
	switch {
	case s.pos >= len(s.buf):
		return "", s.issue("invalid_number", start, "digit expected after minus sign")
	case s.buf[s.pos] == '0':
		s.pos++
		if s.pos < len(s.buf) && isDigit(s.buf[s.pos]) {
			return "", s.issue("invalid_number", start, "leading zeros are not allowed")
		}
	case isDigit(s.buf[s.pos]):
		for s.pos < len(s.buf) && isDigit(s.buf[s.pos]) {
			s.pos++
		}
	default:
		return "", s.issue("invalid_number", start, "digit expected after minus sign")
	}

	if s.pos < len(s.buf) && s.buf[s.pos] == '.' {
		s.pos++
		if s.pos >= len(s.buf) || !isDigit(s.buf[s.pos]) {
			return "", s.issue("invalid_number", start, "digit expected after decimal point")
		}
		for s.pos < len(s.buf) && isDigit(s.buf[s.pos]) {
			s.pos++
		}
	}

	if s.pos < len(s.buf) && (s.buf[s.pos] == 'e' || s.buf[s.pos] == 'E') {
		s.pos++
		if s.pos < len(s.buf) && (s.buf[s.pos] == '+' || s.buf[s.pos] == '-') {
			s.pos++
		}
		if s.pos >= len(s.buf) || !isDigit(s.buf[s.pos]) {
			return "", s.issue("invalid_number", start, "digit expected in exponent")
		}
		for s.pos < len(s.buf) && isDigit(s.buf[s.pos]) {
			s.pos++
		}
	}

	return string(s.buf[start:s.pos]), nil
}

// scanKeyword matches a literal keyword exactly and case-sensitively.
func (s *Scanner) scanKeyword(word string) error {
	for i := 0; i < len(word); i++ {
		if s.pos+i >= len(s.buf) {
			return s.issue("unexpected_eof", s.pos+i, fmt.Sprintf("unexpected end of input in literal %q", word))
		}
		if s.buf[s.pos+i] != word[i] {
			return s.issue("unexpected_character", s.pos+i, fmt.Sprintf("invalid literal, expecting %q", word))
		}
	}
	s.pos += len(word)
	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (s *Scanner) issue(code string, off int, msg string) error {
	return IssueError{SimpleIssue{Code: code, Message: msg, Offset: int64(off)}}
}
