package engine

import (
	"errors"
	"io"
	"testing"
)

func drainTokens(t *testing.T, src string) ([]Token, error) {
	t.Helper()
	s := NewScanner([]byte(src))
	var toks []Token
	for {
		tok, err := s.NextToken()
		if err == io.EOF {
			return toks, nil
		}
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
}

func scanError(t *testing.T, src string) SimpleIssue {
	t.Helper()
	_, err := drainTokens(t, src)
	if err == nil {
		t.Fatalf("scan %q: expected error", src)
	}
	var ie IssueError
	if !errors.As(err, &ie) {
		t.Fatalf("scan %q: expected IssueError, got %v", src, err)
	}
	return ie.SimpleIssue
}

func TestScanner_TokenStream(t *testing.T) {
	toks, err := drainTokens(t, `{"a":[1,true,null],"b":"x"}`)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := []Token{
		{Kind: KindBeginObject, Offset: 0},
		{Kind: KindKey, String: "a", Offset: 1},
		{Kind: KindBeginArray, Offset: 5},
		{Kind: KindNumber, Number: "1", Offset: 6},
		{Kind: KindBool, Bool: true, Offset: 8},
		{Kind: KindNull, Offset: 13},
		{Kind: KindEndArray, Offset: 17},
		{Kind: KindKey, String: "b", Offset: 19},
		{Kind: KindString, String: "x", Offset: 23},
		{Kind: KindEndObject, Offset: 26},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Fatalf("token %d: got %+v, want %+v", i, toks[i], want[i])
		}
	}
}

func TestScanner_NumberLexemes(t *testing.T) {
	cases := map[string]string{
		`0`:       "0",
		`-0`:      "-0",
		`123`:     "123",
		`1.25`:    "1.25",
		`-2e10`:   "-2e10",
		`3.5E-2`:  "3.5E-2",
		`9e+0`:    "9e+0",
		`1e999`:   "1e999",
		`0.00001`: "0.00001",
	}
	for src, want := range cases {
		toks, err := drainTokens(t, src)
		if err != nil {
			t.Fatalf("scan %q: %v", src, err)
		}
		if len(toks) != 1 || toks[0].Kind != KindNumber || toks[0].Number != want {
			t.Fatalf("scan %q: got %+v", src, toks)
		}
	}
}

func TestScanner_ErrorCodesAndOffsets(t *testing.T) {
	cases := []struct {
		src    string
		code   string
		offset int64
	}{
		{``, "unexpected_eof", 0},
		{`   `, "unexpected_eof", 3},
		{`{`, "unexpected_eof", 1},
		{`[1,`, "unexpected_eof", 3},
		{`x`, "unexpected_character", 0},
		{`01`, "invalid_number", 0},
		{`-`, "invalid_number", 0},
		{`1.`, "invalid_number", 0},
		{`"abc`, "unterminated_string", 0},
		{`"\q"`, "invalid_escape", 1},
		{`"\u12G4"`, "invalid_escape", 1},
		{`"\uD800\n"`, "invalid_escape", 1},
		{`1 2`, "trailing_data", 2},
		{`{}{}`, "trailing_data", 2},
		{`[1,]`, "unexpected_character", 3},
		{`{,}`, "unexpected_character", 1},
		{`{"a" 1}`, "unexpected_character", 5},
		{`{"a":1 "b":2}`, "unexpected_character", 7},
		{`[1 2]`, "unexpected_character", 3},
		{`tru`, "unexpected_eof", 3},
		{`truth`, "unexpected_character", 3},
	}
	for _, c := range cases {
		si := scanError(t, c.src)
		if si.Code != c.code {
			t.Fatalf("scan %q: got code %s, want %s", c.src, si.Code, c.code)
		}
		if si.Offset != c.offset {
			t.Fatalf("scan %q: got offset %d, want %d", c.src, si.Offset, c.offset)
		}
	}
}

func TestScanner_StringDecoding(t *testing.T) {
	cases := map[string]string{
		`"plain"`:            "plain",
		`"Aé"`:     "Aé",
		`"😀"`:     "😀",
		`"tab\there"`:        "tab\there",
		`"fwd\/slash"`:       "fwd/slash",
		`"\u0041\u00E9"`:     "Aé",
		`"\u3042"`:           "あ",
		`"\uD83D\uDE00"`:     "😀",
		`"mixed あ text"`: "mixed あ text",
	}
	for src, want := range cases {
		toks, err := drainTokens(t, src)
		if err != nil {
			t.Fatalf("scan %q: %v", src, err)
		}
		if len(toks) != 1 || toks[0].String != want {
			t.Fatalf("scan %q: got %+v, want %q", src, toks, want)
		}
	}
}

func TestScanner_BOM(t *testing.T) {
	toks, err := drainTokens(t, "\xef\xbb\xbf0")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != KindNumber {
		t.Fatalf("got %+v", toks)
	}
}

func TestScanner_LocationAdvances(t *testing.T) {
	s := NewScanner([]byte(`[1]`))
	if s.Location() != 0 {
		t.Fatalf("initial location: %d", s.Location())
	}
	if _, err := s.NextToken(); err != nil {
		t.Fatalf("err: %v", err)
	}
	if s.Location() != 1 {
		t.Fatalf("after '[': %d", s.Location())
	}
	if _, err := s.NextToken(); err != nil {
		t.Fatalf("err: %v", err)
	}
	if s.Location() != 2 {
		t.Fatalf("after '1': %d", s.Location())
	}
}
