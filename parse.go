package jsontree

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/akthrms/jsontree/i18n"
	eng "github.com/akthrms/jsontree/internal/engine"
)

// Parse is the primary entry point. It converts a complete JSON text buffer
// into a Value tree, or returns Issues describing the first failure. On
// failure no partial tree is exposed.
func Parse(data []byte, opts ...ParseOpt) (Value, error) {
	return ParseFrom(JSONBytes(data), opts...)
}

// ParseString parses a JSON string buffer.
func ParseString(s string, opts ...ParseOpt) (Value, error) {
	return ParseFrom(JSONString(s), opts...)
}

// ParseFrom consumes tokens from the Source and builds the Value tree. The
// last ParseOpt wins when several are given.
func ParseFrom(src Source, opts ...ParseOpt) (Value, error) {
	v, _, err := parseFromSource(src, lastOpt(opts), false)
	return v, err
}

// ParseWithIssues parses like Parse but additionally returns non-fatal policy
// findings: with Strictness{OnDuplicateKey: Warn} every duplicate key is
// collected while the tree is still built with last-write-wins semantics.
func ParseWithIssues(data []byte, opts ...ParseOpt) (Value, Issues, error) {
	return parseFromSource(JSONBytes(data), lastOpt(opts), true)
}

func lastOpt(opts []ParseOpt) ParseOpt {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return opt
}

func parseFromSource(src Source, opt ParseOpt, collect bool) (Value, Issues, error) {
	var warnings Issues
	var sink func(eng.SimpleIssue)
	if collect {
		sink = func(si eng.SimpleIssue) {
			warnings = AppendIssues(warnings, fromEngineIssue(si))
		}
	}

	enforced := eng.WrapWithEnforcement(EngineTokenSource(src), eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    effectiveMaxDepth(opt.MaxDepth),
		MaxBytes:    opt.MaxBytes,
		IssueSink:   sink,
	})

	tok, err := enforced.NextToken()
	if err != nil {
		return nil, warnings, toIssues(err)
	}
	v, err := decodeValue(enforced, tok)
	if err != nil {
		return nil, warnings, toIssues(err)
	}
	if err := expectEOF(enforced); err != nil {
		return nil, warnings, toIssues(err)
	}
	return v, warnings, nil
}

// decodeValue builds one value from the token stream, descending into
// containers. Every child is fully validated before it is attached to its
// parent.
func decodeValue(src eng.TokenSource, tok eng.Token) (Value, error) {
	switch tok.Kind {
	case eng.KindBeginObject:
		return decodeObject(src)
	case eng.KindBeginArray:
		return decodeArray(src)
	case eng.KindString:
		return String(tok.String), nil
	case eng.KindNumber:
		f, err := strconv.ParseFloat(tok.Number, 64)
		if err != nil {
			// Out-of-range magnitudes keep their IEEE-754 result (±Inf); any
			// other failure means a foreign driver produced a bad lexeme.
			if !errors.Is(err, strconv.ErrRange) {
				return nil, eng.IssueError{SimpleIssue: eng.SimpleIssue{
					Code:    CodeInvalidNumber,
					Message: fmt.Sprintf("malformed number lexeme %q", tok.Number),
					Offset:  tok.Offset,
				}}
			}
		}
		return Number(f), nil
	case eng.KindBool:
		return Bool(tok.Bool), nil
	case eng.KindNull:
		return Null{}, nil
	default:
		return nil, eng.IssueError{SimpleIssue: eng.SimpleIssue{
			Code:    CodeParseError,
			Message: "unexpected token from source",
			Offset:  tok.Offset,
		}}
	}
}

func decodeObject(src eng.TokenSource) (Value, error) {
	m := make(Object)
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == eng.KindEndObject {
			return m, nil
		}
		if tok.Kind != eng.KindKey {
			return nil, eng.IssueError{SimpleIssue: eng.SimpleIssue{
				Code:    CodeParseError,
				Message: "expected object key from source",
				Offset:  tok.Offset,
			}}
		}
		vt, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		v, err := decodeValue(src, vt)
		if err != nil {
			return nil, err
		}
		// Duplicate keys overwrite: last occurrence wins.
		m[tok.String] = v
	}
}

func decodeArray(src eng.TokenSource) (Value, error) {
	arr := Array{}
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == eng.KindEndArray {
			return arr, nil
		}
		v, err := decodeValue(src, tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

// expectEOF verifies that only the top-level value was present. The built-in
// scanner reports trailing_data itself; this guards sources that keep
// emitting values.
func expectEOF(src eng.TokenSource) error {
	tok, err := src.NextToken()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	return eng.IssueError{SimpleIssue: eng.SimpleIssue{
		Code:    CodeTrailingData,
		Message: i18n.T(CodeTrailingData, nil),
		Offset:  tok.Offset,
	}}
}

func effectiveMaxDepth(d int) int {
	switch {
	case d == 0:
		return DefaultMaxDepth
	case d < 0:
		return 0 // guard disabled
	default:
		return d
	}
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

// fromEngineIssue renders the message through the i18n catalog; the engine's
// English detail (expected character, offending literal) is kept as a suffix.
func fromEngineIssue(si eng.SimpleIssue) Issue {
	msg := i18n.T(si.Code, nil)
	if si.Message != "" && si.Message != msg {
		msg += ": " + si.Message
	}
	return Issue{Path: normalizeIssuePath(si.Path), Code: si.Code, Message: msg, Offset: si.Offset}
}

func normalizeIssuePath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, fromEngineIssue(ie.SimpleIssue))
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return AppendIssues(nil, Issue{Path: "/", Code: CodeUnexpectedEOF, Message: i18n.T(CodeUnexpectedEOF, nil), Offset: -1, Cause: err})
	}
	return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Offset: -1, Cause: err})
}
