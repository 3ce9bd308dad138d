package jsontree

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUnexpectedEOF       = "unexpected_eof"
	CodeUnexpectedCharacter = "unexpected_character"
	CodeInvalidEscape       = "invalid_escape"
	CodeInvalidNumber       = "invalid_number"
	CodeUnterminatedString  = "unterminated_string"
	CodeTrailingData        = "trailing_data"
	CodeMaxDepthExceeded    = "max_depth_exceeded"
	CodeDuplicateKey        = "duplicate_key"
	CodeTruncated           = "truncated"
	CodeParseError          = "parse_error"
)

// Issue represents a single parse failure or policy finding.
type Issue struct {
	Path    string // JSON Pointer to the enclosing container ("/" at top level).
	Code    string // One of the codes listed above.
	Message string
	Offset  int64 // Byte offset in the input where the failure was detected (-1 when unknown).
	Cause   error // Optional: underlying error.
}

// Issues is a collection of parse errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_number at offset 12
		if it.Offset >= 0 {
			fmt.Fprintf(b, "%s at offset %d", it.Code, it.Offset)
		} else {
			fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
