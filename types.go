package jsontree

// Severity expresses the severity level for policy findings.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate object keys.
//
// Ignore (the default) resolves duplicates silently with last-write-wins.
// Warn keeps last-write-wins but collects duplicate_key issues, surfaced via
// ParseWithIssues. Error rejects the input at the first duplicate.
type Strictness struct {
	OnDuplicateKey Severity
}

// DefaultMaxDepth is the nesting depth guard applied when ParseOpt.MaxDepth
// is zero. It bounds recursion on pathological inputs such as thousands of
// consecutive '[' characters.
const DefaultMaxDepth = 512

// ParseOpt bundles parsing options.
type ParseOpt struct {
	Strictness Strictness
	// MaxDepth caps container nesting. Zero selects DefaultMaxDepth and a
	// negative value disables the guard entirely.
	MaxDepth int
	// MaxBytes fails parsing once the source has consumed more than this many
	// bytes. Zero disables the cap.
	MaxBytes int64
}
