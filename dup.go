package jsontree

import (
	"io"

	eng "github.com/akthrms/jsontree/internal/engine"
)

// DetectDuplicateKeys reports duplicate object keys in a JSON byte slice
// without materializing a tree. Duplicates are legal input under the
// last-write-wins policy; this helper exists for callers that want to surface
// them anyway. The implementation delegates to internal/engine.
func DetectDuplicateKeys(data []byte, strict Strictness, maxIssues int) (Issues, error) {
	si, err := eng.DetectDuplicateKeys(EngineTokenSource(JSONBytes(data)), toEngineDup(strict.OnDuplicateKey), maxIssues)
	if err != nil {
		return nil, err
	}
	return fromEngineIssues(si), nil
}

// DetectDuplicateKeysReader detects duplicate keys from an io.Reader.
// Note: this will consume the reader fully.
func DetectDuplicateKeysReader(r io.Reader, strict Strictness, maxIssues int) (Issues, error) {
	si, err := eng.DetectDuplicateKeys(EngineTokenSource(JSONReader(r)), toEngineDup(strict.OnDuplicateKey), maxIssues)
	if err != nil {
		return nil, err
	}
	return fromEngineIssues(si), nil
}

func fromEngineIssues(si []eng.SimpleIssue) Issues {
	var iss Issues
	for _, s := range si {
		iss = AppendIssues(iss, fromEngineIssue(s))
	}
	return iss
}
