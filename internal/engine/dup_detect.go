package engine

import "io"

// DetectDuplicateKeys drains the token source and reports duplicate object
// keys without building a tree. If onDup is DupIgnore, no issues are produced.
// maxIssues < 0 means unlimited; 0 means disabled; > 0 sets a limit. With
// DupError the walk stops at the first duplicate.
func DetectDuplicateKeys(src TokenSource, onDup DuplicateStrictness, maxIssues int) ([]SimpleIssue, error) {
	if onDup == DupIgnore {
		return nil, nil
	}

	var issues []SimpleIssue
	full := false
	stop := false
	sink := func(si SimpleIssue) {
		if maxIssues == 0 || full {
			return
		}
		issues = append(issues, si)
		if onDup == DupError {
			stop = true
		}
		if maxIssues > 0 && len(issues) >= maxIssues {
			issues = append(issues, SimpleIssue{Code: "truncated", Path: "/", Message: "max issues reached", Offset: -1})
			full = true
		}
	}

	enforced := WrapWithEnforcement(src, EnforceOptions{OnDuplicate: DupWarn, IssueSink: sink})
	for {
		_, err := enforced.NextToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			if ie, ok := err.(IssueError); ok {
				issues = append(issues, ie.SimpleIssue)
			} else {
				issues = append(issues, SimpleIssue{Code: "parse_error", Path: "/", Message: err.Error(), Offset: -1})
			}
			break
		}
		if stop || full {
			break
		}
	}
	return issues, nil
}
