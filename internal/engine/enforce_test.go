package engine

import (
	"errors"
	"io"
	"testing"
)

func drainEnforced(src string, opt EnforceOptions) error {
	e := WrapWithEnforcement(NewScanner([]byte(src)), opt)
	for {
		_, err := e.NextToken()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func enforceIssue(t *testing.T, err error) SimpleIssue {
	t.Helper()
	var ie IssueError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IssueError, got %v", err)
	}
	return ie.SimpleIssue
}

func TestEnforce_MaxDepth(t *testing.T) {
	err := drainEnforced(`[[[1]]]`, EnforceOptions{MaxDepth: 2})
	if err == nil {
		t.Fatalf("expected max_depth_exceeded")
	}
	si := enforceIssue(t, err)
	if si.Code != "max_depth_exceeded" {
		t.Fatalf("got code %s", si.Code)
	}
	if si.Offset != 2 {
		t.Fatalf("got offset %d, want 2", si.Offset)
	}

	if err := drainEnforced(`[[1]]`, EnforceOptions{MaxDepth: 2}); err != nil {
		t.Fatalf("depth at limit should pass: %v", err)
	}
	if err := drainEnforced(`[[[[[[1]]]]]]`, EnforceOptions{}); err != nil {
		t.Fatalf("zero MaxDepth disables the check: %v", err)
	}
}

func TestEnforce_DuplicateWarnCollects(t *testing.T) {
	var got []SimpleIssue
	err := drainEnforced(`{"a":1,"a":2}`, EnforceOptions{
		OnDuplicate: DupWarn,
		IssueSink:   func(si SimpleIssue) { got = append(got, si) },
	})
	if err != nil {
		t.Fatalf("warn mode must not fail the walk: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 issue, got %d: %v", len(got), got)
	}
	if got[0].Code != "duplicate_key" || got[0].Path != "/a" {
		t.Fatalf("got %+v", got[0])
	}
	if got[0].Offset != 7 {
		t.Fatalf("got offset %d, want 7", got[0].Offset)
	}
}

func TestEnforce_DuplicateNestedPath(t *testing.T) {
	var got []SimpleIssue
	err := drainEnforced(`{"o":{"k":1,"k":2},"arr":[{"x":0,"x":1}]}`, EnforceOptions{
		OnDuplicate: DupWarn,
		IssueSink:   func(si SimpleIssue) { got = append(got, si) },
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 issues, got %v", got)
	}
	if got[0].Path != "/o/k" || got[1].Path != "/arr/0/x" {
		t.Fatalf("paths: %q, %q", got[0].Path, got[1].Path)
	}
}

func TestEnforce_DuplicateError(t *testing.T) {
	err := drainEnforced(`{"a":1,"a":2}`, EnforceOptions{OnDuplicate: DupError})
	if err == nil {
		t.Fatalf("expected duplicate_key error")
	}
	si := enforceIssue(t, err)
	if si.Code != "duplicate_key" || si.Path != "/a" {
		t.Fatalf("got %+v", si)
	}
}

func TestEnforce_DuplicateIgnore(t *testing.T) {
	var got []SimpleIssue
	err := drainEnforced(`{"a":1,"a":2}`, EnforceOptions{
		OnDuplicate: DupIgnore,
		IssueSink:   func(si SimpleIssue) { got = append(got, si) },
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("ignore mode must not report: %v", got)
	}
}

func TestEnforce_MaxBytes(t *testing.T) {
	err := drainEnforced(`[1,2,3,4,5]`, EnforceOptions{MaxBytes: 4})
	if err == nil {
		t.Fatalf("expected truncated")
	}
	if si := enforceIssue(t, err); si.Code != "truncated" {
		t.Fatalf("got code %s", si.Code)
	}

	if err := drainEnforced(`[1,2]`, EnforceOptions{MaxBytes: 1 << 20}); err != nil {
		t.Fatalf("generous limit should pass: %v", err)
	}
}

func TestEnforce_EscapedKeyPointer(t *testing.T) {
	var got []SimpleIssue
	err := drainEnforced(`{"a/b":1,"a/b":2,"c~d":0,"c~d":1}`, EnforceOptions{
		OnDuplicate: DupWarn,
		IssueSink:   func(si SimpleIssue) { got = append(got, si) },
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 issues, got %v", got)
	}
	if got[0].Path != "/a~1b" || got[1].Path != "/c~0d" {
		t.Fatalf("pointer escaping wrong: %q, %q", got[0].Path, got[1].Path)
	}
}

func TestDetectDuplicateKeys_Engine(t *testing.T) {
	iss, err := DetectDuplicateKeys(NewScanner([]byte(`{"a":1,"a":2,"a":3}`)), DupWarn, -1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %v", iss)
	}

	iss, err = DetectDuplicateKeys(NewScanner([]byte(`{"a":1,"a":2,"a":3}`)), DupError, -1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(iss) != 1 {
		t.Fatalf("error mode stops at first duplicate, got %v", iss)
	}

	iss, err = DetectDuplicateKeys(NewScanner([]byte(`not json`)), DupWarn, -1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(iss) != 1 || iss[0].Code != "unexpected_character" {
		t.Fatalf("scan failures surface as issues: %v", iss)
	}
}
