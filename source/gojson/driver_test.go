package gojson_test

import (
	"strings"
	"testing"

	jsontree "github.com/akthrms/jsontree"
	"github.com/akthrms/jsontree/source/gojson"
)

// These tests run against whichever driver the gojson build tag selects.

func TestDriver_NewBytes(t *testing.T) {
	d := gojson.Driver()
	if d.Name() == "" {
		t.Fatalf("driver must report a name")
	}
	v, err := jsontree.ParseFrom(d.NewBytes([]byte(`{"a":[1,true,null],"b":"x"}`)))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := jsontree.Object{
		"a": jsontree.Array{jsontree.Number(1), jsontree.Bool(true), jsontree.Null{}},
		"b": jsontree.String("x"),
	}
	if !v.Equal(want) {
		t.Fatalf("got %v", v)
	}
}

func TestDriver_NewReader(t *testing.T) {
	d := gojson.Driver()
	v, err := jsontree.ParseFrom(d.NewReader(strings.NewReader(`[0.5,"s"]`)))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := jsontree.Array{jsontree.Number(0.5), jsontree.String("s")}
	if !v.Equal(want) {
		t.Fatalf("got %v", v)
	}
}

func TestDriver_InvalidInputFails(t *testing.T) {
	d := gojson.Driver()
	if _, err := jsontree.ParseFrom(d.NewBytes([]byte(`{"a":`))); err == nil {
		t.Fatalf("expected error for truncated document")
	}
}

func TestDriver_DuplicatePolicyApplies(t *testing.T) {
	d := gojson.Driver()
	_, err := jsontree.ParseFrom(
		d.NewBytes([]byte(`{"k":1,"k":2}`)),
		jsontree.ParseOpt{Strictness: jsontree.Strictness{OnDuplicateKey: jsontree.Error}},
	)
	iss, ok := jsontree.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != jsontree.CodeDuplicateKey {
		t.Fatalf("expected duplicate_key, got %v", err)
	}
	if iss[0].Path != "/k" {
		t.Fatalf("expected path /k, got %q", iss[0].Path)
	}
}
