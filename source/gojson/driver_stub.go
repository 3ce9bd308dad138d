//go:build !gojson

package gojson

import (
	"io"

	jsontree "github.com/akthrms/jsontree"
	eng "github.com/akthrms/jsontree/internal/engine"
)

// Driver returns a stub driver when the gojson tag is not enabled. It wraps
// the built-in scanner directly to avoid recursing through the global driver.
func Driver() jsontree.JSONDriver { return stub{} }

type stub struct{}

func (stub) NewReader(r io.Reader) jsontree.Source {
	data, err := io.ReadAll(r)
	if err != nil {
		data = nil
	}
	return jsontree.SourceFromEngine(eng.NewScanner(data))
}
func (stub) NewBytes(b []byte) jsontree.Source {
	return jsontree.SourceFromEngine(eng.NewScanner(b))
}
func (stub) Name() string { return "jsontree (gojson stub)" }
