package source

import (
	jsontree "github.com/akthrms/jsontree"
	drvgojson "github.com/akthrms/jsontree/source/gojson"
)

// init in a separate package to avoid import cycle in root. Importing this
// package sets go-json as the default driver (requires the gojson build tag;
// otherwise the stub keeps the built-in scanner).
func init() { jsontree.SetJSONDriver(drvgojson.Driver()) }
