package jsontree

// Package jsontree provides:
//
// - Parsing of complete UTF-8 JSON buffers into an immutable, tagged Value tree
// - A stable error model via Issues (code, byte offset, JSON Pointer, message)
// - Rendering Value trees back to text (compact, pretty-printed, or key-sorted)
// - Duplicate-key/depth/size enforcement over a pluggable token Source
//
// Design policy:
// - Keep only public APIs in the root package; put the scanner and
//   enforcement under internal/.
// - Place alternate token drivers under source/ and YAML interop under
//   yamljson/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := jsontree.Parse(data)
//	v, err = jsontree.Parse(data, jsontree.ParseOpt{MaxDepth: 64})
//
//	out := jsontree.Marshal(v)
//	pretty := jsontree.MarshalIndent(v, 2)
