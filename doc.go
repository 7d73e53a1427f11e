// Package gltf provides a typed, validated in-memory model of glTF 2.0
// documents:
//
// - Typed references: Index[T] values know which collection they address
// - Table-driven enumeration codecs (string tokens and GL numeric codes) under codec/
// - Pluggable Extensions/Extras capabilities choosing the payload of every slot
// - A Root aggregate with per-kind accessors and a generic Get
// - A graph validation pass that reports every dangling index via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; put token-level machinery under internal/.
// - A Root is immutable once imported; nothing is mutated after construction.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	doc, err := gltf.Import[gltf.NoExtensions, gltf.NoExtras](data)
//	if iss, ok := gltf.AsIssues(err); ok {
//		for _, it := range iss {
//			fmt.Println(it.Path, it.Code, it.Message)
//		}
//	}
//	for _, n := range doc.Nodes() {
//		if n.Mesh != nil {
//			mesh := doc.Mesh(*n.Mesh)
//			_ = mesh
//		}
//	}
package gltf
