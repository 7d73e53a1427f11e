package gltf

import (
	"reflect"
	"strings"
	"sync"
)

// fieldInfo describes how a struct field appears in a document.
type fieldInfo struct {
	key      string
	index    int
	required bool
	kind     string
	typ      reflect.Type
}

// resolveStructKey applies the repository-wide rule to resolve a struct
// field's external key.
// Priority: gltf:"name=..." > json tag name > field name; "-" disables the field.
// gltf:"inline" yields the empty key, which adds no path segment.
func resolveStructKey(sf reflect.StructField) string {
	if _, ok := tagOption(sf, "inline"); ok {
		return ""
	}
	if name, ok := tagOption(sf, "name"); ok {
		return name
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}

// tagOption looks up an option in the gltf struct tag. Options are either
// flags ("required") or key=value pairs ("kind=Mesh").
func tagOption(sf reflect.StructField, opt string) (string, bool) {
	gt := sf.Tag.Get("gltf")
	if gt == "" {
		return "", false
	}
	for _, p := range strings.Split(gt, ",") {
		p = strings.TrimSpace(p)
		if p == opt {
			return "", true
		}
		if v, ok := strings.CutPrefix(p, opt+"="); ok {
			return v, true
		}
	}
	return "", false
}

var fieldCache sync.Map // reflect.Type -> []fieldInfo

// structFields returns the exported, keyed fields of a struct type.
func structFields(t reflect.Type) []fieldInfo {
	if v, ok := fieldCache.Load(t); ok {
		return v.([]fieldInfo)
	}
	var fields []fieldInfo
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := resolveStructKey(sf)
		if key == "-" {
			continue
		}
		_, required := tagOption(sf, "required")
		kind, _ := tagOption(sf, "kind")
		fields = append(fields, fieldInfo{key: key, index: i, required: required, kind: kind, typ: sf.Type})
	}
	v, _ := fieldCache.LoadOrStore(t, fields)
	return v.([]fieldInfo)
}
