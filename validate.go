package gltf

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/reoring/gltf/i18n"
)

// localScope is implemented by entities owning a collection that some of
// their nested indices address, such as an animation's samplers.
type localScope interface {
	localCollections() []collection
}

var localScopeType = reflect.TypeFor[localScope]()

// graphValidator checks that every Index in a document addresses an existing
// element of its target collection.
type graphValidator struct {
	lengths  map[reflect.Type]collection
	issues   Issues
	failFast bool
}

func (g *graphValidator) stop() bool { return g.failFast && len(g.issues) > 0 }

func (g *graphValidator) add(is Issue) {
	if g.stop() {
		return
	}
	g.issues = AppendIssues(g.issues, is)
}

// walk visits v and everything reachable from it through exported fields,
// slices, arrays, maps and pointers.
func (g *graphValidator) walk(v reflect.Value, p PathRef) {
	if g.stop() {
		return
	}
	t := v.Type()
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			g.walk(v.Elem(), p)
		}
	case reflect.Uint32:
		if t.Implements(indexRefType) {
			g.check(v.Interface().(indexRef), p)
		}
	case reflect.Struct:
		if t.Implements(localScopeType) {
			defer g.push(v.Interface().(localScope).localCollections())()
		}
		for _, f := range structFields(t) {
			g.walk(v.Field(f.index), p.Field(f.key))
		}
	case reflect.Slice, reflect.Array:
		if !mayHoldIndex(t.Elem()) {
			return
		}
		for i := 0; i < v.Len(); i++ {
			g.walk(v.Index(i), p.Index(i))
		}
	case reflect.Map:
		if !mayHoldIndex(t.Elem()) || t.Key().Kind() != reflect.String {
			return
		}
		keys := v.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int { return strings.Compare(a.String(), b.String()) })
		for _, k := range keys {
			g.walk(v.MapIndex(k), p.Field(k.String()))
		}
	}
}

// push installs scoped collections and returns a function restoring the
// previous ones.
func (g *graphValidator) push(cs []collection) func() {
	saved := make([]collection, len(cs))
	had := make([]bool, len(cs))
	for i, c := range cs {
		saved[i], had[i] = g.lengths[c.elem]
		g.lengths[c.elem] = c
	}
	return func() {
		for i, c := range cs {
			if had[i] {
				g.lengths[c.elem] = saved[i]
			} else {
				delete(g.lengths, c.elem)
			}
		}
	}
}

func (g *graphValidator) check(ref indexRef, p PathRef) {
	c, ok := g.lengths[ref.target()]
	if !ok {
		target := ref.target().String()
		g.add(p.Issue(CodeUnknownKind, i18n.T(CodeUnknownKind, map[string]string{"target": target}), "target", target))
		return
	}
	if int64(ref.Value()) < int64(c.n) {
		return
	}
	msg := i18n.T(CodeIndexOutOfRange, map[string]string{
		"kind":  c.kind,
		"index": fmt.Sprint(ref.Value()),
		"len":   fmt.Sprint(c.n),
	})
	g.add(p.Issue(CodeIndexOutOfRange, msg, "kind", c.kind, "index", ref.Value(), "len", c.n))
}

// mayHoldIndex reports whether values of t can contain an Index.
func mayHoldIndex(t reflect.Type) bool {
	if t.Implements(indexRefType) {
		return true
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return false
	}
	return true
}

// validate runs the graph passes over the document: index ranges first,
// then the extension declarations.
func (r *Root[E, X]) validate(opt ImportOpt) Issues {
	g := &graphValidator{lengths: make(map[reflect.Type]collection, len(r.collections)), failFast: opt.FailFast}
	for t, c := range r.collections {
		g.lengths[t] = c
	}
	g.walk(reflect.ValueOf(&r.doc).Elem(), RootPath())

	used := r.doc.ExtensionsUsed
	var supported []string
	if opt.RequireSupported {
		var e E
		supported = e.Supported()
	}
	req := RootPath().Field("extensionsRequired")
	for i, name := range r.doc.ExtensionsRequired {
		data := map[string]string{"name": name}
		if !slices.Contains(used, name) {
			g.add(req.Index(i).Issue(CodeExtensionNotUsed, i18n.T(CodeExtensionNotUsed, data), "name", name))
		}
		if opt.RequireSupported && !slices.Contains(supported, name) {
			g.add(req.Index(i).Issue(CodeUnsupportedExtension, i18n.T(CodeUnsupportedExtension, data), "name", name))
		}
	}
	return g.issues
}
