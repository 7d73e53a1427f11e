package gltf

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	json "github.com/goccy/go-json"

	"github.com/reoring/gltf/codec"
	"github.com/reoring/gltf/i18n"
)

var unmarshalerType = reflect.TypeFor[json.Unmarshaler]()

// shapeChecker compares a decoded value tree with the Go type it will be
// decoded into. Object keys not declared by the type are rejected, except
// below types that decode themselves (extension slots and enums), which
// judge their own input.
type shapeChecker struct {
	issues   Issues
	failFast bool
}

func (c *shapeChecker) stop() bool { return c.failFast && len(c.issues) > 0 }

func (c *shapeChecker) add(is Issue) {
	if c.stop() {
		return
	}
	c.issues = AppendIssues(c.issues, is)
}

func (c *shapeChecker) typeIssue(p PathRef, want string, got any) {
	g := jsonKind(got)
	c.add(p.Issue(CodeInvalidType, i18n.T(CodeInvalidType, map[string]string{"expected": want, "got": g}), "expected", want, "got", g))
}

func (c *shapeChecker) check(v any, t reflect.Type, p PathRef) {
	if c.stop() {
		return
	}
	if t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(unmarshalerType) {
		c.checkUnmarshaler(v, t, p)
		return
	}
	switch t.Kind() {
	case reflect.Pointer:
		c.check(v, t.Elem(), p)
	case reflect.Struct:
		obj, ok := v.(map[string]any)
		if !ok {
			c.typeIssue(p, "object", v)
			return
		}
		c.checkObject(obj, t, p)
	case reflect.Slice:
		arr, ok := v.([]any)
		if !ok {
			c.typeIssue(p, "array", v)
			return
		}
		for i, e := range arr {
			c.check(e, t.Elem(), p.Index(i))
		}
	case reflect.Array:
		arr, ok := v.([]any)
		if !ok || len(arr) != t.Len() {
			c.typeIssue(p, fmt.Sprintf("array of %d", t.Len()), v)
			return
		}
		for i, e := range arr {
			c.check(e, t.Elem(), p.Index(i))
		}
	case reflect.Map:
		obj, ok := v.(map[string]any)
		if !ok {
			c.typeIssue(p, "object", v)
			return
		}
		for _, k := range sortedKeys(obj) {
			if !utf8.ValidString(k) {
				c.utf8Issue(p.Field(k))
				continue
			}
			c.check(obj[k], t.Elem(), p.Field(k))
		}
	case reflect.String:
		s, ok := v.(string)
		if !ok {
			c.typeIssue(p, "string", v)
			return
		}
		if !utf8.ValidString(s) {
			c.utf8Issue(p)
		}
	case reflect.Bool:
		if _, ok := v.(bool); !ok {
			c.typeIssue(p, "boolean", v)
		}
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		c.checkUint(v, t.Bits(), p)
	case reflect.Float32, reflect.Float64:
		n, ok := v.(json.Number)
		if !ok {
			c.typeIssue(p, "number", v)
			return
		}
		if _, err := strconv.ParseFloat(string(n), t.Bits()); err != nil {
			c.add(p.Issue(CodeOverflow, i18n.T(CodeOverflow, map[string]string{"got": string(n)}), "got", string(n)))
		}
	}
}

func (c *shapeChecker) checkObject(obj map[string]any, t reflect.Type, p PathRef) {
	fields := structFields(t)
	for _, k := range sortedKeys(obj) {
		i := slices.IndexFunc(fields, func(f fieldInfo) bool { return f.key == k })
		if i < 0 {
			c.add(p.Field(k).Issue(CodeUnknownKey, i18n.T(CodeUnknownKey, map[string]string{"key": k}), "key", k))
			continue
		}
		c.check(obj[k], fields[i].typ, p.Field(k))
	}
	for _, f := range fields {
		if _, ok := obj[f.key]; f.required && !ok {
			c.add(p.Field(f.key).Issue(CodeRequired, i18n.T(CodeRequired, map[string]string{"key": f.key}), "key", f.key))
		}
	}
}

// utf8Issue reports a string holding bytes that are not valid UTF-8.
func (c *shapeChecker) utf8Issue(p PathRef) {
	c.add(p.Issue(CodeInvalidType, i18n.T(CodeInvalidType, map[string]string{"expected": "UTF-8 string", "got": "invalid UTF-8"}), "expected", "UTF-8 string", "got", "invalid UTF-8"))
}

// checkUint accepts JSON integers in [0, 2^bits).
func (c *shapeChecker) checkUint(v any, bits int, p PathRef) {
	n, ok := v.(json.Number)
	if !ok {
		c.typeIssue(p, "integer", v)
		return
	}
	s := string(n)
	_, err := strconv.ParseUint(s, 10, bits)
	if err == nil {
		return
	}
	if errors.Is(err, strconv.ErrRange) {
		c.add(p.Issue(CodeOverflow, i18n.T(CodeOverflow, map[string]string{"got": s}), "got", s))
		return
	}
	c.add(p.Issue(CodeInvalidType, i18n.T(CodeInvalidType, map[string]string{"expected": "non-negative integer", "got": s}), "expected", "non-negative integer", "got", s))
}

// checkUnmarshaler hands the subtree to the type's own UnmarshalJSON.
func (c *shapeChecker) checkUnmarshaler(v any, t reflect.Type, p PathRef) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.add(Issue{Path: p.Pointer(), Code: CodeParseError, Message: err.Error(), Cause: err})
		return
	}
	err = reflect.New(t).Interface().(json.Unmarshaler).UnmarshalJSON(raw)
	if err == nil {
		return
	}
	var ee *codec.EnumError
	if errors.As(err, &ee) {
		msg := i18n.T(CodeInvalidEnum, map[string]string{"enum": ee.Enum, "got": ee.Got, "accepted": strings.Join(ee.Accepted, ", ")})
		is := p.Issue(CodeInvalidEnum, msg, "enum", ee.Enum, "got", ee.Got, "accepted", ee.Accepted)
		is.Cause = err
		c.add(is)
		return
	}
	c.add(Issue{Path: p.Pointer(), Code: CodeInvalidType, Message: err.Error(), Cause: err})
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
