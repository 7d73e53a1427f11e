package gltf

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/gltf/codec"
	eng "github.com/reoring/gltf/internal/engine"
)

// Import decodes a glTF JSON document and validates its index graph. E and X
// select the payload types decoded from every "extensions" and "extras" key.
// On failure the error is an Issues value listing every problem found, unless
// FailFast is set.
//
// Import runs in stages, each of which must pass before the next starts:
// syntax (with duplicate-key and depth enforcement), shape (unknown keys,
// required properties, types, enumerations), typed decode of the checked
// tree and graph validation. Under the Ignore duplicate-key policy the last
// occurrence of a key replaces earlier ones entirely.
func Import[E Extensions, X Extras](data []byte, opts ...ImportOpt) (*Root[E, X], error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, singleIssue(CodeTruncated, "max bytes exceeded")
	}

	tree, err := eng.DecodeTree(eng.WrapWithEnforcement(eng.NewBytes(data), eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		IssueSink:   warningSink(opt.OnWarning),
	}))
	if err != nil {
		return nil, toIssues(err)
	}

	sc := &shapeChecker{failFast: opt.FailFast}
	sc.check(tree, reflect.TypeFor[document[E, X]](), RootPath())
	if len(sc.issues) > 0 {
		return nil, sc.issues
	}

	// decode the checked tree, not data: duplicate keys were resolved there
	checked, err := json.Marshal(tree)
	if err != nil {
		return nil, toIssues(err)
	}
	var doc document[E, X]
	if err := json.Unmarshal(checked, &doc); err != nil {
		return nil, toIssues(err)
	}

	r := newRoot(doc)
	if iss := r.validate(opt); len(iss) > 0 {
		return nil, iss
	}
	return r, nil
}

// ImportReader reads the whole document from rd and imports it. When
// MaxBytes is set, reading stops once the cap is exceeded.
func ImportReader[E Extensions, X Extras](rd io.Reader, opts ...ImportOpt) (*Root[E, X], error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		rd = io.LimitReader(rd, opt.MaxBytes+1)
	}
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, causeIssue(CodeParseError, err.Error(), err)
	}
	return Import[E, X](data, opts...)
}

// ImportYAML imports a document written in YAML. The YAML is converted to
// JSON first; issue paths refer to the converted document.
func ImportYAML[E Extensions, X Extras](data []byte, opts ...ImportOpt) (*Root[E, X], error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, singleIssue(CodeTruncated, "max bytes exceeded")
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, causeIssue(CodeParseError, err.Error(), err)
	}
	v, err := normalizeYAML(v)
	if err != nil {
		return nil, causeIssue(CodeParseError, err.Error(), err)
	}
	js, err := json.Marshal(v)
	if err != nil {
		return nil, causeIssue(CodeParseError, err.Error(), err)
	}
	// the size cap applied to the YAML input
	opt.MaxBytes = 0
	return Import[E, X](js, opt)
}

// normalizeYAML converts map[any]any produced for non-string keyed mappings
// into map[string]any so the value can be encoded as JSON.
func normalizeYAML(v any) (any, error) {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			n, err := normalizeYAML(e)
			if err != nil {
				return nil, err
			}
			x[k] = n
		}
		return x, nil
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("yaml: mapping key %v is not a string", k)
			}
			n, err := normalizeYAML(e)
			if err != nil {
				return nil, err
			}
			out[ks] = n
		}
		return out, nil
	case []any:
		for i, e := range x {
			n, err := normalizeYAML(e)
			if err != nil {
				return nil, err
			}
			x[i] = n
		}
		return x, nil
	}
	return v, nil
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Warn:
		return eng.DupWarn
	case Error:
		return eng.DupError
	}
	return eng.DupIgnore
}

func warningSink(fn func(Issue)) func(eng.SimpleIssue) {
	if fn == nil {
		return nil
	}
	return func(si eng.SimpleIssue) {
		fn(Issue{Path: si.Path, Code: si.Code, Message: si.Message})
	}
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, Issue{Code: ie.Code, Path: ie.Path, Message: ie.Message, Cause: err})
	}
	var ee *codec.EnumError
	if errors.As(err, &ee) {
		return causeIssue(CodeInvalidEnum, ee.Error(), err)
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return causeIssue(CodeTruncated, "unexpected end of input", err)
	}
	return causeIssue(CodeParseError, err.Error(), err)
}

// singleIssue reports a document-level failure at the root path.
func singleIssue(code, msg string) Issues {
	return AppendIssues(nil, RootPath().Issue(code, msg))
}

func causeIssue(code, msg string, cause error) Issues {
	is := RootPath().Issue(code, msg)
	is.Cause = cause
	return AppendIssues(nil, is)
}
