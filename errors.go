package gltf

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeInvalidType  = "invalid_type"
	CodeRequired     = "required"
	CodeUnknownKey   = "unknown_key"
	CodeDuplicateKey = "duplicate_key"
	CodeInvalidEnum  = "invalid_enum"
	CodeParseError   = "parse_error"
	CodeOverflow     = "overflow"
	CodeTruncated    = "truncated"
	// Graph passes run after a successful decode.
	CodeIndexOutOfRange      = "index_out_of_range"
	CodeUnknownKind          = "unknown_kind"
	CodeExtensionNotUsed     = "extension_not_used"
	CodeUnsupportedExtension = "unsupported_extension"
)

// Issue represents a single decode or validation failure.
type Issue struct {
	Path    string // JSON Pointer (for example: /nodes/2/mesh).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"kind":"Mesh", "index":7, "len":2}).
	Params map[string]any
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. index_out_of_range at /nodes/0/mesh: ...
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n := len(iss); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.As reaches them.
func (iss Issues) Unwrap() []error {
	var errs []error
	for _, it := range iss {
		if it.Cause != nil {
			errs = append(errs, it.Cause)
		}
	}
	return errs
}

// Has reports whether any issue carries the code.
func (iss Issues) Has(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ErrUnknownKind is returned by Get when the index type does not address any
// collection of the Root.
var ErrUnknownKind = errors.New("gltf: index does not address a root collection")

// IndexError reports an index outside its target collection.
type IndexError struct {
	Kind  string
	Index uint32
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("gltf: %s index %d out of range (len %d)", e.Kind, e.Index, e.Len)
}
