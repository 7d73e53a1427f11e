package gltf

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Extensions is the capability selecting the payload decoded from every
// "extensions" object in a document. The payload type declares a field per
// extension it understands, keyed by the extension name; a field typed for
// one entity kind stays zero on the others. Keys the payload does not declare
// are ignored.
type Extensions interface {
	// Supported lists the extension names the payload understands.
	Supported() []string
}

// Extras is the capability selecting the payload decoded from every "extras"
// value in a document.
type Extras interface{ any }

// NoExtensions is the zero-size default Extensions capability. It accepts any
// JSON object and keeps nothing.
type NoExtensions struct{}

func (NoExtensions) Supported() []string { return nil }

func (*NoExtensions) UnmarshalJSON(b []byte) error {
	var probe map[string]json.RawMessage
	return json.Unmarshal(b, &probe)
}

func (NoExtensions) MarshalJSON() ([]byte, error) { return []byte("{}"), nil }

// NoExtras is the zero-size default Extras capability. It accepts any JSON
// value and keeps nothing.
type NoExtras struct{}

func (*NoExtras) UnmarshalJSON([]byte) error { return nil }

func (NoExtras) MarshalJSON() ([]byte, error) { return []byte("{}"), nil }

// RawExtras keeps the extras value verbatim so it survives a round trip.
type RawExtras json.RawMessage

func (r *RawExtras) UnmarshalJSON(b []byte) error {
	*r = append((*r)[:0], bytes.TrimSpace(b)...)
	return nil
}

func (r RawExtras) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// Decode unmarshals the kept value into v.
func (r RawExtras) Decode(v any) error { return json.Unmarshal(r, v) }

// Slot holds the payload of an "extensions" or "extras" key. A nil *Slot
// means the key was absent. Decoding inside a slot is lenient: the payload
// type decides which keys it keeps.
type Slot[C any] struct {
	Value C `gltf:"inline"`
}

func (s *Slot[C]) UnmarshalJSON(b []byte) error { return json.Unmarshal(b, &s.Value) }

func (s Slot[C]) MarshalJSON() ([]byte, error) { return json.Marshal(s.Value) }

// Get returns the payload and whether the key was present.
func (s *Slot[C]) Get() (C, bool) {
	if s == nil {
		var zero C
		return zero, false
	}
	return s.Value, true
}
