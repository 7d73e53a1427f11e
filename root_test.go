package gltf_test

import (
	"errors"
	"strconv"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/reoring/gltf"
)

type (
	ne = gltf.NoExtensions
	nx = gltf.NoExtras
)

const oneOfEach = `{"asset":{},
	"accessors":[{"componentType":5126,"count":1,"type":"SCALAR"}],
	"animations":[{"channels":[],"samplers":[]}],
	"buffers":[{"byteLength":1}],
	"bufferViews":[{"buffer":0,"byteLength":1}],
	"cameras":[{"type":"orthographic","orthographic":{"xmag":1,"ymag":1,"zfar":10,"znear":0.5}}],
	"images":[{"uri":"a.png"}],
	"materials":[{}],
	"meshes":[{"primitives":[{"attributes":{"POSITION":0}}]}],
	"nodes":[{}],
	"samplers":[{}],
	"scenes":[{}],
	"skins":[{"joints":[0]}],
	"textures":[{}]
}`

func checkGet[T any](t *testing.T, doc *gltf.Document, kind string, want *T) {
	t.Helper()
	if want == nil {
		t.Fatalf("%s: accessor returned nil for index 0", kind)
	}
	got, err := gltf.Get(doc, gltf.Index[T](0))
	if err != nil {
		t.Fatalf("%s: get: %v", kind, err)
	}
	if got != want {
		t.Fatalf("%s: Get and the per-kind accessor disagree", kind)
	}
	if n := len(gltf.All[T](doc)); n != 1 {
		t.Fatalf("%s: All returned %d elements", kind, n)
	}

	_, err = gltf.Get(doc, gltf.Index[T](1))
	var ie *gltf.IndexError
	if !errors.As(err, &ie) {
		t.Fatalf("%s: expected *IndexError, got %v", kind, err)
	}
	if diff := cmp.Diff(gltf.IndexError{Kind: kind, Index: 1, Len: 1}, *ie); diff != "" {
		t.Fatalf("%s: IndexError mismatch (-want +got):\n%s", kind, diff)
	}
}

func TestGet_EveryKind(t *testing.T) {
	doc := importDoc(t, oneOfEach)

	checkGet(t, doc, "Accessor", doc.Accessor(0))
	checkGet(t, doc, "Animation", doc.Animation(0))
	checkGet(t, doc, "Buffer", doc.Buffer(0))
	checkGet(t, doc, "BufferView", doc.BufferView(0))
	checkGet(t, doc, "Camera", doc.Camera(0))
	checkGet(t, doc, "Image", doc.Image(0))
	checkGet(t, doc, "Material", doc.Material(0))
	checkGet(t, doc, "Mesh", doc.Mesh(0))
	checkGet(t, doc, "Node", doc.Node(0))
	checkGet(t, doc, "Sampler", doc.Sampler(0))
	checkGet(t, doc, "Scene", doc.Scene(0))
	checkGet(t, doc, "Skin", doc.Skin(0))
	checkGet(t, doc, "Texture", doc.Texture(0))
}

func TestAccessors_OutOfRangeIsNil(t *testing.T) {
	doc := importDoc(t, `{"asset":{}}`)
	if doc.Mesh(0) != nil || doc.Node(7) != nil || doc.Camera(4294967295) != nil {
		t.Fatalf("out-of-range accessors must return nil")
	}
	if _, err := gltf.Get(doc, gltf.Index[gltf.Mesh[ne, nx]](0)); err == nil {
		t.Fatalf("expected an error for an empty collection")
	}
}

func TestGet_UnknownKind(t *testing.T) {
	doc := importDoc(t, oneOfEach)
	_, err := gltf.Get(doc, gltf.Index[gltf.AnimationSampler[ne, nx]](0))
	if !errors.Is(err, gltf.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if gltf.All[gltf.AnimationSampler[ne, nx]](doc) != nil {
		t.Fatalf("All should be nil for a type without a collection")
	}
}

func TestIndex_RoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 7, 1 << 16, 1<<32 - 1} {
		var idx gltf.Index[gltf.Node[ne, nx]]
		if err := json.Unmarshal([]byte(strconv.FormatUint(uint64(v), 10)), &idx); err != nil {
			t.Fatalf("unmarshal %d: %v", v, err)
		}
		if idx.Value() != v {
			t.Fatalf("round-trip of %d returned %d", v, idx.Value())
		}
		b, err := json.Marshal(idx)
		if err != nil || string(b) != idx.String() {
			t.Fatalf("encode of %d: %s, %v", v, b, err)
		}
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	in := `{
		"asset": {"version": "2.0", "generator": "g"},
		"extensionsUsed": ["KHR_x"],
		"scene": 0,
		"scenes": [{"nodes": [0], "name": "s"}],
		"nodes": [
			{"mesh": 0, "children": [1], "translation": [1, 2, 3]},
			{"camera": 0, "rotation": [0, 0, 0, 1], "scale": [2, 2, 2]}
		],
		"meshes": [{"primitives": [{"attributes": {"POSITION": 0}, "indices": 1, "mode": 1, "material": 0}]}],
		"materials": [{
			"pbrMetallicRoughness": {"baseColorFactor": [1, 0, 0, 1], "metallicFactor": 0},
			"alphaMode": "MASK", "alphaCutoff": 0.25, "doubleSided": true
		}],
		"accessors": [
			{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3", "max": [1, 1, 1], "min": [0, 0, 0]},
			{"bufferView": 1, "componentType": 5123, "count": 3, "type": "SCALAR"}
		],
		"bufferViews": [
			{"buffer": 0, "byteLength": 36, "target": 34962},
			{"buffer": 0, "byteOffset": 36, "byteLength": 6, "target": 34963}
		],
		"buffers": [{"byteLength": 42, "uri": "data.bin"}],
		"cameras": [{"type": "perspective", "perspective": {"yfov": 0.5, "znear": 0.25}}],
		"samplers": [{"magFilter": 9729, "minFilter": 9987, "wrapS": 33071, "wrapT": 33648}],
		"images": [{"uri": "a.png"}],
		"textures": [{"source": 0, "sampler": 0}],
		"extensions": {}
	}`
	doc := importDoc(t, in)
	out, err := doc.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var want, got any
	if err := json.Unmarshal([]byte(in), &want); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}

	// The encoded form imports again.
	importDoc(t, string(out))
}

func TestIssues_Error(t *testing.T) {
	iss := importIssues(t, `{"asset":{},"a":1,"b":2,"c":3,"d":4}`)
	msg := iss.Error()
	if want := "unknown_key at /a: unknown key a"; len(msg) < len(want) || msg[:len(want)] != want {
		t.Fatalf("unexpected summary: %q", msg)
	}
	if want := "(total 4)"; msg[len(msg)-len(want):] != want {
		t.Fatalf("summary should count hidden issues: %q", msg)
	}
}
