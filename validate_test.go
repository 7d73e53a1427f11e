package gltf_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/gltf"
)

func TestValidate_NodeMeshOutOfRange(t *testing.T) {
	iss := importIssues(t, `{"asset":{},"meshes":[{"primitives":[{"attributes":{}}]}],"nodes":[{"mesh":1}]}`)
	it, ok := findIssue(iss, gltf.CodeIndexOutOfRange, "/nodes/0/mesh")
	if !ok {
		t.Fatalf("expected index_out_of_range at /nodes/0/mesh, got %v", iss)
	}
	want := map[string]any{"kind": "Mesh", "index": uint32(1), "len": 1}
	if diff := cmp.Diff(want, it.Params); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
	if it.Message != "Mesh index 1 out of range (len 1)" {
		t.Fatalf("unexpected message: %q", it.Message)
	}
}

func TestValidate_ReportsEveryDanglingIndex(t *testing.T) {
	js := `{
		"asset": {},
		"scenes": [{"nodes": [0, 5]}],
		"nodes": [{"children": [2], "camera": 0, "skin": 0}],
		"meshes": [{"primitives": [{"attributes": {"POSITION": 0, "NORMAL": 9}, "material": 3}]}],
		"textures": [{"source": 0, "sampler": 0}]
	}`
	iss := importIssues(t, js)
	var got []string
	for _, it := range iss {
		if it.Code != gltf.CodeIndexOutOfRange {
			t.Fatalf("unexpected issue %v", it)
		}
		got = append(got, it.Path)
	}
	want := []string{
		"/meshes/0/primitives/0/attributes/NORMAL",
		"/meshes/0/primitives/0/attributes/POSITION",
		"/meshes/0/primitives/0/material",
		"/nodes/0/camera",
		"/nodes/0/children/0",
		"/nodes/0/skin",
		"/scenes/0/nodes/1",
		"/textures/0/sampler",
		"/textures/0/source",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}

	iss = importIssues(t, js, gltf.ImportOpt{FailFast: true})
	if len(iss) != 1 {
		t.Fatalf("fail-fast should report one issue, got %v", iss)
	}
}

func TestValidate_AnimationSamplersAreLocal(t *testing.T) {
	accessors := `"accessors":[{"componentType":5126,"count":2,"type":"SCALAR"},{"componentType":5126,"count":2,"type":"VEC3"}]`
	nodes := `"nodes":[{}]`

	ok := `{"asset":{},` + accessors + `,` + nodes + `,"animations":[
		{"channels":[{"sampler":1,"target":{"node":0,"path":"translation"}}],
		 "samplers":[{"input":0,"output":1},{"input":0,"output":1,"interpolation":"STEP"}]}
	]}`
	doc := importDoc(t, ok)
	a := &doc.Animations()[0]
	s := a.Sampler(a.Channels[0].Sampler)
	if s == nil || s.Interpolation != gltf.Step {
		t.Fatalf("channel should resolve to the STEP sampler, got %+v", s)
	}

	// The second animation has one sampler, so sampler 1 is out of range even
	// though the first animation has two.
	bad := `{"asset":{},` + accessors + `,` + nodes + `,"animations":[
		{"channels":[],"samplers":[{"input":0,"output":1},{"input":0,"output":1}]},
		{"channels":[{"sampler":1,"target":{"path":"rotation"}}],"samplers":[{"input":0,"output":1}]}
	]}`
	iss := importIssues(t, bad)
	it, found := findIssue(iss, gltf.CodeIndexOutOfRange, "/animations/1/channels/0/sampler")
	if !found || it.Params["kind"] != "AnimationSampler" || it.Params["len"] != 1 {
		t.Fatalf("expected sampler issue scoped to animation 1, got %v", iss)
	}
	if len(iss) != 1 {
		t.Fatalf("expected exactly one issue, got %v", iss)
	}
}

func TestValidate_Scene(t *testing.T) {
	// Without a scene key the default first slot is not checked.
	importDoc(t, `{"asset":{}}`)

	iss := importIssues(t, `{"asset":{},"scene":0}`)
	if _, ok := findIssue(iss, gltf.CodeIndexOutOfRange, "/scene"); !ok {
		t.Fatalf("expected /scene issue, got %v", iss)
	}
}

func TestValidate_SparseAndSkin(t *testing.T) {
	js := `{"asset":{},
		"buffers":[{"byteLength":8}],
		"bufferViews":[{"buffer":0,"byteLength":8}],
		"accessors":[{"componentType":5126,"count":4,"type":"SCALAR",
			"sparse":{"count":1,"indices":{"bufferView":0,"componentType":5125},"values":{"bufferView":2}}}],
		"nodes":[{}],
		"skins":[{"joints":[0,1],"inverseBindMatrices":0}]
	}`
	iss := importIssues(t, js)
	for _, p := range []string{"/accessors/0/sparse/values/bufferView", "/skins/0/joints/1"} {
		if _, ok := findIssue(iss, gltf.CodeIndexOutOfRange, p); !ok {
			t.Fatalf("expected issue at %s, got %v", p, iss)
		}
	}
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %v", iss)
	}
}

func TestValidate_MaterialTextures(t *testing.T) {
	js := `{"asset":{},"textures":[{}],
		"materials":[{"pbrMetallicRoughness":{"baseColorTexture":{"index":0},"metallicRoughnessTexture":{"index":1}},
		              "normalTexture":{"index":2,"scale":0.5}}]}`
	iss := importIssues(t, js)
	want := []string{
		"/materials/0/pbrMetallicRoughness/metallicRoughnessTexture/index",
		"/materials/0/normalTexture/index",
	}
	var got []string
	for _, it := range iss {
		got = append(got, it.Path)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_ExtensionsRequired(t *testing.T) {
	iss := importIssues(t, `{"asset":{},"extensionsUsed":["A"],"extensionsRequired":["A","B"]}`)
	it, ok := findIssue(iss, gltf.CodeExtensionNotUsed, "/extensionsRequired/1")
	if !ok || it.Params["name"] != "B" {
		t.Fatalf("expected extension_not_used for B, got %v", iss)
	}

	js := `{"asset":{},"extensionsUsed":["A"],"extensionsRequired":["A"]}`
	importDoc(t, js)
	iss = importIssues(t, js, gltf.ImportOpt{RequireSupported: true})
	if _, ok := findIssue(iss, gltf.CodeUnsupportedExtension, "/extensionsRequired/0"); !ok {
		t.Fatalf("NoExtensions supports nothing, got %v", iss)
	}
}

type nodeRef struct {
	Node gltf.Index[gltf.Node[refExt, gltf.NoExtras]] `json:"node"`
}

type refExt struct {
	Ref *nodeRef `json:"VENDOR_ref,omitempty"`
}

func (refExt) Supported() []string { return []string{"VENDOR_ref"} }

func TestValidate_IndexInsideExtension(t *testing.T) {
	js := `{"asset":{},"extensionsUsed":["VENDOR_ref"],"nodes":[{"extensions":{"VENDOR_ref":{"node":9}}}]}`
	_, err := gltf.Import[refExt, gltf.NoExtras]([]byte(js))
	iss, ok := gltf.AsIssues(err)
	if !ok {
		t.Fatalf("expected issues, got %v", err)
	}
	it, ok := findIssue(iss, gltf.CodeIndexOutOfRange, "/nodes/0/extensions/VENDOR_ref/node")
	if !ok {
		t.Fatalf("expected index_out_of_range inside the extension, got %v", iss)
	}
	want := map[string]any{"kind": "Node", "index": uint32(9), "len": 1}
	if diff := cmp.Diff(want, it.Params); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}

	doc, err := gltf.Import[refExt, gltf.NoExtras]([]byte(`{"asset":{},"nodes":[{"extensions":{"VENDOR_ref":{"node":0}}}]}`))
	if err != nil {
		t.Fatalf("an in-range reference should import: %v", err)
	}
	ext, _ := doc.Node(0).Extensions.Get()
	if ext.Ref == nil || doc.Node(ext.Ref.Node) == nil {
		t.Fatalf("reference did not resolve: %+v", ext)
	}
}
