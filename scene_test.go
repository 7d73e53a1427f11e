package gltf_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/reoring/gltf"
)

func TestNode_LocalTransform(t *testing.T) {
	doc := importDoc(t, `{"asset":{},"nodes":[
		{},
		{"translation":[1,2,3],"rotation":[0,0.7071068,0,0.7071068],"scale":[2,2,2]},
		{"matrix":[1,0,0,0, 0,1,0,0, 0,0,1,0, 5,6,7,1]}
	]}`)

	if m := doc.Node(0).LocalTransform(); m != mgl32.Ident4() {
		t.Fatalf("a node without transform is the identity, got %v", m)
	}

	// 90 degrees about +Y maps +X to -Z; scale 2 and translation (1,2,3).
	p := doc.Node(1).LocalTransform().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if !p.ApproxEqualThreshold(mgl32.Vec4{1, 2, 1, 1}, 1e-5) {
		t.Fatalf("unexpected transformed point %v", p)
	}

	m := doc.Node(2).LocalTransform()
	if m.Col(3) != (mgl32.Vec4{5, 6, 7, 1}) {
		t.Fatalf("matrix is column-major, got translation column %v", m.Col(3))
	}
}

func TestTraverse(t *testing.T) {
	doc := importDoc(t, `{"asset":{},
		"scenes":[{"nodes":[0,2]}],
		"nodes":[
			{"name":"a","translation":[1,0,0],"children":[1]},
			{"name":"b","translation":[0,1,0]},
			{"name":"c"}
		]}`)

	var names []string
	var depths []int
	var worldB mgl32.Mat4
	err := doc.Traverse(0, func(idx gltf.Index[gltf.Node[ne, nx]], n *gltf.Node[ne, nx], depth int, world mgl32.Mat4) error {
		names = append(names, n.Name)
		depths = append(depths, depth)
		if n.Name == "b" {
			worldB = world
		}
		return nil
	})
	if err != nil {
		t.Fatalf("traverse: %v", err)
	}
	if strings.Join(names, ",") != "a,b,c" {
		t.Fatalf("unexpected order %v", names)
	}
	if depths[0] != 0 || depths[1] != 1 || depths[2] != 0 {
		t.Fatalf("unexpected depths %v", depths)
	}
	if got := worldB.Col(3); got != (mgl32.Vec4{1, 1, 0, 1}) {
		t.Fatalf("world transform should compose parents, got %v", got)
	}

	var ie *gltf.IndexError
	if err := doc.Traverse(3, nil); !errors.As(err, &ie) || ie.Kind != "Scene" {
		t.Fatalf("expected a Scene IndexError, got %v", err)
	}
}

func TestTraverse_NodeReachedTwice(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		node string
	}{
		{"shared child", `{"asset":{},"scenes":[{"nodes":[0,1]}],"nodes":[{"children":[1]},{}]}`, "node 1"},
		{"cycle", `{"asset":{},"scenes":[{"nodes":[0]}],"nodes":[{"children":[1]},{"children":[0]}]}`, "node 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := importDoc(t, tc.doc)
			visits := 0
			err := doc.Traverse(0, func(gltf.Index[gltf.Node[ne, nx]], *gltf.Node[ne, nx], int, mgl32.Mat4) error {
				visits++
				return nil
			})
			if err == nil || !strings.Contains(err.Error(), tc.node+" reached twice") {
				t.Fatalf("expected %s to be reported, got %v", tc.node, err)
			}
			if visits != 2 {
				t.Fatalf("each node should be visited once before the walk stops, got %d visits", visits)
			}
		})
	}
}

func TestCamera_Projection(t *testing.T) {
	doc := importDoc(t, `{"asset":{},"cameras":[
		{"type":"perspective","perspective":{"yfov":1.0,"znear":0.1,"zfar":100,"aspectRatio":1.5}},
		{"type":"perspective","perspective":{"yfov":1.0,"znear":0.1}},
		{"type":"orthographic","orthographic":{"xmag":2,"ymag":1,"zfar":10,"znear":0}},
		{"type":"orthographic"}
	]}`)

	m, ok := doc.Camera(0).Projection(4)
	if !ok || m != mgl32.Perspective(1.0, 1.5, 0.1, 100) {
		t.Fatalf("aspectRatio of the camera should win, got %v", m)
	}

	m, ok = doc.Camera(1).Projection(2)
	if !ok {
		t.Fatalf("infinite perspective should be available")
	}
	f := float32(1 / math.Tan(0.5))
	if !mgl32.FloatEqualThreshold(m[0], f/2, 1e-6) || m[10] != -1 || m[11] != -1 || !mgl32.FloatEqual(m[14], -0.2) {
		t.Fatalf("unexpected infinite projection %v", m)
	}

	m, ok = doc.Camera(2).Projection(1)
	if !ok || m != mgl32.Ortho(-2, 2, -1, 1, 0, 10) {
		t.Fatalf("unexpected orthographic projection %v", m)
	}

	if _, ok := doc.Camera(3).Projection(1); ok {
		t.Fatalf("a camera without its projection object has no matrix")
	}
}

func TestMaterial_Defaults(t *testing.T) {
	doc := importDoc(t, `{"asset":{},"materials":[{"pbrMetallicRoughness":{}},{"alphaMode":"BLEND","alphaCutoff":0.3,"emissiveFactor":[1,0.5,0],"pbrMetallicRoughness":{"roughnessFactor":0.25}}]}`)
	m := doc.Material(0)
	if m.AlphaMode != gltf.Opaque || m.Cutoff() != 0.5 || m.Emissive() != (mgl32.Vec3{}) {
		t.Fatalf("unexpected defaults %+v", m)
	}
	pbr := m.PBRMetallicRoughness
	if pbr.BaseColor() != (mgl32.Vec4{1, 1, 1, 1}) || pbr.Metallic() != 1 || pbr.Roughness() != 1 {
		t.Fatalf("unexpected PBR defaults %+v", pbr)
	}

	m = doc.Material(1)
	if m.AlphaMode != gltf.Blend || m.Cutoff() != 0.3 || m.Emissive() != (mgl32.Vec3{1, 0.5, 0}) {
		t.Fatalf("unexpected material %+v", m)
	}
	if m.PBRMetallicRoughness.Roughness() != 0.25 {
		t.Fatalf("unexpected roughness")
	}
}

func TestAccessor_ElementSize(t *testing.T) {
	doc := importDoc(t, `{"asset":{},"accessors":[
		{"componentType":5126,"count":1,"type":"MAT4"},
		{"componentType":5121,"count":1,"type":"VEC3"},
		{"componentType":5123,"count":1,"type":"SCALAR"}
	]}`)
	for i, want := range []int{64, 3, 2} {
		if got := doc.Accessor(gltf.Index[gltf.Accessor[ne, nx]](i)).ElementSize(); got != want {
			t.Fatalf("accessor %d: element size %d, want %d", i, got, want)
		}
	}
}
