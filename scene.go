package gltf

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Node is an element of the node hierarchy. Its local transform is given
// either by Matrix or by the Translation, Rotation and Scale properties.
type Node[E Extensions, X Extras] struct {
	Camera   *Index[Camera[E, X]] `json:"camera,omitempty"`
	Children []Index[Node[E, X]]  `json:"children,omitempty"`
	Skin     *Index[Skin[E, X]]   `json:"skin,omitempty"`
	// Matrix is column-major, as stored in the document.
	Matrix *mgl32.Mat4        `json:"matrix,omitempty"`
	Mesh   *Index[Mesh[E, X]] `json:"mesh,omitempty"`
	// Rotation is a unit quaternion stored as (x, y, z, w).
	Rotation    *mgl32.Vec4 `json:"rotation,omitempty"`
	Scale       *mgl32.Vec3 `json:"scale,omitempty"`
	Translation *mgl32.Vec3 `json:"translation,omitempty"`
	Weights     []float32   `json:"weights,omitempty"`
	Name        string      `json:"name,omitempty"`
	Extensions  *Slot[E]    `json:"extensions,omitempty"`
	Extras      *Slot[X]    `json:"extras,omitempty"`
}

// LocalTransform returns the node's transform relative to its parent.
func (n *Node[E, X]) LocalTransform() mgl32.Mat4 {
	if n.Matrix != nil {
		return *n.Matrix
	}
	m := mgl32.Ident4()
	if n.Translation != nil {
		m = mgl32.Translate3D(n.Translation[0], n.Translation[1], n.Translation[2])
	}
	if n.Rotation != nil {
		r := n.Rotation
		q := mgl32.Quat{W: r[3], V: mgl32.Vec3{r[0], r[1], r[2]}}
		m = m.Mul4(q.Normalize().Mat4())
	}
	if n.Scale != nil {
		m = m.Mul4(mgl32.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2]))
	}
	return m
}

// Scene is a set of root nodes.
type Scene[E Extensions, X Extras] struct {
	Nodes      []Index[Node[E, X]] `json:"nodes,omitempty"`
	Name       string              `json:"name,omitempty"`
	Extensions *Slot[E]            `json:"extensions,omitempty"`
	Extras     *Slot[X]            `json:"extras,omitempty"`
}

// VisitFunc is called for every node reached by Traverse with the node's
// index, its depth below the scene root and its world transform.
type VisitFunc[E Extensions, X Extras] func(idx Index[Node[E, X]], n *Node[E, X], depth int, world mgl32.Mat4) error

// Traverse walks the node hierarchy of a scene depth-first in document
// order. It fails when a node is reachable twice, which glTF forbids.
func (r *Root[E, X]) Traverse(scene Index[Scene[E, X]], fn VisitFunc[E, X]) error {
	s := r.Scene(scene)
	if s == nil {
		return &IndexError{Kind: "Scene", Index: scene.Value(), Len: len(r.doc.Scenes)}
	}
	seen := make(map[Index[Node[E, X]]]bool)
	var visit func(idx Index[Node[E, X]], depth int, parent mgl32.Mat4) error
	visit = func(idx Index[Node[E, X]], depth int, parent mgl32.Mat4) error {
		if seen[idx] {
			return fmt.Errorf("gltf: node %d reached twice in scene %d", idx, scene)
		}
		seen[idx] = true
		n := r.Node(idx)
		world := parent.Mul4(n.LocalTransform())
		if err := fn(idx, n, depth, world); err != nil {
			return err
		}
		for _, c := range n.Children {
			if err := visit(c, depth+1, world); err != nil {
				return err
			}
		}
		return nil
	}
	for _, idx := range s.Nodes {
		if err := visit(idx, 0, mgl32.Ident4()); err != nil {
			return err
		}
	}
	return nil
}
