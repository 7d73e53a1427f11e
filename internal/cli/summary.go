package cli

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/reoring/gltf"
)

// summary is the report printed by inspect.
type summary struct {
	File               string         `json:"file" yaml:"file"`
	Version            string         `json:"version" yaml:"version"`
	Generator          string         `json:"generator,omitempty" yaml:"generator,omitempty"`
	ExtensionsUsed     []string       `json:"extensionsUsed,omitempty" yaml:"extensionsUsed,omitempty"`
	ExtensionsRequired []string       `json:"extensionsRequired,omitempty" yaml:"extensionsRequired,omitempty"`
	Counts             map[string]int `json:"counts" yaml:"counts"`
	Scenes             []sceneSummary `json:"scenes,omitempty" yaml:"scenes,omitempty"`
}

type sceneSummary struct {
	Index   uint32        `json:"index" yaml:"index"`
	Name    string        `json:"name,omitempty" yaml:"name,omitempty"`
	Default bool          `json:"default,omitempty" yaml:"default,omitempty"`
	Nodes   []nodeSummary `json:"nodes,omitempty" yaml:"nodes,omitempty"`
}

// nodeSummary describes a node as reached from its scene. Position is the
// node origin in scene space.
type nodeSummary struct {
	Index    uint32     `json:"index" yaml:"index"`
	Name     string     `json:"name,omitempty" yaml:"name,omitempty"`
	Depth    int        `json:"depth" yaml:"depth"`
	Mesh     *uint32    `json:"mesh,omitempty" yaml:"mesh,omitempty"`
	Camera   *uint32    `json:"camera,omitempty" yaml:"camera,omitempty"`
	Position [3]float32 `json:"position" yaml:"position,flow"`
}

func buildSummary(file string, doc *gltf.Document) (summary, error) {
	s := summary{
		File:               file,
		Version:            doc.Asset().SchemaVersion(),
		Generator:          doc.Asset().Generator,
		ExtensionsUsed:     doc.ExtensionsUsed(),
		ExtensionsRequired: doc.ExtensionsRequired(),
		Counts: map[string]int{
			"accessors":   len(doc.Accessors()),
			"animations":  len(doc.Animations()),
			"buffers":     len(doc.Buffers()),
			"bufferViews": len(doc.BufferViews()),
			"cameras":     len(doc.Cameras()),
			"images":      len(doc.Images()),
			"materials":   len(doc.Materials()),
			"meshes":      len(doc.Meshes()),
			"nodes":       len(doc.Nodes()),
			"samplers":    len(doc.Samplers()),
			"scenes":      len(doc.Scenes()),
			"skins":       len(doc.Skins()),
			"textures":    len(doc.Textures()),
		},
	}
	def, _ := doc.DefaultScene()
	for i, sc := range doc.Scenes() {
		idx := gltf.Index[gltf.Scene[gltf.NoExtensions, gltf.NoExtras]](i)
		ss := sceneSummary{Index: idx.Value(), Name: sc.Name, Default: idx == def}
		err := doc.Traverse(idx, func(ni gltf.Index[gltf.Node[gltf.NoExtensions, gltf.NoExtras]], n *gltf.Node[gltf.NoExtensions, gltf.NoExtras], depth int, world mgl32.Mat4) error {
			ns := nodeSummary{Index: ni.Value(), Name: n.Name, Depth: depth}
			ns.Position = [3]float32(world.Col(3).Vec3())
			if n.Mesh != nil {
				v := n.Mesh.Value()
				ns.Mesh = &v
			}
			if n.Camera != nil {
				v := n.Camera.Value()
				ns.Camera = &v
			}
			ss.Nodes = append(ss.Nodes, ns)
			return nil
		})
		if err != nil {
			return summary{}, err
		}
		s.Scenes = append(s.Scenes, ss)
	}
	return s, nil
}
