package gltf

import (
	"reflect"

	json "github.com/goccy/go-json"
)

// DefaultVersion is the glTF version assumed when asset.version is absent.
const DefaultVersion = "2.0"

// Asset holds metadata about the glTF asset.
type Asset[E Extensions, X Extras] struct {
	Copyright  string   `json:"copyright,omitempty"`
	Generator  string   `json:"generator,omitempty"`
	Version    string   `json:"version,omitempty"`
	MinVersion string   `json:"minVersion,omitempty"`
	Extensions *Slot[E] `json:"extensions,omitempty"`
	Extras     *Slot[X] `json:"extras,omitempty"`
}

// SchemaVersion returns Version, or DefaultVersion when it is empty.
func (a *Asset[E, X]) SchemaVersion() string {
	if a.Version == "" {
		return DefaultVersion
	}
	return a.Version
}

// document is the wire shape of a glTF file. Fields tagged with kind= are
// the collections Index values address.
type document[E Extensions, X Extras] struct {
	ExtensionsUsed     []string            `json:"extensionsUsed,omitempty"`
	ExtensionsRequired []string            `json:"extensionsRequired,omitempty"`
	Accessors          []Accessor[E, X]    `json:"accessors,omitempty" gltf:"kind=Accessor"`
	Animations         []Animation[E, X]   `json:"animations,omitempty" gltf:"kind=Animation"`
	Asset              Asset[E, X]         `json:"asset" gltf:"required"`
	Buffers            []Buffer[E, X]      `json:"buffers,omitempty" gltf:"kind=Buffer"`
	BufferViews        []BufferView[E, X]  `json:"bufferViews,omitempty" gltf:"kind=BufferView"`
	Cameras            []Camera[E, X]      `json:"cameras,omitempty" gltf:"kind=Camera"`
	Images             []Image[E, X]       `json:"images,omitempty" gltf:"kind=Image"`
	Materials          []Material[E, X]    `json:"materials,omitempty" gltf:"kind=Material"`
	Meshes             []Mesh[E, X]        `json:"meshes,omitempty" gltf:"kind=Mesh"`
	Nodes              []Node[E, X]        `json:"nodes,omitempty" gltf:"kind=Node"`
	Samplers           []Sampler[E, X]     `json:"samplers,omitempty" gltf:"kind=Sampler"`
	Scene              *Index[Scene[E, X]] `json:"scene,omitempty"`
	Scenes             []Scene[E, X]       `json:"scenes,omitempty" gltf:"kind=Scene"`
	Skins              []Skin[E, X]        `json:"skins,omitempty" gltf:"kind=Skin"`
	Textures           []Texture[E, X]     `json:"textures,omitempty" gltf:"kind=Texture"`
	Extensions         *Slot[E]            `json:"extensions,omitempty"`
	Extras             *Slot[X]            `json:"extras,omitempty"`
}

// collection describes a slice that Index values of one type address.
type collection struct {
	elem  reflect.Type
	kind  string
	n     int
	items any // the []T itself
}

// collectionsOf indexes the kind-tagged slices of a document by element type.
func collectionsOf(v reflect.Value) map[reflect.Type]collection {
	out := make(map[reflect.Type]collection)
	for _, f := range structFields(v.Type()) {
		if f.kind == "" {
			continue
		}
		fv := v.Field(f.index)
		elem := f.typ.Elem()
		out[elem] = collection{elem: elem, kind: f.kind, n: fv.Len(), items: fv.Interface()}
	}
	return out
}

// Root is an imported, validated glTF document. It is immutable: values
// returned by its methods point into the document and must be treated as
// read-only. A Root is safe for concurrent readers.
type Root[E Extensions, X Extras] struct {
	doc         document[E, X]
	collections map[reflect.Type]collection
}

// Document is a Root that ignores extension and extras payloads.
type Document = Root[NoExtensions, NoExtras]

func newRoot[E Extensions, X Extras](doc document[E, X]) *Root[E, X] {
	r := &Root[E, X]{doc: doc}
	r.collections = collectionsOf(reflect.ValueOf(&r.doc).Elem())
	return r
}

// Get returns the element idx addresses. The collection is chosen by the
// element type T carried in the Index. It returns ErrUnknownKind when no
// collection holds T and an *IndexError when idx is out of range.
func Get[T any, E Extensions, X Extras](r *Root[E, X], idx Index[T]) (*T, error) {
	c, ok := r.collections[reflect.TypeFor[T]()]
	if !ok {
		return nil, ErrUnknownKind
	}
	v := at(c.items.([]T), idx)
	if v == nil {
		return nil, &IndexError{Kind: c.kind, Index: idx.Value(), Len: c.n}
	}
	return v, nil
}

// All returns every element of the collection holding T, or nil when no
// collection holds T.
func All[T any, E Extensions, X Extras](r *Root[E, X]) []T {
	c, ok := r.collections[reflect.TypeFor[T]()]
	if !ok {
		return nil
	}
	return c.items.([]T)
}

// MarshalJSON encodes the document. Keys absent on import stay absent.
func (r *Root[E, X]) MarshalJSON() ([]byte, error) { return json.Marshal(&r.doc) }

// Asset returns the metadata included with this asset.
func (r *Root[E, X]) Asset() *Asset[E, X] { return &r.doc.Asset }

// ExtensionsUsed returns the names of the extensions the document uses.
func (r *Root[E, X]) ExtensionsUsed() []string { return r.doc.ExtensionsUsed }

// ExtensionsRequired returns the names of the extensions required to load
// the document.
func (r *Root[E, X]) ExtensionsRequired() []string { return r.doc.ExtensionsRequired }

// Extensions returns the root-level extensions payload.
func (r *Root[E, X]) Extensions() *Slot[E] { return r.doc.Extensions }

// Extras returns the root-level extras payload.
func (r *Root[E, X]) Extras() *Slot[X] { return r.doc.Extras }

// DefaultScene returns the index of the scene to display and whether the
// document named one. Without a "scene" key it is the first slot.
func (r *Root[E, X]) DefaultScene() (Index[Scene[E, X]], bool) {
	if r.doc.Scene == nil {
		return 0, false
	}
	return *r.doc.Scene, true
}

// Per-kind accessors. The single-element forms return nil for an index
// outside the collection.

func (r *Root[E, X]) Accessor(i Index[Accessor[E, X]]) *Accessor[E, X] {
	return at(r.doc.Accessors, i)
}
func (r *Root[E, X]) Accessors() []Accessor[E, X] { return r.doc.Accessors }

func (r *Root[E, X]) Animation(i Index[Animation[E, X]]) *Animation[E, X] {
	return at(r.doc.Animations, i)
}
func (r *Root[E, X]) Animations() []Animation[E, X] { return r.doc.Animations }

func (r *Root[E, X]) Buffer(i Index[Buffer[E, X]]) *Buffer[E, X] { return at(r.doc.Buffers, i) }
func (r *Root[E, X]) Buffers() []Buffer[E, X]                     { return r.doc.Buffers }

func (r *Root[E, X]) BufferView(i Index[BufferView[E, X]]) *BufferView[E, X] {
	return at(r.doc.BufferViews, i)
}
func (r *Root[E, X]) BufferViews() []BufferView[E, X] { return r.doc.BufferViews }

func (r *Root[E, X]) Camera(i Index[Camera[E, X]]) *Camera[E, X] { return at(r.doc.Cameras, i) }
func (r *Root[E, X]) Cameras() []Camera[E, X]                     { return r.doc.Cameras }

func (r *Root[E, X]) Image(i Index[Image[E, X]]) *Image[E, X] { return at(r.doc.Images, i) }
func (r *Root[E, X]) Images() []Image[E, X]                    { return r.doc.Images }

func (r *Root[E, X]) Material(i Index[Material[E, X]]) *Material[E, X] {
	return at(r.doc.Materials, i)
}
func (r *Root[E, X]) Materials() []Material[E, X] { return r.doc.Materials }

func (r *Root[E, X]) Mesh(i Index[Mesh[E, X]]) *Mesh[E, X] { return at(r.doc.Meshes, i) }
func (r *Root[E, X]) Meshes() []Mesh[E, X]                  { return r.doc.Meshes }

func (r *Root[E, X]) Node(i Index[Node[E, X]]) *Node[E, X] { return at(r.doc.Nodes, i) }
func (r *Root[E, X]) Nodes() []Node[E, X]                  { return r.doc.Nodes }

func (r *Root[E, X]) Sampler(i Index[Sampler[E, X]]) *Sampler[E, X] { return at(r.doc.Samplers, i) }
func (r *Root[E, X]) Samplers() []Sampler[E, X]                      { return r.doc.Samplers }

func (r *Root[E, X]) Scene(i Index[Scene[E, X]]) *Scene[E, X] { return at(r.doc.Scenes, i) }
func (r *Root[E, X]) Scenes() []Scene[E, X]                    { return r.doc.Scenes }

func (r *Root[E, X]) Skin(i Index[Skin[E, X]]) *Skin[E, X] { return at(r.doc.Skins, i) }
func (r *Root[E, X]) Skins() []Skin[E, X]                  { return r.doc.Skins }

func (r *Root[E, X]) Texture(i Index[Texture[E, X]]) *Texture[E, X] { return at(r.doc.Textures, i) }
func (r *Root[E, X]) Textures() []Texture[E, X]                      { return r.doc.Textures }
