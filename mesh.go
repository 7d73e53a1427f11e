package gltf

// Mesh is a set of primitives to be rendered.
type Mesh[E Extensions, X Extras] struct {
	Primitives []Primitive[E, X] `json:"primitives" gltf:"required"`
	Weights    []float32         `json:"weights,omitempty"`
	Name       string            `json:"name,omitempty"`
	Extensions *Slot[E]          `json:"extensions,omitempty"`
	Extras     *Slot[X]          `json:"extras,omitempty"`
}

// Attributes maps vertex attribute semantics (POSITION, NORMAL, TEXCOORD_0,
// ...) to the accessors holding their data.
type Attributes[E Extensions, X Extras] map[string]Index[Accessor[E, X]]

// Primitive is geometry to be rendered with a material.
type Primitive[E Extensions, X Extras] struct {
	Attributes Attributes[E, X]      `json:"attributes" gltf:"required"`
	Indices    *Index[Accessor[E, X]] `json:"indices,omitempty"`
	Material   *Index[Material[E, X]] `json:"material,omitempty"`
	Mode       PrimitiveMode          `json:"mode,omitempty"`
	Targets    []Attributes[E, X]     `json:"targets,omitempty"`
	Extensions *Slot[E]               `json:"extensions,omitempty"`
	Extras     *Slot[X]               `json:"extras,omitempty"`
}
