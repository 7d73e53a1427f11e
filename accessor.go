package gltf

// Accessor is a typed view into a buffer view.
type Accessor[E Extensions, X Extras] struct {
	BufferView    *Index[BufferView[E, X]] `json:"bufferView,omitempty"`
	ByteOffset    uint32                   `json:"byteOffset,omitempty"`
	ComponentType ComponentType            `json:"componentType" gltf:"required"`
	Normalized    bool                     `json:"normalized,omitempty"`
	Count         uint32                   `json:"count" gltf:"required"`
	Type          AccessorType             `json:"type" gltf:"required"`
	Max           []float64                `json:"max,omitempty"`
	Min           []float64                `json:"min,omitempty"`
	Sparse        *Sparse[E, X]            `json:"sparse,omitempty"`
	Name          string                   `json:"name,omitempty"`
	Extensions    *Slot[E]                 `json:"extensions,omitempty"`
	Extras        *Slot[X]                 `json:"extras,omitempty"`
}

// ElementSize returns the size in bytes of one element, ignoring any
// alignment padding a buffer view stride may add.
func (a *Accessor[E, X]) ElementSize() int {
	return a.ComponentType.Size() * a.Type.Components()
}

// Sparse stores the elements of an accessor that deviate from their
// initialization value.
type Sparse[E Extensions, X Extras] struct {
	Count      uint32              `json:"count" gltf:"required"`
	Indices    SparseIndices[E, X] `json:"indices" gltf:"required"`
	Values     SparseValues[E, X]  `json:"values" gltf:"required"`
	Extensions *Slot[E]            `json:"extensions,omitempty"`
	Extras     *Slot[X]            `json:"extras,omitempty"`
}

// SparseIndices locates the indices of the deviating elements.
type SparseIndices[E Extensions, X Extras] struct {
	BufferView    Index[BufferView[E, X]] `json:"bufferView" gltf:"required"`
	ByteOffset    uint32                  `json:"byteOffset,omitempty"`
	ComponentType ComponentType           `json:"componentType" gltf:"required"`
	Extensions    *Slot[E]                `json:"extensions,omitempty"`
	Extras        *Slot[X]                `json:"extras,omitempty"`
}

// SparseValues locates the values of the deviating elements.
type SparseValues[E Extensions, X Extras] struct {
	BufferView Index[BufferView[E, X]] `json:"bufferView" gltf:"required"`
	ByteOffset uint32                  `json:"byteOffset,omitempty"`
	Extensions *Slot[E]                `json:"extensions,omitempty"`
	Extras     *Slot[X]                `json:"extras,omitempty"`
}
