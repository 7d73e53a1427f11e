package gltf

// Skin defines the joints and matrices of a skinned mesh.
type Skin[E Extensions, X Extras] struct {
	// InverseBindMatrices addresses an accessor of 4x4 inverse-bind matrices.
	InverseBindMatrices *Index[Accessor[E, X]] `json:"inverseBindMatrices,omitempty"`
	Joints              []Index[Node[E, X]]    `json:"joints" gltf:"required"`
	Skeleton            *Index[Node[E, X]]     `json:"skeleton,omitempty"`
	Name                string                 `json:"name,omitempty"`
	Extensions          *Slot[E]               `json:"extensions,omitempty"`
	Extras              *Slot[X]               `json:"extras,omitempty"`
}
