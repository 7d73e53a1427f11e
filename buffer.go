package gltf

// Buffer points to binary geometry, animation, or skin data. Only the
// metadata is modeled; payloads are never loaded.
type Buffer[E Extensions, X Extras] struct {
	URI        string   `json:"uri,omitempty"`
	ByteLength uint32   `json:"byteLength" gltf:"required"`
	Name       string   `json:"name,omitempty"`
	Extensions *Slot[E] `json:"extensions,omitempty"`
	Extras     *Slot[X] `json:"extras,omitempty"`
}

// BufferView is a contiguous byte range of a buffer.
type BufferView[E Extensions, X Extras] struct {
	Buffer     Index[Buffer[E, X]] `json:"buffer" gltf:"required"`
	ByteOffset uint32              `json:"byteOffset,omitempty"`
	ByteLength uint32              `json:"byteLength" gltf:"required"`
	ByteStride uint32              `json:"byteStride,omitempty"`
	Target     BufferTarget        `json:"target,omitempty"`
	Name       string              `json:"name,omitempty"`
	Extensions *Slot[E]            `json:"extensions,omitempty"`
	Extras     *Slot[X]            `json:"extras,omitempty"`
}
