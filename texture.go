package gltf

// Image is the data a texture samples, given either by URI or by a buffer
// view with a MIME type.
type Image[E Extensions, X Extras] struct {
	URI        string                   `json:"uri,omitempty"`
	MimeType   string                   `json:"mimeType,omitempty"`
	BufferView *Index[BufferView[E, X]] `json:"bufferView,omitempty"`
	Name       string                   `json:"name,omitempty"`
	Extensions *Slot[E]                 `json:"extensions,omitempty"`
	Extras     *Slot[X]                 `json:"extras,omitempty"`
}

// Sampler holds texture filtering and wrapping modes.
type Sampler[E Extensions, X Extras] struct {
	MagFilter  MagFilter    `json:"magFilter,omitempty"`
	MinFilter  MinFilter    `json:"minFilter,omitempty"`
	WrapS      WrappingMode `json:"wrapS,omitempty"`
	WrapT      WrappingMode `json:"wrapT,omitempty"`
	Name       string       `json:"name,omitempty"`
	Extensions *Slot[E]     `json:"extensions,omitempty"`
	Extras     *Slot[X]     `json:"extras,omitempty"`
}

// Texture pairs an image with a sampler.
type Texture[E Extensions, X Extras] struct {
	Sampler    *Index[Sampler[E, X]] `json:"sampler,omitempty"`
	Source     *Index[Image[E, X]]   `json:"source,omitempty"`
	Name       string                `json:"name,omitempty"`
	Extensions *Slot[E]              `json:"extensions,omitempty"`
	Extras     *Slot[X]              `json:"extras,omitempty"`
}
