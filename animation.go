package gltf

import "reflect"

// Animation is a keyframe animation.
type Animation[E Extensions, X Extras] struct {
	Channels   []Channel[E, X]          `json:"channels" gltf:"required"`
	Samplers   []AnimationSampler[E, X] `json:"samplers" gltf:"required"`
	Name       string                   `json:"name,omitempty"`
	Extensions *Slot[E]                 `json:"extensions,omitempty"`
	Extras     *Slot[X]                 `json:"extras,omitempty"`
}

// Sampler returns the animation sampler at i, or nil when out of range.
func (a *Animation[E, X]) Sampler(i Index[AnimationSampler[E, X]]) *AnimationSampler[E, X] {
	return at(a.Samplers, i)
}

// localCollections scopes sampler indices of channels to this animation.
func (a Animation[E, X]) localCollections() []collection {
	return []collection{{
		elem: reflect.TypeFor[AnimationSampler[E, X]](),
		kind: "AnimationSampler",
		n:    len(a.Samplers),
	}}
}

// Channel binds an animation sampler to a node property.
type Channel[E Extensions, X Extras] struct {
	// Sampler addresses the Samplers of the enclosing animation.
	Sampler    Index[AnimationSampler[E, X]] `json:"sampler" gltf:"required"`
	Target     ChannelTarget[E, X]           `json:"target" gltf:"required"`
	Extensions *Slot[E]                      `json:"extensions,omitempty"`
	Extras     *Slot[X]                      `json:"extras,omitempty"`
}

// ChannelTarget names the node and property a channel animates.
type ChannelTarget[E Extensions, X Extras] struct {
	Node       *Index[Node[E, X]] `json:"node,omitempty"`
	Path       Path               `json:"path" gltf:"required"`
	Extensions *Slot[E]           `json:"extensions,omitempty"`
	Extras     *Slot[X]           `json:"extras,omitempty"`
}

// AnimationSampler combines keyframe times with output values.
type AnimationSampler[E Extensions, X Extras] struct {
	Input         Index[Accessor[E, X]] `json:"input" gltf:"required"`
	Interpolation Interpolation         `json:"interpolation,omitempty"`
	Output        Index[Accessor[E, X]] `json:"output" gltf:"required"`
	Extensions    *Slot[E]              `json:"extensions,omitempty"`
	Extras        *Slot[X]              `json:"extras,omitempty"`
}
