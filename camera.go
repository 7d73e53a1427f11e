package gltf

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a projection a node can instantiate.
type Camera[E Extensions, X Extras] struct {
	Orthographic *Orthographic[E, X] `json:"orthographic,omitempty"`
	Perspective  *Perspective[E, X]  `json:"perspective,omitempty"`
	Type         CameraType          `json:"type" gltf:"required"`
	Name         string              `json:"name,omitempty"`
	Extensions   *Slot[E]            `json:"extensions,omitempty"`
	Extras       *Slot[X]            `json:"extras,omitempty"`
}

// Projection returns the projection matrix of the camera. aspect is used
// when a perspective camera does not fix its own aspect ratio. The second
// result is false when the camera lacks the properties its type needs.
func (c *Camera[E, X]) Projection(aspect float32) (mgl32.Mat4, bool) {
	switch c.Type {
	case CameraPerspective:
		if c.Perspective == nil {
			return mgl32.Mat4{}, false
		}
		return c.Perspective.Matrix(aspect), true
	case CameraOrthographic:
		if c.Orthographic == nil {
			return mgl32.Mat4{}, false
		}
		return c.Orthographic.Matrix(), true
	}
	return mgl32.Mat4{}, false
}

// Orthographic holds the properties of an orthographic projection.
type Orthographic[E Extensions, X Extras] struct {
	XMag       float32  `json:"xmag" gltf:"required"`
	YMag       float32  `json:"ymag" gltf:"required"`
	ZFar       float32  `json:"zfar" gltf:"required"`
	ZNear      float32  `json:"znear" gltf:"required"`
	Extensions *Slot[E] `json:"extensions,omitempty"`
	Extras     *Slot[X] `json:"extras,omitempty"`
}

// Matrix returns the orthographic projection matrix.
func (o *Orthographic[E, X]) Matrix() mgl32.Mat4 {
	return mgl32.Ortho(-o.XMag, o.XMag, -o.YMag, o.YMag, o.ZNear, o.ZFar)
}

// Perspective holds the properties of a perspective projection. A nil ZFar
// selects an infinite projection.
type Perspective[E Extensions, X Extras] struct {
	AspectRatio *float32 `json:"aspectRatio,omitempty"`
	YFov        float32  `json:"yfov" gltf:"required"`
	ZFar        *float32 `json:"zfar,omitempty"`
	ZNear       float32  `json:"znear" gltf:"required"`
	Extensions  *Slot[E] `json:"extensions,omitempty"`
	Extras      *Slot[X] `json:"extras,omitempty"`
}

// Matrix returns the perspective projection matrix.
func (p *Perspective[E, X]) Matrix(aspect float32) mgl32.Mat4 {
	if p.AspectRatio != nil {
		aspect = *p.AspectRatio
	}
	if p.ZFar != nil {
		return mgl32.Perspective(p.YFov, aspect, p.ZNear, *p.ZFar)
	}
	f := float32(1 / math.Tan(float64(p.YFov)/2))
	var m mgl32.Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = -1
	m[11] = -1
	m[14] = -2 * p.ZNear
	return m
}
