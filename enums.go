package gltf

import "github.com/reoring/gltf/codec"

// ComponentType is the datatype of an accessor's components.
type ComponentType uint8

const (
	Byte ComponentType = iota + 1
	UnsignedByte
	Short
	UnsignedShort
	UnsignedInt
	Float
)

var componentTypes = codec.NewCodes("ComponentType",
	codec.Code[ComponentType]{Value: Byte, Code: 5120},
	codec.Code[ComponentType]{Value: UnsignedByte, Code: 5121},
	codec.Code[ComponentType]{Value: Short, Code: 5122},
	codec.Code[ComponentType]{Value: UnsignedShort, Code: 5123},
	codec.Code[ComponentType]{Value: UnsignedInt, Code: 5125},
	codec.Code[ComponentType]{Value: Float, Code: 5126},
)

// Size returns the size in bytes of a single component.
func (c ComponentType) Size() int {
	switch c {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort:
		return 2
	case UnsignedInt, Float:
		return 4
	}
	return 0
}

func (c ComponentType) MarshalJSON() ([]byte, error)  { return componentTypes.Marshal(c) }
func (c *ComponentType) UnmarshalJSON(b []byte) error { return componentTypes.Unmarshal(b, c) }

// AccessorType specifies whether an accessor's elements are scalars, vectors
// or matrices.
type AccessorType uint8

const (
	Scalar AccessorType = iota + 1
	Vec2
	Vec3
	Vec4
	Mat2
	Mat3
	Mat4
)

var accessorTypes = codec.NewTokens("AccessorType",
	codec.Token[AccessorType]{Value: Scalar, Label: "SCALAR"},
	codec.Token[AccessorType]{Value: Vec2, Label: "VEC2"},
	codec.Token[AccessorType]{Value: Vec3, Label: "VEC3"},
	codec.Token[AccessorType]{Value: Vec4, Label: "VEC4"},
	codec.Token[AccessorType]{Value: Mat2, Label: "MAT2"},
	codec.Token[AccessorType]{Value: Mat3, Label: "MAT3"},
	codec.Token[AccessorType]{Value: Mat4, Label: "MAT4"},
)

// Components returns the number of components per element.
func (t AccessorType) Components() int {
	switch t {
	case Scalar:
		return 1
	case Vec2:
		return 2
	case Vec3:
		return 3
	case Vec4, Mat2:
		return 4
	case Mat3:
		return 9
	case Mat4:
		return 16
	}
	return 0
}

func (t AccessorType) String() string {
	s, _ := accessorTypes.Encode(t)
	return s
}

func (t AccessorType) MarshalJSON() ([]byte, error)  { return accessorTypes.Marshal(t) }
func (t *AccessorType) UnmarshalJSON(b []byte) error { return accessorTypes.Unmarshal(b, t) }

// Interpolation is the keyframe interpolation algorithm of an animation
// sampler. The zero value is Linear, the default.
type Interpolation uint8

const (
	Linear Interpolation = iota
	Step
	CubicSpline
)

var interpolations = codec.NewTokens("Interpolation",
	codec.Token[Interpolation]{Value: Linear, Label: "LINEAR"},
	codec.Token[Interpolation]{Value: Step, Label: "STEP"},
	codec.Token[Interpolation]{Value: CubicSpline, Label: "CUBICSPLINE"},
)

func (i Interpolation) String() string {
	s, _ := interpolations.Encode(i)
	return s
}

func (i Interpolation) MarshalJSON() ([]byte, error)  { return interpolations.Marshal(i) }
func (i *Interpolation) UnmarshalJSON(b []byte) error { return interpolations.Unmarshal(b, i) }

// Path is the node property an animation channel drives.
type Path uint8

const (
	Translation Path = iota + 1
	Rotation
	Scale
	Weights
)

var paths = codec.NewTokens("Path",
	codec.Token[Path]{Value: Translation, Label: "translation"},
	codec.Token[Path]{Value: Rotation, Label: "rotation"},
	codec.Token[Path]{Value: Scale, Label: "scale"},
	codec.Token[Path]{Value: Weights, Label: "weights"},
)

func (p Path) String() string {
	s, _ := paths.Encode(p)
	return s
}

func (p Path) MarshalJSON() ([]byte, error)  { return paths.Marshal(p) }
func (p *Path) UnmarshalJSON(b []byte) error { return paths.Unmarshal(b, p) }

// CameraType selects the projection a camera uses.
type CameraType uint8

const (
	CameraPerspective CameraType = iota + 1
	CameraOrthographic
)

var cameraTypes = codec.NewTokens("CameraType",
	codec.Token[CameraType]{Value: CameraPerspective, Label: "perspective"},
	codec.Token[CameraType]{Value: CameraOrthographic, Label: "orthographic"},
)

func (c CameraType) String() string {
	s, _ := cameraTypes.Encode(c)
	return s
}

func (c CameraType) MarshalJSON() ([]byte, error)  { return cameraTypes.Marshal(c) }
func (c *CameraType) UnmarshalJSON(b []byte) error { return cameraTypes.Unmarshal(b, c) }

// AlphaMode is the alpha rendering mode of a material. The zero value is
// Opaque, the default.
type AlphaMode uint8

const (
	Opaque AlphaMode = iota
	Mask
	Blend
)

var alphaModes = codec.NewTokens("AlphaMode",
	codec.Token[AlphaMode]{Value: Opaque, Label: "OPAQUE"},
	codec.Token[AlphaMode]{Value: Mask, Label: "MASK"},
	codec.Token[AlphaMode]{Value: Blend, Label: "BLEND"},
)

func (m AlphaMode) String() string {
	s, _ := alphaModes.Encode(m)
	return s
}

func (m AlphaMode) MarshalJSON() ([]byte, error)  { return alphaModes.Marshal(m) }
func (m *AlphaMode) UnmarshalJSON(b []byte) error { return alphaModes.Unmarshal(b, m) }

// BufferTarget is the GPU buffer type a buffer view is meant for. The zero
// value means no target was given.
type BufferTarget uint8

const (
	ArrayBuffer BufferTarget = iota + 1
	ElementArrayBuffer
)

var bufferTargets = codec.NewCodes("BufferTarget",
	codec.Code[BufferTarget]{Value: ArrayBuffer, Code: 34962},
	codec.Code[BufferTarget]{Value: ElementArrayBuffer, Code: 34963},
)

func (t BufferTarget) MarshalJSON() ([]byte, error)  { return bufferTargets.Marshal(t) }
func (t *BufferTarget) UnmarshalJSON(b []byte) error { return bufferTargets.Unmarshal(b, t) }

// PrimitiveMode is the topology of a mesh primitive. The zero value is
// Triangles, the default.
type PrimitiveMode uint8

const (
	Triangles PrimitiveMode = iota
	Points
	Lines
	LineLoop
	LineStrip
	TriangleStrip
	TriangleFan
)

var primitiveModes = codec.NewCodes("PrimitiveMode",
	codec.Code[PrimitiveMode]{Value: Points, Code: 0},
	codec.Code[PrimitiveMode]{Value: Lines, Code: 1},
	codec.Code[PrimitiveMode]{Value: LineLoop, Code: 2},
	codec.Code[PrimitiveMode]{Value: LineStrip, Code: 3},
	codec.Code[PrimitiveMode]{Value: Triangles, Code: 4},
	codec.Code[PrimitiveMode]{Value: TriangleStrip, Code: 5},
	codec.Code[PrimitiveMode]{Value: TriangleFan, Code: 6},
)

func (m PrimitiveMode) MarshalJSON() ([]byte, error)  { return primitiveModes.Marshal(m) }
func (m *PrimitiveMode) UnmarshalJSON(b []byte) error { return primitiveModes.Unmarshal(b, m) }

// MagFilter is a texture magnification filter. The zero value means unset.
type MagFilter uint8

const (
	MagNearest MagFilter = iota + 1
	MagLinear
)

var magFilters = codec.NewCodes("MagFilter",
	codec.Code[MagFilter]{Value: MagNearest, Code: 9728},
	codec.Code[MagFilter]{Value: MagLinear, Code: 9729},
)

func (f MagFilter) MarshalJSON() ([]byte, error)  { return magFilters.Marshal(f) }
func (f *MagFilter) UnmarshalJSON(b []byte) error { return magFilters.Unmarshal(b, f) }

// MinFilter is a texture minification filter. The zero value means unset.
type MinFilter uint8

const (
	MinNearest MinFilter = iota + 1
	MinLinear
	NearestMipmapNearest
	LinearMipmapNearest
	NearestMipmapLinear
	LinearMipmapLinear
)

var minFilters = codec.NewCodes("MinFilter",
	codec.Code[MinFilter]{Value: MinNearest, Code: 9728},
	codec.Code[MinFilter]{Value: MinLinear, Code: 9729},
	codec.Code[MinFilter]{Value: NearestMipmapNearest, Code: 9984},
	codec.Code[MinFilter]{Value: LinearMipmapNearest, Code: 9985},
	codec.Code[MinFilter]{Value: NearestMipmapLinear, Code: 9986},
	codec.Code[MinFilter]{Value: LinearMipmapLinear, Code: 9987},
)

func (f MinFilter) MarshalJSON() ([]byte, error)  { return minFilters.Marshal(f) }
func (f *MinFilter) UnmarshalJSON(b []byte) error { return minFilters.Unmarshal(b, f) }

// WrappingMode is a texture coordinate wrapping mode. The zero value is
// Repeat, the default.
type WrappingMode uint8

const (
	Repeat WrappingMode = iota
	ClampToEdge
	MirroredRepeat
)

var wrappingModes = codec.NewCodes("WrappingMode",
	codec.Code[WrappingMode]{Value: ClampToEdge, Code: 33071},
	codec.Code[WrappingMode]{Value: MirroredRepeat, Code: 33648},
	codec.Code[WrappingMode]{Value: Repeat, Code: 10497},
)

func (m WrappingMode) MarshalJSON() ([]byte, error)  { return wrappingModes.Marshal(m) }
func (m *WrappingMode) UnmarshalJSON(b []byte) error { return wrappingModes.Unmarshal(b, m) }
