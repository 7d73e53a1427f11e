package gltf

import "github.com/go-gl/mathgl/mgl32"

// Material describes the appearance of a primitive. Optional factors are
// pointers so that an absent key stays absent on encode; the accessor
// methods apply the defaults.
type Material[E Extensions, X Extras] struct {
	Name                 string                      `json:"name,omitempty"`
	PBRMetallicRoughness *PBRMetallicRoughness[E, X] `json:"pbrMetallicRoughness,omitempty"`
	NormalTexture        *NormalTextureInfo[E, X]    `json:"normalTexture,omitempty"`
	OcclusionTexture     *OcclusionTextureInfo[E, X] `json:"occlusionTexture,omitempty"`
	EmissiveTexture      *TextureInfo[E, X]          `json:"emissiveTexture,omitempty"`
	EmissiveFactor       *mgl32.Vec3                 `json:"emissiveFactor,omitempty"`
	AlphaMode            AlphaMode                   `json:"alphaMode,omitempty"`
	AlphaCutoff          *float32                    `json:"alphaCutoff,omitempty"`
	DoubleSided          bool                        `json:"doubleSided,omitempty"`
	Extensions           *Slot[E]                    `json:"extensions,omitempty"`
	Extras               *Slot[X]                    `json:"extras,omitempty"`
}

// Cutoff returns the alpha cutoff, 0.5 when unset.
func (m *Material[E, X]) Cutoff() float32 {
	if m.AlphaCutoff == nil {
		return 0.5
	}
	return *m.AlphaCutoff
}

// Emissive returns the emissive factor, black when unset.
func (m *Material[E, X]) Emissive() mgl32.Vec3 {
	if m.EmissiveFactor == nil {
		return mgl32.Vec3{}
	}
	return *m.EmissiveFactor
}

// PBRMetallicRoughness holds the metallic-roughness material model
// parameters.
type PBRMetallicRoughness[E Extensions, X Extras] struct {
	BaseColorFactor          *mgl32.Vec4        `json:"baseColorFactor,omitempty"`
	BaseColorTexture         *TextureInfo[E, X] `json:"baseColorTexture,omitempty"`
	MetallicFactor           *float32           `json:"metallicFactor,omitempty"`
	RoughnessFactor          *float32           `json:"roughnessFactor,omitempty"`
	MetallicRoughnessTexture *TextureInfo[E, X] `json:"metallicRoughnessTexture,omitempty"`
	Extensions               *Slot[E]           `json:"extensions,omitempty"`
	Extras                   *Slot[X]           `json:"extras,omitempty"`
}

// BaseColor returns the base color factor, opaque white when unset.
func (p *PBRMetallicRoughness[E, X]) BaseColor() mgl32.Vec4 {
	if p.BaseColorFactor == nil {
		return mgl32.Vec4{1, 1, 1, 1}
	}
	return *p.BaseColorFactor
}

// Metallic returns the metalness factor, 1 when unset.
func (p *PBRMetallicRoughness[E, X]) Metallic() float32 { return orOne(p.MetallicFactor) }

// Roughness returns the roughness factor, 1 when unset.
func (p *PBRMetallicRoughness[E, X]) Roughness() float32 { return orOne(p.RoughnessFactor) }

// TextureInfo references a texture and the texture coordinate set it uses.
type TextureInfo[E Extensions, X Extras] struct {
	Index      Index[Texture[E, X]] `json:"index" gltf:"required"`
	TexCoord   uint32               `json:"texCoord,omitempty"`
	Extensions *Slot[E]             `json:"extensions,omitempty"`
	Extras     *Slot[X]             `json:"extras,omitempty"`
}

// NormalTextureInfo references a tangent-space normal map.
type NormalTextureInfo[E Extensions, X Extras] struct {
	Index      Index[Texture[E, X]] `json:"index" gltf:"required"`
	TexCoord   uint32               `json:"texCoord,omitempty"`
	Scale      *float32             `json:"scale,omitempty"`
	Extensions *Slot[E]             `json:"extensions,omitempty"`
	Extras     *Slot[X]             `json:"extras,omitempty"`
}

// OcclusionTextureInfo references an occlusion map.
type OcclusionTextureInfo[E Extensions, X Extras] struct {
	Index      Index[Texture[E, X]] `json:"index" gltf:"required"`
	TexCoord   uint32               `json:"texCoord,omitempty"`
	Strength   *float32             `json:"strength,omitempty"`
	Extensions *Slot[E]             `json:"extensions,omitempty"`
	Extras     *Slot[X]             `json:"extras,omitempty"`
}

func orOne(f *float32) float32 {
	if f == nil {
		return 1
	}
	return *f
}
