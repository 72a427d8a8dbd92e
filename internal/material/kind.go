package material

// Kind identifies a layer's shading program. Every Uniforms value reports one.
type Kind uint8

const (
	KindImage Kind = iota
	KindArtifact
	KindWater
	KindGlow
	KindGlass
	KindOutline
	KindPortal
	KindDisk
	KindDust
	KindSpark
	KindParticle
	KindLit
	KindFloorGrid
	kindCount
)

var kindNames = [kindCount]string{
	KindImage:     "image",
	KindArtifact:  "artifact",
	KindWater:     "water",
	KindGlow:      "glow",
	KindGlass:     "glass",
	KindOutline:   "outline",
	KindPortal:    "portal",
	KindDisk:      "disk",
	KindDust:      "dust",
	KindSpark:     "spark",
	KindParticle:  "particle",
	KindLit:       "lit",
	KindFloorGrid: "floor-grid",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Kinds returns every layer kind in draw-program order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Blend is the framebuffer blend mode a kind draws with.
type Blend uint8

const (
	BlendAlpha Blend = iota
	BlendAdditive
)

// Blend returns how k composites onto the frame.
func (k Kind) Blend() Blend {
	switch k {
	case KindGlow, KindPortal, KindDisk, KindDust, KindSpark, KindParticle:
		return BlendAdditive
	default:
		return BlendAlpha
	}
}

// DepthWrite reports whether k writes the depth buffer. Overlays and energy layers only test it.
func (k Kind) DepthWrite() bool {
	return k == KindImage || k == KindArtifact || k == KindLit
}

// Sprite reports whether k is drawn as camera-facing point sprites rather than a mesh.
func (k Kind) Sprite() bool {
	return k == KindDust || k == KindSpark || k == KindParticle
}
