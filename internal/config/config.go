package config

import (
	"github.com/jinzhu/copier"
)

// Theme selects which optional layers attach to every panel and which color set the scene uses.
type Theme string

const (
	ThemePlain     Theme = "plain"
	ThemeWater     Theme = "water"
	ThemeGlass     Theme = "glass"
	ThemePortal    Theme = "portal"
	ThemeAccretion Theme = "accretion"
	ThemeImmersive Theme = "immersive"
	ThemeWall      Theme = "wall"
)

// Themes lists every theme in cycling order.
var Themes = []Theme{ThemePlain, ThemeWater, ThemeGlass, ThemePortal, ThemeAccretion, ThemeImmersive, ThemeWall}

// ParseTheme returns the theme named s. ok is false for unknown names.
func ParseTheme(s string) (Theme, bool) {
	for _, t := range Themes {
		if string(t) == s {
			return t, true
		}
	}
	return ThemePlain, false
}

// Next returns the theme after t in Themes, wrapping around.
func (t Theme) Next() Theme {
	for i, c := range Themes {
		if c == t {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// FitMode controls how an image is mapped onto a panel face.
type FitMode string

const (
	FitCover FitMode = "cover"
	FitFill  FitMode = "fill"
)

// HoleShape is the contour carved out of the wall theme's solid wall.
type HoleShape string

const (
	HoleArch    HoleShape = "arch"
	HoleRounded HoleShape = "rounded"
	HoleCircle  HoleShape = "circle"
)

// Card is the caption shown on a panel's card overlay and on immersive fallback textures.
type Card struct {
	Title string `json:"title" yaml:"title"`
	Date  string `json:"date" yaml:"date"`
}

// PortalPalette is the inner/outer color pair of one panel's portal core.
type PortalPalette struct {
	Inner string `json:"inner" yaml:"inner"`
	Outer string `json:"outer" yaml:"outer"`
}

// ParticleConfig holds the parameters of the free-floating particle cloud.
// The field is rebuilt only when this struct changes.
type ParticleConfig struct {
	Enabled    bool    `json:"enabled" yaml:"enabled"`
	Count      int     `json:"count" yaml:"count"`
	Size       float32 `json:"size" yaml:"size"`
	Opacity    float32 `json:"opacity" yaml:"opacity"`
	Glow       float32 `json:"glow" yaml:"glow"`
	Randomness float32 `json:"randomness" yaml:"randomness"`
	Radius     float32 `json:"radius" yaml:"radius"`
	Travel     float32 `json:"travelRadius" yaml:"travelRadius"`
	SpreadY    float32 `json:"spreadY" yaml:"spreadY"`
	SpinSpeed  float32 `json:"spinSpeed" yaml:"spinSpeed"`
	Twinkle    float32 `json:"twinkle" yaml:"twinkle"`
	ColorA     string  `json:"colorA" yaml:"colorA"`
	ColorB     string  `json:"colorB" yaml:"colorB"`
	Seed       int64   `json:"seed" yaml:"seed"`
}

// SceneConfig is the full parameter set of a gallery scene. A live scene never mutates it;
// edits produce a new value that replaces the old one wholesale.
type SceneConfig struct {
	Theme  Theme    `json:"theme" yaml:"theme"`
	Images []string `json:"images,omitempty" yaml:"images,omitempty"`
	Cards  []Card   `json:"cards,omitempty" yaml:"cards,omitempty"`

	FrameCount        int     `json:"frameCount" yaml:"frameCount"`
	FrameWidth        float32 `json:"frameWidth" yaml:"frameWidth"`
	FrameHeight       float32 `json:"frameHeight" yaml:"frameHeight"`
	FrameDepth        float32 `json:"frameDepth" yaml:"frameDepth"`
	FrameInset        float32 `json:"frameInset" yaml:"frameInset"`
	DepthOffset       float32 `json:"depthOffset" yaml:"depthOffset"`
	YOffset           float32 `json:"yOffset" yaml:"yOffset"`
	RotationOffsetDeg float32 `json:"rotationOffsetDeg" yaml:"rotationOffsetDeg"`
	FrameGap          float32 `json:"frameGap" yaml:"frameGap"`
	RoundTop          float32 `json:"roundTop" yaml:"roundTop"`
	RoundBottom       float32 `json:"roundBottom" yaml:"roundBottom"`
	RoundLeft         float32 `json:"roundLeft" yaml:"roundLeft"`
	RoundRight        float32 `json:"roundRight" yaml:"roundRight"`
	ArchRadius        float32 `json:"archRadius" yaml:"archRadius"`

	WallRadius float32 `json:"wallRadius" yaml:"wallRadius"`
	WallHeight float32 `json:"wallHeight" yaml:"wallHeight"`
	WallColor  string  `json:"wallColor" yaml:"wallColor"`
	FrameColor string  `json:"frameColor" yaml:"frameColor"`
	FloorColor string  `json:"floorColor" yaml:"floorColor"`
	RoofColor  string  `json:"roofColor" yaml:"roofColor"`
	SceneTint  string  `json:"sceneTint" yaml:"sceneTint"`
	ImageTint  string  `json:"imageTint" yaml:"imageTint"`

	ImageFitMode   FitMode `json:"imageFitMode" yaml:"imageFitMode"`
	ImageFitWidth  float32 `json:"imageFitWidth" yaml:"imageFitWidth"`
	ImageFitHeight float32 `json:"imageFitHeight" yaml:"imageFitHeight"`

	FrameMetalness float32 `json:"frameMetalness" yaml:"frameMetalness"`
	FrameRoughness float32 `json:"frameRoughness" yaml:"frameRoughness"`

	WaterStrength float32 `json:"waterStrength" yaml:"waterStrength"`
	WaterSpeed    float32 `json:"waterSpeed" yaml:"waterSpeed"`
	WaterOpacity  float32 `json:"waterOpacity" yaml:"waterOpacity"`

	ScrollRotateStrength float32 `json:"scrollRotateStrength" yaml:"scrollRotateStrength"`

	CameraX     float32 `json:"cameraX" yaml:"cameraX"`
	CameraY     float32 `json:"cameraY" yaml:"cameraY"`
	CameraZ     float32 `json:"cameraZ" yaml:"cameraZ"`
	CameraLookY float32 `json:"cameraLookY" yaml:"cameraLookY"`
	CameraFov   float32 `json:"cameraFov" yaml:"cameraFov"`

	HemiIntensity float32 `json:"hemiIntensity" yaml:"hemiIntensity"`
	KeyIntensity  float32 `json:"keyIntensity" yaml:"keyIntensity"`
	RimIntensity  float32 `json:"rimIntensity" yaml:"rimIntensity"`

	GlowStrength   float32  `json:"glowStrength" yaml:"glowStrength"`
	GlowOuterScale float32  `json:"glowOuterScale" yaml:"glowOuterScale"`
	GlowFarScale   float32  `json:"glowFarScale" yaml:"glowFarScale"`
	GlowOuterBoost float32  `json:"glowOuterBoost" yaml:"glowOuterBoost"`
	GlowFarBoost   float32  `json:"glowFarBoost" yaml:"glowFarBoost"`
	GlowColors     []string `json:"glowColors,omitempty" yaml:"glowColors,omitempty"`

	LineOpacity    float32 `json:"lineOpacity" yaml:"lineOpacity"`
	LineHotOpacity float32 `json:"lineHotOpacity" yaml:"lineHotOpacity"`

	GlassTint         string  `json:"glassTint" yaml:"glassTint"`
	GlassOpacity1     float32 `json:"glassOpacity1" yaml:"glassOpacity1"`
	GlassOpacity2     float32 `json:"glassOpacity2" yaml:"glassOpacity2"`
	GlassOpacity3     float32 `json:"glassOpacity3" yaml:"glassOpacity3"`
	GlassTransmission float32 `json:"glassTransmission" yaml:"glassTransmission"`
	GlassRoughness    float32 `json:"glassRoughness" yaml:"glassRoughness"`
	GlassIor          float32 `json:"glassIor" yaml:"glassIor"`
	GlassThickness    float32 `json:"glassThickness" yaml:"glassThickness"`

	CardScale        float32 `json:"cardScale" yaml:"cardScale"`
	CardYOffset      float32 `json:"cardYOffset" yaml:"cardYOffset"`
	CardGlassOpacity float32 `json:"cardGlassOpacity" yaml:"cardGlassOpacity"`

	BloomStrength  float32 `json:"bloomStrength" yaml:"bloomStrength"`
	BloomRadius    float32 `json:"bloomRadius" yaml:"bloomRadius"`
	BloomThreshold float32 `json:"bloomThreshold" yaml:"bloomThreshold"`

	PortalCoreStrength float32         `json:"portalCoreStrength" yaml:"portalCoreStrength"`
	PortalRingStrength float32         `json:"portalRingIntensity" yaml:"portalRingIntensity"`
	PortalNoiseScale   float32         `json:"portalNoiseScale" yaml:"portalNoiseScale"`
	PortalFlowSpeed    float32         `json:"portalFlowSpeed" yaml:"portalFlowSpeed"`
	PortalPalettes     []PortalPalette `json:"portalPalettes,omitempty" yaml:"portalPalettes,omitempty"`

	BlackHoleSize       float32 `json:"blackHoleSize" yaml:"blackHoleSize"`
	BlackHoleRingRadius float32 `json:"blackHoleRingRadius" yaml:"blackHoleRingRadius"`
	BlackHoleSpinSpeed  float32 `json:"blackHoleSpinSpeed" yaml:"blackHoleSpinSpeed"`
	BlackHoleGlow       float32 `json:"blackHoleGlow" yaml:"blackHoleGlow"`
	BlackHolePosX       float32 `json:"blackHolePosX" yaml:"blackHolePosX"`
	BlackHolePosY       float32 `json:"blackHolePosY" yaml:"blackHolePosY"`
	BlackHolePosZ       float32 `json:"blackHolePosZ" yaml:"blackHolePosZ"`
	BlackHoleColorA     string  `json:"blackHoleColorA" yaml:"blackHoleColorA"`
	BlackHoleColorB     string  `json:"blackHoleColorB" yaml:"blackHoleColorB"`
	BlackHoleDustColorA string  `json:"blackHoleDustColorA" yaml:"blackHoleDustColorA"`
	BlackHoleDustColorB string  `json:"blackHoleDustColorB" yaml:"blackHoleDustColorB"`

	// Immersive ring: panels sit on an arc in front of the camera and navigation is by progress.
	RingRadius   float32 `json:"ringRadius" yaml:"ringRadius"`
	RingCenterZ  float32 `json:"ringCenterZ" yaml:"ringCenterZ"`
	SpacingAngle float32 `json:"spacingAngle" yaml:"spacingAngle"`

	// Wall theme: a single extruded wall with a carved opening.
	HoleShape      HoleShape `json:"holeShape" yaml:"holeShape"`
	HoleWallWidth  float32   `json:"holeWallWidth" yaml:"holeWallWidth"`
	HoleWallHeight float32   `json:"holeWallHeight" yaml:"holeWallHeight"`
	HoleWallDepth  float32   `json:"holeWallDepth" yaml:"holeWallDepth"`
	HoleWidth      float32   `json:"holeWidth" yaml:"holeWidth"`
	HoleHeight     float32   `json:"holeHeight" yaml:"holeHeight"`
	HoleRadius     float32   `json:"holeRadius" yaml:"holeRadius"`
	SceneRotationY float32   `json:"sceneRotationY" yaml:"sceneRotationY"`

	Particles ParticleConfig `json:"particles" yaml:"particles"`
}

// Clone returns a deep copy of c. Slices are not shared with the original.
func (c SceneConfig) Clone() SceneConfig {
	var out SceneConfig
	if err := copier.CopyWithOption(&out, &c, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on mismatched kinds; same-type copies fall back to a shallow copy.
		out = c
	}
	return out
}
