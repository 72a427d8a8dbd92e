package config

// DefaultGlowColors is the glow color cycle used by the glass and portal themes, one per panel.
var DefaultGlowColors = []string{"#ffab6b", "#b08cff", "#5ce2ff", "#ff8bd1", "#8ef0ff", "#a6a9ff", "#8ed4ff", "#ff9f9f", "#77ddff"}

// DefaultPortalPalettes is the per-panel portal core palette cycle.
var DefaultPortalPalettes = []PortalPalette{
	{Inner: "#5fd7ff", Outer: "#b8fbff"},
	{Inner: "#ff5f42", Outer: "#ffd95a"},
	{Inner: "#77ff8f", Outer: "#d4ffd0"},
	{Inner: "#cc6cff", Outer: "#ffd7ff"},
	{Inner: "#4e82ff", Outer: "#b3c8ff"},
	{Inner: "#ff4f8b", Outer: "#ffd0e2"},
	{Inner: "#ff9b3c", Outer: "#ffe3b2"},
	{Inner: "#45ffe1", Outer: "#c8fff6"},
	{Inner: "#8f95ff", Outer: "#d7dbff"},
}

// DefaultCards are the card captions shown when a preset does not supply its own.
var DefaultCards = []Card{
	{Title: "Rise of Blogging", Date: "1986 - 2000"},
	{Title: "Wordpressism", Date: "1996 - 2004"},
	{Title: "TikTokko", Date: "2016 - present"},
	{Title: "Mars Calling", Date: "2032 - 2040"},
	{Title: "Neon Streams", Date: "2041 - 2050"},
	{Title: "Signal Era", Date: "2051 - 2062"},
	{Title: "Hyper Nodes", Date: "2063 - 2074"},
	{Title: "Quantum Pulse", Date: "2075 - 2086"},
	{Title: "Orbit Minds", Date: "2087 - 2098"},
}

// DefaultParticles returns the particle cloud defaults (disabled; the glass theme enables it).
func DefaultParticles() ParticleConfig {
	return ParticleConfig{
		Enabled:    false,
		Count:      2600,
		Size:       0.095,
		Opacity:    0.82,
		Glow:       2,
		Randomness: 0.86,
		Radius:     16.5,
		Travel:     2.1,
		SpreadY:    10,
		SpinSpeed:  0.35,
		Twinkle:    0.72,
		ColorA:     "#79beff",
		ColorB:     "#f1e2ff",
		Seed:       1,
	}
}

// lightGallery is the bright gallery look shared by the plain and water themes.
func lightGallery() SceneConfig {
	return SceneConfig{
		FrameCount:           9,
		FrameWidth:           4.94,
		FrameHeight:          8,
		FrameDepth:           0.2,
		FrameInset:           0.2,
		DepthOffset:          -0.285,
		YOffset:              0,
		RotationOffsetDeg:    -7,
		FrameGap:             1.28,
		RoundTop:             4,
		RoundBottom:          0,
		RoundLeft:            4,
		RoundRight:           2,
		WallRadius:           11.12,
		WallHeight:           15,
		WallColor:            "#ffffff",
		FrameColor:           "#ff66de",
		FloorColor:           "#fdfdff",
		RoofColor:            "#fafaff",
		SceneTint:            "#f0f1f7",
		ImageTint:            "#ffffff",
		ImageFitMode:         FitCover,
		ImageFitWidth:        1,
		ImageFitHeight:       1,
		FrameMetalness:       0.1,
		FrameRoughness:       0.5,
		WaterStrength:        0.19,
		WaterSpeed:           0.24,
		WaterOpacity:         0.27,
		ScrollRotateStrength: 0.0018,
		CameraX:              1.06,
		CameraY:              0.34,
		CameraZ:              5,
		CameraLookY:          -0.11,
		CameraFov:            59,
		HemiIntensity:        0.85,
		KeyIntensity:         1,
		RimIntensity:         0.4,
		LineOpacity:          0,
		LineHotOpacity:       0,
		Particles:            DefaultParticles(),
	}
}

// darkGallery is the space look shared by the glass, portal and accretion themes.
func darkGallery() SceneConfig {
	c := lightGallery()
	c.FrameWidth = 4.95
	c.FrameDepth = 0.22
	c.RoundTop, c.RoundBottom, c.RoundLeft, c.RoundRight = 2.2, 0.05, 2.2, 2.2
	c.WallRadius = 11.4
	c.WallColor = "#060d1f"
	c.FloorColor = "#081128"
	c.RoofColor = "#0a1426"
	c.SceneTint = "#020611"
	c.WaterStrength, c.WaterSpeed, c.WaterOpacity = 0.2, 0.28, 0.3
	c.CameraX, c.CameraY, c.CameraZ, c.CameraLookY, c.CameraFov = 1.04, 0.32, 5, -0.08, 58
	c.GlowStrength = 1.2
	c.GlowOuterScale = 1.06
	c.GlowFarScale = 1.04
	c.GlowOuterBoost = 1.45
	c.GlowFarBoost = 0.9
	c.GlowColors = append([]string(nil), DefaultGlowColors...)
	c.LineOpacity = 0.95
	c.LineHotOpacity = 0.62
	c.GlassTint = "#89bcff"
	c.GlassOpacity1, c.GlassOpacity2, c.GlassOpacity3 = 0.12, 0.1, 0.08
	c.GlassTransmission = 0.82
	c.GlassRoughness = 0.08
	c.GlassIor = 1.52
	c.GlassThickness = 1.1
	c.CardScale, c.CardYOffset, c.CardGlassOpacity = 0.42, 0.24, 0.14
	c.BloomStrength, c.BloomRadius, c.BloomThreshold = 1.15, 0.6, 0.2
	c.HemiIntensity, c.KeyIntensity, c.RimIntensity = 0.92, 1.08, 0.6
	return c
}

// Default returns the default configuration for theme. Unknown themes get the plain defaults.
func Default(theme Theme) SceneConfig {
	var c SceneConfig
	switch theme {
	case ThemeWater:
		c = lightGallery()
	case ThemeGlass:
		c = darkGallery()
		c.Cards = append([]Card(nil), DefaultCards...)
		c.Particles.Enabled = true
	case ThemePortal, ThemeAccretion:
		c = darkGallery()
		c.PortalCoreStrength = 1.35
		c.PortalRingStrength = 1.1
		c.PortalNoiseScale = 3.4
		c.PortalFlowSpeed = 0.9
		c.PortalPalettes = append([]PortalPalette(nil), DefaultPortalPalettes...)
		c.BlackHoleSize = 0.495
		c.BlackHoleRingRadius = 0.34
		c.BlackHoleSpinSpeed = 0.45
		c.BlackHoleGlow = 1.5
		c.BlackHolePosX, c.BlackHolePosY, c.BlackHolePosZ = -0.13, -2.5, 0.19
		c.BlackHoleColorA, c.BlackHoleColorB = "#ff7e1d", "#ffd067"
		c.BlackHoleDustColorA, c.BlackHoleDustColorB = "#ff8f24", "#ffe29f"
	case ThemeImmersive:
		c = darkGallery()
		c.FrameCount = 10
		c.FrameWidth = 3.8
		c.FrameHeight = 5.4
		c.FrameInset = 0
		c.YOffset = 0.22
		c.ArchRadius = 1.824
		c.RingRadius = 9.8
		c.RingCenterZ = -14
		c.SceneTint = "#ccd5e5"
		c.SpacingAngle = 0.56
		c.ScrollRotateStrength = 0.0009
		c.CameraX, c.CameraY, c.CameraZ, c.CameraLookY, c.CameraFov = 0, 0.35, 5.4, 0.08, 46
		c.Cards = append([]Card(nil), DefaultCards...)
		c.Particles.Enabled = true
		c.Particles.Count = 1400
	case ThemeWall:
		c = lightGallery()
		c.FrameCount = 1
		c.WallColor = "#eaea99"
		c.FloorColor = "#eef1f8"
		c.SceneTint = "#dfe3ea"
		c.HoleShape = HoleArch
		c.HoleWallWidth = 16
		c.HoleWallHeight = 10
		c.HoleWallDepth = 0.41
		c.HoleWidth = 3.23
		c.HoleHeight = 5.19
		c.HoleRadius = 1.65
		c.SceneRotationY = -1
		c.CameraX, c.CameraY, c.CameraZ, c.CameraLookY, c.CameraFov = 0.04, 0.4, 7.59, 0, 71
	default:
		theme = ThemePlain
		c = lightGallery()
	}
	c.Theme = theme
	return c
}
