package config

const (
	WindowWidth  = 1280
	WindowHeight = 800
	WindowTitle  = "United Sands - Under Renovation"

	// Particle field
	ParticleArea       = 15000.0 // pixels of spawn region per particle
	MinSpawnLimit      = 20.0
	DefaultSpawnRatio  = 0.6
	FallbackSpawnRatio = 0.65 // used by the frame step before the first resize
	MaxSpawnRatio      = 0.7
	SafeZoneBuffer     = 32.0
	ParticleMaxSpeed   = 0.15
	ParticleMinRadius  = 1.0
	ParticleMaxRadius  = 3.0
	ParticleMinOpacity = 0.3
	ParticleMaxOpacity = 0.8
	PulseMinSpeed      = 0.01
	PulseMaxSpeed      = 0.03
	PulseTimeScale     = 10.0
	PulseBase          = 0.7
	PulseAmplitude     = 0.3
	HomingRate         = 0.001
	GlowRadiusFactor   = 4.0
	GlowMidStop        = 0.4
	AttractionRadius   = 200.0
	AttractionStrength = 0.02
	GlowBoost          = 2.0
	ParticleArcChance  = 0.01 // scaled by attraction force
	ParticleArcMinDist = 20.0
	ParticleArcMaxDist = 100.0
	ParticleArcOpacity = 0.8
	PointerSentinel    = -1000.0
	AmbientArcChance   = 0.02
	AmbientArcMinDist  = 30.0
	AmbientArcMaxDist  = 150.0
	AmbientArcSpread   = 20.0
	AmbientArcOpacity  = 0.6

	// Arcs
	ArcMaxLife       = 1.0
	ArcDecay         = 0.05
	ArcSegments      = 5
	ArcDisplacement  = 15.0
	ArcGlowWidth     = 2.0
	ArcGlowBlur      = 15.0
	ArcCoreWidth     = 1.0
	ArcCoreBlur      = 5.0
	ArcCoreIntensity = 0.8

	// Palette
	ColorGlow  = "#c792ea"
	ColorDeep  = "#9b59b6"
	ColorCore  = "#ffffff"
	GlowSprite = 64 // baked radial gradient size in pixels

	// Page layout
	GlyphWidth      = 6 // debug font cell
	GlyphHeight     = 16
	ContentPadding  = 24
	LogoSize        = 96
	HeadlineScale   = 2
	FormWidth       = 448
	InputHeight     = 44
	ButtonWidth     = 120
	FormStackWidth  = 400 // narrower forms put the button below the input
	FormGap         = 16
	SectionGap      = 24
	SubtitleGap     = 48
	FooterHeight    = 48
	SubtitleColumns = 64

	// Layer fade-in
	FadeFPS       = 60
	FadeFrequency = 6.0
	FadeDamping   = 1.0

	// Sound
	SampleRate    = 44100
	ZapDuration   = 0.12 // seconds
	ZapMaxVoices  = 4
	DefaultVolume = -1.5 // beep effects.Volume exponent, base 2
)
