package config

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Particle field
	ParticleArea     = 8000 // viewport pixels per particle
	MaxParticles     = 150
	LargeThreshold   = 3.0
	SmallShare       = 0.8
	AccentChance     = 0.1
	SpeedFactor      = 0.15
	JitterRange      = 0.05
	BounceJitter     = 0.01
	InteractRadius   = 200.0
	AttractForce     = 0.01
	RepelForce       = -0.03
	RepelGrowth      = 0.5
	BaseMaxSpeed     = 0.8
	LargeSpeedBonus  = 0.3
	PulseUpperBound  = 1.3
	PulseLowerBound  = 0.7
	PulseEvery       = 2 // ticks between pulse updates
	LinkRadius       = 120.0
	LargeLinkRadius  = 180.0
	LinkOpacity      = 0.05
	LargeLinkBoost   = 1.5
	LinkWidthFactor  = 0.2
	GradientSpeed    = 0.002
	TitleRotateTicks = 180

	// Theme toggle button
	ToggleSize   = 36
	ToggleMargin = 16

	// Profile card
	CardWidth   = 360
	CardPadding = 18
	RowHeight   = 34
	LineHeight  = 16
)
