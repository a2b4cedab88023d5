package config

const (
	WindowWidth  = 1280
	WindowHeight = 800

	// Particle budget; interactive count follows the message list,
	// the remainder becomes the background halo.
	TotalParticles = 1200

	// Start-position shell (world units)
	ShellRadiusMin   = 24.0
	ShellRadiusRange = 18.0

	// Heart outline
	HeartScale    = 1.1
	OutlineJitter = 0.4
	HaloSpread    = 7.5

	// Formation smoothing rates (fraction of remaining distance per tick)
	IdleRate             = 0.08
	FormedRate           = 0.045
	FormedBackgroundRate = 0.03
	RateVariation        = 0.25

	// Idle drift oscillation
	DriftAmplitude = 1.6
	DriftSpeed     = 0.9

	// Background orbit once formed
	OrbitAmplitude = 1.3
	OrbitSpeed     = 0.12

	// Hit testing: world-space perpendicular distance to the pointer ray
	HitThreshold = 1.5

	// Distinct messages that must be viewed before the final phrase shows
	CompletionThreshold = 10

	// Camera
	CameraFOV      = 45.0
	CameraDistance = 62.0
	CameraNear     = 0.1
	CameraFar      = 500.0
	AutoOrbitSpeed = 0.0018
)
