package config

import "image/color"

// Default is the renderer layer every scene draws on.
const Default = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// PlayerConfig contains all player-related configuration values.
// Speeds are pixel/s, accelerations pixel/s², durations seconds.
type PlayerConfig struct {
	// Horizontal movement
	WalkAcceleration float64
	RunAcceleration  float64
	SkidSpeed        float64 // reversing above this speed starts a skid
	SkidTime         float64
	MaxWalkSpeed     float64
	MaxRunSpeed      float64
	WalkSpeed        float64 // instant speed when starting to walk
	WideWidth        float64 // hitbox width above MaxWalkSpeed

	// Climbing
	MaxClimbSpeedX float64
	MaxClimbSpeedY float64

	// Friction
	NormalFrictionMultiplier float64
	IceFrictionMultiplier    float64
	IceAccelerationMult      float64

	// Jumping
	JumpSpeed           float64
	RunJumpSpeed        float64
	SmallJumpSpeed      float64
	BackflipSpeed       float64
	BackflipSpeedX      float64
	BackflipTime        float64
	BounceHighSpeed     float64
	BounceLowSpeed      float64
	JumpEarlyApexFactor float64
	JumpGraceTime       float64
	SlopeGlueSpeed      float64

	// Butt-jump
	ButtjumpMinVelocityY float64
	ButtjumpRebound      float64

	// Swimming
	SwimAcceleration float64
	SwimDamping      float64

	// Timers
	KickTime              float64
	CheerTime             float64
	UnduckHurtTime        float64
	ShootingTime          float64
	SafeTime              float64
	InvincibleTime        float64
	InvincibleTimeWarning float64
	DyingTime             float64
	DeathLaunchSpeed      float64

	// Ghost mode flies at GhostSpeedFactor * MaxRunSpeed
	GhostSpeedFactor float64

	// Death coin scatter
	CoinScatterThreshold int
	CoinScatterCount     int
	CoinScatterMinLoss   int
}

// SizeRow is one row of the player size table.
type SizeRow struct {
	Width       float64
	BigHeight   float64
	SmallHeight float64
}

// SizeConfig keeps the two height rows separate. Init is used by Init,
// growing and shrinking through bonuses; Move is used by Move, ducking and
// standing up. The 1-pixel difference is inherited and unverified.
type SizeConfig struct {
	Init SizeRow
	Move SizeRow
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity float64

	// Collision
	CellSize        int     // resolv cell size
	TileSize        float64 // fallback tile size when a level does not specify one
	ContactDistance float64 // distance at which tile attributes are still reported
}

// BadguyConfig contains shared badguy values.
type BadguyConfig struct {
	Width            float64
	Height           float64
	KillFallSpeed    float64
	SquishBounce     float64
	SquishedLifetime float64
}

// IgelConfig contains Igel configuration
type IgelConfig struct {
	WalkSpeed       float64
	TurnRecoverTime float64
	RangeOfVision   float64
	MaxDropHeight   float64
}

// JumpyConfig contains Jumpy configuration
type JumpyConfig struct {
	JumpSpeed    float64
	MidTolerance float64
	LowTolerance float64
}

// ZeeklingConfig contains Zeekling configuration
type ZeeklingConfig struct {
	MinSpeed         int
	MaxSpeed         int
	MaxDiveHeight    float64
	NearMissDistance float64
}

// BulletConfig contains fire/ice bullet configuration
type BulletConfig struct {
	Speed     float64
	Width     float64
	Height    float64
	Bounce    float64
	LifeCount int
	LifeTime  float64
}

// EffectsConfig contains particle configuration
type EffectsConfig struct {
	DustCount      int
	DustLifetime   float64
	DustColor      color.RGBA
	SparkleLife    float64
	HeadgearSpeedX float64
	HeadgearSpeedY float64
	HeadgearAccelY float64
	CoinLifetime   float64
	CoinGravity    float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
	PeekDistanceX   float64
	PeekDistanceY   float64
	PeekTime        float32 // seconds to ease into a peek
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool
	DrawHitboxes bool
	Seed         int64
	TuningFile   string
	AssetDir     string // on-disk assets/ tree; scripts found there hot reload
	Level        string
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains title and level-complete screen values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// HUDConfig contains heads-up display values
type HUDConfig struct {
	Margin        float64
	TextColor     color.RGBA
	TextBgColor   color.RGBA
	WarningColor  color.RGBA
	ShrinkTime    float64 // seconds the exit iris takes to close
	HitboxColor   color.RGBA
	HitboxPlayer  color.RGBA
	HitboxTrigger color.RGBA
}

var C *Config
var Player PlayerConfig
var Sizes SizeConfig
var Physics PhysicsConfig
var Badguy BadguyConfig
var Igel IgelConfig
var Jumpy JumpyConfig
var Zeekling ZeeklingConfig
var Bullet BulletConfig
var Effects EffectsConfig
var Camera CameraConfig
var Debug DebugConfig
var Pause PauseConfig
var Menu MenuConfig
var LevelComplete MenuConfig
var HUD HUDConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Gray         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	SkyTop       = color.RGBA{R: 40, G: 70, B: 140, A: 255}
	SkyBottom    = color.RGBA{R: 150, G: 190, B: 230, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:         1000,
		CellSize:        32,
		TileSize:        32,
		ContactDistance: 1,
	}

	Player = PlayerConfig{
		WalkAcceleration: 300,
		RunAcceleration:  400,
		SkidSpeed:        200,
		SkidTime:         0.3,
		MaxWalkSpeed:     230,
		MaxRunSpeed:      320,
		WalkSpeed:        100,
		WideWidth:        34,

		MaxClimbSpeedX: 48,
		MaxClimbSpeedY: 128,

		NormalFrictionMultiplier: 1.5,
		IceFrictionMultiplier:    0.1,
		IceAccelerationMult:      0.25,

		JumpSpeed:           -520,
		RunJumpSpeed:        -580,
		SmallJumpSpeed:      -300,
		BackflipSpeed:       -580,
		BackflipSpeedX:      100,
		BackflipTime:        0.15,
		BounceHighSpeed:     -520,
		BounceLowSpeed:      -300,
		JumpEarlyApexFactor: 3.0,
		JumpGraceTime:       0.25,
		SlopeGlueSpeed:      250,

		ButtjumpMinVelocityY: 400,
		ButtjumpRebound:      -300,

		SwimAcceleration: -2000,
		SwimDamping:      0.94,

		KickTime:              0.3,
		CheerTime:             1.0,
		UnduckHurtTime:        0.25,
		ShootingTime:          0.15,
		SafeTime:              1.25,
		InvincibleTime:        14,
		InvincibleTimeWarning: 2,
		DyingTime:             3.0,
		DeathLaunchSpeed:      -700,

		GhostSpeedFactor: 2,

		CoinScatterThreshold: 25,
		CoinScatterCount:     5,
		CoinScatterMinLoss:   25,
	}

	Sizes = SizeConfig{
		Init: SizeRow{Width: 31.8, BigHeight: 62.8, SmallHeight: 30.8},
		Move: SizeRow{Width: 31.8, BigHeight: 63.8, SmallHeight: 31.8},
	}

	Badguy = BadguyConfig{
		Width:            31.8,
		Height:           31.8,
		KillFallSpeed:    -450,
		SquishBounce:     -300,
		SquishedLifetime: 2,
	}

	Igel = IgelConfig{
		WalkSpeed:       80,
		TurnRecoverTime: 0.5,
		RangeOfVision:   256,
		MaxDropHeight:   16,
	}

	Jumpy = JumpyConfig{
		JumpSpeed:    -600,
		MidTolerance: 4,
		LowTolerance: 2,
	}

	Zeekling = ZeeklingConfig{
		MinSpeed:         130,
		MaxSpeed:         171,
		MaxDiveHeight:    512,
		NearMissDistance: 8,
	}

	Bullet = BulletConfig{
		Speed:     600,
		Width:     16,
		Height:    16,
		Bounce:    -350,
		LifeCount: 3,
		LifeTime:  3,
	}

	Effects = EffectsConfig{
		DustCount:      3,
		DustLifetime:   0.8,
		DustColor:      color.RGBA{R: 102, G: 102, B: 102, A: 255},
		SparkleLife:    0.4,
		HeadgearSpeedX: 100,
		HeadgearSpeedY: -300,
		HeadgearAccelY: 1000,
		CoinLifetime:   1.5,
		CoinGravity:    1000,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
		PeekDistanceX:   160,
		PeekDistanceY:   120,
		PeekTime:        0.4,
	}

	Debug = DebugConfig{
		Seed:       1,
		TuningFile: "tuning.yaml",
		AssetDir:   "assets",
		Level:      "levels/demo.tmx",
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Restart Level", "Exit"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            120,
		MenuStartY:        260,
		MenuItemHeight:    30,
		MenuItemGap:       12,
	}

	LevelComplete = MenuConfig{
		BackgroundColor:   color.RGBA{R: 10, G: 40, B: 20, A: 255},
		TitleColor:        Yellow,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            150,
		MenuStartY:        300,
		MenuItemHeight:    30,
		MenuItemGap:       15,
	}

	HUD = HUDConfig{
		Margin:        10,
		TextColor:     White,
		TextBgColor:   color.RGBA{R: 0, G: 0, B: 0, A: 120},
		WarningColor:  Red,
		ShrinkTime:    1.2,
		HitboxColor:   color.RGBA{R: 255, G: 0, B: 0, A: 255},
		HitboxPlayer:  color.RGBA{R: 0, G: 255, B: 0, A: 255},
		HitboxTrigger: color.RGBA{R: 255, G: 255, B: 0, A: 255},
	}
}
