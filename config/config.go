package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

// Config is the full, immutable tuning set handed to the simulation
// constructors. Binaries read the package-level C; library code only sees
// the value it was constructed with.
type Config struct {
	Arena   ArenaConfig
	Fighter FighterConfig
	Combat  CombatConfig
	Timing  TimingConfig
	Beam    BeamConfig
	Match   MatchConfig
	AI      AIConfig
	Bots    map[Difficulty]BotProfile
	Remote  RemoteConfig
	Records RecordsConfig
	Roster  []Archetype
	Display DisplayConfig
}

// Spawn is a round-start position.
type Spawn struct {
	X, Y        float64
	FacingRight bool
}

// ArenaConfig describes the playable rectangle.
type ArenaConfig struct {
	Width  float64
	Height float64
	Spawns [2]Spawn // P1, P2
}

// FighterConfig contains vitals and movement shared by every archetype
type FighterConfig struct {
	HealthMax    float64
	StaminaMax   float64
	StaminaRegen float64 // per tick while no action is active
	MoveSpeed    float64 // pixels per tick for human input
}

// CombatConfig contains costs, damage and hitbox values
type CombatConfig struct {
	// Stamina costs
	LightCost      float64
	HeavyCost      float64
	ProjectileCost float64
	BeamCost       float64
	UltimateCost   float64

	// Damage
	LightDamage      float64
	HeavyDamage      float64
	ProjectileDamage float64
	BeamTickDamage   float64 // applied every overlapping tick
	UltimateDamage   float64

	// Modifiers
	BlockFactor    float64 // multiplier while blocking
	StunMultiplier float64 // multiplier while stunned
	ComboThreshold int     // consecutive hits that force a stun

	// Melee hitbox
	HitboxWidth  float64
	HitboxHeight float64

	// Projectiles
	ProjectileSpeed  float64
	UltimateSpeed    float64
	ProjectileMargin float64 // horizontal slack past the arena edge before despawn
	ProjectileWidth  float64
	ProjectileHeight float64
	UltimateWidth    float64
	UltimateHeight   float64
}

// TimingConfig holds every fighter timer as a tick count
type TimingConfig struct {
	TickRate           int // ticks per second
	StrikeFrameTicks   int // one strike frame window
	ThrowTicks         int // wind-up before the energy ball leaves
	UltimateFrameTicks int // per ultimate pose frame
	StunTicks          int
	ComboWindowTicks   int // max gap between hits that still chains
}

// BeamConfig drives the three-phase channeled beam
type BeamConfig struct {
	DurationTicks int
	DelayTicks    int     // ticks before the reach starts growing
	GrowTicks     int     // ticks for reach to go from 0 to MaxReach
	MaxReach      float64 // pixels
	TipFrom       int     // elapsed tick at which the tip is live
	BodyFrom      int
	RootFrom      int
	TipWidth      float64
	RootWidth     float64
	Height        float64
}

// MatchConfig holds round and phase timing
type MatchConfig struct {
	RoundsToWin    int
	IntroTicks     int // VS card
	BannerTicks    int // "ROUND N"
	CountStepTicks int // each of 3, 2, 1
	FightTicks     int // round timer
	KOFreezeTicks  int
	TowerOpponents int // 0 means every other roster member
}

// CountdownTicks is the full length of the pre-round countdown.
func (m MatchConfig) CountdownTicks() int {
	return m.BannerTicks + 3*m.CountStepTicks
}

// AIConfig contains rule-based controller constants shared by every difficulty
type AIConfig struct {
	UnblockAfterTicks     int     // release a held block after this long without acting
	StallSampleTicks      int     // displacement sampling period
	StallThresholdTicks   int     // stalled ticks before an emergency action
	StallMinMove          float64 // displacement below this counts as stalled
	EmergencyCeiling      int     // emergencies in a row before a total reset
	ModeRerollTicks       int
	IdleAttackTicks       int // no attack for this long forces an emergency
	EmergencyMeleeCD      int
	EmergencyProjectileCD int
	EmergencyBurstFactor  float64 // multiple of speed used by the approach burst
	RetreatFactor         float64
	LateralVertical       float64 // multiple of speed when |dy| is large
	LateralNudge          float64
	AlignFactor           float64
	VerticalSlack         float64 // |dy| below this counts as aligned
}

// RemoteConfig configures the external decision service
type RemoteConfig struct {
	Endpoint      string
	APIKey        string
	TimeoutMillis int
	ApproachSpeed float64
	RetreatSpeed  float64
}

// Timeout returns the request deadline.
func (r RemoteConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutMillis) * time.Millisecond
}

// Enabled reports whether both endpoint and credential are configured.
func (r RemoteConfig) Enabled() bool {
	return r.Endpoint != "" && r.APIKey != ""
}

// RecordsConfig selects the leaderboard backend
type RecordsConfig struct {
	Backend   string // "gdata", "redis" or "memory"
	AppName   string // gdata application directory
	RedisAddr string
	RedisKey  string // sorted set key prefix
	TopN      int
}

// DisplayConfig is only read by the interactive shell
type DisplayConfig struct {
	Width       int
	Height      int
	Title       string
	Background  color.RGBA
	P1Color     color.RGBA
	P2Color     color.RGBA
	HitboxColor color.RGBA
	HUDFontSize float64
}

// Colors
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// C is the process-wide configuration read by the binaries.
var C *Config

func init() {
	d := Default()
	C = &d
}

// Default returns the stock tuning at 60 ticks per second.
func Default() Config {
	const w, h = 800.0, 600.0
	return Config{
		Arena: ArenaConfig{
			Width:  w,
			Height: h,
			Spawns: [2]Spawn{
				{X: 100, Y: h - 230, FacingRight: true},
				{X: w - 200, Y: h - 230, FacingRight: false},
			},
		},
		Fighter: FighterConfig{
			HealthMax:    100,
			StaminaMax:   100,
			StaminaRegen: 0.15,
			MoveSpeed:    5,
		},
		Combat: CombatConfig{
			LightCost:      5,
			HeavyCost:      8,
			ProjectileCost: 15,
			BeamCost:       50,
			UltimateCost:   80,

			LightDamage:      5,
			HeavyDamage:      8,
			ProjectileDamage: 12,
			BeamTickDamage:   1.5,
			UltimateDamage:   25,

			BlockFactor:    0.3, // 70% reduction
			StunMultiplier: 2.0,
			ComboThreshold: 4,

			HitboxWidth:  60,
			HitboxHeight: 40,

			ProjectileSpeed:  12,
			UltimateSpeed:    8,
			ProjectileMargin: 50,
			ProjectileWidth:  40,
			ProjectileHeight: 40,
			UltimateWidth:    120,
			UltimateHeight:   120,
		},
		Timing: TimingConfig{
			TickRate:           60,
			StrikeFrameTicks:   6,   // 100ms
			ThrowTicks:         9,   // 150ms
			UltimateFrameTicks: 12,  // 200ms
			StunTicks:          60,  // 1s
			ComboWindowTicks:   120, // 2s
		},
		Beam: BeamConfig{
			DurationTicks: 60,
			DelayTicks:    6,
			GrowTicks:     54,
			MaxReach:      1350,
			TipFrom:       6,
			BodyFrom:      18,
			RootFrom:      30,
			TipWidth:      60,
			RootWidth:     40,
			Height:        50,
		},
		Match: MatchConfig{
			RoundsToWin:    2,
			IntroTicks:     240,
			BannerTicks:    90,
			CountStepTicks: 60,
			FightTicks:     3600, // 60s
			KOFreezeTicks:  120,
		},
		AI: AIConfig{
			UnblockAfterTicks:     30,
			StallSampleTicks:      9,
			StallThresholdTicks:   27,
			StallMinMove:          1,
			EmergencyCeiling:      5,
			ModeRerollTicks:       120,
			IdleAttackTicks:       120,
			EmergencyMeleeCD:      6,
			EmergencyProjectileCD: 24,
			EmergencyBurstFactor:  16,
			RetreatFactor:         1.2,
			LateralVertical:       0.8,
			LateralNudge:          0.3,
			AlignFactor:           0.6,
			VerticalSlack:         40,
		},
		Bots: DefaultBots(),
		Remote: RemoteConfig{
			TimeoutMillis: 2000,
			ApproachSpeed: 3.5,
			RetreatSpeed:  4.0,
		},
		Records: RecordsConfig{
			Backend:  "gdata",
			AppName:  "kiclash",
			RedisKey: "kiclash:records",
			TopN:     10,
		},
		Roster: DefaultRoster(),
		Display: DisplayConfig{
			Width:       int(w),
			Height:      int(h),
			Title:       "Ki Clash",
			Background:  color.RGBA{R: 15, G: 25, B: 50, A: 255},
			P1Color:     LightBlue,
			P2Color:     Orange,
			HitboxColor: color.RGBA{R: 255, G: 0, B: 0, A: 120},
			HUDFontSize: 16,
		},
	}
}

// Validation errors
var (
	ErrInvalidArena  = errors.New("config: arena must have positive size")
	ErrInvalidTiming = errors.New("config: tick rate and frame windows must be positive")
	ErrInvalidMatch  = errors.New("config: rounds to win must be positive")
	ErrEmptyRoster   = errors.New("config: roster is empty")
)

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return ErrInvalidArena
	}
	t := c.Timing
	if t.TickRate <= 0 || t.StrikeFrameTicks <= 0 || t.ThrowTicks <= 0 || t.UltimateFrameTicks <= 0 {
		return ErrInvalidTiming
	}
	if c.Match.RoundsToWin <= 0 {
		return ErrInvalidMatch
	}
	if len(c.Roster) == 0 {
		return ErrEmptyRoster
	}
	for _, d := range Difficulties() {
		if _, ok := c.Bots[d]; !ok {
			return fmt.Errorf("config: missing bot profile %q", d)
		}
	}
	for _, a := range c.Roster {
		if _, ok := a.Frames[AssetIdle]; !ok {
			return fmt.Errorf("config: archetype %q has no idle frames", a.ID)
		}
	}
	return nil
}

// Archetype looks a roster entry up by id.
func (c Config) Archetype(id string) (Archetype, bool) {
	for _, a := range c.Roster {
		if a.ID == id {
			return a, true
		}
	}
	return Archetype{}, false
}

// Seconds converts a tick count to seconds at the configured rate.
func (c Config) Seconds(ticks int) float64 {
	if c.Timing.TickRate <= 0 {
		return 0
	}
	return float64(ticks) / float64(c.Timing.TickRate)
}
