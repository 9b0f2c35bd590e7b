package config

// AssetKey names one frame sequence an archetype may own.
type AssetKey string

const (
	AssetIdle       AssetKey = "idle"
	AssetMoveRight  AssetKey = "move_right"
	AssetMoveLeft   AssetKey = "move_left"
	AssetMoveDown   AssetKey = "move_down"
	AssetMoveUp     AssetKey = "move_up"
	AssetLight      AssetKey = "light"
	AssetHeavy      AssetKey = "heavy"
	AssetBlock      AssetKey = "block"
	AssetThrow      AssetKey = "throw"
	AssetEnergyBall AssetKey = "energy_ball"
	AssetBeamPose   AssetKey = "beam_pose"
	AssetBeam       AssetKey = "beam" // tip, body, root
	AssetStunned    AssetKey = "stunned"
	AssetKnockout   AssetKey = "knockout"
)

// FrameSet is the frame count and per-frame size of one sequence.
type FrameSet struct {
	Frames int
	W, H   float64
}

// UltimateKind is the per-archetype finisher.
type UltimateKind int

const (
	UltimateNone UltimateKind = iota
	UltimateGenkidama
	UltimateGalickGun
	UltimateMasenko
	UltimateDeathBall
)

var ultimateNames = map[UltimateKind]string{
	UltimateNone:      "none",
	UltimateGenkidama: "genkidama",
	UltimateGalickGun: "galick_gun",
	UltimateMasenko:   "masenko",
	UltimateDeathBall: "death_ball",
}

func (u UltimateKind) String() string {
	if name, ok := ultimateNames[u]; ok {
		return name
	}
	return "unknown"
}

// UltimateMove declares the single ultimate an archetype can perform and the
// frame sets it needs.
type UltimateMove struct {
	Kind  UltimateKind
	Pose  AssetKey // wind-up frames, one UltimateFrameTicks window each
	Power AssetKey // the projectile sprite
}

// Available reports whether a kind is declared at all.
func (u UltimateMove) Available() bool {
	return u.Kind != UltimateNone
}

// Archetype is a selectable character: frame tables plus declared capabilities.
type Archetype struct {
	ID       string
	Name     string
	Lore     string
	Frames   map[AssetKey]FrameSet
	Ultimate UltimateMove
}

// FrameSet returns the named sequence.
func (a Archetype) FrameSet(key AssetKey) (FrameSet, bool) {
	fs, ok := a.Frames[key]
	if !ok || fs.Frames <= 0 {
		return FrameSet{}, false
	}
	return fs, true
}

// Has reports whether the archetype owns a non-empty sequence.
func (a Archetype) Has(key AssetKey) bool {
	_, ok := a.FrameSet(key)
	return ok
}

// HeavyFrames is the number of heavy strike windows, at least one.
func (a Archetype) HeavyFrames() int {
	if fs, ok := a.FrameSet(AssetHeavy); ok {
		return fs.Frames
	}
	return 1
}

// CanChannel reports whether both the beam pose and the three beam
// segments exist.
func (a Archetype) CanChannel() bool {
	beam, ok := a.FrameSet(AssetBeam)
	return ok && beam.Frames >= 3 && a.Has(AssetBeamPose)
}

// HasKnockout reports whether a KO sequence exists.
func (a Archetype) HasKnockout() bool {
	return a.Has(AssetKnockout)
}

// CanUltimate reports whether the declared ultimate has its frames.
func (a Archetype) CanUltimate() bool {
	return a.Ultimate.Available() && a.Has(a.Ultimate.Pose) && a.Has(a.Ultimate.Power)
}

// Size is the bounding box for a state's sequence, falling back to idle.
func (a Archetype) Size(key AssetKey) (w, h float64) {
	if fs, ok := a.FrameSet(key); ok {
		return fs.W, fs.H
	}
	if fs, ok := a.FrameSet(AssetIdle); ok {
		return fs.W, fs.H
	}
	return 0, 0
}

// body builds the sequences every archetype shares.
func body(w, h float64, heavy int) map[AssetKey]FrameSet {
	return map[AssetKey]FrameSet{
		AssetIdle:       {Frames: 1, W: w, H: h},
		AssetMoveRight:  {Frames: 1, W: w, H: h},
		AssetMoveLeft:   {Frames: 1, W: w, H: h},
		AssetMoveDown:   {Frames: 1, W: w, H: h},
		AssetLight:      {Frames: 2, W: w + 20, H: h},
		AssetHeavy:      {Frames: heavy, W: w + 30, H: h},
		AssetBlock:      {Frames: 1, W: w, H: h},
		AssetThrow:      {Frames: 2, W: w + 10, H: h},
		AssetEnergyBall: {Frames: 1, W: 40, H: 40},
		AssetStunned:    {Frames: 1, W: w, H: h},
		AssetKnockout:   {Frames: 2, W: h, H: w},
	}
}

func withBeam(f map[AssetKey]FrameSet, w, h float64) map[AssetKey]FrameSet {
	f[AssetBeamPose] = FrameSet{Frames: 1, W: w + 20, H: h}
	f[AssetBeam] = FrameSet{Frames: 3, W: 60, H: 50}
	return f
}

// DefaultRoster returns the four stock archetypes.
func DefaultRoster() []Archetype {
	goku := withBeam(body(80, 120, 5), 80, 120)
	goku["genki_pose"] = FrameSet{Frames: 6, W: 90, H: 130}
	goku["genkidama"] = FrameSet{Frames: 1, W: 120, H: 120}

	// No beam frames: ChannelBeam is refused.
	vegeta := body(78, 118, 3)
	vegeta[AssetMoveUp] = FrameSet{Frames: 1, W: 78, H: 118}
	vegeta["galick_pose"] = FrameSet{Frames: 4, W: 96, H: 118}
	vegeta["galick_gun"] = FrameSet{Frames: 1, W: 140, H: 60}

	gohan := withBeam(body(70, 100, 4), 70, 100)
	gohan["masenko_pose"] = FrameSet{Frames: 3, W: 80, H: 110}
	gohan["masenko"] = FrameSet{Frames: 1, W: 110, H: 70}

	freezer := withBeam(body(84, 124, 1), 84, 124)
	freezer[AssetMoveUp] = FrameSet{Frames: 1, W: 84, H: 124}
	freezer["death_ball_pose"] = FrameSet{Frames: 3, W: 90, H: 140}
	freezer["death_ball"] = FrameSet{Frames: 1, W: 130, H: 130}

	return []Archetype{
		{
			ID:       "goku",
			Name:     "Goku",
			Lore:     "A Saiyan raised on Earth, tireless defender of the people he loves.",
			Frames:   goku,
			Ultimate: UltimateMove{Kind: UltimateGenkidama, Pose: "genki_pose", Power: "genkidama"},
		},
		{
			ID:       "vegeta",
			Name:     "Vegeta",
			Lore:     "Prince of the Saiyans, first a fierce rival and later a proud ally.",
			Frames:   vegeta,
			Ultimate: UltimateMove{Kind: UltimateGalickGun, Pose: "galick_pose", Power: "galick_gun"},
		},
		{
			ID:       "gohan",
			Name:     "Gohan",
			Lore:     "Half Saiyan with a hidden power that surfaces when his friends are in danger.",
			Frames:   gohan,
			Ultimate: UltimateMove{Kind: UltimateMasenko, Pose: "masenko_pose", Power: "masenko"},
		},
		{
			ID:       "freezer",
			Name:     "Freezer",
			Lore:     "Conqueror of the universe and sworn enemy of the Z fighters.",
			Frames:   freezer,
			Ultimate: UltimateMove{Kind: UltimateDeathBall, Pose: "death_ball_pose", Power: "death_ball"},
		},
	}
}
