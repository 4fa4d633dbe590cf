// Package galaxy derives galaxy-level semantics from decoded portal
// glyphs: core-void and phantom-star classification, deterministic star
// positions for map rendering, and the decode/encode operations that
// combine the codec with those rules.
package galaxy

// Core-void ellipsoid radii, in signed coordinate units. The X/Z radius
// approximates the game's ~3,000-light-year exclusion zone scaled to the
// galaxy's flattened Y extent.
const (
	coreRadiusXZ = 8.0
	coreRadiusY  = 1.0
)

const (
	phantomThreshold = 0x258 // 600: indices at or above are phantom
	phantomException = 0x3E8 // 1000: documented exception, never phantom
)

// DisplayScale is the presentation-only multiplier applied to coordinates
// when scaled output is requested. It never affects stored or
// round-tripped values.
const DisplayScale = 0.2

// Config controls the optional classification rules. Set once at
// construction; a Geometry is immutable and safe for concurrent use.
type Config struct {
	// CoreVoidEnabled applies the core-void exclusion ellipsoid. When
	// false, InCoreVoid always reports false and Encode will not reject
	// void coordinates.
	CoreVoidEnabled bool
	// ZeroPhantomRule treats solar system index 0 as phantom.
	ZeroPhantomRule bool
}

// DefaultConfig enables every classification rule.
func DefaultConfig() Config {
	return Config{
		CoreVoidEnabled: true,
		ZeroPhantomRule: true,
	}
}

// Geometry evaluates galaxy classification rules under a fixed Config.
type Geometry struct {
	cfg Config
}

func New(cfg Config) *Geometry {
	return &Geometry{cfg: cfg}
}

// Class labels the accessibility of a star system.
type Class string

const (
	ClassAccessible  Class = "accessible"
	ClassPhantom     Class = "phantom"
	ClassCoreAnomaly Class = "core_anomaly"
	ClassCorePhantom Class = "core_phantom"
)

// Classification tags a coordinate / solar-system pair. Derived data,
// recomputed per query and never persisted.
type Classification struct {
	IsPhantom    bool  `json:"is_phantom"`
	IsInCore     bool  `json:"is_in_core"`
	IsAccessible bool  `json:"is_accessible"`
	Class        Class `json:"classification"`
}

// InCoreVoid reports whether the point lies strictly inside the core-void
// ellipsoid centered at the galactic origin. A point exactly on the
// boundary is outside.
func (g *Geometry) InCoreVoid(x, y, z int) bool {
	if !g.cfg.CoreVoidEnabled {
		return false
	}
	fx := float64(x) / coreRadiusXZ
	fy := float64(y) / coreRadiusY
	fz := float64(z) / coreRadiusXZ
	return fx*fx+fy*fy+fz*fz < 1
}

// PhantomStar reports whether a solar system index is a phantom star.
// Index 0x3E8 is a documented exception and is never phantom; it must be
// checked before the threshold rule, which would otherwise catch it.
func (g *Geometry) PhantomStar(solarSystem int) bool {
	if solarSystem == phantomException {
		return false
	}
	if solarSystem == 0 {
		return g.cfg.ZeroPhantomRule
	}
	return solarSystem >= phantomThreshold
}

// Classify labels a coordinate / solar-system pair. A core-only hit is
// labeled core_anomaly: natural game data never produces it, but found
// data still gets a label instead of a failure.
func (g *Geometry) Classify(x, y, z, solarSystem int) Classification {
	phantom := g.PhantomStar(solarSystem)
	inCore := g.InCoreVoid(x, y, z)

	var class Class
	switch {
	case phantom && inCore:
		class = ClassCorePhantom
	case inCore:
		class = ClassCoreAnomaly
	case phantom:
		class = ClassPhantom
	default:
		class = ClassAccessible
	}

	return Classification{
		IsPhantom:    phantom,
		IsInCore:     inCore,
		IsAccessible: !phantom && !inCore,
		Class:        class,
	}
}
