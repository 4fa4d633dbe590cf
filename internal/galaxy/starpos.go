package galaxy

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/Parker1920/Master-Haven-sub000/internal/glyph"
)

// starSpread is the width, in coordinate units, of the jitter window a
// star may occupy around its region's base coordinate.
const starSpread = 64.0

// StarPosition computes a deterministic pseudo-random position for a star
// system inside its region, so systems sharing a region do not overlap on
// a 3D map. The offset is derived from a SHA-256 digest, so identical
// inputs yield bit-identical floats across runs and platforms. Rendering
// aid only; never persist the result as canonical data.
func (g *Geometry) StarPosition(regionX, regionY, regionZ, solarSystem int) (float64, float64, float64) {
	seed := fmt.Sprintf("NMS:%d:%d:%d:%d", regionX, regionY, regionZ, solarSystem)
	digest := sha256.Sum256([]byte(seed))

	x := float64(glyph.SignedXZ(regionX)) + jitter(digest[0:4])
	y := float64(glyph.SignedY(regionY)) + jitter(digest[4:8])
	z := float64(glyph.SignedXZ(regionZ)) + jitter(digest[8:12])
	return x, y, z
}

// jitter maps a 4-byte digest window to [-spread/2, spread/2].
func jitter(window []byte) float64 {
	u := binary.BigEndian.Uint32(window)
	return (float64(u)/float64(math.MaxUint32) - 0.5) * starSpread
}
