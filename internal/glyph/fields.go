package glyph

import "fmt"

// CheckRanges verifies each encode argument against its declared range.
// The returned *RangeError names the offending argument.
func CheckRanges(x, y, z, planet, solarSystem int) error {
	if x < MinXZ || x > MaxXZ {
		return &RangeError{
			Field:   "x",
			Message: fmt.Sprintf("x must be between %d and %d, got %d", MinXZ, MaxXZ, x),
		}
	}
	if y < MinY || y > MaxY {
		return &RangeError{
			Field:   "y",
			Message: fmt.Sprintf("y must be between %d and %d, got %d", MinY, MaxY, y),
		}
	}
	if z < MinXZ || z > MaxXZ {
		return &RangeError{
			Field:   "z",
			Message: fmt.Sprintf("z must be between %d and %d, got %d", MinXZ, MaxXZ, z),
		}
	}
	if planet < MinPlanet || planet > MaxPlanet {
		return &RangeError{
			Field:   "planet",
			Message: fmt.Sprintf("planet must be between %d and %d, got %d", MinPlanet, MaxPlanet, planet),
		}
	}
	if solarSystem < MinSolarSystem || solarSystem > MaxSolarSystem {
		return &RangeError{
			Field:   "solar_system",
			Message: fmt.Sprintf("solar system index must be between %d and %d, got %d", MinSolarSystem, MaxSolarSystem, solarSystem),
		}
	}
	return nil
}

// FieldsFromParts converts a signed coordinate plus planet and solar
// system indices into raw glyph fields. After the split-range conversion
// it re-checks that no field landed on a forbidden sentinel and that the
// three coordinate fields are not simultaneously zero.
func FieldsFromParts(x, y, z, planet, solarSystem int) (Fields, error) {
	if err := CheckRanges(x, y, z, planet, solarSystem); err != nil {
		return Fields{}, err
	}

	f := Fields{
		Planet:      planet,
		SolarSystem: solarSystem,
		X:           FieldXZ(x),
		Y:           FieldY(y),
		Z:           FieldXZ(z),
	}

	if f.Y == sentinelY {
		return Fields{}, &RangeError{
			Field:   "y",
			Message: fmt.Sprintf("y %d maps to the forbidden Y field 80", y),
		}
	}
	if f.Z == sentinelXZ {
		return Fields{}, &RangeError{
			Field:   "z",
			Message: fmt.Sprintf("z %d maps to the forbidden Z field 800", z),
		}
	}
	if f.X == sentinelXZ {
		return Fields{}, &RangeError{
			Field:   "x",
			Message: fmt.Sprintf("x %d maps to the forbidden X field 800", x),
		}
	}
	if f.X == 0 && f.Y == 0 && f.Z == 0 {
		return Fields{}, &RangeError{
			Field:   "coordinate",
			Message: "coordinate (0, 0, 0) would produce the zero glyph",
		}
	}

	return f, nil
}
