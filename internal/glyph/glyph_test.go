package glyph

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"10a4f3e7b2c1", "10A4F3E7B2C1"},
		{"1-0A4-F3-E7B-2C1", "10A4F3E7B2C1"},
		{"  10A4 F3E7 B2C1\t", "10A4F3E7B2C1"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := Format("10A4F3E7B2C1"); got != "1-0A4-F3-E7B-2C1" {
		t.Fatalf("unexpected formatted glyph: %s", got)
	}
}

func TestFormat_NonCanonicalLengthUnchanged(t *testing.T) {
	for _, in := range []string{"", "ABC", "10A4F3E7B2C12"} {
		if got := Format(in); got != in {
			t.Fatalf("Format(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestSystemKey(t *testing.T) {
	if got := SystemKey("10A4F3E7B2C1"); got != "0A4F3E7B2C1" {
		t.Fatalf("unexpected system key: %s", got)
	}
	// Planet digit is excluded: every planet in a system shares the key.
	if SystemKey("10A4F3E7B2C1") != SystemKey("F-0A4-F3-E7B-2C1") {
		t.Fatalf("system key should ignore the planet digit")
	}
	if got := SystemKey("not a glyph"); got != "" {
		t.Fatalf("expected empty key for malformed input, got %q", got)
	}
}

func TestSignedXZ_Boundaries(t *testing.T) {
	cases := []struct {
		field int
		want  int
	}{
		{0x000, 0},
		{0x001, 1},
		{0x7FF, 2047},
		{0x801, -2047},
		{0xFFF, -1},
	}
	for _, tc := range cases {
		if got := SignedXZ(tc.field); got != tc.want {
			t.Fatalf("SignedXZ(%#X) = %d, want %d", tc.field, got, tc.want)
		}
	}
}

func TestSignedY_Boundaries(t *testing.T) {
	cases := []struct {
		field int
		want  int
	}{
		{0x00, 0},
		{0x7F, 127},
		{0x81, -127},
		{0xFF, -1},
	}
	for _, tc := range cases {
		if got := SignedY(tc.field); got != tc.want {
			t.Fatalf("SignedY(%#X) = %d, want %d", tc.field, got, tc.want)
		}
	}
}

func TestFieldConversion_Inverse(t *testing.T) {
	for coord := MinXZ; coord <= MaxXZ; coord++ {
		if got := SignedXZ(FieldXZ(coord)); got != coord {
			t.Fatalf("X/Z conversion does not round-trip at %d: got %d", coord, got)
		}
	}
	for coord := MinY; coord <= MaxY; coord++ {
		if got := SignedY(FieldY(coord)); got != coord {
			t.Fatalf("Y conversion does not round-trip at %d: got %d", coord, got)
		}
	}
}

func TestFieldsCode(t *testing.T) {
	f := Fields{Planet: 1, SolarSystem: 0x0A4, Y: 0xF3, Z: 0xE7B, X: 0x2C1}
	if got := f.Code(); got != "10A4F3E7B2C1" {
		t.Fatalf("unexpected code: %s", got)
	}
}

func TestFieldsCode_ZeroPadded(t *testing.T) {
	f := Fields{Planet: 0, SolarSystem: 1, Y: 0xCE, Z: 0xB50, X: 0x1F4}
	if got := f.Code(); got != "0001CEB501F4" {
		t.Fatalf("unexpected code: %s", got)
	}
}

func TestIconFile(t *testing.T) {
	first, err := IconFile(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != "glyph-0-sunset.png" {
		t.Fatalf("unexpected icon for digit 0: %s", first)
	}
	last, err := IconFile(15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last != "glyph-f-atlas.png" {
		t.Fatalf("unexpected icon for digit 15: %s", last)
	}
}

func TestIconFile_OutOfRange(t *testing.T) {
	for _, digit := range []int{-1, 16} {
		if _, err := IconFile(digit); err == nil {
			t.Fatalf("expected error for digit %d", digit)
		}
	}
}
