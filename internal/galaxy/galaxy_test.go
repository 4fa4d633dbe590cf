package galaxy

import "testing"

func TestInCoreVoid(t *testing.T) {
	geo := New(DefaultConfig())

	if !geo.InCoreVoid(0, 0, 0) {
		t.Fatalf("origin must be inside the core void")
	}
	if geo.InCoreVoid(2047, 127, 2047) {
		t.Fatalf("galaxy edge must be outside the core void")
	}
	// Boundary points are outside: the test is strictly less-than.
	if geo.InCoreVoid(8, 0, 0) {
		t.Fatalf("(8, 0, 0) sits on the ellipsoid boundary and is outside")
	}
	if geo.InCoreVoid(0, 1, 0) {
		t.Fatalf("(0, 1, 0) sits on the ellipsoid boundary and is outside")
	}
	if !geo.InCoreVoid(7, 0, 0) {
		t.Fatalf("(7, 0, 0) is inside the void")
	}
}

func TestInCoreVoid_Disabled(t *testing.T) {
	geo := New(Config{CoreVoidEnabled: false, ZeroPhantomRule: true})
	if geo.InCoreVoid(0, 0, 0) {
		t.Fatalf("disabled core void must report false everywhere")
	}
}

func TestPhantomStar(t *testing.T) {
	geo := New(DefaultConfig())
	cases := []struct {
		system int
		want   bool
	}{
		{0, true},       // zero index is phantom under the default rule
		{1, false},
		{0x257, false},  // 599, last index below the threshold
		{0x258, true},   // 600, first phantom index
		{0x3E8, false},  // 1000, documented exception overriding the threshold
		{0x3E7, true},
		{0x3E9, true},
		{4095, true},
	}
	for _, tc := range cases {
		if got := geo.PhantomStar(tc.system); got != tc.want {
			t.Fatalf("PhantomStar(%#X) = %t, want %t", tc.system, got, tc.want)
		}
	}
}

func TestPhantomStar_ZeroRuleDisabled(t *testing.T) {
	geo := New(Config{CoreVoidEnabled: true, ZeroPhantomRule: false})
	if geo.PhantomStar(0) {
		t.Fatalf("index 0 must not be phantom with the zero rule disabled")
	}
	if !geo.PhantomStar(0x258) {
		t.Fatalf("threshold rule must still apply")
	}
	if geo.PhantomStar(0x3E8) {
		t.Fatalf("the 0x3E8 exception is unconditional")
	}
}

func TestClassify(t *testing.T) {
	geo := New(DefaultConfig())
	cases := []struct {
		name       string
		x, y, z    int
		system     int
		want       Class
		accessible bool
	}{
		{"accessible", 705, -13, -389, 164, ClassAccessible, true},
		{"phantom", 700, 100, 700, 700, ClassPhantom, false},
		{"core anomaly", 0, 0, 0, 100, ClassCoreAnomaly, false},
		{"core phantom", 0, 0, 0, 700, ClassCorePhantom, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := geo.Classify(tc.x, tc.y, tc.z, tc.system)
			if got.Class != tc.want {
				t.Fatalf("unexpected class: %s", got.Class)
			}
			if got.IsAccessible != tc.accessible {
				t.Fatalf("unexpected accessibility: %+v", got)
			}
			if got.IsAccessible && (got.IsPhantom || got.IsInCore) {
				t.Fatalf("inconsistent flags: %+v", got)
			}
		})
	}
}

func TestClassify_IndependentGeometries(t *testing.T) {
	// Two geometries with different settings coexist; neither mutates
	// shared state.
	strict := New(DefaultConfig())
	lax := New(Config{CoreVoidEnabled: false, ZeroPhantomRule: false})

	if !strict.Classify(0, 0, 0, 100).IsInCore {
		t.Fatalf("strict geometry must flag the origin")
	}
	if got := lax.Classify(0, 0, 0, 100); !got.IsAccessible {
		t.Fatalf("lax geometry must not flag the origin: %+v", got)
	}
	if !strict.Classify(0, 0, 0, 100).IsInCore {
		t.Fatalf("strict geometry changed after lax evaluation")
	}
}
