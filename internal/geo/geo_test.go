package geo

import (
	"math"
	"testing"
)

func TestDistanceKmSymmetric(t *testing.T) {
	cases := [][4]float64{
		{40.6413, -73.7781, 33.9416, -118.4085}, // JFK -> LAX
		{51.4700, -0.4543, 1.3644, 103.9915},    // LHR -> SIN
		{-33.9399, 151.1753, 35.5494, 139.7798}, // SYD -> HND
	}

	for _, c := range cases {
		ab := DistanceKm(c[0], c[1], c[2], c[3])
		ba := DistanceKm(c[2], c[3], c[0], c[1])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("distance not symmetric: %f vs %f", ab, ba)
		}
	}
}

func TestDistanceKmIdenticalPoints(t *testing.T) {
	if d := DistanceKm(48.3538, 11.7861, 48.3538, 11.7861); d != 0 {
		t.Errorf("expected 0 for identical points, got %f", d)
	}
}

func TestDistanceKmKnownRoute(t *testing.T) {
	// JFK -> LAX is roughly 3,974 km great-circle.
	d := DistanceKm(40.6413, -73.7781, 33.9416, -118.4085)
	if d < 3900 || d > 4050 {
		t.Errorf("JFK-LAX distance out of range: %f", d)
	}
}

func TestDistanceKmTriangleInequality(t *testing.T) {
	// JFK -> ORD -> LAX must not be shorter than JFK -> LAX.
	jfkLax := DistanceKm(40.6413, -73.7781, 33.9416, -118.4085)
	jfkOrd := DistanceKm(40.6413, -73.7781, 41.9742, -87.9073)
	ordLax := DistanceKm(41.9742, -87.9073, 33.9416, -118.4085)
	if jfkOrd+ordLax < jfkLax-1e-9 {
		t.Errorf("triangle inequality violated: %f + %f < %f", jfkOrd, ordLax, jfkLax)
	}
}

func TestInitialBearingDegRange(t *testing.T) {
	coords := [][4]float64{
		{0, 0, 0, 10},
		{0, 0, 0, -10},
		{10, 20, -30, -40},
		{89, 0, -89, 180},
		{-45, 170, 45, -170},
	}

	for _, c := range coords {
		b := InitialBearingDeg(c[0], c[1], c[2], c[3])
		if b < 0 || b >= 360 {
			t.Errorf("bearing %f out of [0,360) for %v", b, c)
		}
	}
}

func TestInitialBearingDegCardinal(t *testing.T) {
	// Due east along the equator.
	if b := InitialBearingDeg(0, 0, 0, 10); math.Abs(b-90) > 1e-6 {
		t.Errorf("expected 90, got %f", b)
	}
	// Due west along the equator.
	if b := InitialBearingDeg(0, 10, 0, 0); math.Abs(b-270) > 1e-6 {
		t.Errorf("expected 270, got %f", b)
	}
	// Due north.
	if b := InitialBearingDeg(0, 0, 10, 0); math.Abs(b) > 1e-6 {
		t.Errorf("expected 0, got %f", b)
	}
}
