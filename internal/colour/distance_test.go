package colour

import (
	"math"
	"math/rand"
	"testing"
)

func TestDistanceIdentity(t *testing.T) {
	colors := []RGB{
		{},
		{R: 255, G: 255, B: 255},
		{R: 255},
		{R: 12, G: 90, B: 200},
	}
	for _, c := range colors {
		if got := Distance(c, c); got != 0 {
			t.Errorf("Distance(%v, %v) = %f, want 0", c, c, got)
		}
	}
}

func TestDistanceKnownValues(t *testing.T) {
	tests := []struct {
		name string
		a, b RGB
		want float64
	}{
		{
			name: "black to white is maximal",
			a:    RGB{},
			b:    RGB{R: 255, G: 255, B: 255},
			want: 1.0,
		},
		{
			name: "red to blue",
			a:    RGB{R: 255},
			b:    RGB{B: 255},
			want: math.Sqrt(2.0 / 3.0),
		},
		{
			name: "single full channel",
			a:    RGB{},
			b:    RGB{R: 255},
			want: math.Sqrt(1.0 / 3.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistanceSymmetricAndBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a := RGB{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256))}
		b := RGB{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256))}

		ab := Distance(a, b)
		ba := Distance(b, a)
		if ab != ba {
			t.Fatalf("Distance(%v, %v) = %v but Distance(%v, %v) = %v", a, b, ab, b, a, ba)
		}
		if ab < 0 || ab > 1 {
			t.Fatalf("Distance(%v, %v) = %v out of [0, 1]", a, b, ab)
		}
	}
}
