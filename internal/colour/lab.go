package colour

import (
	"image"
	"math"
)

// Lab is a colour in the CIE L*a*b* space (D65 reference white).
// Euclidean distance in this space approximates perceived colour
// difference far better than raw display-channel differences, which is
// what makes it suitable for clustering album artwork.
type Lab struct {
	L float64
	A float64
	B float64
}

// D65 reference white in XYZ.
const (
	refX = 0.95047
	refY = 1.00000
	refZ = 1.08883
)

// Lab converts a display-space colour into CIE Lab. The conversion is
// deterministic: normalise each channel to [0,1], linearise the sRGB
// gamma, project into XYZ, then apply the standard Lab transform.
func (rgb RGB) Lab() Lab {
	r := srgbToLinear(float64(rgb.R) / 255.0)
	g := srgbToLinear(float64(rgb.G) / 255.0)
	b := srgbToLinear(float64(rgb.B) / 255.0)

	x := 0.4124564*r + 0.3575761*g + 0.1804375*b
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b
	z := 0.0193339*r + 0.1191920*g + 0.9503041*b

	fx := labF(x / refX)
	fy := labF(y / refY)
	fz := labF(z / refZ)

	return Lab{
		L: 116.0*fy - 16.0,
		A: 500.0 * (fx - fy),
		B: 200.0 * (fy - fz),
	}
}

// RGB converts a Lab colour back to display space, rounding each channel
// to the nearest representable 8-bit value and clamping out-of-gamut
// results.
func (lab Lab) RGB() RGB {
	fy := (lab.L + 16.0) / 116.0
	fx := fy + lab.A/500.0
	fz := fy - lab.B/200.0

	x := refX * labFInv(fx)
	y := refY * labFInv(fy)
	z := refZ * labFInv(fz)

	r := 3.2404542*x - 1.5371385*y - 0.4985314*z
	g := -0.9692660*x + 1.8760108*y + 0.0415560*z
	b := 0.0556434*x - 0.2040259*y + 1.0572252*z

	return RGB{
		R: clampChannel(linearToSRGB(r)),
		G: clampChannel(linearToSRGB(g)),
		B: clampChannel(linearToSRGB(b)),
	}
}

// Samples converts every pixel of a decoded image into a Lab sample,
// discarding the alpha channel. An empty image yields an empty slice.
func Samples(img image.Image) []Lab {
	bounds := img.Bounds()
	samples := make([]Lab, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			samples = append(samples, ToRGB(img.At(x, y)).Lab())
		}
	}
	return samples
}

// distanceSquared is the squared Euclidean distance between two Lab
// colours. Clustering only compares distances, so the square root is
// never taken.
func (lab Lab) distanceSquared(other Lab) float64 {
	dl := lab.L - other.L
	da := lab.A - other.A
	db := lab.B - other.B
	return dl*dl + da*da + db*db
}

func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

func labF(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3.0*delta*delta) + 4.0/29.0
}

func labFInv(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	return 3.0 * delta * delta * (t - 4.0/29.0)
}

func clampChannel(v float64) uint8 {
	scaled := math.Round(v * 255.0)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
