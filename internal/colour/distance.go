package colour

import "math"

// maxNorm is the largest possible Euclidean norm of three normalised
// channel differences, reached between black and white.
var maxNorm = math.Sqrt(3.0)

// Distance computes a normalised perceptual distance between two
// display-space colours. Each channel is scaled to [0,1] before
// differencing; the Euclidean norm of the three differences is divided
// by √3 so the result lies in [0,1]. The function is pure and
// symmetric, and Distance(a, a) == 0.
func Distance(a, b RGB) float64 {
	dr := channelDiff(a.R, b.R)
	dg := channelDiff(a.G, b.G)
	db := channelDiff(a.B, b.B)
	return math.Sqrt(dr*dr+dg*dg+db*db) / maxNorm
}

func channelDiff(a, b uint8) float64 {
	return float64(a)/255.0 - float64(b)/255.0
}
