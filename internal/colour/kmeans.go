package colour

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Config holds the clustering parameters supplied by the CLI layer.
type Config struct {
	// Clusters is the number of centroids (k).
	Clusters int
	// MaxIterations bounds the refinement loop of a single run.
	MaxIterations int
	// Runs is the number of independent seeded attempts; the run with
	// the lowest score wins.
	Runs int
	// Convergence stops a run early once the total centroid movement
	// of an iteration falls below it.
	Convergence float64
	// Seed is the base seed; run i uses Seed + i.
	Seed int64
}

// Validate checks the clustering configuration. It is called once at
// pipeline construction so invalid parameters never reach a run.
func (c Config) Validate() error {
	if c.Clusters < 1 {
		return fmt.Errorf("cluster count must be at least 1, got %d", c.Clusters)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("max iterations must be at least 1, got %d", c.MaxIterations)
	}
	if c.Runs < 1 {
		return fmt.Errorf("run count must be at least 1, got %d", c.Runs)
	}
	if c.Convergence < 0 {
		return fmt.Errorf("convergence must not be negative, got %f", c.Convergence)
	}
	return nil
}

// RepresentativeColor is one dominant colour of an image together with
// the fraction of the image's pixels assigned to its cluster.
type RepresentativeColor struct {
	Color    RGB
	Coverage float64
}

// ClusterEngine reduces a set of Lab samples to representative colours
// using seeded k-means clustering.
type ClusterEngine struct {
	cfg Config
}

// NewClusterEngine creates a ClusterEngine, rejecting invalid
// configuration up front.
func NewClusterEngine(cfg Config) (*ClusterEngine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid clustering configuration: %w", err)
	}
	return &ClusterEngine{cfg: cfg}, nil
}

// clusterRun is the outcome of one seeded clustering attempt. Runs are
// only compared by score; lower is better.
type clusterRun struct {
	centroids []Lab
	counts    []int
	score     float64
}

// Dominant runs the configured number of clustering attempts over the
// samples and converts the best-scoring run into representative
// colours, ordered by descending coverage. Empty clusters are dropped,
// so the result may be shorter than the configured cluster count but is
// never longer. An empty sample slice yields an empty result.
func (e *ClusterEngine) Dominant(samples []Lab) []RepresentativeColor {
	if len(samples) == 0 {
		return nil
	}

	best := e.cluster(samples, e.cfg.Seed)
	for i := 1; i < e.cfg.Runs; i++ {
		run := e.cluster(samples, e.cfg.Seed+int64(i))
		if run.score < best.score {
			best = run
		}
	}

	total := float64(len(samples))
	colors := make([]RepresentativeColor, 0, len(best.centroids))
	for i, centroid := range best.centroids {
		if best.counts[i] == 0 {
			continue
		}
		colors = append(colors, RepresentativeColor{
			Color:    centroid.RGB(),
			Coverage: float64(best.counts[i]) / total,
		})
	}

	// Stable sort keeps first-encountered centroid order on ties.
	sort.SliceStable(colors, func(i, j int) bool {
		return colors[i].Coverage > colors[j].Coverage
	})
	return colors
}

// cluster performs one k-means attempt with a deterministic seed.
func (e *ClusterEngine) cluster(samples []Lab, seed int64) clusterRun {
	k := e.cfg.Clusters
	rng := rand.New(rand.NewSource(seed))

	centroids := initCentroids(rng, samples, k)
	assignments := make([]int, len(samples))

	for iter := 0; iter < e.cfg.MaxIterations; iter++ {
		for i, sample := range samples {
			assignments[i] = nearestCentroid(sample, centroids)
		}

		next := recalculateCentroids(samples, assignments, centroids)

		movement := 0.0
		for i := range centroids {
			movement += math.Sqrt(centroids[i].distanceSquared(next[i]))
		}
		centroids = next

		if movement < e.cfg.Convergence {
			break
		}
	}

	counts := make([]int, k)
	score := 0.0
	for i, sample := range samples {
		assignments[i] = nearestCentroid(sample, centroids)
		counts[assignments[i]]++
		score += sample.distanceSquared(centroids[assignments[i]])
	}

	return clusterRun{centroids: centroids, counts: counts, score: score}
}

// initCentroids seeds k centroids using the k-means++ scheme: the first
// centroid is a random sample, each further centroid is drawn with
// probability proportional to its squared distance from the nearest
// centroid chosen so far.
func initCentroids(rng *rand.Rand, samples []Lab, k int) []Lab {
	centroids := make([]Lab, 0, k)
	centroids = append(centroids, samples[rng.Intn(len(samples))])

	distances := make([]float64, len(samples))
	for len(centroids) < k {
		totalDistance := 0.0
		for i, sample := range samples {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				if d := sample.distanceSquared(centroid); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist
			totalDistance += minDist
		}

		if totalDistance == 0 {
			// Fewer distinct samples than clusters; the duplicate
			// centroids end up as empty clusters.
			centroids = append(centroids, samples[rng.Intn(len(samples))])
			continue
		}

		target := rng.Float64() * totalDistance
		cumulative := 0.0
		picked := len(samples) - 1
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				picked = i
				break
			}
		}
		centroids = append(centroids, samples[picked])
	}

	return centroids
}

// nearestCentroid returns the index of the centroid closest to the
// sample; ties keep the lowest index.
func nearestCentroid(sample Lab, centroids []Lab) int {
	nearest := 0
	minDist := math.MaxFloat64
	for i, centroid := range centroids {
		if d := sample.distanceSquared(centroid); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// recalculateCentroids moves each centroid to the mean of its assigned
// samples. A centroid with no samples keeps its previous position so a
// run stays deterministic and never divides by zero.
func recalculateCentroids(samples []Lab, assignments []int, previous []Lab) []Lab {
	k := len(previous)
	sums := make([]Lab, k)
	counts := make([]int, k)

	for i, sample := range samples {
		cluster := assignments[i]
		sums[cluster].L += sample.L
		sums[cluster].A += sample.A
		sums[cluster].B += sample.B
		counts[cluster]++
	}

	centroids := make([]Lab, k)
	for i := range centroids {
		if counts[i] == 0 {
			centroids[i] = previous[i]
			continue
		}
		n := float64(counts[i])
		centroids[i] = Lab{
			L: sums[i].L / n,
			A: sums[i].A / n,
			B: sums[i].B / n,
		}
	}
	return centroids
}
