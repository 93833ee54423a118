package extract

import (
	"math"

	"github.com/xlc-dev/chromatic/internal/colorutil"
)

const (
	DefaultMaxIterations = 20

	// convergenceDistance is how far a centroid may still move in an
	// iteration that counts as settled.
	convergenceDistance = 1.0
)

// Source supplies the one random choice clustering makes. *rand.Rand
// satisfies it.
type Source interface {
	Intn(n int) int
}

// FixedSource always picks the same index, clamped to the input size.
type FixedSource int

func (f FixedSource) Intn(n int) int {
	if int(f) < 0 {
		return 0
	}
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

// Cluster partitions pixels into k representative colors with Lloyd's
// algorithm seeded by farthest-point selection. Centroids come back in
// seed order.
func Cluster(pixels []colorutil.RGB, k, maxIterations int, src Source) []colorutil.RGB {
	if len(pixels) == 0 || k <= 0 {
		return nil
	}
	if k >= len(pixels) {
		out := make([]colorutil.RGB, len(pixels))
		copy(out, pixels)
		return out
	}
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	if src == nil {
		src = FixedSource(0)
	}

	centroids := seedCentroids(pixels, k, src)
	assignment := make([]int, len(pixels))

	for iter := 0; iter < maxIterations; iter++ {
		assign(pixels, centroids, assignment)
		if update(pixels, centroids, assignment) {
			break
		}
	}

	return centroids
}

func seedCentroids(pixels []colorutil.RGB, k int, src Source) []colorutil.RGB {
	centroids := make([]colorutil.RGB, 0, k)
	centroids = append(centroids, pixels[src.Intn(len(pixels))])

	// minDist[i] tracks the distance from pixel i to its closest centroid so
	// far, so each new seed costs one pass over the pixels.
	minDist := make([]float64, len(pixels))
	for i, p := range pixels {
		minDist[i] = colorutil.Distance(p, centroids[0])
	}

	for len(centroids) < k {
		maxDist := 0.0
		farthest := 0
		for i, d := range minDist {
			if d > maxDist {
				maxDist = d
				farthest = i
			}
		}

		next := pixels[farthest]
		centroids = append(centroids, next)
		for i, p := range pixels {
			if d := colorutil.Distance(p, next); d < minDist[i] {
				minDist[i] = d
			}
		}
	}

	return centroids
}

func assign(pixels, centroids []colorutil.RGB, assignment []int) {
	for i, p := range pixels {
		best := 0
		bestDist := math.Inf(1)
		for j, c := range centroids {
			if d := colorutil.Distance(p, c); d < bestDist {
				bestDist = d
				best = j
			}
		}
		assignment[i] = best
	}
}

// update moves each non-empty cluster to the rounded mean of its members and
// reports whether every centroid stayed within convergenceDistance.
func update(pixels, centroids []colorutil.RGB, assignment []int) bool {
	type sum struct {
		r, g, b, n int
	}
	sums := make([]sum, len(centroids))
	for i, p := range pixels {
		s := &sums[assignment[i]]
		s.r += int(p.R)
		s.g += int(p.G)
		s.b += int(p.B)
		s.n++
	}

	converged := true
	for j, s := range sums {
		if s.n == 0 {
			continue
		}
		next := colorutil.RGB{
			R: roundMean(s.r, s.n),
			G: roundMean(s.g, s.n),
			B: roundMean(s.b, s.n),
		}
		if colorutil.Distance(next, centroids[j]) > convergenceDistance {
			converged = false
		}
		centroids[j] = next
	}
	return converged
}

func roundMean(total, n int) uint8 {
	return uint8(math.Round(float64(total) / float64(n)))
}
