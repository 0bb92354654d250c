package colour

import (
	"image"
	"math"
	"math/rand"
	"sort"
)

// DominantOptions controls dominant-colour extraction from an image.
type DominantOptions struct {
	// MaxColours caps the number of clusters. When 0, a cap is derived
	// from the sampled pixel count.
	MaxColours int

	// MergeTolerance is the minimum normalised distance (0..1) between two
	// cluster colours. Clusters closer than this are merged into the more
	// dominant one.
	MergeTolerance float64

	// ExcludeExtremes drops near-black and near-white pixels before
	// clustering.
	ExcludeExtremes bool
}

// DefaultDominantOptions returns the extraction parameters used for
// wallpaper swatches.
func DefaultDominantOptions() DominantOptions {
	return DominantOptions{
		MaxColours:      0,
		MergeTolerance:  0.001,
		ExcludeExtremes: false,
	}
}

// Dominant extracts the most representative colours from an image, most
// dominant first. The result is deduplicated by exact value equality.
// Extraction is deterministic: the same image and options always produce
// the same colours in the same order.
func Dominant(img image.Image, opts DominantOptions) []RGB {
	if img == nil {
		return nil
	}

	pixels := samplePixels(img)
	if opts.ExcludeExtremes {
		pixels = dropExtremes(pixels)
	}
	if len(pixels) == 0 {
		return nil
	}

	k := opts.MaxColours
	if k <= 0 {
		k = coloursForArea(len(pixels))
	}

	e := &dominantExtractor{
		maxIterations: 20,
		convergence:   2.0,
		// Fixed seed keeps extraction deterministic for identical inputs.
		rng: rand.New(rand.NewSource(1)),
	}

	unique := uniquePixels(pixels)
	var result []point3D
	var weights []float64
	if k >= len(unique) {
		result = unique
		weights = nil
	} else {
		result, weights = e.kmeans(pixels, k)
		sortByWeight(result, weights)
	}

	merged := mergeSimilar(result, opts.MergeTolerance)

	out := make([]RGB, 0, len(merged))
	seen := make(map[RGB]struct{}, len(merged))
	for _, p := range merged {
		c := p.rgb()
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// coloursForArea derives a cluster cap from the number of sampled pixels.
func coloursForArea(pixels int) int {
	k := pixels / 1024
	if k < 4 {
		return 4
	}
	if k > 16 {
		return 16
	}
	return k
}

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	R, G, B float64
}

// distance calculates the Euclidean distance between two points.
func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// normalisedDistance maps the channel-space distance into [0, 1].
func (p point3D) normalisedDistance(other point3D) float64 {
	return p.distance(other) / (255.0 * math.Sqrt(3))
}

func (p point3D) rgb() RGB {
	return RGB{
		R: uint8(math.Round(clampChannel(p.R))),
		G: uint8(math.Round(clampChannel(p.G))),
		B: uint8(math.Round(clampChannel(p.B))),
	}
}

func clampChannel(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// samplePixels flattens the image into RGB points, dropping alpha. Large
// images are grid-sampled to bound the clustering cost.
func samplePixels(img image.Image) []point3D {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	totalPixels := width * height

	const maxSamples = 20000

	step := 1
	if totalPixels > maxSamples {
		step = max(int(math.Sqrt(float64(totalPixels)/float64(maxSamples))), 1)
	}

	pixels := make([]point3D, 0, min(totalPixels, maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels = append(pixels, point3D{
				R: float64(r >> 8),
				G: float64(g >> 8),
				B: float64(b >> 8),
			})
		}
	}
	return pixels
}

// dropExtremes filters out near-black and near-white pixels.
func dropExtremes(pixels []point3D) []point3D {
	const low, high = 10.0, 245.0
	out := make([]point3D, 0, len(pixels))
	for _, p := range pixels {
		if p.R < low && p.G < low && p.B < low {
			continue
		}
		if p.R > high && p.G > high && p.B > high {
			continue
		}
		out = append(out, p)
	}
	return out
}

// uniquePixels returns the distinct pixel values in first-seen order.
func uniquePixels(pixels []point3D) []point3D {
	seen := make(map[RGB]struct{}, len(pixels))
	out := make([]point3D, 0, len(pixels))
	for _, p := range pixels {
		c := p.rgb()
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, p)
	}
	return out
}

// sortByWeight orders centroids most dominant first. Ties break on channel
// values so the order stays stable across runs.
func sortByWeight(centroids []point3D, weights []float64) {
	idx := make([]int, len(centroids))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if weights[idx[a]] != weights[idx[b]] {
			return weights[idx[a]] > weights[idx[b]]
		}
		ca, cb := centroids[idx[a]], centroids[idx[b]]
		if ca.R != cb.R {
			return ca.R < cb.R
		}
		if ca.G != cb.G {
			return ca.G < cb.G
		}
		return ca.B < cb.B
	})
	sorted := make([]point3D, len(centroids))
	for i, j := range idx {
		sorted[i] = centroids[j]
	}
	copy(centroids, sorted)
}

// mergeSimilar drops any colour whose normalised distance to an earlier,
// more dominant colour is below tolerance.
func mergeSimilar(colours []point3D, tolerance float64) []point3D {
	if tolerance <= 0 {
		return colours
	}
	out := make([]point3D, 0, len(colours))
	for _, c := range colours {
		tooClose := false
		for _, kept := range out {
			if c.normalisedDistance(kept) < tolerance {
				tooClose = true
				break
			}
		}
		if !tooClose {
			out = append(out, c)
		}
	}
	return out
}

// dominantExtractor implements colour clustering using k-means.
type dominantExtractor struct {
	maxIterations int
	convergence   float64
	rng           *rand.Rand
}

// kmeans performs k-means clustering on the pixel data.
// Returns centroids and their weights (relative cluster sizes).
func (e *dominantExtractor) kmeans(points []point3D, k int) ([]point3D, []float64) {
	centroids := e.initializeCentroids(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < e.maxIterations; iter++ {
		changed := 0
		for i, point := range points {
			nearest := nearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// If very few assignments changed (< 1%), we've converged.
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		newCentroids := e.recalculateCentroids(points, assignments, k)

		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].distance(newCentroids[i])
		}
		centroids = newCentroids

		if totalMovement/float64(k) < e.convergence {
			break
		}
	}

	weights := make([]float64, k)
	for _, assignment := range assignments {
		weights[assignment]++
	}
	total := float64(len(assignments))
	for i := range weights {
		weights[i] /= total
	}

	return centroids, weights
}

// initializeCentroids seeds the clusters using k-means++ selection.
func (e *dominantExtractor) initializeCentroids(points []point3D, k int) []point3D {
	if len(points) == 0 || k == 0 {
		return []point3D{}
	}

	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[e.rng.Intn(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		totalDistance := 0.0

		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				if dist := point.distance(centroid); dist < minDist {
					minDist = dist
				}
			}
			distances[i] = minDist * minDist
			totalDistance += distances[i]
		}

		if totalDistance == 0 {
			// All remaining points coincide with existing centroids.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := e.rng.Float64() * totalDistance
		cumulative := 0.0
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

// nearestCentroid finds the index of the nearest centroid to a point.
func nearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, centroid := range centroids {
		if dist := point.distance(centroid); dist < minDist {
			minDist = dist
			nearest = i
		}
	}
	return nearest
}

// recalculateCentroids recalculates centroid positions from assignments.
func (e *dominantExtractor) recalculateCentroids(points []point3D, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)

	for i, point := range points {
		cluster := assignments[i]
		sums[cluster].R += point.R
		sums[cluster].G += point.G
		sums[cluster].B += point.B
		counts[cluster]++
	}

	centroids := make([]point3D, k)
	for i := 0; i < k; i++ {
		if counts[i] > 0 {
			centroids[i] = point3D{
				R: sums[i].R / float64(counts[i]),
				G: sums[i].G / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
		} else {
			// Empty cluster, reseed from the data.
			centroids[i] = points[e.rng.Intn(len(points))]
		}
	}

	return centroids
}
