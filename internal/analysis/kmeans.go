package analysis

import (
	"math"
	"math/rand"
)

const kmeansMaxIterations = 100

type kmeansRun struct {
	centroids [][]float64
	labels    []int
	inertia   float64
}

// runKMeans ejecuta Lloyd con inicializacion k-means++ y varios reinicios,
// quedandose con la corrida de menor inercia. Con el mismo rng la salida
// es identica entre ejecuciones.
func runKMeans(points [][]float64, k, restarts int, rng *rand.Rand) kmeansRun {
	if restarts < 1 {
		restarts = 1
	}
	best := kmeansRun{inertia: math.Inf(1)}
	for r := 0; r < restarts; r++ {
		run := lloyd(points, k, rng)
		if run.inertia < best.inertia {
			best = run
		}
	}
	return best
}

func lloyd(points [][]float64, k int, rng *rand.Rand) kmeansRun {
	centroids := kmeansPlusPlusInit(points, k, rng)
	labels := make([]int, len(points))

	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := false
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if labels[i] != nearest {
				labels[i] = nearest
				changed = true
			}
		}
		if iter > 0 && !changed {
			break
		}

		dims := len(points[0])
		sums := make([][]float64, k)
		counts := make([]int, k)
		for c := range sums {
			sums[c] = make([]float64, dims)
		}
		for i, p := range points {
			c := labels[i]
			counts[c]++
			for d, v := range p {
				sums[c][d] += v
			}
		}
		for c := range centroids {
			if counts[c] == 0 {
				// Cluster vacio: se re-siembra con el punto mas lejano de su centroide.
				centroids[c] = append([]float64(nil), farthestPoint(points, labels, centroids)...)
				continue
			}
			for d := range sums[c] {
				sums[c][d] /= float64(counts[c])
			}
			centroids[c] = sums[c]
		}
	}

	var inertia float64
	for i, p := range points {
		inertia += squaredDistance(p, centroids[labels[i]])
	}
	return kmeansRun{centroids: centroids, labels: labels, inertia: inertia}
}

// kmeansPlusPlusInit elige semillas proporcionales a la distancia cuadrada
// al centroide ya elegido mas cercano.
func kmeansPlusPlusInit(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	first := points[rng.Intn(len(points))]
	centroids = append(centroids, append([]float64(nil), first...))

	dists := make([]float64, len(points))
	for len(centroids) < k {
		var total float64
		for i, p := range points {
			dists[i] = squaredDistance(p, centroids[nearestCentroid(p, centroids)])
			total += dists[i]
		}
		if total == 0 {
			// Puntos restantes identicos a los centroides: elige al azar.
			next := points[rng.Intn(len(points))]
			centroids = append(centroids, append([]float64(nil), next...))
			continue
		}
		target := rng.Float64() * total
		idx := len(points) - 1
		var acc float64
		for i, d := range dists {
			acc += d
			if acc >= target {
				idx = i
				break
			}
		}
		centroids = append(centroids, append([]float64(nil), points[idx]...))
	}
	return centroids
}

func nearestCentroid(p []float64, centroids [][]float64) int {
	best := 0
	bestDist := math.Inf(1)
	for c, centroid := range centroids {
		if d := squaredDistance(p, centroid); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

func farthestPoint(points [][]float64, labels []int, centroids [][]float64) []float64 {
	bestIdx := 0
	bestDist := -1.0
	for i, p := range points {
		if d := squaredDistance(p, centroids[labels[i]]); d > bestDist {
			bestDist = d
			bestIdx = i
		}
	}
	return points[bestIdx]
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}

func euclideanDistance(a, b []float64) float64 {
	return math.Sqrt(squaredDistance(a, b))
}
