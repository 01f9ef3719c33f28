package analysis

import "math"

// silhouetteScore calcula el score de silueta medio sobre la asignacion.
// Devuelve ok=false cuando el calculo es degenerado: menos de dos clusters
// poblados, o todos los puntos identicos (ninguna silueta definida).
func silhouetteScore(points [][]float64, labels []int, k int) (float64, bool) {
	n := len(points)
	if k < 2 || n <= k {
		return 0, false
	}

	sizes := make([]int, k)
	for _, l := range labels {
		sizes[l]++
	}
	populated := 0
	for _, s := range sizes {
		if s > 0 {
			populated++
		}
	}
	if populated < 2 {
		return 0, false
	}

	var total float64
	defined := false
	for i, p := range points {
		// Distancia media a cada cluster.
		sums := make([]float64, k)
		for j, q := range points {
			if i == j {
				continue
			}
			sums[labels[j]] += euclideanDistance(p, q)
		}

		own := labels[i]
		if sizes[own] == 1 {
			// Silueta de un singleton se define como 0.
			continue
		}
		a := sums[own] / float64(sizes[own]-1)

		b := math.Inf(1)
		for c := 0; c < k; c++ {
			if c == own || sizes[c] == 0 {
				continue
			}
			if mean := sums[c] / float64(sizes[c]); mean < b {
				b = mean
			}
		}

		denom := math.Max(a, b)
		if denom == 0 {
			continue
		}
		total += (b - a) / denom
		defined = true
	}

	if !defined {
		return 0, false
	}
	return total / float64(n), true
}
