package analysis

import (
	"math/rand"
	"reflect"
	"testing"
)

// Tres grupos bien separados en 2D.
func separatedPoints() [][]float64 {
	return [][]float64{
		{0, 0}, {0.1, 0}, {0, 0.1}, {0.1, 0.1},
		{10, 10}, {10.1, 10}, {10, 10.1}, {10.1, 10.1},
		{-10, 10}, {-10.1, 10}, {-10, 10.1}, {-10.1, 10.1},
	}
}

func TestRunKMeansRecoversSeparatedClusters(t *testing.T) {
	points := separatedPoints()
	run := runKMeans(points, 3, 10, rand.New(rand.NewSource(42)))

	// Los cuatro puntos de cada grupo deben compartir etiqueta.
	for g := 0; g < 3; g++ {
		label := run.labels[g*4]
		for i := g*4 + 1; i < g*4+4; i++ {
			if run.labels[i] != label {
				t.Fatalf("group %d split across clusters: %v", g, run.labels)
			}
		}
	}

	// Y los grupos deben quedar en clusters distintos.
	if run.labels[0] == run.labels[4] || run.labels[4] == run.labels[8] || run.labels[0] == run.labels[8] {
		t.Fatalf("expected three distinct clusters, got labels %v", run.labels)
	}
}

func TestRunKMeansDeterministicWithSeed(t *testing.T) {
	points := separatedPoints()

	a := runKMeans(points, 3, 10, rand.New(rand.NewSource(7)))
	b := runKMeans(points, 3, 10, rand.New(rand.NewSource(7)))

	if !reflect.DeepEqual(a.labels, b.labels) {
		t.Fatalf("labels differ across seeded runs: %v vs %v", a.labels, b.labels)
	}
	if !reflect.DeepEqual(a.centroids, b.centroids) {
		t.Fatalf("centroids differ across seeded runs")
	}
	if a.inertia != b.inertia {
		t.Fatalf("inertia differs across seeded runs: %v vs %v", a.inertia, b.inertia)
	}
}

func TestSilhouetteScorePrefersTrueK(t *testing.T) {
	points := separatedPoints()

	best := -2.0
	bestK := 0
	for k := 2; k <= 5; k++ {
		run := runKMeans(points, k, 10, rand.New(rand.NewSource(42)))
		score, ok := silhouetteScore(points, run.labels, k)
		if !ok {
			continue
		}
		if score > best {
			best = score
			bestK = k
		}
	}
	if bestK != 3 {
		t.Fatalf("expected silhouette to prefer k=3, got k=%d (score %v)", bestK, best)
	}
}

func TestSilhouetteScoreDegenerateCases(t *testing.T) {
	identical := [][]float64{{1, 1}, {1, 1}, {1, 1}, {1, 1}}
	labels := []int{0, 0, 1, 1}
	if _, ok := silhouetteScore(identical, labels, 2); ok {
		t.Fatalf("expected degenerate silhouette for identical points")
	}

	if _, ok := silhouetteScore([][]float64{{1}, {2}}, []int{0, 0}, 1); ok {
		t.Fatalf("expected degenerate silhouette for k=1")
	}
}
