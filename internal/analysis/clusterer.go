package analysis

import (
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"

	"dialogue-personas/internal/domain"
)

// Clusterer estandariza la matriz de rasgos, elige k por silueta y corre
// k-means con semilla fija. Es el unico escritor de centroides.
type Clusterer struct {
	MinK     int
	MaxK     int
	DefaultK int
	Restarts int
	Seed     int64

	logger *zap.Logger
}

func NewClusterer(logger *zap.Logger) *Clusterer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Clusterer{
		MinK:     2,
		MaxK:     8,
		DefaultK: 5,
		Restarts: 10,
		Seed:     42,
		logger:   logger,
	}
}

// ClusterResult agrupa la salida del clustering para construir perfiles.
// Assignments es diagnostico: no se persiste mas alla de la corrida.
type ClusterResult struct {
	K               int
	Silhouette      float64
	Assignments     []int
	Centroids       [][]float64
	Standardization domain.Standardization
}

// Cluster corre la seleccion de k y el k-means final sobre los rasgos.
// k es una eleccion derivada, nunca un 5 cableado: el empate se rompe
// hacia el k mas chico y la degeneracion cae al DefaultK configurado.
func (c *Clusterer) Cluster(features []domain.FeatureVector) (ClusterResult, error) {
	n := len(features)
	if n == 0 {
		return ClusterResult{}, fmt.Errorf("cluster: empty feature matrix")
	}

	std, points := standardize(features)
	distinct := countDistinctPoints(points)
	if distinct < c.MinK {
		return ClusterResult{}, fmt.Errorf("cluster: need at least %d distinct participants, got %d", c.MinK, distinct)
	}

	maxK := c.MaxK
	if distinct < maxK {
		maxK = distinct
	}
	if n-1 < maxK {
		maxK = n - 1
	}

	bestK := 0
	bestScore := math.Inf(-1)
	var bestRun kmeansRun
	for k := c.MinK; k <= maxK; k++ {
		rng := rand.New(rand.NewSource(c.Seed + int64(k)))
		run := runKMeans(points, k, c.Restarts, rng)
		score, ok := silhouetteScore(points, run.labels, k)
		if !ok {
			c.logger.Warn("silhouette degenerate for candidate k", zap.Int("k", k))
			continue
		}
		c.logger.Info("evaluated cluster count", zap.Int("k", k), zap.Float64("silhouette", score))
		if score > bestScore {
			bestScore = score
			bestK = k
			bestRun = run
		}
	}

	if bestK == 0 {
		// Ningun k produjo una silueta valida: caida determinista al DefaultK.
		if distinct < c.DefaultK {
			return ClusterResult{}, fmt.Errorf("cluster: silhouette degenerate and only %d distinct participants for fallback k=%d", distinct, c.DefaultK)
		}
		c.logger.Warn("silhouette selection degenerate, falling back to default k", zap.Int("k", c.DefaultK))
		bestK = c.DefaultK
		bestScore = 0
		bestRun = runKMeans(points, bestK, c.Restarts, rand.New(rand.NewSource(c.Seed+int64(bestK))))
	}

	c.logger.Info("selected cluster count", zap.Int("k", bestK), zap.Float64("silhouette", bestScore))

	return ClusterResult{
		K:               bestK,
		Silhouette:      bestScore,
		Assignments:     bestRun.labels,
		Centroids:       bestRun.centroids,
		Standardization: std,
	}, nil
}

// standardize ajusta media y desviacion poblacional por dimension y
// proyecta la matriz. Dimensiones constantes registran std=1 para que
// la proyeccion sea la identidad centrada.
func standardize(features []domain.FeatureVector) (domain.Standardization, [][]float64) {
	n := float64(len(features))
	var std domain.Standardization

	for _, f := range features {
		vals := f.Values()
		for d, v := range vals {
			std.Means[d] += v
		}
	}
	for d := range std.Means {
		std.Means[d] /= n
	}

	for _, f := range features {
		vals := f.Values()
		for d, v := range vals {
			diff := v - std.Means[d]
			std.Stds[d] += diff * diff
		}
	}
	for d := range std.Stds {
		std.Stds[d] = math.Sqrt(std.Stds[d] / n)
		if std.Stds[d] == 0 {
			std.Stds[d] = 1
		}
	}

	points := make([][]float64, len(features))
	for i, f := range features {
		projected := std.Apply(f)
		points[i] = projected[:]
	}
	return std, points
}

func countDistinctPoints(points [][]float64) int {
	distinct := 0
	for i, p := range points {
		dup := false
		for j := 0; j < i; j++ {
			if equalPoints(p, points[j]) {
				dup = true
				break
			}
		}
		if !dup {
			distinct++
		}
	}
	return distinct
}

func equalPoints(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
