package analysis

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"dialogue-personas/internal/domain"
)

// ArtifactVersion se incrementa cuando cambia el esquema del artefacto.
const ArtifactVersion = 1

// Pipeline encadena extraccion y clustering para producir el artefacto
// de personas. Corre offline, una sola vez por dataset.
type Pipeline struct {
	Extractor *Extractor
	Clusterer *Clusterer

	logger *zap.Logger
}

func NewPipeline(logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		Extractor: NewExtractor(logger),
		Clusterer: NewClusterer(logger),
		logger:    logger,
	}
}

// Run ejecuta el batch completo: registros crudos -> artefacto de personas.
// No escribe nada a disco; la persistencia atomica es del artifact store.
func (p *Pipeline) Run(records []domain.ParticipantRecord) (domain.Artifact, error) {
	feats, normParams, err := p.Extractor.Extract(records)
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("extract features: %w", err)
	}
	p.logger.Info("extracted features", zap.Int("participants", len(feats)))

	matrix := make([]domain.FeatureVector, len(feats))
	for i, f := range feats {
		matrix[i] = f.Features
	}

	result, err := p.Clusterer.Cluster(matrix)
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("cluster participants: %w", err)
	}

	personas := buildProfiles(matrix, result)

	return domain.Artifact{
		Version:           ArtifactVersion,
		CreatedAt:         time.Now().UTC(),
		K:                 result.K,
		Silhouette:        result.Silhouette,
		TotalParticipants: len(feats),
		Personas:          personas,
		Standardization:   result.Standardization,
		Normalization:     normParams,
		FeatureGlossary:   featureGlossary,
	}, nil
}

// buildProfiles arma un PersonaProfile por cluster: centroide estandarizado,
// participacion poblacional y medias crudas con nombre y descripcion.
func buildProfiles(matrix []domain.FeatureVector, result ClusterResult) []domain.PersonaProfile {
	total := len(matrix)
	personas := make([]domain.PersonaProfile, result.K)

	for clusterID := 0; clusterID < result.K; clusterID++ {
		var sums [domain.FeatureDims]float64
		size := 0
		for i, label := range result.Assignments {
			if label != clusterID {
				continue
			}
			size++
			vals := matrix[i].Values()
			for d, v := range vals {
				sums[d] += v
			}
		}

		var characteristics domain.FeatureVector
		if size > 0 {
			for d := range sums {
				sums[d] /= float64(size)
			}
			characteristics = domain.FeatureVectorFromValues(sums)
		}

		var centroid [domain.FeatureDims]float64
		copy(centroid[:], result.Centroids[clusterID])

		personas[clusterID] = domain.PersonaProfile{
			ID:              clusterID,
			Name:            personaName(clusterID),
			Size:            size,
			Share:           float64(size) / float64(total),
			Description:     describePersona(characteristics),
			Centroid:        centroid,
			Characteristics: characteristics,
		}
	}
	return personas
}
