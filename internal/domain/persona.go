package domain

import "time"

// PersonaProfile describe un arquetipo derivado del clustering.
// El centroide vive en el espacio estandarizado; Characteristics son
// las medias crudas del cluster, utiles para descripcion y analytics.
type PersonaProfile struct {
	ID              int                  `json:"id"`
	Name            string               `json:"name"`
	Size            int                  `json:"size"`
	Share           float64              `json:"share"`
	Description     string               `json:"description"`
	Centroid        [FeatureDims]float64 `json:"centroid"`
	Characteristics FeatureVector        `json:"characteristics"`
}

// Artifact es la salida congelada del pipeline, consumida en runtime
// como tabla de lectura inmutable durante la vida del proceso.
type Artifact struct {
	Version           int                 `json:"version"`
	CreatedAt         time.Time           `json:"created_at"`
	K                 int                 `json:"k"`
	Silhouette        float64             `json:"silhouette"`
	TotalParticipants int                 `json:"total_participants"`
	Personas          []PersonaProfile    `json:"personas"`
	Standardization   Standardization     `json:"standardization"`
	Normalization     NormalizationParams `json:"normalization"`
	FeatureGlossary   map[string]string   `json:"feature_glossary,omitempty"`
}
