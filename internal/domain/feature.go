package domain

// FeatureDims es la dimension fija del espacio de rasgos conductuales.
const FeatureDims = 6

const (
	FeatureConsensusAlignment = "consensus_alignment"
	FeatureParticipationLevel = "participation_level"
	FeatureAvgSentiment       = "avg_sentiment"
	FeatureAvgTextLength      = "avg_text_length"
	FeatureVoteConsistency    = "vote_consistency"
	FeatureEngagementDepth    = "engagement_depth"
)

// FeatureNames lista las dimensiones en el orden canonico del vector.
var FeatureNames = [FeatureDims]string{
	FeatureConsensusAlignment,
	FeatureParticipationLevel,
	FeatureAvgSentiment,
	FeatureAvgTextLength,
	FeatureVoteConsistency,
	FeatureEngagementDepth,
}

// FeatureVector agrupa los 6 rasgos conductuales de un participante.
// Todos los campos deben ser finitos; las razones 0/0 se definen como 0.
type FeatureVector struct {
	ConsensusAlignment float64 `json:"consensus_alignment"`
	ParticipationLevel float64 `json:"participation_level"`
	AvgSentiment       float64 `json:"avg_sentiment"`
	AvgTextLength      float64 `json:"avg_text_length"`
	VoteConsistency    float64 `json:"vote_consistency"`
	EngagementDepth    float64 `json:"engagement_depth"`
}

// Values devuelve el vector en el orden canonico de FeatureNames.
func (f FeatureVector) Values() [FeatureDims]float64 {
	return [FeatureDims]float64{
		f.ConsensusAlignment,
		f.ParticipationLevel,
		f.AvgSentiment,
		f.AvgTextLength,
		f.VoteConsistency,
		f.EngagementDepth,
	}
}

// Float32s devuelve el vector como slice float32 para columnas pgvector.
func (f FeatureVector) Float32s() []float32 {
	vals := f.Values()
	out := make([]float32, FeatureDims)
	for i, v := range vals {
		out[i] = float32(v)
	}
	return out
}

// FeatureVectorFromValues reconstruye un FeatureVector desde el orden canonico.
func FeatureVectorFromValues(vals [FeatureDims]float64) FeatureVector {
	return FeatureVector{
		ConsensusAlignment: vals[0],
		ParticipationLevel: vals[1],
		AvgSentiment:       vals[2],
		AvgTextLength:      vals[3],
		VoteConsistency:    vals[4],
		EngagementDepth:    vals[5],
	}
}

// NormalizationParams guarda las escalas poblacionales usadas por el extractor.
// Se versionan junto al artefacto: si cambian, los centroides deben recalcularse.
type NormalizationParams struct {
	ParticipationScale float64 `json:"participation_scale"`
	TextLengthScale    float64 `json:"text_length_scale"`
}

// Standardization guarda media y desviacion estandar por dimension,
// ajustadas una sola vez sobre la poblacion de entrenamiento.
type Standardization struct {
	Means [FeatureDims]float64 `json:"means"`
	Stds  [FeatureDims]float64 `json:"stds"`
}

// Apply proyecta un vector crudo al espacio estandarizado de los centroides.
func (s Standardization) Apply(f FeatureVector) [FeatureDims]float64 {
	vals := f.Values()
	var out [FeatureDims]float64
	for i := range vals {
		std := s.Stds[i]
		if std == 0 {
			std = 1
		}
		out[i] = (vals[i] - s.Means[i]) / std
	}
	return out
}
