package analysis

import (
	"errors"
	"math"
	"strings"

	"go.uber.org/zap"

	"dialogue-personas/internal/domain"
)

// ErrNoParticipants se devuelve cuando ningun registro valido sobrevive la extraccion.
var ErrNoParticipants = errors.New("no valid participant records")

// ParticipantFeatures asocia un participante con su vector de rasgos.
// El orden de salida sigue el orden de entrada para que el pipeline sea determinista.
type ParticipantFeatures struct {
	ParticipantID string
	Features      domain.FeatureVector
}

// Extractor transforma registros crudos al espacio de rasgos de 6 dimensiones.
// Es dueno de las constantes de normalizacion: se calculan una sola vez sobre
// la poblacion completa y se reutilizan para cualquier vector posterior.
type Extractor struct {
	logger *zap.Logger
}

func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// aggregates acumula los estadisticos crudos de un participante antes de escalar.
type aggregates struct {
	participantID string
	agreeVotes    int
	totalVotes    int
	contributions int
	sentimentSum  float64
	sentimentN    int
	wordSum       float64
	wordN         int
}

// Extract calcula un FeatureVector por participante mas los parametros de
// normalizacion poblacionales. Registros malformados se omiten con warning;
// un participante repetido en varias rondas se agrega sobre la misma entrada.
func (e *Extractor) Extract(records []domain.ParticipantRecord) ([]ParticipantFeatures, domain.NormalizationParams, error) {
	byID := make(map[string]*aggregates)
	var order []string

	for _, rec := range records {
		id := strings.TrimSpace(rec.ParticipantID)
		if id == "" {
			e.logger.Warn("skipping malformed participant record", zap.Int("round", rec.Round))
			continue
		}

		agg, ok := byID[id]
		if !ok {
			agg = &aggregates{participantID: id}
			byID[id] = agg
			order = append(order, id)
		}

		for _, v := range rec.Votes {
			switch v.Choice {
			case domain.VoteAgree:
				agg.agreeVotes++
				agg.totalVotes++
			case domain.VoteDisagree:
				agg.totalVotes++
			default:
				e.logger.Warn("skipping vote with unknown choice",
					zap.String("participant_id", id), zap.String("choice", v.Choice))
			}
		}

		for _, c := range rec.Contributions {
			agg.contributions++
			text := strings.TrimSpace(c.Text)
			if text == "" {
				continue
			}
			agg.sentimentSum += SentimentPolarity(text)
			agg.sentimentN++
			agg.wordSum += float64(len(strings.Fields(text)))
			agg.wordN++
		}
	}

	if len(order) == 0 {
		return nil, domain.NormalizationParams{}, ErrNoParticipants
	}

	// Escalas poblacionales: maximo observado, con 1 como piso para
	// que dividir nunca produzca NaN ni Inf.
	params := domain.NormalizationParams{ParticipationScale: 1, TextLengthScale: 1}
	for _, id := range order {
		agg := byID[id]
		if p := float64(agg.totalVotes + agg.contributions); p > params.ParticipationScale {
			params.ParticipationScale = p
		}
		if l := avgOrZero(agg.wordSum, agg.wordN); l > params.TextLengthScale {
			params.TextLengthScale = l
		}
	}

	out := make([]ParticipantFeatures, 0, len(order))
	for _, id := range order {
		agg := byID[id]
		out = append(out, ParticipantFeatures{
			ParticipantID: id,
			Features:      agg.toVector(params),
		})
	}
	return out, params, nil
}

func (a *aggregates) toVector(params domain.NormalizationParams) domain.FeatureVector {
	consensus := 0.0
	if a.totalVotes > 0 {
		consensus = float64(a.agreeVotes) / float64(a.totalVotes)
	}

	consistency := 0.0
	switch {
	case a.totalVotes == 1:
		consistency = 1
	case a.totalVotes > 1:
		p := float64(a.agreeVotes) / float64(a.totalVotes)
		consistency = 1 - math.Sqrt(p*(1-p))
	}

	engagement := 0.0
	if a.totalVotes > 0 {
		engagement = float64(a.contributions) / float64(a.totalVotes)
	}

	return domain.FeatureVector{
		ConsensusAlignment: consensus,
		ParticipationLevel: float64(a.totalVotes+a.contributions) / params.ParticipationScale,
		AvgSentiment:       avgOrZero(a.sentimentSum, a.sentimentN),
		AvgTextLength:      avgOrZero(a.wordSum, a.wordN) / params.TextLengthScale,
		VoteConsistency:    consistency,
		EngagementDepth:    engagement,
	}
}

func avgOrZero(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
