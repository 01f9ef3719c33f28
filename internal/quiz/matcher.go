package quiz

import (
	"errors"
	"fmt"
	"math"

	"dialogue-personas/internal/domain"
)

var ErrInvalidResponse = errors.New("invalid quiz response")

// Matcher asigna una respuesta de quiz a la persona mas cercana por
// distancia euclidiana en el espacio estandarizado de los centroides.
// Es stateless sobre un artefacto inmutable: seguro para uso concurrente.
type Matcher struct {
	artifact  domain.Artifact
	questions []Question
}

func NewMatcher(art domain.Artifact) (*Matcher, error) {
	if len(art.Personas) == 0 {
		return nil, errors.New("matcher: artifact without personas")
	}
	return &Matcher{artifact: art, questions: Questions()}, nil
}

func (m *Matcher) Questions() []Question {
	return m.questions
}

func (m *Matcher) Artifact() domain.Artifact {
	return m.artifact
}

// Match valida la respuesta, construye el vector sintetico con la tabla de
// pesos, lo estandariza con los parametros del artefacto y devuelve la
// persona de distancia minima. Toda entrada valida produce exactamente una
// persona; los empates exactos se rompen hacia el id mas bajo.
func (m *Matcher) Match(resp domain.QuizResponse) (domain.PersonaAssignment, error) {
	features, err := m.syntheticVector(resp)
	if err != nil {
		return domain.PersonaAssignment{}, err
	}

	standardized := m.artifact.Standardization.Apply(features)

	best := -1
	bestDist := math.Inf(1)
	for _, p := range m.artifact.Personas {
		var sum float64
		for d := range standardized {
			diff := standardized[d] - p.Centroid[d]
			sum += diff * diff
		}
		dist := math.Sqrt(sum)
		if dist < bestDist || (dist == bestDist && (best < 0 || p.ID < best)) {
			bestDist = dist
			best = p.ID
		}
	}

	var persona domain.PersonaProfile
	for _, p := range m.artifact.Personas {
		if p.ID == best {
			persona = p
			break
		}
	}

	return domain.PersonaAssignment{
		PersonaID:  best,
		Persona:    persona,
		Distance:   bestDist,
		Confidence: 1 / (1 + bestDist),
		Features:   features,
	}, nil
}

// syntheticVector suma las contribuciones de peso por dimension y promedia
// sobre el numero de preguntas, igual que la transformacion offline.
func (m *Matcher) syntheticVector(resp domain.QuizResponse) (domain.FeatureVector, error) {
	if len(resp.Answers) != len(m.questions) {
		return domain.FeatureVector{}, fmt.Errorf("%w: expected %d answers, got %d",
			ErrInvalidResponse, len(m.questions), len(resp.Answers))
	}

	byID := make(map[int]Question, len(m.questions))
	for _, q := range m.questions {
		byID[q.ID] = q
	}

	totals := make(map[string]float64, domain.FeatureDims)
	seen := make(map[int]bool, len(m.questions))
	for _, ans := range resp.Answers {
		q, ok := byID[ans.QuestionID]
		if !ok {
			return domain.FeatureVector{}, fmt.Errorf("%w: unknown question id %d", ErrInvalidResponse, ans.QuestionID)
		}
		if seen[ans.QuestionID] {
			return domain.FeatureVector{}, fmt.Errorf("%w: duplicate answer for question %d", ErrInvalidResponse, ans.QuestionID)
		}
		seen[ans.QuestionID] = true
		if ans.OptionIndex < 0 || ans.OptionIndex >= len(q.Options) {
			return domain.FeatureVector{}, fmt.Errorf("%w: option %d out of range for question %d",
				ErrInvalidResponse, ans.OptionIndex, ans.QuestionID)
		}
		for feature, weight := range q.Options[ans.OptionIndex].Weights {
			totals[feature] += weight
		}
	}

	n := float64(len(m.questions))
	var vals [domain.FeatureDims]float64
	for d, name := range domain.FeatureNames {
		vals[d] = totals[name] / n
	}
	return domain.FeatureVectorFromValues(vals), nil
}
