package analysis

import (
	"fmt"
	"strings"

	"dialogue-personas/internal/domain"
)

// Nombres de arquetipo fijos, indexados por id de cluster.
var personaNames = []string{
	"The Optimistic Architect",
	"The Cautious Skeptic",
	"The Balanced Moderator",
	"The Deep Thinker",
	"The Pragmatic Realist",
}

func personaName(clusterID int) string {
	if clusterID >= 0 && clusterID < len(personaNames) {
		return personaNames[clusterID]
	}
	return fmt.Sprintf("Persona %d", clusterID)
}

// describePersona genera la descripcion legible a partir de las medias
// crudas del cluster. Los umbrales son data de producto fija.
func describePersona(ch domain.FeatureVector) string {
	var traits []string

	switch {
	case ch.ConsensusAlignment > 0.7:
		traits = append(traits, "tends to agree with majority opinions")
	case ch.ConsensusAlignment < 0.3:
		traits = append(traits, "often dissents from popular views")
	default:
		traits = append(traits, "maintains balanced perspective on issues")
	}

	switch {
	case ch.AvgSentiment > 0.2:
		traits = append(traits, "expresses optimistic viewpoints")
	case ch.AvgSentiment < -0.2:
		traits = append(traits, "takes cautious or critical stances")
	default:
		traits = append(traits, "maintains neutral emotional tone")
	}

	switch {
	case ch.EngagementDepth > 0.5:
		traits = append(traits, "contributes detailed thoughts and analysis")
	case ch.EngagementDepth < 0.2:
		traits = append(traits, "prefers concise interactions")
	default:
		traits = append(traits, "balances brevity with depth")
	}

	switch {
	case ch.ParticipationLevel > 0.8:
		traits = append(traits, "highly active in discussions")
	case ch.ParticipationLevel < 0.4:
		traits = append(traits, "selective in participation")
	default:
		traits = append(traits, "moderately engaged")
	}

	return "This persona " + strings.Join(traits, ", ") + "."
}

// featureGlossary documenta cada dimension en el artefacto persistido.
var featureGlossary = map[string]string{
	domain.FeatureConsensusAlignment: "How often participant agrees with majority",
	domain.FeatureParticipationLevel: "Overall activity level in discussions",
	domain.FeatureAvgSentiment:       "Emotional tone of contributions",
	domain.FeatureAvgTextLength:      "Typical length of written responses",
	domain.FeatureVoteConsistency:    "Consistency in voting patterns",
	domain.FeatureEngagementDepth:    "Ratio of thoughtful contributions to simple votes",
}
