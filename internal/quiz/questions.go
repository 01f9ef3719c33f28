package quiz

import "dialogue-personas/internal/domain"

// Option es una opcion de respuesta. Los pesos son data de producto fija:
// se suministran tal cual y no se re-derivan. No se exponen al cliente.
type Option struct {
	Text    string             `json:"text"`
	Weights map[string]float64 `json:"-"`
}

type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

// Questions devuelve la tabla estatica de 6 preguntas del quiz.
func Questions() []Question {
	return questions
}

var questions = []Question{
	{
		ID:       1,
		Question: "When engaging in online discussions about AI, you typically:",
		Options: []Option{
			{Text: "Participate actively and share your thoughts frequently",
				Weights: map[string]float64{domain.FeatureParticipationLevel: 0.9}},
			{Text: "Read everything but only comment when you have something important to say",
				Weights: map[string]float64{domain.FeatureParticipationLevel: 0.5, domain.FeatureEngagementDepth: 0.7}},
			{Text: "Lurk and observe, rarely participating",
				Weights: map[string]float64{domain.FeatureParticipationLevel: 0.1}},
			{Text: "Jump in with quick reactions and votes",
				Weights: map[string]float64{domain.FeatureParticipationLevel: 0.6, domain.FeatureEngagementDepth: 0.2}},
		},
	},
	{
		ID:       2,
		Question: "When you encounter a popular opinion about AI that differs from yours, you:",
		Options: []Option{
			{Text: "Usually find myself agreeing with the majority after considering their points",
				Weights: map[string]float64{domain.FeatureConsensusAlignment: 0.8}},
			{Text: "Stick to my own perspective regardless of popular opinion",
				Weights: map[string]float64{domain.FeatureConsensusAlignment: 0.2}},
			{Text: "Try to find a middle ground that incorporates different viewpoints",
				Weights: map[string]float64{domain.FeatureConsensusAlignment: 0.6}},
			{Text: "Change my mind frequently based on new information",
				Weights: map[string]float64{domain.FeatureVoteConsistency: 0.3}},
		},
	},
	{
		ID:       3,
		Question: "Your typical response style when discussing AI topics is:",
		Options: []Option{
			{Text: "Long, detailed explanations with examples and context",
				Weights: map[string]float64{domain.FeatureAvgTextLength: 0.9, domain.FeatureEngagementDepth: 0.8}},
			{Text: "Short, concise statements that get to the point",
				Weights: map[string]float64{domain.FeatureAvgTextLength: 0.2}},
			{Text: "Balanced responses that are neither too brief nor too lengthy",
				Weights: map[string]float64{domain.FeatureAvgTextLength: 0.5}},
			{Text: "Varied - sometimes short, sometimes long depending on the topic",
				Weights: map[string]float64{domain.FeatureAvgTextLength: 0.6}},
		},
	},
	{
		ID:       4,
		Question: "When discussing the future of AI, your emotional tone tends to be:",
		Options: []Option{
			{Text: "Optimistic and excited about possibilities",
				Weights: map[string]float64{domain.FeatureAvgSentiment: 0.7}},
			{Text: "Cautious and concerned about potential risks",
				Weights: map[string]float64{domain.FeatureAvgSentiment: -0.5}},
			{Text: "Neutral and objective, focusing on facts",
				Weights: map[string]float64{domain.FeatureAvgSentiment: 0.0}},
			{Text: "Balanced between excitement and caution",
				Weights: map[string]float64{domain.FeatureAvgSentiment: 0.2}},
		},
	},
	{
		ID:       5,
		Question: "In group discussions about AI policy, you:",
		Options: []Option{
			{Text: "Consistently advocate for the same position",
				Weights: map[string]float64{domain.FeatureVoteConsistency: 0.9}},
			{Text: "Adapt your stance based on new evidence presented",
				Weights: map[string]float64{domain.FeatureVoteConsistency: 0.4}},
			{Text: "Often find yourself torn between different valid perspectives",
				Weights: map[string]float64{domain.FeatureVoteConsistency: 0.3}},
			{Text: "Maintain core beliefs while being open to nuance",
				Weights: map[string]float64{domain.FeatureVoteConsistency: 0.7}},
		},
	},
	{
		ID:       6,
		Question: "When contributing to AI discussions, you prefer to:",
		Options: []Option{
			{Text: "Share thoughtful, well-researched insights",
				Weights: map[string]float64{domain.FeatureEngagementDepth: 0.9}},
			{Text: "Quickly vote or react to others' contributions",
				Weights: map[string]float64{domain.FeatureEngagementDepth: 0.1}},
			{Text: "Mix both quick reactions and deeper thoughts",
				Weights: map[string]float64{domain.FeatureEngagementDepth: 0.5}},
			{Text: "Focus on asking questions to understand better",
				Weights: map[string]float64{domain.FeatureEngagementDepth: 0.6}},
		},
	},
}
