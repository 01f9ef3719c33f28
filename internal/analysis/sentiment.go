package analysis

import (
	"strings"
	"unicode"
)

// Lexico fijo de polaridad. Es data de producto, no se re-deriva:
// reemplaza el scoring de polaridad de la fuente original con el mismo
// contrato (valor en [-1, 1], 0 para texto neutro o vacio).
var positiveWords = map[string]struct{}{
	"good": {}, "great": {}, "excellent": {}, "amazing": {}, "wonderful": {},
	"positive": {}, "hopeful": {}, "hope": {}, "optimistic": {}, "excited": {},
	"exciting": {}, "love": {}, "like": {}, "benefit": {}, "beneficial": {},
	"helpful": {}, "promising": {}, "progress": {}, "improve": {}, "improved": {},
	"better": {}, "best": {}, "safe": {}, "trust": {}, "useful": {},
	"opportunity": {}, "agree": {}, "support": {}, "happy": {}, "confident": {},
}

var negativeWords = map[string]struct{}{
	"bad": {}, "terrible": {}, "awful": {}, "horrible": {}, "negative": {},
	"dangerous": {}, "danger": {}, "risk": {}, "risky": {}, "fear": {},
	"afraid": {}, "scary": {}, "worried": {}, "worry": {}, "concern": {},
	"concerned": {}, "harm": {}, "harmful": {}, "threat": {}, "problem": {},
	"worse": {}, "worst": {}, "unsafe": {}, "distrust": {}, "useless": {},
	"disagree": {}, "against": {}, "wrong": {}, "sad": {}, "angry": {},
}

var negations = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "nothing": {}, "neither": {},
}

// SentimentPolarity estima la polaridad de un texto en [-1, 1].
// Texto sin palabras del lexico devuelve 0.
func SentimentPolarity(text string) float64 {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})

	var score, hits float64
	negated := false
	for _, tok := range tokens {
		if _, ok := negations[tok]; ok {
			negated = true
			continue
		}

		var polarity float64
		if _, ok := positiveWords[tok]; ok {
			polarity = 1
		} else if _, ok := negativeWords[tok]; ok {
			polarity = -1
		}
		if polarity != 0 {
			if negated {
				polarity = -polarity
			}
			score += polarity
			hits++
		}
		negated = false
	}

	if hits == 0 {
		return 0
	}
	return score / hits
}
