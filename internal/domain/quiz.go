package domain

import "time"

type QuizAnswer struct {
	QuestionID  int `json:"question_id"`
	OptionIndex int `json:"option_index"`
}

// QuizResponse es transitoria: vive solo durante el request.
type QuizResponse struct {
	Answers []QuizAnswer `json:"answers"`
}

// PersonaAssignment es el resultado de un match: persona mas cercana,
// distancia euclidiana en espacio estandarizado y vector sintetico crudo.
type PersonaAssignment struct {
	PersonaID  int            `json:"persona_id"`
	Persona    PersonaProfile `json:"persona"`
	Distance   float64        `json:"distance"`
	Confidence float64        `json:"confidence"`
	Features   FeatureVector  `json:"features"`
}

type QuizResult struct {
	ID         string        `json:"id"`
	PersonaID  int           `json:"persona_id"`
	Features   FeatureVector `json:"features"`
	Distance   float64       `json:"distance"`
	Confidence float64       `json:"confidence"`
	CreatedAt  time.Time     `json:"created_at"`
}

type QuestionSubmission struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
