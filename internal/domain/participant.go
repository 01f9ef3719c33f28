package domain

import "time"

const (
	VoteAgree    = "agree"
	VoteDisagree = "disagree"
)

type Vote struct {
	StatementID string    `json:"statement_id"`
	Choice      string    `json:"choice"`
	CastAt      time.Time `json:"cast_at"`
}

type TextContribution struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ParticipantRecord es la unidad cruda de entrada del pipeline.
// Se lee una sola vez del dataset y no se muta despues.
type ParticipantRecord struct {
	ParticipantID string             `json:"participant_id"`
	Round         int                `json:"round"`
	Votes         []Vote             `json:"votes"`
	Contributions []TextContribution `json:"contributions"`
}
