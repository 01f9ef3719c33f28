package analysis

import (
	"errors"
	"math"
	"testing"

	"dialogue-personas/internal/domain"
)

func votesOf(choices ...string) []domain.Vote {
	var votes []domain.Vote
	for i, c := range choices {
		votes = append(votes, domain.Vote{StatementID: string(rune('a' + i)), Choice: c})
	}
	return votes
}

func textsOf(texts ...string) []domain.TextContribution {
	var out []domain.TextContribution
	for _, txt := range texts {
		out = append(out, domain.TextContribution{Text: txt})
	}
	return out
}

func TestExtractZeroActivityParticipant(t *testing.T) {
	e := NewExtractor(nil)

	feats, _, err := e.Extract([]domain.ParticipantRecord{
		{ParticipantID: "p1"},
		{ParticipantID: "p2", Votes: votesOf(domain.VoteAgree, domain.VoteDisagree), Contributions: textsOf("some thoughts here")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var zero domain.FeatureVector
	found := false
	for _, f := range feats {
		if f.ParticipantID != "p1" {
			continue
		}
		found = true
		if f.Features != zero {
			t.Fatalf("expected all-zero vector for inactive participant, got %+v", f.Features)
		}
		for _, v := range f.Features.Values() {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("expected finite values, got %v", v)
			}
		}
	}
	if !found {
		t.Fatalf("participant p1 missing from extraction output")
	}
}

func TestExtractConsensusAndConsistency(t *testing.T) {
	e := NewExtractor(nil)

	feats, _, err := e.Extract([]domain.ParticipantRecord{
		{ParticipantID: "all-agree", Votes: votesOf(domain.VoteAgree, domain.VoteAgree, domain.VoteAgree, domain.VoteAgree)},
		{ParticipantID: "split", Votes: votesOf(domain.VoteAgree, domain.VoteDisagree, domain.VoteAgree, domain.VoteDisagree)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byID := make(map[string]domain.FeatureVector)
	for _, f := range feats {
		byID[f.ParticipantID] = f.Features
	}

	if got := byID["all-agree"].ConsensusAlignment; got != 1 {
		t.Fatalf("expected consensus 1 for unanimous agree, got %v", got)
	}
	if got := byID["all-agree"].VoteConsistency; got != 1 {
		t.Fatalf("expected consistency 1 for unanimous votes, got %v", got)
	}
	if got := byID["split"].ConsensusAlignment; got != 0.5 {
		t.Fatalf("expected consensus 0.5 for split votes, got %v", got)
	}
	// Indicador 50/50: desviacion 0.5, consistencia 0.5.
	if got := byID["split"].VoteConsistency; math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("expected consistency 0.5 for split votes, got %v", got)
	}
}

func TestExtractNormalizationUsesPopulationScale(t *testing.T) {
	e := NewExtractor(nil)

	feats, params, err := e.Extract([]domain.ParticipantRecord{
		{ParticipantID: "busy", Votes: votesOf(domain.VoteAgree, domain.VoteAgree, domain.VoteAgree), Contributions: textsOf("one two three four")},
		{ParticipantID: "quiet", Votes: votesOf(domain.VoteDisagree)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if params.ParticipationScale != 4 {
		t.Fatalf("expected participation scale 4, got %v", params.ParticipationScale)
	}
	if params.TextLengthScale != 4 {
		t.Fatalf("expected text length scale 4, got %v", params.TextLengthScale)
	}

	byID := make(map[string]domain.FeatureVector)
	for _, f := range feats {
		byID[f.ParticipantID] = f.Features
	}
	if got := byID["busy"].ParticipationLevel; got != 1 {
		t.Fatalf("expected most active participant at 1, got %v", got)
	}
	if got := byID["quiet"].ParticipationLevel; got != 0.25 {
		t.Fatalf("expected 1/4 participation, got %v", got)
	}
}

func TestExtractSkipsMalformedRecords(t *testing.T) {
	e := NewExtractor(nil)

	feats, _, err := e.Extract([]domain.ParticipantRecord{
		{ParticipantID: "   "},
		{ParticipantID: "ok", Votes: votesOf(domain.VoteAgree)},
	})
	if err != nil {
		t.Fatalf("expected batch to continue past malformed record: %v", err)
	}
	if len(feats) != 1 || feats[0].ParticipantID != "ok" {
		t.Fatalf("expected only the valid participant, got %+v", feats)
	}
}

func TestExtractMergesRepeatedParticipant(t *testing.T) {
	e := NewExtractor(nil)

	feats, _, err := e.Extract([]domain.ParticipantRecord{
		{ParticipantID: "p1", Round: 1, Votes: votesOf(domain.VoteAgree)},
		{ParticipantID: "p1", Round: 2, Votes: votesOf(domain.VoteAgree)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feats) != 1 {
		t.Fatalf("expected one merged participant, got %d", len(feats))
	}
	if got := feats[0].Features.ConsensusAlignment; got != 1 {
		t.Fatalf("expected merged consensus 1, got %v", got)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	e := NewExtractor(nil)
	if _, _, err := e.Extract(nil); !errors.Is(err, ErrNoParticipants) {
		t.Fatalf("expected ErrNoParticipants, got %v", err)
	}
}
