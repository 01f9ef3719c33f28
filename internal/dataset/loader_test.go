package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dialogue-personas/internal/domain"
)

func writeRound(t *testing.T, dataDir string, round int, binary, verbatim string) {
	t.Helper()

	base := filepath.Join(dataDir, "GD"+string(rune('0'+round)))
	if err := os.MkdirAll(base, 0o755); err != nil {
		t.Fatalf("mkdir round dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, "GD"+string(rune('0'+round))+"_binary.csv"), []byte(binary), 0o644); err != nil {
		t.Fatalf("write binary csv: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, "GD"+string(rune('0'+round))+"_verbatim_map.csv"), []byte(verbatim), 0o644); err != nil {
		t.Fatalf("write verbatim csv: %v", err)
	}
}

func TestLoadRoundsMergesVotesAndTexts(t *testing.T) {
	dataDir := t.TempDir()
	writeRound(t, dataDir, 1,
		"Participant ID,Statement ID,Vote,Timestamp\n"+
			"p1,s1,Agree,2024-03-01 10:00:00\n"+
			"p1,s2,Disagree,2024-03-01 10:05:00\n"+
			"p2,s1,agree,2024-03-01\n",
		"Participant ID,Thought Text,Timestamp\n"+
			"p1,I think this is promising,2024-03-01 10:10:00\n",
	)

	records, err := NewLoader(nil).LoadRounds(dataDir, []int{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(records))
	}

	byID := make(map[string]domain.ParticipantRecord)
	for _, r := range records {
		byID[r.ParticipantID] = r
	}

	p1 := byID["p1"]
	if p1.Round != 1 {
		t.Fatalf("expected round 1, got %d", p1.Round)
	}
	if len(p1.Votes) != 2 || len(p1.Contributions) != 1 {
		t.Fatalf("expected 2 votes and 1 text for p1, got %d/%d", len(p1.Votes), len(p1.Contributions))
	}
	if p1.Votes[0].Choice != domain.VoteAgree || p1.Votes[1].Choice != domain.VoteDisagree {
		t.Fatalf("unexpected vote choices: %+v", p1.Votes)
	}
	want := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	if !p1.Votes[0].CastAt.Equal(want) {
		t.Fatalf("expected parsed timestamp %v, got %v", want, p1.Votes[0].CastAt)
	}

	if len(byID["p2"].Votes) != 1 {
		t.Fatalf("expected normalized lowercase vote for p2, got %+v", byID["p2"])
	}
}

func TestLoadRoundsSkipsMalformedRows(t *testing.T) {
	dataDir := t.TempDir()
	writeRound(t, dataDir, 1,
		"Participant ID,Statement ID,Vote,Timestamp\n"+
			",s1,agree,\n"+ // sin participante
			"p1,s1,maybe,\n"+ // voto desconocido
			"p1\n"+ // fila corta
			"p1,s2,agree,\n",
		"Participant ID,Thought Text,Timestamp\n"+
			",orphan thought,\n",
	)

	records, err := NewLoader(nil).LoadRounds(dataDir, []int{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected a single participant, got %+v", records)
	}
	if len(records[0].Votes) != 1 || len(records[0].Contributions) != 0 {
		t.Fatalf("expected only the valid vote row, got %+v", records[0])
	}
}

func TestLoadRoundsSkipsMissingRound(t *testing.T) {
	dataDir := t.TempDir()
	writeRound(t, dataDir, 1,
		"Participant ID,Statement ID,Vote,Timestamp\np1,s1,agree,\n",
		"Participant ID,Thought Text,Timestamp\n",
	)

	records, err := NewLoader(nil).LoadRounds(dataDir, []int{1, 2})
	if err != nil {
		t.Fatalf("expected missing round to be skipped, got %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected participants from round 1 only, got %d", len(records))
	}
}

func TestLoadRoundsNoData(t *testing.T) {
	if _, err := NewLoader(nil).LoadRounds(t.TempDir(), []int{1, 2}); !errors.Is(err, ErrNoRounds) {
		t.Fatalf("expected ErrNoRounds, got %v", err)
	}
}
