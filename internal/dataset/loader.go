package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"dialogue-personas/internal/domain"
)

// Nombres de columna esperados en los CSV por ronda.
const (
	colParticipantID = "Participant ID"
	colStatementID   = "Statement ID"
	colVote          = "Vote"
	colTimestamp     = "Timestamp"
	colThoughtText   = "Thought Text"
)

var ErrNoRounds = errors.New("no dataset rounds could be loaded")

// Loader lee los archivos CSV de cada ronda de dialogo y los convierte en
// ParticipantRecord. Filas malformadas se omiten con warning; una ronda
// ausente no aborta el batch.
type Loader struct {
	logger *zap.Logger
}

func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// LoadRounds carga las rondas indicadas desde dataDir (Data/GD<N>/...).
func (l *Loader) LoadRounds(dataDir string, rounds []int) ([]domain.ParticipantRecord, error) {
	var all []domain.ParticipantRecord

	for _, round := range rounds {
		records, err := l.loadRound(dataDir, round)
		if err != nil {
			l.logger.Warn("skipping dataset round", zap.Int("round", round), zap.Error(err))
			continue
		}
		l.logger.Info("loaded dataset round", zap.Int("round", round), zap.Int("participants", len(records)))
		all = append(all, records...)
	}

	if len(all) == 0 {
		return nil, ErrNoRounds
	}
	return all, nil
}

func (l *Loader) loadRound(dataDir string, round int) ([]domain.ParticipantRecord, error) {
	base := filepath.Join(dataDir, fmt.Sprintf("GD%d", round))

	byID := make(map[string]*domain.ParticipantRecord)
	var order []string
	record := func(id string) *domain.ParticipantRecord {
		rec, ok := byID[id]
		if !ok {
			rec = &domain.ParticipantRecord{ParticipantID: id, Round: round}
			byID[id] = rec
			order = append(order, id)
		}
		return rec
	}

	binaryPath := filepath.Join(base, fmt.Sprintf("GD%d_binary.csv", round))
	if err := l.forEachRow(binaryPath, func(row map[string]string) {
		id := strings.TrimSpace(row[colParticipantID])
		if id == "" {
			l.logger.Warn("skipping vote row without participant id", zap.String("file", binaryPath))
			return
		}
		choice := strings.ToLower(strings.TrimSpace(row[colVote]))
		if choice != domain.VoteAgree && choice != domain.VoteDisagree {
			l.logger.Warn("skipping vote row with unknown vote",
				zap.String("file", binaryPath), zap.String("vote", row[colVote]))
			return
		}
		record(id).Votes = append(record(id).Votes, domain.Vote{
			StatementID: strings.TrimSpace(row[colStatementID]),
			Choice:      choice,
			CastAt:      parseTimestamp(row[colTimestamp]),
		})
	}); err != nil {
		return nil, err
	}

	verbatimPath := filepath.Join(base, fmt.Sprintf("GD%d_verbatim_map.csv", round))
	if err := l.forEachRow(verbatimPath, func(row map[string]string) {
		id := strings.TrimSpace(row[colParticipantID])
		if id == "" {
			l.logger.Warn("skipping verbatim row without participant id", zap.String("file", verbatimPath))
			return
		}
		record(id).Contributions = append(record(id).Contributions, domain.TextContribution{
			Text:      row[colThoughtText],
			CreatedAt: parseTimestamp(row[colTimestamp]),
		})
	}); err != nil {
		return nil, err
	}

	out := make([]domain.ParticipantRecord, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out, nil
}

// forEachRow recorre un CSV con encabezado y entrega cada fila como mapa
// columna->valor. Filas con largo inconsistente se omiten con warning.
func (l *Loader) forEachRow(path string, fn func(row map[string]string)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read header of %s: %w", path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			l.logger.Warn("skipping malformed csv row", zap.String("file", path), zap.Error(err))
			continue
		}
		if len(fields) < len(header) {
			l.logger.Warn("skipping short csv row", zap.String("file", path), zap.Int("fields", len(fields)))
			continue
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			row[name] = fields[i]
		}
		fn(row)
	}
}

func parseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
