package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"dialogue-personas/internal/domain"
)

// shareTolerance acota el error flotante al validar que las cuotas sumen 1.
const shareTolerance = 1e-6

var ErrInvalidArtifact = errors.New("invalid persona artifact")

// Save escribe el artefacto con write-then-rename atomico: un lector
// concurrente nunca ve un archivo parcialmente escrito.
func Save(path string, art domain.Artifact) error {
	if err := Validate(art); err != nil {
		return err
	}

	data, err := json.MarshalIndent(art, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal artifact: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".persona-artifact-*.json")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp artifact: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("swap artifact: %w", err)
	}
	return nil
}

// Load lee y valida el artefacto. Un archivo ausente o corrupto es error:
// el servidor no puede servir resultados sin el.
func Load(path string) (domain.Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("read artifact %s: %w", path, err)
	}

	var art domain.Artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return domain.Artifact{}, fmt.Errorf("parse artifact %s: %w", path, err)
	}
	if err := Validate(art); err != nil {
		return domain.Artifact{}, fmt.Errorf("artifact %s: %w", path, err)
	}
	return art, nil
}

// Validate revisa la forma del artefacto: k coherente, cuotas que suman 1,
// centroides finitos y parametros de estandarizacion usables.
func Validate(art domain.Artifact) error {
	if art.K <= 0 {
		return fmt.Errorf("%w: non-positive k", ErrInvalidArtifact)
	}
	if len(art.Personas) != art.K {
		return fmt.Errorf("%w: k=%d but %d personas", ErrInvalidArtifact, art.K, len(art.Personas))
	}
	if art.TotalParticipants <= 0 {
		return fmt.Errorf("%w: non-positive total_participants", ErrInvalidArtifact)
	}

	var shareSum float64
	for _, p := range art.Personas {
		shareSum += p.Share
		for _, v := range p.Centroid {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: non-finite centroid for persona %d", ErrInvalidArtifact, p.ID)
			}
		}
	}
	if math.Abs(shareSum-1) > shareTolerance {
		return fmt.Errorf("%w: persona shares sum to %v", ErrInvalidArtifact, shareSum)
	}

	for d, std := range art.Standardization.Stds {
		if std <= 0 || math.IsNaN(std) || math.IsInf(std, 0) {
			return fmt.Errorf("%w: unusable std for dimension %s", ErrInvalidArtifact, domain.FeatureNames[d])
		}
	}
	if art.Normalization.ParticipationScale <= 0 || art.Normalization.TextLengthScale <= 0 {
		return fmt.Errorf("%w: non-positive normalization scale", ErrInvalidArtifact)
	}
	return nil
}
