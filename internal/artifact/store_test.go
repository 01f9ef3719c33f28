package artifact

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"dialogue-personas/internal/domain"
)

func validArtifact() domain.Artifact {
	art := domain.Artifact{
		Version:           1,
		CreatedAt:         time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		K:                 2,
		Silhouette:        0.42,
		TotalParticipants: 10,
		Personas: []domain.PersonaProfile{
			{
				ID:          0,
				Name:        "The Optimistic Architect",
				Size:        6,
				Share:       0.6,
				Description: "High engagement with positive outlook",
				Centroid:    [domain.FeatureDims]float64{1, 0.5, 0.8, 0.2, 0.1, -0.3},
			},
			{
				ID:          1,
				Name:        "The Cautious Skeptic",
				Size:        4,
				Share:       0.4,
				Description: "Tends toward disagreement",
				Centroid:    [domain.FeatureDims]float64{-1, -0.5, -0.8, -0.2, -0.1, 0.3},
			},
		},
		Normalization: domain.NormalizationParams{ParticipationScale: 12, TextLengthScale: 40},
	}
	for d := range art.Standardization.Stds {
		art.Standardization.Stds[d] = 1
	}
	return art
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.json")
	want := validArtifact()

	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n%+v\nvs\n%+v", got, want)
	}
}

func TestSaveOverwritesExistingArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.json")

	first := validArtifact()
	if err := Save(path, first); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	second := validArtifact()
	second.Silhouette = 0.99
	if err := Save(path, second); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Silhouette != 0.99 {
		t.Fatalf("expected overwritten artifact, got silhouette %v", got.Silhouette)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := Save(filepath.Join(dir, "personas.json"), validArtifact()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "personas.json" {
		t.Fatalf("expected only the artifact file, got %v", entries)
	}
}

func TestSaveRejectsInvalidArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.json")

	art := validArtifact()
	art.Personas[0].Share = 0.9 // suma 1.3

	err := Save(path, art)
	if !errors.Is(err, ErrInvalidArtifact) {
		t.Fatalf("expected ErrInvalidArtifact, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("expected no file written for invalid artifact")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing artifact")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for corrupt artifact")
	}
}

func TestValidateRejectsBadShapes(t *testing.T) {
	art := validArtifact()
	art.K = 3
	if err := Validate(art); !errors.Is(err, ErrInvalidArtifact) {
		t.Fatalf("expected error for k/persona mismatch, got %v", err)
	}

	art = validArtifact()
	art.Standardization.Stds[2] = 0
	if err := Validate(art); !errors.Is(err, ErrInvalidArtifact) {
		t.Fatalf("expected error for zero std, got %v", err)
	}

	art = validArtifact()
	art.Normalization.TextLengthScale = 0
	if err := Validate(art); !errors.Is(err, ErrInvalidArtifact) {
		t.Fatalf("expected error for zero scale, got %v", err)
	}
}
