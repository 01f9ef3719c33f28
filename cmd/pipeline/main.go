package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"dialogue-personas/internal/analysis"
	"dialogue-personas/internal/artifact"
	"dialogue-personas/internal/config"
	"dialogue-personas/internal/dataset"
	"dialogue-personas/internal/domain"
)

const (
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	loader := dataset.NewLoader(logger)
	records, err := loader.LoadRounds(cfg.DataDir, cfg.DataRounds)
	if err != nil {
		logger.Fatal("load dataset", zap.Error(err))
	}

	pipeline := analysis.NewPipeline(logger)
	pipeline.Clusterer.Seed = cfg.ClusterSeed
	pipeline.Clusterer.MinK = cfg.ClusterMinK
	pipeline.Clusterer.MaxK = cfg.ClusterMaxK
	pipeline.Clusterer.DefaultK = cfg.ClusterDefaultK
	pipeline.Clusterer.Restarts = cfg.ClusterRestarts

	art, err := pipeline.Run(records)
	if err != nil {
		logger.Fatal("pipeline failed", zap.Error(err))
	}

	if err := artifact.Save(cfg.ArtifactPath, art); err != nil {
		logger.Fatal("save artifact", zap.Error(err))
	}
	logger.Info("artifact written", zap.String("path", cfg.ArtifactPath))

	fmt.Printf("%s==== Persona Analysis ====%s\n", colorCyan, colorReset)
	fmt.Printf("Participants: %d | k=%d | silhouette=%.3f\n\n", art.TotalParticipants, art.K, art.Silhouette)
	for _, p := range art.Personas {
		fmt.Printf("%s%s%s (%d participants, %.1f%%)\n", colorGreen, p.Name, colorReset, p.Size, p.Share*100)
		fmt.Printf("  %s\n", p.Description)
		ch := p.Characteristics.Values()
		for d, name := range domain.FeatureNames {
			fmt.Printf("  - %s: %.3f\n", name, ch[d])
		}
		fmt.Println()
	}
}
