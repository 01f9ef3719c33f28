package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"dialogue-personas/internal/artifact"
	"dialogue-personas/internal/config"
	"dialogue-personas/internal/db"
	apihttp "dialogue-personas/internal/http"
	"dialogue-personas/internal/quiz"
	"dialogue-personas/internal/repository"
	"dialogue-personas/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Sin artefacto no hay quiz: fallar ruidosamente, nunca degradar.
	art, err := artifact.Load(cfg.ArtifactPath)
	if err != nil {
		logger.Fatal("load persona artifact", zap.Error(err))
	}
	logger.Info("persona artifact loaded",
		zap.Int("k", art.K),
		zap.Int("total_participants", art.TotalParticipants),
		zap.String("path", cfg.ArtifactPath),
	)

	matcher, err := quiz.NewMatcher(art)
	if err != nil {
		logger.Fatal("init quiz matcher", zap.Error(err))
	}

	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}
	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	ctxPing, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	if err := db.Ping(ctxPing, pool); err != nil {
		cancelPing()
		logger.Fatal("db ping", zap.Error(err))
	}
	cancelPing()

	resultRepo := repository.NewPgQuizResultRepository(pool)
	submissionRepo := repository.NewPgSubmissionRepository(pool)

	var limiter service.SubmitRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisSubmitRateLimiter(
				redisClient,
				time.Duration(cfg.SubmitRateWindowMinutes)*time.Minute,
				cfg.SubmitRateMax,
			)
		}
		cancel()
	}

	adminAuth := service.NewAdminAuthService(
		cfg.JWTSecret,
		cfg.AdminPasswordHash,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
	)
	if cfg.JWTSecret == "" || cfg.AdminPasswordHash == "" {
		logger.Warn("admin auth not configured, analytics endpoint disabled")
	}

	quizSvc := service.NewQuizService(logger, matcher, resultRepo, submissionRepo)
	quizHandler := apihttp.NewQuizHandler(logger, quizSvc, limiter)
	personaHandler := apihttp.NewPersonaHandler(logger, quizSvc)
	adminHandler := apihttp.NewAdminHandler(logger, adminAuth)
	router := apihttp.NewRouter(logger, quizHandler, personaHandler, adminHandler, adminAuth)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
