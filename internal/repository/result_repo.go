package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"dialogue-personas/internal/domain"
)

type QuizResultRepository interface {
	Create(ctx context.Context, result domain.QuizResult) error
	GetByID(ctx context.Context, id string) (domain.QuizResult, error)
	Count(ctx context.Context) (int, error)
	CountByPersona(ctx context.Context) (map[int]int, error)
}

type PgQuizResultRepository struct {
	pool *pgxpool.Pool
}

func NewPgQuizResultRepository(pool *pgxpool.Pool) *PgQuizResultRepository {
	return &PgQuizResultRepository{pool: pool}
}

func (r *PgQuizResultRepository) Create(ctx context.Context, result domain.QuizResult) error {
	const query = `
		INSERT INTO quiz_results (id, persona_id, features, distance, confidence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		result.ID,
		result.PersonaID,
		pgvector.NewVector(result.Features.Float32s()),
		result.Distance,
		result.Confidence,
		result.CreatedAt,
	)
	return err
}

func (r *PgQuizResultRepository) GetByID(ctx context.Context, id string) (domain.QuizResult, error) {
	const query = `
		SELECT id, persona_id, features, distance, confidence, created_at
		FROM quiz_results
		WHERE id = $1
	`

	var result domain.QuizResult
	var features pgvector.Vector
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.PersonaID,
		&features,
		&result.Distance,
		&result.Confidence,
		&result.CreatedAt,
	); err != nil {
		return domain.QuizResult{}, err
	}
	result.Features = featureVectorFromPg(features)
	return result, nil
}

func (r *PgQuizResultRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM quiz_results`).Scan(&count)
	return count, err
}

func (r *PgQuizResultRepository) CountByPersona(ctx context.Context) (map[int]int, error) {
	const query = `
		SELECT persona_id, COUNT(*)
		FROM quiz_results
		GROUP BY persona_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	distribution := make(map[int]int)
	for rows.Next() {
		var personaID, count int
		if err := rows.Scan(&personaID, &count); err != nil {
			return nil, err
		}
		distribution[personaID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return distribution, nil
}

func featureVectorFromPg(v pgvector.Vector) domain.FeatureVector {
	var vals [domain.FeatureDims]float64
	for i, f := range v.Slice() {
		if i >= domain.FeatureDims {
			break
		}
		vals[i] = float64(f)
	}
	return domain.FeatureVectorFromValues(vals)
}
