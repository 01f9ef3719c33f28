package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"dialogue-personas/internal/domain"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission domain.QuestionSubmission) error
	Count(ctx context.Context) (int, error)
}

type PgSubmissionRepository struct {
	pool *pgxpool.Pool
}

func NewPgSubmissionRepository(pool *pgxpool.Pool) *PgSubmissionRepository {
	return &PgSubmissionRepository{pool: pool}
}

func (r *PgSubmissionRepository) Create(ctx context.Context, submission domain.QuestionSubmission) error {
	const query = `
		INSERT INTO question_submissions (id, question, email, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query,
		submission.ID,
		submission.Question,
		submission.Email,
		submission.CreatedAt,
	)
	return err
}

func (r *PgSubmissionRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM question_submissions`).Scan(&count)
	return count, err
}
