package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dialogue-personas/internal/domain"
	"dialogue-personas/internal/quiz"
	"dialogue-personas/internal/repository"
)

var ErrEmptyQuestion = errors.New("question text is required")

// QuizService envuelve el matcher puro con persistencia de resultados y
// estadisticas. El matcher nunca falla con entrada valida; los errores de
// storage se propagan al handler.
type QuizService struct {
	matcher     *quiz.Matcher
	results     repository.QuizResultRepository
	submissions repository.SubmissionRepository
	logger      *zap.Logger
}

func NewQuizService(
	logger *zap.Logger,
	matcher *quiz.Matcher,
	results repository.QuizResultRepository,
	submissions repository.SubmissionRepository,
) *QuizService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuizService{
		matcher:     matcher,
		results:     results,
		submissions: submissions,
		logger:      logger,
	}
}

// Questions expone la tabla de preguntas para el cliente.
func (s *QuizService) Questions() []quiz.Question {
	return s.matcher.Questions()
}

// Artifact expone el artefacto inmutable cargado al inicio.
func (s *QuizService) Artifact() domain.Artifact {
	return s.matcher.Artifact()
}

// Submit matchea la respuesta y persiste el resultado con id propio.
func (s *QuizService) Submit(ctx context.Context, resp domain.QuizResponse) (domain.PersonaAssignment, domain.QuizResult, error) {
	assignment, err := s.matcher.Match(resp)
	if err != nil {
		return domain.PersonaAssignment{}, domain.QuizResult{}, err
	}

	result := domain.QuizResult{
		ID:         uuid.NewString(),
		PersonaID:  assignment.PersonaID,
		Features:   assignment.Features,
		Distance:   assignment.Distance,
		Confidence: assignment.Confidence,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.results.Create(ctx, result); err != nil {
		return domain.PersonaAssignment{}, domain.QuizResult{}, fmt.Errorf("store quiz result: %w", err)
	}

	s.logger.Info("quiz matched",
		zap.String("result_id", result.ID),
		zap.Int("persona_id", result.PersonaID),
		zap.Float64("distance", result.Distance),
	)
	return assignment, result, nil
}

// Result recupera un resultado persistido junto con su perfil de persona.
func (s *QuizService) Result(ctx context.Context, id string) (domain.QuizResult, domain.PersonaProfile, error) {
	result, err := s.results.GetByID(ctx, id)
	if err != nil {
		return domain.QuizResult{}, domain.PersonaProfile{}, err
	}

	persona, ok := s.personaByID(result.PersonaID)
	if !ok {
		return domain.QuizResult{}, domain.PersonaProfile{}, fmt.Errorf("result %s references unknown persona %d", id, result.PersonaID)
	}
	return result, persona, nil
}

// SubmitQuestion guarda una pregunta enviada por un visitante.
func (s *QuizService) SubmitQuestion(ctx context.Context, question, email string) (domain.QuestionSubmission, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return domain.QuestionSubmission{}, ErrEmptyQuestion
	}

	submission := domain.QuestionSubmission{
		ID:        uuid.NewString(),
		Question:  question,
		Email:     strings.TrimSpace(email),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.submissions.Create(ctx, submission); err != nil {
		return domain.QuestionSubmission{}, fmt.Errorf("store question submission: %w", err)
	}
	return submission, nil
}

// QuizStats agrega los contadores en vivo del quiz.
type QuizStats struct {
	TotalQuizTakers     int         `json:"total_quiz_takers"`
	TotalSubmissions    int         `json:"total_submissions"`
	PersonaDistribution map[int]int `json:"persona_distribution"`
}

func (s *QuizService) Stats(ctx context.Context) (QuizStats, error) {
	takers, err := s.results.Count(ctx)
	if err != nil {
		return QuizStats{}, fmt.Errorf("count quiz results: %w", err)
	}
	submissions, err := s.submissions.Count(ctx)
	if err != nil {
		return QuizStats{}, fmt.Errorf("count submissions: %w", err)
	}
	distribution, err := s.results.CountByPersona(ctx)
	if err != nil {
		return QuizStats{}, fmt.Errorf("count per persona: %w", err)
	}
	return QuizStats{
		TotalQuizTakers:     takers,
		TotalSubmissions:    submissions,
		PersonaDistribution: distribution,
	}, nil
}

func (s *QuizService) personaByID(id int) (domain.PersonaProfile, bool) {
	for _, p := range s.matcher.Artifact().Personas {
		if p.ID == id {
			return p, true
		}
	}
	return domain.PersonaProfile{}, false
}
