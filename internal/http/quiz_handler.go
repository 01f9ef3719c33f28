package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"dialogue-personas/internal/domain"
	"dialogue-personas/internal/quiz"
	"dialogue-personas/internal/service"
)

// QuizHandler mantiene dependencias para los endpoints del quiz.
type QuizHandler struct {
	logger  *zap.Logger
	quizzes *service.QuizService
	limiter service.SubmitRateLimiter
}

// NewQuizHandler crea una instancia de QuizHandler con dependencias necesarias.
func NewQuizHandler(logger *zap.Logger, quizzes *service.QuizService, limiter service.SubmitRateLimiter) *QuizHandler {
	return &QuizHandler{
		logger:  logger,
		quizzes: quizzes,
		limiter: limiter,
	}
}

// ListQuestions maneja GET /api/quiz.
func (h *QuizHandler) ListQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.quizzes.Questions()})
}

// SubmitQuiz maneja POST /api/quiz/submit.
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many submissions"})
		return
	}

	var req struct {
		Answers []domain.QuizAnswer `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid quiz submit request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	assignment, result, err := h.quizzes.Submit(c.Request.Context(), domain.QuizResponse{Answers: req.Answers})
	if err != nil {
		if errors.Is(err, quiz.ErrInvalidResponse) {
			h.logger.Warn("invalid quiz response", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("quiz submit failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process quiz"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result_id":   result.ID,
		"persona":     assignment.Persona,
		"distance":    assignment.Distance,
		"match_score": assignment.Confidence * 100,
	})
}

// GetResult maneja GET /api/result/:id.
func (h *QuizHandler) GetResult(c *gin.Context) {
	id := c.Param("id")

	result, persona, err := h.quizzes.Result(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
			return
		}
		h.logger.Error("get result failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch result"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":  result,
		"persona": persona,
	})
}

// SubmitQuestion maneja POST /api/questions.
func (h *QuizHandler) SubmitQuestion(c *gin.Context) {
	var req struct {
		Question string `json:"question" binding:"required"`
		Email    string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid question submission", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	submission, err := h.quizzes.SubmitQuestion(c.Request.Context(), req.Question, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrEmptyQuestion) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
			return
		}
		h.logger.Error("store question failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not submit question"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"id":     submission.ID,
	})
}

// QuizStats maneja GET /api/quiz/stats.
func (h *QuizHandler) QuizStats(c *gin.Context) {
	stats, err := h.quizzes.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("quiz stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
