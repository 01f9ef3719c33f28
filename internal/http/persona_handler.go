package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dialogue-personas/internal/service"
)

// PersonaHandler expone el artefacto de personas y el dashboard de analytics.
type PersonaHandler struct {
	logger  *zap.Logger
	quizzes *service.QuizService
}

func NewPersonaHandler(logger *zap.Logger, quizzes *service.QuizService) *PersonaHandler {
	return &PersonaHandler{
		logger:  logger,
		quizzes: quizzes,
	}
}

// ListPersonas maneja GET /api/personas.
func (h *PersonaHandler) ListPersonas(c *gin.Context) {
	art := h.quizzes.Artifact()
	c.JSON(http.StatusOK, gin.H{
		"personas":           art.Personas,
		"feature_importance": art.FeatureGlossary,
		"total_participants": art.TotalParticipants,
	})
}

// Analytics maneja GET /api/analytics (requiere token de administrador).
func (h *PersonaHandler) Analytics(c *gin.Context) {
	stats, err := h.quizzes.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("analytics stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch analytics"})
		return
	}

	art := h.quizzes.Artifact()
	c.JSON(http.StatusOK, gin.H{
		"total_participants":   art.TotalParticipants,
		"k":                    art.K,
		"silhouette":           art.Silhouette,
		"artifact_created_at":  art.CreatedAt,
		"personas":             art.Personas,
		"total_quiz_takers":    stats.TotalQuizTakers,
		"total_submissions":    stats.TotalSubmissions,
		"persona_distribution": stats.PersonaDistribution,
	})
}
