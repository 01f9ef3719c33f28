package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dialogue-personas/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	quizH *QuizHandler,
	personaH *PersonaHandler,
	adminH *AdminHandler,
	auth *service.AdminAuthService,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/personas", personaH.ListPersonas)
	api.GET("/quiz", quizH.ListQuestions)
	api.POST("/quiz/submit", quizH.SubmitQuiz)
	api.GET("/result/:id", quizH.GetResult)
	api.POST("/questions", quizH.SubmitQuestion)
	api.GET("/quiz/stats", quizH.QuizStats)

	r.POST("/auth/login", adminH.Login)

	protected := api.Group("")
	protected.Use(AdminAuthMiddleware(auth))
	protected.GET("/analytics", personaH.Analytics)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
