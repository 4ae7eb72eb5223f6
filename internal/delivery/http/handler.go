package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/safeglow/backend/internal/domain"
	"github.com/safeglow/backend/internal/usecase"
)

// userContextKey is the gin context key AuthMiddleware stores the user under
const userContextKey = "user"

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recommendations *usecase.RecommendationService
	quiz            *usecase.QuizService
	auth            *usecase.AuthService
}

// NewHandler creates a new HTTP handler. Any service may be nil; its
// endpoints then answer 501.
func NewHandler(
	recommendations *usecase.RecommendationService,
	quiz *usecase.QuizService,
	auth *usecase.AuthService,
) *Handler {
	return &Handler{
		recommendations: recommendations,
		quiz:            quiz,
		auth:            auth,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "safeglow-backend",
		"version": "1.0.0",
	})
}

// RecommendProducts handles GET /products/recommend?skinType=...
func (h *Handler) RecommendProducts(c *gin.Context) {
	if h.recommendations == nil {
		notConfigured(c, "Product recommendations")
		return
	}

	skinType := c.Query("skinType")

	result, err := h.recommendations.Recommend(c.Request.Context(), skinType)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSkinTypeRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "skinType query is required"})
		case errors.Is(err, domain.ErrSearchNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "CSE keys missing"})
		default:
			log.Printf("[Recommend] skinType=%q failed: %v", skinType, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product data"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetQuiz returns the skin type quiz questions
func (h *Handler) GetQuiz(c *gin.Context) {
	if h.quiz == nil {
		notConfigured(c, "Quiz")
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": h.quiz.Questions()})
}

// ScoreQuiz derives a skin type from submitted quiz answers
func (h *Handler) ScoreQuiz(c *gin.Context) {
	if h.quiz == nil {
		notConfigured(c, "Quiz")
		return
	}

	var req domain.QuizScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.quiz.Score(req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIncompleteQuiz):
			c.JSON(http.StatusBadRequest, gin.H{"error": "All quiz questions must be answered"})
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// Register creates an account
func (h *Handler) Register(c *gin.Context) {
	if h.auth == nil {
		notConfigured(c, "Accounts")
		return
	}

	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email & password required"})
		return
	}

	result, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Login exchanges credentials for a token
func (h *Handler) Login(c *gin.Context) {
	if h.auth == nil {
		notConfigured(c, "Accounts")
		return
	}

	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email & password required"})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Me returns the authenticated user. Must run behind AuthMiddleware.
func (h *Handler) Me(c *gin.Context) {
	value, ok := c.Get(userContextKey)
	user, isUser := value.(*domain.User)
	if !ok || !isUser {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}

func (h *Handler) writeAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email & password required"})
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
	default:
		log.Printf("[Auth] request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}

func notConfigured(c *gin.Context, feature string) {
	c.JSON(http.StatusNotImplemented, gin.H{
		"error": feature + " not configured",
	})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header
func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
