package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aibekm/item-service/internal/domain"
	"github.com/aibekm/item-service/internal/metrics"
	"github.com/aibekm/item-service/internal/usecase"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Signup(ctx context.Context, input usecase.SignupInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type AuthHandler struct {
	authUsecase authUsecaser
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_handler"),
	}
}

type signupRequest struct {
	Email         string  `json:"email"          binding:"required,email"`
	Password      string  `json:"password"       binding:"required,min=8,max=72"`
	FirstName     string  `json:"first_name"     binding:"required,max=100"`
	MiddleName    *string `json:"middle_name"    binding:"omitempty,max=100"`
	LastName      string  `json:"last_name"      binding:"required,max=100"`
	ContactNumber string  `json:"contact_number" binding:"required,numeric,len=10"`
	UserType      string  `json:"user_type"      binding:"required,max=50"`
	HomeNumber    string  `json:"home_number"    binding:"required,max=50"`
	AddressLine1  string  `json:"address_line1"  binding:"required,max=200"`
	AddressLine2  *string `json:"address_line2"  binding:"omitempty,max=200"`
	PinCode       string  `json:"pin_code"       binding:"required,numeric,len=6"`
	City          string  `json:"city"           binding:"required,max=100"`
	State         string  `json:"state"          binding:"required,max=100"`
	Expertise     *string `json:"expertise"      binding:"omitempty,max=200"`
	Experience    *string `json:"experience"     binding:"omitempty,max=200"`
}

// userResponse deliberately has no field for the password hash.
type userResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	MiddleName    *string   `json:"middle_name,omitempty"`
	LastName      string    `json:"last_name"`
	ContactNumber string    `json:"contact_number"`
	UserType      string    `json:"user_type"`
	HomeNumber    string    `json:"home_number"`
	AddressLine1  string    `json:"address_line1"`
	AddressLine2  *string   `json:"address_line2,omitempty"`
	PinCode       string    `json:"pin_code"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Expertise     *string   `json:"expertise,omitempty"`
	Experience    *string   `json:"experience,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		MiddleName:    u.MiddleName,
		LastName:      u.LastName,
		ContactNumber: u.ContactNumber,
		UserType:      u.UserType,
		HomeNumber:    u.HomeNumber,
		AddressLine1:  u.AddressLine1,
		AddressLine2:  u.AddressLine2,
		PinCode:       u.PinCode,
		City:          u.City,
		State:         u.State,
		Expertise:     u.Expertise,
		Experience:    u.Experience,
		CreatedAt:     u.CreatedAt,
	}
}

// POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authUsecase.Signup(c.Request.Context(), usecase.SignupInput{
		Email:         req.Email,
		Password:      req.Password,
		FirstName:     req.FirstName,
		MiddleName:    req.MiddleName,
		LastName:      req.LastName,
		ContactNumber: req.ContactNumber,
		UserType:      req.UserType,
		HomeNumber:    req.HomeNumber,
		AddressLine1:  req.AddressLine1,
		AddressLine2:  req.AddressLine2,
		PinCode:       req.PinCode,
		City:          req.City,
		State:         req.State,
		Expertise:     req.Expertise,
		Experience:    req.Experience,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": errEmailTaken})
		case errors.Is(err, context.DeadlineExceeded):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": errServiceUnavailable})
		default:
			h.logger.Error("signup", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	metrics.SignupsTotal.Inc()
	c.JSON(http.StatusOK, toUserResponse(user))
}

type loginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// POST /auth/login
// Unknown email and wrong password produce the same response, so the
// endpoint cannot be used to enumerate accounts.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidCredentials})
		case errors.Is(err, context.DeadlineExceeded):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": errServiceUnavailable})
		default:
			h.logger.Error("login", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, loginResponse{AccessToken: token, TokenType: "bearer"})
}
