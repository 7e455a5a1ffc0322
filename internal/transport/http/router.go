package httptransport

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"

	"github.com/aibekm/item-service/internal/auth"
	"github.com/aibekm/item-service/internal/repository"
	"github.com/aibekm/item-service/internal/transport/http/handler"
	"github.com/aibekm/item-service/internal/transport/http/middleware"
)

const requestTimeout = 10 * time.Second

func NewRouter(logger *slog.Logger, authHandler *handler.AuthHandler, itemHandler *handler.ItemHandler, userRepo repository.UserRepository, tokens *auth.TokenService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.Timeout(requestTimeout))

	// Public auth routes
	authGroup := r.Group("/auth")
	authGroup.POST("/signup", authHandler.Signup)
	authGroup.POST("/login", authHandler.Login)

	// Protected item routes
	authMW := middleware.Auth(tokens, logger)
	requireUser := middleware.RequireUser(userRepo, logger)

	items := r.Group("/items", authMW, requireUser)
	items.POST("", itemHandler.Create)
	items.GET("", itemHandler.List)
	items.GET("/:id", itemHandler.GetByID)
	items.PUT("/:id", itemHandler.Update)
	items.DELETE("/:id", itemHandler.Delete)

	return r
}
