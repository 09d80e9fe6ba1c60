package router

import (
	"net/http"

	"novelhub/internal/db"
	"novelhub/internal/handlers"
	"novelhub/internal/logger"
	"novelhub/internal/middleware"
	"novelhub/internal/services"
	"novelhub/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Deps struct {
	Store         *db.Store
	Logger        *zap.Logger
	SessionName   string
	SessionSecret string
	RenderCache   *utils.RenderCache // defaults to the process-wide cache
}

// New builds the engine with logging, recovery, sessions and all routes.
func New(deps Deps) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.RenderCache == nil {
		deps.RenderCache = utils.GetRenderCache()
	}

	r := gin.New()
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(deps.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(deps.SessionName, store))
	r.Use(middleware.LoadUser())

	RegisterRoutes(r, deps)
	return r
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	novelService := services.NewNovelService(deps.Store)
	commentService := services.NewCommentService(deps.Store)
	authService := services.NewAuthService(deps.Store)

	authHandler := handlers.NewAuthHandler(authService, deps.Logger)
	novelHandler := handlers.NewNovelHandler(novelService, deps.RenderCache, deps.Logger)
	voteHandler := handlers.NewVoteHandler(novelService, deps.Logger)
	commentHandler := handlers.NewCommentHandler(commentService, deps.Logger)
	tagHandler := handlers.NewTagHandler(novelService, deps.Logger)

	r.GET("/health", handlers.Health)

	auth := r.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
	}

	// Anonymous visitors may write; the session only supplies a display name.
	api := r.Group("/api")
	{
		api.GET("/feed", novelHandler.Feed)
		api.GET("/tags", tagHandler.ListTags)
		api.GET("/novels", novelHandler.List)
		api.POST("/novels", novelHandler.Create)
		api.GET("/novels/:id", novelHandler.Detail)
		api.POST("/novels/:id/like", voteHandler.Like)
		api.GET("/novels/:id/comments", commentHandler.List)
		api.POST("/novels/:id/comments", commentHandler.Create)
	}
}
