package main

import (
	"net/http"
	"os"

	"magazine-cms/config"
	"magazine-cms/handlers"
	"magazine-cms/logger"
	"magazine-cms/middleware"
	"magazine-cms/models"
	"magazine-cms/repositories"
	"magazine-cms/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log := logger.New()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}

	// Initialize database
	db := config.InitDB()
	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Article{},
		&models.Comment{},
		&models.CommentView{},
		&models.ArticleRead{},
		&models.Favorite{},
		&models.UserPreference{},
		&models.Setting{},
	); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	interactionRepo := repositories.NewInteractionRepository(db)
	settingRepo := repositories.NewSettingRepository(db)
	prefRepo := repositories.NewPreferenceRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	issueService := services.NewIssueService(settingRepo, prefRepo, log)
	articleService := services.NewArticleService(articleRepo, issueService, log)
	commentService := services.NewCommentService(commentRepo, articleRepo, log)
	interactionService := services.NewInteractionService(interactionRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)
	commentHandler := handlers.NewCommentHandler(commentService)
	issueHandler := handlers.NewIssueHandler(issueService)
	interactionHandler := handlers.NewInteractionHandler(interactionService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public browsing routes. Optional auth so signed-in viewers get
		// their stored issue selection.
		public := v1.Group("/")
		public.Use(middleware.OptionalAuthMiddleware())
		{
			public.GET("/articles", articleHandler.GetArticles)
			public.GET("/articles/:id", articleHandler.GetArticle)
			public.GET("/articles/:id/comments", commentHandler.ListComments)
			public.GET("/issues/current", issueHandler.GetCurrentIssue)
			public.GET("/issues/latest", issueHandler.GetLatestIssue)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)
			protected.PUT("/profile", authHandler.UpdateProfile)

			// Articles
			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
				articles.DELETE("/:id", articleHandler.DeleteArticle)
				articles.POST("/order", articleHandler.ReorderArticles)
				articles.POST("/:id/comments", commentHandler.CreateComment)
				articles.GET("/:id/comments/unseen", commentHandler.GetUnseenCount)
				articles.POST("/:id/comments/views", commentHandler.MarkViewed)
				articles.POST("/:id/read", interactionHandler.MarkRead)
				articles.POST("/:id/favorite", interactionHandler.AddFavorite)
				articles.DELETE("/:id/favorite", interactionHandler.RemoveFavorite)
			}

			protected.DELETE("/comments/:comment_id", commentHandler.DeleteComment)
			protected.GET("/favorites", interactionHandler.ListFavorites)

			// Issue selection
			protected.GET("/preferences/issue", issueHandler.GetIssuePreference)
			protected.PUT("/preferences/issue", issueHandler.SetIssuePreference)
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("Server starting")
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
