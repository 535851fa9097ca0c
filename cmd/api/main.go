package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"cinelog/internal/config"
	"cinelog/internal/database"
	"cinelog/internal/logger"
	"cinelog/internal/middleware"
	"cinelog/internal/modules/auth"
	"cinelog/internal/modules/catalog"
	"cinelog/internal/modules/collection"
	"cinelog/internal/modules/favorite"
	"cinelog/internal/modules/review"
	jwtsvc "cinelog/internal/pkg/jwt"
	"cinelog/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	logger.Init()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(movieRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	favoriteService := favorite.NewService(favoriteRepo, catalogService)
	favoriteHandler := favorite.NewHandler(favoriteService)

	collectionService := collection.NewService(collectionRepo, catalogService)
	collectionHandler := collection.NewHandler(collectionService)

	reviewService := review.NewService(reviewRepo, catalogService)
	reviewHandler := review.NewHandler(reviewService)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	api := r.Group("/api")
	{
		// public
		authPublic := api.Group("")
		authPublic.Use(middleware.RateLimit(cfg.AuthRateRPS, cfg.AuthRateBurst))
		authHandler.RegisterPublicRoutes(authPublic)

		authHandler.RegisterProfileRoutes(api)
		catalogHandler.RegisterRoutes(api)
		reviewHandler.RegisterRoutes(api, nil)

		// protected
		protected := api.Group("")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			favoriteHandler.RegisterRoutes(protected)
			collectionHandler.RegisterRoutes(protected)
			reviewHandler.RegisterRoutes(nil, protected)
		}
	}

	logger.Get().WithField("port", cfg.Port).Info("starting api")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
