package server

import (
	"net/http"

	"fitness-app/db"
	httpHandler "fitness-app/handlers/http"
	"fitness-app/repositories"
	"fitness-app/usecases"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type Server struct {
	app         *gin.Engine
	db          db.Database
	logger      zerolog.Logger
	addr        string
	metricsAddr string
}

func NewServer(database db.Database, logger zerolog.Logger, addr, metricsAddr string) *Server {
	gin.SetMode(gin.ReleaseMode)
	return &Server{
		app:         gin.New(),
		db:          database,
		logger:      logger,
		addr:        addr,
		metricsAddr: metricsAddr,
	}
}

func (s *Server) Start() error {
	s.app.Use(gin.Recovery())
	s.app.Use(requestID())
	s.app.Use(requestLogger(s.logger))

	// Allow all origins for development
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader}
	s.app.Use(cors.New(config))

	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// Initialize repositories
	userRepo := repositories.NewUserDbRepository(s.db)
	activityRepo := repositories.NewActivityDbRepository(s.db)
	biometricRepo := repositories.NewBiometricDbRepository(s.db)
	recipeRepo := repositories.NewRecipeDbRepository(s.db)

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo, biometricRepo)
	activityUseCase := usecases.NewActivityUseCase(activityRepo)
	biometricUseCase := usecases.NewBiometricUseCase(biometricRepo)
	recipeUseCase := usecases.NewRecipeUseCase(recipeRepo, userRepo)

	// Initialize handlers
	loginHandler := httpHandler.NewLoginHandler(userUseCase)
	userHandler := httpHandler.NewUserHandler(userUseCase)
	activityHandler := httpHandler.NewActivityHandler(activityUseCase)
	biometricHandler := httpHandler.NewBiometricHandler(biometricUseCase)
	recipeHandler := httpHandler.NewRecipeHandler(recipeUseCase)

	// Routes live at the root, matching the paths the client calls
	s.app.POST("/login", loginHandler.Login)

	users := s.app.Group("/users")
	{
		users.GET("/:id", userHandler.GetUser)
		users.GET("/:id/latest-weight", userHandler.GetLatestWeight)
	}

	activities := s.app.Group("/activities")
	{
		activities.GET("", activityHandler.GetActivities)
		activities.POST("", activityHandler.CreateActivity)
	}

	biometrics := s.app.Group("/biometrics")
	{
		biometrics.GET("", biometricHandler.GetBiometrics)
		biometrics.POST("", biometricHandler.CreateBiometric)
	}

	s.app.GET("/recipes", recipeHandler.GetRecipes)
	s.app.POST("/generate-recipe", recipeHandler.GenerateRecipe)

	if s.metricsAddr != "" {
		go s.serveMetrics()
	}

	s.logger.Info().Str("addr", s.addr).Msg("server listening")
	return s.app.Run(s.addr)
}

// serveMetrics exposes prometheus metrics on a separate listener so the API
// port stays application-only.
func (s *Server) serveMetrics() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	s.logger.Info().Str("addr", s.metricsAddr).Msg("metrics listening")
	if err := http.ListenAndServe(s.metricsAddr, mux); err != nil {
		s.logger.Error().Err(err).Msg("metrics listener stopped")
	}
}
