package router

import (
	"net/http"
	"time"

	"github.com/phanduy2004/english-for-community/internal/config"
	"github.com/phanduy2004/english-for-community/internal/handlers"
	"github.com/phanduy2004/english-for-community/internal/services"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Try again later."})
}

func Setup(log *zap.Logger, tracker *services.Tracker) *gin.Engine {
	// Set up a new Gin router, add recovery middleware and request logging.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	store := cookie.NewStore([]byte(config.Conf.Server.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 7,
	})
	router.Use(sessions.Sessions("efc_session", store))

	router.Use(CSRFProtection())
	router.Use(UserLoaderMiddleware())

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
	})

	// Handlers
	authHandler := handlers.NewAuthHandler(log)
	userHandler := handlers.NewUserHandler(log)
	dictationHandler := handlers.NewDictationHandler(log, tracker)
	speakingHandler := handlers.NewSpeakingHandler(log, tracker)
	readingHandler := handlers.NewReadingHandler(log, tracker)
	writingHandler := handlers.NewWritingHandler(log, tracker)
	vocabHandler := handlers.NewVocabHandler(log, tracker)
	progressHandler := handlers.NewProgressHandler(log)
	chartsHandler := handlers.NewChartsHandler(log)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: errorHandler,
		KeyFunc:      keyFunc,
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	api.GET("/csrf", func(c *gin.Context) {
		token := c.MustGet(csrfTokenContextKey).(string)
		c.JSON(http.StatusOK, gin.H{"csrfToken": token})
	})

	api.POST("/auth/register", limiter, authHandler.Register)
	api.POST("/auth/login", limiter, authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	authorized := api.Group("/")
	authorized.Use(AuthRequired())
	{
		authorized.GET("/me", userHandler.GetProfile)
		authorized.PUT("/me", userHandler.UpdateProfile)
		authorized.PUT("/me/settings", userHandler.UpdateSettings)
		authorized.PUT("/me/password", userHandler.ChangePassword)

		authorized.GET("/listenings", dictationHandler.ListListenings)
		authorized.GET("/listenings/:id", dictationHandler.GetListening)
		authorized.GET("/listenings/:id/attempts", dictationHandler.GetAttempts)
		authorized.POST("/dictation/submit", dictationHandler.SubmitCue)

		authorized.GET("/speaking-sets/:id", speakingHandler.GetSet)
		authorized.GET("/speaking-sets/:id/attempts", speakingHandler.GetAttempts)
		authorized.POST("/speaking/submit", speakingHandler.SubmitSentence)

		authorized.GET("/readings/:id", readingHandler.GetReading)
		authorized.GET("/readings/:id/attempts", readingHandler.GetAttempts)
		authorized.POST("/reading/submit", readingHandler.SubmitAttempt)

		authorized.GET("/writing-topics/:id", writingHandler.GetTopic)
		authorized.POST("/writing/submit", writingHandler.SubmitEssay)

		authorized.GET("/vocab", vocabHandler.List)
		authorized.POST("/vocab", vocabHandler.Create)
		authorized.POST("/vocab/:id/review", vocabHandler.Review)
		authorized.DELETE("/vocab/:id", vocabHandler.Delete)

		authorized.GET("/progress/daily", progressHandler.GetDaily)
		authorized.GET("/progress/history", progressHandler.GetHistory)
		authorized.GET("/progress/overview", progressHandler.GetOverview)
		authorized.GET("/progress/chart", chartsHandler.GetTimeline)
	}

	return router
}
