package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pfmo-ng/facility-api/geo"
	"github.com/pfmo-ng/facility-api/logmodule"
	"github.com/pfmo-ng/facility-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.PFMOCore
	mongoStore store.MongoStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// Reverse geocoding of submission GPS fixes
	locationResolver geo.LocationResolver

	// job pool enqueuer
	background *machinery.Server
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	backgroundServer *machinery.Server,
	jwtKey *rsa.PrivateKey,
	locationResolver geo.LocationResolver) *Server {
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	return &Server{
		store:            store.NewPFMOStore(ormDB, mongoStore),
		mongoStore:       mongoStore,
		jwtPrivateKey:    jwtKey,
		locationResolver: locationResolver,
		background:       backgroundServer,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api/v1")
	apiRoute.Use(logmodule.Ginrus("API"))

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/register", s.register)
		authRoute.POST("/login", s.login)
	}

	authRoute.Use(s.authMiddleware())
	authRoute.Use(s.recognizeUserMiddleware())
	{
		authRoute.GET("/me", s.currentUser)
		authRoute.GET("/users", s.adminRequired(), s.listUsers)
		authRoute.DELETE("/users/:userID", s.adminRequired(), s.deleteUser)
	}

	submissionRoute := apiRoute.Group("/submissions")
	submissionRoute.Use(s.authMiddleware())
	submissionRoute.Use(s.recognizeUserMiddleware())
	{
		submissionRoute.POST("", s.submitAssessment)
		submissionRoute.GET("", s.listSubmissions)
		submissionRoute.GET("/:submissionID", s.getSubmission)
		submissionRoute.PATCH("/:submissionID", s.updateSubmission)
		submissionRoute.DELETE("/:submissionID", s.adminRequired(), s.deleteSubmission)
	}

	dashboardRoute := apiRoute.Group("/dashboard")
	dashboardRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	dashboardRoute.Use(s.authMiddleware())
	dashboardRoute.Use(s.recognizeUserMiddleware())
	dashboardRoute.Use(s.adminRequired())
	{
		dashboardRoute.GET("/overview", s.dashboardOverview)
		dashboardRoute.GET("/geographic-data", s.geographicData)
		dashboardRoute.GET("/collectors", s.collectorStats)
		dashboardRoute.GET("/detailed-analytics", s.detailedAnalytics)
	}

	aiRoute := apiRoute.Group("/ai")
	aiRoute.Use(s.authMiddleware())
	aiRoute.Use(s.recognizeUserMiddleware())
	{
		aiRoute.GET("/submission/:submissionID/insights", s.submissionInsights)
		aiRoute.POST("/analyze-text", s.analyzeText)
	}
	aiRoute.Use(s.adminRequired())
	{
		aiRoute.GET("/facilities/at-risk", s.atRiskFacilities)
		aiRoute.GET("/recommendations", s.recommendations)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
