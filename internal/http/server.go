// README: API gateway; builds the gin engine, middleware chain and routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/time/rate"

	"aleoresto/internal/http/handlers"
	"aleoresto/internal/http/middleware"
)

const serviceName = "aleoresto"

type ServerDeps struct {
	Random  handlers.RandomService
	History handlers.HistoryService // optional
	Logger  logrus.FieldLogger

	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
	MetricsEnabled bool
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}
	return &Server{deps: deps}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(handlers.MethodNotAllowed)

	var limiter *rate.Limiter
	if s.deps.RateLimitRPS > 0 && s.deps.RateLimitBurst > 0 {
		limiter = rate.NewLimiter(rate.Limit(s.deps.RateLimitRPS), s.deps.RateLimitBurst)
	}
	r.Use(
		middleware.RequestID(),
		middleware.Logging(s.deps.Logger),
		middleware.Recovery(),
		otelgin.Middleware(serviceName),
		middleware.Metrics(),
	)

	random := handlers.NewRandomHandler(s.deps.Random)
	api := r.Group("/", middleware.RateLimit(limiter))
	api.POST("/api/random", random.Pick)
	api.POST("/.netlify/functions/random", random.Pick)

	if s.deps.History != nil {
		hist := handlers.NewHistoryHandler(s.deps.History)
		api.GET("/api/picks/recent", hist.Recent)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	if s.deps.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	origins := s.deps.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}).Handler(r)
}
