package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type RouterConfig struct {
	AllowOrigins string
	Gatherer     prometheus.Gatherer
}

func NewRouter(h *Handler, cfg RouterConfig, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log.Named("http")))

	api := r.Group("/api", CORS(cfg.AllowOrigins))
	api.GET("/health", h.Health)
	api.POST("/analyze", h.Analyze)
	api.OPTIONS("/analyze", func(*gin.Context) {})

	r.GET("/", h.Index)
	r.GET("/dashboard", h.Dashboard)

	if cfg.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	return r
}
