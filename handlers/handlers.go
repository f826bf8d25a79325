package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dropscore/dashboard"
	"dropscore/models"
	"dropscore/services"
)

// Runner runs one analysis for a video URL. *services.Pipeline implements it.
type Runner interface {
	Run(ctx context.Context, rawURL string, maxComments int) (*models.Report, error)
}

type Handler struct {
	runner Runner
	log    *zap.Logger
}

func New(runner Runner, log *zap.Logger) *Handler {
	return &Handler{runner: runner, log: log.Named("http")}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Analyze(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}
	if req.MaxComments < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "max_comments must be >= 0"})
		return
	}

	report, err := h.runner.Run(c.Request.Context(), req.URL, req.MaxComments)
	if err != nil {
		status, msg := errorResponse(err)
		_ = c.Error(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) Index(c *gin.Context) {
	h.renderIndex(c, http.StatusOK, dashboard.IndexData{})
}

func (h *Handler) Dashboard(c *gin.Context) {
	rawURL := strings.TrimSpace(c.Query("url"))
	if rawURL == "" {
		h.renderIndex(c, http.StatusOK, dashboard.IndexData{})
		return
	}

	report, err := h.runner.Run(c.Request.Context(), rawURL, 0)
	if err != nil {
		status, msg := errorResponse(err)
		_ = c.Error(err)
		h.renderIndex(c, status, dashboard.IndexData{URL: rawURL, Error: msg})
		return
	}

	data, err := dashboard.NewDashboardData(rawURL, report)
	if err != nil {
		_ = c.Error(err)
		h.renderIndex(c, http.StatusInternalServerError, dashboard.IndexData{URL: rawURL, Error: "Could not render charts"})
		return
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := dashboard.RenderDashboard(c.Writer, data); err != nil {
		h.log.Error("render dashboard", zap.Error(err))
	}
}

func (h *Handler) renderIndex(c *gin.Context, status int, data dashboard.IndexData) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := dashboard.RenderIndex(c.Writer, data); err != nil {
		h.log.Error("render index", zap.Error(err))
	}
}

// errorResponse maps a pipeline error to an HTTP status and the message shown
// to the user.
func errorResponse(err error) (int, string) {
	var (
		fetchErr    *services.FetchError
		analysisErr *services.AnalysisError
	)

	switch {
	case errors.Is(err, services.ErrInvalidURL):
		return http.StatusBadRequest, "Invalid YouTube URL"
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway, "Failed to fetch comments: " + fetchErr.Err.Error()
	case errors.As(err, &analysisErr):
		return http.StatusInternalServerError, analysisErr.Error()
	default:
		return http.StatusInternalServerError, "Something went wrong: " + err.Error()
	}
}
