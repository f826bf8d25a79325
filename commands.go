package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dropscore/config"
	"dropscore/handlers"
	"dropscore/services"
	"dropscore/terminal"
)

const shutdownTimeout = 10 * time.Second

type app struct {
	cfg      *config.Config
	log      *zap.Logger
	registry *prometheus.Registry
	pipeline *services.Pipeline
}

// newApp loads configuration and wires the pipeline. A missing API key stops
// startup here rather than on the first request.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := config.NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	yt, err := services.NewYouTube(ctx, cfg.YouTubeKey, log)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	stopWords := services.LoadStopWords(log, cfg.StopWordsPath)

	return &app{
		cfg:      cfg,
		log:      log,
		registry: reg,
		pipeline: services.NewPipeline(services.PipelineConfig{
			Fetcher:      yt,
			StopWords:    stopWords,
			Metrics:      services.NewMetrics(reg),
			Logger:       log,
			MaxComments:  cfg.MaxComments,
			FetchTimeout: cfg.FetchTimeout,
		}),
	}, nil
}

func newRootCommand() *cobra.Command {
	var port string

	root := &cobra.Command{
		Use:   "dropscore",
		Short: "Comment sentiment and virality dashboard for YouTube videos",
		Long: `DropScore fetches the comments of a YouTube video, scores their sentiment,
extracts keywords and themes and estimates a viral score.

Without a subcommand it starts the web dashboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), port)
		},
	}
	root.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")

	root.AddCommand(newServeCommand(), newAnalyzeCommand())
	return root
}

func newServeCommand() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web dashboard and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	return cmd
}

func newAnalyzeCommand() *cobra.Command {
	var (
		maxComments int
		asJSON      bool
		noColor     bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <url>",
		Short: "Analyze the comments of one video and print a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxComments < 0 {
				return config.ErrNegativeMaxComment
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = a.log.Sync() }()

			report, err := a.pipeline.Run(cmd.Context(), args[0], maxComments)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			return terminal.NewRenderer(noColor).Render(out, report)
		},
	}
	cmd.Flags().IntVar(&maxComments, "max", 0, "maximum comments to fetch (default MAX_COMMENTS)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}

func runServe(ctx context.Context, port string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()

	if port == "" {
		port = a.cfg.Port
	}

	if !a.cfg.LogDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handlers.NewRouter(
		handlers.New(a.pipeline, a.log),
		handlers.RouterConfig{AllowOrigins: a.cfg.AllowOrigins, Gatherer: a.registry},
		a.log,
	)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server starting", zap.String("addr", "http://localhost"+srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

