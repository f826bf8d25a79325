package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"dropscore/models"
)

const NoCommentsMessage = "No comments found on this video."

type PipelineConfig struct {
	Fetcher     CommentFetcher
	Scorer      PolarityScorer
	Lemmatizer  Lemmatizer
	StopWords   StopWords
	Summarizer  *Summarizer
	Metrics     *Metrics
	Logger      *zap.Logger
	MaxComments int
	// FetchTimeout bounds the whole paginated fetch. Zero disables it.
	FetchTimeout time.Duration
}

// Pipeline runs one analysis: URL to video id, fetch, analyze and score.
// Runs share no mutable state apart from the summarizer's random source.
type Pipeline struct {
	fetcher      CommentFetcher
	analyzer     *Analyzer
	lemmatizer   Lemmatizer
	stopWords    StopWords
	summarizer   *Summarizer
	metrics      *Metrics
	log          *zap.Logger
	maxComments  int
	fetchTimeout time.Duration
}

func NewPipeline(cfg PipelineConfig) *Pipeline {
	if cfg.StopWords == nil {
		cfg.StopWords = DefaultStopWords()
	}
	if cfg.Lemmatizer == nil {
		cfg.Lemmatizer = NewSnowballLemmatizer(cfg.StopWords)
	}
	if cfg.Scorer == nil {
		cfg.Scorer = NewVaderScorer()
	}
	if cfg.Summarizer == nil {
		cfg.Summarizer = NewSummarizer(nil)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Pipeline{
		fetcher:      cfg.Fetcher,
		analyzer:     NewAnalyzer(cfg.Scorer, cfg.Lemmatizer),
		lemmatizer:   cfg.Lemmatizer,
		stopWords:    cfg.StopWords,
		summarizer:   cfg.Summarizer,
		metrics:      cfg.Metrics,
		log:          cfg.Logger.Named("pipeline"),
		maxComments:  cfg.MaxComments,
		fetchTimeout: cfg.FetchTimeout,
	}
}

// Run analyzes the comments of the video at rawURL. A non-positive maxComments
// uses the configured default.
//
// Errors are ErrInvalidURL, *FetchError or *AnalysisError. A video without
// comments is not an error: the report has status "no_comments".
func (p *Pipeline) Run(ctx context.Context, rawURL string, maxComments int) (*models.Report, error) {
	if maxComments <= 0 {
		maxComments = p.maxComments
	}

	videoID, ok := ExtractVideoID(rawURL)
	if !ok {
		p.observeRun(OutcomeInvalidURL)
		p.log.Info("invalid url", zap.String("url", rawURL))
		return nil, ErrInvalidURL
	}

	comments, err := p.fetch(ctx, videoID, maxComments)
	if err != nil {
		p.observeRun(OutcomeFetchError)
		p.log.Error("fetch failed", zap.String("video_id", videoID), zap.Error(err))
		return nil, &FetchError{VideoID: videoID, Err: err}
	}

	if len(comments) == 0 {
		p.observeRun(OutcomeNoComments)
		p.log.Info("no comments", zap.String("video_id", videoID))
		return &models.Report{
			Status:  models.StatusNoComments,
			VideoID: videoID,
			Message: NoCommentsMessage,
		}, nil
	}

	report, err := p.analyze(comments)
	if err != nil {
		p.observeRun(OutcomeAnalysisError)
		p.log.Error("analysis failed", zap.String("video_id", videoID), zap.Error(err))
		return nil, &AnalysisError{Err: err}
	}
	report.VideoID = videoID

	p.observeRun(OutcomeOK)
	if p.metrics != nil {
		p.metrics.ViralScore.Observe(float64(report.ViralScore))
	}
	p.log.Info("analysis complete",
		zap.String("video_id", videoID),
		zap.Int("comments", report.CommentCount),
		zap.Int("keywords", len(report.Analysis.Keywords)),
		zap.Int("viral_score", report.ViralScore),
	)

	return report, nil
}

func (p *Pipeline) fetch(ctx context.Context, videoID string, maxComments int) ([]string, error) {
	if p.fetcher == nil {
		return nil, errors.New("no comment fetcher configured")
	}

	if p.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.fetchTimeout)
		defer cancel()
	}

	start := time.Now()
	comments, err := p.fetcher.FetchComments(ctx, videoID, maxComments)
	if p.metrics != nil {
		p.metrics.FetchDuration.Observe(time.Since(start).Seconds())
		if err == nil {
			p.metrics.CommentsFetched.Observe(float64(len(comments)))
		}
	}
	return comments, err
}

// analyze runs every analysis step. A panic in any step becomes an error.
func (p *Pipeline) analyze(comments []string) (report *models.Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			report = nil
			err = fmt.Errorf("%v", r)
		}
	}()

	result, err := p.analyzer.Analyze(comments)
	if err != nil {
		return nil, err
	}

	raw := ViralScore(result.AvgSentiment, len(comments), result.Lengths, len(result.Keywords))

	return &models.Report{
		Status:        models.StatusOK,
		CommentCount:  len(comments),
		Analysis:      result,
		Summary:       p.summarizer.Summarize(comments),
		Themes:        OrderedThemes(Cluster(comments)),
		Mood:          Mood(result.AvgSentiment),
		ViralTake:     ViralTake(result.Keywords, p.lemmatizer),
		ViralScore:    ClampScore(raw),
		ViralScoreRaw: raw,
		TopPhrases:    TopPhrases(comments, p.stopWords),
	}, nil
}

func (p *Pipeline) observeRun(outcome string) {
	if p.metrics != nil {
		p.metrics.Runs.WithLabelValues(outcome).Inc()
	}
}
