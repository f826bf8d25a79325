package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// maxPageSize is the largest maxResults the commentThreads endpoint accepts.
const maxPageSize = 100

var ErrEmptyVideoID = errors.New("video id is empty")

// CommentFetcher returns up to maxCount top-level comment texts for a video, in
// the order the platform returns them.
type CommentFetcher interface {
	FetchComments(ctx context.Context, videoID string, maxCount int) ([]string, error)
}

type YouTube struct {
	svc *youtube.Service
	log *zap.Logger
}

// NewYouTube builds a Data API v3 client. An empty apiKey leaves authentication to
// opts (tests pass option.WithHTTPClient and option.WithEndpoint).
func NewYouTube(ctx context.Context, apiKey string, log *zap.Logger, opts ...option.ClientOption) (*YouTube, error) {
	if apiKey != "" {
		opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	}

	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("youtube client: %w", err)
	}

	return &YouTube{svc: svc, log: log.Named("youtube")}, nil
}

func (y *YouTube) FetchComments(ctx context.Context, videoID string, maxCount int) ([]string, error) {
	if videoID == "" {
		return nil, ErrEmptyVideoID
	}
	if maxCount <= 0 {
		return []string{}, nil
	}

	comments := make([]string, 0, min(maxCount, maxPageSize))
	pageToken := ""
	page := 1

	for len(comments) < maxCount {
		call := y.svc.CommentThreads.List([]string{"snippet"}).
			VideoId(videoID).
			MaxResults(int64(min(maxPageSize, maxCount-len(comments)))).
			TextFormat("html").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("youtube commentThreads.list page %d: %w", page, err)
		}

		for _, item := range resp.Items {
			if item.Snippet == nil || item.Snippet.TopLevelComment == nil || item.Snippet.TopLevelComment.Snippet == nil {
				continue
			}
			comments = append(comments, PlainText(item.Snippet.TopLevelComment.Snippet.TextDisplay))
		}

		y.log.Debug("fetched comment page",
			zap.String("video_id", videoID),
			zap.Int("page", page),
			zap.Int("items", len(resp.Items)),
			zap.Int("total", len(comments)),
		)

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
		page++
	}

	if len(comments) > maxCount {
		comments = comments[:maxCount]
	}

	y.log.Info("comments fetched",
		zap.String("video_id", videoID),
		zap.Int("count", len(comments)),
		zap.Int("pages", page),
	)

	return comments, nil
}
