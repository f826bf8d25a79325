package services

import (
	"errors"
	"math"
	"sort"
	"unicode/utf8"

	"dropscore/models"
)

// Polarity thresholds for the top comment lists.
const (
	PositiveThreshold = 0.4
	NegativeThreshold = -0.3

	topCommentsLimit = 3
)

var ErrNoComments = errors.New("no comments to analyze")

type Analyzer struct {
	scorer     PolarityScorer
	lemmatizer Lemmatizer
}

func NewAnalyzer(scorer PolarityScorer, lemmatizer Lemmatizer) *Analyzer {
	return &Analyzer{scorer: scorer, lemmatizer: lemmatizer}
}

type keywordAcc struct {
	count        int
	sentimentSum float64
}

// Analyze scores every comment, aggregates keyword statistics and ranks the most
// positive and negative comments. It returns ErrNoComments for empty input.
func (a *Analyzer) Analyze(comments []string) (*models.AnalysisResult, error) {
	if len(comments) == 0 {
		return nil, ErrNoComments
	}

	stats := make(map[string]*keywordAcc)
	order := make([]string, 0)
	lengths := make([]int, 0, len(comments))
	var positive, negative []models.ScoredComment
	var sentimentSum float64

	for _, comment := range comments {
		sentiment := math.Max(-1, math.Min(1, a.scorer.Polarity(comment)))
		sentimentSum += sentiment
		lengths = append(lengths, utf8.RuneCountInString(comment))

		if sentiment > PositiveThreshold {
			positive = append(positive, models.ScoredComment{Score: sentiment, Text: comment})
		} else if sentiment < NegativeThreshold {
			negative = append(negative, models.ScoredComment{Score: sentiment, Text: comment})
		}

		for _, kw := range a.lemmatizer.Lemmas(comment) {
			acc, ok := stats[kw]
			if !ok {
				acc = &keywordAcc{}
				stats[kw] = acc
				order = append(order, kw)
			}
			acc.count++
			acc.sentimentSum += sentiment
		}
	}

	keywords := make([]models.KeywordStat, 0, len(order))
	for _, kw := range order {
		acc := stats[kw]
		keywords = append(keywords, models.KeywordStat{
			Keyword:      kw,
			Count:        acc.count,
			AvgSentiment: round3(acc.sentimentSum / float64(acc.count)),
		})
	}

	// Stable so that full ties keep first-seen order.
	sort.SliceStable(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].AvgSentiment > keywords[j].AvgSentiment
	})

	// Rank the whole candidate list before truncating.
	sort.SliceStable(positive, func(i, j int) bool {
		if positive[i].Score != positive[j].Score {
			return positive[i].Score > positive[j].Score
		}
		return positive[i].Text > positive[j].Text
	})
	sort.SliceStable(negative, func(i, j int) bool {
		if negative[i].Score != negative[j].Score {
			return negative[i].Score < negative[j].Score
		}
		return negative[i].Text < negative[j].Text
	})

	return &models.AnalysisResult{
		Keywords:            keywords,
		AvgSentiment:        round3(sentimentSum / float64(len(comments))),
		Lengths:             lengths,
		TopPositiveComments: truncate(positive, topCommentsLimit),
		TopNegativeComments: truncate(negative, topCommentsLimit),
	}, nil
}

func truncate(list []models.ScoredComment, n int) []models.ScoredComment {
	if list == nil {
		return []models.ScoredComment{}
	}
	if len(list) > n {
		return list[:n]
	}
	return list
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
