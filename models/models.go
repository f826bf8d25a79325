package models

// KeywordStat aggregates one normalized keyword across all comments of a run.
type KeywordStat struct {
	Keyword      string  `json:"keyword"`
	Count        int     `json:"count"`
	AvgSentiment float64 `json:"avg_sentiment"`
}

// ScoredComment is a comment paired with its polarity.
type ScoredComment struct {
	Score float64 `json:"score"`
	Text  string  `json:"text"`
}

type AnalysisResult struct {
	Keywords            []KeywordStat   `json:"keywords"`
	AvgSentiment        float64         `json:"avg_sentiment"`
	Lengths             []int           `json:"lengths"`
	TopPositiveComments []ScoredComment `json:"top_positive_comments"`
	TopNegativeComments []ScoredComment `json:"top_negative_comments"`
}

// ThemeCounts maps a theme name to the number of comments that mention it.
type ThemeCounts map[string]int

// ThemeCount is one entry of ThemeCounts in display order.
type ThemeCount struct {
	Theme string `json:"theme"`
	Count int    `json:"count"`
}

type PhraseCount struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

type AnalysisRequest struct {
	URL         string `json:"url"`
	MaxComments int    `json:"max_comments"`
}

// Report statuses.
const (
	StatusOK         = "ok"
	StatusNoComments = "no_comments"
)

type Report struct {
	Status        string          `json:"status"`
	VideoID       string          `json:"video_id"`
	CommentCount  int             `json:"comment_count"`
	Message       string          `json:"message,omitempty"`
	Analysis      *AnalysisResult `json:"analysis,omitempty"`
	Summary       string          `json:"summary,omitempty"`
	Themes        []ThemeCount    `json:"themes,omitempty"`
	Mood          string          `json:"mood,omitempty"`
	ViralTake     string          `json:"viral_take,omitempty"`
	ViralScore    int             `json:"viral_score"`
	ViralScoreRaw int             `json:"viral_score_raw"`
	TopPhrases    []PhraseCount   `json:"top_phrases,omitempty"`
}
