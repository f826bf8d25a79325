package services

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// zeroSource makes every Intn call return 0.
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64)   {}

func TestSummarizer_Empty(t *testing.T) {
	t.Parallel()

	s := NewSummarizer(nil)
	assert.Equal(t, "No comments to summarize.", s.Summarize(nil))
	assert.Equal(t, SummaryEmpty, s.Summarize([]string{}))
}

func TestSummarizer_TooGeneric(t *testing.T) {
	t.Parallel()

	s := NewSummarizer(nil)
	assert.Equal(t, SummaryGeneric, s.Summarize([]string{"ok ok", "hmm", "the the the"}))
}

func TestSummarizer_SentimentWords(t *testing.T) {
	t.Parallel()

	s := NewSummarizer(rand.New(zeroSource{}))
	got := s.Summarize([]string{"I love this, so emotional"})

	assert.Equal(t, "The comments are emotionally charged 🔥, and words like love, emotional stood out.", got)
}

func TestSummarizer_MainTopics(t *testing.T) {
	t.Parallel()

	s := NewSummarizer(nil)
	got := s.Summarize([]string{"great edit great music", "Great edit!!"})

	assert.Equal(t, "Most discussed topics: great, edit.", got)
}

func TestSummarizer_TopicsLimitedToTopTen(t *testing.T) {
	t.Parallel()

	comments := []string{
		"alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo",
		"alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo",
	}
	got := NewSummarizer(nil).Summarize(comments)

	assert.Equal(t, "Most discussed topics: alpha, bravo, charlie, delta, echo, foxtrot, golf, hotel, india, juliet.", got)
}

func TestSummarizer_BothParts(t *testing.T) {
	t.Parallel()

	s := NewSummarizer(rand.New(zeroSource{}))
	got := s.Summarize([]string{"funny dog", "such a funny dog"})

	assert.Equal(t,
		"The comments are emotionally charged 🔥, and words like funny stood out.\n\nMost discussed topics: funny, dog.",
		got)
}

func TestSummarizer_RandomShape(t *testing.T) {
	t.Parallel()

	shape := regexp.MustCompile(`^(The comments are emotionally charged (🔥|😭|😄), and words like amazing, vibe stood out\.|Emotional vibes detected (💥|❤️|😤)\. Common reactions included amazing, vibe\.)$`)

	s := NewSummarizer(rand.New(rand.NewSource(42)))
	for range 20 {
		assert.Regexp(t, shape, s.Summarize([]string{"amazing vibe"}))
	}
}

func TestSummarizer_SplitsOnNonBreakingSpace(t *testing.T) {
	t.Parallel()

	s := NewSummarizer(rand.New(zeroSource{}))
	got := s.Summarize([]string{PlainText("amazing&nbsp;vibe")})

	assert.Equal(t, "The comments are emotionally charged 🔥, and words like amazing, vibe stood out.", got)
}

func TestSummarizer_UnicodeSeparatorsSplitTopics(t *testing.T) {
	t.Parallel()

	got := NewSummarizer(nil).Summarize([]string{"drone\u00a0shot", "drone\u2009shot"})
	assert.Equal(t, "Most discussed topics: drone, shot.", got)
}
