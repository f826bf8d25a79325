package services

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const (
	SummaryEmpty   = "No comments to summarize."
	SummaryGeneric = "Comments were too generic or scattered to summarize meaningfully."

	summaryTopWords  = 10
	mainTopicMinimum = 2
)

// Unicode separators such as U+00A0 are kept so strings.Fields splits on them.
var summaryPunctRe = regexp.MustCompile(`[^\p{L}\p{N}_\s\p{Z}]`)

var summaryStopWords = map[string]struct{}{
	"the": {}, "and": {}, "you": {}, "this": {}, "that": {}, "for": {}, "are": {},
	"was": {}, "with": {}, "have": {}, "just": {}, "like": {}, "your": {}, "what": {},
	"how": {}, "can": {}, "its": {}, "not": {}, "but": {}, "too": {}, "very": {},
	"out": {}, "who": {}, "why": {}, "had": {}, "they": {}, "she": {}, "he": {},
	"his": {}, "her": {}, "them": {}, "then": {}, "than": {},
}

// sentimentVocabulary is checked in this order.
var sentimentVocabulary = []string{
	"love", "amazing", "awesome", "funny", "sad", "boring", "emotional", "vibe",
}

var summaryTemplates = []struct {
	format string
	emoji  []string
}{
	{"The comments are emotionally charged %s, and words like %s stood out.", []string{"🔥", "😭", "😄"}},
	{"Emotional vibes detected %s. Common reactions included %s.", []string{"💥", "❤️", "😤"}},
}

// Summarizer builds a short blurb from word frequencies. Template and emoji
// choice come from its random source.
type Summarizer struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSummarizer(rnd *rand.Rand) *Summarizer {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Summarizer{rnd: rnd}
}

func (s *Summarizer) Summarize(comments []string) string {
	if len(comments) == 0 {
		return SummaryEmpty
	}

	var words []string
	for _, c := range comments {
		words = append(words, strings.Fields(summaryPunctRe.ReplaceAllString(strings.ToLower(c), ""))...)
	}

	raw := make(map[string]int, len(words))
	for _, w := range words {
		raw[w]++
	}

	var found []string
	for _, w := range sentimentVocabulary {
		if raw[w] > 0 {
			found = append(found, w)
		}
	}

	var parts []string
	if len(found) > 0 {
		parts = append(parts, s.sentimentSentence(found))
	}
	if topics := mainTopics(words); len(topics) > 0 {
		parts = append(parts, fmt.Sprintf("Most discussed topics: %s.", strings.Join(topics, ", ")))
	}

	if len(parts) == 0 {
		return SummaryGeneric
	}
	return strings.Join(parts, "\n\n")
}

func (s *Summarizer) sentimentSentence(found []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	emojiIdx := s.rnd.Intn(3)
	tpl := summaryTemplates[s.rnd.Intn(len(summaryTemplates))]
	return fmt.Sprintf(tpl.format, tpl.emoji[emojiIdx%len(tpl.emoji)], strings.Join(found, ", "))
}

// mainTopics returns the words among the ten most frequent that occur at least
// twice. Ties keep first-seen order.
func mainTopics(words []string) []string {
	counts := make(map[string]int)
	var order []string
	for _, w := range words {
		if _, stop := summaryStopWords[w]; stop || utf8.RuneCountInString(w) <= 2 {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool { return counts[ranked[i]] > counts[ranked[j]] })
	if len(ranked) > summaryTopWords {
		ranked = ranked[:summaryTopWords]
	}

	var topics []string
	for _, w := range ranked {
		if counts[w] >= mainTopicMinimum {
			topics = append(topics, w)
		}
	}
	return topics
}
