package services

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"dropscore/models"
)

const (
	lengthSpreadThreshold = 40
	lengthSpreadBoost     = 0.1

	topPhraseLimit = 5
)

// ViralScore combines average sentiment, comment volume, keyword diversity and
// length spread into a score that is nominally 0-100. It is not clamped: strongly
// negative sentiment yields values below zero. Use ClampScore for display.
func ViralScore(avgSentiment float64, commentCount int, lengths []int, keywordCount int) int {
	base := avgSentiment*0.4 +
		math.Min(1, float64(commentCount)/100)*0.3 +
		math.Min(1, float64(keywordCount)/20)*0.3

	boost := 0.0
	if sampleStdDev(lengths) > lengthSpreadThreshold {
		boost = lengthSpreadBoost
	}
	return int(math.RoundToEven((base + boost) * 100))
}

func ClampScore(score int) int {
	return max(0, min(100, score))
}

// sampleStdDev is the n-1 standard deviation, 0 for fewer than two values.
func sampleStdDev(values []int) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	mean := sum / float64(n)

	var sq float64
	for _, v := range values {
		d := float64(v) - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(n-1))
}

// Mood labels an average sentiment.
func Mood(avgSentiment float64) string {
	switch {
	case avgSentiment > 0.5:
		return "🔥 Hype"
	case avgSentiment > 0.1:
		return "😄 Positive"
	case avgSentiment > -0.1:
		return "😐 Neutral"
	case avgSentiment > -0.5:
		return "😤 Mixed"
	default:
		return "💀 Brutal"
	}
}

var viralTakes = []struct {
	trigger string
	take    string
}{
	{"dog", "People go crazy for dogs doing literally anything 🐶"},
	{"edit", "Clean edits + fast pacing = dopamine machine 🧠"},
	{"cry", "Emotional rollercoaster = instant shareability 😭"},
}

const (
	takeLoved   = "Everyone’s loving this. Pure serotonin drip 🔥"
	takeDefault = "Probably hits the sweet spot between funny, fast, and feels."
)

// ViralTake picks a one-liner from the extracted keywords. Trigger words are
// normalized with lem so they compare against keywords in the same form.
func ViralTake(keywords []models.KeywordStat, lem Lemmatizer) string {
	present := make(map[string]struct{}, len(keywords))
	var sentimentSum float64
	for _, k := range keywords {
		present[k.Keyword] = struct{}{}
		sentimentSum += k.AvgSentiment
	}

	for _, vt := range viralTakes {
		forms := lem.Lemmas(vt.trigger)
		if len(forms) == 0 {
			forms = []string{vt.trigger}
		}
		if _, ok := present[forms[0]]; ok {
			return vt.take
		}
	}

	if len(keywords) > 0 && sentimentSum/float64(len(keywords)) > 0.5 {
		return takeLoved
	}
	return takeDefault
}

var phraseTokenRe = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// TopPhrases counts two-word phrases across comments after dropping stop words
// and returns the five most frequent. Ties are alphabetical.
func TopPhrases(comments []string, stopWords StopWords) []models.PhraseCount {
	counts := make(map[string]int)
	for _, c := range comments {
		var tokens []string
		for _, tok := range phraseTokenRe.FindAllString(strings.ToLower(c), -1) {
			if !stopWords.Contains(tok) {
				tokens = append(tokens, tok)
			}
		}
		for i := 0; i+1 < len(tokens); i++ {
			counts[tokens[i]+" "+tokens[i+1]]++
		}
	}

	phrases := make([]models.PhraseCount, 0, len(counts))
	for p, n := range counts {
		phrases = append(phrases, models.PhraseCount{Phrase: p, Count: n})
	}
	sort.Slice(phrases, func(i, j int) bool {
		if phrases[i].Count != phrases[j].Count {
			return phrases[i].Count > phrases[j].Count
		}
		return phrases[i].Phrase < phrases[j].Phrase
	})

	if len(phrases) > topPhraseLimit {
		phrases = phrases[:topPhraseLimit]
	}
	return phrases
}
