package services

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/jonreiter/govader"
	"github.com/kljensen/snowball"
)

// PolarityScorer maps text to a polarity in [-1, 1]; higher is more positive.
type PolarityScorer interface {
	Polarity(text string) float64
}

// Lemmatizer reduces text to the base forms of its content words.
type Lemmatizer interface {
	Lemmas(text string) []string
}

// VaderScorer scores text with the VADER lexicon; Polarity is the compound score.
type VaderScorer struct {
	sia *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{sia: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderScorer) Polarity(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	compound := v.sia.PolarityScores(text).Compound
	return math.Max(-1, math.Min(1, compound))
}

var tokenRe = regexp.MustCompile(`[\p{L}\p{N}]+`)

// SnowballLemmatizer lower-cases and tokenizes text, keeps purely alphabetic
// tokens that are not stop words and reduces them with the English Snowball stemmer.
type SnowballLemmatizer struct {
	stopWords StopWords
}

func NewSnowballLemmatizer(stopWords StopWords) *SnowballLemmatizer {
	if stopWords == nil {
		stopWords = DefaultStopWords()
	}
	return &SnowballLemmatizer{stopWords: stopWords}
}

func (l *SnowballLemmatizer) Lemmas(text string) []string {
	tokens := tokenRe.FindAllString(strings.ToLower(text), -1)

	lemmas := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !isAlpha(tok) || l.stopWords.Contains(tok) {
			continue
		}
		lemma, err := snowball.Stem(tok, "english", true)
		if err != nil || lemma == "" {
			lemma = tok
		}
		lemmas = append(lemmas, lemma)
	}
	return lemmas
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}
