package services

import (
	_ "embed"
	"encoding/json"
	"os"
	"strings"

	"go.uber.org/zap"
)

//go:embed data/stopwords-en.json
var defaultStopWordsJSON []byte

// StopWords is a set of lower-cased words excluded from keyword extraction.
type StopWords map[string]struct{}

func (s StopWords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// DefaultStopWords returns the embedded English stop-word list.
func DefaultStopWords() StopWords {
	sw := make(StopWords)
	var words []string
	if err := json.Unmarshal(defaultStopWordsJSON, &words); err != nil {
		panic("embedded stop words: " + err.Error())
	}
	sw.add(words)
	return sw
}

// LoadStopWords merges JSON word lists from paths into the default list.
// Unreadable or malformed files are logged and skipped.
func LoadStopWords(log *zap.Logger, paths ...string) StopWords {
	log = log.Named("stopwords")
	sw := DefaultStopWords()

	for _, path := range paths {
		if path == "" {
			continue
		}
		count := sw.loadOneFile(log, path)
		log.Info("loaded stop words", zap.String("path", path), zap.Int("count", count))
	}

	log.Info("stop words ready", zap.Int("total", len(sw)))
	return sw
}

func (s StopWords) loadOneFile(log *zap.Logger, path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("could not read stop words", zap.String("path", path), zap.Error(err))
		return 0
	}

	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		log.Warn("could not parse stop words", zap.String("path", path), zap.Error(err))
		return 0
	}

	return s.add(words)
}

func (s StopWords) add(words []string) int {
	count := 0
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s[w] = struct{}{}
			count++
		}
	}
	return count
}
