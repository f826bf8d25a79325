package services

import (
	"strings"

	"dropscore/models"
)

type theme struct {
	name     string
	triggers []string
}

var themeTable = []theme{
	{"Camera/Tech", []string{"camera", "lens", "gear", "equipment", "quality"}},
	{"Music/Sound", []string{"music", "song", "audio", "soundtrack", "beat"}},
	{"Emotion", []string{"cry", "goosebumps", "tears", "emotional", "chills"}},
	{"Editing/Style", []string{"edit", "cut", "transition", "color", "effect", "smooth"}},
	{"Hype/Reaction", []string{"fire", "🔥", "lit", "insane", "crazy"}},
}

// ThemeNames lists the fixed themes in table order.
func ThemeNames() []string {
	names := make([]string, len(themeTable))
	for i, t := range themeTable {
		names[i] = t.name
	}
	return names
}

// Cluster counts, per theme, the comments whose lower-cased text contains any of
// the theme's trigger substrings. Themes with no match are omitted.
func Cluster(comments []string) models.ThemeCounts {
	counts := make(models.ThemeCounts)
	for _, c := range comments {
		text := strings.ToLower(c)
		for _, t := range themeTable {
			if containsAny(text, t.triggers) {
				counts[t.name]++
			}
		}
	}
	return counts
}

// OrderedThemes returns counts in theme table order.
func OrderedThemes(counts models.ThemeCounts) []models.ThemeCount {
	out := make([]models.ThemeCount, 0, len(counts))
	for _, t := range themeTable {
		if n := counts[t.name]; n > 0 {
			out = append(out, models.ThemeCount{Theme: t.name, Count: n})
		}
	}
	return out
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
