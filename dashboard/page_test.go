package dashboard

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropscore/models"
)

func sampleReport() *models.Report {
	return &models.Report{
		Status:       models.StatusOK,
		VideoID:      "abc123",
		CommentCount: 1200,
		Analysis: &models.AnalysisResult{
			Keywords:            []models.KeywordStat{{Keyword: "edit", Count: 3, AvgSentiment: 0.5}},
			AvgSentiment:        -0.25,
			Lengths:             []int{10, 20, 30},
			TopPositiveComments: []models.ScoredComment{{Score: 0.9, Text: "<b>great</b>"}},
			TopNegativeComments: []models.ScoredComment{},
		},
		Summary:    "Most discussed topics: edit.",
		Themes:     []models.ThemeCount{{Theme: "Editing/Style", Count: 2}},
		Mood:       "😤 Mixed",
		ViralTake:  "Clean edits + fast pacing = dopamine machine 🧠",
		ViralScore: 42,
		TopPhrases: []models.PhraseCount{{Phrase: "clean edit", Count: 2}},
	}
}

func TestRenderIndex(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, RenderIndex(&buf, IndexData{URL: "https://youtu.be/x", Error: "Invalid YouTube URL"}))

	out := buf.String()
	assert.Contains(t, out, `value="https://youtu.be/x"`)
	assert.Contains(t, out, "Invalid YouTube URL")
}

func TestRenderDashboard(t *testing.T) {
	t.Parallel()

	data, err := NewDashboardData("https://youtu.be/abc123", sampleReport())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderDashboard(&buf, data))

	out := buf.String()
	assert.Contains(t, out, "1,200")
	assert.Contains(t, out, "42/100")
	assert.Contains(t, out, "😤 Mixed")
	assert.Contains(t, out, "-0.250")
	assert.Contains(t, out, colorNegative)
	assert.Contains(t, out, "Editing/Style")
	assert.NotContains(t, out, "detect clear comment themes")
	assert.Contains(t, out, "clean edit")
	assert.Contains(t, out, "&lt;b&gt;great&lt;/b&gt;", "comment text is escaped")
	assert.Contains(t, out, "None below the threshold.")
	assert.Contains(t, out, "echarts.init")
}

func TestRenderDashboard_NoComments(t *testing.T) {
	t.Parallel()

	report := &models.Report{Status: models.StatusNoComments, VideoID: "abc123", Message: "No comments found on this video."}
	data, err := NewDashboardData("https://youtu.be/abc123", report)
	require.NoError(t, err)
	assert.Empty(t, data.KeywordChart)

	var buf bytes.Buffer
	require.NoError(t, RenderDashboard(&buf, data))
	assert.Contains(t, buf.String(), "No comments found on this video.")
	assert.NotContains(t, buf.String(), "Viral Factor Score")
}

func TestRenderDashboard_NoThemes(t *testing.T) {
	t.Parallel()

	report := sampleReport()
	report.Themes = nil
	data, err := NewDashboardData("https://youtu.be/abc123", report)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderDashboard(&buf, data))
	assert.Contains(t, buf.String(), "Couldn’t detect clear comment themes.")
}
