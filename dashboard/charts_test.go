package dashboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropscore/models"
)

func TestHistogram(t *testing.T) {
	t.Parallel()

	bins := Histogram([]int{0, 5, 10, 95, 100}, 10)
	require.Len(t, bins, 10)

	assert.Equal(t, HistogramBin{Min: 0, Max: 10, Count: 2}, bins[0])
	assert.Equal(t, 1, bins[1].Count)
	assert.Equal(t, 2, bins[9].Count, "maximum falls in the last bin")

	total := 0
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, 5, total)
}

func TestHistogram_SingleValue(t *testing.T) {
	t.Parallel()

	bins := Histogram([]int{42, 42, 42}, 10)
	require.Len(t, bins, 10)
	assert.InDelta(t, 41.5, bins[0].Min, 1e-9)
	assert.InDelta(t, 42.5, bins[9].Max, 1e-9)
	assert.Equal(t, 3, bins[5].Count)
}

func TestHistogram_Empty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Histogram(nil, 10))
	assert.Nil(t, Histogram([]int{1}, 0))
}

func TestSentimentColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, colorPositive, SentimentColor(0))
	assert.Equal(t, colorPositive, SentimentColor(0.7))
	assert.Equal(t, colorNegative, SentimentColor(-0.01))
}

func TestFragment(t *testing.T) {
	t.Parallel()

	keywords := make([]models.KeywordStat, 0, 15)
	for i := range 15 {
		keywords = append(keywords, models.KeywordStat{Keyword: "kw" + string(rune('a'+i)), Count: 15 - i})
	}

	html, err := Fragment(KeywordChart(keywords))
	require.NoError(t, err)

	out := string(html)
	assert.True(t, strings.HasPrefix(out, `<div class="chart-box">`))
	assert.NotContains(t, out, "<style>")
	assert.NotContains(t, out, "<!DOCTYPE")
	assert.Contains(t, out, "echarts.init")
	assert.Contains(t, out, "kwj")
	assert.NotContains(t, out, "kwk", "only the top ten keywords are charted")
}

func TestExtractChartContent_NotAPage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<p>hi</p>", extractChartContent("<p>hi</p>"))
}

func TestRemoveStyleTags(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab", removeStyleTags("a<style>.x{}</style>b"))
	assert.Equal(t, "a<style>open", removeStyleTags("a<style>open"))
}

func TestSentimentChart_Horizontal(t *testing.T) {
	t.Parallel()

	bar := SentimentChart(-0.4)

	require.NotEmpty(t, bar.XAxisList)
	require.NotEmpty(t, bar.YAxisList)
	assert.Equal(t, "value", bar.XAxisList[0].Type)
	assert.Equal(t, -1, bar.XAxisList[0].Min)
	assert.Equal(t, 1, bar.XAxisList[0].Max)
	assert.Equal(t, "category", bar.YAxisList[0].Type)
	assert.Equal(t, []string{"sentiment"}, bar.YAxisList[0].Data)

	html, err := Fragment(bar)
	require.NoError(t, err)
	assert.Contains(t, string(html), colorNegative)
}
