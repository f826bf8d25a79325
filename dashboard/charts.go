package dashboard

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"dropscore/models"
)

const (
	keywordChartLimit = 10
	histogramBins     = 10

	colorPositive = "#2e7d32"
	colorNegative = "#c62828"
	colorAccent   = "#5470c6"

	chartWidth = "100%"
)

// KeywordChart is a bar chart of the ten most frequent keywords.
func KeywordChart(keywords []models.KeywordStat) *charts.Bar {
	top := keywords
	if len(top) > keywordChartLimit {
		top = top[:keywordChartLimit]
	}

	labels := make([]string, len(top))
	data := make([]opts.BarData, len(top))
	for i, k := range top {
		labels[i] = k.Keyword
		data[i] = opts.BarData{Value: k.Count, ItemStyle: &opts.ItemStyle{Color: colorAccent}}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: "360px"}),
		charts.WithTitleOpts(opts.Title{Title: "Top Keywords"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Keyword",
			AxisLabel: &opts.AxisLabel{Rotate: 30, Interval: "0"},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count"}),
	)
	bar.SetXAxis(labels).AddSeries("Count", data)
	return bar
}

// HistogramBin is one equal-width bucket of comment lengths. Max is exclusive
// except for the last bin.
type HistogramBin struct {
	Min, Max float64
	Count    int
}

// Histogram splits values into n equal-width bins between their minimum and
// maximum. When all values are equal the range is widened by 0.5 on each side.
func Histogram(values []int, n int) []HistogramBin {
	if len(values) == 0 || n <= 0 {
		return nil
	}

	lo, hi := float64(values[0]), float64(values[0])
	for _, v := range values[1:] {
		lo = min(lo, float64(v))
		hi = max(hi, float64(v))
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	width := (hi - lo) / float64(n)
	bins := make([]HistogramBin, n)
	for i := range bins {
		bins[i].Min = lo + float64(i)*width
		bins[i].Max = lo + float64(i+1)*width
	}
	for _, v := range values {
		idx := int((float64(v) - lo) / width)
		if idx >= n {
			idx = n - 1
		}
		bins[idx].Count++
	}
	return bins
}

// LengthChart is a histogram of comment lengths in characters.
func LengthChart(lengths []int) *charts.Bar {
	bins := Histogram(lengths, histogramBins)

	labels := make([]string, len(bins))
	data := make([]opts.BarData, len(bins))
	for i, b := range bins {
		labels[i] = fmt.Sprintf("%.0f-%.0f", b.Min, b.Max)
		data[i] = opts.BarData{Value: b.Count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: "320px"}),
		charts.WithTitleOpts(opts.Title{Title: "Comment Length Distribution"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Characters"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Comments"}),
	)
	bar.SetXAxis(labels).AddSeries("Comments", data,
		charts.WithBarChartOpts(opts.BarChart{BarCategoryGap: "0%"}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorAccent}),
	)
	return bar
}

// SentimentColor is green for non-negative sentiment and red otherwise.
func SentimentColor(avg float64) string {
	if avg >= 0 {
		return colorPositive
	}
	return colorNegative
}

// SentimentChart is a single horizontal bar on a fixed -1..1 axis.
func SentimentChart(avg float64) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: "120px"}),
		charts.WithTitleOpts(opts.Title{Title: "Mood Bar"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: -1, Max: 1}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: []string{"sentiment"}, Show: opts.Bool(false)}),
	)
	bar.AddSeries("Sentiment", []opts.BarData{
		{Value: avg, ItemStyle: &opts.ItemStyle{Color: SentimentColor(avg)}},
	})
	return bar
}

// Renderable is implemented by every go-echarts chart.
type Renderable interface {
	Render(w io.Writer) error
}

// Fragment renders a chart page and keeps only the chart markup and script, so
// several charts can share one HTML page.
func Fragment(chart Renderable) (template.HTML, error) {
	var buf bytes.Buffer
	if err := chart.Render(&buf); err != nil {
		return "", fmt.Errorf("rendering chart: %w", err)
	}
	return template.HTML(extractChartContent(buf.String())), nil //nolint:gosec // go-echarts output
}

func extractChartContent(page string) string {
	start := strings.Index(page, `<div class="container">`)
	end := strings.Index(page, `</body>`)
	if start == -1 || end == -1 || end < start {
		return page
	}

	content := strings.ReplaceAll(page[start:end], `class="container"`, `class="chart-box"`)
	return removeStyleTags(content)
}

func removeStyleTags(content string) string {
	for {
		i := strings.Index(content, "<style>")
		if i == -1 {
			return content
		}
		j := strings.Index(content[i:], "</style>")
		if j == -1 {
			return content
		}
		content = content[:i] + content[i+j+len("</style>"):]
	}
}
