package dashboard

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/dustin/go-humanize"

	"dropscore/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"comma": func(n int) string { return humanize.Comma(int64(n)) },
	"score": func(f float64) string { return fmt.Sprintf("%+.3f", f) },
}).ParseFS(templateFS, "templates/*.html"))

// IndexData fills the landing page form.
type IndexData struct {
	URL   string
	Error string
}

// DashboardData is everything the dashboard page shows for one report.
type DashboardData struct {
	URL            string
	Report         *models.Report
	SentimentColor string
	KeywordChart   template.HTML
	LengthChart    template.HTML
	SentimentChart template.HTML
}

func RenderIndex(w io.Writer, data IndexData) error {
	return pages.ExecuteTemplate(w, "index.html", data)
}

// NewDashboardData renders the charts for report. Reports without analysis
// results get no charts.
func NewDashboardData(url string, report *models.Report) (*DashboardData, error) {
	data := &DashboardData{URL: url, Report: report}
	if report == nil || report.Analysis == nil {
		return data, nil
	}

	a := report.Analysis
	data.SentimentColor = SentimentColor(a.AvgSentiment)

	var err error
	if data.KeywordChart, err = Fragment(KeywordChart(a.Keywords)); err != nil {
		return nil, err
	}
	if data.LengthChart, err = Fragment(LengthChart(a.Lengths)); err != nil {
		return nil, err
	}
	if data.SentimentChart, err = Fragment(SentimentChart(a.AvgSentiment)); err != nil {
		return nil, err
	}
	return data, nil
}

func RenderDashboard(w io.Writer, data *DashboardData) error {
	return pages.ExecuteTemplate(w, "dashboard.html", data)
}
