package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"dropscore/models"
)

const (
	keywordRows = 15
	barLength   = 20
)

type Renderer struct {
	noColor bool
}

func NewRenderer(noColor bool) *Renderer {
	return &Renderer{noColor: noColor}
}

func (r *Renderer) paint(attrs ...color.Attribute) func(a ...any) string {
	c := color.New(attrs...)
	if r.noColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c.SprintFunc()
}

// Render writes a plain-text report.
func (r *Renderer) Render(w io.Writer, report *models.Report) error {
	var b strings.Builder

	bold := r.paint(color.Bold)
	header := r.paint(color.FgCyan, color.Bold)

	fmt.Fprintf(&b, "%s %s\n\n", header("DropScore"), report.VideoID)

	if report.Status == models.StatusNoComments {
		fmt.Fprintln(&b, r.paint(color.FgYellow)(report.Message))
		_, err := io.WriteString(w, b.String())
		return err
	}

	a := report.Analysis
	sentiment := r.paint(color.FgGreen)
	if a.AvgSentiment < 0 {
		sentiment = r.paint(color.FgRed)
	}

	fmt.Fprintf(&b, "%s %s\n", bold("Comments:"), humanize.Comma(int64(report.CommentCount)))
	fmt.Fprintf(&b, "%s %s\n", bold("Vibe check:"), report.Mood)
	fmt.Fprintf(&b, "%s %s\n", bold("Average sentiment:"), sentiment(fmt.Sprintf("%+.3f", a.AvgSentiment)))
	fmt.Fprintf(&b, "%s %s %d/100\n", bold("Viral score:"), scoreBar(report.ViralScore), report.ViralScore)
	fmt.Fprintf(&b, "%s %s\n\n", bold("Viral take:"), report.ViralTake)

	fmt.Fprintf(&b, "%s\n%s\n\n", header("Summary"), report.Summary)

	if len(report.Themes) > 0 {
		fmt.Fprintln(&b, header("Themes"))
		for _, t := range report.Themes {
			fmt.Fprintf(&b, "  %-15s %s\n", t.Theme, humanize.Comma(int64(t.Count)))
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, header("Keywords"))
	fmt.Fprintln(&b, keywordTable(a.Keywords))
	fmt.Fprintln(&b)

	writeComments(&b, header("Top positive"), a.TopPositiveComments)
	writeComments(&b, header("Top negative"), a.TopNegativeComments)

	if len(report.TopPhrases) > 0 {
		fmt.Fprintln(&b, header("Top phrases"))
		for i, p := range report.TopPhrases {
			fmt.Fprintf(&b, "  %d. %s (%d)\n", i+1, p.Phrase, p.Count)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func keywordTable(keywords []models.KeywordStat) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Format.Footer = text.FormatDefault
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	tbl.AppendHeader(table.Row{"Keyword", "Count", "Avg sentiment"})
	shown := keywords
	if len(shown) > keywordRows {
		shown = shown[:keywordRows]
	}
	for _, k := range shown {
		tbl.AppendRow(table.Row{k.Keyword, k.Count, fmt.Sprintf("%+.3f", k.AvgSentiment)})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("%d of %s keywords", len(shown), humanize.Comma(int64(len(keywords))))})

	return tbl.Render()
}

func writeComments(b *strings.Builder, title string, comments []models.ScoredComment) {
	fmt.Fprintln(b, title)
	if len(comments) == 0 {
		fmt.Fprintln(b, "  (none)")
	}
	for _, c := range comments {
		fmt.Fprintf(b, "  %+.3f  %s\n", c.Score, oneLine(c.Text))
	}
	fmt.Fprintln(b)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func scoreBar(score int) string {
	filled := score * barLength / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barLength-filled)
}
