package render

import (
	"fmt"
	"strings"
	"time"

	"gojoins/app"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// SweepMarkdown renders a sweep result as a markdown report.
func SweepMarkdown(result *app.SweepResult) string {
	var b strings.Builder

	b.WriteString("# Joins Sweep Report\n\n")
	fmt.Fprintf(&b, "Generated %s. %d samples tested, %d failed, %dms.\n\n",
		time.Now().UTC().Format(time.RFC3339), result.Tested, result.Failed, result.RuntimeMs)

	b.WriteString("| Sample | Observed | Expected | Variance | Z | P | Notes |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, entry := range result.Entries {
		name := entry.SampleName
		if name == "" {
			name = entry.SampleID
		}
		if entry.Error != "" {
			fmt.Fprintf(&b, "| %s | - | - | - | - | - | %s |\n", name, entry.Error)
			continue
		}
		s := entry.Stats
		if s.Degenerate {
			fmt.Fprintf(&b, "| %s | %d | %.4f | %.4f | undefined | 1.0000 | zero variance |\n",
				name, s.Observed, s.Expected, s.Variance)
			continue
		}
		fmt.Fprintf(&b, "| %s | %d | %.4f | %.4f | %.4f | %.5f | |\n",
			name, s.Observed, s.Expected, s.Variance, s.ZScore, s.PValue)
	}
	return b.String()
}

// SweepHTML renders a sweep result as a standalone HTML fragment.
func SweepHTML(result *app.SweepResult) []byte {
	md := []byte(SweepMarkdown(result))

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(p.Parse(md), renderer)
}
