// Package render formats joins results for display: a fixed-width text dump
// for terminals and logs, and a markdown sweep report rendered to HTML for
// the web UI.
package render

import (
	"fmt"
	"strings"

	"gojoins/domain/joins"
)

// Text produces the classic fixed-width dump of one joins test.
func Text(label string, stats joins.JoinStatistics) string {
	var b strings.Builder

	if label != "" {
		fmt.Fprintf(&b, "Joins test: %s\n", label)
	} else {
		b.WriteString("Joins test\n")
	}
	fmt.Fprintf(&b, "  trials:    %d\n", stats.Trials)
	fmt.Fprintf(&b, "  prob:      %.5f\n", stats.Prob)
	fmt.Fprintf(&b, "  observed:  %d\n", stats.Observed)
	fmt.Fprintf(&b, "  expected:  %.5f\n", stats.Expected)
	fmt.Fprintf(&b, "  variance:  %.5f\n", stats.Variance)
	if stats.Degenerate {
		b.WriteString("  z-score:   undefined (zero variance)\n")
		b.WriteString("  p-value:   1.00000\n")
	} else {
		fmt.Fprintf(&b, "  z-score:   %.5f\n", stats.ZScore)
		fmt.Fprintf(&b, "  p-value:   %.5f\n", stats.PValue)
	}
	return b.String()
}
