// Package viz renders simulation responses in the terminal.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/controlbox/internal/sim"
)

const (
	plotWidth  = 80
	plotHeight = 16
)

// RenderResponse plots input and output traces of a run as one chart.
func RenderResponse(result *sim.Result) string {
	if len(result.Times) == 0 {
		return "no samples"
	}

	graph := asciigraph.PlotMany(
		[][]float64{result.Inputs, result.Outputs},
		asciigraph.Width(plotWidth),
		asciigraph.Height(plotHeight),
		asciigraph.SeriesColors(asciigraph.Gray, asciigraph.Green),
		asciigraph.Caption(fmt.Sprintf("input (gray) vs output (green), t = %g .. %g",
			result.Times[0], result.Times[len(result.Times)-1])),
	)

	var sb strings.Builder
	sb.WriteString(graph)
	sb.WriteString("\n")
	if len(result.Metrics) > 0 {
		sb.WriteString("\n")
		for name, val := range result.Metrics {
			sb.WriteString(fmt.Sprintf("  %s: %.6f\n", name, val))
		}
	}
	return sb.String()
}
