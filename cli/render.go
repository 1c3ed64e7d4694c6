package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/banachtech/mcoption/pricer"
	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/floats"
)

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func renderResult(w io.Writer, p pricer.Parameters, res *pricer.Result, blackScholes float64) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Option", p.Type.String()})
	table.Append([]string{"Paths", strconv.Itoa(len(res.TerminalPrices))})
	table.Append([]string{"Seed", strconv.FormatUint(res.Seed, 10)})
	table.Append([]string{"Estimated price", format(res.Price)})
	table.Append([]string{"Standard error", format(res.StdErr)})
	table.Append([]string{"Black-Scholes", format(blackScholes)})
	table.Render()
}

func renderSummary(w io.Writer, s *pricer.Summary) {
	fmt.Fprintln(w, "Terminal price distribution")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Mean", "Std Dev", "Min", "P5", "Median", "P95", "Max"})
	table.Append([]string{format(s.Mean), format(s.StdDev), format(s.Min), format(s.P5), format(s.Median), format(s.P95), format(s.Max)})
	table.Render()
}

// renderHistogram draws one row per bin, the fullest bin being width characters long.
func renderHistogram(w io.Writer, h pricer.Histogram, width int) {
	peak := floats.Max(h.Counts)
	for i, c := range h.Counts {
		n := 0
		if peak > 0 {
			n = int(c / peak * float64(width))
		}
		fmt.Fprintf(w, "%10.2f | %-*s %d\n", h.Edges[i], width, strings.Repeat("#", n), int(c))
	}
}

func renderPaths(w io.Writer, res *pricer.Result) {
	fmt.Fprintln(w, "Sample paths")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Path", "Start", "Min", "Max", "End"})
	for i, path := range res.SamplePaths {
		table.Append([]string{
			strconv.Itoa(i + 1),
			format(path[0]),
			format(floats.Min(path)),
			format(floats.Max(path)),
			format(path[len(path)-1]),
		})
	}
	table.Render()
}

func renderConvergence(w io.Writer, points []pricer.ConvergencePoint, blackScholes float64) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Paths", "Price", "Std Error", "Error vs Black-Scholes"})
	for _, pt := range points {
		table.Append([]string{strconv.Itoa(pt.Paths), format(pt.Price), format(pt.StdErr), format(pt.Price - blackScholes)})
	}
	table.Render()
}
