package analysis

import (
	"fmt"
	"io"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/nikekukuri/rusty-toyspice/pkg/util"
)

// PlotAC draws the magnitude in dB of each named quantity against a
// logarithmic frequency axis. format is any extension gonum/plot accepts
// ("png", "svg", "pdf", ...).
func PlotAC(w io.Writer, results map[string][]float64, names []string, title, format string) error {
	freqs := results["FREQ"]
	if len(freqs) == 0 {
		return fmt.Errorf("no ac results to plot")
	}
	if slices.ContainsFunc(freqs, func(f float64) bool { return f <= 0 }) {
		return fmt.Errorf("log frequency axis needs positive frequencies")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "Magnitude (dB)"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	for i, name := range names {
		mag, ok := results[name+"_MAG"]
		if !ok || len(mag) != len(freqs) {
			return fmt.Errorf("no ac magnitude for %s", name)
		}

		xys := make(plotter.XYs, len(freqs))
		for j := range freqs {
			xys[j].X = freqs[j]
			xys[j].Y = util.Decibel(mag[j])
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("plotting %s: %w", name, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(name, line)
	}

	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("rendering plot: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}
