package analysis

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/nikekukuri/rusty-toyspice/pkg/util"
)

// quantityNames splits result keys into sorted voltage and current names,
// trimming suffix from each key that carries it.
func quantityNames(results map[string][]float64, suffix string) (voltages, currents []string) {
	for _, key := range slices.Sorted(maps.Keys(results)) {
		if suffix != "" && !strings.HasSuffix(key, suffix) {
			continue
		}
		name := strings.TrimSuffix(key, suffix)
		switch {
		case strings.HasPrefix(name, "V("):
			voltages = append(voltages, name)
		case strings.HasPrefix(name, "I("):
			currents = append(currents, name)
		}
	}
	return voltages, currents
}

// Report writes results of an OP, AC or DC sweep analysis as text.
func Report(w io.Writer, results map[string][]float64) error {
	var b strings.Builder

	switch {
	case results["FREQ"] != nil:
		freqs := results["FREQ"]
		voltages, currents := quantityNames(results, "_MAG")
		names := slices.Concat(voltages, currents)
		fmt.Fprintf(&b, "AC Analysis Results (%d frequency points):\n", len(freqs))
		for i, freq := range freqs {
			b.WriteString(util.FormatFrequency(freq))
			for _, name := range names {
				mag, phase := results[name+"_MAG"], results[name+"_PHASE"]
				if i < len(mag) && i < len(phase) {
					fmt.Fprintf(&b, "  %s", util.FormatMagnitudePhase(name, mag[i], phase[i]))
				}
			}
			b.WriteString("\n")
		}

	case results["SWEEP1"] != nil:
		sweep := results["SWEEP1"]
		voltages, currents := quantityNames(results, "")
		fmt.Fprintf(&b, "DC Sweep Analysis Results (%d points):\n", len(sweep))
		for i, val := range sweep {
			fmt.Fprintf(&b, "V=%-9s", util.FormatValueFactor(val, "V"))
			for _, name := range voltages {
				fmt.Fprintf(&b, "  %s=%s", name, util.FormatValueFactor(results[name][i], "V"))
			}
			for _, name := range currents {
				fmt.Fprintf(&b, "  %s=%s", name, util.FormatValueFactor(results[name][i], "A"))
			}
			b.WriteString("\n")
		}

	default:
		voltages, currents := quantityNames(results, "")
		b.WriteString("Node Voltages:\n")
		for _, name := range voltages {
			fmt.Fprintf(&b, "%s = %s\n", name, util.FormatValueFactor(results[name][0], "V"))
		}
		b.WriteString("Branch Currents:\n")
		for _, name := range currents {
			fmt.Fprintf(&b, "%s = %s\n", name, util.FormatValueFactor(results[name][0], "A"))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
