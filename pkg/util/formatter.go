package util

import (
	"fmt"
	"math"
)

var prefixes = []struct {
	scale  float64
	prefix string
}{
	{1, ""},
	{1e-3, "m"},
	{1e-6, "u"},
	{1e-9, "n"},
	{1e-12, "p"},
}

// FormatValueFactor prints value with an engineering prefix: 0.0042 A -> "4.200 mA".
func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	for _, p := range prefixes {
		if absValue >= p.scale {
			return fmt.Sprintf("%.3f %s%s", value/p.scale, p.prefix, unit)
		}
	}
	return fmt.Sprintf("%.3e %s", value, unit)
}

func FormatFrequency(freq float64) string {
	switch {
	case freq >= 1e6:
		return fmt.Sprintf("%7.3f MHz", freq/1e6)
	case freq >= 1e3:
		return fmt.Sprintf("%7.3f kHz", freq/1e3)
	default:
		return fmt.Sprintf("%7.3f Hz ", freq)
	}
}

func FormatMagnitude(value float64) string {
	if value >= 1000 || (value < 0.001 && value != 0) {
		return fmt.Sprintf("%8.2e", value) // "1.00e+03" or "5.43e-05"
	}
	return fmt.Sprintf("%8.3g", value) // "  732.5 "
}

func FormatPhase(value float64) string {
	return fmt.Sprintf("%6.1f", value) // "  90.0"
}

// FormatMagnitudePhase renders name=mag<phase deg.
func FormatMagnitudePhase(name string, mag, phase float64) string {
	return fmt.Sprintf("%s=%s<%sdeg", name, FormatMagnitude(mag), FormatPhase(phase))
}

// Decibel converts a magnitude ratio to dB, flooring zero at -400 dB.
func Decibel(mag float64) float64 {
	return 20 * math.Log10(math.Max(mag, 1e-20))
}
