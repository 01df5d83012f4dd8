package media

import (
	"fmt"
	"strings"
)

// Noise reduction bounds for afftdn. The floor keeps some reduction whenever
// the filter is enabled; the ceiling is afftdn's stability limit.
const (
	noiseReductionMinDB = 6.0
	noiseReductionMaxDB = 40.0

	humHarmonics = 4
	humNotchQ    = 30.0
)

// BuildAudioFilter assembles the optional audio cleanup chain applied during
// the render: FFT-based broadband denoising scaled by strength (0..1), and a
// notch ladder at the mains hum fundamental and its harmonics when humHz is
// set. Returns "" when nothing is enabled.
func BuildAudioFilter(strength float64, humHz int) string {
	var filters []string

	if strength > 0 {
		if strength > 1 {
			strength = 1
		}
		nr := noiseReductionMinDB + strength*(noiseReductionMaxDB-noiseReductionMinDB)
		filters = append(filters, fmt.Sprintf("afftdn=nr=%.1f:nf=-50", nr))
	}

	if humHz > 0 {
		for h := 1; h <= humHarmonics; h++ {
			filters = append(filters, fmt.Sprintf("bandreject=f=%d:width_type=q:w=%.0f", humHz*h, humNotchQ))
		}
	}

	return strings.Join(filters, ",")
}
