package silence

import (
	"math"
	"testing"
)

// span describes one stretch of synthetic signal at a constant level.
// Constant amplitude makes the window RMS equal the amplitude exactly, so
// tests can assert dBFS values without tolerance gymnastics.
type span struct {
	durationSec float64
	levelDBFS   float64 // use digitalSilence for all-zero stretches
}

// buildSignal synthesises a mono signal from constant-level spans.
// A span with levelDBFS <= -200 is rendered as digital silence.
func buildSignal(t *testing.T, sampleRate int, spans ...span) Signal {
	t.Helper()

	var total int
	for _, sp := range spans {
		total += int(math.Round(sp.durationSec * float64(sampleRate)))
	}
	samples := make([]float64, 0, total)
	for _, sp := range spans {
		n := int(math.Round(sp.durationSec * float64(sampleRate)))
		amp := 0.0
		if sp.levelDBFS > -200 {
			amp = math.Pow(10, sp.levelDBFS/20)
		}
		for i := 0; i < n; i++ {
			samples = append(samples, amp)
		}
	}
	return Signal{Samples: samples, SampleRate: sampleRate}
}

// digitalSilence is the span level used for all-zero stretches.
const digitalSilence = -300.0

// almostEqual compares seconds-domain values with a tolerance of one sample
// at typical analysis rates.
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func checkIntervals(t *testing.T, got []Interval, want [][2]float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d intervals, want %d: %+v", len(got), len(want), got)
	}
	for i, iv := range got {
		if !almostEqual(iv.Start, want[i][0]) || !almostEqual(iv.End, want[i][1]) {
			t.Errorf("interval %d = [%g, %g), want [%g, %g)", i, iv.Start, iv.End, want[i][0], want[i][1])
		}
	}
}

func checkRuns(t *testing.T, got []Run, want [][2]float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d runs, want %d: %+v", len(got), len(want), got)
	}
	for i, r := range got {
		if !almostEqual(r.Start, want[i][0]) || !almostEqual(r.End, want[i][1]) {
			t.Errorf("run %d = [%g, %g), want [%g, %g)", i, r.Start, r.End, want[i][0], want[i][1])
		}
	}
}
