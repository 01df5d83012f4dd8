package silence

import (
	"errors"
	"testing"
)

// profileFrom builds an EnergyProfile of contiguous 50ms frames from a list
// of (duration, dBFS) spans.
func profileFrom(t *testing.T, spans ...span) EnergyProfile {
	t.Helper()
	var profile EnergyProfile
	cursor := 0.0
	for _, sp := range spans {
		frames := int(sp.durationSec/0.05 + 0.5)
		level := sp.levelDBFS
		if level <= -200 {
			level = DefaultFloorDBFS
		}
		for i := 0; i < frames; i++ {
			profile = append(profile, Frame{
				Start:   cursor,
				End:     cursor + 0.05,
				RMSdBFS: level,
			})
			cursor += 0.05
		}
	}
	return profile
}

func TestClassify(t *testing.T) {
	t.Run("uniform loud signal yields zero runs", func(t *testing.T) {
		profile := profileFrom(t, span{durationSec: 5, levelDBFS: -10})

		runs, err := Classify(profile, -50, 1.0)
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		if len(runs) != 0 {
			t.Errorf("got %d runs, want 0: %+v", len(runs), runs)
		}
	})

	t.Run("all-silent signal yields one full-span run", func(t *testing.T) {
		profile := profileFrom(t, span{durationSec: 4, levelDBFS: digitalSilence})

		runs, err := Classify(profile, -50, 1.0)
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		checkRuns(t, runs, [][2]float64{{0, 4}})
	})

	t.Run("threshold boundary is inclusive", func(t *testing.T) {
		// Frames exactly at the threshold count as silent.
		profile := profileFrom(t, span{durationSec: 2, levelDBFS: -50})

		runs, err := Classify(profile, -50, 1.0)
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		checkRuns(t, runs, [][2]float64{{0, 2}})

		// Just above the threshold is non-silent.
		profile = profileFrom(t, span{durationSec: 2, levelDBFS: -49.9})
		runs, err = Classify(profile, -50, 1.0)
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		if len(runs) != 0 {
			t.Errorf("got %d runs above threshold, want 0", len(runs))
		}
	})

	t.Run("finds the reference runs in the 10s scenario", func(t *testing.T) {
		// 10s signal, silent in [2,5) and [7,9) at -80dBFS, rest -10dBFS.
		profile := profileFrom(t,
			span{durationSec: 2, levelDBFS: -10},
			span{durationSec: 3, levelDBFS: -80},
			span{durationSec: 2, levelDBFS: -10},
			span{durationSec: 2, levelDBFS: -80},
			span{durationSec: 1, levelDBFS: -10},
		)

		runs, err := Classify(profile, -50, 1.0)
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		checkRuns(t, runs, [][2]float64{{2, 5}, {7, 9}})
	})

	t.Run("short silences are reclassified as non-silent", func(t *testing.T) {
		// Same scenario with min_silence_duration=3s: [2,5) survives
		// (length 3), [7,9) is discarded (length 2 < 3).
		profile := profileFrom(t,
			span{durationSec: 2, levelDBFS: -10},
			span{durationSec: 3, levelDBFS: -80},
			span{durationSec: 2, levelDBFS: -10},
			span{durationSec: 2, levelDBFS: -80},
			span{durationSec: 1, levelDBFS: -10},
		)

		runs, err := Classify(profile, -50, 3.0)
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		checkRuns(t, runs, [][2]float64{{2, 5}})
	})

	t.Run("run exactly at minimum duration survives", func(t *testing.T) {
		profile := profileFrom(t,
			span{durationSec: 1, levelDBFS: -10},
			span{durationSec: 1, levelDBFS: -80},
			span{durationSec: 1, levelDBFS: -10},
		)

		runs, err := Classify(profile, -50, 1.0)
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		checkRuns(t, runs, [][2]float64{{1, 2}})
	})

	t.Run("trailing silence closes properly", func(t *testing.T) {
		profile := profileFrom(t,
			span{durationSec: 2, levelDBFS: -10},
			span{durationSec: 2, levelDBFS: -80},
		)

		runs, err := Classify(profile, -50, 1.0)
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		checkRuns(t, runs, [][2]float64{{2, 4}})
	})

	t.Run("out-of-range parameters are rejected", func(t *testing.T) {
		profile := profileFrom(t, span{durationSec: 1, levelDBFS: -10})

		for _, tc := range []struct {
			name       string
			threshold  float64
			minSilence float64
		}{
			{"threshold too low", -80, 1.0},
			{"threshold positive", 1, 1.0},
			{"min silence too short", -50, 0.05},
			{"min silence too long", -50, 11},
		} {
			t.Run(tc.name, func(t *testing.T) {
				_, err := Classify(profile, tc.threshold, tc.minSilence)
				var invalid InvalidParameterError
				if !errors.As(err, &invalid) {
					t.Fatalf("got %v, want InvalidParameterError", err)
				}
			})
		}
	})
}
