package silence

// Default analysis geometry. A 50ms window gives fine enough granularity to
// place cut points between words; hop equals window, so windows are
// contiguous and non-overlapping.
const (
	DefaultWindowSec = 0.05
	DefaultHopSec    = 0.05

	// DefaultFloorDBFS is emitted for all-zero windows instead of
	// computing log10(0).
	DefaultFloorDBFS = -100.0
)

// Params is the user-tunable parameter set for one pipeline run. A fresh
// value is passed explicitly through every stage; there is no process-wide
// configuration state.
type Params struct {
	// ThresholdDBFS is the energy level at or below which a frame counts
	// as silent. Range [-70, 0].
	ThresholdDBFS float64

	// MinSilenceSec is the shortest silence worth cutting; shorter silent
	// stretches are treated as natural pauses and kept. Range [0.1, 10].
	MinSilenceSec float64

	// MergeGapSec fuses kept segments separated by a gap of at most this
	// many seconds. Must be >= 0.
	MergeGapSec float64

	// StartPadSec and EndPadSec retain a safety margin before and after
	// each kept segment. Must be >= 0.
	StartPadSec float64
	EndPadSec   float64

	// WindowSec and HopSec control the energy profile geometry.
	WindowSec float64
	HopSec    float64

	// FloorDBFS is the sentinel level for all-zero windows.
	FloorDBFS float64
}

// DefaultParams mirrors the defaults of the interactive front-end.
func DefaultParams() Params {
	return Params{
		ThresholdDBFS: -40.0,
		MinSilenceSec: 1.0,
		MergeGapSec:   0.2,
		StartPadSec:   0.10,
		EndPadSec:     0.10,
		WindowSec:     DefaultWindowSec,
		HopSec:        DefaultHopSec,
		FloorDBFS:     DefaultFloorDBFS,
	}
}

// Validate rejects out-of-range tunables with InvalidParameterError.
func (p Params) Validate() error {
	if p.ThresholdDBFS < -70 || p.ThresholdDBFS > 0 {
		return InvalidParameterError{Name: "threshold_dbfs", Value: p.ThresholdDBFS, Reason: "must be within [-70, 0]"}
	}
	if p.MinSilenceSec < 0.1 || p.MinSilenceSec > 10 {
		return InvalidParameterError{Name: "min_silence_duration_s", Value: p.MinSilenceSec, Reason: "must be within [0.1, 10]"}
	}
	if p.MergeGapSec < 0 {
		return InvalidParameterError{Name: "merge_gap_s", Value: p.MergeGapSec, Reason: "must be >= 0"}
	}
	if p.StartPadSec < 0 {
		return InvalidParameterError{Name: "start_padding_s", Value: p.StartPadSec, Reason: "must be >= 0"}
	}
	if p.EndPadSec < 0 {
		return InvalidParameterError{Name: "end_padding_s", Value: p.EndPadSec, Reason: "must be >= 0"}
	}
	if p.WindowSec <= 0 {
		return InvalidParameterError{Name: "window_size_s", Value: p.WindowSec, Reason: "must be > 0"}
	}
	if p.HopSec <= 0 {
		return InvalidParameterError{Name: "hop_size_s", Value: p.HopSec, Reason: "must be > 0"}
	}
	if p.HopSec > p.WindowSec {
		return InvalidParameterError{Name: "hop_size_s", Value: p.HopSec, Reason: "must not exceed window_size_s or the profile would leave gaps"}
	}
	if p.FloorDBFS >= 0 {
		return InvalidParameterError{Name: "floor_dbfs", Value: p.FloorDBFS, Reason: "must be negative"}
	}
	return nil
}
