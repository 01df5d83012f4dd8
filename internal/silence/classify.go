package silence

// timeEpsilon absorbs float64 noise when comparing durations assembled from
// sample-count arithmetic. Well below the shortest meaningful audio event.
const timeEpsilon = 1e-9

// Run is a maximal silent interval [Start, End) in seconds. Runs are
// disjoint, ordered by start time, and always have End > Start.
type Run struct {
	Start float64
	End   float64
}

// Duration returns the run length in seconds.
func (r Run) Duration() float64 {
	return r.End - r.Start
}

// Classify thresholds the energy profile into silent runs. A frame is silent
// iff its level is at or below thresholdDBFS; the boundary is inclusive so a
// threshold of 0 never keeps full-scale noise. Candidate runs shorter than
// minSilenceSec are reclassified as non-silent: short gaps are natural pauses
// in speech, not content to cut. Zero runs is a valid result.
func Classify(profile EnergyProfile, thresholdDBFS, minSilenceSec float64) ([]Run, error) {
	if thresholdDBFS < -70 || thresholdDBFS > 0 {
		return nil, InvalidParameterError{Name: "threshold_dbfs", Value: thresholdDBFS, Reason: "must be within [-70, 0]"}
	}
	if minSilenceSec < 0.1 || minSilenceSec > 10 {
		return nil, InvalidParameterError{Name: "min_silence_duration_s", Value: minSilenceSec, Reason: "must be within [0.1, 10]"}
	}

	var runs []Run
	var current *Run
	for _, frame := range profile {
		if frame.RMSdBFS <= thresholdDBFS {
			if current == nil {
				current = &Run{Start: frame.Start, End: frame.End}
			} else {
				current.End = frame.End
			}
			continue
		}
		if current != nil {
			runs = appendIfLongEnough(runs, *current, minSilenceSec)
			current = nil
		}
	}
	if current != nil {
		runs = appendIfLongEnough(runs, *current, minSilenceSec)
	}
	return runs, nil
}

func appendIfLongEnough(runs []Run, candidate Run, minSilenceSec float64) []Run {
	if candidate.Duration()+timeEpsilon >= minSilenceSec {
		runs = append(runs, candidate)
	}
	return runs
}
