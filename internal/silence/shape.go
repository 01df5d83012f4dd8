package silence

// Interval is a time range [Start, End) destined for the output video.
type Interval struct {
	Start float64
	End   float64
}

// Duration returns the interval length in seconds.
func (iv Interval) Duration() float64 {
	return iv.End - iv.Start
}

// ShapeResult carries the final keep intervals plus any intervals dropped for
// having no remaining length. Dropped intervals are a warning condition for
// the caller to log, not an error.
type ShapeResult struct {
	Keep    []Interval
	Dropped []Interval
}

// TotalKept returns the summed duration of the keep intervals.
func (r ShapeResult) TotalKept() float64 {
	var total float64
	for _, iv := range r.Keep {
		total += iv.Duration()
	}
	return total
}

// Shape turns silence runs into the final ordered list of keep intervals:
//
//  1. Invert the runs against [0, durationSec) to get the raw complement.
//  2. Expand each interval by the start/end padding, clamped to the signal
//     boundary.
//  3. Coalesce intervals that overlap or sit within mergeGapSec of each
//     other, repeating to a fixed point. A gap exactly equal to mergeGapSec
//     merges (<=): smoother cuts win over minimal-duration output.
//  4. Drop intervals with no remaining length (reported via Dropped).
//
// Returns ErrNoContentRemaining when nothing survives shaping.
func Shape(durationSec float64, runs []Run, startPadSec, endPadSec, mergeGapSec float64) (ShapeResult, error) {
	if durationSec <= 0 {
		return ShapeResult{}, InvalidParameterError{Name: "duration_s", Value: durationSec, Reason: "must be > 0"}
	}
	if startPadSec < 0 {
		return ShapeResult{}, InvalidParameterError{Name: "start_padding_s", Value: startPadSec, Reason: "must be >= 0"}
	}
	if endPadSec < 0 {
		return ShapeResult{}, InvalidParameterError{Name: "end_padding_s", Value: endPadSec, Reason: "must be >= 0"}
	}
	if mergeGapSec < 0 {
		return ShapeResult{}, InvalidParameterError{Name: "merge_gap_s", Value: mergeGapSec, Reason: "must be >= 0"}
	}

	raw := invert(durationSec, runs)

	// Pad and clamp. Padding only grows intervals, so ordering survives.
	padded := make([]Interval, 0, len(raw))
	for _, iv := range raw {
		iv.Start -= startPadSec
		iv.End += endPadSec
		if iv.Start < 0 {
			iv.Start = 0
		}
		if iv.End > durationSec {
			iv.End = durationSec
		}
		padded = append(padded, iv)
	}

	merged := coalesce(padded, mergeGapSec)

	var result ShapeResult
	for _, iv := range merged {
		if iv.Duration() <= 0 {
			result.Dropped = append(result.Dropped, iv)
			continue
		}
		result.Keep = append(result.Keep, iv)
	}
	if len(result.Keep) == 0 {
		return result, ErrNoContentRemaining
	}
	return result, nil
}

// invert returns the complement of the silence runs within [0, durationSec).
// Runs are assumed disjoint and ordered, as produced by Classify.
func invert(durationSec float64, runs []Run) []Interval {
	var keep []Interval
	cursor := 0.0
	for _, run := range runs {
		if run.Start > cursor {
			keep = append(keep, Interval{Start: cursor, End: run.Start})
		}
		if run.End > cursor {
			cursor = run.End
		}
	}
	if cursor < durationSec {
		keep = append(keep, Interval{Start: cursor, End: durationSec})
	}
	return keep
}

// coalesce merges adjacent intervals that overlap or whose gap is at most
// mergeGapSec. A single left-to-right sweep over ordered intervals reaches
// the fixed point: each merge extends the current interval rightward, so any
// transitively mergeable neighbour is absorbed in the same pass.
func coalesce(intervals []Interval, mergeGapSec float64) []Interval {
	if len(intervals) < 2 {
		return intervals
	}
	merged := make([]Interval, 0, len(intervals))
	merged = append(merged, intervals[0])
	for _, iv := range intervals[1:] {
		last := &merged[len(merged)-1]
		if iv.Start-last.End <= mergeGapSec {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}
