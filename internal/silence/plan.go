package silence

import "fmt"

// Cut is one extraction request against the source timeline.
type Cut struct {
	SourceStart float64 `json:"source_start"`
	SourceEnd   float64 `json:"source_end"`
}

// CutPlan is the ordered sequence of extraction requests handed to the video
// reconstruction step. Concatenation order is the slice order.
type CutPlan []Cut

// TotalDuration returns the summed source time covered by the plan.
func (p CutPlan) TotalDuration() float64 {
	var total float64
	for _, c := range p {
		total += c.SourceEnd - c.SourceStart
	}
	return total
}

// BuildPlan maps keep intervals 1:1 onto extraction requests, preserving
// order. An empty input fails with ErrEmptyPlan so the reconstruction
// collaborator is never invoked with zero segments. Ordering and
// disjointness are guaranteed upstream by Shape and re-checked here; a
// violation aborts the run with InvariantError.
func BuildPlan(keep []Interval) (CutPlan, error) {
	if len(keep) == 0 {
		return nil, ErrEmptyPlan
	}
	plan := make(CutPlan, 0, len(keep))
	for i, iv := range keep {
		if iv.End <= iv.Start {
			return nil, InvariantError{Detail: fmt.Sprintf("keep interval %d is empty: [%g, %g)", i, iv.Start, iv.End)}
		}
		if iv.Start < 0 {
			return nil, InvariantError{Detail: fmt.Sprintf("keep interval %d starts before 0: %g", i, iv.Start)}
		}
		if i > 0 && iv.Start < keep[i-1].End {
			return nil, InvariantError{Detail: fmt.Sprintf("keep intervals %d and %d overlap: [%g, %g) then [%g, %g)",
				i-1, i, keep[i-1].Start, keep[i-1].End, iv.Start, iv.End)}
		}
		plan = append(plan, Cut{SourceStart: iv.Start, SourceEnd: iv.End})
	}
	return plan, nil
}
