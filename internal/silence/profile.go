package silence

import "math"

// Frame is one scored analysis window over [Start, End) seconds.
type Frame struct {
	Start   float64
	End     float64
	RMSdBFS float64
}

// EnergyProfile is the ordered sequence of scored windows covering the whole
// signal with no gaps. With hop == window the frames are contiguous and
// non-overlapping; with hop < window they overlap by a fixed stride.
type EnergyProfile []Frame

// ProfilePoint is the serialisable (time, dBFS) form consumed by external
// visualisation tooling.
type ProfilePoint struct {
	Time float64 `json:"time"`
	DBFS float64 `json:"dbfs"`
}

// Points flattens the profile to (window start, level) pairs.
func (p EnergyProfile) Points() []ProfilePoint {
	points := make([]ProfilePoint, len(p))
	for i, f := range p {
		points[i] = ProfilePoint{Time: f.Start, DBFS: f.RMSdBFS}
	}
	return points
}

// Profile converts a sample buffer into a time-indexed RMS energy curve in
// dBFS. Windows are placed deterministically every hopSec seconds; the last
// window may be shorter than windowSec but is still scored, so the signal
// tail is never silently misclassified. All-zero windows emit floorDBFS
// instead of -Inf.
func Profile(sig Signal, windowSec, hopSec, floorDBFS float64) (EnergyProfile, error) {
	duration := sig.Duration()
	if duration <= 0 {
		return nil, InvalidParameterError{Name: "signal", Value: duration, Reason: "signal is empty"}
	}
	if windowSec <= 0 || windowSec > duration {
		return nil, InvalidParameterError{Name: "window_size_s", Value: windowSec, Reason: "must be > 0 and <= signal duration"}
	}
	if hopSec <= 0 || hopSec > duration {
		return nil, InvalidParameterError{Name: "hop_size_s", Value: hopSec, Reason: "must be > 0 and <= signal duration"}
	}
	if hopSec > windowSec {
		return nil, InvalidParameterError{Name: "hop_size_s", Value: hopSec, Reason: "must not exceed window_size_s or the profile would leave gaps"}
	}

	rate := float64(sig.SampleRate)
	windowSamples := int(math.Round(windowSec * rate))
	hopSamples := int(math.Round(hopSec * rate))
	if windowSamples < 1 {
		windowSamples = 1
	}
	if hopSamples < 1 {
		hopSamples = 1
	}

	total := len(sig.Samples)
	profile := make(EnergyProfile, 0, total/hopSamples+1)
	for start := 0; start < total; start += hopSamples {
		end := start + windowSamples
		if end > total {
			end = total // partial tail window, still scored
		}
		profile = append(profile, Frame{
			Start:   float64(start) / rate,
			End:     float64(end) / rate,
			RMSdBFS: rmsDBFS(sig.Samples[start:end], floorDBFS),
		})
	}
	return profile, nil
}

// rmsDBFS scores one window: root-mean-square amplitude converted to decibels
// relative to full scale (1.0).
func rmsDBFS(window []float64, floorDBFS float64) float64 {
	var sumSquares float64
	for _, s := range window {
		sumSquares += s * s
	}
	rms := math.Sqrt(sumSquares / float64(len(window)))
	if rms == 0 {
		return floorDBFS
	}
	db := 20 * math.Log10(rms)
	if db < floorDBFS {
		return floorDBFS
	}
	return db
}
