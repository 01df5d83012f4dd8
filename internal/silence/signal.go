// Package silence implements the silence-detection pipeline: an RMS energy
// profile over a buffered audio signal, threshold classification into silent
// runs, padding and merge-gap shaping into keep intervals, and the final cut
// plan handed to the video reconstruction step.
//
// Every stage is a pure function of its input plus parameters. Nothing here
// touches files, processes, or shared state, so each stage can be tested in
// isolation and the whole pipeline is deterministic for identical inputs.
package silence

// Signal is a fully buffered mono audio signal, normalised to full scale 1.0.
// Immutable once extracted from the source media.
type Signal struct {
	Samples    []float64
	SampleRate int
}

// Duration returns the signal length in seconds.
func (s Signal) Duration() float64 {
	if s.SampleRate <= 0 {
		return 0
	}
	return float64(len(s.Samples)) / float64(s.SampleRate)
}
