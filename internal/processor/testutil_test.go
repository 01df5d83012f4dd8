package processor

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"jumpcut/internal/silence"
)

// span describes a constant-level stretch of synthetic audio.
type span struct {
	durationSec float64
	levelDBFS   float64
}

// digitalSilence marks a span rendered as literal zero samples.
const digitalSilence = -300.0

// buildSignal assembles a constant-amplitude signal from spans. Constant
// amplitude makes the RMS of every window exactly the span level, so
// detection expectations can be written without tolerance juggling.
func buildSignal(t *testing.T, sampleRate int, spans ...span) silence.Signal {
	t.Helper()
	var samples []float64
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
	return silence.Signal{Samples: samples, SampleRate: sampleRate}
}

// writeTestWAV renders spans as a mono 16-bit WAV file for the ffmpeg-backed
// integration tests. A 440Hz tone stands in for speech so the audio survives
// lossy re-encoding at a predictable level.
func writeTestWAV(t *testing.T, dir string, sampleRate int, spans ...span) string {
	t.Helper()

	var samples []int16
	for _, sp := range spans {
		n := int(math.Round(sp.durationSec * float64(sampleRate)))
		amp := 0.0
		if sp.levelDBFS > -200 {
			amp = math.Pow(10, sp.levelDBFS/20)
		}
		for i := 0; i < n; i++ {
			v := amp * math.Sin(2*math.Pi*440*float64(len(samples))/float64(sampleRate))
			samples = append(samples, int16(v*math.MaxInt16))
		}
	}

	path := filepath.Join(dir, "input.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create test WAV: %v", err)
	}
	defer f.Close()

	const bitsPerSample = 16
	dataSize := len(samples) * 2
	hdr := []any{
		uint32(36 + dataSize),
		uint32(16), uint16(1), uint16(1),
		uint32(sampleRate),
		uint32(sampleRate * bitsPerSample / 8),
		uint16(bitsPerSample / 8), uint16(bitsPerSample),
	}
	if _, err := f.Write([]byte("RIFF")); err != nil {
		t.Fatal(err)
	}
	if err := binary.Write(f, binary.LittleEndian, hdr[0]); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write([]byte("WAVEfmt ")); err != nil {
		t.Fatal(err)
	}
	for _, v := range hdr[1:] {
		if err := binary.Write(f, binary.LittleEndian, v); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := f.Write([]byte("data")); err != nil {
		t.Fatal(err)
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(dataSize)); err != nil {
		t.Fatal(err)
	}
	if err := binary.Write(f, binary.LittleEndian, samples); err != nil {
		t.Fatal(err)
	}
	return path
}

// almostEqual compares seconds with a tolerance absorbing sample rounding.
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
