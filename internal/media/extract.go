package media

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os/exec"

	"jumpcut/internal/silence"
)

// AnalysisSampleRate is the rate the audio track is resampled to for silence
// detection. 16kHz keeps buffers small while leaving RMS energy estimation
// unaffected; the cut plan is expressed in seconds, so the output video is
// untouched by this choice.
const AnalysisSampleRate = 16000

// ExtractSignal decodes the first audio track of path into a mono float
// buffer at sampleRate Hz. ffmpeg handles every container and codec and
// writes raw f32le PCM to stdout; stereo sources are downmixed to the mono
// energy proxy the detector works on.
func ExtractSignal(ctx context.Context, ffmpegBin, path string, sampleRate int) (silence.Signal, error) {
	if ffmpegBin == "" {
		ffmpegBin = DefaultFFmpegBin
	}
	if sampleRate <= 0 {
		sampleRate = AnalysisSampleRate
	}

	cmd := exec.CommandContext(ctx, ffmpegBin,
		"-hide_banner", "-loglevel", "error",
		"-i", path,
		"-vn", "-sn", "-dn",
		"-map", "0:a:0",
		"-ac", "1",
		"-ar", fmt.Sprint(sampleRate),
		"-f", "f32le",
		"-",
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return silence.Signal{}, fmt.Errorf("ffmpeg decode %s: %w: %s", path, err, stderr.String())
	}

	samples, err := decodeF32LE(stdout.Bytes())
	if err != nil {
		return silence.Signal{}, fmt.Errorf("decode PCM from %s: %w", path, err)
	}
	if len(samples) == 0 {
		return silence.Signal{}, fmt.Errorf("ffmpeg decode %s: audio track produced no samples", path)
	}
	return silence.Signal{Samples: samples, SampleRate: sampleRate}, nil
}

// decodeF32LE converts raw little-endian float32 PCM into float64 samples.
func decodeF32LE(raw []byte) ([]float64, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("PCM byte count %d is not a multiple of 4", len(raw))
	}
	samples := make([]float64, len(raw)/4)
	for i := range samples {
		bits := binary.LittleEndian.Uint32(raw[i*4:])
		samples[i] = float64(math.Float32frombits(bits))
	}
	return samples, nil
}
