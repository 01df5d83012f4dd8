package media

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"jumpcut/internal/silence"
)

// RenderOptions controls the re-encode of the reconstructed video.
type RenderOptions struct {
	VideoCodec string // default libx264
	AudioCodec string // default aac
	Preset     string // x264 preset, default medium

	// AudioFilter is an optional filter chain (e.g. denoise + hum notch)
	// applied to the concatenated audio before encoding.
	AudioFilter string
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.VideoCodec == "" {
		o.VideoCodec = "libx264"
	}
	if o.AudioCodec == "" {
		o.AudioCodec = "aac"
	}
	if o.Preset == "" {
		o.Preset = "medium"
	}
	return o
}

// Render extracts the plan's source ranges from input and concatenates them,
// in plan order, into a single output file. One ffmpeg invocation does the
// whole job through a trim/atrim + concat filter graph, keeping audio and
// video cuts sample-accurate and in sync.
//
// Calling Render with an empty plan is a caller bug; the upstream pipeline
// guarantees a non-empty plan or fails with ErrEmptyPlan first.
func Render(ctx context.Context, ffmpegBin, input, output string, plan silence.CutPlan, opts RenderOptions) error {
	if len(plan) == 0 {
		return silence.ErrEmptyPlan
	}
	if ffmpegBin == "" {
		ffmpegBin = DefaultFFmpegBin
	}
	opts = opts.withDefaults()

	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-y",
		"-i", input,
		"-filter_complex", buildConcatGraph(plan, opts.AudioFilter),
		"-map", "[outv]",
		"-map", "[outa]",
		"-c:v", opts.VideoCodec,
		"-preset", opts.Preset,
		"-c:a", opts.AudioCodec,
		output,
	}
	cmd := exec.CommandContext(ctx, ffmpegBin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg render %s: %w: %s", output, err, stderr.String())
	}
	return nil
}

// buildConcatGraph builds the filter_complex string: each cut becomes a
// trim/atrim pair with its timestamps rebased, then all pairs feed a single
// concat. An optional audio filter chain is inserted after the concat.
func buildConcatGraph(plan silence.CutPlan, audioFilter string) string {
	var b strings.Builder
	for i, cut := range plan {
		fmt.Fprintf(&b, "[0:v]trim=start=%.6f:end=%.6f,setpts=PTS-STARTPTS[v%d];",
			cut.SourceStart, cut.SourceEnd, i)
		fmt.Fprintf(&b, "[0:a]atrim=start=%.6f:end=%.6f,asetpts=PTS-STARTPTS[a%d];",
			cut.SourceStart, cut.SourceEnd, i)
	}
	for i := range plan {
		fmt.Fprintf(&b, "[v%d][a%d]", i, i)
	}
	audioLabel := "outa"
	if audioFilter != "" {
		audioLabel = "cata"
	}
	fmt.Fprintf(&b, "concat=n=%d:v=1:a=1[outv][%s]", len(plan), audioLabel)
	if audioFilter != "" {
		fmt.Fprintf(&b, ";[cata]%s[outa]", audioFilter)
	}
	return b.String()
}

// OutputName derives the output path from the input path: the suffix is
// inserted before the extension and the container is normalised to .mp4,
// matching the libx264/aac encode.
func OutputName(input, suffix string) string {
	ext := ""
	if i := strings.LastIndex(input, "."); i >= 0 && !strings.ContainsAny(input[i:], "/\\") {
		ext = input[i:]
	}
	base := strings.TrimSuffix(input, ext)
	return base + suffix + ".mp4"
}
