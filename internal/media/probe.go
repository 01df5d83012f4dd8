// Package media drives ffmpeg and ffprobe subprocesses: probing input
// containers, decoding the audio track into a sample buffer for analysis,
// and reconstructing the output video from a cut plan.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
)

// Default binary names, overridable through the tools section of the config.
const (
	DefaultFFmpegBin  = "ffmpeg"
	DefaultFFprobeBin = "ffprobe"
)

// ErrNoAudioStream means the input container carries no audio track, so
// there is nothing to run silence detection on.
var ErrNoAudioStream = errors.New("no audio stream in input")

// Info describes the probed input container.
type Info struct {
	FormatName string
	Duration   float64 // seconds

	SampleRate int
	Channels   int
	AudioCodec string

	HasVideo   bool
	VideoCodec string
	Width      int
	Height     int
}

// Probe inspects the input with ffprobe and returns its metadata.
func Probe(ctx context.Context, ffprobeBin, path string) (Info, error) {
	if ffprobeBin == "" {
		ffprobeBin = DefaultFFprobeBin
	}
	cmd := exec.CommandContext(ctx, ffprobeBin,
		"-v", "error",
		"-show_format", "-show_streams",
		"-of", "json",
		path,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return Info{}, fmt.Errorf("ffprobe %s: %w: %s", path, err, stderr.String())
	}
	return parseProbeOutput(out)
}

// parseProbeOutput decodes the ffprobe JSON document. Split out from Probe so
// it can be tested against canned output without the binary present.
func parseProbeOutput(data []byte) (Info, error) {
	var doc struct {
		Format struct {
			FormatName string `json:"format_name"`
			Duration   string `json:"duration"`
		} `json:"format"`
		Streams []struct {
			CodecType  string `json:"codec_type"`
			CodecName  string `json:"codec_name"`
			SampleRate string `json:"sample_rate"`
			Channels   int    `json:"channels"`
			Width      int    `json:"width"`
			Height     int    `json:"height"`
		} `json:"streams"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Info{}, fmt.Errorf("parse ffprobe output: %w", err)
	}

	info := Info{FormatName: doc.Format.FormatName}
	if doc.Format.Duration != "" {
		d, err := strconv.ParseFloat(doc.Format.Duration, 64)
		if err != nil {
			return Info{}, fmt.Errorf("parse duration %q: %w", doc.Format.Duration, err)
		}
		info.Duration = d
	}

	haveAudio := false
	for _, s := range doc.Streams {
		switch s.CodecType {
		case "audio":
			if haveAudio {
				continue // silence detection only reads the first audio track
			}
			haveAudio = true
			info.AudioCodec = s.CodecName
			info.Channels = s.Channels
			if s.SampleRate != "" {
				rate, err := strconv.Atoi(s.SampleRate)
				if err != nil {
					return Info{}, fmt.Errorf("parse sample rate %q: %w", s.SampleRate, err)
				}
				info.SampleRate = rate
			}
		case "video":
			if info.HasVideo {
				continue
			}
			info.HasVideo = true
			info.VideoCodec = s.CodecName
			info.Width = s.Width
			info.Height = s.Height
		}
	}
	if !haveAudio {
		return Info{}, ErrNoAudioStream
	}
	return info, nil
}
