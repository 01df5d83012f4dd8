// Package config holds the jumpcut configuration: detection tunables,
// optional audio cleanup, output encoding choices, and external tool paths.
// Values come from an optional TOML file with CLI flags layered on top; a
// fresh Config is passed explicitly through the pipeline, never held in
// process-wide state.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"jumpcut/internal/silence"
)

//go:embed sample_config.toml
var sampleConfig string

// Detection holds the silence-detection tunables. Ranges match the
// interactive parameter widgets of the original tool and are enforced by
// silence.Params.Validate.
type Detection struct {
	ThresholdDBFS float64 `toml:"threshold_dbfs"`
	MinSilenceSec float64 `toml:"min_silence_duration_s"`
	MergeGapSec   float64 `toml:"merge_gap_s"`
	StartPadSec   float64 `toml:"start_padding_s"`
	EndPadSec     float64 `toml:"end_padding_s"`
	WindowSec     float64 `toml:"window_size_s"`
	HopSec        float64 `toml:"hop_size_s"`
}

// Cleanup holds the optional audio cleanup applied during the re-encode.
type Cleanup struct {
	NoiseReduction bool    `toml:"noise_reduction"`
	Strength       float64 `toml:"noise_reduction_strength"` // 0..1
	HumNotch       bool    `toml:"hum_notch"`
}

// Output holds encoding choices for the reconstructed video.
type Output struct {
	Suffix     string `toml:"suffix"`
	VideoCodec string `toml:"video_codec"`
	AudioCodec string `toml:"audio_codec"`
	Preset     string `toml:"preset"`
}

// Tools holds the external binaries jumpcut shells out to.
type Tools struct {
	FFmpeg  string `toml:"ffmpeg"`
	FFprobe string `toml:"ffprobe"`
	YtDlp   string `toml:"yt_dlp"`
}

// Config is the complete configuration for a run.
type Config struct {
	Detection Detection `toml:"detection"`
	Cleanup   Cleanup   `toml:"cleanup"`
	Output    Output    `toml:"output"`
	Tools     Tools     `toml:"tools"`
}

// Default returns the built-in configuration, mirroring the defaults of the
// original tool's sidebar.
func Default() *Config {
	p := silence.DefaultParams()
	return &Config{
		Detection: Detection{
			ThresholdDBFS: p.ThresholdDBFS,
			MinSilenceSec: p.MinSilenceSec,
			MergeGapSec:   p.MergeGapSec,
			StartPadSec:   p.StartPadSec,
			EndPadSec:     p.EndPadSec,
			WindowSec:     p.WindowSec,
			HopSec:        p.HopSec,
		},
		Cleanup: Cleanup{
			NoiseReduction: false,
			Strength:       0.5,
			HumNotch:       false,
		},
		Output: Output{
			Suffix:     "-edited",
			VideoCodec: "libx264",
			AudioCodec: "aac",
			Preset:     "medium",
		},
		Tools: Tools{
			FFmpeg:  "ffmpeg",
			FFprobe: "ffprobe",
			YtDlp:   "yt-dlp",
		},
	}
}

// Load reads a TOML file over the defaults. A missing path returns the
// defaults untouched, so the config file stays optional.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the whole configuration. Detection tunables are delegated
// to the pipeline's own range rules so CLI and TOML inputs fail with the
// same messages.
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.Cleanup.Strength < 0 || c.Cleanup.Strength > 1 {
		return silence.InvalidParameterError{
			Name:   "noise_reduction_strength",
			Value:  c.Cleanup.Strength,
			Reason: "must be within [0, 1]",
		}
	}
	if c.Output.Suffix == "" {
		return fmt.Errorf("output suffix must not be empty (output would overwrite input)")
	}
	return nil
}

// Params assembles the pipeline parameter set from the detection section.
func (c *Config) Params() silence.Params {
	return silence.Params{
		ThresholdDBFS: c.Detection.ThresholdDBFS,
		MinSilenceSec: c.Detection.MinSilenceSec,
		MergeGapSec:   c.Detection.MergeGapSec,
		StartPadSec:   c.Detection.StartPadSec,
		EndPadSec:     c.Detection.EndPadSec,
		WindowSec:     c.Detection.WindowSec,
		HopSec:        c.Detection.HopSec,
		FloorDBFS:     silence.DefaultFloorDBFS,
	}
}

// Sample returns the embedded sample configuration, used by --init-config.
func Sample() string {
	return sampleConfig
}
