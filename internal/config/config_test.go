package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"jumpcut/internal/silence"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jumpcut.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Detection.ThresholdDBFS != -40 {
		t.Errorf("ThresholdDBFS = %g, want -40", cfg.Detection.ThresholdDBFS)
	}
	if cfg.Output.Suffix != "-edited" {
		t.Errorf("Suffix = %q, want -edited", cfg.Output.Suffix)
	}
	if cfg.Tools.FFmpeg != "ffmpeg" || cfg.Tools.YtDlp != "yt-dlp" {
		t.Errorf("tools = %+v", cfg.Tools)
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if *cfg != *Default() {
			t.Errorf("Load(\"\") = %+v, want defaults", cfg)
		}
	})

	t.Run("partial file overrides only its keys", func(t *testing.T) {
		path := writeConfig(t, `
[detection]
threshold_dbfs = -55.0

[output]
suffix = "-cut"
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Detection.ThresholdDBFS != -55 {
			t.Errorf("ThresholdDBFS = %g, want -55", cfg.Detection.ThresholdDBFS)
		}
		if cfg.Detection.MinSilenceSec != 1.0 {
			t.Errorf("MinSilenceSec = %g, want default 1.0", cfg.Detection.MinSilenceSec)
		}
		if cfg.Output.Suffix != "-cut" {
			t.Errorf("Suffix = %q, want -cut", cfg.Output.Suffix)
		}
		if cfg.Output.VideoCodec != "libx264" {
			t.Errorf("VideoCodec = %q, want default libx264", cfg.Output.VideoCodec)
		}
	})

	t.Run("missing file fails", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("malformed TOML fails", func(t *testing.T) {
		path := writeConfig(t, "[detection\nthreshold = oops")
		if _, err := Load(path); err == nil {
			t.Fatal("expected error for malformed TOML")
		}
	})
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	path := writeConfig(t, Sample())
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(sample) failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("sample config drifted from defaults:\ngot  %+v\nwant %+v", cfg, Default())
	}
}

func TestValidate(t *testing.T) {
	t.Run("detection errors carry the parameter name", func(t *testing.T) {
		cfg := Default()
		cfg.Detection.ThresholdDBFS = 5
		var perr silence.InvalidParameterError
		if err := cfg.Validate(); !errors.As(err, &perr) {
			t.Fatalf("got %v, want InvalidParameterError", err)
		} else if perr.Name != "threshold_dbfs" {
			t.Errorf("Name = %q, want threshold_dbfs", perr.Name)
		}
	})

	t.Run("strength out of range", func(t *testing.T) {
		cfg := Default()
		cfg.Cleanup.Strength = 1.5
		var perr silence.InvalidParameterError
		if err := cfg.Validate(); !errors.As(err, &perr) {
			t.Fatalf("got %v, want InvalidParameterError", err)
		}
	})

	t.Run("empty suffix is rejected", func(t *testing.T) {
		cfg := Default()
		cfg.Output.Suffix = ""
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for empty suffix")
		}
	})
}

func TestParams(t *testing.T) {
	p := Default().Params()
	if err := p.Validate(); err != nil {
		t.Fatalf("default params should validate: %v", err)
	}
	if p.FloorDBFS != silence.DefaultFloorDBFS {
		t.Errorf("FloorDBFS = %g, want %g", p.FloorDBFS, silence.DefaultFloorDBFS)
	}
}
