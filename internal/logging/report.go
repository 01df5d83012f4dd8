package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"jumpcut/internal/media"
	"jumpcut/internal/silence"
)

// StageTiming records how long one pipeline stage took.
type StageTiming struct {
	Name    string
	Elapsed time.Duration
}

// ReportData collects everything the analysis report prints for one file.
type ReportData struct {
	InputPath  string
	OutputPath string
	Info       media.Info
	Params     silence.Params

	Runs    []silence.Run
	Keep    []silence.Interval
	Dropped []silence.Interval
	Plan    silence.CutPlan

	InputDuration   float64
	OutputDuration  float64
	RemovedDuration float64

	Timings     []StageTiming
	GeneratedAt time.Time
}

// WriteReport renders the analysis report to path.
func WriteReport(path string, data ReportData) error {
	if err := os.WriteFile(path, []byte(renderReport(data)), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func renderReport(d ReportData) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line("jumpcut analysis report")
	line("generated: %s", d.GeneratedAt.Format(time.RFC3339))
	line("")
	line("input:  %s", d.InputPath)
	line("output: %s", d.OutputPath)
	line("")
	line("source: %s, %.3fs", d.Info.FormatName, d.Info.Duration)
	line("audio:  %s, %d Hz, %d ch", d.Info.AudioCodec, d.Info.SampleRate, d.Info.Channels)
	if d.Info.HasVideo {
		line("video:  %s, %dx%d", d.Info.VideoCodec, d.Info.Width, d.Info.Height)
	} else {
		line("video:  none")
	}
	line("")
	line("parameters:")
	line("  threshold        %.1f dBFS", d.Params.ThresholdDBFS)
	line("  min silence      %.2fs", d.Params.MinSilenceSec)
	line("  merge gap        %.2fs", d.Params.MergeGapSec)
	line("  padding          %.2fs / %.2fs", d.Params.StartPadSec, d.Params.EndPadSec)
	line("  window / hop     %.3fs / %.3fs", d.Params.WindowSec, d.Params.HopSec)
	line("")

	line("silence runs: %d", len(d.Runs))
	for _, r := range d.Runs {
		line("  %9.3f - %9.3f  (%.3fs)", r.Start, r.End, r.Duration())
	}
	line("")

	line("kept segments: %d", len(d.Keep))
	for _, iv := range d.Keep {
		line("  %9.3f - %9.3f  (%.3fs)", iv.Start, iv.End, iv.Duration())
	}
	if len(d.Dropped) > 0 {
		line("")
		line("segments collapsed by padding/merge: %d", len(d.Dropped))
		for _, iv := range d.Dropped {
			line("  %9.3f - %9.3f", iv.Start, iv.End)
		}
	}
	line("")

	line("cut plan: %d cuts", len(d.Plan))
	for i, c := range d.Plan {
		line("  %3d  %9.3f - %9.3f", i+1, c.SourceStart, c.SourceEnd)
	}
	line("")

	pct := 0.0
	if d.InputDuration > 0 {
		pct = d.RemovedDuration / d.InputDuration * 100
	}
	line("retained: %.3fs", d.OutputDuration)
	line("removed:  %.3fs (%.1f%%)", d.RemovedDuration, pct)

	if len(d.Timings) > 0 {
		line("")
		line("timings:")
		for _, st := range d.Timings {
			line("  %-10s %s", st.Name, st.Elapsed.Round(time.Millisecond))
		}
	}

	return b.String()
}

// WriteProfile exports the energy profile as JSON, one point per frame, for
// plotting or threshold tuning outside the tool.
func WriteProfile(path string, profile silence.EnergyProfile) error {
	data, err := json.MarshalIndent(profile.Points(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}
