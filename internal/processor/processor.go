package processor

import (
	"context"
	"log/slog"
	"time"

	"jumpcut/internal/config"
	"jumpcut/internal/logging"
	"jumpcut/internal/mains"
	"jumpcut/internal/media"
	"jumpcut/internal/silence"
)

// Pipeline stage numbers reported through ProgressFunc.
const (
	StageProbe = iota + 1
	StageExtract
	StageDetect
	StageRender
	StageCount = StageRender
)

// ProgressFunc receives stage transitions. progress is 0.0 at stage entry
// and 1.0 at completion; the ffmpeg stages do not report intermediate values.
type ProgressFunc func(stage int, stageName string, progress float64)

// Result is the complete outcome of processing one file.
type Result struct {
	InputPath  string
	OutputPath string
	Info       media.Info
	Detection

	InputDuration   float64
	OutputDuration  float64
	RemovedDuration float64

	Timings []logging.StageTiming
}

// Report assembles the analysis report data for this result.
func (r *Result) Report(params silence.Params) logging.ReportData {
	return logging.ReportData{
		InputPath:       r.InputPath,
		OutputPath:      r.OutputPath,
		Info:            r.Info,
		Params:          params,
		Runs:            r.Runs,
		Keep:            r.Keep,
		Dropped:         r.Dropped,
		Plan:            r.Plan,
		InputDuration:   r.InputDuration,
		OutputDuration:  r.OutputDuration,
		RemovedDuration: r.RemovedDuration,
		Timings:         r.Timings,
		GeneratedAt:     time.Now(),
	}
}

// ProcessVideo runs the whole pipeline for one input file and writes the
// reconstructed video next to it. progress may be nil.
func ProcessVideo(ctx context.Context, inputPath string, cfg *config.Config, log *slog.Logger, progress ProgressFunc) (*Result, error) {
	if log == nil {
		log = logging.Discard()
	}
	report := func(stage int, name string, p float64) {
		if progress != nil {
			progress(stage, name, p)
		}
	}
	result := &Result{
		InputPath:  inputPath,
		OutputPath: media.OutputName(inputPath, cfg.Output.Suffix),
	}
	timed := func(name string, start time.Time) {
		result.Timings = append(result.Timings, logging.StageTiming{Name: name, Elapsed: time.Since(start)})
	}

	report(StageProbe, "Probing", 0)
	start := time.Now()
	info, err := media.Probe(ctx, cfg.Tools.FFprobe, inputPath)
	if err != nil {
		return nil, err
	}
	timed("probe", start)
	result.Info = info
	result.InputDuration = info.Duration
	log.Debug("probed input", "path", inputPath,
		"format", info.FormatName, "duration_s", info.Duration,
		"audio", info.AudioCodec, "video", info.VideoCodec)
	report(StageProbe, "Probing", 1)

	report(StageExtract, "Extracting audio", 0)
	start = time.Now()
	sig, err := media.ExtractSignal(ctx, cfg.Tools.FFmpeg, inputPath, media.AnalysisSampleRate)
	if err != nil {
		return nil, err
	}
	timed("extract", start)
	log.Debug("extracted signal", "samples", len(sig.Samples), "rate", sig.SampleRate)
	report(StageExtract, "Extracting audio", 1)

	report(StageDetect, "Detecting silence", 0)
	start = time.Now()
	det, err := Detect(ctx, sig, cfg.Params())
	if err != nil {
		return nil, err
	}
	timed("detect", start)
	result.Detection = *det
	result.OutputDuration = det.Plan.TotalDuration()
	result.RemovedDuration = sig.Duration() - result.OutputDuration
	for _, iv := range det.Dropped {
		log.Warn("segment collapsed to nothing during shaping", "start", iv.Start, "end", iv.End)
	}
	log.Debug("detection complete",
		"runs", len(det.Runs), "cuts", len(det.Plan),
		"kept_s", result.OutputDuration, "removed_s", result.RemovedDuration)
	report(StageDetect, "Detecting silence", 1)

	report(StageRender, "Rendering", 0)
	start = time.Now()
	opts := media.RenderOptions{
		VideoCodec:  cfg.Output.VideoCodec,
		AudioCodec:  cfg.Output.AudioCodec,
		Preset:      cfg.Output.Preset,
		AudioFilter: audioFilter(cfg, log),
	}
	if err := media.Render(ctx, cfg.Tools.FFmpeg, inputPath, result.OutputPath, det.Plan, opts); err != nil {
		return nil, err
	}
	timed("render", start)
	log.Debug("rendered output", "path", result.OutputPath)
	report(StageRender, "Rendering", 1)

	return result, nil
}

// audioFilter assembles the optional cleanup chain from the config.
func audioFilter(cfg *config.Config, log *slog.Logger) string {
	strength := 0.0
	if cfg.Cleanup.NoiseReduction {
		strength = cfg.Cleanup.Strength
	}
	humHz := 0
	if cfg.Cleanup.HumNotch {
		humHz = mains.HumFrequency()
		log.Debug("hum notch enabled", "frequency_hz", humHz)
	}
	return media.BuildAudioFilter(strength, humHz)
}
