// Package processor orchestrates the pipeline for one video file: probe the
// container, extract the audio signal, detect silence, and reconstruct the
// video from the kept segments.
package processor

import (
	"context"

	"jumpcut/internal/silence"
)

// Detection is the outcome of the pure analysis stages over one signal.
type Detection struct {
	Profile silence.EnergyProfile
	Runs    []silence.Run
	Keep    []silence.Interval
	Dropped []silence.Interval
	Plan    silence.CutPlan
}

// Detect runs profile, classify, shape and plan over an extracted signal.
// Each stage is pure; cancellation is observed at the stage boundaries, so a
// cancelled context never yields a partially assembled Detection.
func Detect(ctx context.Context, sig silence.Signal, params silence.Params) (*Detection, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	profile, err := silence.Profile(sig, params.WindowSec, params.HopSec, params.FloorDBFS)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runs, err := silence.Classify(profile, params.ThresholdDBFS, params.MinSilenceSec)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	shaped, err := silence.Shape(sig.Duration(), runs, params.StartPadSec, params.EndPadSec, params.MergeGapSec)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	plan, err := silence.BuildPlan(shaped.Keep)
	if err != nil {
		return nil, err
	}

	return &Detection{
		Profile: profile,
		Runs:    runs,
		Keep:    shaped.Keep,
		Dropped: shaped.Dropped,
		Plan:    plan,
	}, nil
}
