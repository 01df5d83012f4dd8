package ui

import "jumpcut/internal/processor"

// ProgressMsg carries a stage transition from the pipeline.
type ProgressMsg struct {
	Stage     int     // 1-based, see processor stage constants
	StageName string  // "Probing", "Extracting audio", ...
	Progress  float64 // 0.0 at stage entry, 1.0 at completion
}

// FileStartMsg indicates a new file has started processing.
type FileStartMsg struct {
	FileIndex int
	FileName  string
}

// FileCompleteMsg indicates a file has finished, successfully or not.
type FileCompleteMsg struct {
	FileIndex int
	Result    *processor.Result
	Error     error
}

// AllCompleteMsg indicates the whole queue has been processed.
type AllCompleteMsg struct{}
