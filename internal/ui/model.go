// Package ui provides the Bubbletea terminal interface showing the per-file
// pipeline progress and the final cut summary.
package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"jumpcut/internal/processor"
)

// FileStatus is the processing state of one queued file.
type FileStatus int

const (
	StatusQueued FileStatus = iota
	StatusWorking
	StatusComplete
	StatusError
)

// FileProgress tracks one video through the pipeline.
type FileProgress struct {
	InputPath string
	Status    FileStatus

	Stage       int
	StageName   string
	Progress    float64
	StartTime   time.Time
	ElapsedTime time.Duration

	Result *processor.Result
	Error  error
}

// Model is the Bubbletea model for the processing queue.
type Model struct {
	Files          []FileProgress
	CurrentIndex   int
	TotalFiles     int
	CompletedFiles int
	FailedFiles    int

	StartTime time.Time
	Done      bool

	// ProgressChan receives messages from the worker goroutine; Update
	// re-arms waitForProgress after each one.
	ProgressChan chan tea.Msg

	Width  int
	Height int
}

// NewModel builds the model for a queue of input files.
func NewModel(inputFiles []string) Model {
	files := make([]FileProgress, len(inputFiles))
	for i, path := range inputFiles {
		files[i] = FileProgress{InputPath: path, Status: StatusQueued}
	}
	return Model{
		Files:        files,
		CurrentIndex: -1,
		TotalFiles:   len(inputFiles),
		StartTime:    time.Now(),
		ProgressChan: make(chan tea.Msg, 100),
	}
}

// Init starts listening for worker messages.
func (m Model) Init() tea.Cmd {
	return waitForProgress(m.ProgressChan)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case ProgressMsg:
		if m.CurrentIndex >= 0 && m.CurrentIndex < len(m.Files) {
			f := &m.Files[m.CurrentIndex]
			f.Stage = msg.Stage
			f.StageName = msg.StageName
			f.Progress = msg.Progress
			f.ElapsedTime = time.Since(f.StartTime)
		}
		return m, waitForProgress(m.ProgressChan)

	case FileStartMsg:
		m.CurrentIndex = msg.FileIndex
		m.Files[m.CurrentIndex].Status = StatusWorking
		m.Files[m.CurrentIndex].StartTime = time.Now()
		return m, waitForProgress(m.ProgressChan)

	case FileCompleteMsg:
		if msg.FileIndex >= 0 && msg.FileIndex < len(m.Files) {
			f := &m.Files[msg.FileIndex]
			f.Result = msg.Result
			f.Error = msg.Error
			if msg.Error != nil {
				f.Status = StatusError
				m.FailedFiles++
			} else {
				f.Status = StatusComplete
				m.CompletedFiles++
			}
		}
		return m, waitForProgress(m.ProgressChan)

	case AllCompleteMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.Width == 0 {
		return fmt.Sprintf("Initializing...\nFiles: %d\n", len(m.Files))
	}
	if m.Done {
		return renderCompletionSummary(m)
	}
	return renderProcessingView(m)
}

// waitForProgress returns a command that blocks on the next worker message.
func waitForProgress(progressChan chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-progressChan
	}
}
