package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"jumpcut/internal/processor"
)

// renderProcessingView renders the main processing view.
func renderProcessingView(m Model) string {
	var b strings.Builder

	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")
	b.WriteString(renderFileQueue(m))
	b.WriteString("\n\n")
	b.WriteString(renderOverallProgress(m))

	return b.String()
}

// renderHeader renders the application header.
func renderHeader(m Model) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5F5FD7")).
		Render("jumpcut ✂ - Silence Remover")

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Italic(true).
		Render(fmt.Sprintf("Processing %d file(s)", m.TotalFiles))

	return title + "\n" + subtitle
}

// renderFileQueue renders the list of files with their status.
func renderFileQueue(m Model) string {
	var b strings.Builder
	for _, file := range m.Files {
		b.WriteString(renderFileEntry(file))
		b.WriteString("\n")
	}
	return b.String()
}

// renderFileEntry renders a single file entry in the queue.
func renderFileEntry(file FileProgress) string {
	fileName := filepath.Base(file.InputPath)

	switch file.Status {
	case StatusComplete:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")
		r := file.Result
		return fmt.Sprintf(" %s %s → %s\n   %s",
			icon, fileName, filepath.Base(r.OutputPath), cutSummary(r))

	case StatusWorking:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("⚙")
		return fmt.Sprintf(" %s %s\n%s", icon, fileName, renderFileDetails(file))

	case StatusError:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Render("✗")
		return fmt.Sprintf(" %s %s\n   Error: %v", icon, fileName, file.Error)

	default:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("○")
		return fmt.Sprintf(" %s %s\n   Queued...", icon, fileName)
	}
}

// renderFileDetails renders stage progress for the active file.
func renderFileDetails(file FileProgress) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#5F5FD7")).
		Padding(0, 1).
		Width(60)

	var content strings.Builder
	name := file.StageName
	if name == "" {
		name = "Starting"
	}
	content.WriteString(fmt.Sprintf("Stage %d/%d: %s\n", file.Stage, processor.StageCount, name))
	content.WriteString(renderStageBar(file.Stage, file.Progress, 40))
	content.WriteString("\n")
	content.WriteString(fmt.Sprintf("⏱  Elapsed: %.1fs", file.ElapsedTime.Seconds()))

	return box.Render(content.String())
}

// renderStageBar renders overall progress across the pipeline stages. The
// ffmpeg stages report no intermediate values, so the bar advances in stage
// increments.
func renderStageBar(stage int, progress float64, width int) string {
	if stage < 1 {
		stage = 1
	}
	overall := (float64(stage-1) + progress) / float64(processor.StageCount)
	filled := int(overall * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %d%%", bar, int(overall*100))
}

// renderOverallProgress renders the footer.
func renderOverallProgress(m Model) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#888888")).
		Padding(0, 1).
		Width(60)

	var content string
	if m.CurrentIndex >= 0 && m.CurrentIndex < len(m.Files) {
		content = fmt.Sprintf("Processing file %d of %d (%d complete)",
			m.CurrentIndex+1, m.TotalFiles, m.CompletedFiles)
	} else {
		content = fmt.Sprintf("Overall Progress: %d/%d complete", m.CompletedFiles, m.TotalFiles)
	}
	return box.Render(content)
}

// renderCompletionSummary renders the final screen.
func renderCompletionSummary(m Model) string {
	var b strings.Builder

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00AA00")).
		Render("✨ All done!")
	b.WriteString(header)
	b.WriteString("\n\n")

	for _, file := range m.Files {
		switch file.Status {
		case StatusComplete:
			b.WriteString(renderCompletedFile(file))
			b.WriteString("\n")
		case StatusError:
			icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Render("✗")
			b.WriteString(fmt.Sprintf(" %s %s\n   Error: %v\n", icon, filepath.Base(file.InputPath), file.Error))
		}
	}

	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", 60))
	b.WriteString("\n")
	if m.FailedFiles > 0 {
		b.WriteString(fmt.Sprintf("%d of %d file(s) failed\n", m.FailedFiles, m.TotalFiles))
	} else {
		b.WriteString(fmt.Sprintf("%d file(s) trimmed in %.1fs\n", m.CompletedFiles, time.Since(m.StartTime).Seconds()))
	}

	return b.String()
}

// renderCompletedFile renders the per-file line of the final screen.
func renderCompletedFile(file FileProgress) string {
	icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")
	r := file.Result
	return fmt.Sprintf(" %s %s → %s\n   %s",
		icon, filepath.Base(file.InputPath), filepath.Base(r.OutputPath), cutSummary(r))
}

// cutSummary is the one-line result description shared by both screens.
func cutSummary(r *processor.Result) string {
	if r == nil {
		return ""
	}
	pct := 0.0
	if r.InputDuration > 0 {
		pct = r.RemovedDuration / r.InputDuration * 100
	}
	return fmt.Sprintf("%d silence(s) cut | %.1fs → %.1fs (-%.0f%%) | %d segment(s)",
		len(r.Runs), r.InputDuration, r.OutputDuration, pct, len(r.Plan))
}
