package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"jumpcut/internal/cli"
	"jumpcut/internal/config"
	"jumpcut/internal/fetch"
	"jumpcut/internal/logging"
	"jumpcut/internal/processor"
	"jumpcut/internal/ui"
)

var (
	version = "0.1.0"
)

// CLI defines the command-line interface. Detection flags are pointers so an
// unset flag leaves the config (file or default) value alone.
type CLI struct {
	Version    bool   `short:"v" help:"Show version information"`
	Config     string `short:"c" type:"path" help:"Path to TOML config file (optional)"`
	InitConfig bool   `help:"Print a sample config file and exit"`

	Threshold  *float64 `short:"t" placeholder:"DBFS" help:"Silence threshold in dBFS [-70, 0]"`
	MinSilence *float64 `placeholder:"SECONDS" help:"Shortest silence worth cutting [0.1, 10]"`
	MergeGap   *float64 `placeholder:"SECONDS" help:"Merge kept segments closer than this"`
	StartPad   *float64 `placeholder:"SECONDS" help:"Padding kept before each segment"`
	EndPad     *float64 `placeholder:"SECONDS" help:"Padding kept after each segment"`

	Denoise         bool     `help:"Apply broadband noise reduction while re-encoding"`
	DenoiseStrength *float64 `placeholder:"0..1" help:"Noise reduction strength"`
	HumNotch        bool     `help:"Notch out mains hum at the local grid frequency"`

	URL         string `short:"u" help:"Download a video with yt-dlp and process it"`
	Logs        bool   `help:"Save a per-file analysis report and debug log"`
	ProfileJSON bool   `help:"Export the energy profile as JSON next to each input"`

	Files []string `arg:"" name:"files" help:"Video files to process" type:"existingfile" optional:""`
}

func main() {
	cliArgs := &CLI{}
	kctx := kong.Parse(cliArgs,
		kong.Name("jumpcut"),
		kong.Description("Remove silent stretches from screen recordings and talks"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}
	if cliArgs.InitConfig {
		fmt.Print(config.Sample())
		os.Exit(0)
	}

	cfg, err := config.Load(cliArgs.Config)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
	applyOverrides(cfg, cliArgs)
	if err := cfg.Validate(); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	files := cliArgs.Files
	if cliArgs.URL != "" {
		path, err := downloadURL(ctx, cfg, cliArgs.URL)
		if err != nil {
			cli.PrintError(err.Error())
			os.Exit(1)
		}
		files = append(files, path)
	}
	if len(files) == 0 {
		cli.PrintError("No input files specified")
		kctx.PrintUsage(false)
		os.Exit(1)
	}

	log := logging.Discard()
	if cliArgs.Logs {
		fileLog, closeLog, err := logging.NewDebugLogger("jumpcut-debug.log")
		if err != nil {
			cli.PrintError(err.Error())
			os.Exit(1)
		}
		defer closeLog()
		log = fileLog
	}

	model := ui.NewModel(files)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		for i, inputPath := range files {
			p.Send(ui.FileStartMsg{FileIndex: i, FileName: inputPath})

			result, err := processor.ProcessVideo(ctx, inputPath, cfg, log,
				func(stage int, stageName string, progress float64) {
					p.Send(ui.ProgressMsg{Stage: stage, StageName: stageName, Progress: progress})
				})
			if err != nil {
				log.Error("processing failed", "path", inputPath, "error", err)
				p.Send(ui.FileCompleteMsg{FileIndex: i, Error: err})
				continue
			}

			if cliArgs.Logs {
				reportPath := sidecarName(inputPath, "-analysis.txt")
				if err := logging.WriteReport(reportPath, result.Report(cfg.Params())); err != nil {
					log.Error("report generation failed", "path", reportPath, "error", err)
				}
			}
			if cliArgs.ProfileJSON {
				profilePath := sidecarName(inputPath, "-profile.json")
				if err := logging.WriteProfile(profilePath, result.Profile); err != nil {
					log.Error("profile export failed", "path", profilePath, "error", err)
				}
			}

			p.Send(ui.FileCompleteMsg{FileIndex: i, Result: result})
		}
		p.Send(ui.AllCompleteMsg{})
	}()

	if _, err := p.Run(); err != nil {
		cli.PrintError(fmt.Sprintf("UI error: %v", err))
		os.Exit(1)
	}
}

// applyOverrides layers set CLI flags over the loaded config.
func applyOverrides(cfg *config.Config, args *CLI) {
	if args.Threshold != nil {
		cfg.Detection.ThresholdDBFS = *args.Threshold
	}
	if args.MinSilence != nil {
		cfg.Detection.MinSilenceSec = *args.MinSilence
	}
	if args.MergeGap != nil {
		cfg.Detection.MergeGapSec = *args.MergeGap
	}
	if args.StartPad != nil {
		cfg.Detection.StartPadSec = *args.StartPad
	}
	if args.EndPad != nil {
		cfg.Detection.EndPadSec = *args.EndPad
	}
	if args.Denoise {
		cfg.Cleanup.NoiseReduction = true
	}
	if args.DenoiseStrength != nil {
		cfg.Cleanup.NoiseReduction = true
		cfg.Cleanup.Strength = *args.DenoiseStrength
	}
	if args.HumNotch {
		cfg.Cleanup.HumNotch = true
	}
}

// downloadURL fetches a remote video into the working directory.
func downloadURL(ctx context.Context, cfg *config.Config, url string) (string, error) {
	dl := &fetch.Downloader{Bin: cfg.Tools.YtDlp, Dir: "."}
	if !dl.Available() {
		return "", fmt.Errorf("yt-dlp not found (%s); install it or set tools.yt_dlp", cfg.Tools.YtDlp)
	}
	fmt.Printf("Downloading %s ...\n", url)
	start := time.Now()
	path, info, err := dl.Download(ctx, url)
	if err != nil {
		return "", err
	}
	fmt.Printf("Downloaded %q (%.0fs of video) in %s\n",
		info.Title, info.Duration, time.Since(start).Round(time.Second))
	return path, nil
}

// sidecarName derives a companion file path from the input path.
func sidecarName(input, suffix string) string {
	ext := ""
	if i := strings.LastIndex(input, "."); i >= 0 && !strings.ContainsAny(input[i:], "/\\") {
		ext = input[i:]
	}
	return strings.TrimSuffix(input, ext) + suffix
}
