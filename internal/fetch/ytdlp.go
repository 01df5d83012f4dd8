// Package fetch downloads remote videos with yt-dlp so a URL can be fed
// through the same pipeline as a local file.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Downloader shells out to yt-dlp. Bin may be a bare name (resolved via
// PATH) or an absolute path; Dir is where downloads land.
type Downloader struct {
	Bin string
	Dir string
}

// Info is the subset of yt-dlp's -j output we care about.
type Info struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Uploader string  `json:"uploader"`
	Duration float64 `json:"duration"`
	Ext      string  `json:"ext"`
}

// Available reports whether the yt-dlp binary can be found.
func (d *Downloader) Available() bool {
	if strings.ContainsRune(d.Bin, os.PathSeparator) {
		st, err := os.Stat(d.Bin)
		return err == nil && !st.IsDir()
	}
	_, err := exec.LookPath(d.Bin)
	return err == nil
}

// Probe fetches the video metadata without downloading anything.
func (d *Downloader) Probe(ctx context.Context, url string) (*Info, error) {
	cmd := exec.CommandContext(ctx, d.Bin, "-j", "--no-playlist", url)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("yt-dlp metadata for %s: %w: %s", url, err, strings.TrimSpace(string(out)))
	}
	return parseInfo(out)
}

// Download fetches the video into Dir and returns the path of the
// downloaded file. The file is named <id>.<ext> so reruns of the same URL
// overwrite rather than accumulate.
func (d *Downloader) Download(ctx context.Context, url string) (string, *Info, error) {
	info, err := d.Probe(ctx, url)
	if err != nil {
		return "", nil, err
	}

	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return "", nil, fmt.Errorf("create download dir: %w", err)
	}

	tmpl := filepath.Join(d.Dir, "%(id)s.%(ext)s")
	cmd := exec.CommandContext(ctx, d.Bin,
		"--no-playlist",
		"-f", "bestvideo+bestaudio/best",
		"--merge-output-format", "mp4",
		"-o", tmpl,
		url,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", nil, fmt.Errorf("yt-dlp download %s: %w: %s", url, err, strings.TrimSpace(string(out)))
	}

	path, err := d.locate(info.ID)
	if err != nil {
		return "", nil, err
	}
	return path, info, nil
}

// locate finds the downloaded file by id. The merge step may change the
// extension reported in the metadata, so we scan rather than trust it.
func (d *Downloader) locate(id string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(d.Dir, id+".*"))
	if err != nil {
		return "", err
	}
	for _, m := range matches {
		switch strings.ToLower(filepath.Ext(m)) {
		case ".part", ".ytdl", ".json":
			continue
		}
		return m, nil
	}
	return "", fmt.Errorf("downloaded file for %s not found in %s", id, d.Dir)
}

// parseInfo extracts the metadata line from yt-dlp output. Warnings are
// printed on their own lines before the JSON document, so scan for the line
// that parses.
func parseInfo(out []byte) (*Info, error) {
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "{") {
			continue
		}
		var info Info
		if err := json.Unmarshal([]byte(line), &info); err != nil {
			continue
		}
		if info.ID == "" {
			return nil, fmt.Errorf("yt-dlp metadata missing id: %s", line)
		}
		return &info, nil
	}
	return nil, fmt.Errorf("no JSON metadata in yt-dlp output: %s", strings.TrimSpace(string(out)))
}
