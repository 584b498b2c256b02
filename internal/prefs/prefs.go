// Package prefs reads and writes the line-oriented preferences file. Each
// line is an ordinary command; uiscale is applied directly while the rest are
// replayed through the command bus.
package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/gemtui/internal/command"
)

// FileName is the preferences file inside the data directory.
const FileName = "prefs.cfg"

// Window is the last known window geometry.
type Window struct {
	Width  int
	Height int
	X      int
	Y      int
}

// Prefs are the persisted user preferences.
type Prefs struct {
	RetainWindowSize bool
	UIScale          float64
	Window           Window
}

// Defaults returns the preferences used when no file exists.
func Defaults() Prefs {
	return Prefs{RetainWindowSize: true, UIScale: 1}
}

// Read consumes preference lines from r. uiscale lines are handed to apply;
// every other non-blank line goes to post unchanged. It returns the number of
// lines consumed.
func Read(r io.Reader, apply func(float64), post func(string)) (int, error) {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		n++
		cmd := command.Parse(line)
		if cmd.Is("uiscale") {
			if apply != nil {
				apply(cmd.ArgFloat("arg"))
			}
			continue
		}
		if post != nil {
			post(line)
		}
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("read prefs: %w", err)
	}
	return n, nil
}

// Serialize writes p in the same format Read accepts.
func (p Prefs) Serialize(w io.Writer) error {
	if p.RetainWindowSize {
		if _, err := fmt.Fprintf(w, "restorewindow width:%d height:%d coord:%d %d\n",
			p.Window.Width, p.Window.Height, p.Window.X, p.Window.Y); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "uiscale arg:%f\n", p.UIScale)
	return err
}

// Load reads the file at path. A missing file is not an error and consumes
// nothing.
func Load(path string, apply func(float64), post func(string)) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("open prefs: %w", err)
	}
	defer f.Close()
	return Read(f, apply, post)
}

// Save writes p to path, creating the directory as needed.
func (p Prefs) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create prefs directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create prefs: %w", err)
	}
	if err := p.Serialize(f); err != nil {
		f.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	return f.Close()
}

// ClampScale keeps the UI scale within the supported range.
func ClampScale(v float64) float64 {
	switch {
	case v < 0.5:
		return 0.5
	case v > 4:
		return 4
	}
	return v
}
