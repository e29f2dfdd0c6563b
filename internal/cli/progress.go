package cli

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/fpeterek/strojove-uceni/internal/apriori"
)

// Progress reports mining progress on a terminal: one line per finished
// level, then a bar while rules are generated. A disabled Progress is a no-op.
type Progress struct {
	writer  io.Writer
	bar     *progressbar.ProgressBar
	enabled bool
	mu      sync.Mutex
}

// NewProgress creates a progress reporter writing to w.
func NewProgress(w io.Writer, enabled bool) *Progress {
	return &Progress{writer: w, enabled: enabled}
}

// Level implements the apriori level hook.
func (p *Progress) Level(stats apriori.LevelStats) {
	if !p.enabled {
		return
	}
	msg := fmt.Sprintf("level %d: %d candidates, %d frequent", stats.Size, stats.Candidates, stats.Frequent)
	if _, err := fmt.Fprintln(p.writer, SubtleStyle.Render(msg)); err != nil {
		slog.Warn("Failed to write level progress", "error", err)
	}
}

// Itemset implements the apriori rule hook.
func (p *Progress) Itemset(done, total int) {
	if !p.enabled {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar == nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(p.writer),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowCount(),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("[cyan][bold]Generating rules...[reset]"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				if _, err := fmt.Fprintln(p.writer); err != nil {
					slog.Warn("Failed to write newline after progress bar", "error", err)
				}
			}),
		)
	}

	if err := p.bar.Set(done); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}

// Options returns the apriori hooks bound to this reporter.
func (p *Progress) Options() []apriori.Option {
	return []apriori.Option{
		apriori.WithLevelHook(p.Level),
		apriori.WithRuleHook(p.Itemset),
	}
}
