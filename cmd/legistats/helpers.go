package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/legislature-tools/legistats/internal/analysis"
	"github.com/legislature-tools/legistats/internal/common"
	"github.com/legislature-tools/legistats/internal/dates"
)

// writeReport writes a computed report as indented JSON, creating the
// parent directory if needed. Nothing touches the filesystem until the
// full report has been computed.
func writeReport(path string, report any) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// parseDateFlag parses an optional YYYY-MM-DD flag value.
func parseDateFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := dates.ParseDay(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: --%s %q is not a YYYY-MM-DD date", common.ErrInvalidArgument, name, value)
	}
	return t, nil
}

// newProgress builds a progress callback for an aggregation loop. The
// bar is lazily created so empty rosters show nothing.
func newProgress(description string) analysis.ProgressFunc {
	var bar *progressbar.ProgressBar
	return func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription(description),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)
		}
		_ = bar.Set(done)
	}
}
