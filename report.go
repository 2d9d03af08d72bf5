// SPDX-License-Identifier: EPL-2.0

package sfx

import (
	"errors"
	"log/slog"
)

// Reporter receives the non-fatal conditions found while playing sounds:
// unknown sounds, missing sample collections, empty sample sets and
// rejected playback.
type Reporter interface {
	Report(err error)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(err error)

func (f ReporterFunc) Report(err error) { f(err) }

// LogReporter writes each report as a warning. A nil Logger uses
// slog.Default.
type LogReporter struct {
	Logger *slog.Logger
}

func (r LogReporter) Report(err error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var e *Error
	if errors.As(err, &e) {
		logger.Warn("sfx: "+e.Op+" failed", "op", e.Op, "sound", e.SoundID, "err", e.Err)
		return
	}
	logger.Warn("sfx: playback problem", "err", err)
}

// discard drops every report.
type discard struct{}

func (discard) Report(error) {}

// Discard is a Reporter that ignores everything, for headless use.
var Discard Reporter = discard{}
