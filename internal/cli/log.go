package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// logTimeFormat keeps sub-second precision so search progress lines that
// land in the same second stay ordered.
const logTimeFormat = "15:04:05.00"

// newLogger returns the shared command logger, prefixed with the binary
// name so its lines stand apart from the results on stdout.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          appName,
		ReportTimestamp: true,
		TimeFormat:      logTimeFormat,
	})
}

// progress times one command.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with keyvals and an elapsed=<duration> pair.
func (p *progress) done(msg string, keyvals ...any) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	p.logger.Info(msg, append(keyvals, "elapsed", elapsed)...)
}

// depthLogger returns a search hook that logs at debug level every time the
// frontier reaches a new depth.
func depthLogger(l *log.Logger, what string) func(depth int) {
	deepest, count := -1, 0

	return func(depth int) {
		count++
		if depth > deepest {
			deepest = depth
			l.Debug("search frontier advanced", "depth", depth, what, count)
		}
	}
}
