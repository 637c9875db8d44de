// Package audit appends session events to a persistent, human-readable log:
// every command line received, every login (successful or failed), and every
// logout.
package audit

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Sink records one audit event.
type Sink interface {
	Record(message string)
}

// FileSink writes `[<timestamp>] <message>` lines to an append-only file.
// The file is opened and closed per write so entries survive abnormal
// termination. Write failures are reported to the diagnostic logger and
// otherwise swallowed: auditing must never break the session.
type FileSink struct {
	path   string
	logger zerolog.Logger
	now    func() time.Time
}

// NewFileSink returns a sink appending to the file at path. The file is
// created on first write.
func NewFileSink(path string, logger zerolog.Logger) *FileSink {
	return &FileSink{
		path:   path,
		logger: logger.With().Str("component", "audit").Logger(),
		now:    time.Now,
	}
}

func (s *FileSink) Record(message string) {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		s.logger.Error().Err(err).Str("path", s.path).Msg("audit log open failed")
		return
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "[%s] %s\n", s.now().Format(time.ANSIC), message); err != nil {
		s.logger.Error().Err(err).Str("path", s.path).Msg("audit log write failed")
	}
}
