package sigscan

import (
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// defaultLogger is the package-wide zerolog.Logger used by functions
// that have no natural place to receive one explicitly (Compile,
// FromCells). It starts silent; callers opt in with SetLogger.
var defaultLogger atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.Nop()
	defaultLogger.Store(&l)
}

// SetLogger installs logger as the package-wide default used by
// Compile and FromCells. Passing zerolog.Nop() silences logging again.
func SetLogger(logger zerolog.Logger) {
	defaultLogger.Store(&logger)
}

// NewConsoleLogger builds a human-readable zerolog.Logger writing to
// stderr, useful for SetLogger during development.
func NewConsoleLogger(level zerolog.Level) zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func logPatternCompiled(p *CompiledPattern) {
	defaultLogger.Load().Debug().
		Str("pattern", p.String()).
		Int("cells", p.Len()).
		Str("strategy", p.strategy.String()).
		Msg("pattern compiled")
}
