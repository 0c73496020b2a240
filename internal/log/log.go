// Package log holds the library-wide logger. The library is silent by
// default; hosts that want visibility into construction failures install
// their own zerolog.Logger via SetLogger. Hot paths never log.
package log

import (
	"io"
	"sync/atomic"

	"github.com/rs/zerolog"
)

var current atomic.Pointer[zerolog.Logger]

func init() {
	disabled := zerolog.New(io.Discard)
	current.Store(&disabled)
}

// Logger returns the current library logger.
func Logger() *zerolog.Logger {
	return current.Load()
}

// SetLogger installs l as the library logger. Safe for concurrent use
// with Logger.
func SetLogger(l zerolog.Logger) {
	current.Store(&l)
}
