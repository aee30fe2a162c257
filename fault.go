package rx

import (
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	faultMu      sync.RWMutex
	faultHandler = func(err error) {
		log.Error().Err(err).Msg("unhandled stream error")
	}
)

// OnUnhandledError replaces the sink for errors that reach an observer with
// no error callback. The default logs the error. A nil handler silences
// unhandled errors.
func OnUnhandledError(fn func(error)) {
	faultMu.Lock()
	faultHandler = fn
	faultMu.Unlock()
}

func unhandledError(err error) {
	faultMu.RLock()
	fn := faultHandler
	faultMu.RUnlock()
	if fn != nil {
		fn(err)
	}
}
