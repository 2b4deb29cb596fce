package sigscan

import "errors"

// ErrExecutorClosed is returned by Executor methods once Close has been
// called; a closed Executor accepts no further work.
var ErrExecutorClosed = errors.New("sigscan: executor is closed")
