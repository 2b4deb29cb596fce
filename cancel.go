package sigscan

import "sync/atomic"

// cancelToken is a shared "found" flag used to let concurrent scans
// short-circuit: once set, it is never cleared within a scan. Kernels
// poll it at their outer loop boundary; a relaxed atomic load/store is
// sufficient because the result is actually communicated back through
// the kernel's return value, not through the token itself.
type cancelToken struct {
	flag atomic.Bool
}

func newCancelToken() *cancelToken {
	return &cancelToken{}
}

func (c *cancelToken) isSet() bool {
	return c.flag.Load()
}

func (c *cancelToken) set() {
	c.flag.Store(true)
}
