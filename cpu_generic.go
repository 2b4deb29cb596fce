//go:build !amd64

package sigscan

// simdDynamicAnchorAvailable is always false on non-amd64 builds; the
// portable DynamicAnchor kernel is used instead. See cpu_amd64.go.
func simdDynamicAnchorAvailable() bool {
	return false
}
