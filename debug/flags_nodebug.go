//go:build !debug

package debug

// Debug is false unless the debug build tag is set.
const Debug = false
