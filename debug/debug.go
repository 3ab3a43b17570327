// Package debug exposes the build-time debug flag and assertion helpers.
//
// Internal consistency checks throughout the module are compiled in only when
// the "debug" build tag is set; release builds fold them to nothing.
package debug

// Assert panics with message if condition is false.
// It is a no-op unless the debug build tag is set.
func Assert(condition bool, message ...string) {
	if Debug && !condition {
		if len(message) > 0 {
			panic(message[0])
		}
		panic("assertion failed")
	}
}
