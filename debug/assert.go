//go:build debug

package debug

// Guard assertions which are expensive or could panic themselves with `if
// debug.Enabled {...}`, otherwise they remain in release builds.
const Enabled = true

// Assert panics with message if b is false.
func Assert(b bool, message string) {
	if !b {
		panic(message)
	}
}
