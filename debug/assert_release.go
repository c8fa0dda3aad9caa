//go:build !debug

// Package debug provides assertions for hardware rules that can be checked in
// software, such as descriptor alignment. They are enabled with the debug
// build tag and compile to nothing otherwise.
//
// Violating these rules leads to undefined hardware behaviour instead of an
// error, so test builds should always set the tag.
package debug

// Guard assertions which are expensive or could panic themselves with `if
// debug.Enabled {...}`, otherwise they remain in release builds.
const Enabled = false

// Assert panics with message if b is false.
func Assert(b bool, message string) {}
