// Package headless provides a windowless backend that renders into an
// in-memory RGBA frame.
//
// It is pure Go with no native dependencies, which makes it the
// backend of choice for tests and CI pipelines.
// Importing the package registers it under the name "headless":
//
//	import _ "github.com/infinite-runner/gfx/backend/headless"
//
// The frame never receives close events, so ShouldClose always
// reports false; callers bound their loop by frame count or time.
// The current frame can be inspected with Frame or written out as a
// PNG with Snapshot.
package headless
