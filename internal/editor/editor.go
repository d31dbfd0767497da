// Package editor abstracts the host editor behind a small port.
//
// The tracker only needs two capabilities: open one file, and close every
// open view. The concrete host shells out to configurable commands, so any
// editor with a CLI (VS Code, Sublime, vim --remote, ...) can serve.
package editor

import "context"

// Host is the editor surface the tracker drives during restore.
type Host interface {
	// Open asks the editor to open a single file.
	Open(ctx context.Context, path string) error

	// CloseAll asks the editor to close every open view. Hosts without a
	// close capability treat this as a no-op.
	CloseAll(ctx context.Context) error
}
