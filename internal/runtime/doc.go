// Package runtime provides the execution context for worksets commands.
//
// It encapsulates shared dependencies needed by actions: the tracker
// instance, the state store, the repository configuration, the logger, and
// the repository root path.
package runtime
