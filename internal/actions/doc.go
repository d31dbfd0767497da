// Package actions implements the business logic behind worksets commands.
//
// Each action takes a runtime.Context and an options struct, performs the
// operation through the tracker, and reports through the context's Splog.
// Errors that reach the command boundary are rendered as user-visible
// messages; nothing here panics the process.
package actions
