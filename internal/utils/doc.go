// Package utils provides shared utility functions.
//
// These utilities are used across multiple packages and include:
//   - String and slice helpers
//   - Path filtering for hidden segments
//   - Terminal interactivity detection
package utils
