// Package utils provides small internal helpers shared by the HTTP surface.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Time formatting utilities
package utils
