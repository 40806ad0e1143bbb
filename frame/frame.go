// frame.go defines the Frame interface for decoded video frames.

// Package frame provides types and utilities for handling decoded video
// frames.
package frame

type Frame interface {
	Input | Output
}
