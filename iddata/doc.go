// Package iddata provides the identification data container used throughout
// the library.
//
// The central type is Frame, which pairs an input-channel matrix and an
// output-channel matrix over one shared, evenly spaced time base. It is the
// standard unit of data for system-identification preprocessing: every
// transform in the preprocess package takes a Frame and derives a new one.
//
// # Creating a Frame
//
// Build a frame from channel-major matrices (one slice per channel):
//
//	outputs := [][]float64{{1.2, 1.4, 1.1, 1.6}}
//	inputs := [][]float64{{0, 1, 1, 0}}
//	frame, err := iddata.New(outputs, inputs, 0, 0.1)
//
// Channels default to the names y1..yn and u1..un and can be renamed:
//
//	frame.SetOutputNames([]string{"speed"})
//	frame.SetInputNames([]string{"throttle"})
//
// # Time base
//
// All channels in a frame share a regular time index described by a start
// timestamp and a sampling interval:
//
//	frame.Start()    // first timestamp
//	frame.End()      // last timestamp
//	frame.Interval() // spacing between samples
//	frame.Time()     // every time coordinate
//
// # Value semantics
//
// Frames are never mutated in place by transforms. Replacing a channel matrix
// yields a fresh frame:
//
//	detrended, err := frame.WithOutputs(residuals)
//
// # Train/test splits
//
// Split divides a frame at a sample index, keeping both halves' time bases
// consistent:
//
//	train, test, err := frame.Split(70)
//
// Missing samples are represented as math.NaN(); see preprocess.FillMissing
// for gap interpolation.
package iddata
