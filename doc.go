// Package gosysid provides preprocessing utilities for system-identification
// data: discrete-time input-output measurement records and the standard
// transforms applied to them before model fitting.
//
// # Features
//
//   - Identification frame container pairing input and output channel
//     matrices over one shared, evenly spaced time base
//   - Trend removal: mean subtraction, least-squares linear detrending, and
//     re-application of a previously fitted trend to new data
//   - Missing-data interpolation: linear gap filling without extrapolation
//   - Time-range slicing and resampling of whole frames
//
// # Quick Start
//
// Build a frame and run it through a preprocessing pipeline:
//
//	frame, _ := iddata.New(outputs, inputs, 0, 0.1)
//	window, _ := preprocess.Slice(frame, preprocess.SliceConfig{Start: 2, End: 18, Freq: 1})
//	filled, _ := preprocess.FillMissing(window)
//	train, test, _ := filled.Split(filled.Len() * 7 / 10)
//	trainD, tr, _ := preprocess.Detrend(train, preprocess.LinearTrend())
//	testD, _, _ := preprocess.Detrend(test, preprocess.ApplyTrend(tr))
//
// Reusing the training trend on the test segment, instead of refitting it,
// keeps held-out evaluation honest.
//
// # Packages
//
// The library is organized into the following packages:
//
//   - iddata: the identification frame container and accessors
//   - preprocess: detrending, missing-data interpolation, slicing/resampling
//
// Estimation itself (ARX, state-space, transfer-function fitting) is out of
// scope; this library prepares the data those methods consume.
package gosysid
