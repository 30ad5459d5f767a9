// Package preprocess provides preprocessing transforms for identification
// data: trend removal, missing-data interpolation, and time-range slicing
// with resampling.
//
// All transforms operate on an iddata.Frame, apply to every channel of both
// sides independently, and return a new frame; the argument is never
// modified. They compose freely:
//
//	window, _ := preprocess.Slice(frame, preprocess.SliceConfig{Start: 10, End: 60, Freq: 1})
//	filled, _ := preprocess.FillMissing(window)
//	train, test, _ := filled.Split(filled.Len() * 7 / 10)
//
// # Detrending
//
// Detrend removes a per-channel affine trend and reports the coefficients it
// removed:
//
//	detrended, tr, err := preprocess.Detrend(train, preprocess.LinearTrend())
//
// The same trend can then be removed from held-out data without refitting,
// which keeps train/test evaluation honest:
//
//	testDetrended, _, err := preprocess.Detrend(test, preprocess.ApplyTrend(tr))
//
// MeanTrend subtracts each channel's mean; LinearTrend fits ordinary least
// squares against the frame's time coordinates.
//
// # Missing data
//
// FillMissing linearly interpolates NaN samples that are bounded by known
// samples on both sides. Edge gaps are never extrapolated:
//
//	filled, err := preprocess.FillMissing(frame)
//
// # Slicing and resampling
//
// Slice windows a frame to a time range and can change its sampling rate via
// a frequency multiplier:
//
//	half, err := preprocess.Slice(frame, preprocess.SliceConfig{
//		Start: math.NaN(), // keep frame start
//		End:   math.NaN(), // keep frame end
//		Freq:  0.5,        // double the sampling interval
//	})
package preprocess
