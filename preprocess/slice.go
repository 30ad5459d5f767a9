package preprocess

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/sartorproj/gosysid/iddata"
)

var (
	// ErrEmptyWindow is returned when the requested window contains no
	// samples of the frame's time base.
	ErrEmptyWindow = errors.New("slice window contains no samples")
	// ErrInvalidFreq is returned for a non-positive frequency multiplier.
	ErrInvalidFreq = errors.New("frequency multiplier must be positive")
)

// SliceConfig controls windowing and resampling of a frame.
type SliceConfig struct {
	// Start is the window start. NaN selects the frame's first timestamp.
	Start float64
	// End is the window end. NaN selects the frame's last timestamp.
	End float64
	// Freq multiplies the sampling frequency: 2 halves the sampling
	// interval (upsampling), 0.5 doubles it. NaN or 1 keeps the original
	// interval.
	Freq float64
}

// DefaultSliceConfig keeps the full time range and the original interval.
func DefaultSliceConfig() SliceConfig {
	return SliceConfig{Start: math.NaN(), End: math.NaN(), Freq: 1}
}

// Slice extracts the time window [cfg.Start, cfg.End] from the frame and,
// when cfg.Freq differs from 1, resamples the windowed span onto a regular
// grid with interval Interval()/Freq. Both sides are windowed identically so
// they stay time-aligned, and channel names are preserved. Window bounds
// outside the frame's span are clamped to it; a window that contains no
// samples after clamping fails with ErrEmptyWindow. The input frame is not
// modified.
func Slice(f *iddata.Frame, cfg SliceConfig) (*iddata.Frame, error) {
	start, end, ts := f.Start(), f.End(), f.Interval()

	s := cfg.Start
	if math.IsNaN(s) {
		s = start
	}
	e := cfg.End
	if math.IsNaN(e) {
		e = end
	}
	freq := cfg.Freq
	if math.IsNaN(freq) {
		freq = 1
	}
	if freq <= 0 {
		return nil, fmt.Errorf("slice: freq %v: %w", cfg.Freq, ErrInvalidFreq)
	}

	if s < start {
		s = start
	}
	if e > end {
		e = end
	}

	// Snap the window to the existing grid: first sample at or after s,
	// last sample at or before e. The epsilon absorbs float error in the
	// division so exact grid timestamps are never dropped.
	const eps = 1e-9
	lo := int(math.Ceil((s-start)/ts - eps))
	hi := int(math.Floor((e-start)/ts + eps))
	if lo > hi {
		return nil, fmt.Errorf("slice: window [%v, %v]: %w", s, e, ErrEmptyWindow)
	}

	wStart := start + float64(lo)*ts
	wEnd := start + float64(hi)*ts
	outputs := windowSide(f.Outputs(), lo, hi+1)
	inputs := windowSide(f.Inputs(), lo, hi+1)

	newTs := ts
	if freq != 1 {
		newTs = ts / freq
		wTime := timeGrid(wStart, ts, hi-lo+1)
		grid := timeGrid(wStart, newTs, int(math.Floor((wEnd-wStart)/newTs+eps))+1)

		var err error
		if outputs, err = resampleSide(wTime, outputs, grid); err != nil {
			return nil, err
		}
		if inputs, err = resampleSide(wTime, inputs, grid); err != nil {
			return nil, err
		}
	}

	g, err := iddata.New(outputs, inputs, wStart, newTs)
	if err != nil {
		return nil, fmt.Errorf("slice: %w", err)
	}
	if err := g.SetOutputNames(f.OutputNames()); err != nil {
		return nil, fmt.Errorf("slice: %w", err)
	}
	if err := g.SetInputNames(f.InputNames()); err != nil {
		return nil, fmt.Errorf("slice: %w", err)
	}
	return g, nil
}

func windowSide(chans [][]float64, lo, hi int) [][]float64 {
	out := make([][]float64, len(chans))
	for c, ch := range chans {
		out[c] = append([]float64(nil), ch[lo:hi]...)
	}
	return out
}

// resampleSide reconstructs each channel on the new time grid by
// piecewise-linear interpolation of the windowed samples.
func resampleSide(wTime []float64, chans [][]float64, grid []float64) ([][]float64, error) {
	out := make([][]float64, len(chans))
	for c, ch := range chans {
		if len(wTime) < 2 {
			// a single-sample window cannot be reinterpolated; the new
			// grid degenerates to that one timestamp
			out[c] = append([]float64(nil), ch...)
			continue
		}
		var pl interp.PiecewiseLinear
		if err := pl.Fit(wTime, ch); err != nil {
			return nil, fmt.Errorf("slice: fitting interpolant: %w", err)
		}
		rc := make([]float64, len(grid))
		for i, t := range grid {
			rc[i] = pl.Predict(t)
		}
		out[c] = rc
	}
	return out, nil
}

func timeGrid(start, ts float64, n int) []float64 {
	t := make([]float64, n)
	if n == 1 {
		t[0] = start
		return t
	}
	floats.Span(t, start, start+float64(n-1)*ts)
	return t
}
