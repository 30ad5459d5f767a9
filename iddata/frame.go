// Package iddata provides the identification data container shared by all
// preprocessing operations.
package iddata

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrNoChannels is returned when a frame would hold no channels at all.
	ErrNoChannels = errors.New("frame must have at least one channel")
	// ErrChannelLength is returned when channels disagree on sample count.
	ErrChannelLength = errors.New("all channels must share one sample count")
	// ErrInterval is returned for a non-positive sampling interval.
	ErrInterval = errors.New("sampling interval must be positive")
	// ErrNameCount is returned when channel names do not match channel count.
	ErrNameCount = errors.New("name count must match channel count")
	// ErrSplitIndex is returned when a split point falls outside the frame.
	ErrSplitIndex = errors.New("split index out of range")
)

// Frame pairs an output-channel matrix and an input-channel matrix over a
// shared, evenly spaced time base. Channels are stored channel-major: one
// []float64 per channel, all aligned to the same time index. Missing samples
// are represented as NaN.
//
// A Frame is treated as a value: transforms derive a new Frame and never
// modify the one they were given.
type Frame struct {
	outputs  [][]float64
	inputs   [][]float64
	outNames []string
	inNames  []string
	start    float64
	ts       float64
	n        int
}

// New creates a frame from output and input channel matrices. Either side may
// be empty, but not both. Every channel across both sides must have the same
// non-zero length. The time base runs from start with sampling interval ts.
// Channels are named y1..yn and u1..un by default.
func New(outputs, inputs [][]float64, start, ts float64) (*Frame, error) {
	if ts <= 0 {
		return nil, fmt.Errorf("iddata: interval %v: %w", ts, ErrInterval)
	}
	if len(outputs) == 0 && len(inputs) == 0 {
		return nil, fmt.Errorf("iddata: %w", ErrNoChannels)
	}

	n := -1
	for _, side := range [][][]float64{outputs, inputs} {
		for _, ch := range side {
			if n < 0 {
				n = len(ch)
			}
			if len(ch) != n {
				return nil, fmt.Errorf("iddata: channel has %d samples, want %d: %w",
					len(ch), n, ErrChannelLength)
			}
		}
	}
	if n == 0 {
		return nil, fmt.Errorf("iddata: empty channels: %w", ErrChannelLength)
	}

	return &Frame{
		outputs:  copyMatrix(outputs),
		inputs:   copyMatrix(inputs),
		outNames: defaultNames("y", len(outputs)),
		inNames:  defaultNames("u", len(inputs)),
		start:    start,
		ts:       ts,
		n:        n,
	}, nil
}

// Outputs returns the output-channel matrix. The returned slices are shared
// with the frame; callers must not modify them.
func (f *Frame) Outputs() [][]float64 { return f.outputs }

// Inputs returns the input-channel matrix. The returned slices are shared
// with the frame; callers must not modify them.
func (f *Frame) Inputs() [][]float64 { return f.inputs }

// NOutputs returns the number of output channels.
func (f *Frame) NOutputs() int { return len(f.outputs) }

// NInputs returns the number of input channels.
func (f *Frame) NInputs() int { return len(f.inputs) }

// Len returns the number of samples per channel.
func (f *Frame) Len() int { return f.n }

// Start returns the timestamp of the first sample.
func (f *Frame) Start() float64 { return f.start }

// End returns the timestamp of the last sample.
func (f *Frame) End() float64 { return f.start + float64(f.n-1)*f.ts }

// Interval returns the sampling interval.
func (f *Frame) Interval() float64 { return f.ts }

// Time returns the time coordinate of every sample.
func (f *Frame) Time() []float64 {
	t := make([]float64, f.n)
	if f.n == 1 {
		t[0] = f.start
		return t
	}
	floats.Span(t, f.start, f.End())
	return t
}

// OutputNames returns the output channel names.
func (f *Frame) OutputNames() []string { return f.outNames }

// InputNames returns the input channel names.
func (f *Frame) InputNames() []string { return f.inNames }

// SetOutputNames renames the output channels.
func (f *Frame) SetOutputNames(names []string) error {
	if len(names) != len(f.outputs) {
		return fmt.Errorf("iddata: %d names for %d output channels: %w",
			len(names), len(f.outputs), ErrNameCount)
	}
	f.outNames = append([]string(nil), names...)
	return nil
}

// SetInputNames renames the input channels.
func (f *Frame) SetInputNames(names []string) error {
	if len(names) != len(f.inputs) {
		return fmt.Errorf("iddata: %d names for %d input channels: %w",
			len(names), len(f.inputs), ErrNameCount)
	}
	f.inNames = append([]string(nil), names...)
	return nil
}

// WithOutputs returns a new frame with the output matrix replaced wholesale.
// The replacement must match the frame's channel count and sample count; time
// base, names, and inputs are carried over unchanged.
func (f *Frame) WithOutputs(outputs [][]float64) (*Frame, error) {
	if err := f.checkShape(outputs, len(f.outputs), "output"); err != nil {
		return nil, err
	}
	g := f.shallow()
	g.outputs = copyMatrix(outputs)
	g.inputs = copyMatrix(f.inputs)
	return g, nil
}

// WithInputs returns a new frame with the input matrix replaced wholesale.
// The replacement must match the frame's channel count and sample count; time
// base, names, and outputs are carried over unchanged.
func (f *Frame) WithInputs(inputs [][]float64) (*Frame, error) {
	if err := f.checkShape(inputs, len(f.inputs), "input"); err != nil {
		return nil, err
	}
	g := f.shallow()
	g.inputs = copyMatrix(inputs)
	g.outputs = copyMatrix(f.outputs)
	return g, nil
}

// Copy creates a deep copy of the frame.
func (f *Frame) Copy() *Frame {
	g := f.shallow()
	g.outputs = copyMatrix(f.outputs)
	g.inputs = copyMatrix(f.inputs)
	return g
}

// Split divides the frame at sample index k: the first frame holds samples
// [0, k) and keeps the original start, the second holds samples [k, n) and
// starts at start + k*ts. Useful for train/test evaluation splits.
func (f *Frame) Split(k int) (*Frame, *Frame, error) {
	if k <= 0 || k >= f.n {
		return nil, nil, fmt.Errorf("iddata: split at %d of %d samples: %w",
			k, f.n, ErrSplitIndex)
	}

	head := f.shallow()
	head.outputs = sliceMatrix(f.outputs, 0, k)
	head.inputs = sliceMatrix(f.inputs, 0, k)
	head.n = k

	tail := f.shallow()
	tail.outputs = sliceMatrix(f.outputs, k, f.n)
	tail.inputs = sliceMatrix(f.inputs, k, f.n)
	tail.start = f.start + float64(k)*f.ts
	tail.n = f.n - k

	return head, tail, nil
}

// shallow clones everything but the channel matrices. Names are copied so the
// clone can be renamed independently.
func (f *Frame) shallow() *Frame {
	return &Frame{
		outNames: append([]string(nil), f.outNames...),
		inNames:  append([]string(nil), f.inNames...),
		start:    f.start,
		ts:       f.ts,
		n:        f.n,
	}
}

func (f *Frame) checkShape(chans [][]float64, want int, side string) error {
	if len(chans) != want {
		return fmt.Errorf("iddata: %d %s channels, want %d: %w",
			len(chans), side, want, ErrChannelLength)
	}
	for _, ch := range chans {
		if len(ch) != f.n {
			return fmt.Errorf("iddata: %s channel has %d samples, want %d: %w",
				side, len(ch), f.n, ErrChannelLength)
		}
	}
	return nil
}

func copyMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, ch := range m {
		out[i] = append([]float64(nil), ch...)
	}
	return out
}

func sliceMatrix(m [][]float64, lo, hi int) [][]float64 {
	out := make([][]float64, len(m))
	for i, ch := range m {
		out[i] = append([]float64(nil), ch[lo:hi]...)
	}
	return out
}

func defaultNames(prefix string, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return names
}
