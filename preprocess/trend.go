package preprocess

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/gosysid/iddata"
)

var (
	// ErrInvalidTrendMode is returned when Detrend is called with a TrendMode
	// that was not built by MeanTrend, LinearTrend, or ApplyTrend.
	ErrInvalidTrendMode = errors.New("invalid trend type")
	// ErrTrendShape is returned when a supplied TrendInfo does not match the
	// frame's channel counts.
	ErrTrendShape = errors.New("trend coefficients do not match frame channels")
)

// TrendInfo holds one affine trend per channel: the fitted line for channel c
// at time t is Offset[c] + Slope[c]*t. The slices on each side have one entry
// per channel on that side; a side with no channels has empty slices.
type TrendInfo struct {
	InputOffset  []float64
	InputSlope   []float64
	OutputOffset []float64
	OutputSlope  []float64
}

type trendKind int

const (
	trendInvalid trendKind = iota
	trendMean
	trendLinear
	trendApply
)

// TrendMode selects how Detrend obtains the trend it removes. The zero value
// is invalid; construct modes with MeanTrend, LinearTrend, or ApplyTrend.
type TrendMode struct {
	kind trendKind
	info TrendInfo
}

// MeanTrend removes each channel's arithmetic mean (slope zero).
func MeanTrend() TrendMode { return TrendMode{kind: trendMean} }

// LinearTrend removes a least-squares line fitted per channel against the
// frame's time coordinates.
func LinearTrend() TrendMode { return TrendMode{kind: trendLinear} }

// ApplyTrend removes a previously computed trend instead of fitting a new
// one. This is how a trend fitted on training data is removed from test data
// without refitting.
func ApplyTrend(info TrendInfo) TrendMode { return TrendMode{kind: trendApply, info: info} }

// Detrend removes a per-channel affine trend from every channel of the frame
// and returns the detrended frame together with the TrendInfo that was
// removed. For MeanTrend and LinearTrend the TrendInfo is computed from the
// data; for ApplyTrend the supplied TrendInfo is used as-is and returned
// unchanged. The input frame is not modified, and its time base and channel
// names carry over to the result exactly.
func Detrend(f *iddata.Frame, mode TrendMode) (*iddata.Frame, TrendInfo, error) {
	switch mode.kind {
	case trendMean, trendLinear:
		return fitTrend(f, mode.kind)
	case trendApply:
		return applyTrend(f, mode.info)
	default:
		return nil, TrendInfo{}, fmt.Errorf("detrend: %w", ErrInvalidTrendMode)
	}
}

func fitTrend(f *iddata.Frame, kind trendKind) (*iddata.Frame, TrendInfo, error) {
	t := f.Time()

	outRes, outOff, outSlope := fitSide(t, f.Outputs(), kind)
	inRes, inOff, inSlope := fitSide(t, f.Inputs(), kind)

	info := TrendInfo{
		InputOffset:  inOff,
		InputSlope:   inSlope,
		OutputOffset: outOff,
		OutputSlope:  outSlope,
	}

	g, err := rebuild(f, outRes, inRes)
	if err != nil {
		return nil, TrendInfo{}, err
	}
	return g, info, nil
}

// fitSide fits and removes one trend per channel. An empty side yields empty
// coefficient slices.
func fitSide(t []float64, chans [][]float64, kind trendKind) (res [][]float64, off, slope []float64) {
	res = make([][]float64, len(chans))
	off = make([]float64, len(chans))
	slope = make([]float64, len(chans))
	for c, ch := range chans {
		if kind == trendLinear {
			off[c], slope[c] = stat.LinearRegression(t, ch, nil, false)
		} else {
			off[c] = stat.Mean(ch, nil)
		}
		res[c] = subtractLine(t, ch, off[c], slope[c])
	}
	return res, off, slope
}

func applyTrend(f *iddata.Frame, info TrendInfo) (*iddata.Frame, TrendInfo, error) {
	if len(info.OutputOffset) != f.NOutputs() || len(info.OutputSlope) != f.NOutputs() {
		return nil, TrendInfo{}, fmt.Errorf("detrend: %d output trend coefficients for %d channels: %w",
			len(info.OutputOffset), f.NOutputs(), ErrTrendShape)
	}
	if len(info.InputOffset) != f.NInputs() || len(info.InputSlope) != f.NInputs() {
		return nil, TrendInfo{}, fmt.Errorf("detrend: %d input trend coefficients for %d channels: %w",
			len(info.InputOffset), f.NInputs(), ErrTrendShape)
	}

	t := f.Time()
	outRes := removeSide(t, f.Outputs(), info.OutputOffset, info.OutputSlope)
	inRes := removeSide(t, f.Inputs(), info.InputOffset, info.InputSlope)

	g, err := rebuild(f, outRes, inRes)
	if err != nil {
		return nil, TrendInfo{}, err
	}
	return g, info, nil
}

func removeSide(t []float64, chans [][]float64, off, slope []float64) [][]float64 {
	res := make([][]float64, len(chans))
	for c, ch := range chans {
		res[c] = subtractLine(t, ch, off[c], slope[c])
	}
	return res
}

func subtractLine(t, ch []float64, off, slope float64) []float64 {
	res := make([]float64, len(ch))
	for i, v := range ch {
		res[i] = v - (off + slope*t[i])
	}
	return res
}

// rebuild derives a frame with both matrices replaced but the time base and
// channel names untouched. The transforms preserve shape, so errors here
// indicate a bug in the caller.
func rebuild(f *iddata.Frame, outputs, inputs [][]float64) (*iddata.Frame, error) {
	g, err := f.WithOutputs(outputs)
	if err != nil {
		return nil, err
	}
	return g.WithInputs(inputs)
}
