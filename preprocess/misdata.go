package preprocess

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/sartorproj/gosysid/iddata"
)

// FillMissing linearly interpolates missing (NaN) samples in every channel of
// the frame. A gap is filled only when known samples bound it on both sides;
// leading and trailing gaps are left as NaN because extrapolation would
// invent data. Channels with fewer than two known samples pass through
// unchanged. The time base is not touched.
func FillMissing(f *iddata.Frame) (*iddata.Frame, error) {
	t := f.Time()

	outFilled, err := fillSide(t, f.Outputs())
	if err != nil {
		return nil, err
	}
	inFilled, err := fillSide(t, f.Inputs())
	if err != nil {
		return nil, err
	}

	return rebuild(f, outFilled, inFilled)
}

func fillSide(t []float64, chans [][]float64) ([][]float64, error) {
	filled := make([][]float64, len(chans))
	for c, ch := range chans {
		fc, err := fillChannel(t, ch)
		if err != nil {
			return nil, err
		}
		filled[c] = fc
	}
	return filled, nil
}

func fillChannel(t, ch []float64) ([]float64, error) {
	filled := append([]float64(nil), ch...)

	var xs, ys []float64
	for i, v := range ch {
		if !math.IsNaN(v) {
			xs = append(xs, t[i])
			ys = append(ys, v)
		}
	}
	if len(xs) == len(ch) || len(xs) < 2 {
		// nothing missing, or no gap has two bounding samples
		return filled, nil
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("fill missing: fitting interpolant: %w", err)
	}

	first, last := xs[0], xs[len(xs)-1]
	for i, v := range ch {
		if math.IsNaN(v) && t[i] > first && t[i] < last {
			filled[i] = pl.Predict(t[i])
		}
	}
	return filled, nil
}
