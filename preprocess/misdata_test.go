package preprocess

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gosysid/iddata"
)

func nan() float64 { return math.NaN() }

func TestFillMissing(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64 // NaN entries must stay NaN
	}{
		{
			name: "interior gap with trailing edge",
			in:   []float64{1, nan(), 3, nan(), nan()},
			want: []float64{1, 2, 3, nan(), nan()},
		},
		{
			name: "leading edge stays missing",
			in:   []float64{nan(), nan(), 4, nan(), 8},
			want: []float64{nan(), nan(), 4, 6, 8},
		},
		{
			name: "multi-sample interior gap",
			in:   []float64{0, nan(), nan(), nan(), 8},
			want: []float64{0, 2, 4, 6, 8},
		},
		{
			name: "no gaps",
			in:   []float64{1, 2, 3},
			want: []float64{1, 2, 3},
		},
		{
			name: "single known sample",
			in:   []float64{nan(), 5, nan()},
			want: []float64{nan(), 5, nan()},
		},
		{
			name: "all missing",
			in:   []float64{nan(), nan(), nan()},
			want: []float64{nan(), nan(), nan()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := iddata.New([][]float64{tt.in}, nil, 0, 1)
			require.NoError(t, err)

			g, err := FillMissing(f)
			require.NoError(t, err)
			require.NotEmpty(t, g.Outputs())

			got := g.Outputs()[0]
			require.Len(t, got, len(tt.want))
			for i, w := range tt.want {
				if math.IsNaN(w) {
					assert.True(t, math.IsNaN(got[i]), "index %d should stay NaN", i)
				} else {
					assert.InDelta(t, w, got[i], tol, "index %d", i)
				}
			}
		})
	}
}

func TestFillMissingBothSides(t *testing.T) {
	f, err := iddata.New(
		[][]float64{{1, nan(), 3}},
		[][]float64{{0, nan(), 4}},
		0, 0.5,
	)
	require.NoError(t, err)

	g, err := FillMissing(f)
	require.NoError(t, err)

	assert.InDelta(t, 2, g.Outputs()[0][1], tol)
	assert.InDelta(t, 2, g.Inputs()[0][1], tol)
	assert.Equal(t, f.Start(), g.Start())
	assert.Equal(t, f.Interval(), g.Interval())
	assert.Equal(t, f.Len(), g.Len())
}

func TestFillMissingUnevenValues(t *testing.T) {
	// interpolation must follow the line through the bounding samples, not
	// assume unit steps
	f, err := iddata.New([][]float64{{10, nan(), nan(), 4}}, nil, 0, 2)
	require.NoError(t, err)

	g, err := FillMissing(f)
	require.NoError(t, err)

	assert.InDelta(t, 8, g.Outputs()[0][1], tol)
	assert.InDelta(t, 6, g.Outputs()[0][2], tol)
}

func TestFillMissingLeavesArgument(t *testing.T) {
	f, err := iddata.New([][]float64{{1, nan(), 3}}, nil, 0, 1)
	require.NoError(t, err)

	_, err = FillMissing(f)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(f.Outputs()[0][1]), "argument frame must be untouched")
}

func TestFillMissingZeroInputChannels(t *testing.T) {
	f, err := iddata.New([][]float64{{1, nan(), 3}}, nil, 0, 1)
	require.NoError(t, err)

	g, err := FillMissing(f)
	require.NoError(t, err)
	assert.Equal(t, 0, g.NInputs())
}
