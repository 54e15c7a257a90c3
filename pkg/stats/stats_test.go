package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanMedian(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Median(nil))
	assert.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-9)
	assert.InDelta(t, 2.5, Median([]float64{4, 1, 3, 2}), 1e-9)
	assert.InDelta(t, 3, Median([]float64{5, 3, 1}), 1e-9)
	assert.InDelta(t, 7, Median([]float64{7}), 1e-9)
	assert.InDelta(t, 12, Median([]float64{20, 12, 0, 15, 11}), 1e-9)
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, Sum(nil))
	assert.InDelta(t, 36, Sum([]float64{18, 12, 6}), 1e-9)
}

func TestStdDev(t *testing.T) {
	assert.Equal(t, 0.0, StdDev([]float64{7}))
	// sample stdev of 2,4,4,4,5,5,7,9 is sqrt(32/7)
	assert.InDelta(t, 2.138, StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-3)
	assert.Equal(t, 0.0, StdDev(nil))
	assert.InDelta(t, 0, StdDev([]float64{5, 5, 5}), 1e-9)
}

func TestQuartiles(t *testing.T) {
	q1, q3 := Quartiles([]float64{8, 1, 7, 2, 6, 3, 5, 4})
	assert.Equal(t, 3.0, q1)
	assert.Equal(t, 7.0, q3)

	xs := []float64{3, 1, 2}
	Quartiles(xs)
	Median(xs)
	assert.Equal(t, []float64{3, 1, 2}, xs, "input must not be reordered")
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, Percent(1, 0))
	assert.InDelta(t, 25, Percent(1, 4), 1e-9)
	assert.Equal(t, []float64{1, 2}, Ints([]int{1, 2}))
}
