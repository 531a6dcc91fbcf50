package estimate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imageresizer/internal/domain"
)

var (
	fullHD = domain.Dimensions{Width: 1920, Height: 1080}
	vga    = domain.Dimensions{Width: 640, Height: 480}
)

func TestEstimateProportionalToArea(t *testing.T) {
	est, err := Estimate(2073600, fullHD, vga)
	require.NoError(t, err)
	assert.InDelta(t, 307200, est.ProjectedBytes, 1e-6)
	assert.InDelta(t, (1-307200.0/2073600.0)*100, est.ReductionPercent, 1e-9)
	assert.InDelta(t, 230400, est.JPGEstimateBytes, 1e-6)
	assert.InDelta(t, 460800, est.PNGEstimateBytes, 1e-6)
}

func TestEstimateFormatMultipliers(t *testing.T) {
	for _, size := range []int64{1, 1000, 123457, 98765432} {
		est, err := Estimate(size, fullHD, domain.Dimensions{Width: 333, Height: 777})
		require.NoError(t, err)
		require.Greater(t, est.ProjectedBytes, 0.0)
		assert.InDelta(t, 0.75, est.JPGEstimateBytes/est.ProjectedBytes, 1e-12)
		assert.InDelta(t, 1.5, est.PNGEstimateBytes/est.ProjectedBytes, 1e-12)
	}
}

func TestEstimateReduction(t *testing.T) {
	targets := []domain.Dimensions{vga, fullHD, {Width: 3840, Height: 2160}, {Width: 1, Height: 1}}
	for _, target := range targets {
		est, err := Estimate(500000, fullHD, target)
		require.NoError(t, err)
		expected := (1 - target.Area()/fullHD.Area()) * 100
		assert.InDelta(t, expected, est.ReductionPercent, 1e-9, target.String())
	}
}

func TestEstimateZeroBytes(t *testing.T) {
	est, err := Estimate(0, fullHD, vga)
	require.NoError(t, err)
	assert.Equal(t, 0.0, est.ProjectedBytes)
	assert.Equal(t, 0.0, est.ReductionPercent)
}

func TestEstimateZeroArea(t *testing.T) {
	_, err := Estimate(1000, domain.Dimensions{Width: 0, Height: 100}, vga)
	assert.ErrorIs(t, err, ErrZeroArea)
}

func TestEstimateHugeTargetDoesNotOverflow(t *testing.T) {
	huge := domain.Dimensions{Width: 1 << 32, Height: 1 << 32}

	est, err := Estimate(1000, domain.Dimensions{Width: 100, Height: 100}, huge)
	require.NoError(t, err)
	assert.InEpsilon(t, 1000*math.Pow(2, 64)/10000, est.ProjectedBytes, 1e-12)
	assert.Less(t, est.ReductionPercent, 0.0)
	assert.Equal(t, "1677721.60 TB", FormatSize(est.ProjectedBytes))
}

func TestFormatSize(t *testing.T) {
	cases := map[float64]string{
		0:                "0.00 B",
		1023:             "1023.00 B",
		1024:             "1.00 KB",
		1536:             "1.50 KB",
		1048576:          "1.00 MB",
		1073741824:       "1.00 GB",
		1099511627776:    "1.00 TB",
		2251799813685248: "2048.00 TB",
	}
	for in, expected := range cases {
		assert.Equal(t, expected, FormatSize(in))
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "85.19%", FormatPercent(85.185185))
	assert.Equal(t, "-300.00%", FormatPercent(-300))
}
