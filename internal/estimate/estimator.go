package estimate

import (
	"errors"
	"fmt"

	"imageresizer/internal/domain"
)

var ErrZeroArea = errors.New("original image has no pixel area")

// Fixed multipliers applied to the projected size. They are rough heuristics,
// not measurements of either codec.
const (
	JPGFactor = 0.75
	PNGFactor = 1.5
)

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// Estimate projects the file size after resizing by scaling the original byte
// count with the pixel area ratio.
func Estimate(originalBytes int64, original, target domain.Dimensions) (domain.SizeEstimate, error) {
	originalArea := original.Area()
	if originalArea <= 0 {
		return domain.SizeEstimate{}, fmt.Errorf("%w: %s", ErrZeroArea, original)
	}

	orig := float64(originalBytes)
	projected := orig * target.Area() / originalArea

	var reduction float64
	if originalBytes > 0 {
		reduction = (orig - projected) / orig * 100
	}

	return domain.SizeEstimate{
		ProjectedBytes:   projected,
		ReductionPercent: reduction,
		JPGEstimateBytes: projected * JPGFactor,
		PNGEstimateBytes: projected * PNGFactor,
	}, nil
}

// FormatSize renders a byte count with two decimals in the largest unit that
// keeps the value under 1024, capped at TB.
func FormatSize(size float64) string {
	for _, unit := range sizeUnits {
		if size < 1024 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.2f TB", size)
}

func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}
