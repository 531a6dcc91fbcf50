package dimension

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"imageresizer/internal/domain"
)

// ErrNoSelection means the current inputs do not describe a usable target size.
var ErrNoSelection = errors.New("no valid dimension selection")

// SuggestedCount is how many divisors of the original size are offered.
const SuggestedCount = 8

var standardDimensions = []struct {
	name string
	dim  domain.Dimensions
}{
	{"640x480", domain.Dimensions{Width: 640, Height: 480}},
	{"800x600", domain.Dimensions{Width: 800, Height: 600}},
	{"1024x768", domain.Dimensions{Width: 1024, Height: 768}},
	{"1280x720", domain.Dimensions{Width: 1280, Height: 720}},
	{"1920x1080", domain.Dimensions{Width: 1920, Height: 1080}},
	{"2560x1440", domain.Dimensions{Width: 2560, Height: 1440}},
	{"3840x2160", domain.Dimensions{Width: 3840, Height: 2160}},
}

// StandardNames returns the preset names in display order.
func StandardNames() []string {
	names := make([]string, 0, len(standardDimensions))
	for _, sd := range standardDimensions {
		names = append(names, sd.name)
	}
	return names
}

func Standard(name string) (domain.Dimensions, bool) {
	for _, sd := range standardDimensions {
		if sd.name == name {
			return sd.dim, true
		}
	}
	return domain.Dimensions{}, false
}

// Suggested returns the original size integer-divided by 1 through 8.
// Small images may yield duplicates; they are kept.
func Suggested(width, height int) []domain.Dimensions {
	dims := make([]domain.Dimensions, 0, SuggestedCount)
	for i := 1; i <= SuggestedCount; i++ {
		dims = append(dims, domain.Dimensions{Width: width / i, Height: height / i})
	}
	return dims
}

// SuggestedOptions is the suggested list as shown to the user, led by the
// placeholder entry.
func SuggestedOptions(placeholder string, width, height int) []string {
	opts := []string{placeholder}
	for _, d := range Suggested(width, height) {
		opts = append(opts, d.String())
	}
	return opts
}

// Parse reads a "<int>x<int>" pair.
func Parse(s string) (domain.Dimensions, error) {
	if !strings.Contains(s, "x") {
		return domain.Dimensions{}, fmt.Errorf("%w: %q has no 'x' separator", ErrNoSelection, s)
	}

	wh := strings.Split(s, "x")
	if len(wh) != 2 {
		return domain.Dimensions{}, fmt.Errorf("%w: invalid dimension %q", ErrNoSelection, s)
	}

	w, err := parseInt(wh[0])
	if err != nil {
		return domain.Dimensions{}, fmt.Errorf("%w: invalid width in %q", ErrNoSelection, s)
	}
	h, err := parseInt(wh[1])
	if err != nil {
		return domain.Dimensions{}, fmt.Errorf("%w: invalid height in %q", ErrNoSelection, s)
	}

	return domain.Dimensions{Width: w, Height: h}, nil
}

// Resolve picks the target size from the user's inputs. A standard preset wins
// over a suggested size, which wins over the custom width and height fields.
// Custom values are not range checked.
func Resolve(state domain.SelectionState) (domain.DimensionChoice, error) {
	if state.Standard != "" {
		dim, ok := Standard(state.Standard)
		if !ok {
			return domain.DimensionChoice{}, fmt.Errorf("%w: unknown standard dimension %q", ErrNoSelection, state.Standard)
		}
		return domain.DimensionChoice{Kind: domain.ChoiceStandard, Name: state.Standard, Dimensions: dim}, nil
	}

	if state.Suggested != "" {
		dim, err := Parse(state.Suggested)
		if err != nil {
			return domain.DimensionChoice{}, err
		}
		return domain.DimensionChoice{Kind: domain.ChoiceSuggested, Dimensions: dim}, nil
	}

	w, err := parseInt(state.CustomWidth)
	if err != nil {
		return domain.DimensionChoice{}, fmt.Errorf("%w: invalid width %q", ErrNoSelection, state.CustomWidth)
	}
	h, err := parseInt(state.CustomHeight)
	if err != nil {
		return domain.DimensionChoice{}, fmt.Errorf("%w: invalid height %q", ErrNoSelection, state.CustomHeight)
	}

	return domain.DimensionChoice{Kind: domain.ChoiceCustom, Dimensions: domain.Dimensions{Width: w, Height: h}}, nil
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
