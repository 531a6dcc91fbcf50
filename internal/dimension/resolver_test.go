package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imageresizer/internal/domain"
)

func TestStandardNames(t *testing.T) {
	expected := []string{"640x480", "800x600", "1024x768", "1280x720", "1920x1080", "2560x1440", "3840x2160"}
	assert.Equal(t, expected, StandardNames())

	for _, name := range expected {
		dim, ok := Standard(name)
		require.True(t, ok, name)
		assert.Equal(t, name, dim.String())
	}

	_, ok := Standard("123x456")
	assert.False(t, ok)
}

func TestSuggested(t *testing.T) {
	for _, size := range []domain.Dimensions{{Width: 1920, Height: 1080}, {Width: 1001, Height: 777}, {Width: 3, Height: 5}, {Width: 1, Height: 1}} {
		dims := Suggested(size.Width, size.Height)
		require.Len(t, dims, SuggestedCount)
		for i, d := range dims {
			assert.Equal(t, size.Width/(i+1), d.Width)
			assert.Equal(t, size.Height/(i+1), d.Height)
			if i > 0 {
				assert.LessOrEqual(t, d.Width, dims[i-1].Width)
				assert.LessOrEqual(t, d.Height, dims[i-1].Height)
			}
		}
	}
}

func TestSuggestedKeepsDuplicates(t *testing.T) {
	dims := Suggested(3, 3)
	assert.Equal(t, domain.Dimensions{Width: 0, Height: 0}, dims[4])
	assert.Equal(t, dims[4], dims[7])
}

func TestSuggestedOptions(t *testing.T) {
	opts := SuggestedOptions("Select Suggested Dimension", 1920, 1080)
	require.Len(t, opts, SuggestedCount+1)
	assert.Equal(t, "Select Suggested Dimension", opts[0])
	assert.Equal(t, "1920x1080", opts[1])
	assert.Equal(t, "960x540", opts[2])
	assert.Equal(t, "240x135", opts[8])
}

func TestParse(t *testing.T) {
	dim, err := Parse("500x300")
	require.NoError(t, err)
	assert.Equal(t, domain.Dimensions{Width: 500, Height: 300}, dim)

	for _, s := range []string{"500", "", "axb", "5x", "1x2x3"} {
		_, err := Parse(s)
		assert.ErrorIs(t, err, ErrNoSelection, s)
	}
}

func TestResolveStandardWinsOverSuggested(t *testing.T) {
	choice, err := Resolve(domain.SelectionState{
		Standard:     "1920x1080",
		Suggested:    "500x500",
		CustomWidth:  "10",
		CustomHeight: "10",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ChoiceStandard, choice.Kind)
	assert.Equal(t, "1920x1080", choice.Name)
	assert.Equal(t, domain.Dimensions{Width: 1920, Height: 1080}, choice.Dimensions)
}

func TestResolveSuggestedWinsOverCustom(t *testing.T) {
	choice, err := Resolve(domain.SelectionState{
		Suggested:    "500x500",
		CustomWidth:  "10",
		CustomHeight: "10",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ChoiceSuggested, choice.Kind)
	assert.Equal(t, domain.Dimensions{Width: 500, Height: 500}, choice.Dimensions)
}

func TestResolveCustom(t *testing.T) {
	choice, err := Resolve(domain.SelectionState{CustomWidth: " 800", CustomHeight: "600 "})
	require.NoError(t, err)
	assert.Equal(t, domain.ChoiceCustom, choice.Kind)
	assert.Equal(t, domain.Dimensions{Width: 800, Height: 600}, choice.Dimensions)

	// no bounds checking at this stage
	choice, err = Resolve(domain.SelectionState{CustomWidth: "0", CustomHeight: "-5"})
	require.NoError(t, err)
	assert.Equal(t, domain.Dimensions{Width: 0, Height: -5}, choice.Dimensions)
}

func TestResolveNoSelection(t *testing.T) {
	cases := []domain.SelectionState{
		{},
		{CustomWidth: "abc", CustomHeight: "100"},
		{CustomWidth: "100", CustomHeight: ""},
		{CustomWidth: "", CustomHeight: "abc"},
		{Suggested: "500"},
		{Standard: "7x7"},
	}
	for _, state := range cases {
		_, err := Resolve(state)
		assert.ErrorIs(t, err, ErrNoSelection, "%+v", state)
	}
}
