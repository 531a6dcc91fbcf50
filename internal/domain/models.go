package domain

import (
	"fmt"
)

type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Area is computed in floating point so that oversized custom entries cannot
// overflow.
func (d Dimensions) Area() float64 {
	return float64(d.Width) * float64(d.Height)
}

// ImageSelection is the image currently picked by the user. It is replaced
// wholesale by the next selection.
type ImageSelection struct {
	Path   string `json:"path"`
	Size   int64  `json:"size"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

func (s *ImageSelection) Dimensions() Dimensions {
	return Dimensions{Width: s.Width, Height: s.Height}
}

type ChoiceKind int

const (
	ChoiceStandard ChoiceKind = iota + 1
	ChoiceSuggested
	ChoiceCustom
)

func (k ChoiceKind) String() string {
	switch k {
	case ChoiceStandard:
		return "standard"
	case ChoiceSuggested:
		return "suggested"
	case ChoiceCustom:
		return "custom"
	default:
		return "unknown"
	}
}

func (k ChoiceKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// DimensionChoice is the resolved target size together with where it came from.
// Name is only set for standard presets.
type DimensionChoice struct {
	Kind       ChoiceKind `json:"kind"`
	Name       string     `json:"name,omitempty"`
	Dimensions Dimensions `json:"dimensions"`
}

// SelectionState mirrors the dimension inputs as the user left them. Empty
// Standard or Suggested means nothing was picked from that list.
type SelectionState struct {
	Standard     string `json:"standard"`
	Suggested    string `json:"suggested"`
	CustomWidth  string `json:"width"`
	CustomHeight string `json:"height"`
}

type SizeEstimate struct {
	ProjectedBytes   float64 `json:"projected_bytes"`
	ReductionPercent float64 `json:"reduction_percent"`
	JPGEstimateBytes float64 `json:"jpg_estimate_bytes"`
	PNGEstimateBytes float64 `json:"png_estimate_bytes"`
}
