package i18n

// Defaults returns the English labels compiled into the binary.
func Defaults() Translations {
	return Translations{
		Title:                    "Image Resizer",
		SelectImage:              "Select Image",
		FileSize:                 "File Size",
		SelectStandardDimension:  "Select Standard Dimension",
		StandardDimension:        "Standard Dimension:",
		Width:                    "Width:",
		Height:                   "Height:",
		SuggestedDimension:       "Suggested Dimension:",
		SelectSuggestedDimension: "Select Suggested Dimension",
		NewSize:                  "New Size",
		SizeReduction:            "Size Reduction Percentage",
		SizeJPG:                  "Estimated Size for JPG",
		SizePNG:                  "Estimated Size for PNG",
		Resize:                   "Resize Image",
		Success:                  "Success",
		ImageResized:             "Image resized successfully!",
	}
}
