package models

// FormatSignature is a structural snapshot of a cell's visual styling.
// Every attribute is a pointer; nil means the attribute is absent.
type FormatSignature struct {
	Font         Font      `json:"font" yaml:"font"`
	Fill         Fill      `json:"fill" yaml:"fill"`
	Border       Border    `json:"border" yaml:"border"`
	Alignment    Alignment `json:"alignment" yaml:"alignment"`
	NumberFormat *string   `json:"number_format,omitempty" yaml:"number_format,omitempty"`
}

// Font holds font attributes.
type Font struct {
	Name      *string  `json:"name,omitempty" yaml:"name,omitempty"`
	Size      *float64 `json:"size,omitempty" yaml:"size,omitempty"`
	Bold      *bool    `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic    *bool    `json:"italic,omitempty" yaml:"italic,omitempty"`
	Underline *string  `json:"underline,omitempty" yaml:"underline,omitempty"`
	Color     *string  `json:"color,omitempty" yaml:"color,omitempty"`
}

// Fill holds the pattern kind and its foreground color.
type Fill struct {
	Pattern *string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	FgColor *string `json:"fg_color,omitempty" yaml:"fg_color,omitempty"`
}

// BorderSide is the line style and color of one cell edge.
type BorderSide struct {
	Style *string `json:"style,omitempty" yaml:"style,omitempty"`
	Color *string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Border holds the four cell edges.
type Border struct {
	Left   BorderSide `json:"left" yaml:"left"`
	Right  BorderSide `json:"right" yaml:"right"`
	Top    BorderSide `json:"top" yaml:"top"`
	Bottom BorderSide `json:"bottom" yaml:"bottom"`
}

// Alignment holds text placement attributes.
type Alignment struct {
	Horizontal *string `json:"horizontal,omitempty" yaml:"horizontal,omitempty"`
	Vertical   *string `json:"vertical,omitempty" yaml:"vertical,omitempty"`
	Wrap       *bool   `json:"wrap,omitempty" yaml:"wrap,omitempty"`
}

// Ptr returns a pointer to v. It keeps signature literals short.
func Ptr[T any](v T) *T {
	return &v
}
