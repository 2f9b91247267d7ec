package enums

import "fmt"

// CustomStyle selects the artistic treatment of a custom doodle.
type CustomStyle string

const (
	CustomStyleMinimalist CustomStyle = "minimalist"
	CustomStyleDetailed   CustomStyle = "detailed"
	CustomStyleAbstract   CustomStyle = "abstract"
	CustomStyleRealistic  CustomStyle = "realistic"
)

var validCustomStyles = []CustomStyle{
	CustomStyleMinimalist,
	CustomStyleDetailed,
	CustomStyleAbstract,
	CustomStyleRealistic,
}

// String implements fmt.Stringer.
func (s CustomStyle) String() string {
	return string(s)
}

// IsValid reports whether the value is a known CustomStyle.
func (s CustomStyle) IsValid() bool {
	for _, candidate := range validCustomStyles {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseCustomStyle converts raw input into a CustomStyle.
func ParseCustomStyle(value string) (CustomStyle, error) {
	for _, candidate := range validCustomStyles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid custom style %q", value)
}

// CustomSize selects the physical dimensions of a custom doodle.
type CustomSize string

const (
	CustomSizeSmall  CustomSize = "small"
	CustomSizeMedium CustomSize = "medium"
	CustomSizeLarge  CustomSize = "large"
	CustomSizeXLarge CustomSize = "xlarge"
)

var validCustomSizes = []CustomSize{
	CustomSizeSmall,
	CustomSizeMedium,
	CustomSizeLarge,
	CustomSizeXLarge,
}

// String implements fmt.Stringer.
func (s CustomSize) String() string {
	return string(s)
}

// IsValid reports whether the value is a known CustomSize.
func (s CustomSize) IsValid() bool {
	for _, candidate := range validCustomSizes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseCustomSize converts raw input into a CustomSize.
func ParseCustomSize(value string) (CustomSize, error) {
	for _, candidate := range validCustomSizes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid custom size %q", value)
}

// CustomDeadline selects the turnaround window for a custom doodle.
type CustomDeadline string

const (
	CustomDeadlineWeek    CustomDeadline = "7days"
	CustomDeadlineRush    CustomDeadline = "3days"
	CustomDeadlineExpress CustomDeadline = "1day"
)

var validCustomDeadlines = []CustomDeadline{
	CustomDeadlineWeek,
	CustomDeadlineRush,
	CustomDeadlineExpress,
}

// String implements fmt.Stringer.
func (d CustomDeadline) String() string {
	return string(d)
}

// IsValid reports whether the value is a known CustomDeadline.
func (d CustomDeadline) IsValid() bool {
	for _, candidate := range validCustomDeadlines {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseCustomDeadline converts raw input into a CustomDeadline.
func ParseCustomDeadline(value string) (CustomDeadline, error) {
	for _, candidate := range validCustomDeadlines {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid custom deadline %q", value)
}
