package custom

import (
	"github.com/shopspring/decimal"

	"github.com/blvshy/doodleart-backend/pkg/enums"
	pkgerrors "github.com/blvshy/doodleart-backend/pkg/errors"
)

// StyleOption carries the buyer-facing label and base price of a style.
type StyleOption struct {
	ID          enums.CustomStyle `json:"id"`
	Name        string            `json:"name"`
	BasePrice   int               `json:"base_price"`
	Description string            `json:"description"`
}

// SizeOption carries the label and price multiplier of a size.
type SizeOption struct {
	ID         enums.CustomSize `json:"id"`
	Name       string           `json:"name"`
	Multiplier decimal.Decimal  `json:"multiplier"`
}

// DeadlineOption carries the label and price multiplier of a turnaround.
type DeadlineOption struct {
	ID         enums.CustomDeadline `json:"id"`
	Name       string               `json:"name"`
	Multiplier decimal.Decimal      `json:"multiplier"`
}

var styleOptions = []StyleOption{
	{ID: enums.CustomStyleMinimalist, Name: "Minimalist", BasePrice: 249, Description: "Clean, simple lines"},
	{ID: enums.CustomStyleDetailed, Name: "Detailed", BasePrice: 249, Description: "Intricate patterns and details"},
	{ID: enums.CustomStyleAbstract, Name: "Abstract", BasePrice: 249, Description: "Creative and artistic interpretation"},
	{ID: enums.CustomStyleRealistic, Name: "Realistic", BasePrice: 249, Description: "Life-like representation"},
}

var sizeOptions = []SizeOption{
	{ID: enums.CustomSizeSmall, Name: "Small (A5)", Multiplier: decimal.NewFromInt(1)},
	{ID: enums.CustomSizeMedium, Name: "Medium (A4)", Multiplier: decimal.NewFromFloat(1.5)},
	{ID: enums.CustomSizeLarge, Name: "Large (A3)", Multiplier: decimal.NewFromInt(2)},
	{ID: enums.CustomSizeXLarge, Name: "Extra Large (A2)", Multiplier: decimal.NewFromFloat(2.5)},
}

var deadlineOptions = []DeadlineOption{
	{ID: enums.CustomDeadlineWeek, Name: "7 Days", Multiplier: decimal.NewFromInt(1)},
	{ID: enums.CustomDeadlineRush, Name: "3 Days (Rush)", Multiplier: decimal.NewFromFloat(1.5)},
	{ID: enums.CustomDeadlineExpress, Name: "24 Hours (Express)", Multiplier: decimal.NewFromInt(2)},
}

// Options exposes the selectable dimensions for the order form.
type Options struct {
	Styles    []StyleOption    `json:"styles"`
	Sizes     []SizeOption     `json:"sizes"`
	Deadlines []DeadlineOption `json:"deadlines"`
}

// ListOptions returns the fixed option sets.
func ListOptions() Options {
	return Options{
		Styles:    styleOptions,
		Sizes:     sizeOptions,
		Deadlines: deadlineOptions,
	}
}

func styleByID(id enums.CustomStyle) (StyleOption, bool) {
	for _, option := range styleOptions {
		if option.ID == id {
			return option, true
		}
	}
	return StyleOption{}, false
}

func sizeByID(id enums.CustomSize) (SizeOption, bool) {
	for _, option := range sizeOptions {
		if option.ID == id {
			return option, true
		}
	}
	return SizeOption{}, false
}

func deadlineByID(id enums.CustomDeadline) (DeadlineOption, bool) {
	for _, option := range deadlineOptions {
		if option.ID == id {
			return option, true
		}
	}
	return DeadlineOption{}, false
}

// Quote derives the price of a custom doodle from its three selections:
// round(basePrice × sizeMultiplier × deadlineMultiplier), half up. All
// three are mandatory; an unselected or unknown dimension yields price 0
// and a validation error.
func Quote(style enums.CustomStyle, size enums.CustomSize, deadline enums.CustomDeadline) (int, error) {
	styleOpt, ok := styleByID(style)
	if !ok {
		return 0, incompleteSelection("style")
	}
	sizeOpt, ok := sizeByID(size)
	if !ok {
		return 0, incompleteSelection("size")
	}
	deadlineOpt, ok := deadlineByID(deadline)
	if !ok {
		return 0, incompleteSelection("deadline")
	}

	price := decimal.NewFromInt(int64(styleOpt.BasePrice)).
		Mul(sizeOpt.Multiplier).
		Mul(deadlineOpt.Multiplier).
		Round(0)
	return int(price.IntPart()), nil
}

func incompleteSelection(field string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, "style, size and deadline must all be selected").
		WithDetails(map[string]string{field: "is required"})
}
