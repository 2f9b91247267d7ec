package custom

import (
	"strings"

	"github.com/google/uuid"

	"github.com/blvshy/doodleart-backend/internal/cart"
	"github.com/blvshy/doodleart-backend/pkg/enums"
	pkgerrors "github.com/blvshy/doodleart-backend/pkg/errors"
)

// Placeholder image shown for custom orders until the artwork exists.
const defaultImage = "https://images.pexels.com/photos/1266808/pexels-photo-1266808.jpeg"

// OrderInput is a validated custom order submission.
type OrderInput struct {
	Style       enums.CustomStyle
	Size        enums.CustomSize
	Deadline    enums.CustomDeadline
	Description string
}

// BuildItem turns a submission into a cart item with a fresh identity.
// Keys are uuid-based rather than time-based so that two orders created
// in the same instant still get distinct lines.
func BuildItem(input OrderInput) (cart.Item, error) {
	if strings.TrimSpace(input.Description) == "" {
		return cart.Item{}, pkgerrors.New(pkgerrors.CodeValidation, "description is required").
			WithDetails(map[string]string{"description": "is required"})
	}

	price, err := Quote(input.Style, input.Size, input.Deadline)
	if err != nil {
		return cart.Item{}, err
	}

	style, _ := styleByID(input.Style)

	return cart.Item{
		Key:      "custom:" + uuid.NewString(),
		Title:    "Custom Doodle - " + style.Name,
		Price:    price,
		Image:    defaultImage,
		Category: enums.CategoryCustom,
		IsCustom: true,
		Custom: &cart.CustomDetails{
			Style:       input.Style,
			Size:        input.Size,
			Deadline:    input.Deadline,
			Description: strings.TrimSpace(input.Description),
		},
	}, nil
}
