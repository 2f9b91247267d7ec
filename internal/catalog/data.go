package catalog

import "github.com/blvshy/doodleart-backend/pkg/enums"

var artworks = []Item{
	{
		ID:          1,
		Title:       "Cloud Dreams",
		Price:       249,
		Image:       "/doodle/cloud.jpg",
		Category:    enums.CategoryNature,
		Description: "Dreamy cloud formations in artistic style",
	},
	{
		ID:          2,
		Title:       "Custom Art",
		Price:       249,
		Image:       "/doodle/customized.jpg",
		Category:    enums.CategoryCustom,
		Description: "Personalized doodle art just for you",
	},
	{
		ID:          3,
		Title:       "Dogesh Portrait",
		Price:       249,
		Image:       "/doodle/dogesh.jpg",
		Category:    enums.CategoryPortrait,
		Description: "Cute dog portrait in doodle style",
	},
	{
		ID:          4,
		Title:       "Flower Power",
		Price:       249,
		Image:       "/doodle/flower.jpg",
		Category:    enums.CategoryNature,
		Description: "Beautiful floral doodle design",
	},
	{
		ID:          5,
		Title:       "Hope & Dreams",
		Price:       249,
		Image:       "/doodle/hope.jpg",
		Category:    enums.CategoryInspirational,
		Description: "Uplifting and motivational artwork",
	},
	{
		ID:          6,
		Title:       "Sweet Lollypop",
		Price:       249,
		Image:       "/doodle/lolypop.jpg",
		Category:    enums.CategoryFun,
		Description: "Colorful and playful candy art",
	},
	{
		ID:          7,
		Title:       "Nature Scene",
		Price:       249,
		Image:       "/doodle/nature.jpg",
		Category:    enums.CategoryNature,
		Description: "Serene nature landscape doodle",
	},
	{
		ID:          8,
		Title:       "Somnil Art",
		Price:       249,
		Image:       "/doodle/somnil.jpg",
		Category:    enums.CategoryPortrait,
		Description: "Artistic portrait in unique style",
	},
}
