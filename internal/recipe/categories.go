package recipe

// Category is an entry in the static cake category catalog.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

var categories = []Category{
	{ID: "chocolate", Name: "Chocolate Cakes", Emoji: "🍫", Description: "Rich and decadent chocolate cakes"},
	{ID: "vanilla", Name: "Vanilla & Classic", Emoji: "🍰", Description: "Traditional and classic cakes"},
	{ID: "fruit", Name: "Fruit Cakes", Emoji: "🍓", Description: "Fresh and fruity cakes"},
	{ID: "cheesecake", Name: "Cheesecakes", Emoji: "🧀", Description: "Creamy and smooth cheesecakes"},
	{ID: "layer", Name: "Layer Cakes", Emoji: "🎂", Description: "Multi-layered and fancy cakes"},
	{ID: "specialty", Name: "Specialty Cakes", Emoji: "⭐", Description: "Unique and special cakes"},
	{ID: "cupcakes", Name: "Cupcakes", Emoji: "🧁", Description: "Individual sized cakes"},
	{ID: "mousse", Name: "Mousse Cakes", Emoji: "☁️", Description: "Light and airy mousse cakes"},
	{ID: "international", Name: "International", Emoji: "🌍", Description: "Cakes from around the world"},
	{ID: "seasonal", Name: "Seasonal & Holiday", Emoji: "🎄", Description: "Holiday and seasonal cakes"},
	{ID: "pies", Name: "Pies & Tarts", Emoji: "🥧", Description: "Delicious pies and tarts"},
	{ID: "other", Name: "Other", Emoji: "🍪", Description: "Other delicious desserts"},
}

// Categories returns the catalog. The slice is shared; callers must not
// mutate it.
func Categories() []Category {
	return categories
}

// ValidCategory reports whether id names a known category.
func ValidCategory(id string) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
