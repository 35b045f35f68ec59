package kitchen

// Ingredient is an opaque ingredient name. Two eggs are not one egg, so
// selections keep duplicates.
type Ingredient string

// Dish describes the outcome of a cook attempt
type Dish struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MuddledMess is returned for every combination the recipe book does not know
var MuddledMess = Dish{
	Name:        "Muddled Mess",
	Description: "These ingredients and technique didn't quite work. The result is... unappetizing.",
}

// IsFallback reports whether d is the no-match result
func IsFallback(d Dish) bool {
	return d == MuddledMess
}

// Ingredients converts plain names into Ingredient values
func Ingredients(names ...string) []Ingredient {
	out := make([]Ingredient, len(names))
	for i, n := range names {
		out[i] = Ingredient(n)
	}
	return out
}
