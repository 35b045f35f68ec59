package kitchen

import (
	"fmt"
	"sort"
	"strings"
)

// To add a recipe, sort its ingredients alphabetically, list duplicates
// individually, join them with "," and append "+" and the technique:
//
//	"Egg,Milk,Sugar+Bake"
var defaultRecipes = map[CombinationKey]Dish{
	"Egg+Fry": {
		Name:        "Fried Egg",
		Description: "A single egg, fried sunny-side up. Simple and satisfying.",
	},
	"Egg,Egg,Milk+Fry": {
		Name:        "Omelette",
		Description: "Two eggs whisked with milk and fried to fluffy perfection.",
	},
	"Dragon Pepper,Glimmering Fish Scale+Fry": {
		Name:        "Spicy Seared Scale",
		Description: "A surprisingly zesty dish. The pepper's heat brings out the fish's magical essence.",
	},
	"Cave Mushroom,Salt+Fry": {
		Name:        "Salty Sautéed Shroom",
		Description: "A quick and earthy snack, often enjoyed by miners.",
	},
	"Flour,Milk,Sugar+Bake": {
		Name:        "Simple Sweetcake",
		Description: "A dense, sweet bread. A basic pastry for a weary traveler.",
	},
	"Flour,Salt+Bake": {
		Name:        "Hardtack",
		Description: "A simple, unleavened biscuit. Not delicious, but it lasts forever on long journeys.",
	},
	"Dragon Pepper,Salt+Whisk": {
		Name:        "Fiery Brine",
		Description: "A potent, spicy liquid that can be used to preserve other foods... or as a dare.",
	},
}

// RecipeBook maps combination keys to dishes. It is read-only once built.
type RecipeBook struct {
	recipes map[CombinationKey]Dish
}

// NewRecipeBook copies entries into a new book
func NewRecipeBook(entries map[CombinationKey]Dish) *RecipeBook {
	recipes := make(map[CombinationKey]Dish, len(entries))
	for k, v := range entries {
		recipes[k] = v
	}
	return &RecipeBook{recipes: recipes}
}

// DefaultRecipeBook returns the book the game ships with
func DefaultRecipeBook() *RecipeBook {
	return NewRecipeBook(defaultRecipes)
}

// Lookup returns the dish stored under key, if any
func (b *RecipeBook) Lookup(key CombinationKey) (Dish, bool) {
	dish, ok := b.recipes[key]
	return dish, ok
}

// Len returns the number of known recipes
func (b *RecipeBook) Len() int {
	return len(b.recipes)
}

// Keys returns every key in sorted order
func (b *RecipeBook) Keys() []CombinationKey {
	keys := make([]CombinationKey, 0, len(b.recipes))
	for k := range b.recipes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Validate checks that every key is already in canonical form, so lookups
// never need a second normalization pass.
func (b *RecipeBook) Validate() error {
	var problems []string
	for _, key := range b.Keys() {
		ingredients, technique, err := key.Split()
		if err != nil {
			problems = append(problems, err.Error())
			continue
		}
		if len(ingredients) == 0 {
			problems = append(problems, fmt.Sprintf("combination key %q has no ingredients", string(key)))
			continue
		}
		if canonical := NewCombinationKey(ingredients, technique); canonical != key {
			problems = append(problems, fmt.Sprintf("combination key %q is not sorted, expected %q", string(key), string(canonical)))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("recipe book validation failed:\n%s", strings.Join(problems, "\n"))
	}
	return nil
}
