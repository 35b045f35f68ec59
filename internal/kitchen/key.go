package kitchen

import (
	"fmt"
	"sort"
	"strings"
)

const (
	ingredientDelimiter = ","
	techniqueSeparator  = "+"
)

// CombinationKey is the canonical form of a selection plus technique, e.g.
// "Egg,Egg,Milk+Fry".
type CombinationKey string

// NewCombinationKey sorts a copy of ingredients and appends the technique.
// The caller's slice keeps its order.
func NewCombinationKey(ingredients []Ingredient, technique Technique) CombinationKey {
	names := make([]string, len(ingredients))
	for i, ing := range ingredients {
		names[i] = string(ing)
	}
	sort.Strings(names)
	return CombinationKey(strings.Join(names, ingredientDelimiter) + techniqueSeparator + string(technique))
}

// Split breaks the key back into its ingredient names and technique.
// An ingredient name containing "+" is not supported.
func (k CombinationKey) Split() ([]Ingredient, Technique, error) {
	idx := strings.LastIndex(string(k), techniqueSeparator)
	if idx < 0 {
		return nil, "", fmt.Errorf("combination key %q has no technique separator", string(k))
	}
	technique := Technique(k[idx+1:])
	if !technique.Valid() {
		return nil, "", fmt.Errorf("combination key %q: %w", string(k), ErrUnknownTechnique)
	}
	head := string(k[:idx])
	if head == "" {
		return nil, technique, nil
	}
	return Ingredients(strings.Split(head, ingredientDelimiter)...), technique, nil
}

func (k CombinationKey) String() string {
	return string(k)
}
