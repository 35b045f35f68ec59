// Package kitchen holds the recipe book and the cook resolver: a selection of
// ingredients plus a technique is normalized into a combination key and looked
// up in a static table. Unknown combinations produce MuddledMess.
package kitchen

// Resolver cooks against a fixed recipe book
type Resolver struct {
	book *RecipeBook
}

// NewResolver returns a resolver backed by book, or by the default book when
// book is nil.
func NewResolver(book *RecipeBook) *Resolver {
	if book == nil {
		book = DefaultRecipeBook()
	}
	return &Resolver{book: book}
}

// Book returns the recipe book the resolver reads from
func (r *Resolver) Book() *RecipeBook {
	return r.book
}

// Cook resolves ingredients and technique into a dish. It never fails: a
// combination missing from the book yields MuddledMess.
func (r *Resolver) Cook(ingredients []Ingredient, technique Technique) Dish {
	return Cook(r.book, ingredients, technique)
}

// Cook looks the combination up in book
func Cook(book *RecipeBook, ingredients []Ingredient, technique Technique) Dish {
	if dish, ok := book.Lookup(NewCombinationKey(ingredients, technique)); ok {
		return dish
	}
	return MuddledMess
}
