// Package domain defines the core types and interfaces for the cookbook.
// All other packages depend on domain; domain depends on nothing.
package domain

// EntryKind discriminates the two shapes an Entry can take.
type EntryKind int

const (
	// KindIngredient is a leaf entry with a fixed cook time.
	KindIngredient EntryKind = iota + 1
	// KindRecipe is a composite entry built from required items.
	KindRecipe
)

// String returns the wire name of the kind.
func (k EntryKind) String() string {
	switch k {
	case KindIngredient:
		return "ingredient"
	case KindRecipe:
		return "recipe"
	default:
		return "unknown"
	}
}

// kindNames maps wire names to EntryKind values.
var kindNames = map[string]EntryKind{
	"ingredient": KindIngredient,
	"recipe":     KindRecipe,
}

// KindFromString converts a wire name to an EntryKind. The second return
// value is false for anything other than "ingredient" or "recipe".
func KindFromString(name string) (EntryKind, bool) {
	k, ok := kindNames[name]
	return k, ok
}

// Entry is a named cookbook item. Kind decides which of the remaining
// fields are meaningful: CookTime for ingredients, RequiredItems for recipes.
type Entry struct {
	Name          string
	Kind          EntryKind
	CookTime      float64
	RequiredItems []RequiredItem
}

// RequiredItem references another entry by name from within a recipe.
type RequiredItem struct {
	Name     string
	Quantity float64
}

// Summary is the flattened expansion of a recipe.
type Summary struct {
	Name        string
	CookTime    float64
	Ingredients []IngredientTotal // first-encountered order
}

// IngredientTotal is the accumulated quantity of one base ingredient.
type IngredientTotal struct {
	Name     string
	Quantity float64
}
