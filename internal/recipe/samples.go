// Package recipe provides the built-in sample cookbook.
package recipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/hammamikhairi/cookbook/internal/domain"
	"github.com/hammamikhairi/cookbook/internal/engine"
	"github.com/hammamikhairi/cookbook/internal/logger"
)

// Seed registers the sample entries through the engine, so they go through
// the same validation as client requests. Names that are already taken are
// skipped; any other failure aborts.
func Seed(ctx context.Context, eng *engine.Engine, log *logger.Logger) (int, error) {
	n := 0
	for _, d := range Samples() {
		_, err := eng.Register(ctx, d)
		if errors.Is(err, domain.ErrAlreadyExists) {
			log.Debug("seed: %q already registered, skipping", d.Name)
			continue
		}
		if err != nil {
			return n, fmt.Errorf("seeding %q: %w", d.Name, err)
		}
		n++
	}
	log.Debug("seeded %d entries", n)
	return n, nil
}

// Samples returns the sample cookbook: a handful of ingredients and a few
// recipes nested up to three levels deep.
func Samples() []engine.Draft {
	drafts := []engine.Draft{
		ingredient("Flour", 0),
		ingredient("Egg", 3),
		ingredient("Milk", 0),
		ingredient("Butter", 1),
		ingredient("Sugar", 0),
		ingredient("Beef", 5),
		ingredient("Mushroom", 4),
		ingredient("Puff Pastry", 20),

		recipe("Batter", item("Flour", 2), item("Egg", 1), item("Milk", 1)),
		recipe("Pancake", item("Batter", 1), item("Butter", 1)),
		recipe("Pancake Stack", item("Pancake", 3), item("Sugar", 1)),
		recipe("Duxelles", item("Mushroom", 4), item("Butter", 1)),
		recipe("Beef Wellington", item("Beef", 1), item("Duxelles", 1), item("Puff Pastry", 1), item("Egg", 1)),
	}
	return drafts
}

func ingredient(name string, cookTime float64) engine.Draft {
	return engine.Draft{Name: name, Type: domain.KindIngredient.String(), CookTime: &cookTime}
}

func recipe(name string, items ...engine.DraftItem) engine.Draft {
	return engine.Draft{Name: name, Type: domain.KindRecipe.String(), RequiredItems: items}
}

func item(name string, qty float64) engine.DraftItem {
	return engine.DraftItem{Name: &name, Quantity: &qty}
}
