package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hammamikhairi/cookbook/internal/domain"
)

// Summarize expands the named recipe into its total cook time and the
// flattened quantities of every base ingredient it uses. Nested recipes
// multiply the quantities beneath them. The registry is only read.
//
// Errors: domain.ErrNotFound, domain.ErrNotARecipe,
// domain.ErrMissingDependency when any referenced name is unregistered,
// domain.ErrCyclicDependency when a recipe requires itself on the current
// expansion path, domain.ErrTooDeep past the configured nesting limit, and
// domain.ErrOverflow when a quantity or the cook time stops being finite.
func (e *Engine) Summarize(ctx context.Context, name string) (*domain.Summary, error) {
	root, err := e.store.Get(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q%s", domain.ErrNotFound, name, e.suggest(ctx, name))
	}
	if err != nil {
		return nil, fmt.Errorf("getting %q: %w", name, err)
	}

	switch root.Kind {
	case domain.KindRecipe:
	case domain.KindIngredient:
		return nil, fmt.Errorf("%w: %q is an ingredient", domain.ErrNotARecipe, name)
	default:
		return nil, fmt.Errorf("%w: %q has unknown kind %s", domain.ErrNotARecipe, name, root.Kind)
	}

	x := &expansion{
		engine:  e,
		index:   make(map[string]int),
		onPath:  map[string]bool{root.Name: true},
		path:    []string{root.Name},
		summary: &domain.Summary{Name: root.Name, Ingredients: []domain.IngredientTotal{}},
	}
	if err := x.expand(ctx, root, 1, 0); err != nil {
		e.log.Debug("summary of %q failed: %v", name, err)
		return nil, err
	}

	e.log.Debug("summarized %q: cookTime=%g, ingredients=%d", name, x.summary.CookTime, len(x.summary.Ingredients))
	return x.summary, nil
}

// expansion accumulates one summary. It is not shared between calls.
type expansion struct {
	engine  *Engine
	summary *domain.Summary
	index   map[string]int // ingredient name -> position in summary.Ingredients

	onPath map[string]bool
	path   []string
}

func (x *expansion) expand(ctx context.Context, recipe *domain.Entry, multiplier float64, depth int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, item := range recipe.RequiredItems {
		entry, err := x.engine.store.Get(ctx, item.Name)
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: %q required by %q%s",
				domain.ErrMissingDependency, item.Name, recipe.Name, x.engine.suggest(ctx, item.Name))
		}
		if err != nil {
			return fmt.Errorf("getting %q: %w", item.Name, err)
		}

		qty := item.Quantity * multiplier
		if math.IsInf(qty, 0) {
			return fmt.Errorf("%w: quantity of %q in %q", domain.ErrOverflow, item.Name, recipe.Name)
		}

		switch entry.Kind {
		case domain.KindIngredient:
			x.summary.CookTime += entry.CookTime * qty
			if math.IsInf(x.summary.CookTime, 0) {
				return fmt.Errorf("%w: cook time after %q in %q", domain.ErrOverflow, entry.Name, recipe.Name)
			}
			if total := x.addIngredient(entry.Name, qty); math.IsInf(total, 0) {
				return fmt.Errorf("%w: total quantity of %q", domain.ErrOverflow, entry.Name)
			}

		case domain.KindRecipe:
			if x.onPath[entry.Name] {
				return fmt.Errorf("%w: %s -> %s",
					domain.ErrCyclicDependency, strings.Join(x.path, " -> "), entry.Name)
			}
			if depth+1 > x.engine.maxDepth {
				return fmt.Errorf("%w: %q exceeds %d levels", domain.ErrTooDeep, entry.Name, x.engine.maxDepth)
			}

			x.onPath[entry.Name] = true
			x.path = append(x.path, entry.Name)
			if err := x.expand(ctx, entry, qty, depth+1); err != nil {
				return err
			}
			x.path = x.path[:len(x.path)-1]
			delete(x.onPath, entry.Name)

		default:
			return fmt.Errorf("entry %q has unknown kind %s", entry.Name, entry.Kind)
		}
	}
	return nil
}

// addIngredient accumulates qty for name and returns the new total.
func (x *expansion) addIngredient(name string, qty float64) float64 {
	if i, ok := x.index[name]; ok {
		x.summary.Ingredients[i].Quantity += qty
		return x.summary.Ingredients[i].Quantity
	}
	x.index[name] = len(x.summary.Ingredients)
	x.summary.Ingredients = append(x.summary.Ingredients, domain.IngredientTotal{Name: name, Quantity: qty})
	return qty
}
